package pricing

import (
	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
)

// CheckStep проверяет, что количество попадает в шаг ступени, выбранной по
// тем же правилам, что и в Resolve: (quantity - MinQuantity) кратно Step.
func CheckStep(tiers []entity.PricingTier, quantity int) (entity.StepCheck, error) {
	if quantity <= 0 {
		return entity.StepCheck{}, domain.NewInvalidInputError(
			errcodes.InvalidQuantity, "quantity must be positive, got %d", quantity,
		)
	}

	tier, ok := SelectTier(tiers, quantity)
	if !ok {
		return entity.StepCheck{Quantity: quantity}, nil
	}

	check := entity.StepCheck{
		Quantity: quantity,
		Matched:  true,
		Tier:     &tier,
		Valid:    true,
		Lower:    quantity,
		Upper:    quantity,
	}

	if !tier.HasStep() {
		return check, nil
	}

	step := *tier.Step
	if step <= 0 {
		return entity.StepCheck{}, domain.NewInvalidInputError(
			errcodes.InvalidTier, "tier from %d: step must be positive, got %d", tier.MinQuantity, step,
		)
	}

	offset := (quantity - tier.MinQuantity) % step
	if offset == 0 {
		return check, nil
	}

	check.Valid = false
	check.Lower = quantity - offset
	check.Upper = check.Lower + step

	return check, nil
}
