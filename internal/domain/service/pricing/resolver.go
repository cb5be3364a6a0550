package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
)

// Resolve рассчитывает цену позиции за quantity единиц по таблице ступеней
// и выбранным опциям. Отсутствие цены — не ошибка: это Resolution с
// entity.Unpriced. Ошибка возвращается только при нарушении контракта
// (quantity <= 0, неизвестный вид опции).
func Resolve(
	tiers []entity.PricingTier,
	quantity int,
	definitions []entity.OptionDefinition,
	selections []entity.SelectedOption,
) (entity.Resolution, error) {
	if quantity <= 0 {
		return entity.Resolution{}, domain.NewInvalidInputError(
			errcodes.InvalidQuantity, "quantity must be positive, got %d", quantity,
		)
	}

	resolution := entity.Resolution{
		Quantity:           quantity,
		QuantityMultiplier: 1,
	}

	tier, ok := SelectTier(tiers, quantity)
	if !ok {
		resolution.Price = entity.Unpriced(entity.ReasonNoMatchingTier)
		return resolution, nil
	}

	resolution.Tier = &tier

	optionsCost, multiplier, err := resolveOptions(definitions, selections)
	if err != nil {
		return entity.Resolution{}, err
	}

	effectiveUnitCost := tier.UnitCost * multiplier
	totalCost := tier.SetupCost + float64(quantity)*(effectiveUnitCost+optionsCost)

	resolution.OptionsCost = optionsCost
	resolution.QuantityMultiplier = multiplier
	resolution.TotalCost = totalCost
	resolution.Price = sellPrice(totalCost, tier.MarginPercent)

	return resolution, nil
}

// ResolveLineItem — Resolve для готового снимка позиции.
func ResolveLineItem(item entity.LineItem) (entity.Resolution, error) {
	return Resolve(item.TierTable, item.Quantity, item.OptionDefinitions, item.Selections)
}

// SelectTier выбирает ступень с наибольшим MinQuantity среди тех, что не
// превышают quantity. Порядок в таблице не влияет на выбор.
func SelectTier(tiers []entity.PricingTier, quantity int) (entity.PricingTier, bool) {
	var (
		best  entity.PricingTier
		found bool
	)

	for _, tier := range tiers {
		if tier.MinQuantity > quantity {
			continue
		}

		if !found || tier.MinQuantity > best.MinQuantity {
			best = tier
			found = true
		}
	}

	return best, found
}

// resolveOptions возвращает надбавку к себестоимости единицы и множитель
// количества. Выборы без определения игнорируются; при повторе метки
// действует последний выбор.
func resolveOptions(
	definitions []entity.OptionDefinition,
	selections []entity.SelectedOption,
) (optionsCost, multiplier float64, err error) {
	multiplier = 1

	if len(selections) == 0 {
		return 0, multiplier, nil
	}

	byLabel := make(map[string]entity.OptionDefinition, len(definitions))
	for _, def := range definitions {
		if _, exists := byLabel[def.Label]; !exists {
			byLabel[def.Label] = def
		}
	}

	chosen := make(map[string]string, len(selections))
	order := make([]string, 0, len(selections))

	for _, sel := range selections {
		if _, seen := chosen[sel.Label]; !seen {
			order = append(order, sel.Label)
		}

		chosen[sel.Label] = sel.Value
	}

	for _, label := range order {
		def, ok := byLabel[label]
		if !ok {
			continue
		}

		selected := chosen[label]

		switch def.Kind {
		case value.OptionKindDropdown:
			if v, found := def.Lookup(selected); found {
				optionsCost += v.CostAdjustment
			}
		case value.OptionKindNumber:
			if factor, valid := parseFactor(selected); valid {
				multiplier *= factor
			}
		case value.OptionKindText:
			// на цену не влияет
		default:
			return 0, 0, domain.NewInvalidInputError(
				errcodes.InvalidOption, "option %q has unknown kind %q", def.Label, def.Kind,
			)
		}
	}

	return optionsCost, multiplier, nil
}

// parseFactor разбирает значение числовой опции. Невалидное значение не
// обнуляет и не сбрасывает уже набранный множитель.
func parseFactor(s string) (float64, bool) {
	factor, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !value.IsFinite(factor) || factor <= 0 {
		return 0, false
	}

	return factor, true
}

func sellPrice(totalCost, marginPercent float64) entity.Price {
	if math.IsNaN(totalCost) || !value.IsFinite(marginPercent) {
		return entity.Unpriced(entity.ReasonNotANumber)
	}

	if marginPercent >= 100 {
		return entity.Unpriced(entity.ReasonMarginNotPriceable)
	}

	price := totalCost / (1 - marginPercent/100)

	switch {
	case !value.IsFinite(price):
		return entity.Unpriced(entity.ReasonNotANumber)
	case price < 0:
		return entity.Unpriced(entity.ReasonNegativePrice)
	}

	return entity.PricedAt(value.RoundWhole(price))
}
