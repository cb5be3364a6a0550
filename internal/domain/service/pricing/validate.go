package pricing

import (
	"strings"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
)

// ValidateTiers проверяет структуру таблицы ступеней. Пустая таблица допустима.
// Маржа >= 100% ошибкой не считается: такая ступень просто не даёт цены.
func ValidateTiers(tiers []entity.PricingTier) error {
	seen := make(map[int]struct{}, len(tiers))

	for i, tier := range tiers {
		switch {
		case tier.MinQuantity < 0:
			return invalidTier(i, "min quantity must be >= 0, got %d", tier.MinQuantity)
		case !value.IsFinite(tier.SetupCost) || tier.SetupCost < 0:
			return invalidTier(i, "setup cost must be a finite non-negative number")
		case !value.IsFinite(tier.UnitCost) || tier.UnitCost < 0:
			return invalidTier(i, "unit cost must be a finite non-negative number")
		case !value.IsFinite(tier.MarginPercent):
			return invalidTier(i, "margin percent must be a finite number")
		case tier.Step != nil && *tier.Step <= 0:
			return invalidTier(i, "step must be positive, got %d", *tier.Step)
		}

		if _, dup := seen[tier.MinQuantity]; dup {
			return invalidTier(i, "duplicate min quantity %d", tier.MinQuantity)
		}

		seen[tier.MinQuantity] = struct{}{}
	}

	return nil
}

// ValidateOptions проверяет определения опций товара.
func ValidateOptions(definitions []entity.OptionDefinition) error {
	labels := make(map[string]struct{}, len(definitions))

	for i, def := range definitions {
		label := strings.TrimSpace(def.Label)
		if label == "" {
			return invalidOption(i, "label is required")
		}

		if _, dup := labels[label]; dup {
			return invalidOption(i, "duplicate label %q", label)
		}

		labels[label] = struct{}{}

		if err := validateOption(i, def); err != nil {
			return err
		}
	}

	return nil
}

func validateOption(i int, def entity.OptionDefinition) error {
	switch def.Kind {
	case value.OptionKindDropdown:
		if len(def.Values) == 0 {
			return invalidOption(i, "dropdown %q has no values", def.Label)
		}

		values := make(map[string]struct{}, len(def.Values))

		for _, v := range def.Values {
			if _, dup := values[v.Value]; dup {
				return invalidOption(i, "dropdown %q: duplicate value %q", def.Label, v.Value)
			}

			if !value.IsFinite(v.CostAdjustment) {
				return invalidOption(i, "dropdown %q: cost adjustment of %q is not a number", def.Label, v.Value)
			}

			values[v.Value] = struct{}{}
		}
	case value.OptionKindNumber:
		if len(def.Values) > 0 {
			return invalidOption(i, "number option %q must not define values", def.Label)
		}

		if def.Min != nil && def.Max != nil && *def.Min > *def.Max {
			return invalidOption(i, "number option %q: min %v is greater than max %v", def.Label, *def.Min, *def.Max)
		}
	case value.OptionKindText:
		if len(def.Values) > 0 {
			return invalidOption(i, "text option %q must not define values", def.Label)
		}
	default:
		return invalidOption(i, "unknown kind %q", def.Kind)
	}

	return nil
}

// ValidateLineItem проверяет снимок позиции целиком.
func ValidateLineItem(item entity.LineItem) error {
	if item.Quantity <= 0 {
		return domain.NewInvalidInputError(
			errcodes.InvalidQuantity, "quantity must be positive, got %d", item.Quantity,
		)
	}

	if err := ValidateTiers(item.TierTable); err != nil {
		return err
	}

	return ValidateOptions(item.OptionDefinitions)
}

func invalidTier(i int, format string, args ...any) error {
	return domain.NewInvalidInputError(errcodes.InvalidTier, "tier #%d: "+format, append([]any{i}, args...)...)
}

func invalidOption(i int, format string, args ...any) error {
	return domain.NewInvalidInputError(errcodes.InvalidOption, "option #%d: "+format, append([]any{i}, args...)...)
}
