package pricing_test

import (
	"math"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/service/pricing"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
)

func TestValidateTiers(t *testing.T) {
	testCases := []struct {
		name  string
		tiers []entity.PricingTier
		valid bool
	}{
		{name: "Empty table", tiers: nil, valid: true},
		{
			name: "Margin at 100 is not a structural error",
			tiers: []entity.PricingTier{
				{MinQuantity: 1, SetupCost: 0, UnitCost: 10, MarginPercent: 100},
				{MinQuantity: 50, SetupCost: 100, UnitCost: 8, MarginPercent: 30, Step: lo.ToPtr(25)},
			},
			valid: true,
		},
		{name: "Negative min quantity", tiers: []entity.PricingTier{{MinQuantity: -1}}},
		{name: "Negative setup cost", tiers: []entity.PricingTier{{MinQuantity: 1, SetupCost: -5}}},
		{name: "Negative unit cost", tiers: []entity.PricingTier{{MinQuantity: 1, UnitCost: -0.5}}},
		{name: "NaN unit cost", tiers: []entity.PricingTier{{MinQuantity: 1, UnitCost: math.NaN()}}},
		{name: "Infinite margin", tiers: []entity.PricingTier{{MinQuantity: 1, MarginPercent: math.Inf(-1)}}},
		{name: "Zero step", tiers: []entity.PricingTier{{MinQuantity: 1, Step: lo.ToPtr(0)}}},
		{name: "Duplicate minimum", tiers: []entity.PricingTier{{MinQuantity: 10}, {MinQuantity: 10, UnitCost: 1}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			err := pricing.ValidateTiers(tc.tiers)
			if tc.valid {
				rq.NoError(err)

				return
			}

			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
			rq.True(failure.HasCode(err, errcodes.InvalidTier))
		})
	}
}

func TestValidateOptions(t *testing.T) {
	testCases := []struct {
		name        string
		definitions []entity.OptionDefinition
		valid       bool
	}{
		{
			name: "All kinds",
			definitions: []entity.OptionDefinition{
				finishOption(),
				{Label: "Sides", Kind: value.OptionKindNumber, Min: lo.ToPtr(1.0), Max: lo.ToPtr(2.0)},
				{Label: "Name", Kind: value.OptionKindText, Placeholder: "Name on card"},
			},
			valid: true,
		},
		{name: "Empty label", definitions: []entity.OptionDefinition{{Label: "  ", Kind: value.OptionKindText}}},
		{
			name: "Duplicate label",
			definitions: []entity.OptionDefinition{
				{Label: "Name", Kind: value.OptionKindText},
				{Label: "Name", Kind: value.OptionKindText},
			},
		},
		{name: "Unknown kind", definitions: []entity.OptionDefinition{{Label: "Foil", Kind: "checkbox"}}},
		{name: "Dropdown without values", definitions: []entity.OptionDefinition{{Label: "Foil", Kind: value.OptionKindDropdown}}},
		{
			name: "Dropdown with duplicate values",
			definitions: []entity.OptionDefinition{{
				Label:  "Foil",
				Kind:   value.OptionKindDropdown,
				Values: []entity.OptionValue{{Value: "Gold"}, {Value: "Gold", CostAdjustment: 5}},
			}},
		},
		{
			name: "Number with min above max",
			definitions: []entity.OptionDefinition{
				{Label: "Sides", Kind: value.OptionKindNumber, Min: lo.ToPtr(3.0), Max: lo.ToPtr(2.0)},
			},
		},
		{
			name: "Text with values",
			definitions: []entity.OptionDefinition{
				{Label: "Name", Kind: value.OptionKindText, Values: []entity.OptionValue{{Value: "x"}}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			err := pricing.ValidateOptions(tc.definitions)
			if tc.valid {
				rq.NoError(err)

				return
			}

			rq.Error(err)
			rq.True(failure.HasCode(err, errcodes.InvalidOption))
		})
	}
}

func TestValidateLineItem(t *testing.T) {
	rq := require.New(t)

	item := entity.LineItem{
		Quantity:          100,
		TierTable:         []entity.PricingTier{baseTier()},
		OptionDefinitions: []entity.OptionDefinition{finishOption()},
	}
	rq.NoError(pricing.ValidateLineItem(item))

	item.Quantity = 0
	rq.True(failure.HasCode(pricing.ValidateLineItem(item), errcodes.InvalidQuantity))
}
