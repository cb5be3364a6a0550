package server

import (
	"fmt"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
	"github.com/enfash/PrintSwift-sub000/pkg/lox"
	"github.com/enfash/PrintSwift-sub000/pkg/rest"
)

func newRESTPrice(price entity.Price) rest.Price {
	amount, ok := price.Amount()
	if !ok {
		return rest.Price{
			Status: rest.PriceStatusUnpriced,
			Reason: price.Reason().String(),
		}
	}

	return rest.Price{
		Status: rest.PriceStatusPriced,
		Amount: lo.ToPtr(amount),
	}
}

func newRESTTier(tier entity.PricingTier) rest.Tier {
	return rest.Tier{
		MinQuantity:   tier.MinQuantity,
		SetupCost:     tier.SetupCost,
		UnitCost:      tier.UnitCost,
		MarginPercent: tier.MarginPercent,
		Step:          tier.Step,
	}
}

func newDomainTier(tier rest.Tier) entity.PricingTier {
	return entity.PricingTier{
		MinQuantity:   tier.MinQuantity,
		SetupCost:     tier.SetupCost,
		UnitCost:      tier.UnitCost,
		MarginPercent: tier.MarginPercent,
		Step:          tier.Step,
	}
}

func newRESTOption(def entity.OptionDefinition) rest.OptionDefinition {
	return rest.OptionDefinition{
		Label: def.Label,
		Kind:  def.Kind.String(),
		Values: lox.Map(def.Values, func(v entity.OptionValue) rest.OptionValue {
			return rest.OptionValue{Value: v.Value, CostAdjustment: v.CostAdjustment}
		}),
		Min:         def.Min,
		Max:         def.Max,
		Placeholder: def.Placeholder,
	}
}

// newDomainOption не проверяет kind: неизвестный тип отклоняет движок
// с кодом InvalidOption.
func newDomainOption(def rest.OptionDefinition) entity.OptionDefinition {
	return entity.OptionDefinition{
		Label: def.Label,
		Kind:  value.OptionKind(def.Kind),
		Values: lox.Map(def.Values, func(v rest.OptionValue) entity.OptionValue {
			return entity.OptionValue{Value: v.Value, CostAdjustment: v.CostAdjustment}
		}),
		Min:         def.Min,
		Max:         def.Max,
		Placeholder: def.Placeholder,
	}
}

func newDomainSelections(selections []rest.SelectedOption) []entity.SelectedOption {
	return lox.Map(selections, func(s rest.SelectedOption) entity.SelectedOption {
		return entity.SelectedOption{Label: s.Label, Value: s.Value}
	})
}

func newRESTSelections(selections []entity.SelectedOption) []rest.SelectedOption {
	return lox.Map(selections, func(s entity.SelectedOption) rest.SelectedOption {
		return rest.SelectedOption{Label: s.Label, Value: s.Value}
	})
}

func newRESTResolution(resolution entity.Resolution) rest.Resolution {
	var tier *rest.Tier
	if resolution.Tier != nil {
		tier = lo.ToPtr(newRESTTier(*resolution.Tier))
	}

	return rest.Resolution{
		Price:              newRESTPrice(resolution.Price),
		UnitPrice:          newRESTPrice(resolution.UnitPrice()),
		Quantity:           resolution.Quantity,
		Tier:               tier,
		OptionsCost:        resolution.OptionsCost,
		QuantityMultiplier: resolution.QuantityMultiplier,
		TotalCost:          resolution.TotalCost,
	}
}

func newRESTStepCheck(check entity.StepCheck) rest.StepCheck {
	var tier *rest.Tier
	if check.Tier != nil {
		tier = lo.ToPtr(newRESTTier(*check.Tier))
	}

	return rest.StepCheck{
		Quantity: check.Quantity,
		Matched:  check.Matched,
		Valid:    check.Valid,
		Tier:     tier,
		Lower:    check.Lower,
		Upper:    check.Upper,
	}
}

func newDomainPricedLine(line rest.AggregateLine) entity.PricedLine {
	price := entity.Unpriced("")
	if line.UnitPrice != nil {
		price = entity.PricedAt(*line.UnitPrice)
	}

	return entity.PricedLine{Quantity: line.Quantity, UnitPrice: price}
}

func newDomainAdjustments(adj rest.Adjustments) entity.QuoteAdjustments {
	return entity.QuoteAdjustments{
		Discount:       adj.Discount,
		DeliveryFee:    adj.DeliveryFee,
		TaxRatePercent: adj.TaxRatePercent,
		DepositPercent: adj.DepositPercent,
	}
}

func newRESTAdjustments(adj entity.QuoteAdjustments) rest.Adjustments {
	return rest.Adjustments{
		Discount:       adj.Discount,
		DeliveryFee:    adj.DeliveryFee,
		TaxRatePercent: adj.TaxRatePercent,
		DepositPercent: adj.DepositPercent,
	}
}

func newRESTSummary(summary entity.QuoteSummary) rest.QuoteSummary {
	return rest.QuoteSummary{
		Subtotal:           summary.Subtotal,
		Discount:           summary.Discount,
		DiscountedSubtotal: summary.DiscountedSubtotal,
		DeliveryFee:        summary.DeliveryFee,
		TaxAmount:          summary.TaxAmount,
		Total:              summary.Total,
		DepositAmount:      summary.DepositAmount,
		RemainingBalance:   summary.RemainingBalance,
		PricedLines:        summary.PricedLines,
		UnpricedLines:      summary.UnpricedLines,
		Partial:            summary.Partial(),
	}
}

func newRESTProduct(product entity.Product) rest.Product {
	return rest.Product{
		ID:          product.ID.String(),
		Slug:        product.Slug,
		Name:        product.Name,
		Category:    product.Category,
		Description: product.Description,
		Active:      product.Active,
		Tiers:       lox.Map(product.Tiers, newRESTTier),
		Options:     lox.Map(product.Options, newRESTOption),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func newDomainProduct(input rest.ProductInput) entity.Product {
	return entity.Product{
		Slug:        input.Slug,
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Active:      input.Active,
		Tiers:       lox.Map(input.Tiers, newDomainTier),
		Options:     lox.Map(input.Options, newDomainOption),
	}
}

func newDomainDraft(draft rest.QuoteDraft) (entity.QuoteDraft, error) {
	lines, err := lox.MapErr(draft.Lines, func(line rest.DraftLine) (entity.DraftLine, error) {
		productID, err := parseProductID(line.ProductID)
		if err != nil {
			return entity.DraftLine{}, err
		}

		return entity.DraftLine{
			ProductID:  productID,
			Quantity:   line.Quantity,
			Selections: newDomainSelections(line.Selections),
		}, nil
	})
	if err != nil {
		return entity.QuoteDraft{}, err
	}

	return entity.QuoteDraft{
		Customer: entity.Customer{
			Name:  draft.Customer.Name,
			Email: draft.Customer.Email,
			Phone: draft.Customer.Phone,
		},
		Notes:       draft.Notes,
		Lines:       lines,
		Adjustments: newDomainAdjustments(draft.Adjustments),
	}, nil
}

func newRESTQuote(quote entity.Quote) rest.Quote {
	result := rest.Quote{
		Status: quote.Status.String(),
		Customer: rest.Customer{
			Name:  quote.Customer.Name,
			Email: quote.Customer.Email,
			Phone: quote.Customer.Phone,
		},
		Notes: quote.Notes,
		Lines: lox.Map(quote.Lines, func(line entity.QuoteLine) rest.QuoteLine {
			return rest.QuoteLine{
				ProductID:   line.ProductID.String(),
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
				Selections:  newRESTSelections(line.Selections),
				LinePrice:   newRESTPrice(line.LinePrice),
				UnitPrice:   newRESTPrice(line.UnitPrice),
			}
		}),
		Adjustments: newRESTAdjustments(quote.Adjustments),
		Summary:     newRESTSummary(quote.Summary),
	}

	if !quote.ID.IsZero() {
		result.ID = quote.ID.String()
		result.Number = quote.Number
		result.CreatedAt = timePtr(quote.CreatedAt)
		result.UpdatedAt = timePtr(quote.UpdatedAt)
	}

	return result
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

func parseProductID(raw string) (value.ProductID, error) {
	id, err := value.ParseProductID(raw)
	if err != nil {
		return value.ProductID{}, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseProductID: %w", err),
			failure.WithCode(errcodes.InvalidProductID),
			failure.WithDescription(fmt.Sprintf("invalid product id %q", raw)),
		)
	}

	return id, nil
}

func parseQuoteID(raw string) (value.QuoteID, error) {
	id, err := value.ParseQuoteID(raw)
	if err != nil {
		return value.QuoteID{}, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseQuoteID: %w", err),
			failure.WithCode(errcodes.InvalidQuoteID),
			failure.WithDescription(fmt.Sprintf("invalid quote id %q", raw)),
		)
	}

	return id, nil
}
