package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/service/pricing"
	"github.com/enfash/PrintSwift-sub000/internal/domain/service/quote"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
	"github.com/enfash/PrintSwift-sub000/pkg/lox"
	"github.com/enfash/PrintSwift-sub000/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type draftFile struct {
	Products    map[string]productDef `json:"products"`
	Lines       []lineDef             `json:"lines"`
	Adjustments rest.Adjustments      `json:"adjustments"`
}

type productDef struct {
	Name    string                  `json:"name"`
	Tiers   []rest.Tier             `json:"tiers"`
	Options []rest.OptionDefinition `json:"options"`
}

type lineDef struct {
	Product    string                `json:"product"`
	Quantity   int                   `json:"quantity"`
	Selections []rest.SelectedOption `json:"selections"`
}

type lineResult struct {
	Name       string
	Resolution entity.Resolution
}

type result struct {
	Lines   []lineResult
	Summary entity.QuoteSummary
}

func readDraft(r io.Reader) (draftFile, error) {
	var draft draftFile

	if err := json.NewDecoder(r).Decode(&draft); err != nil {
		return draftFile{}, fmt.Errorf("json.Decode: %w", err)
	}

	return draft, nil
}

func calculate(draft draftFile) (result, error) {
	if err := quote.ValidateAdjustments(toAdjustments(draft.Adjustments)); err != nil {
		return result{}, err
	}

	lines := make([]lineResult, 0, len(draft.Lines))

	for i, line := range draft.Lines {
		product, ok := draft.Products[line.Product]
		if !ok {
			return result{}, domain.NewInvalidInputError(
				errcodes.InvalidLineItem, "line #%d: unknown product %q", i+1, line.Product,
			)
		}

		tiers := lox.Map(product.Tiers, toTier)
		if err := pricing.ValidateTiers(tiers); err != nil {
			return result{}, fmt.Errorf("product %q: %w", line.Product, err)
		}

		resolution, err := pricing.ResolveLineItem(entity.LineItem{
			Quantity:          line.Quantity,
			TierTable:         tiers,
			OptionDefinitions: lox.Map(product.Options, toOption),
			Selections: lox.Map(line.Selections, func(s rest.SelectedOption) entity.SelectedOption {
				return entity.SelectedOption{Label: s.Label, Value: s.Value}
			}),
		})
		if err != nil {
			return result{}, fmt.Errorf("line #%d: %w", i+1, err)
		}

		lines = append(lines, lineResult{
			Name:       product.Name,
			Resolution: resolution,
		})
	}

	summary, err := quote.Aggregate(
		lox.Map(lines, func(l lineResult) entity.PricedLine { return l.Resolution.Line() }),
		toAdjustments(draft.Adjustments),
	)
	if err != nil {
		return result{}, err
	}

	return result{Lines: lines, Summary: summary}, nil
}

func renderTable(w io.Writer, res result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "#\tProduct\tQty\tUnit\tLine\t")

	for i, line := range res.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t\n",
			i+1, line.Name, line.Resolution.Quantity,
			formatPrice(line.Resolution.UnitPrice()), formatPrice(line.Resolution.Price),
		)
	}

	s := res.Summary

	fmt.Fprintln(tw, "\t\t\t\t\t")
	fmt.Fprintf(tw, "\t\t\tSubtotal\t%s\t\n", value.FormatMoney(s.Subtotal))
	fmt.Fprintf(tw, "\t\t\tDiscount\t-%s\t\n", value.FormatMoney(s.Discount))
	fmt.Fprintf(tw, "\t\t\tDelivery\t%s\t\n", value.FormatMoney(s.DeliveryFee))
	fmt.Fprintf(tw, "\t\t\tTax\t%s\t\n", value.FormatMoney(s.TaxAmount))
	fmt.Fprintf(tw, "\t\t\tTotal\t%s\t\n", value.FormatMoney(s.Total))
	fmt.Fprintf(tw, "\t\t\tDeposit\t%s\t\n", value.FormatMoney(s.DepositAmount))
	fmt.Fprintf(tw, "\t\t\tBalance\t%s\t\n", value.FormatMoney(s.RemainingBalance))

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush: %w", err)
	}

	if s.Partial() {
		fmt.Fprintf(w, "\n%d line(s) could not be priced and are excluded from the total.\n", s.UnpricedLines)
	}

	return nil
}

func renderJSON(w io.Writer, res result) error {
	s := res.Summary

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(rest.QuoteSummary{
		Subtotal:           s.Subtotal,
		Discount:           s.Discount,
		DiscountedSubtotal: s.DiscountedSubtotal,
		DeliveryFee:        s.DeliveryFee,
		TaxAmount:          s.TaxAmount,
		Total:              s.Total,
		DepositAmount:      s.DepositAmount,
		RemainingBalance:   s.RemainingBalance,
		PricedLines:        s.PricedLines,
		UnpricedLines:      s.UnpricedLines,
		Partial:            s.Partial(),
	}); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}

	return nil
}

func formatPrice(price entity.Price) string {
	amount, ok := price.Amount()
	if !ok {
		return "—"
	}

	return value.FormatMoney(amount)
}

func toTier(t rest.Tier) entity.PricingTier {
	return entity.PricingTier{
		MinQuantity:   t.MinQuantity,
		SetupCost:     t.SetupCost,
		UnitCost:      t.UnitCost,
		MarginPercent: t.MarginPercent,
		Step:          t.Step,
	}
}

func toOption(o rest.OptionDefinition) entity.OptionDefinition {
	return entity.OptionDefinition{
		Label: o.Label,
		Kind:  value.OptionKind(o.Kind),
		Values: lox.Map(o.Values, func(v rest.OptionValue) entity.OptionValue {
			return entity.OptionValue{Value: v.Value, CostAdjustment: v.CostAdjustment}
		}),
		Min:         o.Min,
		Max:         o.Max,
		Placeholder: o.Placeholder,
	}
}

func toAdjustments(a rest.Adjustments) entity.QuoteAdjustments {
	return entity.QuoteAdjustments{
		Discount:       a.Discount,
		DeliveryFee:    a.DeliveryFee,
		TaxRatePercent: a.TaxRatePercent,
		DepositPercent: a.DepositPercent,
	}
}
