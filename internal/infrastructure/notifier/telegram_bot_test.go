package notifier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/internal/infrastructure/notifier"
)

func TestFormatQuote(t *testing.T) {
	rq := require.New(t)

	quote := entity.Quote{
		Number:   "Q-20260115-9M4E2MR0",
		Status:   value.QuoteStatusDraft,
		Customer: entity.Customer{Name: "Bola <Admin>", Email: "bola@example.com"},
		Notes:    "Deliver to Ikeja",
		Lines: []entity.QuoteLine{
			{
				ProductName: "A5 Flyers",
				Quantity:    100,
				Selections:  []entity.SelectedOption{{Label: "Finish", Value: "Gloss"}},
				LinePrice:   entity.PricedAt(60000),
			},
			{
				ProductName: "Banner",
				Quantity:    1,
				LinePrice:   entity.Unpriced(entity.ReasonNoMatchingTier),
			},
		},
		Adjustments: entity.QuoteAdjustments{Discount: 10000, DeliveryFee: 5000, TaxRatePercent: 7.5},
		Summary: entity.QuoteSummary{
			Subtotal:           60000,
			Discount:           10000,
			DiscountedSubtotal: 50000,
			DeliveryFee:        5000,
			TaxAmount:          3750,
			Total:              58750,
			RemainingBalance:   58750,
			PricedLines:        1,
			UnpricedLines:      1,
		},
	}

	text := notifier.FormatQuote(quote)

	rq.Contains(text, "<b>Quote Q-20260115-9M4E2MR0</b> (draft)")
	rq.Contains(text, "Bola &lt;Admin&gt; · bola@example.com")
	rq.Contains(text, "1. A5 Flyers × 100: ₦60,000.00")
	rq.Contains(text, "    Finish: Gloss")
	rq.Contains(text, "2. Banner × 1: unpriced (no_matching_tier)")
	rq.Contains(text, "Discount: -₦10,000.00")
	rq.Contains(text, "Tax (7.5%): ₦3,750.00")
	rq.Contains(text, "<b>Total: ₦58,750.00</b>")
	rq.Contains(text, "1 of 2 lines have no price")
	rq.Contains(text, "Deliver to Ikeja")
	rq.NotContains(text, "Deposit")
}
