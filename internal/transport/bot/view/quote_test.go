package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/internal/transport/bot/view"
)

func TestQuoteList(t *testing.T) {
	rq := require.New(t)

	rq.Equal(view.QuotesEmpty, view.QuoteList(nil))

	id := value.NewQuoteID()
	text := view.QuoteList([]entity.Quote{{
		ID:       id,
		Number:   "Q-20260115-9M4E2MR0",
		Customer: entity.Customer{Name: "Femi & Sons"},
		Summary:  entity.QuoteSummary{Total: 58750},
	}})

	rq.Contains(text, "Q-20260115-9M4E2MR0 · Femi &amp; Sons · ₦58,750.00 · <code>"+id.String()+"</code>")
}

func TestPrice(t *testing.T) {
	rq := require.New(t)
	step := 50

	text := view.Price("Roll-up Banner", entity.Resolution{
		Price:    entity.PricedAt(36667),
		Quantity: 100,
	}, entity.StepCheck{Matched: true, Valid: false, Lower: 60, Upper: 110, Tier: &entity.PricingTier{Step: &step}})

	rq.Contains(text, "<b>Roll-up Banner</b> × 100: ₦36,667.00")
	rq.Contains(text, "за штуку: ₦366.67")
	rq.Contains(text, "60 или 110")

	text = view.Price("Banner", entity.Resolution{
		Price:    entity.Unpriced(entity.ReasonNoMatchingTier),
		Quantity: 5,
	}, entity.StepCheck{})

	rq.Contains(text, "unpriced (no_matching_tier)")
	rq.NotContains(text, "за штуку")
}
