package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
)

// QuoteList рендерит короткий список смет.
func QuoteList(quotes []entity.Quote) string {
	if len(quotes) == 0 {
		return QuotesEmpty
	}

	var sb strings.Builder

	sb.WriteString(QuotesHeader)

	for _, quote := range quotes {
		fmt.Fprintf(&sb, QuoteItemTemplate,
			html.EscapeString(quote.Number),
			html.EscapeString(quote.Customer.Name),
			value.FormatMoney(quote.Summary.Total),
			quote.ID,
		)
	}

	return sb.String()
}

// Price рендерит результат расчёта цены товара.
func Price(product string, resolution entity.Resolution, check entity.StepCheck) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, PriceTemplate, html.EscapeString(product), resolution.Quantity, resolution.Price)

	if unit := resolution.UnitPrice(); unit.IsPriced() {
		amount, _ := unit.Amount()
		fmt.Fprintf(&sb, "за штуку: %s\n", value.FormatMoney(value.RoundCents(amount)))
	}

	if check.Matched && !check.Valid {
		fmt.Fprintf(&sb, PriceStepTemplate, check.Lower, check.Upper)
	}

	return sb.String()
}
