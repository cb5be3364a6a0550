package entity

import (
	"fmt"

	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
)

// UnpricedReason объясняет, почему цену получить нельзя.
type UnpricedReason string

const (
	ReasonNoMatchingTier     UnpricedReason = "no_matching_tier"
	ReasonMarginNotPriceable UnpricedReason = "margin_not_priceable"
	ReasonNotANumber         UnpricedReason = "not_a_number"
	ReasonNegativePrice      UnpricedReason = "negative_price"
)

func (r UnpricedReason) String() string {
	return string(r)
}

// Price — либо цена, либо состояние "без цены". Нулевое значение — без цены,
// поэтому ₦0 нельзя получить случайно: только через PricedAt(0).
type Price struct {
	amount float64
	priced bool
	reason UnpricedReason
}

func PricedAt(amount float64) Price {
	return Price{amount: amount, priced: true}
}

func Unpriced(reason UnpricedReason) Price {
	return Price{reason: reason}
}

func (p Price) IsPriced() bool {
	return p.priced
}

// Amount возвращает сумму и признак наличия цены.
func (p Price) Amount() (float64, bool) {
	return p.amount, p.priced
}

func (p Price) Reason() UnpricedReason {
	return p.reason
}

func (p Price) String() string {
	if !p.priced {
		if p.reason == "" {
			return "unpriced"
		}

		return fmt.Sprintf("unpriced (%s)", p.reason)
	}

	return value.FormatMoney(p.amount)
}
