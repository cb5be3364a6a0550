package entity

import (
	"time"

	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
)

type QuoteAdjustments struct {
	Discount       float64 `json:"discount"`
	DeliveryFee    float64 `json:"delivery_fee"`
	TaxRatePercent float64 `json:"tax_rate_percent"`
	DepositPercent float64 `json:"deposit_percent"`
}

// QuoteSummary — итоги сметы, все суммы округлены до копеек.
type QuoteSummary struct {
	Subtotal           float64 `json:"subtotal"`
	Discount           float64 `json:"discount"`
	DiscountedSubtotal float64 `json:"discounted_subtotal"`
	DeliveryFee        float64 `json:"delivery_fee"`
	TaxAmount          float64 `json:"tax_amount"`
	Total              float64 `json:"total"`
	DepositAmount      float64 `json:"deposit_amount"`
	RemainingBalance   float64 `json:"remaining_balance"`
	PricedLines        int     `json:"priced_lines"`
	UnpricedLines      int     `json:"unpriced_lines"`
}

// Partial — в смете есть позиции без цены.
func (s QuoteSummary) Partial() bool {
	return s.UnpricedLines > 0
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type QuoteLine struct {
	ProductID   value.ProductID
	ProductName string
	Quantity    int
	Selections  []SelectedOption
	LinePrice   Price
	UnitPrice   Price
}

type Quote struct {
	ID          value.QuoteID
	Number      string
	Status      value.QuoteStatus
	Customer    Customer
	Notes       string
	Lines       []QuoteLine
	Adjustments QuoteAdjustments
	Summary     QuoteSummary
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DraftLine struct {
	ProductID  value.ProductID
	Quantity   int
	Selections []SelectedOption
}

// QuoteDraft — то, что присылает форма: позиции и корректировки без цен.
type QuoteDraft struct {
	Customer    Customer
	Notes       string
	Lines       []DraftLine
	Adjustments QuoteAdjustments
}
