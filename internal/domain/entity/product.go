package entity

import (
	"time"

	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
)

type Product struct {
	ID          value.ProductID
	Slug        string
	Name        string
	Category    string
	Description string
	Active      bool
	Tiers       []PricingTier
	Options     []OptionDefinition
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LineItem собирает снимок позиции для расчёта цены.
func (p Product) LineItem(quantity int, selections []SelectedOption) LineItem {
	return LineItem{
		Quantity:          quantity,
		TierTable:         p.Tiers,
		OptionDefinitions: p.Options,
		Selections:        selections,
	}
}

type ProductFilter struct {
	Category   string
	ActiveOnly bool
	Limit      int
	Offset     int
}
