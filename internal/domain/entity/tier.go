package entity

// PricingTier — ценовая ступень товара: действует для заказов от MinQuantity.
// Порядок ступеней в таблице значения не имеет.
type PricingTier struct {
	MinQuantity   int     `json:"min_quantity"`
	SetupCost     float64 `json:"setup_cost"`
	UnitCost      float64 `json:"unit_cost"`
	MarginPercent float64 `json:"margin_percent"`
	Step          *int    `json:"step,omitempty"`
}

// HasStep сообщает, ограничена ли ступень кратностью количества.
func (t PricingTier) HasStep() bool {
	return t.Step != nil
}
