package entity

// LineItem — снимок конфигурации одной позиции. Создаётся на каждый расчёт,
// не изменяется на месте.
type LineItem struct {
	Quantity          int
	TierTable         []PricingTier
	OptionDefinitions []OptionDefinition
	Selections        []SelectedOption
}

// PricedLine — вход агрегатора: количество и цена за единицу (или её отсутствие).
type PricedLine struct {
	Quantity  int
	UnitPrice Price
}
