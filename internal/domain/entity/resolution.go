package entity

// Resolution — результат расчёта цены одной позиции.
// Price — цена всей позиции за Quantity единиц, округлённая до целых.
type Resolution struct {
	Price              Price
	Quantity           int
	Tier               *PricingTier
	OptionsCost        float64
	QuantityMultiplier float64
	TotalCost          float64
}

// UnitPrice — цена позиции, делённая на количество, без округления:
// Quantity * UnitPrice совпадает с Price после округления до копеек.
func (r Resolution) UnitPrice() Price {
	amount, ok := r.Price.Amount()
	if !ok || r.Quantity <= 0 {
		return r.Price
	}

	return PricedAt(amount / float64(r.Quantity))
}

// Line превращает результат в пару (количество, цена за единицу) для агрегатора.
func (r Resolution) Line() PricedLine {
	return PricedLine{
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice(),
	}
}
