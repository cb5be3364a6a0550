package entity

// StepCheck — результат проверки кратности количества.
// Lower и Upper — ближайшие допустимые количества снизу и сверху в рамках
// выбранной ступени; направление округления выбирает вызывающая сторона.
type StepCheck struct {
	Quantity int
	Matched  bool
	Tier     *PricingTier
	Valid    bool
	Lower    int
	Upper    int
}
