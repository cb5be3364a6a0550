// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для обращения в поддержку
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string

// PriceStatus Статус цены
type PriceStatus string

const (
	PriceStatusPriced   PriceStatus = "priced"
	PriceStatusUnpriced PriceStatus = "unpriced"
)

// Price Цена или её отсутствие. Amount заполнен только для priced.
type Price struct {
	Status PriceStatus `json:"status"`
	Amount *float64    `json:"amount,omitempty"`
	Reason string      `json:"reason,omitempty"`
}

// Tier Ценовая ступень
type Tier struct {
	MinQuantity   int     `json:"minQuantity"`
	SetupCost     float64 `json:"setupCost"`
	UnitCost      float64 `json:"unitCost"`
	MarginPercent float64 `json:"marginPercent"`
	Step          *int    `json:"step,omitempty"`
}

type OptionValue struct {
	Value          string  `json:"value"`
	CostAdjustment float64 `json:"costAdjustment"`
}

// OptionDefinition Опция кастомизации товара
type OptionDefinition struct {
	Label       string        `json:"label"`
	Kind        string        `json:"kind"`
	Values      []OptionValue `json:"values,omitempty"`
	Min         *float64      `json:"min,omitempty"`
	Max         *float64      `json:"max,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
}

type SelectedOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ResolveRequest Расчёт цены по переданной таблице ступеней
type ResolveRequest struct {
	Quantity   int                `json:"quantity"`
	Tiers      []Tier             `json:"tiers"`
	Options    []OptionDefinition `json:"options"`
	Selections []SelectedOption   `json:"selections"`
}

// Resolution Результат расчёта цены позиции
type Resolution struct {
	Price              Price   `json:"price"`
	UnitPrice          Price   `json:"unitPrice"`
	Quantity           int     `json:"quantity"`
	Tier               *Tier   `json:"tier,omitempty"`
	OptionsCost        float64 `json:"optionsCost"`
	QuantityMultiplier float64 `json:"quantityMultiplier"`
	TotalCost          float64 `json:"totalCost"`
}

// AggregateLine Позиция для агрегации. UnitPrice = null — позиция без цены.
type AggregateLine struct {
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unitPrice"`
}

type Adjustments struct {
	Discount       float64 `json:"discount"`
	DeliveryFee    float64 `json:"deliveryFee"`
	TaxRatePercent float64 `json:"taxRatePercent"`
	DepositPercent float64 `json:"depositPercent"`
}

type AggregateRequest struct {
	Lines       []AggregateLine `json:"lines"`
	Adjustments Adjustments     `json:"adjustments"`
}

// QuoteSummary Итоги сметы
type QuoteSummary struct {
	Subtotal           float64 `json:"subtotal"`
	Discount           float64 `json:"discount"`
	DiscountedSubtotal float64 `json:"discountedSubtotal"`
	DeliveryFee        float64 `json:"deliveryFee"`
	TaxAmount          float64 `json:"taxAmount"`
	Total              float64 `json:"total"`
	DepositAmount      float64 `json:"depositAmount"`
	RemainingBalance   float64 `json:"remainingBalance"`
	PricedLines        int     `json:"pricedLines"`
	UnpricedLines      int     `json:"unpricedLines"`
	Partial            bool    `json:"partial"`
}

type StepRequest struct {
	Quantity int    `json:"quantity"`
	Tiers    []Tier `json:"tiers"`
}

// StepCheck Проверка кратности количества
type StepCheck struct {
	Quantity int   `json:"quantity"`
	Matched  bool  `json:"matched"`
	Valid    bool  `json:"valid"`
	Tier     *Tier `json:"tier,omitempty"`
	Lower    int   `json:"lower"`
	Upper    int   `json:"upper"`
}

// ProductInput Данные для создания и обновления товара
type ProductInput struct {
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Active      bool               `json:"active"`
	Tiers       []Tier             `json:"tiers"`
	Options     []OptionDefinition `json:"options"`
}

type Product struct {
	ID          string             `json:"id"`
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Active      bool               `json:"active"`
	Tiers       []Tier             `json:"tiers"`
	Options     []OptionDefinition `json:"options"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type ProductList struct {
	Products []Product `json:"products"`
}

// PriceRequest Расчёт цены товара из каталога
type PriceRequest struct {
	Quantity   int              `json:"quantity"`
	Selections []SelectedOption `json:"selections"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

type DraftLine struct {
	ProductID  string           `json:"productId" validate:"required"`
	Quantity   int              `json:"quantity"`
	Selections []SelectedOption `json:"selections"`
}

// QuoteDraft Черновик сметы от формы
type QuoteDraft struct {
	Customer    Customer    `json:"customer"`
	Notes       string      `json:"notes"`
	Lines       []DraftLine `json:"lines" validate:"dive"`
	Adjustments Adjustments `json:"adjustments"`
}

type QuoteLine struct {
	ProductID   string           `json:"productId"`
	ProductName string           `json:"productName"`
	Quantity    int              `json:"quantity"`
	Selections  []SelectedOption `json:"selections"`
	LinePrice   Price            `json:"linePrice"`
	UnitPrice   Price            `json:"unitPrice"`
}

type Quote struct {
	ID          string       `json:"id,omitempty"`
	Number      string       `json:"number,omitempty"`
	Status      string       `json:"status"`
	Customer    Customer     `json:"customer"`
	Notes       string       `json:"notes"`
	Lines       []QuoteLine  `json:"lines"`
	Adjustments Adjustments  `json:"adjustments"`
	Summary     QuoteSummary `json:"summary"`
	CreatedAt   *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"`
}

type QuoteList struct {
	Quotes []Quote `json:"quotes"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent accepted declined"`
}
