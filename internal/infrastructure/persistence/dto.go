package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// productSchema — строка таблицы products, таблицы ступеней и опции в JSONB.
type productSchema struct {
	ID          uuid.UUID `db:"id"`
	Slug        string    `db:"slug"`
	Name        string    `db:"name"`
	Category    string    `db:"category"`
	Description string    `db:"description"`
	Active      bool      `db:"active"`
	Tiers       []byte    `db:"tiers"`
	Options     []byte    `db:"options"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func fromProduct(p *entity.Product) (*productSchema, error) {
	tiers, err := marshalList(p.Tiers)
	if err != nil {
		return nil, fmt.Errorf("marshal tiers: %w", err)
	}

	options, err := marshalList(p.Options)
	if err != nil {
		return nil, fmt.Errorf("marshal options: %w", err)
	}

	return &productSchema{
		ID:          uuid.UUID(p.ID),
		Slug:        p.Slug,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Active:      p.Active,
		Tiers:       tiers,
		Options:     options,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (s *productSchema) toDomain() (entity.Product, error) {
	product := entity.Product{
		ID:          value.ProductID(s.ID),
		Slug:        s.Slug,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt.UTC(),
		UpdatedAt:   s.UpdatedAt.UTC(),
	}

	if err := json.Unmarshal(s.Tiers, &product.Tiers); err != nil {
		return entity.Product{}, fmt.Errorf("unmarshal tiers: %w", err)
	}

	if err := json.Unmarshal(s.Options, &product.Options); err != nil {
		return entity.Product{}, fmt.Errorf("unmarshal options: %w", err)
	}

	return product, nil
}

type quoteSchema struct {
	ID            string    `db:"id"`
	Number        string    `db:"number"`
	Status        string    `db:"status"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	CustomerPhone string    `db:"customer_phone"`
	Notes         string    `db:"notes"`
	Adjustments   []byte    `db:"adjustments"`
	Summary       []byte    `db:"summary"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func fromQuote(q *entity.Quote) (*quoteSchema, error) {
	adjustments, err := json.Marshal(q.Adjustments)
	if err != nil {
		return nil, fmt.Errorf("marshal adjustments: %w", err)
	}

	summary, err := json.Marshal(q.Summary)
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}

	return &quoteSchema{
		ID:            q.ID.String(),
		Number:        q.Number,
		Status:        q.Status.String(),
		CustomerName:  q.Customer.Name,
		CustomerEmail: q.Customer.Email,
		CustomerPhone: q.Customer.Phone,
		Notes:         q.Notes,
		Adjustments:   adjustments,
		Summary:       summary,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}, nil
}

func (s *quoteSchema) toDomain(lines []quoteLineSchema) (entity.Quote, error) {
	id, err := value.ParseQuoteID(s.ID)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("value.ParseQuoteID: %w", err)
	}

	status, err := value.ParseQuoteStatus(s.Status)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("value.ParseQuoteStatus: %w", err)
	}

	quote := entity.Quote{
		ID:     id,
		Number: s.Number,
		Status: status,
		Customer: entity.Customer{
			Name:  s.CustomerName,
			Email: s.CustomerEmail,
			Phone: s.CustomerPhone,
		},
		Notes:     s.Notes,
		Lines:     make([]entity.QuoteLine, 0, len(lines)),
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}

	if err := json.Unmarshal(s.Adjustments, &quote.Adjustments); err != nil {
		return entity.Quote{}, fmt.Errorf("unmarshal adjustments: %w", err)
	}

	if err := json.Unmarshal(s.Summary, &quote.Summary); err != nil {
		return entity.Quote{}, fmt.Errorf("unmarshal summary: %w", err)
	}

	for _, line := range lines {
		domainLine, err := line.toDomain()
		if err != nil {
			return entity.Quote{}, err
		}

		quote.Lines = append(quote.Lines, domainLine)
	}

	return quote, nil
}

// quoteLineSchema хранит цену как nullable сумму и причину: NULL — позиция без цены.
type quoteLineSchema struct {
	QuoteID        string          `db:"quote_id"`
	Position       int             `db:"position"`
	ProductID      uuid.UUID       `db:"product_id"`
	ProductName    string          `db:"product_name"`
	Quantity       int             `db:"quantity"`
	Selections     []byte          `db:"selections"`
	LineAmount     sql.NullFloat64 `db:"line_amount"`
	UnitAmount     sql.NullFloat64 `db:"unit_amount"`
	UnpricedReason string          `db:"unpriced_reason"`
}

func fromQuoteLine(quoteID value.QuoteID, position int, line entity.QuoteLine) (quoteLineSchema, error) {
	selections, err := marshalList(line.Selections)
	if err != nil {
		return quoteLineSchema{}, fmt.Errorf("marshal selections: %w", err)
	}

	lineAmount, linePriced := line.LinePrice.Amount()
	unitAmount, unitPriced := line.UnitPrice.Amount()

	return quoteLineSchema{
		QuoteID:        quoteID.String(),
		Position:       position,
		ProductID:      uuid.UUID(line.ProductID),
		ProductName:    line.ProductName,
		Quantity:       line.Quantity,
		Selections:     selections,
		LineAmount:     sql.NullFloat64{Float64: lineAmount, Valid: linePriced},
		UnitAmount:     sql.NullFloat64{Float64: unitAmount, Valid: unitPriced},
		UnpricedReason: line.LinePrice.Reason().String(),
	}, nil
}

func (s *quoteLineSchema) toDomain() (entity.QuoteLine, error) {
	line := entity.QuoteLine{
		ProductID:   value.ProductID(s.ProductID),
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		LinePrice:   toPrice(s.LineAmount, s.UnpricedReason),
		UnitPrice:   toPrice(s.UnitAmount, s.UnpricedReason),
	}

	if err := json.Unmarshal(s.Selections, &line.Selections); err != nil {
		return entity.QuoteLine{}, fmt.Errorf("unmarshal selections: %w", err)
	}

	return line, nil
}

func toPrice(amount sql.NullFloat64, reason string) entity.Price {
	if !amount.Valid {
		return entity.Unpriced(entity.UnpricedReason(reason))
	}

	return entity.PricedAt(amount.Float64)
}

// marshalList пишет пустой срез как [], а не null.
func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}

	return json.Marshal(items)
}
