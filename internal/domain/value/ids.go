package value

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/xid"
)

type ProductID uuid.UUID

func NewProductID() ProductID {
	return ProductID(uuid.New())
}

func ParseProductID(s string) (ProductID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ProductID{}, fmt.Errorf("uuid.Parse: %w", err)
	}

	return ProductID(id), nil
}

func (id ProductID) String() string {
	return uuid.UUID(id).String()
}

func (id ProductID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

type QuoteID xid.ID

func NewQuoteID() QuoteID {
	return QuoteID(xid.New())
}

func ParseQuoteID(s string) (QuoteID, error) {
	id, err := xid.FromString(s)
	if err != nil {
		return QuoteID{}, fmt.Errorf("xid.FromString: %w", err)
	}

	return QuoteID(id), nil
}

func (id QuoteID) String() string {
	return xid.ID(id).String()
}

func (id QuoteID) IsZero() bool {
	return xid.ID(id).IsZero()
}

// QuoteNumber — человекочитаемый номер для документов: Q-20260115-9M4E2MR0.
func (id QuoteID) QuoteNumber() string {
	raw := xid.ID(id)
	tail := strings.ToUpper(raw.String()[12:])

	return fmt.Sprintf("Q-%s-%s", raw.Time().UTC().Format("20060102"), tail)
}

