package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
)

const (
	quoteColumns = `id, number, status, customer_name, customer_email, customer_phone,
		notes, adjustments, summary, created_at, updated_at`
	quoteLineColumns = `quote_id, position, product_id, product_name, quantity,
		selections, line_amount, unit_amount, unpriced_reason`
)

type QuoteRepository struct {
	db *sqlx.DB
}

func NewQuoteRepository(db *sqlx.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Create сохраняет смету вместе с позициями в одной транзакции.
func (r *QuoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	schema, err := fromQuote(quote)
	if err != nil {
		return err
	}

	lines := make([]quoteLineSchema, 0, len(quote.Lines))

	for i, line := range quote.Lines {
		lineSchema, err := fromQuoteLine(quote.ID, i, line)
		if err != nil {
			return err
		}

		lines = append(lines, lineSchema)
	}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO quotes (` + quoteColumns + `)
			VALUES (
				:id, :number, :status, :customer_name, :customer_email, :customer_phone,
				:notes, :adjustments, :summary, :created_at, :updated_at
			)`

		if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
			if isUniqueViolation(err) {
				return conflict(errcodes.InvalidQuoteID, fmt.Sprintf("quote %s already exists", quote.ID))
			}

			return fmt.Errorf("tx.NamedExecContext: %w", err)
		}

		if len(lines) == 0 {
			return nil
		}

		linesQuery := `
			INSERT INTO quote_lines (` + quoteLineColumns + `)
			VALUES (
				:quote_id, :position, :product_id, :product_name, :quantity,
				:selections, :line_amount, :unit_amount, :unpriced_reason
			)`

		if _, err := tx.NamedExecContext(ctx, linesQuery, lines); err != nil {
			return fmt.Errorf("tx.NamedExecContext: %w", err)
		}

		return nil
	})
}

func (r *QuoteRepository) GetByID(ctx context.Context, id value.QuoteID) (entity.Quote, error) {
	var schema quoteSchema

	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	if err := r.db.GetContext(ctx, &schema, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Quote{}, domain.NewNotFoundError(errcodes.QuoteNotFound, "quote %s not found", id)
		}

		return entity.Quote{}, fmt.Errorf("db.GetContext: %w", err)
	}

	lines, err := r.lines(ctx, []string{schema.ID})
	if err != nil {
		return entity.Quote{}, err
	}

	return schema.toDomain(lines[schema.ID])
}

// List возвращает сметы от новых к старым.
func (r *QuoteRepository) List(ctx context.Context, limit, offset int) ([]entity.Quote, error) {
	var schemas []quoteSchema

	query := `SELECT ` + quoteColumns + ` FROM quotes ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &schemas, query, limit, offset); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}

	if len(schemas) == 0 {
		return []entity.Quote{}, nil
	}

	lines, err := r.lines(ctx, lo.Map(schemas, func(s quoteSchema, _ int) string { return s.ID }))
	if err != nil {
		return nil, err
	}

	quotes := make([]entity.Quote, 0, len(schemas))

	for _, schema := range schemas {
		quote, err := schema.toDomain(lines[schema.ID])
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, quote)
	}

	return quotes, nil
}

// UpdateStatus меняет статус, только если в базе всё ещё from: параллельный
// переход, успевший раньше, превращает этот в Conflict.
func (r *QuoteRepository) UpdateStatus(
	ctx context.Context,
	id value.QuoteID,
	from, to value.QuoteStatus,
	updatedAt time.Time,
) error {
	query := `UPDATE quotes SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`

	res, err := r.db.ExecContext(ctx, query, to.String(), updatedAt, id.String(), from.String())
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("res.RowsAffected: %w", err)
	}

	if rows > 0 {
		return nil
	}

	var current string

	err = r.db.GetContext(ctx, &current, `SELECT status FROM quotes WHERE id = $1`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(errcodes.QuoteNotFound, "quote %s not found", id)
	}

	if err != nil {
		return fmt.Errorf("db.GetContext: %w", err)
	}

	return conflict(
		errcodes.InvalidStatusTransition,
		fmt.Sprintf("quote %s is %s now, cannot move from %s to %s", id, current, from, to),
	)
}

func (r *QuoteRepository) lines(ctx context.Context, quoteIDs []string) (map[string][]quoteLineSchema, error) {
	query, args, err := sqlx.In(
		`SELECT `+quoteLineColumns+` FROM quote_lines WHERE quote_id IN (?) ORDER BY quote_id, position`,
		quoteIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In: %w", err)
	}

	var rows []quoteLineSchema
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}

	return lo.GroupBy(rows, func(row quoteLineSchema) string { return row.QuoteID }), nil
}
