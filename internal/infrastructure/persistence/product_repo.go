package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
)

const productColumns = `id, slug, name, category, description, active, tiers, options, created_at, updated_at`

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	schema, err := fromProduct(product)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES (
			:id, :slug, :name, :category, :description, :active,
			:tiers, :options, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, schema); err != nil {
		if isUniqueViolation(err) {
			return conflict(errcodes.ProductConflict, fmt.Sprintf("product with slug %q already exists", product.Slug))
		}

		return fmt.Errorf("db.NamedExecContext: %w", err)
	}

	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id value.ProductID) (entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var schema productSchema
	if err := r.db.GetContext(ctx, &schema, query, uuid.UUID(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Product{}, domain.NewNotFoundError(errcodes.ProductNotFound, "product %s not found", id)
		}

		return entity.Product{}, fmt.Errorf("db.GetContext: %w", err)
	}

	return schema.toDomain()
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	schema, err := fromProduct(product)
	if err != nil {
		return err
	}

	query := `
		UPDATE products SET
			slug = :slug,
			name = :name,
			category = :category,
			description = :description,
			active = :active,
			tiers = :tiers,
			options = :options,
			updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, schema)
	if err != nil {
		if isUniqueViolation(err) {
			return conflict(errcodes.ProductConflict, fmt.Sprintf("product with slug %q already exists", product.Slug))
		}

		return fmt.Errorf("db.NamedExecContext: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.NewNotFoundError(errcodes.ProductNotFound, "product %s not found", product.ID)
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id value.ProductID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, uuid.UUID(id))
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.NewNotFoundError(errcodes.ProductNotFound, "product %s not found", id)
	}

	return nil
}

func (r *ProductRepository) List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if filter.ActiveOnly {
		conditions = append(conditions, "active")
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}

	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY name, id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	var schemas []productSchema
	if err := r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}

	products := make([]entity.Product, 0, len(schemas))

	for _, schema := range schemas {
		product, err := schema.toDomain()
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	return products, nil
}
