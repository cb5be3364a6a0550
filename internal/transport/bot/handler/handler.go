package handler

import (
	"context"

	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/contextx"
)

const latestQuotesLimit = 10

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type QuoteService interface {
	Get(ctx context.Context, id value.QuoteID) (entity.Quote, error)
	List(ctx context.Context, limit, offset int) ([]entity.Quote, error)
	UpdateStatus(ctx context.Context, id value.QuoteID, status value.QuoteStatus) (entity.Quote, error)
	PriceProduct(
		ctx context.Context,
		productID value.ProductID,
		quantity int,
		selections []entity.SelectedOption,
	) (entity.Resolution, error)
	CheckQuantity(ctx context.Context, productID value.ProductID, quantity int) (entity.StepCheck, error)
}

type ProductGetter interface {
	Get(ctx context.Context, id value.ProductID) (entity.Product, error)
}

type Handler struct {
	quotes   QuoteService
	products ProductGetter
}

func New(quotes QuoteService, products ProductGetter) *Handler {
	return &Handler{
		quotes:   quotes,
		products: products,
	}
}
