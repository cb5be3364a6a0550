package quote

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/service/pricing"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/contextx"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
	"github.com/enfash/PrintSwift-sub000/pkg/logx"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	maxDraftLines    = 50
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type ProductProvider interface {
	Get(ctx context.Context, id value.ProductID) (entity.Product, error)
}

type Repository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id value.QuoteID) (entity.Quote, error)
	List(ctx context.Context, limit, offset int) ([]entity.Quote, error)
	// UpdateStatus пишет to, только если текущий статус всё ещё from,
	// иначе Conflict с кодом InvalidStatusTransition.
	UpdateStatus(ctx context.Context, id value.QuoteID, from, to value.QuoteStatus, updatedAt time.Time) error
}

type TaskEnqueuer interface {
	EnqueueQuoteCreated(ctx context.Context, id value.QuoteID) error
}

// Service — сценарии работы со сметами поверх чистого движка цен.
type Service struct {
	products ProductProvider
	quotes   Repository
	tasks    TaskEnqueuer
	now      func() time.Time
}

func NewService(
	products ProductProvider,
	quotes Repository,
	tasks TaskEnqueuer,
) *Service {
	return &Service{
		products: products,
		quotes:   quotes,
		tasks:    tasks,
		now:      time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// PriceProduct считает цену конфигурации товара из каталога.
func (s *Service) PriceProduct(
	ctx context.Context,
	productID value.ProductID,
	quantity int,
	selections []entity.SelectedOption,
) (entity.Resolution, error) {
	product, err := s.activeProduct(ctx, productID)
	if err != nil {
		return entity.Resolution{}, err
	}

	return resolve(product, quantity, selections)
}

// CheckQuantity проверяет кратность количества для товара.
func (s *Service) CheckQuantity(ctx context.Context, productID value.ProductID, quantity int) (entity.StepCheck, error) {
	product, err := s.activeProduct(ctx, productID)
	if err != nil {
		return entity.StepCheck{}, err
	}

	check, err := pricing.CheckStep(product.Tiers, quantity)
	if err != nil {
		return entity.StepCheck{}, fmt.Errorf("pricing.CheckStep: %w", err)
	}

	return check, nil
}

// Preview собирает смету без сохранения.
func (s *Service) Preview(ctx context.Context, draft entity.QuoteDraft) (entity.Quote, error) {
	if len(draft.Lines) == 0 {
		return entity.Quote{}, domain.NewInvalidInputError(errcodes.EmptyQuote, "quote has no lines")
	}

	if len(draft.Lines) > maxDraftLines {
		return entity.Quote{}, domain.NewInvalidInputError(
			errcodes.InvalidLineItem, "quote has %d lines, at most %d allowed", len(draft.Lines), maxDraftLines,
		)
	}

	if err := ValidateAdjustments(draft.Adjustments); err != nil {
		return entity.Quote{}, err
	}

	lines := make([]entity.QuoteLine, 0, len(draft.Lines))
	priced := make([]entity.PricedLine, 0, len(draft.Lines))

	for i, draftLine := range draft.Lines {
		product, err := s.activeProduct(ctx, draftLine.ProductID)
		if err != nil {
			return entity.Quote{}, fmt.Errorf("line #%d: %w", i, err)
		}

		resolution, err := resolve(product, draftLine.Quantity, draftLine.Selections)
		if err != nil {
			return entity.Quote{}, fmt.Errorf("line #%d: %w", i, err)
		}

		lines = append(lines, entity.QuoteLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    draftLine.Quantity,
			Selections:  draftLine.Selections,
			LinePrice:   resolution.Price,
			UnitPrice:   resolution.UnitPrice(),
		})

		priced = append(priced, resolution.Line())
	}

	summary, err := Aggregate(priced, draft.Adjustments)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("Aggregate: %w", err)
	}

	return entity.Quote{
		Status:      value.QuoteStatusDraft,
		Customer:    draft.Customer,
		Notes:       draft.Notes,
		Lines:       lines,
		Adjustments: draft.Adjustments,
		Summary:     summary,
	}, nil
}

// Create считает, сохраняет смету и ставит задачу на уведомление.
func (s *Service) Create(ctx context.Context, draft entity.QuoteDraft) (entity.Quote, error) {
	if strings.TrimSpace(draft.Customer.Name) == "" {
		return entity.Quote{}, domain.NewInvalidInputError(errcodes.ValidationError, "customer name is required")
	}

	quote, err := s.Preview(ctx, draft)
	if err != nil {
		return entity.Quote{}, err
	}

	now := s.now().UTC()

	quote.ID = value.NewQuoteID()
	quote.Number = quote.ID.QuoteNumber()
	quote.CreatedAt = now
	quote.UpdatedAt = now

	if err := s.quotes.Create(ctx, &quote); err != nil {
		return entity.Quote{}, fmt.Errorf("quotes.Create: %w", err)
	}

	observeCreated(quote.Summary)

	logger(ctx).Info("quote created",
		slog.String("quote-id", quote.ID.String()),
		slog.String("number", quote.Number),
		slog.Float64("total", quote.Summary.Total),
		slog.Bool("partial", quote.Summary.Partial()),
	)

	// уведомление не критично для сохранения сметы
	if err := s.tasks.EnqueueQuoteCreated(ctx, quote.ID); err != nil {
		logger(ctx).Error("failed to enqueue quote notification",
			slog.String("quote-id", quote.ID.String()),
			logx.Error(err),
		)
	}

	return quote, nil
}

func (s *Service) Get(ctx context.Context, id value.QuoteID) (entity.Quote, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("quotes.GetByID: %w", err)
	}

	return quote, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]entity.Quote, error) {
	if limit == 0 {
		limit = defaultListLimit
	}

	if limit < 0 || limit > maxListLimit || offset < 0 {
		return nil, domain.NewInvalidInputError(
			errcodes.InvalidPaging, "limit must be within [1, %d] and offset non-negative", maxListLimit,
		)
	}

	quotes, err := s.quotes.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("quotes.List: %w", err)
	}

	return quotes, nil
}

// UpdateStatus переводит смету по workflow draft → sent → accepted|declined.
// Принять частичную смету нельзя.
func (s *Service) UpdateStatus(ctx context.Context, id value.QuoteID, next value.QuoteStatus) (entity.Quote, error) {
	quote, err := s.Get(ctx, id)
	if err != nil {
		return entity.Quote{}, err
	}

	if !quote.Status.CanTransitionTo(next) {
		return entity.Quote{}, failure.NewConflictError(
			fmt.Sprintf("quote %s: cannot move from %s to %s", id, quote.Status, next),
			failure.WithCode(errcodes.InvalidStatusTransition),
			failure.WithDescription(fmt.Sprintf("cannot move quote from %s to %s", quote.Status, next)),
		)
	}

	if next == value.QuoteStatusAccepted && quote.Summary.Partial() {
		return entity.Quote{}, failure.NewUnprocessableEntityError(
			fmt.Sprintf("quote %s has %d unpriced lines", id, quote.Summary.UnpricedLines),
			failure.WithCode(errcodes.QuoteIncomplete),
			failure.WithDescription("quote has lines without a price"),
		)
	}

	updatedAt := s.now().UTC()

	if err := s.quotes.UpdateStatus(ctx, id, quote.Status, next, updatedAt); err != nil {
		return entity.Quote{}, fmt.Errorf("quotes.UpdateStatus: %w", err)
	}

	quote.Status = next
	quote.UpdatedAt = updatedAt

	return quote, nil
}

func (s *Service) activeProduct(ctx context.Context, id value.ProductID) (entity.Product, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		return entity.Product{}, fmt.Errorf("products.Get: %w", err)
	}

	if !product.Active {
		return entity.Product{}, failure.NewUnprocessableEntityError(
			fmt.Sprintf("product %s is not active", id),
			failure.WithCode(errcodes.ProductInactive),
			failure.WithDescription("product is not available for ordering"),
		)
	}

	return product, nil
}

func resolve(product entity.Product, quantity int, selections []entity.SelectedOption) (entity.Resolution, error) {
	resolution, err := pricing.ResolveLineItem(product.LineItem(quantity, selections))
	if err != nil {
		return entity.Resolution{}, fmt.Errorf("pricing.ResolveLineItem: %w", err)
	}

	observeResolution(resolution.Price)

	return resolution, nil
}
