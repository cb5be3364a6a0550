package quote_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/service/quote"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
)

type productsStub map[value.ProductID]entity.Product

func (p productsStub) Get(_ context.Context, id value.ProductID) (entity.Product, error) {
	product, ok := p[id]
	if !ok {
		return entity.Product{}, domain.NewNotFoundError(errcodes.ProductNotFound, "product %s not found", id)
	}

	return product, nil
}

type quotesStub struct {
	mu     sync.Mutex
	quotes map[value.QuoteID]entity.Quote
	order  []value.QuoteID
	// readBarrier, если задан, держит GetByID, пока все читатели не прочитают смету.
	readBarrier *sync.WaitGroup
}

func newQuotesStub() *quotesStub {
	return &quotesStub{quotes: make(map[value.QuoteID]entity.Quote)}
}

func (q *quotesStub) Create(_ context.Context, quote *entity.Quote) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.quotes[quote.ID] = *quote
	q.order = append(q.order, quote.ID)

	return nil
}

func (q *quotesStub) GetByID(_ context.Context, id value.QuoteID) (entity.Quote, error) {
	q.mu.Lock()
	quote, ok := q.quotes[id]
	barrier := q.readBarrier
	q.mu.Unlock()

	if !ok {
		return entity.Quote{}, domain.NewNotFoundError(errcodes.QuoteNotFound, "quote %s not found", id)
	}

	if barrier != nil {
		barrier.Done()
		barrier.Wait()
	}

	return quote, nil
}

func (q *quotesStub) List(_ context.Context, limit, offset int) ([]entity.Quote, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	result := make([]entity.Quote, 0, limit)
	for i := offset; i < len(q.order) && len(result) < limit; i++ {
		result = append(result, q.quotes[q.order[i]])
	}

	return result, nil
}

func (q *quotesStub) UpdateStatus(
	_ context.Context,
	id value.QuoteID,
	from, to value.QuoteStatus,
	updatedAt time.Time,
) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	quote, ok := q.quotes[id]
	if !ok {
		return domain.NewNotFoundError(errcodes.QuoteNotFound, "quote %s not found", id)
	}

	if quote.Status != from {
		return failure.NewConflictError("status changed", failure.WithCode(errcodes.InvalidStatusTransition))
	}

	quote.Status = to
	quote.UpdatedAt = updatedAt
	q.quotes[id] = quote

	return nil
}

func (q *quotesStub) force(id value.QuoteID, status value.QuoteStatus) {
	q.mu.Lock()
	defer q.mu.Unlock()

	quote := q.quotes[id]
	quote.Status = status
	q.quotes[id] = quote
}

type enqueuerStub struct {
	err      error
	enqueued []value.QuoteID
}

func (e *enqueuerStub) EnqueueQuoteCreated(_ context.Context, id value.QuoteID) error {
	if e.err != nil {
		return e.err
	}

	e.enqueued = append(e.enqueued, id)

	return nil
}

type fixture struct {
	service  *quote.Service
	quotes   *quotesStub
	enqueuer *enqueuerStub
	flyers   entity.Product
	banners  entity.Product
	archived entity.Product
	now      time.Time
}

func newFixture() *fixture {
	flyers := entity.Product{
		ID:     value.NewProductID(),
		Slug:   "a5-flyers",
		Name:   "A5 Flyers",
		Active: true,
		Tiers: []entity.PricingTier{
			{MinQuantity: 100, SetupCost: 10000, UnitCost: 120, MarginPercent: 40},
		},
		Options: []entity.OptionDefinition{
			{
				Label: "Finish",
				Kind:  value.OptionKindDropdown,
				Values: []entity.OptionValue{
					{Value: "Matte", CostAdjustment: 0},
					{Value: "Gloss", CostAdjustment: 500},
				},
			},
		},
	}

	step := 50
	banners := entity.Product{
		ID:     value.NewProductID(),
		Slug:   "roll-up-banner",
		Name:   "Roll-up Banner",
		Active: true,
		Tiers: []entity.PricingTier{
			{MinQuantity: 10, SetupCost: 2000, UnitCost: 100, MarginPercent: 20, Step: &step},
		},
	}

	archived := flyers
	archived.ID = value.NewProductID()
	archived.Slug = "old-flyers"
	archived.Active = false

	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	quotes := newQuotesStub()
	enqueuer := &enqueuerStub{}

	service := quote.NewService(
		productsStub{flyers.ID: flyers, banners.ID: banners, archived.ID: archived},
		quotes,
		enqueuer,
	).WithClock(func() time.Time { return now })

	return &fixture{
		service:  service,
		quotes:   quotes,
		enqueuer: enqueuer,
		flyers:   flyers,
		banners:  banners,
		archived: archived,
		now:      now,
	}
}

func TestServicePriceProduct(t *testing.T) {
	rq := require.New(t)
	f := newFixture()
	ctx := context.Background()

	resolution, err := f.service.PriceProduct(ctx, f.flyers.ID, 100, []entity.SelectedOption{
		{Label: "Finish", Value: "Gloss"},
	})
	rq.NoError(err)

	amount, ok := resolution.Price.Amount()
	rq.True(ok)
	rq.InDelta(120000, amount, 1e-9)

	resolution, err = f.service.PriceProduct(ctx, f.flyers.ID, 10, nil)
	rq.NoError(err)
	rq.False(resolution.Price.IsPriced())
	rq.Equal(entity.ReasonNoMatchingTier, resolution.Price.Reason())

	_, err = f.service.PriceProduct(ctx, f.flyers.ID, 0, nil)
	rq.True(domain.IsInvalidInput(err))
	rq.Equal(errcodes.InvalidQuantity, failure.Code(err))

	_, err = f.service.PriceProduct(ctx, f.archived.ID, 100, nil)
	rq.True(failure.IsUnprocessableEntityError(err))
	rq.Equal(errcodes.ProductInactive, failure.Code(err))

	_, err = f.service.PriceProduct(ctx, value.NewProductID(), 100, nil)
	rq.True(failure.IsNotFoundError(err))
	rq.Equal(errcodes.ProductNotFound, failure.Code(err))
}

func TestServiceCheckQuantity(t *testing.T) {
	rq := require.New(t)
	f := newFixture()

	check, err := f.service.CheckQuantity(context.Background(), f.banners.ID, 75)
	rq.NoError(err)
	rq.True(check.Matched)
	rq.False(check.Valid)
	rq.Equal(60, check.Lower)
	rq.Equal(110, check.Upper)
}

func TestServicePreview(t *testing.T) {
	rq := require.New(t)
	f := newFixture()

	preview, err := f.service.Preview(context.Background(), entity.QuoteDraft{
		Lines: []entity.DraftLine{
			{ProductID: f.flyers.ID, Quantity: 100},
			{ProductID: f.flyers.ID, Quantity: 5},
		},
		Adjustments: entity.QuoteAdjustments{DeliveryFee: 2500, TaxRatePercent: 7.5},
	})
	rq.NoError(err)
	rq.True(preview.ID.IsZero())
	rq.Equal(value.QuoteStatusDraft, preview.Status)
	rq.Len(preview.Lines, 2)
	rq.Equal("A5 Flyers", preview.Lines[0].ProductName)
	rq.False(preview.Lines[1].LinePrice.IsPriced())

	rq.Equal(1, preview.Summary.PricedLines)
	rq.Equal(1, preview.Summary.UnpricedLines)
	rq.InDelta(36667, preview.Summary.Subtotal, 1e-9)
	rq.InDelta(2750.03, preview.Summary.TaxAmount, 1e-9)
	rq.InDelta(41917.03, preview.Summary.Total, 1e-9)
	rq.Empty(f.quotes.order)
}

func TestServicePreviewInvalid(t *testing.T) {
	f := newFixture()

	testCases := []struct {
		name  string
		draft entity.QuoteDraft
		code  failure.ErrorCode
	}{
		{
			name: "Empty draft",
			code: errcodes.EmptyQuote,
		},
		{
			name: "Negative discount",
			draft: entity.QuoteDraft{
				Lines:       []entity.DraftLine{{ProductID: f.flyers.ID, Quantity: 100}},
				Adjustments: entity.QuoteAdjustments{Discount: -10},
			},
			code: errcodes.InvalidAdjustment,
		},
		{
			name: "Zero quantity",
			draft: entity.QuoteDraft{
				Lines: []entity.DraftLine{{ProductID: f.flyers.ID, Quantity: 0}},
			},
			code: errcodes.InvalidQuantity,
		},
		{
			name: "Unknown product",
			draft: entity.QuoteDraft{
				Lines: []entity.DraftLine{{ProductID: value.NewProductID(), Quantity: 100}},
			},
			code: errcodes.ProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := f.service.Preview(context.Background(), tc.draft)
			rq.Error(err)
			rq.Equal(tc.code, failure.Code(err))
		})
	}
}

func TestServiceCreate(t *testing.T) {
	rq := require.New(t)
	f := newFixture()
	ctx := context.Background()

	created, err := f.service.Create(ctx, entity.QuoteDraft{
		Customer: entity.Customer{Name: "Adaeze", Email: "adaeze@example.com"},
		Lines:    []entity.DraftLine{{ProductID: f.flyers.ID, Quantity: 100}},
	})
	rq.NoError(err)
	rq.False(created.ID.IsZero())
	rq.Equal(created.ID.QuoteNumber(), created.Number)
	rq.Regexp(`^Q-\d{8}-[0-9A-Z]{8}$`, created.Number)
	rq.Equal(f.now, created.CreatedAt)
	rq.Equal([]value.QuoteID{created.ID}, f.enqueuer.enqueued)

	stored, err := f.service.Get(ctx, created.ID)
	rq.NoError(err)
	rq.Equal(created.Summary, stored.Summary)

	list, err := f.service.List(ctx, 0, 0)
	rq.NoError(err)
	rq.Len(list, 1)
}

func TestServiceCreateIgnoresEnqueueFailure(t *testing.T) {
	rq := require.New(t)
	f := newFixture()
	f.enqueuer.err = errors.New("redis is down")

	created, err := f.service.Create(context.Background(), entity.QuoteDraft{
		Customer: entity.Customer{Name: "Tunde"},
		Lines:    []entity.DraftLine{{ProductID: f.flyers.ID, Quantity: 100}},
	})
	rq.NoError(err)
	rq.Contains(f.quotes.quotes, created.ID)
}

func TestServiceCreateRequiresCustomer(t *testing.T) {
	rq := require.New(t)
	f := newFixture()

	_, err := f.service.Create(context.Background(), entity.QuoteDraft{
		Customer: entity.Customer{Name: "  "},
		Lines:    []entity.DraftLine{{ProductID: f.flyers.ID, Quantity: 100}},
	})
	rq.True(domain.IsInvalidInput(err))
	rq.Equal(errcodes.ValidationError, failure.Code(err))
	rq.Empty(f.quotes.order)
}

func TestServiceList(t *testing.T) {
	f := newFixture()

	testCases := []struct {
		name   string
		limit  int
		offset int
		valid  bool
	}{
		{name: "Default limit", valid: true},
		{name: "Max limit", limit: 100, valid: true},
		{name: "Limit too large", limit: 101},
		{name: "Negative limit", limit: -1},
		{name: "Negative offset", limit: 10, offset: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := f.service.List(context.Background(), tc.limit, tc.offset)
			if tc.valid {
				rq.NoError(err)
				return
			}

			rq.Equal(errcodes.InvalidPaging, failure.Code(err))
		})
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	rq := require.New(t)
	f := newFixture()
	ctx := context.Background()

	created, err := f.service.Create(ctx, entity.QuoteDraft{
		Customer: entity.Customer{Name: "Chioma"},
		Lines:    []entity.DraftLine{{ProductID: f.flyers.ID, Quantity: 100}},
	})
	rq.NoError(err)

	_, err = f.service.UpdateStatus(ctx, created.ID, value.QuoteStatusAccepted)
	rq.True(failure.IsConflictError(err))
	rq.Equal(errcodes.InvalidStatusTransition, failure.Code(err))

	sent, err := f.service.UpdateStatus(ctx, created.ID, value.QuoteStatusSent)
	rq.NoError(err)
	rq.Equal(value.QuoteStatusSent, sent.Status)

	accepted, err := f.service.UpdateStatus(ctx, created.ID, value.QuoteStatusAccepted)
	rq.NoError(err)
	rq.Equal(value.QuoteStatusAccepted, accepted.Status)

	_, err = f.service.UpdateStatus(ctx, created.ID, value.QuoteStatusDeclined)
	rq.Equal(errcodes.InvalidStatusTransition, failure.Code(err))

	_, err = f.service.UpdateStatus(ctx, value.NewQuoteID(), value.QuoteStatusSent)
	rq.True(failure.IsNotFoundError(err))
}

func TestServiceAcceptPartialQuote(t *testing.T) {
	rq := require.New(t)
	f := newFixture()
	ctx := context.Background()

	created, err := f.service.Create(ctx, entity.QuoteDraft{
		Customer: entity.Customer{Name: "Emeka"},
		Lines: []entity.DraftLine{
			{ProductID: f.flyers.ID, Quantity: 100},
			{ProductID: f.flyers.ID, Quantity: 1},
		},
	})
	rq.NoError(err)
	rq.True(created.Summary.Partial())

	f.quotes.force(created.ID, value.QuoteStatusSent)

	_, err = f.service.UpdateStatus(ctx, created.ID, value.QuoteStatusAccepted)
	rq.True(failure.IsUnprocessableEntityError(err))
	rq.Equal(errcodes.QuoteIncomplete, failure.Code(err))

	declined, err := f.service.UpdateStatus(ctx, created.ID, value.QuoteStatusDeclined)
	rq.NoError(err)
	rq.Equal(value.QuoteStatusDeclined, declined.Status)
}

func TestServiceConcurrentStatusUpdates(t *testing.T) {
	rq := require.New(t)
	f := newFixture()
	ctx := context.Background()

	created, err := f.service.Create(ctx, entity.QuoteDraft{
		Customer: entity.Customer{Name: "Tunde"},
		Lines:    []entity.DraftLine{{ProductID: f.flyers.ID, Quantity: 100}},
	})
	rq.NoError(err)

	f.quotes.force(created.ID, value.QuoteStatusSent)

	targets := []value.QuoteStatus{value.QuoteStatusAccepted, value.QuoteStatusDeclined}

	// оба перехода читают sent до того, как кто-то из них запишет
	var barrier sync.WaitGroup
	barrier.Add(len(targets))
	f.quotes.mu.Lock()
	f.quotes.readBarrier = &barrier
	f.quotes.mu.Unlock()

	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, errs[i] = f.service.UpdateStatus(ctx, created.ID, target)
		}()
	}
	wg.Wait()

	f.quotes.mu.Lock()
	f.quotes.readBarrier = nil
	f.quotes.mu.Unlock()

	var winner value.QuoteStatus

	succeeded := 0
	for i, err := range errs {
		if err == nil {
			succeeded++
			winner = targets[i]

			continue
		}

		rq.True(failure.IsConflictError(err))
		rq.Equal(errcodes.InvalidStatusTransition, failure.Code(err))
	}
	rq.Equal(1, succeeded)

	stored, err := f.service.Get(ctx, created.ID)
	rq.NoError(err)
	rq.Equal(winner, stored.Status)
}
