package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
	"github.com/enfash/PrintSwift-sub000/pkg/httpx/reply"
	"github.com/enfash/PrintSwift-sub000/pkg/httpx/req"
	"github.com/enfash/PrintSwift-sub000/pkg/lox"
	"github.com/enfash/PrintSwift-sub000/pkg/rest"
)

type quoteService interface {
	Preview(ctx context.Context, draft entity.QuoteDraft) (entity.Quote, error)
	Create(ctx context.Context, draft entity.QuoteDraft) (entity.Quote, error)
	Get(ctx context.Context, id value.QuoteID) (entity.Quote, error)
	List(ctx context.Context, limit, offset int) ([]entity.Quote, error)
	UpdateStatus(ctx context.Context, id value.QuoteID, status value.QuoteStatus) (entity.Quote, error)
}

type QuoteServer struct {
	quoteService quoteService
}

func NewQuoteServer(quoteService quoteService) QuoteServer {
	return QuoteServer{
		quoteService: quoteService,
	}
}

func (s QuoteServer) postV1QuotePreview(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	draft, err := readDraft(r)
	if err != nil {
		return err
	}

	quote, err := s.quoteService.Preview(ctx, draft)
	if err != nil {
		return fmt.Errorf("quoteService.Preview: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTQuote(quote))

	return nil
}

func (s QuoteServer) postV1Quotes(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	draft, err := readDraft(r)
	if err != nil {
		return err
	}

	quote, err := s.quoteService.Create(ctx, draft)
	if err != nil {
		return fmt.Errorf("quoteService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTQuote(quote))

	return nil
}

func (s QuoteServer) getV1Quotes(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, offset, err := paging(r)
	if err != nil {
		return err
	}

	quotes, err := s.quoteService.List(ctx, limit, offset)
	if err != nil {
		return fmt.Errorf("quoteService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.QuoteList{Quotes: lox.Map(quotes, newRESTQuote)})

	return nil
}

func (s QuoteServer) getV1Quote(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseQuoteID(r.PathValue("id"))
	if err != nil {
		return err
	}

	quote, err := s.quoteService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("quoteService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTQuote(quote))

	return nil
}

func (s QuoteServer) putV1QuoteStatus(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseQuoteID(r.PathValue("id"))
	if err != nil {
		return err
	}

	var request rest.StatusRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	status, err := value.ParseQuoteStatus(request.Status)
	if err != nil {
		return domain.NewInvalidInputError(errcodes.InvalidQuoteStatus, "unknown quote status %q", request.Status)
	}

	quote, err := s.quoteService.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("quoteService.UpdateStatus: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTQuote(quote))

	return nil
}

func readDraft(r *http.Request) (entity.QuoteDraft, error) {
	var request rest.QuoteDraft

	if err := req.Read(r, &request); err != nil {
		return entity.QuoteDraft{}, fmt.Errorf("req.Read: %w", err)
	}

	return newDomainDraft(request)
}
