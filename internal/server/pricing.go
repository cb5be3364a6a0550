package server

import (
	"fmt"
	"net/http"

	"github.com/enfash/PrintSwift-sub000/internal/domain/service/pricing"
	"github.com/enfash/PrintSwift-sub000/internal/domain/service/quote"
	"github.com/enfash/PrintSwift-sub000/pkg/httpx/reply"
	"github.com/enfash/PrintSwift-sub000/pkg/httpx/req"
	"github.com/enfash/PrintSwift-sub000/pkg/lox"
	"github.com/enfash/PrintSwift-sub000/pkg/rest"
)

// PricingServer отдаёт чистый движок цен: таблицы ступеней и опции
// приходят в запросе, каталог не используется.
type PricingServer struct{}

func NewPricingServer() PricingServer {
	return PricingServer{}
}

func (s PricingServer) postV1PricingResolve(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ResolveRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	tiers := lox.Map(request.Tiers, newDomainTier)
	options := lox.Map(request.Options, newDomainOption)

	if err := pricing.ValidateTiers(tiers); err != nil {
		return fmt.Errorf("pricing.ValidateTiers: %w", err)
	}

	if err := pricing.ValidateOptions(options); err != nil {
		return fmt.Errorf("pricing.ValidateOptions: %w", err)
	}

	resolution, err := pricing.Resolve(tiers, request.Quantity, options, newDomainSelections(request.Selections))
	if err != nil {
		return fmt.Errorf("pricing.Resolve: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTResolution(resolution))

	return nil
}

func (s PricingServer) postV1PricingAggregate(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.AggregateRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	summary, err := quote.Aggregate(
		lox.Map(request.Lines, newDomainPricedLine),
		newDomainAdjustments(request.Adjustments),
	)
	if err != nil {
		return fmt.Errorf("quote.Aggregate: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSummary(summary))

	return nil
}

func (s PricingServer) postV1PricingStep(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.StepRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	tiers := lox.Map(request.Tiers, newDomainTier)

	if err := pricing.ValidateTiers(tiers); err != nil {
		return fmt.Errorf("pricing.ValidateTiers: %w", err)
	}

	check, err := pricing.CheckStep(tiers, request.Quantity)
	if err != nil {
		return fmt.Errorf("pricing.CheckStep: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTStepCheck(check))

	return nil
}
