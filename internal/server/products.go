package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
	"github.com/enfash/PrintSwift-sub000/internal/domain/entity"
	"github.com/enfash/PrintSwift-sub000/internal/domain/value"
	"github.com/enfash/PrintSwift-sub000/pkg/errcodes"
	"github.com/enfash/PrintSwift-sub000/pkg/httpx/reply"
	"github.com/enfash/PrintSwift-sub000/pkg/httpx/req"
	"github.com/enfash/PrintSwift-sub000/pkg/lox"
	"github.com/enfash/PrintSwift-sub000/pkg/rest"
)

type productService interface {
	Create(ctx context.Context, product entity.Product) (entity.Product, error)
	Update(ctx context.Context, product entity.Product) (entity.Product, error)
	Get(ctx context.Context, id value.ProductID) (entity.Product, error)
	List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	Delete(ctx context.Context, id value.ProductID) error
}

type productPricer interface {
	PriceProduct(
		ctx context.Context,
		productID value.ProductID,
		quantity int,
		selections []entity.SelectedOption,
	) (entity.Resolution, error)
	CheckQuantity(ctx context.Context, productID value.ProductID, quantity int) (entity.StepCheck, error)
}

type ProductServer struct {
	productService productService
	productPricer  productPricer
}

func NewProductServer(productService productService, productPricer productPricer) ProductServer {
	return ProductServer{
		productService: productService,
		productPricer:  productPricer,
	}
}

func (s ProductServer) getV1Products(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, offset, err := paging(r)
	if err != nil {
		return err
	}

	products, err := s.productService.List(ctx, entity.ProductFilter{
		Category:   r.URL.Query().Get("category"),
		ActiveOnly: r.URL.Query().Get("active") == "true",
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return fmt.Errorf("productService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.ProductList{Products: lox.Map(products, newRESTProduct)})

	return nil
}

func (s ProductServer) postV1Products(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ProductInput

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	product, err := s.productService.Create(ctx, newDomainProduct(request))
	if err != nil {
		return fmt.Errorf("productService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTProduct(product))

	return nil
}

func (s ProductServer) getV1Product(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseProductID(r.PathValue("id"))
	if err != nil {
		return err
	}

	product, err := s.productService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("productService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProduct(product))

	return nil
}

func (s ProductServer) putV1Product(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseProductID(r.PathValue("id"))
	if err != nil {
		return err
	}

	var request rest.ProductInput

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	product := newDomainProduct(request)
	product.ID = id

	product, err = s.productService.Update(ctx, product)
	if err != nil {
		return fmt.Errorf("productService.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProduct(product))

	return nil
}

func (s ProductServer) deleteV1Product(w http.ResponseWriter, r *http.Request) error {
	id, err := parseProductID(r.PathValue("id"))
	if err != nil {
		return err
	}

	if err := s.productService.Delete(r.Context(), id); err != nil {
		return fmt.Errorf("productService.Delete: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

func (s ProductServer) postV1ProductPrice(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseProductID(r.PathValue("id"))
	if err != nil {
		return err
	}

	var request rest.PriceRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	resolution, err := s.productPricer.PriceProduct(ctx, id, request.Quantity, newDomainSelections(request.Selections))
	if err != nil {
		return fmt.Errorf("productPricer.PriceProduct: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTResolution(resolution))

	return nil
}

func (s ProductServer) getV1ProductQuantity(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseProductID(r.PathValue("id"))
	if err != nil {
		return err
	}

	raw := r.URL.Query().Get("quantity")

	quantity, err := strconv.Atoi(raw)
	if err != nil {
		return domain.NewInvalidInputError(errcodes.InvalidQuantity, "quantity must be an integer, got %q", raw)
	}

	check, err := s.productPricer.CheckQuantity(ctx, id, quantity)
	if err != nil {
		return fmt.Errorf("productPricer.CheckQuantity: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTStepCheck(check))

	return nil
}
