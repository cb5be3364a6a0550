package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/enfash/PrintSwift-sub000/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/pricing", func(r chi.Router) {
			r.Post("/resolve", handler(s.postV1PricingResolve))
			r.Post("/aggregate", handler(s.postV1PricingAggregate))
			r.Post("/step", handler(s.postV1PricingStep))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", handler(s.getV1Products))
			r.Post("/", handler(s.postV1Products))
			r.Get("/{id}", handler(s.getV1Product))
			r.Put("/{id}", handler(s.putV1Product))
			r.Delete("/{id}", handler(s.deleteV1Product))
			r.Post("/{id}/price", handler(s.postV1ProductPrice))
			r.Get("/{id}/quantity", handler(s.getV1ProductQuantity))
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Post("/preview", handler(s.postV1QuotePreview))
			r.Post("/", handler(s.postV1Quotes))
			r.Get("/", handler(s.getV1Quotes))
			r.Get("/{id}", handler(s.getV1Quote))
			r.Put("/{id}/status", handler(s.putV1QuoteStatus))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
