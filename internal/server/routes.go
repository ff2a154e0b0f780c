package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"harbour-market/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/equipments", func(r chi.Router) {
			r.Get("/", handler(s.getV1Equipments))
			r.Get("/{id}", handler(s.getV1Equipment))
		})

		r.Route("/sellers", func(r chi.Router) {
			r.Route("/equipments/{id}", func(r chi.Router) {
				r.Post("/decision", handler(s.postV1BidDecision))
				r.Get("/bids", handler(s.getV1EquipmentBids))
				r.Get("/quotes", handler(s.getV1EquipmentQuotes))
				r.Delete("/", handler(s.deleteV1Equipment))
			})

			r.Post("/quotes/{id}/answer", handler(s.postV1QuoteAnswer))
		})

		r.Get("/cart", handler(s.getV1Cart))
		r.Get("/notifications", handler(s.getV1Notifications))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
