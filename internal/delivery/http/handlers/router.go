package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LavaJover/shvark-flashdeal-service/internal/delivery/http/middleware"
	dealusecase "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/deal"
)

// NewRouter builds the HTTP router for the flash deal service.
func NewRouter(uc dealusecase.DealUsecase, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(logger))

	dealHandler := NewDealHandler(uc)

	r.Route("/deals", func(r chi.Router) {
		r.Post("/", dealHandler.CreateDeal)
		r.Get("/{dealID}", dealHandler.GetDealStatus)
		r.Post("/{dealID}/claims", dealHandler.ClaimDeal)
		r.Post("/{dealID}/cancel", dealHandler.CancelDeal)
	})

	// Admin endpoints
	r.Route("/admin", func(r chi.Router) {
		r.Post("/sweep", dealHandler.RunExpirySweep)
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
