package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	router  *chi.Mux
	shop    *ShopHandler
	metrics http.Handler
}

func NewHandler(shop *ShopHandler, metrics http.Handler, log logrus.FieldLogger) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log, NoColor: true}))
	router.Use(middleware.Recoverer)

	h := &Handler{
		router:  router,
		shop:    shop,
		metrics: metrics,
	}

	h.registerRoutes()
	return h
}

// apiMiddlewares wrap the /v1 routes. Recoverer sits inside Brotli so a
// recovered panic is written through the compressed stream.
var apiMiddlewares = []func(http.Handler) http.Handler{
	Brotli,
	middleware.Recoverer,
}

func (h *Handler) registerRoutes() {
	h.router.Route("/v1", func(r chi.Router) {
		r.Use(apiMiddlewares...)
		r.Get("/health", h.HealthCheck)
		r.Post("/purchase", h.shop.MakePurchase)
		r.Get("/stock", h.shop.Stock)
		r.Get("/items", h.shop.Items)
	})
	if h.metrics != nil {
		h.router.Handle("/metrics", h.metrics)
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
