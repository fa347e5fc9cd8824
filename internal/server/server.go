package server

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/novamart/storefront/internal/service"
)

// Server is the JSON presentation surface of the storefront. It owns no
// business rules; everything is delegated to the service.
type Server struct {
	svc *service.Service
	log *logrus.Logger

	defaultPriceMin decimal.Decimal
	defaultPriceMax decimal.Decimal
}

func New(svc *service.Service, log *logrus.Logger, defaultPriceMin, defaultPriceMax decimal.Decimal) *Server {
	return &Server{
		svc:             svc,
		log:             log,
		defaultPriceMin: defaultPriceMin,
		defaultPriceMax: defaultPriceMax,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("GET /api/products", s.handleListProducts)
	mux.HandleFunc("GET /api/products/{id}", s.handleProductDetail)
	mux.HandleFunc("GET /api/categories", s.handleCategories)
	mux.HandleFunc("GET /api/featured", s.handleFeatured)

	mux.HandleFunc("GET /api/cart", s.handleGetCart)
	mux.HandleFunc("POST /api/cart/items", s.handleAddCartItem)
	mux.HandleFunc("PUT /api/cart/items/{id}", s.handleUpdateCartItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", s.handleRemoveCartItem)
	mux.HandleFunc("DELETE /api/cart", s.handleClearCart)

	mux.HandleFunc("POST /api/contact", s.handleContact)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/register", s.handleRegister)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("failed to encode response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
