package server

import (
	"errors"
	"net/http"

	"github.com/novamart/storefront/internal/catalog"
	"github.com/novamart/storefront/internal/domain"
	"github.com/novamart/storefront/internal/service"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	params := catalog.DecodeParams(r.URL.Query(), s.defaultPriceMin, s.defaultPriceMax)

	page, err := s.svc.ListProducts(r.Context(), params)
	if err != nil {
		s.log.WithError(err).Error("list products")
		s.writeError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleProductDetail(w http.ResponseWriter, r *http.Request) {
	product, err := s.svc.ProductDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			s.writeError(w, http.StatusNotFound, "product not found")
			return
		}
		s.log.WithError(err).Error("product detail")
		s.writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	s.writeJSON(w, http.StatusOK, product)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.svc.Categories(r.Context())
	if err != nil {
		s.log.WithError(err).Error("categories")
		s.writeError(w, http.StatusInternalServerError, "failed to load categories")
		return
	}

	s.writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := s.svc.Featured(r.Context())
	if err != nil {
		s.log.WithError(err).Error("featured products")
		s.writeError(w, http.StatusInternalServerError, "failed to load featured products")
		return
	}

	s.writeJSON(w, http.StatusOK, products)
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.Cart(r.Context())
	if err != nil {
		s.log.WithError(err).Error("get cart")
		s.writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	s.writeJSON(w, http.StatusOK, view)
}

type addCartItemRequest struct {
	ProductID        string            `json:"productId"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selectedVariants,omitempty"`
}

func (s *Server) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == "" {
		s.writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	view, err := s.svc.AddToCart(r.Context(), req.ProductID, req.Quantity, req.SelectedVariants)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			s.writeError(w, http.StatusNotFound, "product not found")
			return
		}
		s.log.WithError(err).Error("add to cart")
		s.writeError(w, http.StatusInternalServerError, "failed to add to cart")
		return
	}

	s.writeJSON(w, http.StatusOK, view)
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := s.svc.UpdateQuantity(r.Context(), r.PathValue("id"), req.Quantity)
	if err != nil {
		s.log.WithError(err).Error("update quantity")
		s.writeError(w, http.StatusInternalServerError, "failed to update quantity")
		return
	}

	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.RemoveFromCart(r.Context(), r.PathValue("id"))
	if err != nil {
		s.log.WithError(err).Error("remove from cart")
		s.writeError(w, http.StatusInternalServerError, "failed to remove from cart")
		return
	}

	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.ClearCart(r.Context())
	if err != nil {
		s.log.WithError(err).Error("clear cart")
		s.writeError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}

	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var msg service.ContactMessage
	if err := decodeBody(r, &msg); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.svc.SubmitContact(r.Context(), msg); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.svc.Login(r.Context(), req.Email, req.Password); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"status": "logged_in"})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.svc.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"status": "registered"})
}
