package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shashiranjanraj/kusina/app/services"
	"github.com/shashiranjanraj/kusina/pkg/bind"
	"github.com/shashiranjanraj/kusina/pkg/logger"
	"github.com/shashiranjanraj/kusina/pkg/response"
	"github.com/shashiranjanraj/kusina/pkg/session"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// Add handles POST /cart/add. The cart is keyed by the visitor's session,
// so the session cookie must be persisted the first time something is
// added.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ProductID string `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity"   validate:"required,gte=1"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	sess := session.FromCtx(r)
	line, err := c.service.Add(r.Context(), sess.ID(), in.ProductID, in.Quantity)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Menu not found")
		return
	case errors.Is(err, services.ErrInsufficientStock):
		response.Fail(w, http.StatusConflict, "Insufficient stock")
		return
	case errors.Is(err, services.ErrInvalidInput):
		response.Fail(w, http.StatusBadRequest, "Quantity must be a positive integer")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("cart add failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Server error")
		return
	}

	sess.Set("cart_touched_at", time.Now().Unix())
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Warn("session save failed", "error", err)
	}

	response.OKData(w, "Added to cart", line)
}

// Get handles GET /cart.
func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := c.service.Get(r.Context(), session.FromCtx(r).ID())
	if err != nil {
		logger.WithCtx(r.Context()).Error("cart get failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	response.JSON(w, http.StatusOK, cart)
}

// Clear handles DELETE /cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Clear(r.Context(), session.FromCtx(r).ID()); err != nil {
		logger.WithCtx(r.Context()).Error("cart clear failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Server error")
		return
	}
	response.OK(w, "Cart cleared")
}
