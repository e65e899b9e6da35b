package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/kusina/app/services"
	"github.com/shashiranjanraj/kusina/config"
	"github.com/shashiranjanraj/kusina/pkg/bind"
	"github.com/shashiranjanraj/kusina/pkg/logger"
	"github.com/shashiranjanraj/kusina/pkg/response"
)

type MenuController struct {
	catalog *services.CatalogService
	stock   *services.StockService
}

func NewMenuController(catalog *services.CatalogService, stock *services.StockService) *MenuController {
	return &MenuController{catalog: catalog, stock: stock}
}

// GetMenu handles GET /get-menu and its alias GET /viewmenu. An optional
// ?q= narrows the list by substring over name, description and price.
func (c *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := c.catalog.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("list menu failed", "error", err)
		response.StatusError(w, http.StatusInternalServerError, "Server error")
		return
	}
	response.Status(w, items)
}

// UploadMenu handles POST /upload-menu, a multipart form with the dish
// fields and its picture under "file".
func (c *MenuController) UploadMenu(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.UploadMaxBytes()); err != nil {
		response.StatusError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		response.StatusError(w, http.StatusBadRequest, "Invalid price")
		return
	}

	quantity := 0
	if q := r.FormValue("quantity"); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil {
			response.StatusError(w, http.StatusBadRequest, "Invalid quantity")
			return
		}
	}

	in := services.UploadInput{
		Name:        r.FormValue("name"),
		Price:       price,
		Description: r.FormValue("description"),
		Quantity:    quantity,
	}

	if file, header, ferr := r.FormFile("file"); ferr == nil {
		defer file.Close() //nolint:errcheck
		data, rerr := io.ReadAll(io.LimitReader(file, config.UploadMaxBytes()))
		if rerr != nil {
			response.StatusError(w, http.StatusBadRequest, "Could not read file")
			return
		}
		in.Filename = header.Filename
		in.Image = data
	}

	item, err := c.catalog.Upload(r.Context(), in)
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		response.StatusError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("upload menu failed", "error", err)
		response.StatusError(w, http.StatusInternalServerError, "Server error")
		return
	}
	response.StatusMsg(w, "Menu item added successfully", item)
}

// UpdateMenu handles PUT /update-menu/{id}.
func (c *MenuController) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name        string  `json:"name"  validate:"required"`
		Price       float64 `json:"price" validate:"gte=0"`
		Description string  `json:"description"`
		Quantity    *int    `json:"quantity"`
		Disabled    *bool   `json:"disabled"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.StatusError(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.catalog.Update(r.Context(), chi.URLParam(r, "id"), services.UpdateInput{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Quantity:    in.Quantity,
		Disabled:    in.Disabled,
	})
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.StatusError(w, http.StatusNotFound, "Menu not found")
		return
	case errors.Is(err, services.ErrInvalidInput):
		response.StatusError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("update menu failed", "error", err)
		response.StatusError(w, http.StatusInternalServerError, "Server error")
		return
	}
	response.StatusMsg(w, "Menu updated successfully", item)
}

// DeleteMenu handles DELETE /delete-menu/{id}.
func (c *MenuController) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	err := c.catalog.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.StatusError(w, http.StatusNotFound, "Menu not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("delete menu failed", "error", err)
		response.StatusError(w, http.StatusInternalServerError, "Server error")
		return
	}
	response.StatusMsg(w, "Menu deleted successfully", nil)
}

// UpdateStock handles PUT /update-stock: a decrement of quantity units
// from the product's stock.
func (c *MenuController) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ProductID string `json:"productId" validate:"required"`
		Quantity  int    `json:"quantity"  validate:"required,gte=1"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.StatusError(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.stock.Decrement(r.Context(), in.ProductID, in.Quantity)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.StatusError(w, http.StatusNotFound, "Menu not found")
		return
	case errors.Is(err, services.ErrInsufficientStock):
		response.StatusError(w, http.StatusConflict, "Insufficient stock")
		return
	case errors.Is(err, services.ErrInvalidInput):
		response.StatusError(w, http.StatusBadRequest, "Quantity must be a positive integer")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("update stock failed", "error", err)
		response.StatusError(w, http.StatusInternalServerError, "Server error")
		return
	}
	response.StatusMsg(w, "Stock updated successfully", item)
}
