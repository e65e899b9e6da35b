package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/kusina/app/services"
	"github.com/shashiranjanraj/kusina/pkg/bind"
	"github.com/shashiranjanraj/kusina/pkg/logger"
	"github.com/shashiranjanraj/kusina/pkg/response"
)

type EntryController struct {
	service *services.EntryService
}

func NewEntryController(service *services.EntryService) *EntryController {
	return &EntryController{service: service}
}

// Add handles POST /AddEntry.
func (c *EntryController) Add(w http.ResponseWriter, r *http.Request) {
	var in services.EntryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if _, err := c.service.Add(r.Context(), in); err != nil {
		logger.WithCtx(r.Context()).Error("add entry failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.OK(w, "Data added successfully!")
}

// View handles GET /ViewEntries.
func (c *EntryController) View(w http.ResponseWriter, r *http.Request) {
	entries, err := c.service.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list entries failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.JSON(w, http.StatusOK, entries)
}

// Edit handles POST /EditEntry. The entry is matched by email.
func (c *EntryController) Edit(w http.ResponseWriter, r *http.Request) {
	var in services.EntryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	_, err := c.service.Edit(r.Context(), in)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusOK, "Data not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("edit entry failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.OK(w, "Data updated successfully!")
}

// Delete handles DELETE /delete. The entry is matched by email.
func (c *EntryController) Delete(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	err := c.service.Delete(r.Context(), in.Email)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusOK, "Data not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("delete entry failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.OK(w, "Data deleted successfully!")
}
