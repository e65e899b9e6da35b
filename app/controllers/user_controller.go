package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/kusina/app/resources"
	"github.com/shashiranjanraj/kusina/app/services"
	"github.com/shashiranjanraj/kusina/pkg/bind"
	"github.com/shashiranjanraj/kusina/pkg/logger"
	"github.com/shashiranjanraj/kusina/pkg/resource"
	"github.com/shashiranjanraj/kusina/pkg/response"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// ViewUsers handles GET /viewusers. The password never appears; the model
// excludes it from serialisation.
func (c *UserController) ViewUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list users failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Error fetching users")
		return
	}
	response.JSON(w, http.StatusOK, users)
}

// AddUser handles POST /adduser.
func (c *UserController) AddUser(w http.ResponseWriter, r *http.Request) {
	var in services.UserInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if _, err := c.service.Add(r.Context(), in); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			response.Fail(w, http.StatusBadRequest, "Failed to add user")
			return
		}
		logger.WithCtx(r.Context()).Error("add user failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Failed to add user")
		return
	}
	response.CreatedMsg(w, "User added successfully")
}

// UpdateUser handles POST /updateuser. The target account travels in the
// body as _id.
func (c *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ID         string `json:"_id"        validate:"required"`
		FirstName  string `json:"firstname"  validate:"required"`
		LastName   string `json:"lastname"   validate:"required"`
		MiddleName string `json:"middlename"`
		Email      string `json:"email"      validate:"required,email"`
		Password   string `json:"password"`
		Role       string `json:"role"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Update(r.Context(), in.ID, services.UserInput{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		MiddleName: in.MiddleName,
		Email:      in.Email,
		Password:   in.Password,
		Role:       in.Role,
	})
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("update user failed", "error", err)
		response.Fail(w, http.StatusBadRequest, "Failed to update user")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User updated successfully",
		"user":    resource.New(&resources.UserResource{}, user),
	})
}

// DeleteUser handles POST /deleteuser.
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ID string `json:"_id" validate:"required"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	err := c.service.Delete(r.Context(), in.ID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("delete user failed", "error", err)
		response.Fail(w, http.StatusBadRequest, "Failed to delete user")
		return
	}
	response.OK(w, "User deleted successfully")
}
