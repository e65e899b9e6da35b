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

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// SignUp handles POST /signup.
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var in services.SignUpInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if _, err := c.service.SignUp(r.Context(), in); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			response.Fail(w, http.StatusBadRequest, "Email already registered")
			return
		}
		logger.WithCtx(r.Context()).Error("signup failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(w, "Signed up successfully!")
}

// SignIn handles POST /signin.
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"    validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.SignIn(r.Context(), in.Email, in.Password)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, services.ErrUnauthorized):
		response.Fail(w, http.StatusUnauthorized, "Invalid password")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("signin failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Server error")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    resource.New(&resources.UserResource{}, user),
		"token":   token,
	})
}
