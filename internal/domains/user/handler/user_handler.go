package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/user"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared/response"
	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// UserHandler serves the auth endpoints. Stateless, holds only the
// service dependency.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	userDTO, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/users/"+userDTO.ID.String())
	response.Success(c, http.StatusCreated, userDTO)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	loginResp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, loginResp)
}

// handleError maps domain errors to HTTP status codes
func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.BadRequest(c, user.ErrEmailAlreadyExists.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, user.ErrInvalidCredentials.Error())
	case errors.Is(err, user.ErrInvalidRole), errors.Is(err, user.ErrCompanyRequired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, user.ErrUserNotFound.Error())
	default:
		logger.Error("user handler: unexpected error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
