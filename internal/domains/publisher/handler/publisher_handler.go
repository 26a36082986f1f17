package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/publisher"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared/response"
	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// PublisherHandler serves the authenticated publisher profile endpoints
type PublisherHandler struct {
	service publisher.Service
}

func NewPublisherHandler(service publisher.Service) *PublisherHandler {
	return &PublisherHandler{service: service}
}

// GetProfile handles GET /publishers/profile
func (h *PublisherHandler) GetProfile(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile handles PUT /publishers/profile
func (h *PublisherHandler) UpdateProfile(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		return
	}

	var req publisher.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UploadLogo handles POST /publishers/logo (multipart, field "logo")
func (h *PublisherHandler) UploadLogo(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		response.BadRequest(c, publisher.ErrLogoRequired.Error())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "could not read uploaded logo")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, "could not read uploaded logo")
		return
	}

	profile, err := h.service.UploadLogo(c.Request.Context(), userID, fileHeader.Filename, data)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

func callerUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(shared.ContextUserID))
	if err != nil {
		response.Unauthorized(c, "authentication required")
		return uuid.Nil, false
	}
	return id, true
}

func (h *PublisherHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, publisher.ErrProfileNotFound):
		response.NotFound(c, publisher.ErrProfileNotFound.Error())
	case errors.Is(err, publisher.ErrCompanyNameRequired),
		errors.Is(err, publisher.ErrContactNameRequired),
		errors.Is(err, publisher.ErrLogoRequired),
		errors.Is(err, publisher.ErrInvalidImage):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("publisher handler: unexpected error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
