package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/directory"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared/response"
	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// DirectoryHandler serves the public publisher directory
type DirectoryHandler struct {
	service directory.Service
}

func NewDirectoryHandler(service directory.Service) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// List handles GET /publishers with an optional ?q= company filter
func (h *DirectoryHandler) List(c *gin.Context) {
	listings, err := h.service.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, listings)
}

// Get handles GET /publishers/:id
func (h *DirectoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, directory.ErrPublisherNotFound.Error())
		return
	}

	listing, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, listing)
}

func (h *DirectoryHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, directory.ErrPublisherNotFound):
		response.NotFound(c, directory.ErrPublisherNotFound.Error())
	default:
		logger.Error("directory handler: unexpected error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
