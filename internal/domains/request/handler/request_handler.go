package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/request"
	"github.com/spycraft69/GAMA-Product-Request/internal/domains/user"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared/response"
	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// RequestHandler serves the demo request endpoints: anonymous
// submission plus the publisher's inbox and status changes.
type RequestHandler struct {
	service request.Service
}

func NewRequestHandler(service request.Service) *RequestHandler {
	return &RequestHandler{service: service}
}

// Create handles POST /requests. No authentication: requestors do not
// have accounts.
func (h *RequestHandler) Create(c *gin.Context) {
	var req request.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List handles GET /requests. Publishers see requests for their own
// products; any other authenticated caller gets an empty list rather
// than an error.
func (h *RequestHandler) List(c *gin.Context) {
	publisherID, err := uuid.Parse(c.GetString(shared.ContextPublisherID))
	if c.GetString(shared.ContextUserRole) != user.RolePublisher.String() || err != nil {
		response.Success(c, http.StatusOK, []request.Request{})
		return
	}

	requests, listErr := h.service.ListForPublisher(c.Request.Context(), publisherID)
	if listErr != nil {
		h.handleError(c, listErr)
		return
	}

	response.Success(c, http.StatusOK, requests)
}

// Get handles GET /requests/:id
func (h *RequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, request.ErrRequestNotFound.Error())
		return
	}

	req, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, req)
}

// UpdateStatus handles PATCH /requests/:id/status
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	publisherID, err := uuid.Parse(c.GetString(shared.ContextPublisherID))
	if err != nil {
		response.Unauthorized(c, "publisher account required")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, request.ErrRequestNotFound.Error())
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), publisherID, requestID, request.Status(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

func (h *RequestHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, request.ErrRequestNotFound):
		response.NotFound(c, request.ErrRequestNotFound.Error())
	case errors.Is(err, product.ErrProductNotFound):
		response.NotFound(c, product.ErrProductNotFound.Error())
	case errors.Is(err, request.ErrProductUnavailable),
		errors.Is(err, request.ErrInvalidStatus),
		errors.Is(err, request.ErrInvalidTransition):
		response.BadRequest(c, err.Error())
	case errors.Is(err, request.ErrNotOwner):
		response.Unauthorized(c, request.ErrNotOwner.Error())
	default:
		logger.Error("request handler: unexpected error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
