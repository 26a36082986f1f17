package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spycraft69/GAMA-Product-Request/internal/domains/product"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared"
	"github.com/spycraft69/GAMA-Product-Request/internal/shared/response"
	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// ProductHandler serves the public catalog and the publisher's own
// product management endpoints.
type ProductHandler struct {
	service product.Service
}

func NewProductHandler(service product.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products. Public, only available products, with an
// optional ?q= substring filter.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.service.ListPublic(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, products)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, product.ErrProductNotFound.Error())
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// ListOwned handles GET /products/manage, the management view with
// request counts and unavailable products included.
func (h *ProductHandler) ListOwned(c *gin.Context) {
	publisherID, ok := callerPublisherID(c)
	if !ok {
		return
	}

	products, err := h.service.ListOwned(c.Request.Context(), publisherID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, products)
}

// Create handles POST /products (multipart)
func (h *ProductHandler) Create(c *gin.Context) {
	publisherID, ok := callerPublisherID(c)
	if !ok {
		return
	}

	form := bindProductForm(c)
	if err := form.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	image, err := readImageFile(c)
	if err != nil {
		response.BadRequest(c, "could not read uploaded image")
		return
	}

	p, err := h.service.Create(c.Request.Context(), publisherID, form, image)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/products/"+p.ID.String())
	response.Success(c, http.StatusCreated, p)
}

// Update handles PUT /products/:id (multipart)
func (h *ProductHandler) Update(c *gin.Context) {
	publisherID, ok := callerPublisherID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, product.ErrProductNotFound.Error())
		return
	}

	form := bindProductForm(c)
	if err := form.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	image, err := readImageFile(c)
	if err != nil {
		response.BadRequest(c, "could not read uploaded image")
		return
	}

	p, err := h.service.Update(c.Request.Context(), publisherID, id, form, image)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// bindProductForm collects the multipart fields. Player counts stay as
// strings here; the service parses them leniently.
func bindProductForm(c *gin.Context) product.ProductForm {
	genres := c.PostFormArray("genres")
	if len(genres) == 0 {
		genres = c.PostFormArray("genres[]")
	}

	available := c.PostForm("isAvailable")

	return product.ProductForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Genres:      genres,
		InfoURL:     c.PostForm("infoUrl"),
		MinPlayers:  c.PostForm("minPlayers"),
		MaxPlayers:  c.PostForm("maxPlayers"),
		PlayTime:    c.PostForm("playTime"),
		AgeRange:    c.PostForm("ageRange"),
		IsAvailable: available == "on" || available == "true",
	}
}

// readImageFile returns nil when no file was attached
func readImageFile(c *gin.Context) (*product.UploadedImage, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &product.UploadedImage{
		FileName: fileHeader.Filename,
		Data:     data,
	}, nil
}

// callerPublisherID pulls the publisher id the auth middleware stored.
// PublisherMiddleware guarantees presence on these routes; the parse
// guard covers a tampered token.
func callerPublisherID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString(shared.ContextPublisherID)
	id, err := uuid.Parse(raw)
	if err != nil {
		response.Unauthorized(c, "publisher account required")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProductHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		response.NotFound(c, product.ErrProductNotFound.Error())
	case errors.Is(err, product.ErrNameRequired), errors.Is(err, product.ErrInvalidImage):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("product handler: unexpected error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
