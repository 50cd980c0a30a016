package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/craftly/craftly-api/internal/application"
	"github.com/craftly/craftly-api/pkg/response"
	"github.com/craftly/craftly-api/pkg/validation"
)

type CollectionHandler struct {
	Svc    *application.CollectionService
	Logger *logrus.Logger
}

func NewCollectionHandler(svc *application.CollectionService, logger *logrus.Logger) *CollectionHandler {
	return &CollectionHandler{Svc: svc, Logger: logger}
}

type collectionRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create POST /api/collection
func (h *CollectionHandler) Create(c *gin.Context) {
	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Collection name is required", validation.ToDetails(err))
		return
	}

	col, err := h.Svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, application.ErrMissingFields) {
			response.Error(c, http.StatusBadRequest, "Collection name is required", nil)
			return
		}
		h.Logger.WithError(err).Error("create collection failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	response.Success(c, http.StatusOK, "Collection created with success", gin.H{"collection": col})
}

// Update PUT|POST /api/collection/:id
func (h *CollectionHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Collection name is required", validation.ToDetails(err))
		return
	}

	col, err := h.Svc.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "Collection name is required", nil)
		case errors.Is(err, application.ErrCollectionNotFound):
			response.Error(c, http.StatusBadRequest, "Collection not found", nil)
		default:
			h.Logger.WithError(err).Error("update collection failed")
			response.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Collection updated with success", gin.H{"updatedCollection": col})
}

// Delete DELETE /api/collection/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrCollectionNotFound) {
			response.Error(c, http.StatusBadRequest, "Collection not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete collection failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	response.Success(c, http.StatusOK, "Collection deleted successfully", nil)
}

// List GET /api/collection
func (h *CollectionHandler) List(c *gin.Context) {
	cols, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list collections failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"collections": cols})
}
