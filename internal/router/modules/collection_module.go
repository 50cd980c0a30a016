package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/craftly/craftly-api/internal/interface/http"
)

// CollectionModule wires collection CRUD under /api/collection.
// Updates accept both PUT and POST for older clients.
type CollectionModule struct {
	Handler *handlers.CollectionHandler
}

func NewCollectionModule(h *handlers.CollectionHandler) *CollectionModule {
	return &CollectionModule{Handler: h}
}

func (m *CollectionModule) Register(rg *gin.RouterGroup) {
	rg.POST("/collection", m.Handler.Create)
	rg.PUT("/collection/:id", m.Handler.Update)
	rg.POST("/collection/:id", m.Handler.Update)
	rg.DELETE("/collection/:id", m.Handler.Delete)
	rg.GET("/collection", m.Handler.List)
}
