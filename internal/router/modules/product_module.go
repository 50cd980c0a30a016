package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/craftly/craftly-api/internal/interface/http"
)

// ProductModule wires the catalog surface under /api/product.
type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	rg.POST("/product", m.Handler.Create)
	rg.GET("/product", m.Handler.List)
	rg.GET("/product/search", m.Handler.Search)
}
