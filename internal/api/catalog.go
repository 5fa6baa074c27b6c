package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kioskhub/dashboard/backend/internal/catalog"
	"github.com/kioskhub/dashboard/backend/internal/types"
)

// CatalogHandler exposes the aisle table and the name lookup used when
// ingredients arrive without an aisle.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/catalog")
	group.GET("/aisles", h.ListAisles)
	group.GET("/lookup", h.Lookup)
}

func (h *CatalogHandler) ListAisles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"aisles": h.catalog.Aisles()})
}

func (h *CatalogHandler) Lookup(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		badRequest(c, "name is required")
		return
	}

	inf := h.catalog.Infer(name)
	aisle, _ := h.catalog.Aisle(inf.Aisle)
	c.JSON(http.StatusOK, types.AisleLookupResponse{
		Name:        name,
		Aisle:       aisle,
		DefaultUnit: inf.DefaultUnit,
		Match:       string(inf.Match),
		Keyword:     inf.Keyword,
	})
}
