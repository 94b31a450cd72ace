package handlers

import (
	"net/http"

	"eventify/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the read-only service catalog.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: c}
}

// GetCatalog handles GET /api/catalog.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog.Categories()})
}

// SearchCatalog handles GET /api/catalog/search.
func (h *CatalogHandler) SearchCatalog(c *gin.Context) {
	var f catalog.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid search filter",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog.Search(f)})
}
