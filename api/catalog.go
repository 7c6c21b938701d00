package api

import (
	"net/http"

	"github.com/Domenick1991/happyfares/internal/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/hotels", h.hotels)
	router.GET("/destinations", h.destinations)
	router.GET("/activities", h.activities)
	router.GET("/packages", h.packages)
	router.GET("/cities", h.cities)
}

func (h *CatalogHandler) hotels(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.SearchHotels(c.Query("location")))
}

func (h *CatalogHandler) destinations(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Destinations)
}

func (h *CatalogHandler) activities(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Activities)
}

func (h *CatalogHandler) packages(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Packages)
}

func (h *CatalogHandler) cities(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.PopularCities)
}
