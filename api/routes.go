package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth     *AuthHandler
	Flights  *FlightHandler
	Catalog  *CatalogHandler
	Bookings *BookingHandler
	Enquiry  *EnquiryHandler
	Admin    *AdminHandler
}

// RegisterRoutes mounts the public API and the admin back office on router.
func RegisterRoutes(router gin.IRouter, authenticator Authenticator, h Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(Authenticate(authenticator, false))

	h.Auth.Register(api)
	h.Catalog.Register(api)
	h.Flights.Register(api.Group("/flights"))
	h.Bookings.Register(api.Group("/bookings"))
	h.Enquiry.Register(api.Group("/enquiries"))

	adminGroup := api.Group("/admin")
	adminGroup.Use(RequireAdmin())
	h.Admin.Register(adminGroup)
}
