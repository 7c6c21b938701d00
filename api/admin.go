package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/Domenick1991/happyfares/internal/service/admin"
	"github.com/Domenick1991/happyfares/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service admin.AdminUseCase
}

type statusRequest struct {
	Status string `json:"status"`
}

type userRoleRequest struct {
	IsAdmin *bool `json:"isAdmin"`
}

type createFlightRequest struct {
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Airline       string `json:"airline"`
	Price         int64  `json:"price"`
	Duration      string `json:"duration"`
	Stops         int    `json:"stops"`
}

func NewAdminHandler(service admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{service: service}
}

// Register expects Authenticate and RequireAdmin on the group.
func (h *AdminHandler) Register(router *gin.RouterGroup) {
	router.GET("/bookings", h.listBookings)
	router.PATCH("/bookings/:id", h.updateBooking)
	router.GET("/enquiries", h.listEnquiries)
	router.PATCH("/enquiries/:id", h.updateEnquiry)
	router.GET("/users", h.listUsers)
	router.PATCH("/users/:id", h.updateUser)
	router.GET("/logs", h.listLogs)
	router.GET("/stats", h.stats)
	router.GET("/analytics", h.analytics)
	router.POST("/flights", h.createFlight)
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return page, limit
}

func (h *AdminHandler) listBookings(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.service.ListBookings(c.Request.Context(), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": mapSlice(result.Items, toBookingResponse), "hasMore": result.HasMore})
}

func (h *AdminHandler) listEnquiries(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.service.ListEnquiries(c.Request.Context(), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enquiries": mapSlice(result.Items, toEnquiryResponse), "hasMore": result.HasMore})
}

func (h *AdminHandler) listUsers(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.service.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": mapSlice(result.Items, toUserResponse), "hasMore": result.HasMore})
}

func (h *AdminHandler) listLogs(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.service.ListLogs(c.Request.Context(), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": mapSlice(result.Items, toAdminLogResponse), "hasMore": result.HasMore})
}

func (h *AdminHandler) updateBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid status")
		return
	}
	updated, err := h.service.UpdateBookingStatus(c.Request.Context(), CurrentUser(c).ID, id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

func (h *AdminHandler) updateEnquiry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid status")
		return
	}
	updated, err := h.service.UpdateEnquiryStatus(c.Request.Context(), CurrentUser(c).ID, id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEnquiryResponse(updated))
}

func (h *AdminHandler) updateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req userRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAdmin == nil {
		respondError(c, http.StatusBadRequest, "isAdmin is required")
		return
	}
	updated, err := h.service.SetUserAdmin(c.Request.Context(), CurrentUser(c).ID, id, *req.IsAdmin)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(updated))
}

func (h *AdminHandler) stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) analytics(c *gin.Context) {
	analytics, err := h.service.Analytics(c.Request.Context(), c.DefaultQuery("timeframe", "7d"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *AdminHandler) createFlight(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid flight data")
		return
	}
	created, err := h.service.CreateFlight(c.Request.Context(), CurrentUser(c).ID, flights.CreateFlightInput{
		From:          req.From,
		To:            req.To,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Airline:       req.Airline,
		Price:         req.Price,
		Duration:      req.Duration,
		Stops:         req.Stops,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightResponse(created))
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.NotFoundError{})
		return 0, false
	}
	return id, true
}
