package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/Domenick1991/happyfares/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	Type       string          `json:"type"`
	ItemID     int64           `json:"itemId"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	TotalPrice json.Number     `json:"totalPrice"`
	Status     string          `json:"status"`
	Details    json.RawMessage `json:"details"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register expects Authenticate in optional mode on the group.
func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.listMine)
	router.GET("/user/:userId", h.listForUser)
	router.GET("/ref/:reference", h.getByReference)
	router.GET("/:id", h.get)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid booking data")
		return
	}

	details := "{}"
	if len(req.Details) > 0 && string(req.Details) != "null" {
		details = string(req.Details)
	}
	// Some clients send details as a JSON-encoded string.
	if strings.HasPrefix(details, `"`) {
		var inner string
		if err := json.Unmarshal(req.Details, &inner); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid booking data")
			return
		}
		details = inner
	}

	var userID *int64
	if user := CurrentUser(c); user != nil {
		id := user.ID
		userID = &id
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		Type:       req.Type,
		ItemID:     req.ItemID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: req.TotalPrice.String(),
		Status:     req.Status,
		Details:    details,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
	}, userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) listMine(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "Unauthorized"})
		return
	}
	h.respondList(c, user.ID)
}

func (h *BookingHandler) listForUser(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "Unauthorized"})
		return
	}
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	if userID != user.ID && !user.IsAdmin {
		RespondDomainError(c, domain.ForbiddenError{Msg: "Unauthorized"})
		return
	}
	h.respondList(c, userID)
}

func (h *BookingHandler) respondList(c *gin.Context, userID int64) {
	bookings, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(bookings, toBookingResponse))
}

func (h *BookingHandler) getByReference(c *gin.Context) {
	found, err := h.service.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(found))
}

func (h *BookingHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	found, err := h.service.Get(c.Request.Context(), id, CurrentUser(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(found))
}
