package api

import (
	"net/http"

	"github.com/Domenick1991/happyfares/internal/service/enquiry"
	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	service enquiry.EnquiryUseCase
}

type createEnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func NewEnquiryHandler(service enquiry.EnquiryUseCase) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

func (h *EnquiryHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
}

func (h *EnquiryHandler) create(c *gin.Context) {
	var req createEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid enquiry data")
		return
	}

	created, err := h.service.Create(c.Request.Context(), enquiry.CreateEnquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEnquiryResponse(created))
}
