package api

import (
	"log"
	"net/http"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	body := gin.H{"error": message, "message": message}
	if reqID := GetRequestID(c); reqID != "" {
		body["request_id"] = reqID
	}
	c.JSON(status, body)
}

// RespondDomainError maps domain errors to HTTP responses. Unknown errors are
// logged and hidden behind a generic 500.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, err.Error())
	case domain.IsForbidden(err):
		respondError(c, http.StatusForbidden, err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("[HTTP] request_id=%s %s %s: %v", GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func abortWithError(c *gin.Context, err error) {
	RespondDomainError(c, err)
	c.Abort()
}
