package api

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/happyfares/internal/auth"
	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey    = "request_id"
	currentUserKey  = "current_user"
	currentClaimKey = "current_claims"

	SessionCookie = "session"
)

// RequestID ensures every request has an ID for tracing and logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(requestIDKey)
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		log.Printf("[HTTP] request_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}

func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[HTTP] request_id=%s panic: %v", GetRequestID(c), recovered)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
	})
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, *auth.Claims, error)
}

// Authenticate resolves the session from a bearer token or the session
// cookie. With required unset, any failure to resolve the token leaves the
// request anonymous, so a session store outage does not break public routes.
func Authenticate(a Authenticator, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			if required {
				abortWithError(c, domain.UnauthorizedError{Msg: "Unauthorized"})
				return
			}
			c.Next()
			return
		}

		user, claims, err := a.Authenticate(c.Request.Context(), token)
		if err != nil {
			if required {
				abortWithError(c, err)
				return
			}
			if !domain.IsUnauthorized(err) {
				log.Printf("[HTTP] request_id=%s authenticate: %v", GetRequestID(c), err)
			}
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Set(currentClaimKey, claims)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortWithError(c, domain.UnauthorizedError{Msg: "Unauthorized"})
			return
		}
		if !user.IsAdmin {
			abortWithError(c, domain.ForbiddenError{Msg: "Unauthorized"})
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

func currentClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(currentClaimKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
