package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/happyfares/internal/auth"
	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service       auth.AuthUseCase
	sessionTTL    time.Duration
	secureCookies bool
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	userResponse
	Token string `json:"token"`
}

func NewAuthHandler(service auth.AuthUseCase, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: service, sessionTTL: sessionTTL, secureCookies: secureCookies}
}

// Register mounts the public auth routes. The group must run Authenticate
// in optional mode so logout and user can see the session.
func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.POST("/logout", h.logout)
	router.GET("/user", h.user)
}

func (h *AuthHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	session, err := h.service.Register(c.Request.Context(), auth.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusCreated, sessionResponse{userResponse: toUserResponse(session.User), Token: session.Token})
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusOK, sessionResponse{userResponse: toUserResponse(session.User), Token: session.Token})
}

func (h *AuthHandler) logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), currentClaims(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", h.secureCookies, true)
	c.Status(http.StatusOK)
}

func (h *AuthHandler) user(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", h.secureCookies, true)
}
