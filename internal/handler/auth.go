package handler

import (
	"crypto/subtle"
	"net/http"

	"vitrine/internal/apierror"
	"vitrine/internal/config"
	"vitrine/internal/dto"
	"vitrine/internal/middleware"
	"vitrine/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
	cfg *config.Config
}

func NewAuthHandler(svc service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

// Session receives the identity payload from the OAuth gateway, upserts the
// user and sets the session cookie. Returns the stored user (null when
// storage is unavailable). The call is server-to-server: when GATEWAY_SECRET
// is configured the gateway must present it, otherwise any caller could mint
// a session for an arbitrary openId.
func (h *AuthHandler) Session(c *gin.Context) {
	if h.cfg.GatewaySecret != "" &&
		subtle.ConstantTimeCompare([]byte(c.GetHeader("X-Gateway-Secret")), []byte(h.cfg.GatewaySecret)) != 1 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Unauthorized())
		return
	}

	var req dto.SessionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	token, user, err := h.svc.Session(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	maxAge := h.cfg.SessionTTLHours * 3600
	c.SetCookie(h.cfg.SessionCookieName, token, maxAge, "/", "", requestIsSecure(c), true)
	c.JSON(http.StatusOK, user)
}

// Me returns the resolved identity, or null for anonymous callers.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// Logout expires the session cookie. Public: logging out while already
// anonymous succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cfg.SessionCookieName, "", -1, "/", "", requestIsSecure(c), true)
	c.JSON(http.StatusOK, dto.LogoutResponse{Success: true})
}

// requestIsSecure ties the cookie's Secure flag to the request protocol so
// local plain-HTTP development keeps working.
func requestIsSecure(c *gin.Context) bool {
	return c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https"
}
