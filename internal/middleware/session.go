package middleware

import (
	"net/http"

	"vitrine/internal/apierror"
	"vitrine/internal/model"
	"vitrine/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const IdentityKey = "identity"

// SessionClaims is the payload of the session cookie token.
type SessionClaims struct {
	OpenID string `json:"openId"`
	jwt.RegisteredClaims
}

// Session resolves the session cookie into a nullable identity before any
// operation runs. A missing, expired or unresolvable cookie leaves the
// identity nil — public operations still work, protected ones reject later.
func Session(secret, cookieName string, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cookieName)
		if err != nil || tokenStr == "" {
			c.Next()
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.OpenID == "" {
			c.Next()
			return
		}

		user, err := users.FindByOpenID(c.Request.Context(), claims.OpenID)
		if err == nil && user != nil {
			c.Set(IdentityKey, user)
		}
		c.Next()
	}
}

// RequireAuth rejects requests with no resolved identity before the handler
// body runs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Unauthorized())
			return
		}
		c.Next()
	}
}

// CurrentUser returns the resolved identity, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
