package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moviechat/internal/models"
	"moviechat/internal/service"
)

const sessionCookie = "sid"

const identityKey = "identity"

// Session resolves the request's identity from the sid cookie and stores it
// in the gin context. A missing or dead cookie is replaced with a freshly
// provisioned identity; the request never fails for identity reasons, only
// when the store itself is down.
func Session(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(sessionCookie)

		ident, freshToken, err := sessions.Resolve(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session_failed"})
			return
		}

		if freshToken != "" {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, freshToken, 0, "/", "", false, true)
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// IdentityFrom returns the identity the Session middleware attached to the
// request context.
func IdentityFrom(c *gin.Context) *models.Identity {
	value, _ := c.Get(identityKey)
	ident, _ := value.(*models.Identity)
	return ident
}
