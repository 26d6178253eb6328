package auth

import (
	"errors"
	"net/http"

	"github.com/VSayann/PokeScope-v2/internal/session"
	"github.com/gin-gonic/gin"
)

const CookieName = "pokescope_session"

// RequireAuth rejects requests without a live session before any handler
// logic runs. On success the owning user id is placed in the gin context.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
			return
		}

		sessionID, err := ParseSessionToken(cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
			return
		}

		userID, err := h.Sessions.Get(c.Request.Context(), sessionID)
		if errors.Is(err, session.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "server error"})
			return
		}

		c.Set("user_id", userID)
		c.Set("session_id", sessionID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}
