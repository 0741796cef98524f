package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

// sessionKey is the key used to store the authenticated session in the
// request context.
const sessionKey = contextKey("session")

// GetSessionFromContext retrieves the authenticated session from the Gin
// context. It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (domain.SessionContext, bool) {
	val := c.Request.Context().Value(sessionKey)
	if val == nil {
		return domain.SessionContext{}, false
	}
	sess, ok := val.(domain.SessionContext)
	return sess, ok
}
