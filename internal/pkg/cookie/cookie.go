package cookie

import (
	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// GetAccessToken reads the token cookie set by the identity frontend.
// API clients use the Authorization header instead.
func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
