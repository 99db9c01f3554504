package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hamzahey/algorithm-ai/internal/model"
	"github.com/hamzahey/algorithm-ai/internal/service"
)

const authUserKey = "auth_user"

// tokenExtractor pulls a bearer token out of one request location.
type tokenExtractor func(c *gin.Context, cookieName string) (string, bool)

// Ordered extraction chain: the Authorization header wins over the cookie.
var tokenExtractors = []tokenExtractor{
	bearerHeaderToken,
	cookieToken,
}

func bearerHeaderToken(c *gin.Context, _ string) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

func cookieToken(c *gin.Context, cookieName string) (string, bool) {
	token, err := c.Cookie(cookieName)
	return token, err == nil && token != ""
}

func extractToken(c *gin.Context, cookieName string) (string, bool) {
	for _, extract := range tokenExtractors {
		if token, ok := extract(c, cookieName); ok {
			return token, true
		}
	}
	return "", false
}

// AuthMiddleware is the request authenticator: it verifies the bearer token
// and attaches the resolved identity to the context. It is a pure gate and
// does not touch storage.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	cookieName := authService.CookieConfig().Name

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token, ok := extractToken(c, cookieName)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Message: "Missing authorization token"})
			return
		}

		user, err := authService.ParseAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// AdminMiddleware runs after AuthMiddleware and re-reads the admin flag from
// storage on every request, so a promotion or demotion applies within the
// token's lifetime. A subject that no longer resolves to a user is rejected.
func AdminMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetAuthUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{Message: "Admin access required"})
			return
		}

		isAdmin, err := authService.IsAdmin(c.Request.Context(), user.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{Message: "Internal server error"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{Message: "Admin access required"})
			return
		}

		c.Next()
	}
}

func GetAuthUser(c *gin.Context) *model.AuthUser {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}
