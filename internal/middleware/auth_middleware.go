package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pauldemian98/portal-rh/internal/config"
	"github.com/pauldemian98/portal-rh/internal/shared/contextutil"
	"github.com/pauldemian98/portal-rh/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName is the HttpOnly cookie the web client authenticates
// with. API clients may send a Bearer token instead.
const AuthCookieName = "auth_token"

// AuthMiddleware verifies the signed identity assertion and places the
// trusted (employee_id, role) pair on the request. A missing and a
// malformed token answer identically so the response does not leak
// which one it was.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(AuthCookieName); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Não autorizado", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Não autorizado", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Não autorizado", nil)
			c.Abort()
			return
		}

		employeeID, ok := claims["sub"].(string)
		if !ok || employeeID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Não autorizado", nil)
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)

		c.Set("employee_id", employeeID)
		c.Set("role", role)
		c.Set("email", email)

		ctx := contextutil.WithEmployeeID(c.Request.Context(), employeeID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole gates a route to the given roles. Runs after
// AuthMiddleware.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Você não tem permissão para acessar este recurso", nil)
		c.Abort()
	}
}
