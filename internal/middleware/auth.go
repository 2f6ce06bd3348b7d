package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ecosort/backend/internal/auth"
	"github.com/ecosort/backend/internal/repository"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type AuthMiddleware struct {
	tokens *auth.TokenManager
	users  repository.UserRepository
}

func NewAuthMiddleware(tokens *auth.TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// RequireAuth verifies the bearer token, re-checks that the user still
// exists, and stores the user id under the "uid" context key.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		tokenStr := strings.TrimPrefix(authz, "Bearer ")
		uid, err := m.tokens.Verify(tokenStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid_token"})
		}
		user, err := m.users.FindByID(c.Request().Context(), uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "user no longer exists"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "authentication error"})
		}
		c.Set("uid", user.ID)
		return next(c)
	}
}
