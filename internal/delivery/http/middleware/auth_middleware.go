package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Authenticate extracts the bearer credential, resolves it to a CURRENT user
// record and attaches identity and role to the context. The role is read
// fresh from the database on every request - the token only carries the
// subject, so role changes take effect immediately.
func Authenticate(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "You are not logged in. Please log in to get access.", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sub, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token. Please log in again.", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), sub)
		if err != nil {
			// Only a confirmed missing user invalidates the token; a lookup
			// failure must not read as a revoked credential
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound {
				response.Error(c, http.StatusUnauthorized, "The user belonging to this token no longer exists.", nil)
			} else {
				logger.Log.Error("Failed to resolve token subject", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

// RequireRole short-circuits with 403 unless the authenticated user's role is
// in the allowed set. Must run after Authenticate.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if !slices.Contains(roles, role) {
			response.Error(c, http.StatusForbidden, "You do not have permission to perform this action", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
