package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quizdesk/internal/dto"
	"quizdesk/internal/service"
)

// AdminAuth guards the admin API group. Expects "Authorization: Bearer <jwt>".
func AdminAuth(authService service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authorization header is required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		valid, err := authService.Verify(token)
		if err != nil || !valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		ctx.Next()
	}
}
