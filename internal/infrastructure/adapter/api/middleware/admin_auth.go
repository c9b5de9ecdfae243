package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/payment-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-reconciler/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// RequireAdmin guards administrative routes. The caller presents the
// admin key as a bearer token; only its bcrypt hash is configured on
// the server side.
func RequireAdmin(adminKeyHash string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || token == c.GetHeader("Authorization") {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthorized,
				Message: "Forbidden: missing admin key",
			})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(adminKeyHash), []byte(token)); err != nil {
			logger.Warn("Invalid admin key presented", map[string]any{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
			})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.CodeUnauthorized,
				Message: "Forbidden: invalid admin key",
			})
			return
		}

		c.Next()
	}
}
