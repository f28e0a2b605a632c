package middleware

import (
	"prescription-screening-server/internal/config"
	"prescription-screening-server/internal/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

const patientIDKey = "patientID"

// AuthMiddleware validates the bearer token and resolves the acting patient
// identity for downstream handlers. The handlers never see the token; they
// only read the patient ID from the context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		c.Set(patientIDKey, claims.PatientID)

		c.Next()
	}
}

// GetPatientIDFromContext returns the authenticated patient identity set by
// AuthMiddleware.
func GetPatientIDFromContext(c *gin.Context) (string, bool) {
	patientID, exists := c.Get(patientIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := patientID.(string)
	return idStr, ok
}
