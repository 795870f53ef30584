package app

import (
	"time"

	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", id)

		start := time.Now()
		c.Next()

		logger.Info("request", map[string]any{
			"id":          id,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}
