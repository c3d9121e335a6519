// Package middleware holds the HTTP middleware shared by every route:
// request logging, metrics and CORS.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Logging returns a middleware that logs every request with its method,
// path, status, and duration.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start).Milliseconds()
		status := c.Writer.Status()
		if status >= 500 {
			slog.Error("Request failed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"error", c.Errors.String(),
				"duration_ms", duration,
			)
		} else {
			slog.Info("Request completed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"duration_ms", duration,
			)
		}
	}
}

// CORS adds the headers that let a browser frontend on another origin
// call the API.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}
