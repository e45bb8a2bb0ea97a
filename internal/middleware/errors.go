package middleware

import (
	"fmt"
	"time"
	"trivia_backend/internal/util"
	"trivia_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic in a handler into a logged 500 JSON response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("Recovered from panic",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("panic", fmt.Sprint(recovered)),
		)
		util.InternalServerError(c)
	})
}

// RequestLogger 记录每个请求的方法、路由、状态码和耗时
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Log.Info("Request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// NoRoute and NoMethod answer unknown paths and wrong methods in the API's
// error shape instead of gin's plain-text defaults.
func NoRoute(c *gin.Context) {
	util.NotFound(c)
}

func NoMethod(c *gin.Context) {
	util.MethodNotAllowed(c)
}
