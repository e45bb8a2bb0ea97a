package util

import (
	"net/http"
	"trivia_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 统一错误响应结构
type ErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Error   int               `json:"error" example:"404"`
	Message string            `json:"message" example:"resource not found"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Success writes a 200 response with success:true merged into body.
func Success(c *gin.Context, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["success"] = true
	c.JSON(http.StatusOK, body)
}

func Error(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Success: false,
		Error:   code,
		Message: ErrorMessage(code),
	})
}

func BadRequest(c *gin.Context) {
	Error(c, http.StatusBadRequest)
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed)
}

func Unprocessable(c *gin.Context) {
	Error(c, http.StatusUnprocessableEntity)
}

// ValidationFailed is a 422 carrying per-field reasons.
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
		Success: false,
		Error:   http.StatusUnprocessableEntity,
		Message: ErrorMessage(http.StatusUnprocessableEntity),
		Errors:  fields,
	})
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError)
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	InternalServerError(c)
}
