package controller

import (
	"net/http"
	"trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary 健康检查
// @Description 检查服务与数据库状态
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{} "{success, status, components}"
// @Failure 503 {object} util.ErrorResponse "数据库不可用"
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := sqlDB.PingContext(ctx.Request.Context()); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable)
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}
