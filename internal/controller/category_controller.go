package controller

import (
	"trivia_backend/internal/config"
	"trivia_backend/internal/service"
	"trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
	QuestionService *service.QuestionService
	Runtime         *config.Runtime
}

func NewCategoryController(categories *service.CategoryService, questions *service.QuestionService, rt *config.Runtime) *CategoryController {
	return &CategoryController{
		CategoryService: categories,
		QuestionService: questions,
		Runtime:         rt,
	}
}

// GetCategories godoc
// @Summary 获取全部分类
// @Description 返回按名称排序的分类 id -> 名称映射
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]interface{} "{success, categories}"
// @Failure 404 {object} util.ErrorResponse "没有任何分类"
// @Router /categories [get]
func (c *CategoryController) GetCategories(ctx *gin.Context) {
	categories, err := c.CategoryService.CategoryMap(ctx.Request.Context(), nil)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if categories.Len() == 0 {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"categories": categories,
	})
}

// GetCategoryQuestions godoc
// @Summary 按分类分页获取题目
// @Tags categories
// @Produce json
// @Param id path int true "分类ID"
// @Param page query int false "页码，从1开始"
// @Success 200 {object} map[string]interface{} "{success, questions, total_questions, current_category}"
// @Failure 404 {object} util.ErrorResponse "分类不存在或该页为空"
// @Router /categories/{id}/questions [get]
func (c *CategoryController) GetCategoryQuestions(ctx *gin.Context) {
	id, ok := util.ParseID(ctx, "id")
	if !ok {
		util.NotFound(ctx)
		return
	}

	page := util.ParsePage(ctx, c.Runtime.PageSize())
	result, err := c.QuestionService.ListByCategory(ctx.Request.Context(), id, page)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	if len(result.Questions) == 0 {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": id,
	})
}
