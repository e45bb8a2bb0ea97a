package controller

import (
	"errors"
	"strings"
	"trivia_backend/internal/config"
	"trivia_backend/internal/service"
	"trivia_backend/internal/util"
	"trivia_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionController struct {
	QuestionService *service.QuestionService
	CategoryService *service.CategoryService
	Runtime         *config.Runtime
}

func NewQuestionController(questions *service.QuestionService, categories *service.CategoryService, rt *config.Runtime) *QuestionController {
	return &QuestionController{
		QuestionService: questions,
		CategoryService: categories,
		Runtime:         rt,
	}
}

// PostQuestionsRequest 非空 searchTerm 表示搜索，否则为新建题目
// swagger:model PostQuestionsRequest
type PostQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
	service.CreateQuestionInput
}

// GetQuestions godoc
// @Summary 分页获取题目
// @Tags questions
// @Produce json
// @Param page query int false "页码，从1开始"
// @Success 200 {object} map[string]interface{} "{success, questions, total_questions, categories}"
// @Failure 404 {object} util.ErrorResponse "该页为空"
// @Router /questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	page := util.ParsePage(ctx, c.Runtime.PageSize())
	result, err := c.QuestionService.List(ctx.Request.Context(), page)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if len(result.Questions) == 0 {
		util.NotFound(ctx)
		return
	}

	categories, err := c.CategoryService.CategoryMap(ctx.Request.Context(), nil)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"questions":       result.Questions,
		"total_questions": result.Total,
		"categories":      categories,
	})
}

// GetQuestion godoc
// @Summary 获取单个题目
// @Tags questions
// @Produce json
// @Param id path int true "题目ID"
// @Success 200 {object} map[string]interface{} "{success, question}"
// @Failure 404 {object} util.ErrorResponse "题目不存在"
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := util.ParseID(ctx, "id")
	if !ok {
		util.NotFound(ctx)
		return
	}

	question, err := c.QuestionService.Get(ctx.Request.Context(), id)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"question": question,
	})
}

// PostQuestions godoc
// @Summary 搜索或新建题目
// @Description 请求体包含非空 searchTerm 时按题目文本搜索（不区分大小写），否则新建题目
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "搜索结果页码"
// @Param request body PostQuestionsRequest true "搜索词或题目内容"
// @Success 200 {object} map[string]interface{} "{success, questions, total_questions, current_category} 或 {success, created, total_questions}"
// @Failure 400 {object} util.ErrorResponse "请求体格式错误"
// @Failure 404 {object} util.ErrorResponse "没有匹配的题目"
// @Failure 422 {object} util.ErrorResponse "字段校验失败"
// @Router /questions [post]
func (c *QuestionController) PostQuestions(ctx *gin.Context) {
	var request PostQuestionsRequest
	if !bindJSON(ctx, &request) {
		return
	}

	if request.SearchTerm != nil && strings.TrimSpace(*request.SearchTerm) != "" {
		c.search(ctx, strings.TrimSpace(*request.SearchTerm))
		return
	}

	c.create(ctx, request.CreateQuestionInput)
}

func (c *QuestionController) search(ctx *gin.Context, term string) {
	page := util.ParsePage(ctx, c.Runtime.PageSize())
	result, err := c.QuestionService.Search(ctx.Request.Context(), term, page)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if len(result.Questions) == 0 {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": result.Questions[0].Category,
	})
}

func (c *QuestionController) create(ctx *gin.Context, in service.CreateQuestionInput) {
	question, err := c.QuestionService.Create(ctx.Request.Context(), in)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	total, err := c.QuestionService.Count(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	logger.Log.Info("Question created", zap.Uint("id", question.ID), zap.Uint("category", question.Category))

	util.Success(ctx, gin.H{
		"created":         question.ID,
		"total_questions": total,
	})
}

// UpdateQuestion godoc
// @Summary 部分更新题目
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "题目ID"
// @Param request body service.UpdateQuestionInput true "需要修改的字段"
// @Success 200 {object} map[string]interface{} "{success, updated, question}"
// @Failure 400 {object} util.ErrorResponse "请求体格式错误"
// @Failure 404 {object} util.ErrorResponse "题目不存在"
// @Failure 422 {object} util.ErrorResponse "字段校验失败"
// @Router /questions/{id} [patch]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := util.ParseID(ctx, "id")
	if !ok {
		util.NotFound(ctx)
		return
	}

	var request service.UpdateQuestionInput
	if !bindJSON(ctx, &request) {
		return
	}

	question, err := c.QuestionService.Update(ctx.Request.Context(), id, request)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"updated":  question.ID,
		"question": question,
	})
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Tags questions
// @Produce json
// @Param id path int true "题目ID"
// @Success 200 {object} map[string]interface{} "{success, deleted}"
// @Failure 404 {object} util.ErrorResponse "题目不存在"
// @Failure 422 {object} util.ErrorResponse "删除失败"
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := util.ParseID(ctx, "id")
	if !ok {
		util.NotFound(ctx)
		return
	}

	if err := c.QuestionService.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		logger.Log.Error("Failed to delete question", zap.Uint("id", id), zap.Error(err))
		util.Unprocessable(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"deleted": id,
	})
}
