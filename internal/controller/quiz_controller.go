package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"trivia_backend/internal/service"
	"trivia_backend/internal/util"
	"trivia_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quiz *service.QuizService) *QuizController {
	return &QuizController{QuizService: quiz}
}

// CategoryID accepts a JSON number, a numeric string or null.
type CategoryID uint

func (id *CategoryID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	n, err := strconv.ParseUint(string(data), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid category id %s", data)
	}
	*id = CategoryID(n)
	return nil
}

// QuizCategory 前端传入的分类，id 为 0 表示全部分类
type QuizCategory struct {
	ID   CategoryID `json:"id" swaggertype:"integer"`
	Type string     `json:"type,omitempty"`
}

// PlayQuizRequest 答题请求
// swagger:model PlayQuizRequest
type PlayQuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// PlayQuiz godoc
// @Summary 随机获取下一道题
// @Description 从未出现过的题目中随机选择一道，可按分类过滤；没有可用题目时返回 success=false, question=false
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body PlayQuizRequest true "已答题目及分类"
// @Success 200 {object} map[string]interface{} "{success, question}"
// @Failure 400 {object} util.ErrorResponse "请求体格式错误"
// @Router /quizzes [post]
func (c *QuizController) PlayQuiz(ctx *gin.Context) {
	var request PlayQuizRequest
	if !bindJSON(ctx, &request) {
		return
	}

	var category uint
	if request.QuizCategory != nil {
		category = uint(request.QuizCategory.ID)
	}

	question, err := c.QuizService.NextQuestion(ctx.Request.Context(), request.PreviousQuestions, category)
	if errors.Is(err, util.ErrNoQuestionsLeft) {
		monitoring.QuizExhausted.Inc()
		ctx.JSON(http.StatusOK, gin.H{
			"success":  false,
			"question": false,
		})
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"question": question,
	})
}
