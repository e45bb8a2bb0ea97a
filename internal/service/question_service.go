package service

import (
	"context"
	"trivia_backend/internal/model"
	"trivia_backend/internal/repository"
	"trivia_backend/internal/util"

	"github.com/go-playground/validator/v10"
)

type QuestionService struct {
	Repo       *repository.QuestionRepository
	Categories *CategoryService
	validate   *validator.Validate
}

func NewQuestionService(repo *repository.QuestionRepository, categories *CategoryService) *QuestionService {
	return &QuestionService{
		Repo:       repo,
		Categories: categories,
		validate:   newValidator(),
	}
}

// CreateQuestionInput 新建题目请求
type CreateQuestionInput struct {
	Question   string `json:"question" validate:"required,notblank,max=1000"`
	Answer     string `json:"answer" validate:"required,notblank,max=1000"`
	Category   *uint  `json:"category" validate:"required"`
	Difficulty *int   `json:"difficulty" validate:"required,min=1,max=5"`
}

// UpdateQuestionInput 部分更新请求，nil 字段保持不变
type UpdateQuestionInput struct {
	Question   *string `json:"question" validate:"omitempty,notblank,max=1000"`
	Answer     *string `json:"answer" validate:"omitempty,notblank,max=1000"`
	Category   *uint   `json:"category" validate:"omitempty"`
	Difficulty *int    `json:"difficulty" validate:"omitempty,min=1,max=5"`
}

// QuestionPage 一页题目及匹配总数
type QuestionPage struct {
	Questions []model.Question
	Total     int64
}

func (s *QuestionService) List(ctx context.Context, page util.Page) (*QuestionPage, error) {
	return s.list(ctx, repository.QuestionFilter{}, page)
}

// ListByCategory returns ErrCategoryNotFound for an unknown category.
func (s *QuestionService) ListByCategory(ctx context.Context, category uint, page util.Page) (*QuestionPage, error) {
	ok, err := s.Categories.Exists(ctx, category)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrCategoryNotFound
	}
	return s.list(ctx, repository.QuestionFilter{Category: &category}, page)
}

// Search matches term as a case-insensitive substring of the question text.
func (s *QuestionService) Search(ctx context.Context, term string, page util.Page) (*QuestionPage, error) {
	return s.list(ctx, repository.QuestionFilter{Search: term}, page)
}

func (s *QuestionService) list(ctx context.Context, filter repository.QuestionFilter, page util.Page) (*QuestionPage, error) {
	questions, total, err := s.Repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return &QuestionPage{Questions: questions, Total: total}, nil
}

func (s *QuestionService) Get(ctx context.Context, id uint) (*model.Question, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuestionService) Create(ctx context.Context, in CreateQuestionInput) (*model.Question, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	if err := s.checkCategory(ctx, *in.Category); err != nil {
		return nil, err
	}

	q := &model.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   *in.Category,
		Difficulty: *in.Difficulty,
	}
	if err := s.Repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Update(ctx context.Context, id uint, in UpdateQuestionInput) (*model.Question, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	fields := make(map[string]interface{})
	if in.Question != nil {
		fields["question"] = *in.Question
	}
	if in.Answer != nil {
		fields["answer"] = *in.Answer
	}
	if in.Category != nil {
		if err := s.checkCategory(ctx, *in.Category); err != nil {
			return nil, err
		}
		fields["category"] = *in.Category
	}
	if in.Difficulty != nil {
		fields["difficulty"] = *in.Difficulty
	}

	return s.Repo.Update(ctx, id, fields)
}

func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	return s.Repo.Delete(ctx, id)
}

func (s *QuestionService) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}

func (s *QuestionService) checkCategory(ctx context.Context, id uint) error {
	ok, err := s.Categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &ValidationError{Fields: map[string]string{"category": "does not exist"}}
	}
	return nil
}
