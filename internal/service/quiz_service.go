package service

import (
	"context"
	"trivia_backend/internal/model"
	"trivia_backend/internal/repository"
)

type QuizService struct {
	Repo *repository.QuestionRepository
}

func NewQuizService(repo *repository.QuestionRepository) *QuizService {
	return &QuizService{Repo: repo}
}

// NextQuestion picks a random question that is not in previous. A zero
// category means any category. util.ErrNoQuestionsLeft signals an exhausted pool.
func (s *QuizService) NextQuestion(ctx context.Context, previous []uint, category uint) (*model.Question, error) {
	var filter *uint
	if category > 0 {
		filter = &category
	}
	return s.Repo.Random(ctx, previous, filter)
}
