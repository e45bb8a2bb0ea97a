package repository

import (
	"context"
	"errors"
	"strings"
	"trivia_backend/internal/model"
	"trivia_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// QuestionFilter 列表筛选条件，零值表示全部
type QuestionFilter struct {
	Category *uint
	Search   string
}

func (f QuestionFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Category != nil {
		db = db.Where("category = ?", *f.Category)
	}
	if f.Search != "" {
		db = db.Where("LOWER(question) LIKE ? ESCAPE '!'", "%"+likeEscaper.Replace(lowerFor(db, f.Search))+"%")
	}
	return db
}

// '!' 作为 LIKE 转义符，mysql/postgres/sqlite 写法一致
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// lowerFor 与数据库 LOWER() 的折叠范围保持一致：sqlite 只折叠 ASCII
func lowerFor(db *gorm.DB, s string) string {
	if db.Dialector.Name() != "sqlite" {
		return strings.ToLower(s)
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.DB.WithContext(ctx).Create(q).Error
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Update applies fields to an existing question inside one transaction.
func (r *QuestionRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&q, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuestionNotFound
			}
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&q).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&q, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}

// List returns one page of matching questions ordered by id and the total match count.
func (r *QuestionRepository) List(ctx context.Context, filter QuestionFilter, page util.Page) ([]model.Question, int64, error) {
	db := r.DB.WithContext(ctx)

	var total int64
	if err := filter.apply(db.Model(&model.Question{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	questions := make([]model.Question, 0, page.Limit())
	if total == 0 || int64(page.Offset()) >= total {
		return questions, total, nil
	}

	err := filter.apply(db).
		Order("id asc").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&model.Question{}).Count(&total).Error
	return total, err
}

// Random picks one question not in excludeIDs, optionally restricted to a category.
func (r *QuestionRepository) Random(ctx context.Context, excludeIDs []uint, category *uint) (*model.Question, error) {
	db := r.DB.WithContext(ctx)
	if len(excludeIDs) > 0 {
		db = db.Where("id NOT IN ?", excludeIDs)
	}
	if category != nil {
		db = db.Where("category = ?", *category)
	}

	var questions []model.Question
	if err := db.Order(randomOrder(r.DB)).Limit(1).Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoQuestionsLeft
	}
	return &questions[0], nil
}

func randomOrder(db *gorm.DB) string {
	if db.Dialector.Name() == "mysql" {
		return "RAND()"
	}
	return "RANDOM()"
}
