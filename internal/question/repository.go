package question

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filters narrows a listing to a category and/or difficulty. The
// literal "all" (or an empty value) passes a dimension through
// unfiltered.
type Filters struct {
	Category   string
	Difficulty string
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type DifficultyCount struct {
	Difficulty Difficulty `json:"difficulty"`
	Count      int64      `json:"count"`
}

type QuestionRepository interface {
	Create(q *Question) error
	FindByID(id uuid.UUID) (*Question, error)
	FindByOwner(userID uuid.UUID, f Filters) ([]Question, error)
	Delete(id uuid.UUID) error
	Categories(userID uuid.UUID) ([]string, error)
	CountByOwner(userID uuid.UUID) (int64, error)
	GroupByCategory(userID uuid.UUID) ([]CategoryCount, error)
	GroupByDifficulty(userID uuid.UUID) ([]DifficultyCount, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// ownerScope limits every read to the caller's own questions plus the
// explicitly shared global ones.
func ownerScope(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? OR is_global = ?", userID, true)
	}
}

func (r *questionRepository) Create(q *Question) error {
	return r.db.Create(q).Error
}

func (r *questionRepository) FindByID(id uuid.UUID) (*Question, error) {
	var q Question
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) FindByOwner(userID uuid.UUID, f Filters) ([]Question, error) {
	query := r.db.Scopes(ownerScope(userID))

	if f.Category != "" && f.Category != "all" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Difficulty != "" && f.Difficulty != "all" {
		query = query.Where("difficulty = ?", f.Difficulty)
	}

	var questions []Question
	if err := query.Order("created_at DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Question{}, "id = ?", id).Error
}

func (r *questionRepository) Categories(userID uuid.UUID) ([]string, error) {
	var categories []string
	if err := r.db.Model(&Question{}).
		Scopes(ownerScope(userID)).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *questionRepository) CountByOwner(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&Question{}).
		Scopes(ownerScope(userID)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *questionRepository) GroupByCategory(userID uuid.UUID) ([]CategoryCount, error) {
	var counts []CategoryCount
	if err := r.db.Model(&Question{}).
		Scopes(ownerScope(userID)).
		Select("category, count(*) as count").
		Group("category").
		Order("category ASC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *questionRepository) GroupByDifficulty(userID uuid.UUID) ([]DifficultyCount, error) {
	var counts []DifficultyCount
	if err := r.db.Model(&Question{}).
		Scopes(ownerScope(userID)).
		Select("difficulty, count(*) as count").
		Group("difficulty").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
