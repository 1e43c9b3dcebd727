package question

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
)

const optionCount = 4

var (
	ErrMissingFields     = errors.New("each question must have all required fields")
	ErrOptionCount       = errors.New("all 4 options are required")
	ErrCorrectNotInSet   = errors.New("correct answer must match one of the options")
	ErrInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")
	ErrEmptyBatch        = errors.New("import expects a non-empty questions array")
)

type QuestionDTO struct {
	ServiceName   string     `json:"service_name"`
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer string     `json:"correct_answer"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	Explanation   string     `json:"explanation"`
}

type BulkUploadDTO struct {
	Questions []QuestionDTO `json:"questions"`
}

// Validate enforces the data model invariants: every field present,
// exactly 4 non-empty options and a correct answer that is a member of
// the option set. Duplicate option text within one question is accepted
// as-is.
func (d *QuestionDTO) Validate() error {
	if strings.TrimSpace(d.ServiceName) == "" ||
		strings.TrimSpace(d.Question) == "" ||
		strings.TrimSpace(d.Category) == "" ||
		strings.TrimSpace(d.Explanation) == "" ||
		strings.TrimSpace(d.CorrectAnswer) == "" {
		return ErrMissingFields
	}

	if len(d.Options) != optionCount {
		return ErrOptionCount
	}
	for _, opt := range d.Options {
		if strings.TrimSpace(opt) == "" {
			return ErrOptionCount
		}
	}

	found := false
	for _, opt := range d.Options {
		if opt == d.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return ErrCorrectNotInSet
	}

	if !d.Difficulty.IsValid() {
		return ErrInvalidDifficulty
	}

	return nil
}

func (d *QuestionDTO) ToEntity(userID uuid.UUID) (*Question, error) {
	opts, err := json.Marshal(d.Options)
	if err != nil {
		return nil, err
	}

	return &Question{
		ID:            uuid.New(),
		UserID:        userID,
		ServiceName:   d.ServiceName,
		Question:      d.Question,
		Options:       opts,
		CorrectAnswer: d.CorrectAnswer,
		Category:      d.Category,
		Difficulty:    d.Difficulty,
		Explanation:   d.Explanation,
		IsGlobal:      false,
	}, nil
}
