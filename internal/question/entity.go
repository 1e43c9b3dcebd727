package question

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Question is a user-owned multiple choice question. The quiz engine
// never mutates questions; they only change through the add/import
// endpoints.
type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ServiceName   string         `gorm:"type:text;not null" json:"service_name"`
	Question      string         `gorm:"type:text;not null" json:"question"`
	Options       datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string         `gorm:"type:text;not null" json:"correct_answer"`
	Category      string         `gorm:"type:text;not null;index" json:"category"`
	Difficulty    Difficulty     `gorm:"type:text;not null;index" json:"difficulty"`
	Explanation   string         `gorm:"type:text;not null" json:"explanation"`
	IsGlobal      bool           `gorm:"not null;default:false" json:"is_global"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Question) TableName() string {
	return "mcq_questions"
}

// OptionList decodes the jsonb options column.
func (q *Question) OptionList() ([]string, error) {
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
