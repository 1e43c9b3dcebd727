package quiz

import (
	"github.com/examportal/practice-lambda/internal/question"
	"github.com/google/uuid"
)

type StartQuizDTO struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// QuestionView is the question as shown while it is still unanswered:
// the correct answer and explanation stay server-side until the answer
// is locked in.
type QuestionView struct {
	ID          uuid.UUID           `json:"id"`
	ServiceName string              `json:"service_name"`
	Question    string              `json:"question"`
	Options     []string            `json:"options"`
	Category    string              `json:"category"`
	Difficulty  question.Difficulty `json:"difficulty"`
}

type SessionStateDTO struct {
	Position int          `json:"position"`
	Total    int          `json:"total"`
	Score    int          `json:"score"`
	Answered bool         `json:"answered"`
	Question QuestionView `json:"question"`
}

type AnswerResponseDTO struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	Score         int    `json:"score"`
	Last          bool   `json:"last"`
}

type AdvanceResponseDTO struct {
	Completed bool             `json:"completed"`
	Result    *Summary         `json:"result,omitempty"`
	Next      *SessionStateDTO `json:"next,omitempty"`
}

func newQuestionView(q *question.Question) (*QuestionView, error) {
	opts, err := q.OptionList()
	if err != nil {
		return nil, err
	}
	return &QuestionView{
		ID:          q.ID,
		ServiceName: q.ServiceName,
		Question:    q.Question,
		Options:     opts,
		Category:    q.Category,
		Difficulty:  q.Difficulty,
	}, nil
}

func newSessionState(s *Session) (*SessionStateDTO, error) {
	current, answered, err := s.Current()
	if err != nil {
		return nil, err
	}
	view, err := newQuestionView(current)
	if err != nil {
		return nil, err
	}
	return &SessionStateDTO{
		Position: s.Position() + 1,
		Total:    s.Total(),
		Score:    s.Score(),
		Answered: answered,
		Question: *view,
	}, nil
}
