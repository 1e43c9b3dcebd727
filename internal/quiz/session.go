package quiz

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/examportal/practice-lambda/internal/question"
	"github.com/google/uuid"
)

var (
	ErrInvalidCount     = errors.New("question count must be a positive number")
	ErrNoQuestions      = errors.New("no questions found with selected filters")
	ErrAlreadyAnswered  = errors.New("question already answered")
	ErrNotAnswered      = errors.New("current question has not been answered")
	ErrSessionCompleted = errors.New("quiz already completed")
	ErrNotCompleted     = errors.New("quiz not completed yet")
	ErrNoActiveSession  = errors.New("no active quiz session")
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
)

// Config is consumed once to draw a session. "all" (or empty) passes a
// filter dimension through.
type Config struct {
	Category   string
	Difficulty string
	Count      int
}

type answerRecord struct {
	selected string
	answered bool
	correct  bool
}

// Feedback is returned on every answer submission so the client can
// show the result immediately.
type Feedback struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// Session is one practice run. Construction only succeeds with a
// non-empty filtered pool, so an active session always has at least one
// question. Every mutation goes through SubmitAnswer or Advance.
type Session struct {
	UserID    uuid.UUID
	StartedAt time.Time

	mu        sync.Mutex
	questions []question.Question
	answers   []answerRecord
	position  int
	score     int
	status    Status
}

// NewSession filters the pool, shuffles it uniformly and truncates to
// the requested count. The shuffle happens once per session, before
// truncation, so every eligible question has the same probability of
// being drawn regardless of the count.
func NewSession(userID uuid.UUID, pool []question.Question, cfg Config) (*Session, error) {
	if cfg.Count <= 0 {
		return nil, ErrInvalidCount
	}

	filtered := filterPool(pool, cfg)
	if len(filtered) == 0 {
		return nil, ErrNoQuestions
	}

	rand.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})

	if cfg.Count < len(filtered) {
		filtered = filtered[:cfg.Count]
	}

	return &Session{
		UserID:    userID,
		StartedAt: time.Now(),
		questions: filtered,
		answers:   make([]answerRecord, len(filtered)),
		status:    StatusActive,
	}, nil
}

func filterPool(pool []question.Question, cfg Config) []question.Question {
	filtered := make([]question.Question, 0, len(pool))
	for _, q := range pool {
		if cfg.Category != "" && cfg.Category != "all" && q.Category != cfg.Category {
			continue
		}
		if cfg.Difficulty != "" && cfg.Difficulty != "all" && string(q.Difficulty) != cfg.Difficulty {
			continue
		}
		filtered = append(filtered, q)
	}
	return filtered
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Position is the 0-based index of the current question.
func (s *Session) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

func (s *Session) Total() int {
	return len(s.questions)
}

// Questions exposes the drawn subset in session order.
func (s *Session) Questions() []question.Question {
	return s.questions
}

// Current returns the question at the current position and whether it
// has already been answered.
func (s *Session) Current() (*question.Question, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusActive {
		return nil, false, ErrSessionCompleted
	}
	return &s.questions[s.position], s.answers[s.position].answered, nil
}

// SubmitAnswer locks in one answer for the current question. A second
// submission before advancing is rejected without touching any state.
// An option that is not a member of the question's option set is
// tolerated and simply counted as wrong.
func (s *Session) SubmitAnswer(option string) (*Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusActive {
		return nil, ErrSessionCompleted
	}
	if s.answers[s.position].answered {
		return nil, ErrAlreadyAnswered
	}

	q := s.questions[s.position]
	correct := option == q.CorrectAnswer

	s.answers[s.position] = answerRecord{
		selected: option,
		answered: true,
		correct:  correct,
	}
	if correct {
		s.score++
	}

	return &Feedback{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}, nil
}

// Advance moves to the next question, or completes the session when the
// current question was the last. Advancing before answering is
// rejected.
func (s *Session) Advance() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusActive {
		return false, ErrSessionCompleted
	}
	if !s.answers[s.position].answered {
		return false, ErrNotAnswered
	}

	if s.position == len(s.questions)-1 {
		s.status = StatusCompleted
		return true, nil
	}

	s.position++
	return false, nil
}

// Summary is only available once the session is completed.
func (s *Session) Summary() (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusCompleted {
		return nil, ErrNotCompleted
	}
	return newSummary(s.score, len(s.questions)), nil
}
