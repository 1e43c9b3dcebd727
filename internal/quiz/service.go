package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/examportal/practice-lambda/internal/auth"
	"github.com/examportal/practice-lambda/internal/config"
	"github.com/examportal/practice-lambda/internal/question"
	"github.com/google/uuid"
)

var ErrUnauthorized = errors.New("unauthorized")

type QuizService interface {
	StartSession(ctx context.Context, dto StartQuizDTO) (*SessionStateDTO, error)
	CurrentQuestion(ctx context.Context) (*SessionStateDTO, error)
	SubmitAnswer(ctx context.Context, option string) (*AnswerResponseDTO, error)
	Advance(ctx context.Context) (*AdvanceResponseDTO, error)
	Results(ctx context.Context) (*Summary, error)
	Abandon(ctx context.Context) error
}

type quizService struct {
	questions question.QuestionRepository
	sessions  *SessionStore
}

func NewService(questions question.QuestionRepository, sessions *SessionStore) QuizService {
	return &quizService{
		questions: questions,
		sessions:  sessions,
	}
}

func ownerFromContext(ctx context.Context) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

// StartSession reads the caller's filtered pool once and builds the
// session from it. Any previous session for the user is discarded.
func (s *quizService) StartSession(ctx context.Context, dto StartQuizDTO) (*SessionStateDTO, error) {
	log := config.WithContext(ctx)

	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	pool, err := s.questions.FindByOwner(userID, question.Filters{
		Category:   dto.Category,
		Difficulty: dto.Difficulty,
	})
	if err != nil {
		log.WithError(err).Error("Erro ao buscar perguntas para o quiz")
		return nil, fmt.Errorf("failed to load question pool: %w", err)
	}

	session, err := NewSession(userID, pool, Config{
		Category:   dto.Category,
		Difficulty: dto.Difficulty,
		Count:      dto.Count,
	})
	if err != nil {
		return nil, err
	}

	s.sessions.Put(userID, session)

	log.WithField("total", session.Total()).Info("Sessão de quiz iniciada")
	return newSessionState(session)
}

func (s *quizService) sessionFromContext(ctx context.Context) (*Session, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoActiveSession
	}
	return session, nil
}

func (s *quizService) CurrentQuestion(ctx context.Context) (*SessionStateDTO, error) {
	session, err := s.sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return newSessionState(session)
}

func (s *quizService) SubmitAnswer(ctx context.Context, option string) (*AnswerResponseDTO, error) {
	session, err := s.sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	feedback, err := session.SubmitAnswer(option)
	if err != nil {
		return nil, err
	}

	return &AnswerResponseDTO{
		Correct:       feedback.Correct,
		CorrectAnswer: feedback.CorrectAnswer,
		Explanation:   feedback.Explanation,
		Score:         session.Score(),
		Last:          session.Position() == session.Total()-1,
	}, nil
}

func (s *quizService) Advance(ctx context.Context) (*AdvanceResponseDTO, error) {
	log := config.WithContext(ctx)

	session, err := s.sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	completed, err := session.Advance()
	if err != nil {
		return nil, err
	}

	if completed {
		summary, err := session.Summary()
		if err != nil {
			return nil, err
		}
		log.WithField("percentage", summary.Percentage).Info("Sessão de quiz concluída")
		return &AdvanceResponseDTO{Completed: true, Result: summary}, nil
	}

	next, err := newSessionState(session)
	if err != nil {
		return nil, err
	}
	return &AdvanceResponseDTO{Next: next}, nil
}

func (s *quizService) Results(ctx context.Context) (*Summary, error) {
	session, err := s.sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return session.Summary()
}

func (s *quizService) Abandon(ctx context.Context) error {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}
	s.sessions.Delete(userID)
	return nil
}
