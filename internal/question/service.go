package question

import (
	"context"
	"errors"

	"github.com/examportal/practice-lambda/internal/auth"
	"github.com/examportal/practice-lambda/internal/config"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrQuestionNotFound = errors.New("question not found")
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, dto QuestionDTO) (*Question, error)
	BulkCreate(ctx context.Context, dto BulkUploadDTO) (int, error)
	ListQuestions(ctx context.Context, f Filters) ([]Question, error)
	ListCategories(ctx context.Context) ([]string, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type questionService struct {
	repo QuestionRepository
	db   *gorm.DB
}

func NewService(db *gorm.DB, repo QuestionRepository) QuestionService {
	return &questionService{
		repo: repo,
		db:   db,
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

func (s *questionService) CreateQuestion(ctx context.Context, dto QuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		log.WithError(err).Warn("Pergunta inválida rejeitada")
		return nil, err
	}

	q, err := dto.ToEntity(userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(q); err != nil {
		log.WithError(err).Error("Erro ao salvar pergunta")
		return nil, err
	}

	log.WithField("question_id", q.ID.String()).Info("Pergunta criada com sucesso")
	return q, nil
}

// BulkCreate validates every record before touching the database; a
// single invalid record fails the whole batch. The insert runs in one
// transaction so a storage error never leaves a partial import behind.
func (s *questionService) BulkCreate(ctx context.Context, dto BulkUploadDTO) (int, error) {
	log := config.WithContext(ctx)

	userID, err := ownerFromContext(ctx)
	if err != nil {
		return 0, err
	}

	if len(dto.Questions) == 0 {
		return 0, ErrEmptyBatch
	}

	entities := make([]*Question, 0, len(dto.Questions))
	for i := range dto.Questions {
		if err := dto.Questions[i].Validate(); err != nil {
			log.WithError(err).Warnf("Importação rejeitada: registro %d inválido", i)
			return 0, err
		}
		q, err := dto.Questions[i].ToEntity(userID)
		if err != nil {
			return 0, err
		}
		entities = append(entities, q)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entities).Error
	})
	if err != nil {
		log.WithError(err).Error("Erro ao importar perguntas")
		return 0, err
	}

	log.Infof("Importadas %d perguntas com sucesso", len(entities))
	return len(entities), nil
}

func (s *questionService) ListQuestions(ctx context.Context, f Filters) ([]Question, error) {
	log := config.WithContext(ctx)

	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.FindByOwner(userID, f)
	if err != nil {
		log.WithError(err).Error("Erro ao listar perguntas")
		return nil, err
	}
	return questions, nil
}

func (s *questionService) ListCategories(ctx context.Context) ([]string, error) {
	log := config.WithContext(ctx)

	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.Categories(userID)
	if err != nil {
		log.WithError(err).Error("Erro ao listar categorias")
		return nil, err
	}
	return categories, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	userID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}

	questionID, err := uuid.Parse(id)
	if err != nil {
		return ErrQuestionNotFound
	}

	q, err := s.repo.FindByID(questionID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar pergunta")
		return err
	}
	if q == nil {
		return ErrQuestionNotFound
	}
	if q.UserID != userID {
		return ErrUnauthorized
	}

	if err := s.repo.Delete(questionID); err != nil {
		log.WithError(err).Error("Erro ao remover pergunta")
		return err
	}

	log.WithField("question_id", id).Info("Pergunta removida com sucesso")
	return nil
}
