package genquiz

import (
	"context"

	"github.com/examportal/practice-lambda/internal/config"
	"github.com/examportal/practice-lambda/internal/question"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// GenerateQuestions drops any draft the model produced that would not
// pass the import validation, so clients only ever see records they can
// actually import.
func (s *service) GenerateQuestions(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	drafts, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, err
	}

	valid := make([]question.QuestionDTO, 0, len(drafts))
	for i := range drafts {
		if err := drafts[i].Validate(); err != nil {
			log.WithError(err).Warnf("Descartando rascunho %d inválido gerado pelo modelo", i)
			continue
		}
		valid = append(valid, drafts[i])
	}

	return &GenerateResponse{Questions: valid}, nil
}
