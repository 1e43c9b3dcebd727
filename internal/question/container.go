package question

import "gorm.io/gorm"

type QuestionContainer struct {
	Handler *Handler
	Service QuestionService
	Repo    QuestionRepository
}

func NewQuestionContainer(db *gorm.DB) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(db, repo)
	handler := NewHandler(service)

	return &QuestionContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
