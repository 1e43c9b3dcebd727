package quiz

import "github.com/examportal/practice-lambda/internal/question"

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(questionRepo question.QuestionRepository) *QuizContainer {
	sessions := NewSessionStore()
	service := NewService(questionRepo, sessions)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
