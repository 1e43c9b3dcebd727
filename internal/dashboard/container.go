package dashboard

import "github.com/examportal/practice-lambda/internal/question"

type DashboardContainer struct {
	Handler *Handler
	Service DashboardService
}

func NewDashboardContainer(questionRepo question.QuestionRepository) *DashboardContainer {
	service := NewService(questionRepo)
	handler := NewHandler(service)

	return &DashboardContainer{
		Handler: handler,
		Service: service,
	}
}
