package genquiz

import "context"

type GenQuizContainer struct {
	Handler *Handler
}

func NewGenQuizContainer() *GenQuizContainer {
	ctx := context.Background()
	provider, _ := NewGeminiProvider(ctx)
	service := NewService(provider)
	handler := NewHandler(service)

	return &GenQuizContainer{
		Handler: handler,
	}
}
