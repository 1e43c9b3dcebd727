package genquiz

import "github.com/examportal/practice-lambda/internal/question"

// GenerateRequest asks the model for question drafts about one AWS
// service. Drafts are returned to the client for review; nothing is
// persisted until they go through the regular import endpoint.
type GenerateRequest struct {
	ServiceName string `json:"service_name"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
}

type GenerateResponse struct {
	Questions []question.QuestionDTO `json:"questions"`
}
