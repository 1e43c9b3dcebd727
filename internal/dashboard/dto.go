package dashboard

import "github.com/examportal/practice-lambda/internal/question"

type StatsResponse struct {
	TotalQuestions int64                      `json:"total_questions"`
	Categories     []question.CategoryCount   `json:"categories"`
	Difficulties   []question.DifficultyCount `json:"difficulties"`
}
