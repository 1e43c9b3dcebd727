package container

import (
	"context"
	"log"
	"os"

	"github.com/examportal/practice-lambda/internal/auth"
	"github.com/examportal/practice-lambda/internal/config"
	"github.com/examportal/practice-lambda/internal/dashboard"
	"github.com/examportal/practice-lambda/internal/genquiz"
	"github.com/examportal/practice-lambda/internal/question"
	"github.com/examportal/practice-lambda/internal/quiz"
	"github.com/examportal/practice-lambda/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	QuestionContainer  *question.QuestionContainer
	QuizContainer      *quiz.QuizContainer
	DashboardContainer *dashboard.DashboardContainer
	GenQuizContainer   *genquiz.GenQuizContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	db, err := config.NewDB(context.Background(), dsn)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	userContainer := user.NewUserContainer(db)
	questionContainer := question.NewQuestionContainer(db)
	quizContainer := quiz.NewQuizContainer(questionContainer.Repo)
	dashboardContainer := dashboard.NewDashboardContainer(questionContainer.Repo)
	genQuizContainer := genquiz.NewGenQuizContainer()

	return &Container{
		UserContainer:      userContainer,
		QuestionContainer:  questionContainer,
		QuizContainer:      quizContainer,
		DashboardContainer: dashboardContainer,
		GenQuizContainer:   genQuizContainer,
	}
}
