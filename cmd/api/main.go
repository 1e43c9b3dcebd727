package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/examportal/practice-lambda/internal/container"
	"github.com/examportal/practice-lambda/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		QuestionHandler:  c.QuestionContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		DashboardHandler: c.DashboardContainer.Handler,
		GenQuizHandler:   c.GenQuizContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.NewV2(r).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
