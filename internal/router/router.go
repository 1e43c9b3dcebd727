package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/examportal/practice-lambda/internal/auth"
	"github.com/examportal/practice-lambda/internal/dashboard"
	"github.com/examportal/practice-lambda/internal/genquiz"
	"github.com/examportal/practice-lambda/internal/middlewares"
	"github.com/examportal/practice-lambda/internal/question"
	"github.com/examportal/practice-lambda/internal/quiz"
	"github.com/examportal/practice-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	QuestionHandler  *question.Handler
	QuizHandler      *quiz.Handler
	DashboardHandler *dashboard.Handler
	GenQuizHandler   *genquiz.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/google", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/questions", question.Routes(cfg.QuestionHandler))
		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
		r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
		r.Mount("/gen-quiz", genquiz.Routes(cfg.GenQuizHandler))
	})

	return r
}
