package router

import (
	"github.com/deppfellow/go-qa/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerQARoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/question", h.Questions.CreateQuestion)
	r.GET("/questions", h.Questions.ReadQuestions)
	r.DELETE("/question", h.Questions.DeleteQuestion)

	r.POST("/answer", h.Answers.CreateAnswer)
	r.GET("/answers", h.Answers.ReadAnswers)
	r.DELETE("/answer", h.Answers.DeleteAnswer)
}
