package handler

import (
	"net/http"

	"github.com/deppfellow/go-qa/internal/model"
	"github.com/deppfellow/go-qa/internal/server"
	"github.com/deppfellow/go-qa/internal/service"
	"github.com/labstack/echo/v4"
)

type QuestionHandler struct {
	Handler
	questions *service.QuestionService
}

func NewQuestionHandler(s *server.Server, questions *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		Handler:   NewHandler(s),
		questions: questions,
	}
}

// empty is the request of endpoints that take no input.
type empty struct{}

func (*empty) Validate() error { return nil }

func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.Question) (*model.QuestionDetail, error) {
		return h.questions.CreateQuestion(c.Request().Context(), *req)
	}, http.StatusOK)(c)
}

func (h *QuestionHandler) ReadQuestions(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *empty) ([]model.QuestionDetail, error) {
		return h.questions.ReadQuestions(c.Request().Context())
	}, http.StatusOK)(c)
}

func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *model.QuestionID) error {
		return h.questions.DeleteQuestion(c.Request().Context(), *req)
	}, http.StatusOK)(c)
}
