package handler

import (
	"net/http"

	"github.com/deppfellow/go-qa/internal/model"
	"github.com/deppfellow/go-qa/internal/server"
	"github.com/deppfellow/go-qa/internal/service"
	"github.com/labstack/echo/v4"
)

type AnswerHandler struct {
	Handler
	answers *service.AnswerService
}

func NewAnswerHandler(s *server.Server, answers *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		Handler: NewHandler(s),
		answers: answers,
	}
}

func (h *AnswerHandler) CreateAnswer(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.Answer) (*model.AnswerDetail, error) {
		return h.answers.CreateAnswer(c.Request().Context(), *req)
	}, http.StatusOK)(c)
}

// ReadAnswers takes question_uuid from the JSON body or the query string.
func (h *AnswerHandler) ReadAnswers(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *model.QuestionID) ([]model.AnswerDetail, error) {
		return h.answers.ReadAnswers(c.Request().Context(), *req)
	}, http.StatusOK)(c)
}

func (h *AnswerHandler) DeleteAnswer(c echo.Context) error {
	return HandleNoContent(h.Handler, func(c echo.Context, req *model.AnswerID) error {
		return h.answers.DeleteAnswer(c.Request().Context(), *req)
	}, http.StatusOK)(c)
}
