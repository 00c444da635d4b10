// Package handler is the HTTP layer, the first entry point after the
// router.
//
// It binds requests using the validation package, calls the service layer
// and turns results and service errors into responses.
package handler

import (
	"github.com/deppfellow/go-qa/internal/server"
	"github.com/deppfellow/go-qa/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Questions *QuestionHandler
	Answers   *AnswerHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Questions: NewQuestionHandler(s, services.Questions),
		Answers:   NewAnswerHandler(s, services.Answers),
	}
}
