package service

import (
	"github.com/deppfellow/go-qa/internal/repository"
)

type Services struct {
	Questions *QuestionService
	Answers   *AnswerService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Questions: NewQuestionService(repos.Questions),
		Answers:   NewAnswerService(repos.Answers),
	}
}
