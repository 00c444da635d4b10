package service

import (
	"context"

	"github.com/deppfellow/go-qa/internal/model"
	"github.com/deppfellow/go-qa/internal/repository"
)

type AnswerService struct {
	repo repository.AnswerRepository
}

func NewAnswerService(repo repository.AnswerRepository) *AnswerService {
	return &AnswerService{repo: repo}
}

func (s *AnswerService) CreateAnswer(ctx context.Context, answer model.Answer) (*model.AnswerDetail, error) {
	detail, err := s.repo.CreateAnswer(ctx, answer)
	if err != nil {
		return nil, fromRepository(err)
	}
	return detail, nil
}

func (s *AnswerService) ReadAnswers(ctx context.Context, id model.QuestionID) ([]model.AnswerDetail, error) {
	answers, err := s.repo.GetAnswers(ctx, id.QuestionUUID)
	if err != nil {
		return nil, fromRepository(err)
	}
	return answers, nil
}

func (s *AnswerService) DeleteAnswer(ctx context.Context, id model.AnswerID) error {
	return fromRepository(s.repo.DeleteAnswer(ctx, id.AnswerUUID))
}
