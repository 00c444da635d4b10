package service

import (
	"context"

	"github.com/deppfellow/go-qa/internal/model"
	"github.com/deppfellow/go-qa/internal/repository"
)

type QuestionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) *QuestionService {
	return &QuestionService{repo: repo}
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question model.Question) (*model.QuestionDetail, error) {
	detail, err := s.repo.CreateQuestion(ctx, question)
	if err != nil {
		return nil, fromRepository(err)
	}
	return detail, nil
}

func (s *QuestionService) ReadQuestions(ctx context.Context) ([]model.QuestionDetail, error) {
	questions, err := s.repo.GetQuestions(ctx)
	if err != nil {
		return nil, fromRepository(err)
	}
	return questions, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id model.QuestionID) error {
	return fromRepository(s.repo.DeleteQuestion(ctx, id.QuestionUUID))
}
