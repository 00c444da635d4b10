// Package memory is an in-process repository used when no database is
// available, mainly by tests of the upper layers.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/deppfellow/go-qa/internal/model"
	"github.com/deppfellow/go-qa/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Store implements both repository interfaces. It refuses the same things
// Postgres refuses: malformed ids, answers for unknown questions and
// deleting a question that still has answers.
type Store struct {
	mu sync.RWMutex

	questions     map[uuid.UUID]model.QuestionDetail
	questionOrder []uuid.UUID

	answers     map[uuid.UUID]model.AnswerDetail
	answerOrder []uuid.UUID

	now func() time.Time
}

var (
	_ repository.QuestionRepository = (*Store)(nil)
	_ repository.AnswerRepository   = (*Store)(nil)
)

func New() *Store {
	return &Store{
		questions: make(map[uuid.UUID]model.QuestionDetail),
		answers:   make(map[uuid.UUID]model.AnswerDetail),
		now:       time.Now,
	}
}

// Repositories returns a container backed by this store.
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{Questions: s, Answers: s}
}

func (s *Store) CreateQuestion(_ context.Context, question model.Question) (*model.QuestionDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	detail := model.QuestionDetail{
		QuestionUUID: uuid.New(),
		Title:        question.Title,
		Description:  question.Description,
		CreatedAt:    model.Timestamp(s.now().UTC()),
	}
	s.questions[detail.QuestionUUID] = detail
	s.questionOrder = append(s.questionOrder, detail.QuestionUUID)

	return &detail, nil
}

func (s *Store) DeleteQuestion(_ context.Context, questionUUID string) error {
	id, err := uuid.Parse(questionUUID)
	if err != nil {
		return &repository.InvalidIdentifierError{ID: questionUUID, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return nil
	}
	for _, answer := range s.answers {
		if answer.QuestionUUID == id {
			return &repository.StorageError{Op: "delete question", Err: questionReferencedError()}
		}
	}

	delete(s.questions, id)
	s.questionOrder = removeID(s.questionOrder, id)
	return nil
}

func (s *Store) GetQuestions(_ context.Context) ([]model.QuestionDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	questions := make([]model.QuestionDetail, 0, len(s.questionOrder))
	for _, id := range s.questionOrder {
		questions = append(questions, s.questions[id])
	}
	return questions, nil
}

func (s *Store) CreateAnswer(_ context.Context, answer model.Answer) (*model.AnswerDetail, error) {
	questionID, err := uuid.Parse(answer.QuestionUUID)
	if err != nil {
		return nil, &repository.InvalidIdentifierError{ID: answer.QuestionUUID, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[questionID]; !ok {
		return nil, &repository.InvalidIdentifierError{
			ID:  answer.QuestionUUID,
			Err: fmt.Errorf("question %s does not exist", questionID),
		}
	}

	detail := model.AnswerDetail{
		AnswerUUID:   uuid.New(),
		QuestionUUID: questionID,
		Content:      answer.Content,
		CreatedAt:    model.Timestamp(s.now().UTC()),
	}
	s.answers[detail.AnswerUUID] = detail
	s.answerOrder = append(s.answerOrder, detail.AnswerUUID)

	return &detail, nil
}

func (s *Store) DeleteAnswer(_ context.Context, answerUUID string) error {
	id, err := uuid.Parse(answerUUID)
	if err != nil {
		return &repository.InvalidIdentifierError{ID: answerUUID, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.answers[id]; ok {
		delete(s.answers, id)
		s.answerOrder = removeID(s.answerOrder, id)
	}
	return nil
}

func (s *Store) GetAnswers(_ context.Context, questionUUID string) ([]model.AnswerDetail, error) {
	id, err := uuid.Parse(questionUUID)
	if err != nil {
		return nil, &repository.InvalidIdentifierError{ID: questionUUID, Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	answers := make([]model.AnswerDetail, 0)
	for _, answerID := range s.answerOrder {
		if answer := s.answers[answerID]; answer.QuestionUUID == id {
			answers = append(answers, answer)
		}
	}
	return answers, nil
}

// questionReferencedError is what Postgres reports for the answers FK.
func questionReferencedError() *pgconn.PgError {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        `update or delete on table "questions" violates foreign key constraint "answers_question_uuid_fkey" on table "answers"`,
		TableName:      "answers",
		ConstraintName: "answers_question_uuid_fkey",
	}
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
