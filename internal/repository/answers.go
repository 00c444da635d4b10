package repository

import (
	"context"
	"time"

	"github.com/deppfellow/go-qa/internal/model"
	"github.com/deppfellow/go-qa/internal/sqlerr"
	"github.com/google/uuid"
)

const (
	insertAnswerSQL = `INSERT INTO answers (question_uuid, content)
VALUES ($1, $2)
RETURNING answer_uuid, question_uuid, content, created_at`

	deleteAnswerSQL = `DELETE FROM answers WHERE answer_uuid = $1`

	selectAnswersSQL = `SELECT answer_uuid, question_uuid, content, created_at
FROM answers
WHERE question_uuid = $1`
)

// PostgresAnswers stores answers in the answers table.
type PostgresAnswers struct {
	db DBTX
}

func NewPostgresAnswers(db DBTX) *PostgresAnswers {
	return &PostgresAnswers{db: db}
}

// CreateAnswer reports a missing question as an InvalidIdentifierError
// naming the question id.
func (r *PostgresAnswers) CreateAnswer(ctx context.Context, answer model.Answer) (*model.AnswerDetail, error) {
	questionID, err := uuid.Parse(answer.QuestionUUID)
	if err != nil {
		return nil, &InvalidIdentifierError{ID: answer.QuestionUUID, Err: err}
	}

	var (
		detail    model.AnswerDetail
		createdAt time.Time
	)
	err = r.db.QueryRow(ctx, insertAnswerSQL, questionID, answer.Content).
		Scan(&detail.AnswerUUID, &detail.QuestionUUID, &detail.Content, &createdAt)
	if err != nil {
		if sqlerr.ErrCode(err) == sqlerr.ForeignKeyViolation {
			return nil, &InvalidIdentifierError{ID: answer.QuestionUUID, Err: err}
		}
		return nil, &StorageError{Op: "create answer", Err: err}
	}

	detail.CreatedAt = model.Timestamp(createdAt)
	return &detail, nil
}

func (r *PostgresAnswers) DeleteAnswer(ctx context.Context, answerUUID string) error {
	id, err := uuid.Parse(answerUUID)
	if err != nil {
		return &InvalidIdentifierError{ID: answerUUID, Err: err}
	}

	if _, err := r.db.Exec(ctx, deleteAnswerSQL, id); err != nil {
		return &StorageError{Op: "delete answer", Err: err}
	}
	return nil
}

func (r *PostgresAnswers) GetAnswers(ctx context.Context, questionUUID string) ([]model.AnswerDetail, error) {
	id, err := uuid.Parse(questionUUID)
	if err != nil {
		return nil, &InvalidIdentifierError{ID: questionUUID, Err: err}
	}

	rows, err := r.db.Query(ctx, selectAnswersSQL, id)
	if err != nil {
		return nil, &StorageError{Op: "get answers", Err: err}
	}
	defer rows.Close()

	answers := make([]model.AnswerDetail, 0)
	for rows.Next() {
		var (
			detail    model.AnswerDetail
			createdAt time.Time
		)
		if err := rows.Scan(&detail.AnswerUUID, &detail.QuestionUUID, &detail.Content, &createdAt); err != nil {
			return nil, &StorageError{Op: "get answers", Err: err}
		}
		detail.CreatedAt = model.Timestamp(createdAt)
		answers = append(answers, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "get answers", Err: err}
	}

	return answers, nil
}
