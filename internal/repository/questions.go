package repository

import (
	"context"
	"time"

	"github.com/deppfellow/go-qa/internal/model"
	"github.com/google/uuid"
)

const (
	insertQuestionSQL = `INSERT INTO questions (title, description)
VALUES ($1, $2)
RETURNING question_uuid, title, description, created_at`

	deleteQuestionSQL = `DELETE FROM questions WHERE question_uuid = $1`

	selectQuestionsSQL = `SELECT question_uuid, title, description, created_at FROM questions`
)

// PostgresQuestions stores questions in the questions table.
type PostgresQuestions struct {
	db DBTX
}

func NewPostgresQuestions(db DBTX) *PostgresQuestions {
	return &PostgresQuestions{db: db}
}

func (r *PostgresQuestions) CreateQuestion(ctx context.Context, question model.Question) (*model.QuestionDetail, error) {
	var (
		detail    model.QuestionDetail
		createdAt time.Time
	)

	err := r.db.QueryRow(ctx, insertQuestionSQL, question.Title, question.Description).
		Scan(&detail.QuestionUUID, &detail.Title, &detail.Description, &createdAt)
	if err != nil {
		return nil, &StorageError{Op: "create question", Err: err}
	}

	detail.CreatedAt = model.Timestamp(createdAt)
	return &detail, nil
}

// DeleteQuestion succeeds when no row matches. Postgres refuses the delete
// while answers still reference the question.
func (r *PostgresQuestions) DeleteQuestion(ctx context.Context, questionUUID string) error {
	id, err := uuid.Parse(questionUUID)
	if err != nil {
		return &InvalidIdentifierError{ID: questionUUID, Err: err}
	}

	if _, err := r.db.Exec(ctx, deleteQuestionSQL, id); err != nil {
		return &StorageError{Op: "delete question", Err: err}
	}
	return nil
}

func (r *PostgresQuestions) GetQuestions(ctx context.Context) ([]model.QuestionDetail, error) {
	rows, err := r.db.Query(ctx, selectQuestionsSQL)
	if err != nil {
		return nil, &StorageError{Op: "get questions", Err: err}
	}
	defer rows.Close()

	questions := make([]model.QuestionDetail, 0)
	for rows.Next() {
		var (
			detail    model.QuestionDetail
			createdAt time.Time
		)
		if err := rows.Scan(&detail.QuestionUUID, &detail.Title, &detail.Description, &createdAt); err != nil {
			return nil, &StorageError{Op: "get questions", Err: err}
		}
		detail.CreatedAt = model.Timestamp(createdAt)
		questions = append(questions, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "get questions", Err: err}
	}

	return questions, nil
}
