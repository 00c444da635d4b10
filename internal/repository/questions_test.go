package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/deppfellow/go-qa/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	questionColumns = []string{"question_uuid", "title", "description", "created_at"}
	answerColumns   = []string{"answer_uuid", "question_uuid", "content", "created_at"}
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestCreateQuestion(t *testing.T) {
	mock := newMock(t)
	repo := NewPostgresQuestions(mock)

	id := uuid.New()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(insertQuestionSQL)).
		WithArgs("T", "D").
		WillReturnRows(pgxmock.NewRows(questionColumns).AddRow(id, "T", "D", created))

	detail, err := repo.CreateQuestion(context.Background(), model.Question{Title: "T", Description: "D"})
	require.NoError(t, err)

	assert.Equal(t, id, detail.QuestionUUID)
	assert.Equal(t, "T", detail.Title)
	assert.Equal(t, "D", detail.Description)
	assert.Equal(t, created, detail.CreatedAt.Time())
}

func TestCreateQuestionStorageFailure(t *testing.T) {
	mock := newMock(t)
	repo := NewPostgresQuestions(mock)

	mock.ExpectQuery(regexp.QuoteMeta(insertQuestionSQL)).
		WithArgs("T", "D").
		WillReturnError(errors.New("connection reset by peer"))

	_, err := repo.CreateQuestion(context.Background(), model.Question{Title: "T", Description: "D"})

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "create question", storageErr.Op)
}

func TestDeleteQuestion(t *testing.T) {
	t.Run("missing row is not an error", func(t *testing.T) {
		mock := newMock(t)
		repo := NewPostgresQuestions(mock)

		id := uuid.New()
		mock.ExpectExec(regexp.QuoteMeta(deleteQuestionSQL)).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.NoError(t, repo.DeleteQuestion(context.Background(), id.String()))
	})

	t.Run("malformed id never reaches the database", func(t *testing.T) {
		repo := NewPostgresQuestions(newMock(t))

		err := repo.DeleteQuestion(context.Background(), "not-a-uuid")

		var invalid *InvalidIdentifierError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "not-a-uuid", invalid.ID)
		assert.EqualError(t, err, "invalid uuid not-a-uuid")
	})

	t.Run("referenced question keeps driver error", func(t *testing.T) {
		mock := newMock(t)
		repo := NewPostgresQuestions(mock)

		id := uuid.New()
		mock.ExpectExec(regexp.QuoteMeta(deleteQuestionSQL)).
			WithArgs(id).
			WillReturnError(&pgconn.PgError{Code: "23503", TableName: "answers"})

		err := repo.DeleteQuestion(context.Background(), id.String())

		var storageErr *StorageError
		require.ErrorAs(t, err, &storageErr)
		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		assert.Equal(t, "23503", pgErr.Code)
	})
}

func TestGetQuestions(t *testing.T) {
	t.Run("rows in storage order", func(t *testing.T) {
		mock := newMock(t)
		repo := NewPostgresQuestions(mock)

		first, second := uuid.New(), uuid.New()
		now := time.Now().UTC()
		mock.ExpectQuery(regexp.QuoteMeta(selectQuestionsSQL)).
			WillReturnRows(pgxmock.NewRows(questionColumns).
				AddRow(first, "one", "first", now).
				AddRow(second, "two", "second", now))

		questions, err := repo.GetQuestions(context.Background())
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, first, questions[0].QuestionUUID)
		assert.Equal(t, second, questions[1].QuestionUUID)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		mock := newMock(t)
		repo := NewPostgresQuestions(mock)

		mock.ExpectQuery(regexp.QuoteMeta(selectQuestionsSQL)).
			WillReturnRows(pgxmock.NewRows(questionColumns))

		questions, err := repo.GetQuestions(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, questions)
		assert.Empty(t, questions)
	})

	t.Run("row error", func(t *testing.T) {
		mock := newMock(t)
		repo := NewPostgresQuestions(mock)

		mock.ExpectQuery(regexp.QuoteMeta(selectQuestionsSQL)).
			WillReturnRows(pgxmock.NewRows(questionColumns).
				AddRow(uuid.New(), "one", "first", time.Now()).
				RowError(0, errors.New("broken pipe")))

		_, err := repo.GetQuestions(context.Background())

		var storageErr *StorageError
		assert.ErrorAs(t, err, &storageErr)
	})
}
