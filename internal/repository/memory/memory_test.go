package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/deppfellow/go-qa/internal/model"
	"github.com/deppfellow/go-qa/internal/repository"
	"github.com/deppfellow/go-qa/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsLifecycle(t *testing.T) {
	ctx := context.Background()
	store := New()

	first, err := store.CreateQuestion(ctx, model.Question{Title: "T", Description: "D"})
	require.NoError(t, err)
	second, err := store.CreateQuestion(ctx, model.Question{Title: "T", Description: "D"})
	require.NoError(t, err)

	assert.Equal(t, "T", first.Title)
	assert.Equal(t, "D", first.Description)
	assert.NotEqual(t, first.QuestionUUID, second.QuestionUUID)

	questions, err := store.GetQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, first.QuestionUUID, questions[0].QuestionUUID)

	require.NoError(t, store.DeleteQuestion(ctx, first.QuestionUUID.String()))
	require.NoError(t, store.DeleteQuestion(ctx, first.QuestionUUID.String()))

	questions, err = store.GetQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, second.QuestionUUID, questions[0].QuestionUUID)
}

func TestAnswersBelongToTheirQuestion(t *testing.T) {
	ctx := context.Background()
	store := New()

	q1, err := store.CreateQuestion(ctx, model.Question{Title: "one"})
	require.NoError(t, err)
	q2, err := store.CreateQuestion(ctx, model.Question{Title: "two"})
	require.NoError(t, err)

	a1, err := store.CreateAnswer(ctx, model.Answer{QuestionUUID: q1.QuestionUUID.String(), Content: "a"})
	require.NoError(t, err)
	_, err = store.CreateAnswer(ctx, model.Answer{QuestionUUID: q2.QuestionUUID.String(), Content: "b"})
	require.NoError(t, err)
	assert.Equal(t, q1.QuestionUUID, a1.QuestionUUID)

	answers, err := store.GetAnswers(ctx, q1.QuestionUUID.String())
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, a1.AnswerUUID, answers[0].AnswerUUID)

	require.NoError(t, store.DeleteAnswer(ctx, a1.AnswerUUID.String()))
	require.NoError(t, store.DeleteAnswer(ctx, uuid.NewString()))

	answers, err = store.GetAnswers(ctx, q1.QuestionUUID.String())
	require.NoError(t, err)
	assert.Equal(t, []model.AnswerDetail{}, answers)
}

func TestUnknownQuestionIsInvalidIdentifier(t *testing.T) {
	missing := uuid.NewString()

	_, err := New().CreateAnswer(context.Background(), model.Answer{QuestionUUID: missing, Content: "C"})

	var invalid *repository.InvalidIdentifierError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, missing, invalid.ID)
}

func TestMalformedIdentifiers(t *testing.T) {
	ctx := context.Background()
	store := New()

	for _, id := range []string{"", "abc", "1234", "0b6f1c9e-4a57-4f0e-9d6e"} {
		var invalid *repository.InvalidIdentifierError

		assert.ErrorAs(t, store.DeleteQuestion(ctx, id), &invalid, "delete question %q", id)
		assert.ErrorAs(t, store.DeleteAnswer(ctx, id), &invalid, "delete answer %q", id)

		_, err := store.GetAnswers(ctx, id)
		assert.ErrorAs(t, err, &invalid, "get answers %q", id)

		_, err = store.CreateAnswer(ctx, model.Answer{QuestionUUID: id})
		assert.ErrorAs(t, err, &invalid, "create answer %q", id)
	}
}

func TestDeleteReferencedQuestion(t *testing.T) {
	ctx := context.Background()
	store := New()

	question, err := store.CreateQuestion(ctx, model.Question{Title: "T"})
	require.NoError(t, err)
	_, err = store.CreateAnswer(ctx, model.Answer{QuestionUUID: question.QuestionUUID.String(), Content: "C"})
	require.NoError(t, err)

	err = store.DeleteQuestion(ctx, question.QuestionUUID.String())

	var storageErr *repository.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(err))

	questions, err := store.GetQuestions(ctx)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	store := New()

	question, err := store.CreateQuestion(ctx, model.Question{Title: "T"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateAnswer(ctx, model.Answer{QuestionUUID: question.QuestionUUID.String(), Content: "C"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	answers, err := store.GetAnswers(ctx, question.QuestionUUID.String())
	require.NoError(t, err)
	assert.Len(t, answers, 50)
}
