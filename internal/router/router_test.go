package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/go-qa/internal/config"
	"github.com/deppfellow/go-qa/internal/handler"
	"github.com/deppfellow/go-qa/internal/middleware"
	"github.com/deppfellow/go-qa/internal/model"
	"github.com/deppfellow/go-qa/internal/repository/memory"
	"github.com/deppfellow/go-qa/internal/server"
	"github.com/deppfellow/go-qa/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, rateLimit float64) *echo.Echo {
	t.Helper()

	log := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          rateLimit,
			},
		},
		Logger: &log,
	}

	services := service.NewServices(memory.New().Repositories())
	return NewRouter(s, handler.NewHandlers(s, services))
}

func send(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestQuestionAnswerScenario(t *testing.T) {
	e := newTestRouter(t, 0)

	rec := send(t, e, http.MethodPost, "/question", `{"title":"T","description":"D"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var question model.QuestionDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &question))
	q := question.QuestionUUID.String()

	rec = send(t, e, http.MethodPost, "/answer", `{"question_uuid":"`+q+`","content":"C"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var answer model.AnswerDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answer))
	assert.Equal(t, question.QuestionUUID, answer.QuestionUUID)
	a := answer.AnswerUUID.String()

	rec = send(t, e, http.MethodGet, "/answers", `{"question_uuid":"`+q+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var answers []model.AnswerDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answers))
	require.Len(t, answers, 1)
	assert.Equal(t, a, answers[0].AnswerUUID.String())
	assert.Equal(t, "C", answers[0].Content)

	rec = send(t, e, http.MethodDelete, "/answer", `{"answer_uuid":"`+a+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = send(t, e, http.MethodGet, "/answers", `{"question_uuid":"`+q+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAnswersAreScopedToTheirQuestion(t *testing.T) {
	e := newTestRouter(t, 0)

	ids := make([]string, 2)
	for i := range ids {
		rec := send(t, e, http.MethodPost, "/question", `{"title":"T","description":"D"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var question model.QuestionDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &question))
		ids[i] = question.QuestionUUID.String()
	}
	assert.NotEqual(t, ids[0], ids[1])

	require.Equal(t, http.StatusOK, send(t, e, http.MethodPost, "/answer", `{"question_uuid":"`+ids[0]+`","content":"first"}`).Code)
	require.Equal(t, http.StatusOK, send(t, e, http.MethodPost, "/answer", `{"question_uuid":"`+ids[1]+`","content":"second"}`).Code)

	rec := send(t, e, http.MethodGet, "/answers", `{"question_uuid":"`+ids[1]+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var answers []model.AnswerDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answers))
	require.Len(t, answers, 1)
	assert.Equal(t, "second", answers[0].Content)

	rec = send(t, e, http.MethodGet, "/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var questions []model.QuestionDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &questions))
	assert.Len(t, questions, 2)
}

func TestDeleteQuestionWithAnswersIsRefused(t *testing.T) {
	e := newTestRouter(t, 0)

	rec := send(t, e, http.MethodPost, "/question", `{"title":"T","description":"D"}`)
	var question model.QuestionDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &question))
	q := question.QuestionUUID.String()
	require.Equal(t, http.StatusOK, send(t, e, http.MethodPost, "/answer", `{"question_uuid":"`+q+`","content":"C"}`).Code)

	rec = send(t, e, http.MethodDelete, "/question", `{"question_uuid":"`+q+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Question is still referenced by existing Answers")
}

func TestCORSAndRequestID(t *testing.T) {
	e := newTestRouter(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	req.Header.Set(echo.HeaderOrigin, "https://example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	req = httptest.NewRequest(http.MethodOptions, "/question", nil)
	req.Header.Set(echo.HeaderOrigin, "https://example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodDelete)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodDelete)
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	e := newTestRouter(t, 0)

	rec := send(t, e, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestRateLimiter(t *testing.T) {
	e := newTestRouter(t, 1)

	codes := make([]int, 0, 10)
	for i := 0; i < 10; i++ {
		codes = append(codes, send(t, e, http.MethodGet, "/questions", "").Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}
