package repository

import (
	"github.com/deppfellow/go-qa/internal/server"
)

// Repositories is a container for all repository instances.
//
// The fields are interfaces so tests and the composition root can swap in
// the in-memory store.
type Repositories struct {
	Questions QuestionRepository
	Answers   AnswerRepository
}

// NewRepositories builds the Postgres repositories on the shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Questions: NewPostgresQuestions(s.DB.Pool),
		Answers:   NewPostgresAnswers(s.DB.Pool),
	}
}
