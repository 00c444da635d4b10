// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or delete data, abstracting SQL logic away from the service layer.
// Every operation issues exactly one statement.
package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-qa/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question model.Question) (*model.QuestionDetail, error)
	DeleteQuestion(ctx context.Context, questionUUID string) error
	GetQuestions(ctx context.Context) ([]model.QuestionDetail, error)
}

type AnswerRepository interface {
	CreateAnswer(ctx context.Context, answer model.Answer) (*model.AnswerDetail, error)
	DeleteAnswer(ctx context.Context, answerUUID string) error
	GetAnswers(ctx context.Context, questionUUID string) ([]model.AnswerDetail, error)
}

// InvalidIdentifierError reports an id that is not a UUID or that does not
// reference an existing row.
type InvalidIdentifierError struct {
	ID  string
	Err error
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid uuid %s", e.ID)
}

func (e *InvalidIdentifierError) Unwrap() error {
	return e.Err
}

// StorageError wraps any other database failure. Err keeps the driver
// error for classification by sqlerr.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
