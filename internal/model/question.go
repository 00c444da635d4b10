// Package model holds the request and response shapes shared by the
// repository, service and handler layers.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Question is the create-question payload.
type Question struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (q *Question) Validate() error {
	return nil
}

// QuestionDetail is a stored question.
type QuestionDetail struct {
	QuestionUUID uuid.UUID `json:"question_uuid"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedAt    Timestamp `json:"created_at"`
}

// QuestionID identifies a question. It binds from the JSON body or the
// query string.
type QuestionID struct {
	QuestionUUID string `json:"question_uuid" query:"question_uuid"`
}

func (q *QuestionID) Validate() error {
	return nil
}

// Timestamp renders as RFC 3339 with nanoseconds in UTC.
type Timestamp time.Time

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(time.RFC3339Nano) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var parsed time.Time
	if err := parsed.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Timestamp(parsed.UTC())
	return nil
}
