package model

import "github.com/google/uuid"

// Answer is the create-answer payload.
type Answer struct {
	QuestionUUID string `json:"question_uuid"`
	Content      string `json:"content"`
}

func (a *Answer) Validate() error {
	return nil
}

// AnswerDetail is a stored answer.
type AnswerDetail struct {
	AnswerUUID   uuid.UUID `json:"answer_uuid"`
	QuestionUUID uuid.UUID `json:"question_uuid"`
	Content      string    `json:"content"`
	CreatedAt    Timestamp `json:"created_at"`
}

type AnswerID struct {
	AnswerUUID string `json:"answer_uuid" query:"answer_uuid"`
}

func (a *AnswerID) Validate() error {
	return nil
}
