package entity

import (
	"time"

	"github.com/evandrarf/cryptolearn-be/internal/glossary"
)

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

type MarkLearnedRequest struct {
	Term string `json:"term" validate:"required,max=100"`
}

type ProgressResponse struct {
	SessionID        string                      `json:"session_id"`
	LearnedTerms     []string                    `json:"learned_terms"`
	LearnedCount     int                         `json:"learned_count"`
	TotalTerms       int                         `json:"total_terms"`
	Completion       float64                     `json:"completion"`
	Level            glossary.Level              `json:"level"`
	QuizScore        int                         `json:"quiz_score"`
	QuizAttempts     int                         `json:"quiz_attempts"`
	QuizStreak       int                         `json:"quiz_streak"`
	BestStreak       int                         `json:"best_streak"`
	Accuracy         float64                     `json:"accuracy"`
	CriticalMastered bool                        `json:"critical_mastered"`
	Categories       []glossary.CategoryProgress `json:"categories"`
	Achievements     []glossary.Achievement      `json:"achievements"`
}

// NextQuestionQuery - GET /sessions/:session_id/quiz/next
type NextQuestionQuery struct {
	Mode          string `query:"mode" validate:"omitempty,oneof=random adaptive smart"`
	Category      string `query:"category" validate:"max=50"`
	IncludeAnswer bool   `query:"include_answer"`
}

type QuestionResponse struct {
	QuestionID  string              `json:"question_id"`
	Term        string              `json:"term"`
	Category    string              `json:"category"`
	Difficulty  glossary.Difficulty `json:"difficulty"`
	Importance  glossary.Importance `json:"importance"`
	Options     []string            `json:"options"`
	Mode        glossary.Mode       `json:"mode"`
	AnswerIndex *int                `json:"answer_index,omitempty"`
}

type SubmitAnswerRequest struct {
	QuestionID  string `json:"question_id" validate:"required,uuid"`
	AnswerIndex *int   `json:"answer_index" validate:"required,min=0"`
}

type AnswerResponse struct {
	Correct           bool                   `json:"correct"`
	CorrectIndex      int                    `json:"correct_index"`
	CorrectDefinition string                 `json:"correct_definition"`
	Term              string                 `json:"term"`
	Example           string                 `json:"example,omitempty"`
	QuizScore         int                    `json:"quiz_score"`
	QuizAttempts      int                    `json:"quiz_attempts"`
	QuizStreak        int                    `json:"quiz_streak"`
	Accuracy          float64                `json:"accuracy"`
	Unlocked          []glossary.Achievement `json:"unlocked,omitempty"`
}
