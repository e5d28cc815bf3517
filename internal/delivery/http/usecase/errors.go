package usecase

import "errors"

var (
	ErrInvalidQuery     = errors.New("invalid query")
	ErrSessionRequired  = errors.New("session_id is required")
	ErrAnswerOutOfRange = errors.New("answer index out of range")
)
