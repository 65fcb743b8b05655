package models

import "errors"

// Domain specific errors shared by the planner and chat flows.
var (
	ErrValidation        = errors.New("validation failed")
	ErrChatNotConfigured = errors.New("GEMINI_API_KEY not set. Chat requires a Gemini API key")
	ErrReplyUnavailable  = errors.New("failed to fetch Gemini response")
)
