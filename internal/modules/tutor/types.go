package tutor

import (
	"context"
	"errors"

	"github.com/eduforge/core/internal/modules/analytics"
)

// Role selects which context the tutor grounds itself in. This is a closed
// two-way variant; anything else is rejected up front.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

var (
	ErrUnknownRole   = errors.New("unknown tutor role")
	ErrEmptyQuestion = errors.New("question is empty")
)

// Message roles within a chat session.
const (
	MessageRoleUser   = "user"
	MessageRoleModel  = "model"
	MessageRoleSystem = "system"
)

// ChatMessage is one turn in a session-scoped, in-memory conversation.
// Nothing here is ever persisted.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Source provides the analytics aggregations the tutor grounds answers in.
type Source interface {
	Platform(ctx context.Context) (*analytics.PlatformSummary, error)
	Student(ctx context.Context, studentID string) (*analytics.StudentSummary, error)
}

// Completer dispatches a single assembled prompt to the external
// generative-model endpoint. Implementations fail closed: they return an
// error, never panic, and never return usable text alongside one.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, prompt string) (string, error)
}

type greetingDTO struct {
	SessionID string `json:"session_id" binding:"required"`
}

type chatDTO struct {
	SessionID           string `json:"session_id" binding:"required"`
	Question            string `json:"question"`
	Analyze             bool   `json:"analyze"`
	ForceContextRefresh bool   `json:"force_context_refresh"`
}

type chatResponse struct {
	Message ChatMessage `json:"message"`
}
