package tutor

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Service runs the tutor conversation pipeline: assemble a fresh context,
// dispatch to the model, and keep the session history consistent. Exactly
// one tutor-side message is appended per request, success or fallback.
type Service struct {
	analytics Source
	model     Completer
	sessions  *Store
	log       *zap.Logger
}

func NewService(analytics Source, model Completer, log *zap.Logger) *Service {
	return &Service{
		analytics: analytics,
		model:     model,
		sessions:  NewStore(),
		log:       log,
	}
}

// Sessions exposes the in-memory session store (used by handlers and tests).
func (s *Service) Sessions() *Store { return s.sessions }

// Greet opens a session with a one-shot, analytics-derived greeting.
// Missing or empty analytics degrade to a generic greeting; the greeting
// never names a topic the data does not contain. Greeting an existing
// session restarts it, so history always begins with a single greeting.
func (s *Service) Greet(ctx context.Context, role Role, userID, userName, sessionID string) (string, error) {
	var greeting string
	switch role {
	case RoleTeacher:
		ps, err := s.analytics.Platform(ctx)
		if err != nil {
			s.log.Warn("platform analytics unavailable for greeting", zap.Error(err))
			ps = nil
		}
		greeting = teacherGreeting(ps)
	case RoleStudent:
		ss, err := s.analytics.Student(ctx, userID)
		if err != nil {
			s.log.Warn("student analytics unavailable for greeting",
				zap.String("student_id", userID), zap.Error(err))
			ss = nil
		}
		greeting = studentGreeting(userName, ss)
	default:
		return "", ErrUnknownRole
	}

	s.sessions.Reset(sessionID)
	s.sessions.Append(sessionID, ChatMessage{Role: MessageRoleModel, Content: greeting})
	return greeting, nil
}

// Respond answers one user turn. The analytics context is refetched on
// every call, never reused from a prior turn, so the answer always reflects
// the latest state. Any dispatch failure is mapped to the fallback message;
// the error never reaches the caller and the history never ends up with
// zero or two new tutor messages.
func (s *Service) Respond(ctx context.Context, role Role, userID, userName, sessionID, question string) (string, error) {
	if role != RoleTeacher && role != RoleStudent {
		return "", ErrUnknownRole
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	history := s.sessions.History(sessionID)
	contextBlock := s.freshContext(ctx, role, userID)

	s.sessions.Append(sessionID, ChatMessage{Role: MessageRoleUser, Content: question})

	reply, err := s.model.Complete(ctx, persona(role, userName), renderPrompt(contextBlock, history, question))
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			s.log.Warn("model dispatch failed, using fallback",
				zap.String("session_id", sessionID), zap.Error(err))
		}
		reply = fallbackMessage
	}

	s.sessions.Append(sessionID, ChatMessage{Role: MessageRoleModel, Content: reply})
	return reply, nil
}

// freshContext fetches and renders the role-specific context block. An
// analytics failure degrades to an empty block rather than aborting the
// turn; the persona instructs the model to admit missing data.
func (s *Service) freshContext(ctx context.Context, role Role, userID string) string {
	if role == RoleTeacher {
		ps, err := s.analytics.Platform(ctx)
		if err != nil {
			s.log.Warn("platform analytics fetch failed", zap.Error(err))
			return ""
		}
		return renderTeacherContext(ps)
	}

	ss, err := s.analytics.Student(ctx, userID)
	if err != nil {
		s.log.Warn("student analytics fetch failed",
			zap.String("student_id", userID), zap.Error(err))
		return ""
	}
	return renderStudentContext(ss)
}
