package tutor

import (
	"fmt"
	"strings"

	"github.com/eduforge/core/internal/modules/analytics"
)

const (
	teacherPersona = `Role: Analytical pedagogical coordinator for an education platform.

CRITICAL: Ground every statement in the analytics context provided below; NEVER invent numbers, subjects, or student names that are not in it.

## Task
Help the teacher understand class performance and plan interventions.

## Requirements
- Be precise and data-driven
- Cite the relevant figures from the context when making a point
- When the context lacks the data to answer, say so plainly
- Keep answers short and actionable`

	studentPersonaFmt = `Role: Encouraging study mentor for a student named %s.

CRITICAL: Ground every statement in the analytics context provided below; NEVER invent scores or topics that are not in it.

## Task
Help %s study effectively, focusing on weaker topics without discouraging them.

## Requirements
- Warm and supportive tone, address the student by name
- Tie advice to the figures in the context
- When the context lacks the data to answer, say so plainly
- Keep answers short and concrete`

	// fallbackMessage replaces the model reply on any dispatch failure so the
	// conversation is never left broken.
	fallbackMessage = "Sorry, I couldn't process that just now. Please try again in a moment."

	// analyzeQuestion stands in for the question when the user triggers the
	// explicit "analyze now" action instead of typing.
	analyzeQuestion = "Analyze the current performance data and point out what deserves attention."

	maxHistoryMessages = 20
)

func persona(role Role, userName string) string {
	if role == RoleStudent {
		name := strings.TrimSpace(userName)
		if name == "" {
			name = "the student"
		}
		return fmt.Sprintf(studentPersonaFmt, name, name)
	}
	return teacherPersona
}

// renderPrompt concatenates the fresh context block, the prior conversation
// and the current question into a single user prompt.
func renderPrompt(contextBlock string, history []ChatMessage, question string) string {
	var b strings.Builder

	b.WriteString("## Current analytics\n")
	if strings.TrimSpace(contextBlock) == "" {
		b.WriteString("(no analytics data available)\n")
	} else {
		b.WriteString(contextBlock)
		b.WriteString("\n")
	}

	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	if len(history) > 0 {
		b.WriteString("\n## Conversation so far\n")
		for _, msg := range history {
			label := "Tutor"
			if msg.Role == MessageRoleUser {
				label = "User"
			}
			fmt.Fprintf(&b, "%s: %s\n", label, msg.Content)
		}
	}

	b.WriteString("\n## Question\n")
	b.WriteString(question)
	return b.String()
}

func teacherGreeting(ps *analytics.PlatformSummary) string {
	if ps != nil && len(ps.HardestSubjects) > 0 {
		hardest := ps.HardestSubjects[0]
		return fmt.Sprintf(
			"Hello! Across the platform, students are struggling most with %s, sitting at %.0f%% accuracy. Want to dig into it together?",
			hardest.Subject, hardest.AccuracyPct,
		)
	}
	return "Hello! I'm your teaching analytics assistant. Ask me about class performance whenever you're ready."
}

func studentGreeting(name string, ss *analytics.StudentSummary) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "there"
	}
	if ss != nil && len(ss.Weaknesses) > 0 {
		weakest := ss.Weaknesses[0]
		return fmt.Sprintf(
			"Hi %s! I noticed %s has been your toughest topic lately (%.0f%% accuracy). Shall we work on it?",
			name, weakest.Subject, weakest.AccuracyPct,
		)
	}
	return fmt.Sprintf("Hi %s! I'm your study mentor. What would you like to work on today?", name)
}
