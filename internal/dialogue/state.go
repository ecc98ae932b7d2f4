package dialogue

import (
	"fmt"
	"strings"

	"dealership-assistant/internal/model"
)

// ConversationState holds one session's history and booking draft. It is
// owned by the host, passed into ProcessTurn, and must not be shared
// across concurrent turns.
type ConversationState struct {
	History []model.Message
	Draft   model.BookingDraft

	maxHistory int
}

// NewConversationState creates an empty state. History is windowed to
// maxHistory messages (0 means unbounded).
func NewConversationState(maxHistory int) *ConversationState {
	return &ConversationState{
		Draft:      model.BookingDraft{},
		maxHistory: maxHistory,
	}
}

// Append records a message, trimming the oldest entries past the cap.
func (s *ConversationState) Append(role, content string) {
	s.History = append(s.History, model.Message{Role: role, Content: content})
	if s.maxHistory > 0 && len(s.History) > s.maxHistory {
		s.History = s.History[len(s.History)-s.maxHistory:]
	}
}

// Window returns the last n messages.
func (s *ConversationState) Window(n int) []model.Message {
	if len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}

// Context renders the last n messages as "role: content" lines for
// prompt building.
func (s *ConversationState) Context(n int) string {
	var b strings.Builder
	for _, msg := range s.Window(n) {
		fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Summary renders the whole transcript labelled Customer/Assistant.
func (s *ConversationState) Summary() string {
	if len(s.History) == 0 {
		return "No conversation yet."
	}

	var b strings.Builder
	b.WriteString("Conversation Summary:\n\n")
	for _, msg := range s.History {
		role := "Customer"
		if msg.Role == model.RoleAssistant {
			role = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, msg.Content)
	}
	return b.String()
}

// Reset clears the history and the draft.
func (s *ConversationState) Reset() {
	s.History = nil
	s.Draft = model.BookingDraft{}
}
