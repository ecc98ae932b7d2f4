package dialogue

import (
	"context"

	"dealership-assistant/internal/model"
)

// UseCase defines the business logic interface for the dialogue orchestrator.
type UseCase interface {
	// ProcessTurn runs one conversation turn against the caller-owned state
	// and returns the single next assistant utterance. Every failure mode
	// resolves to a user-facing response; the error return covers only
	// broken collaborators (e.g. catalog read failure).
	ProcessTurn(ctx context.Context, state *ConversationState, input ProcessTurnInput) (ProcessTurnOutput, error)

	// Reset clears the conversation history and the booking draft.
	Reset(ctx context.Context, state *ConversationState)
}

// NLUEngine is the language-understanding capability consumed by the
// orchestrator. All operations degrade internally; none return errors.
type NLUEngine interface {
	ClassifyIntent(ctx context.Context, utterance string) model.IntentResult
	ExtractBookingFields(ctx context.Context, window []model.Message) model.BookingDraft
	GenerateReply(ctx context.Context, contextText, utterance string) string
}
