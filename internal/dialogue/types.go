package dialogue

import "dealership-assistant/internal/model"

// ProcessTurnInput is the input for one conversation turn.
type ProcessTurnInput struct {
	Utterance string
}

// ProcessTurnOutput carries the assistant's chosen response.
type ProcessTurnOutput struct {
	Response string
	Intent   model.Intent // effective intent after the state guard
}
