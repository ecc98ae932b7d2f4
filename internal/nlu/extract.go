package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dealership-assistant/internal/model"
	"dealership-assistant/pkg/llmprovider"
)

// ExtractBookingFields reconciles a short rolling conversation window
// into a partial booking draft. The assistant's preceding question is the
// disambiguation context for bare answers. Failure yields an empty draft,
// never an error.
func (e *Engine) ExtractBookingFields(ctx context.Context, window []model.Message) model.BookingDraft {
	if len(window) == 0 {
		return model.BookingDraft{}
	}

	var b strings.Builder
	for _, msg := range window {
		fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
	}

	resp, err := e.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: PromptExtractSystem,
		Messages: []llmprovider.Message{
			{Role: "user", Text: "Conversation History:\n" + b.String()},
		},
		Temperature: ExtractTemperature,
	})
	if err != nil {
		e.l.Warnf(ctx, "%s: LLM call failed, skipping extraction: %v", LogPrefixExtract, err)
		return model.BookingDraft{}
	}

	var raw map[string]string
	if err := json.Unmarshal([]byte(stripCodeFences(resp.Text)), &raw); err != nil {
		e.l.Warnf(ctx, "%s: unparseable LLM output, skipping extraction: %v", LogPrefixExtract, err)
		return model.BookingDraft{}
	}

	draft := model.BookingDraft{}
	for _, field := range model.RequiredBookingFields {
		if v, ok := raw[field]; ok {
			draft.Set(field, strings.TrimSpace(v))
		}
	}

	e.l.Infof(ctx, "%s: extracted %d fields", LogPrefixExtract, len(draft))
	return draft
}
