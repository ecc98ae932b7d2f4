package nlu

import (
	"context"
	"fmt"
	"strings"

	"dealership-assistant/pkg/llmprovider"
)

// GenerateReply produces a short free-form assistant reply for small talk.
// Failure returns a fixed apology rather than an error.
func (e *Engine) GenerateReply(ctx context.Context, contextText, utterance string) string {
	resp, err := e.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: fmt.Sprintf(PromptReplySystem, contextText),
		Messages: []llmprovider.Message{
			{Role: "user", Text: utterance},
		},
		Temperature: ReplyTemperature,
	})
	if err != nil {
		e.l.Warnf(ctx, "%s: LLM call failed: %v", LogPrefixGenerate, err)
		return ReplyApology
	}

	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		e.l.Warnf(ctx, "%s: empty LLM response", LogPrefixGenerate)
		return ReplyApology
	}
	return reply
}
