package nlu

import (
	"context"
	"encoding/json"
	"strings"

	"dealership-assistant/internal/model"
	"dealership-assistant/pkg/llmprovider"
)

// rawIntent is the untrusted classifier payload before validation.
type rawIntent struct {
	Intent     string            `json:"intent"`
	Entities   map[string]string `json:"entities"`
	Confidence float64           `json:"confidence"`
}

// ClassifyIntent labels the utterance with one of the closed intents.
// A failed or unparseable LLM call falls back to the keyword classifier;
// the caller never sees an error.
func (e *Engine) ClassifyIntent(ctx context.Context, utterance string) model.IntentResult {
	resp, err := e.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: PromptIntentSystem,
		Messages: []llmprovider.Message{
			{Role: "user", Text: utterance},
		},
		Temperature: ClassifyTemperature,
	})
	if err != nil {
		e.l.Warnf(ctx, "%s: LLM call failed, using keyword fallback: %v", LogPrefixClassify, err)
		return e.fallbackClassify(utterance)
	}

	var raw rawIntent
	if err := json.Unmarshal([]byte(stripCodeFences(resp.Text)), &raw); err != nil {
		e.l.Warnf(ctx, "%s: unparseable LLM output, using keyword fallback: %v", LogPrefixClassify, err)
		return e.fallbackClassify(utterance)
	}

	result := model.IntentResult{
		Intent:     model.ParseIntent(raw.Intent),
		Entities:   sanitizeEntities(raw.Entities),
		Confidence: clampConfidence(raw.Confidence),
	}

	e.l.Infof(ctx, "%s: %s (confidence %.2f)", LogPrefixClassify, result.Intent, result.Confidence)
	return result
}

// stripCodeFences removes markdown code blocks around a JSON payload and,
// failing that, takes the outermost brace-delimited span.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	if start := strings.Index(s, "{"); start >= 0 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}
	return s
}

// sanitizeEntities drops sentinel values the model emits for fields it
// did not actually extract.
func sanitizeEntities(entities map[string]string) map[string]string {
	out := make(map[string]string)
	for k, v := range entities {
		if model.IsSentinel(strings.TrimSpace(v)) {
			continue
		}
		out[k] = strings.TrimSpace(v)
	}
	return out
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
