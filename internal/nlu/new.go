package nlu

import (
	"context"

	"dealership-assistant/pkg/llmprovider"
	pkgLog "dealership-assistant/pkg/log"
)

// Generator is the text-generation capability consumed by the engine.
// Satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Engine classifies intents, extracts booking fields, and generates
// free-form replies. Every operation degrades to a deterministic local
// path when the LLM capability fails; none of them surface errors to
// the caller.
type Engine struct {
	l   pkgLog.Logger
	llm Generator
}

// New creates a new NLU engine.
func New(l pkgLog.Logger, llm Generator) *Engine {
	return &Engine{
		l:   l,
		llm: llm,
	}
}
