package rag

import (
	"context"
	"strings"

	"github.com/mwalkowski/laradoc"
)

// Canned responses for inputs that skip the pipeline.
const (
	GreetingResponse = "Hello! I'm your advanced Laravel documentation assistant. I intelligently choose the best tools to answer your Laravel questions. Ask me anything about Laravel!"

	ShortQuestionResponse = "Please ask me a specific question about Laravel, and I'll intelligently choose the best tools to help you!"
)

// greetings are matched against the lowercased, trimmed question.
var greetings = []string{"hi", "hello", "hey", "hii", "hai", "sup", "yo", "howdy"}

// Engine runs the full question pipeline: plan, execute tools,
// synthesize, and record the exchange in session history.
type Engine struct {
	orchestrator *Orchestrator
	tools        map[laradoc.ToolKind]*Tool
	synthesizer  *Synthesizer
	history      laradoc.HistoryService
}

// NewEngine assembles an Engine. Every tool kind must be present in
// tools; missing kinds fall back to the general tool at dispatch.
func NewEngine(orchestrator *Orchestrator, tools []*Tool, synthesizer *Synthesizer, history laradoc.HistoryService) *Engine {
	byKind := make(map[laradoc.ToolKind]*Tool, len(tools))
	for _, tool := range tools {
		byKind[tool.Kind()] = tool
	}
	return &Engine{
		orchestrator: orchestrator,
		tools:        byKind,
		synthesizer:  synthesizer,
		history:      history,
	}
}

// isGreeting reports whether the question is a bare greeting.
func isGreeting(question string) bool {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, g := range greetings {
		if q == g {
			return true
		}
	}
	return false
}

// Chat answers one question within a session. Greetings and questions of
// three characters or fewer get canned responses without touching the
// model; everything else runs the full pipeline and appends the exchange
// to the session's history.
func (e *Engine) Chat(ctx context.Context, sessionID, question string) (string, error) {
	if isGreeting(question) {
		return GreetingResponse, nil
	}
	if len(strings.TrimSpace(question)) <= 3 {
		return ShortQuestionResponse, nil
	}

	turns, err := e.history.Turns(ctx, sessionID)
	if err != nil {
		return "", err
	}

	plan, err := e.orchestrator.Plan(ctx, question, turns)
	if err != nil {
		return "", err
	}

	results := make([]ToolResult, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		tool, ok := e.tools[step.Tool]
		if !ok {
			tool = e.tools[laradoc.ToolGeneral]
		}
		results = append(results, ToolResult{
			Name:   tool.Kind().String(),
			Output: tool.Run(ctx, step.Query),
		})
	}

	answer, err := e.synthesizer.Synthesize(ctx, question, turns, results)
	if err != nil {
		return "", err
	}

	if err := e.history.Append(ctx, sessionID,
		laradoc.Turn{Role: laradoc.RoleUser, Text: question},
		laradoc.Turn{Role: laradoc.RoleAssistant, Text: answer},
	); err != nil {
		return "", err
	}

	return answer, nil
}

// History returns the session's turns in order.
func (e *Engine) History(ctx context.Context, sessionID string) ([]laradoc.Turn, error) {
	return e.history.Turns(ctx, sessionID)
}

// ClearHistory removes the session's turns.
func (e *Engine) ClearHistory(ctx context.Context, sessionID string) error {
	return e.history.Clear(ctx, sessionID)
}
