package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mwalkowski/laradoc"
)

// Orchestrator asks a model which tools to run for a question and parses
// its answer into an execution plan.
type Orchestrator struct {
	gen         laradoc.Generator
	model       string
	temperature float32
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(gen laradoc.Generator, model string, temperature float32) *Orchestrator {
	return &Orchestrator{gen: gen, model: model, temperature: temperature}
}

// orchestratorSystemPrompt builds the planning instructions, enumerating
// the fixed tool registry.
func orchestratorSystemPrompt() string {
	var descriptions strings.Builder
	for _, spec := range laradoc.ToolSpecs() {
		fmt.Fprintf(&descriptions, "- %s: %s\n", spec.Name, spec.Description)
	}

	return `You are an intelligent orchestrator for a Laravel documentation system. Your job is to analyze user questions and decide which tools to use.

AVAILABLE TOOLS:
` + descriptions.String() + `
INSTRUCTIONS:
1. Analyze the user's question carefully
2. Use the chat history as context to understand the user's intent and previous questions
3. Decide which tool(s) would be most helpful (you can use multiple tools)
4. Return a JSON response with the tools to use and queries for each tool

Response format:
{
    "tools": [
        {
            "name": "tool_name",
            "query": "specific query for this tool"
        }
    ],
    "reasoning": "Brief explanation of why you chose these tools"
}

Examples:
- "What version Laravel currently" → {"tools": [{"name": "version_search", "query": "current Laravel version"}], "reasoning": "User wants version information"}
- "How to use middleware" → {"tools": [{"name": "feature_search", "query": "middleware"}], "reasoning": "User wants to learn about a specific feature"}
- "How to install Laravel" → {"tools": [{"name": "installation_search", "query": "install Laravel"}], "reasoning": "User wants installation guidance"}
- "Laravel routing and middleware" → {"tools": [{"name": "feature_search", "query": "routing"}, {"name": "feature_search", "query": "middleware"}], "reasoning": "User wants information about multiple features"}

Respond only with valid JSON.`
}

// Plan produces an execution plan for the question. A response that
// cannot be parsed yields the fallback plan rather than an error; a
// failed model call is a real error.
func (o *Orchestrator) Plan(ctx context.Context, question string, history []laradoc.Turn) (*laradoc.ExecutionPlan, error) {
	raw, err := o.gen.Generate(ctx, laradoc.GenerateRequest{
		Model:       o.model,
		System:      orchestratorSystemPrompt(),
		History:     history,
		Prompt:      question,
		Temperature: o.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("planning tools: %w", err)
	}

	return ParsePlan(raw, question), nil
}

// planResponse is the wire shape of the orchestrator's JSON answer.
type planResponse struct {
	Tools []struct {
		Name  string `json:"name"`
		Query string `json:"query"`
	} `json:"tools"`
	Reasoning string `json:"reasoning"`
}

// ParsePlan parses the model's raw response into an execution plan.
// Markdown code fences around the JSON are tolerated. Anything that
// fails to parse, or parses to zero tools, becomes the fallback plan:
// one general search with the raw question. Unrecognized tool names map
// to the general tool.
func ParsePlan(raw, question string) *laradoc.ExecutionPlan {
	var resp planResponse
	if err := json.Unmarshal([]byte(stripFences(raw)), &resp); err != nil || len(resp.Tools) == 0 {
		return laradoc.FallbackPlan(question)
	}

	plan := &laradoc.ExecutionPlan{Reasoning: resp.Reasoning}
	for _, tool := range resp.Tools {
		kind, _ := laradoc.ParseToolKind(tool.Name)
		query := tool.Query
		if query == "" {
			query = question
		}
		plan.Steps = append(plan.Steps, laradoc.PlanStep{Tool: kind, Query: query})
	}
	return plan
}

// stripFences removes a surrounding markdown code fence and any prose
// around the outermost JSON object.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return s
	}
	return s[start : end+1]
}
