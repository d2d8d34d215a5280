package laradoc

// PlanStep is one planned tool invocation.
type PlanStep struct {
	Tool  ToolKind `json:"tool"`
	Query string   `json:"query"`
}

// ExecutionPlan is the orchestrator's structured output for one question:
// an ordered list of tool invocations plus the model's free-text
// rationale. A plan is produced fresh per question, consumed once, and
// discarded.
type ExecutionPlan struct {
	Steps     []PlanStep `json:"steps"`
	Reasoning string     `json:"reasoning"`
}

// FallbackPlan returns the plan used when the orchestrator's output
// cannot be parsed: a single general search with the raw question.
func FallbackPlan(question string) *ExecutionPlan {
	return &ExecutionPlan{
		Steps:     []PlanStep{{Tool: ToolGeneral, Query: question}},
		Reasoning: "Fallback to general search due to parsing error",
	}
}
