package model

// Evaluation is the verdict on whether a free-text answer is worth profiling
type Evaluation struct {
	Useful    bool   `json:"useful"`
	Reasoning string `json:"reasoning"`
	Fallback  bool   `json:"fallback"` // true when the heuristic replaced the LLM verdict
}
