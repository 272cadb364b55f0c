package types

// Result records the outcome of a single dependency, in declaration order.
// Created once, never mutated afterward.
type Result struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Skipped marks a dry-run entry: validated and built, never spawned.
	Skipped bool `json:"skipped,omitempty"`
}

// Report is the sole return value of an install run.
type Report struct {
	// Success is the logical AND over all per-dependency successes.
	Success bool `json:"success"`
	// Details has exactly one entry per declared dependency, same order.
	Details []Result `json:"details"`
	// Logs is the full run log as one newline-joined string.
	Logs string `json:"logs"`
	// LogLines is the same log as an ordered sequence of lines.
	LogLines []string `json:"logsArray"`
}

// Failures returns the results that did not succeed, preserving order.
func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Details {
		if !res.Success {
			failed = append(failed, res)
		}
	}
	return failed
}

// SuccessCount returns how many dependencies succeeded.
func (r *Report) SuccessCount() int {
	n := 0
	for _, res := range r.Details {
		if res.Success {
			n++
		}
	}
	return n
}

// SkippedCount returns how many dependencies were dry-run entries.
func (r *Report) SkippedCount() int {
	n := 0
	for _, res := range r.Details {
		if res.Skipped {
			n++
		}
	}
	return n
}
