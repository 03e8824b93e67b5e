package domain

import (
	"sort"
	"time"
)

// Selection is the net target set plus the counts the report retains even
// though only the net set is processed.
type Selection struct {
	Targets []Target
	Matched int // files matching the pattern
	Skipped int // matched files excluded by the prior-OK skip set
}

// ArtifactPaths locates the persisted triple for one run.
type ArtifactPaths struct {
	ReportPath     string
	OKListPath     string
	FailedListPath string
}

// RunReport is the full set of outcomes for one run plus run metadata.
// Built incrementally as outcomes arrive, finalized once all workers
// complete. Every selected target appears in exactly one outcome.
type RunReport struct {
	RunID          string
	StartedAt      time.Time
	Config         RunConfig
	TemplateCommit string // short HEAD hash of the template's repo, if any
	SkipSetSize    int    // entries loaded from the prior OK list

	Matched  int
	Skipped  int
	Outcomes []Outcome
}

// Sort orders outcomes by absolute path. Paths are unique keys, so the
// order is total and independent of worker completion order.
func (r *RunReport) Sort() {
	sort.Slice(r.Outcomes, func(i, j int) bool {
		return r.Outcomes[i].Path < r.Outcomes[j].Path
	})
}

// Processed is the number of targets actually run this time.
func (r *RunReport) Processed() int { return len(r.Outcomes) }

// CountOK counts outcomes with verdict OK.
func (r *RunReport) CountOK() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Verdict == VerdictOK {
			n++
		}
	}
	return n
}

// CountNonOK counts SUSPECT and FAILED outcomes.
func (r *RunReport) CountNonOK() int { return len(r.Outcomes) - r.CountOK() }

// NonOK returns the SUSPECT and FAILED outcomes in report order.
func (r *RunReport) NonOK() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Verdict != VerdictOK {
			out = append(out, o)
		}
	}
	return out
}
