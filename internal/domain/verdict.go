package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
)

// Verdict is the terminal classification of one target's validation attempt.
type Verdict string

const (
	// VerdictOK: the tool exited 0 and its output carried no failure keywords.
	VerdictOK Verdict = "OK"
	// VerdictSuspect: the tool exited 0 but its diagnostic text mentioned a
	// failure keyword. Remediation differs from FAILED (inspect output vs
	// re-run), so the two are never merged.
	VerdictSuspect Verdict = "SUSPECT"
	// VerdictFailed: non-zero exit, timeout, or the process never started.
	VerdictFailed Verdict = "FAILED"
)

// FailureKeywords are scanned case-insensitively against both stdout and
// stderr. The scan is a heuristic over free-form tool diagnostics, not a
// precise diagnostic; "错误" covers the tool's localized error prefix.
var FailureKeywords = []string{"error", "failed", "错误"}

// StderrFailureKeywords are additionally scanned against stderr only.
var StderrFailureKeywords = []string{"assert"}

// ToolResult is the raw observation from one external tool invocation.
// Classify maps it to a Verdict; nothing else inspects it.
type ToolResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
	StartErr error // non-nil when the process could not be started
	Timeout  time.Duration
	ToolPath string
}

// Classify maps a ToolResult to its verdict and a human-readable message.
// It is a pure function of its input: OK ⇔ exit 0 and no keyword match,
// SUSPECT ⇔ exit 0 with a keyword match, FAILED otherwise.
func Classify(res ToolResult) (Verdict, string) {
	switch {
	case res.TimedOut:
		return VerdictFailed, fmt.Sprintf("timed out after %gs", res.Timeout.Seconds())
	case res.StartErr != nil:
		if errors.Is(res.StartErr, fs.ErrNotExist) {
			return VerdictFailed, fmt.Sprintf("executable not found: %s", res.ToolPath)
		}
		return VerdictFailed, fmt.Sprintf("failed to start tool: %v", res.StartErr)
	case res.ExitCode != 0:
		return VerdictFailed, fmt.Sprintf("exit code %d, inspect output", res.ExitCode)
	case hasFailureKeyword(res.Stdout, res.Stderr):
		return VerdictSuspect, "exit code 0 but failure keywords found in output (heuristic), inspect output"
	default:
		return VerdictOK, "processed successfully"
	}
}

func hasFailureKeyword(stdout, stderr string) bool {
	so := strings.ToLower(stdout)
	se := strings.ToLower(stderr)
	for _, kw := range FailureKeywords {
		if strings.Contains(so, kw) || strings.Contains(se, kw) {
			return true
		}
	}
	for _, kw := range StderrFailureKeywords {
		if strings.Contains(se, kw) {
			return true
		}
	}
	return false
}
