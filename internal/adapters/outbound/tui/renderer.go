// Package tui renders run output for the console.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tplcheck/tplcheck/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(success)
	suspectStyle = lipgloss.NewStyle().Bold(true).Foreground(warning)
	failedStyle  = lipgloss.NewStyle().Bold(true).Foreground(danger)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

func verdictStyle(v domain.Verdict) lipgloss.Style {
	switch v {
	case domain.VerdictOK:
		return okStyle
	case domain.VerdictSuspect:
		return suspectStyle
	default:
		return failedStyle
	}
}

// RenderConfig renders the configuration block shown before the run starts.
func RenderConfig(cfg domain.RunConfig) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("tplcheck"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("batch template validation"))
	b.WriteString("\n\n")
	row := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(label+":"), value)
	}
	row("tool", cfg.ToolPath)
	row("template", cfg.TemplatePath)
	row("data root", cfg.DataRoot)
	row("log dir", cfg.LogDir)
	row("pattern", cfg.Pattern)
	row("recursive", yesNo(cfg.Recursive))
	row("skip prior OK", yesNo(cfg.SkipPriorOK))
	row("timeout", fmt.Sprintf("%gs per file", cfg.Timeout.Seconds()))
	row("workers", fmt.Sprintf("%d", cfg.Workers))
	return b.String()
}

// RenderProgress renders one console progress line, emitted per completed
// target in completion order.
func RenderProgress(done, total int, o domain.Outcome) string {
	return fmt.Sprintf("%s %s: %s",
		dimStyle.Render(fmt.Sprintf("(%d/%d)", done, total)),
		verdictStyle(o.Verdict).Render(string(o.Verdict)),
		o.RelativePath,
	)
}

// RenderSummary renders the end-of-run summary with counts, the non-OK
// recap, and the artifact locations.
func RenderSummary(r *domain.RunReport, paths *domain.ArtifactPaths) string {
	var b strings.Builder
	b.WriteString("\n  " + separatorLine + "\n\n")
	fmt.Fprintf(&b, "  %s %d matched, %d skipped, %d processed\n",
		headerStyle.Render("Done."), r.Matched, r.Skipped, r.Processed())
	fmt.Fprintf(&b, "  %s %d   %s %d\n",
		okStyle.Render("OK:"), r.CountOK(),
		failedStyle.Render("non-OK:"), r.CountNonOK())

	if nonOK := r.NonOK(); len(nonOK) > 0 {
		b.WriteString("\n  " + failedStyle.Render(fmt.Sprintf("Files needing attention (%d):", len(nonOK))) + "\n")
		for i, o := range nonOK {
			fmt.Fprintf(&b, "  %d. %s — %s: %s\n",
				i+1, o.RelativePath, verdictStyle(o.Verdict).Render(string(o.Verdict)), o.Message)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("report:"), paths.ReportPath)
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("OK list:"), paths.OKListPath)
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("failed list:"), paths.FailedListPath)
	if r.RunID != "" {
		fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("run id:"), r.RunID)
	}
	return b.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
