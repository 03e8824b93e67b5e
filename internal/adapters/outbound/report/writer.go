// Package report persists one run as a timestamped artifact triple: a
// markdown report plus flat OK and failed path lists. The flat lists feed
// the next run's skip-set loader.
package report

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tplcheck/tplcheck/internal/domain"
)

const timestampLayout = "20060102_150405"

// Writer implements domain.ReportSink. Output is line-buffered and flushed
// section by section so a partially-written report is still a readable
// prefix; the report is not transactional.
type Writer struct {
	logDir string
}

func New(logDir string) *Writer {
	return &Writer{logDir: logDir}
}

// Write persists the report and both flat lists. Any failure to create,
// write, or close an artifact propagates; the flat lists feed the next
// run's skip set, so a silently truncated list must never pass for a
// complete one.
func (w *Writer) Write(r *domain.RunReport) (*domain.ArtifactPaths, error) {
	if err := os.MkdirAll(w.logDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", w.logDir, err)
	}

	ts := r.StartedAt.Format(timestampLayout)
	paths := &domain.ArtifactPaths{
		ReportPath:     filepath.Join(w.logDir, fmt.Sprintf("validation_log_%s.md", ts)),
		OKListPath:     filepath.Join(w.logDir, fmt.Sprintf("ok_files_%s.txt", ts)),
		FailedListPath: filepath.Join(w.logDir, fmt.Sprintf("error_files_%s.txt", ts)),
	}

	if err := writeMarkdown(paths, r); err != nil {
		return nil, err
	}

	var ok, failed []string
	for _, o := range r.Outcomes {
		if o.Verdict == domain.VerdictOK {
			ok = append(ok, o.Path)
		} else {
			failed = append(failed, o.Path)
		}
	}
	if err := writeList(paths.OKListPath, "OK", ok); err != nil {
		return nil, err
	}
	if err := writeList(paths.FailedListPath, "failed", failed); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeMarkdown(paths *domain.ArtifactPaths, r *domain.RunReport) error {
	md, err := os.Create(paths.ReportPath)
	if err != nil {
		return fmt.Errorf("opening report file: %w", err)
	}

	buf := bufio.NewWriter(md)
	writeHeader(buf, r, paths)
	buf.Flush()
	writeOutcomeTable(buf, r)
	buf.Flush()
	writeSummary(buf, r)
	if err := buf.Flush(); err != nil {
		md.Close()
		return fmt.Errorf("flushing report: %w", err)
	}
	if err := md.Close(); err != nil {
		return fmt.Errorf("closing report: %w", err)
	}
	return nil
}

func writeList(path, name string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening %s list file: %w", name, err)
	}
	buf := bufio.NewWriter(f)
	for _, line := range lines {
		fmt.Fprintln(buf, line)
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s list: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s list: %w", name, err)
	}
	return nil
}

func writeHeader(buf *bufio.Writer, r *domain.RunReport, paths *domain.ArtifactPaths) {
	cfg := r.Config
	fmt.Fprintf(buf, "# Template validation log (%s)\n\n", r.StartedAt.Format(timestampLayout))
	fmt.Fprintf(buf, "Run ID: `%s`\n\n", r.RunID)
	fmt.Fprintf(buf, "## Configuration\n\n")
	fmt.Fprintf(buf, "- **Tool:** `%s`\n", cfg.ToolPath)
	fmt.Fprintf(buf, "- **Template:** `%s`\n", cfg.TemplatePath)
	if r.TemplateCommit != "" {
		fmt.Fprintf(buf, "- **Template commit:** `%s`\n", r.TemplateCommit)
	}
	fmt.Fprintf(buf, "- **Data root:** `%s`\n", cfg.DataRoot)
	fmt.Fprintf(buf, "- **Recursive:** %s\n", yesNo(cfg.Recursive))
	fmt.Fprintf(buf, "- **Pattern:** `%s` (%s)\n", cfg.Pattern, patternKind(cfg.Pattern))
	fmt.Fprintf(buf, "- **Skip prior OK:** %s", yesNo(cfg.SkipPriorOK))
	if cfg.SkipPriorOK && r.SkipSetSize > 0 {
		fmt.Fprintf(buf, " (%d entries loaded)", r.SkipSetSize)
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "- **Use -noui:** %s\n", yesNo(cfg.NoUI))
	fmt.Fprintf(buf, "- **Use -exit:** %s\n", yesNo(cfg.ExitAfter))
	fmt.Fprintf(buf, "- **Per-file timeout:** %gs\n", cfg.Timeout.Seconds())
	fmt.Fprintf(buf, "- **Workers:** %d\n", cfg.Workers)
	fmt.Fprintf(buf, "- **Report (MD):** `%s`\n", paths.ReportPath)
	fmt.Fprintf(buf, "- **OK list (TXT):** `%s`\n", paths.OKListPath)
	fmt.Fprintf(buf, "- **Failed list (TXT):** `%s`\n", paths.FailedListPath)
	fmt.Fprintln(buf)
}

func writeOutcomeTable(buf *bufio.Writer, r *domain.RunReport) {
	fmt.Fprintf(buf, "## Outcomes (%d matched, %d to process)\n\n", r.Matched, r.Processed())
	if r.Skipped > 0 {
		fmt.Fprintf(buf, "*%d matched file(s) skipped, already OK in a prior run.*\n\n", r.Skipped)
	}
	if r.Processed() == 0 {
		if r.Matched > 0 && r.Skipped == r.Matched {
			fmt.Fprintf(buf, "All %d matched file(s) were already OK in a prior run; nothing was processed.\n", r.Matched)
		} else {
			fmt.Fprintf(buf, "No files matched pattern `%s` under `%s`.\n", r.Config.Pattern, r.Config.DataRoot)
		}
		return
	}

	fmt.Fprintln(buf, "| Status | File | Details |")
	fmt.Fprintln(buf, "|---|---|---|")
	for _, o := range r.Outcomes {
		details := sanitizeCell(o.Message)
		if o.Verdict != domain.VerdictOK {
			if o.Stdout != "" {
				details += "<br><br>**stdout:**<br><pre>" + sanitizeCell(o.Stdout) + "</pre>"
			}
			if o.Stderr != "" {
				details += "<br><br>**stderr:**<br><pre>" + sanitizeCell(o.Stderr) + "</pre>"
			}
		}
		fmt.Fprintf(buf, "| %s | %s | %s |\n", o.Verdict, fileLink(o.Path), details)
	}
	fmt.Fprintln(buf)
}

func writeSummary(buf *bufio.Writer, r *domain.RunReport) {
	fmt.Fprintf(buf, "## Summary\n\n")
	fmt.Fprintf(buf, "- Files matching pattern: %d\n", r.Matched)
	if r.Skipped > 0 {
		fmt.Fprintf(buf, "- Skipped (OK in a prior run): %d\n", r.Skipped)
	}
	fmt.Fprintf(buf, "- Processed this run: %d\n", r.Processed())
	fmt.Fprintf(buf, "- OK: %d\n", r.CountOK())
	fmt.Fprintf(buf, "- Non-OK (SUSPECT or FAILED): %d\n", r.CountNonOK())

	nonOK := r.NonOK()
	if len(nonOK) == 0 {
		if r.Processed() > 0 {
			fmt.Fprintln(buf, "- No errors or timeouts detected in any processed file.")
		}
		return
	}
	fmt.Fprintf(buf, "\n### Files needing attention (%d)\n\n", len(nonOK))
	for i, o := range nonOK {
		fmt.Fprintf(buf, "%d. %s — %s: %s\n", i+1, fileLink(o.Path), o.Verdict, sanitizeCell(o.Message))
	}
}

// sanitizeCell escapes the characters that would break a markdown table
// row. The captured text itself is preserved verbatim in content.
func sanitizeCell(s string) string {
	return strings.NewReplacer("|", "\\|", "\r\n", "<br>", "\n", "<br>").Replace(s)
}

// fileLink renders a clickable file:/// link labeled with the bare filename.
func fileLink(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return fmt.Sprintf("[%s](%s)", filepath.Base(path), u.String())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func patternKind(pattern string) string {
	m, err := domain.NewFilenameMatcher(pattern)
	if err != nil {
		return "invalid"
	}
	return m.Kind()
}

var _ domain.ReportSink = (*Writer)(nil)
