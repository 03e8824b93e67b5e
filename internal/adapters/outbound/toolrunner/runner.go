// Package toolrunner drives the external parsing tool, one subprocess per
// target, and classifies each invocation.
package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tplcheck/tplcheck/internal/domain"
)

// Runner implements domain.ToolRunner using os/exec. The tool is invoked as
//
//	<tool> <file> -template:<template> -readonly -nowarnings [-noui] [-exit]
//
// and is read-only against the target file; the subprocess is the only side
// effect. Safe for concurrent use: each call owns its command and buffers.
type Runner struct {
	tool      string
	template  string
	root      string
	noUI      bool
	exitAfter bool
	timeout   time.Duration
	log       *zap.SugaredLogger
}

func New(cfg domain.RunConfig, log *zap.SugaredLogger) *Runner {
	return &Runner{
		tool:      cfg.ToolPath,
		template:  cfg.TemplatePath,
		root:      domain.NormalizePath(cfg.DataRoot),
		noUI:      cfg.NoUI,
		exitAfter: cfg.ExitAfter,
		timeout:   cfg.Timeout,
		log:       log,
	}
}

// Run executes the tool against one target, waits up to the per-file
// timeout, and returns the single terminal outcome. No retries.
func (r *Runner) Run(ctx context.Context, target domain.Target) domain.Outcome {
	args := []string{target.Path, "-template:" + r.template, "-readonly", "-nowarnings"}
	if r.noUI {
		args = append(args, "-noui")
	}
	if r.exitAfter {
		args = append(args, "-exit")
	}

	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, r.tool, args...)
	// Run each tool in its own process group so a timeout kills the whole
	// tree, not just the direct child.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := domain.ToolResult{
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   strings.TrimSpace(stderr.String()),
		Timeout:  r.timeout,
		ToolPath: r.tool,
	}
	switch {
	case errors.Is(cctx.Err(), context.DeadlineExceeded):
		res.TimedOut = true
	case err == nil:
		// exit 0
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.StartErr = err
		}
	}

	verdict, msg := domain.Classify(res)

	rel, under := domain.DisplayPath(target.Path, r.root)
	if !under {
		r.log.Warnw("selected target is not under the data root, displaying bare filename",
			"path", target.Path, "root", r.root)
	}

	return domain.Outcome{
		Path:         target.Path,
		RelativePath: rel,
		Verdict:      verdict,
		Message:      msg,
		Stdout:       res.Stdout,
		Stderr:       res.Stderr,
	}
}

var _ domain.ToolRunner = (*Runner)(nil)
