package application

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tplcheck/tplcheck/internal/domain"
)

// RunService orchestrates one validation run:
// preflight -> load skip set -> select targets -> worker pool -> aggregate -> persist.
type RunService struct {
	selector     domain.TargetSelector
	skipLoader   domain.SkipSetLoader
	runner       domain.ToolRunner
	sink         domain.ReportSink
	templateInfo domain.TemplateInfo
	log          *zap.SugaredLogger
}

func NewRunService(
	selector domain.TargetSelector,
	skipLoader domain.SkipSetLoader,
	runner domain.ToolRunner,
	sink domain.ReportSink,
	templateInfo domain.TemplateInfo,
	log *zap.SugaredLogger,
) *RunService {
	return &RunService{
		selector:     selector,
		skipLoader:   skipLoader,
		runner:       runner,
		sink:         sink,
		templateInfo: templateInfo,
		log:          log,
	}
}

// Run executes the full pipeline. Configuration errors abort before any
// target is processed; per-target failures are recorded as outcomes and
// never interrupt the batch.
func (s *RunService) Run(ctx context.Context, cfg domain.RunConfig, progress ProgressFunc) (*domain.RunReport, *domain.ArtifactPaths, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if err := preflight(cfg); err != nil {
		return nil, nil, err
	}

	matcher, err := cfg.Matcher()
	if err != nil {
		return nil, nil, err
	}

	skip := domain.NewSkipSet()
	if cfg.SkipPriorOK {
		skip = s.skipLoader.Load(cfg.LogDir)
	}

	sel, err := s.selector.Select(matcher, skip)
	if err != nil {
		return nil, nil, fmt.Errorf("selecting files under %s: %w", cfg.DataRoot, err)
	}
	s.log.Debugf("selected %d target(s): %d matched, %d skipped via prior OK list",
		len(sel.Targets), sel.Matched, sel.Skipped)

	report := &domain.RunReport{
		RunID:       uuid.NewString(),
		StartedAt:   time.Now(),
		Config:      cfg,
		SkipSetSize: skip.Len(),
		Matched:     sel.Matched,
		Skipped:     sel.Skipped,
	}
	if s.templateInfo != nil {
		if commit, ok := s.templateInfo.CommitHash(cfg.TemplatePath); ok {
			report.TemplateCommit = commit
		}
	}

	pool := NewWorkerPool(s.runner, cfg.Workers)
	report.Outcomes = pool.Run(ctx, sel.Targets, progress)
	report.Sort()

	paths, err := s.sink.Write(report)
	if err != nil {
		return nil, nil, fmt.Errorf("writing run artifacts: %w", err)
	}
	return report, paths, nil
}

// preflight performs the filesystem-level configuration checks. Each cause
// has its own diagnostic and all of them abort before any file I/O on the
// target set.
func preflight(cfg domain.RunConfig) error {
	if err := statFile(cfg.ToolPath); err != nil {
		return fmt.Errorf("tool executable: %w", err)
	}
	if err := statFile(cfg.TemplatePath); err != nil {
		return fmt.Errorf("template file: %w", err)
	}
	info, err := os.Stat(cfg.DataRoot)
	if err != nil {
		return fmt.Errorf("data root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data root is not a directory: %s", cfg.DataRoot)
	}
	return nil
}

func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a file", path)
	}
	return nil
}
