package domain

import "context"

// ToolRunner executes the external parsing tool against one target and
// classifies the invocation. Implementations must be safe for concurrent
// use: each call owns its own subprocess and buffers.
type ToolRunner interface {
	Run(ctx context.Context, target Target) Outcome
}

// TargetSelector discovers candidate files beneath the data root, filters
// them by filename pattern, and subtracts the skip set.
type TargetSelector interface {
	Select(matcher *FilenameMatcher, skip SkipSet) (*Selection, error)
}

// SkipSetLoader loads the most recent prior-OK list from the log directory.
// Load failures are soft: implementations return an empty set and warn.
type SkipSetLoader interface {
	Load(logDir string) SkipSet
}

// ReportSink persists the run artifacts (structured report + flat lists).
type ReportSink interface {
	Write(report *RunReport) (*ArtifactPaths, error)
}

// TemplateInfo reports provenance for the template file. The second return
// is false when the template does not live inside a git work tree.
type TemplateInfo interface {
	CommitHash(templatePath string) (string, bool)
}
