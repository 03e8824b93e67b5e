package application_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplcheck/tplcheck/internal/application"
	"github.com/tplcheck/tplcheck/internal/domain"
)

// stubRunner classifies by filename convention: *.bad fails, *.sus is
// suspect, everything else is OK. Deterministic across worker counts.
type stubRunner struct {
	delay time.Duration
}

func (s *stubRunner) Run(_ context.Context, t domain.Target) domain.Outcome {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	out := domain.Outcome{Path: t.Path, Verdict: domain.VerdictOK, Message: "processed successfully"}
	switch {
	case hasSuffix(t.Path, ".bad"):
		out.Verdict = domain.VerdictFailed
		out.Message = "exit code 1, inspect output"
	case hasSuffix(t.Path, ".sus"):
		out.Verdict = domain.VerdictSuspect
		out.Message = "failure keywords found"
	}
	return out
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

func makeTargets(n int) []domain.Target {
	targets := make([]domain.Target, 0, n)
	for i := 0; i < n; i++ {
		ext := "ok"
		switch i % 5 {
		case 1:
			ext = "bad"
		case 3:
			ext = "sus"
		}
		targets = append(targets, domain.Target{Path: fmt.Sprintf("/data/file_%03d.%s", i, ext)})
	}
	return targets
}

func TestWorkerPool_OneOutcomePerTarget(t *testing.T) {
	targets := makeTargets(50)
	pool := application.NewWorkerPool(&stubRunner{}, 8)

	outcomes := pool.Run(context.Background(), targets, nil)
	require.Len(t, outcomes, len(targets))

	seen := make(map[string]int)
	for _, o := range outcomes {
		seen[o.Path]++
	}
	for _, tgt := range targets {
		assert.Equal(t, 1, seen[tgt.Path], "target %s must appear exactly once", tgt.Path)
	}
}

func TestWorkerPool_SerialAndParallelAgree(t *testing.T) {
	targets := makeTargets(40)

	serial := application.NewWorkerPool(&stubRunner{}, 1).Run(context.Background(), targets, nil)
	parallel := application.NewWorkerPool(&stubRunner{delay: time.Millisecond}, 8).Run(context.Background(), targets, nil)

	byPath := func(o []domain.Outcome) {
		sort.Slice(o, func(i, j int) bool { return o[i].Path < o[j].Path })
	}
	byPath(serial)
	byPath(parallel)
	assert.Equal(t, serial, parallel)
}

func TestWorkerPool_ProgressCountsEveryCompletion(t *testing.T) {
	targets := makeTargets(20)
	pool := application.NewWorkerPool(&stubRunner{}, 4)

	var calls []int
	pool.Run(context.Background(), targets, func(done, total int, _ domain.Outcome) {
		assert.Equal(t, len(targets), total)
		calls = append(calls, done)
	})

	require.Len(t, calls, len(targets))
	for i, done := range calls {
		assert.Equal(t, i+1, done, "done counter must be monotonic")
	}
}

func TestWorkerPool_EmptyTargetSet(t *testing.T) {
	pool := application.NewWorkerPool(&stubRunner{}, 4)
	outcomes := pool.Run(context.Background(), nil, func(int, int, domain.Outcome) {
		t.Fatal("progress must not fire for an empty set")
	})
	assert.Empty(t, outcomes)
}

func TestWorkerPool_MoreWorkersThanTargets(t *testing.T) {
	targets := makeTargets(3)
	pool := application.NewWorkerPool(&stubRunner{}, 64)
	outcomes := pool.Run(context.Background(), targets, nil)
	assert.Len(t, outcomes, 3)
}
