package tableau

import (
	"context"
	"runtime"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// buildModels constructs one countermodel per open branch, in parallel.
// This is the one place this package spawns goroutines: it runs strictly
// after the single-threaded search loop in Build has already decided
// every branch's fate, and each goroutine only reads its own branch's
// node list (Branch is never mutated again once closed/finished), so the
// scheduling invariant that proof search itself stays single-threaded is
// untouched.
func (t *Tableau) buildModels(ctx context.Context) error {
	start := time.Now()
	defer func() { t.timers["models"] = time.Since(start) }()

	if t.logic.NewModel == nil {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	results := make([]Model, len(t.openBranches))
	var mu sync.Mutex
	var buildErr error

	for i, b := range t.openBranches {
		i, b := i, b
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			m := t.logic.NewModel()
			if err := m.ReadBranch(b); err != nil {
				mu.Lock()
				buildErr = multierr.Append(buildErr, err)
				mu.Unlock()
				return nil // keep building the other branches' models
			}
			results[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err // only a context cancellation reaches here
	}

	for i, b := range t.openBranches {
		if results[i] != nil {
			t.models[b.ID()] = results[i]
		}
	}
	if buildErr != nil {
		t.logger.Error("some branch models failed to build", zap.Error(buildErr))
	}
	return buildErr
}
