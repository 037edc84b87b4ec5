package upgrade

import (
	"context"
)

// Run is a celestial challenge mode backed by a boolean in player progress.
type Run struct {
	name    string
	flag    *bool
	onStart func(ctx context.Context)
	onStop  func(ctx context.Context)
}

// RunOption configures a Run.
type RunOption func(*Run)

// OnStart registers the side effect of entering the run.
func OnStart(hook func(ctx context.Context)) RunOption {
	return func(r *Run) { r.onStart = hook }
}

// OnStop registers the side effect of leaving the run.
func OnStop(hook func(ctx context.Context)) RunOption {
	return func(r *Run) { r.onStop = hook }
}

// NewRun binds a run to its flag.
func NewRun(name string, flag *bool, opts ...RunOption) *Run {
	if flag == nil {
		panic("run " + name + ": nil flag")
	}
	r := &Run{name: name, flag: flag}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the run name.
func (r *Run) Name() string { return r.name }

// IsRunning reports the flag.
func (r *Run) IsRunning() bool { return *r.flag }

// Start sets the flag and fires the start hook. It reports whether the flag changed.
func (r *Run) Start(ctx context.Context) bool {
	if *r.flag {
		return false
	}
	*r.flag = true
	runHook(ctx, r.name, "start", r.onStart)
	return true
}

// Stop clears the flag and fires the stop hook. It reports whether the flag changed.
func (r *Run) Stop(ctx context.Context) bool {
	if !*r.flag {
		return false
	}
	*r.flag = false
	runHook(ctx, r.name, "stop", r.onStop)
	return true
}

// Runs tracks every run so entering one can leave the others.
// Like the rest of the engine it holds no lock; the owning session serializes access.
type Runs struct {
	runs []*Run
}

// Register adds r to the set.
func (rs *Runs) Register(r *Run) {
	rs.runs = append(rs.runs, r)
}

// ClearAll stops every registered run except keep, which may be nil.
// Stop hooks may call back into rs.
func (rs *Runs) ClearAll(ctx context.Context, keep *Run) {
	for _, r := range rs.runs {
		if r != keep {
			r.Stop(ctx)
		}
	}
}

// Active returns the running run, if any.
func (rs *Runs) Active() *Run {
	for _, r := range rs.runs {
		if r.IsRunning() {
			return r
		}
	}
	return nil
}
