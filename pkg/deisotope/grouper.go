package deisotope

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/ChrisMcGann/isotoper/pkg/core"
	"github.com/ChrisMcGann/isotoper/pkg/task"
	"github.com/ChrisMcGann/isotoper/pkg/workspace"
)

// GrouperTask runs isotope grouping over one peak list as a unit of work
// for a host scheduler. The status accessors are safe to poll from another
// goroutine while Run executes.
type GrouperTask struct {
	source *core.PeakList
	params Parameters
	ws     workspace.Workspace
	log    *logrus.Logger

	status    atomic.Int32
	processed atomic.Int64
	total     atomic.Int64

	cancelOnce sync.Once
	cancelCh   chan struct{}

	mu      sync.Mutex
	err     error
	created *core.PeakList
}

var _ task.Task = (*GrouperTask)(nil)

// NewGrouperTask creates a task grouping the given peak list with the
// given parameters, publishing results into ws.
func NewGrouperTask(list *core.PeakList, params Parameters, ws workspace.Workspace) (*GrouperTask, error) {
	if list == nil {
		return nil, fmt.Errorf("peak list is required")
	}
	if ws == nil {
		return nil, fmt.Errorf("workspace is required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	t := &GrouperTask{
		source:   list,
		params:   params,
		ws:       ws,
		log:      logrus.StandardLogger(),
		cancelCh: make(chan struct{}),
	}
	t.status.Store(int32(task.StatusWaiting))
	return t, nil
}

// SetLogger replaces the logger used for run lifecycle messages.
// Must be called before Run.
func (t *GrouperTask) SetLogger(log *logrus.Logger) {
	if log != nil {
		t.log = log
	}
}

// Description returns a human-readable description of the work.
func (t *GrouperTask) Description() string {
	return fmt.Sprintf("Isotope grouping on %s", t.source.Name)
}

// Progress returns the fraction of seed peaks processed so far, or 0 when
// the list has no peaks.
func (t *GrouperTask) Progress() float64 {
	total := t.total.Load()
	if total == 0 {
		return 0
	}
	return float64(t.processed.Load()) / float64(total)
}

// Status returns the current lifecycle state.
func (t *GrouperTask) Status() task.Status {
	return task.Status(t.status.Load())
}

// Err returns the terminal error of a run that ended in StatusError.
func (t *GrouperTask) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Cancel signals the task to stop at its next cancellation point (the top
// of the seed loop). A canceled run discards all work and publishes
// nothing; no error is recorded.
func (t *GrouperTask) Cancel() {
	t.cancelOnce.Do(func() {
		close(t.cancelCh)
	})
}

// CreatedObjects returns the peak list created by a successful run.
func (t *GrouperTask) CreatedObjects() []any {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.created == nil {
		return nil
	}
	return []any{t.created}
}

// Run executes the grouping to completion. The run honors both ctx and the
// host's Cancel signal; a canceled run ends in StatusCanceled and returns
// nil, any other failure ends in StatusError and returns the error.
func (t *GrouperTask) Run(ctx context.Context) error {
	t.status.Store(int32(task.StatusProcessing))
	t.log.WithFields(logrus.Fields{
		"peaklist": t.source.Name,
		"rows":     t.source.NumRows(),
	}).Info("running isotope grouper")

	grouped, err := t.group(ctx)
	if err == nil {
		err = t.publish(grouped)
	}

	switch {
	case errors.Is(err, context.Canceled):
		t.status.Store(int32(task.StatusCanceled))
		t.log.WithField("peaklist", t.source.Name).Info("isotope grouper canceled")
		return nil
	case err != nil:
		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
		t.status.Store(int32(task.StatusError))
		t.log.WithField("peaklist", t.source.Name).WithError(err).Error("isotope grouper failed")
		return err
	}

	t.mu.Lock()
	t.created = grouped
	t.mu.Unlock()
	t.status.Store(int32(task.StatusFinished))
	t.log.WithFields(logrus.Fields{
		"peaklist": grouped.Name,
		"rows":     grouped.NumRows(),
	}).Info("finished isotope grouper")
	return nil
}

// group runs the grouping algorithm and builds the output list. It returns
// context.Canceled when interrupted at a cancellation point.
func (t *GrouperTask) group(ctx context.Context) (*core.PeakList, error) {
	if err := t.source.Validate(); err != nil {
		return nil, fmt.Errorf("invalid peak list %q: %w", t.source.Name, err)
	}

	// The grouping reads the first of the source list's data files.
	src := t.source.Sources()[0]
	peaks := t.source.Peaks(src)

	grouped := core.NewPeakList(t.source.Name+" "+t.params.Suffix, t.source.Sources()...)
	pool := newPool(peaks)
	t.total.Store(int64(pool.len()))

	for i := 0; i < pool.len(); i++ {
		select {
		case <-ctx.Done():
			return nil, context.Canceled
		case <-t.cancelCh:
			return nil, context.Canceled
		default:
		}

		// Peaks already assigned to a group still count toward progress.
		if pool.isConsumed(i) {
			t.processed.Add(1)
			continue
		}

		seed := pool.peak(i)

		// Find the charge state explaining the most peaks around the seed.
		// On a score tie the smaller charge wins.
		bestCharge := 0
		bestScore := -1
		var bestFit []int
		for charge := 1; charge <= t.params.MaximumCharge; charge++ {
			fitted := fitPattern(pool, i, charge, t.params)
			score := len(fitted)
			if score > bestScore || (score == bestScore && charge < bestCharge) {
				bestScore = score
				bestCharge = charge
				bestFit = fitted
			}
		}

		oldRow := t.source.RowForPeak(seed.ID)
		if oldRow == nil {
			return nil, fmt.Errorf("peak %d has no originating row in %q", seed.ID, t.source.Name)
		}

		// A lone seed passes through unchanged and stays available for
		// later groups; only multi-peak groups consume anything.
		if len(bestFit) == 1 {
			grouped.AddRow(oldRow)
			t.processed.Add(1)
			continue
		}

		points := make([]core.DataPoint, len(bestFit))
		for j, idx := range bestFit {
			p := pool.peak(idx)
			points[j] = core.DataPoint{MZ: p.MZ, Intensity: p.Height}
		}
		pattern := &core.IsotopePattern{
			Points:      points,
			Status:      core.PatternDetected,
			Description: seed.Name(),
		}

		newPeak := core.WithPattern(seed, pattern, bestCharge)

		// Keep the old row ID and properties.
		newRow := core.NewRow(oldRow.ID)
		core.CopyRowProperties(oldRow, newRow)
		newRow.SetPeak(src, newPeak)
		grouped.AddRow(newRow)

		for _, idx := range bestFit {
			pool.consume(idx)
		}

		t.processed.Add(1)
	}

	return grouped, nil
}

// publish registers the grouped list with the workspace, carries the
// source list's provenance forward, records this operation, and removes
// the source list when AutoRemove is set.
func (t *GrouperTask) publish(grouped *core.PeakList) error {
	if err := t.ws.Register(grouped); err != nil {
		return fmt.Errorf("failed to register %q: %w", grouped.Name, err)
	}

	for _, m := range t.source.AppliedMethods() {
		grouped.AddAppliedMethod(m)
	}
	grouped.AddAppliedMethod(core.AppliedMethod{
		Description: "Isotopic peaks grouper",
		Parameters:  t.params.String(),
	})

	if t.params.AutoRemove {
		if err := t.ws.Remove(t.source); err != nil {
			return fmt.Errorf("failed to remove %q: %w", t.source.Name, err)
		}
	}
	return nil
}
