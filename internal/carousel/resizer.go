package carousel

import "time"

// Resizer debounces container width changes. Only the last width of a burst
// is applied; callbacks of superseded resizes are ignored.
type Resizer struct {
	sched    Scheduler
	debounce time.Duration
	apply    func(width int)

	pending Timer
	gen     uint64
}

// NewResizer returns a resizer calling apply once a burst of resizes has
// been quiet for debounce.
func NewResizer(sched Scheduler, debounce time.Duration, apply func(width int)) *Resizer {
	return &Resizer{sched: sched, debounce: debounce, apply: apply}
}

// Resize schedules width to be applied.
func (r *Resizer) Resize(width int) {
	r.Cancel()
	gen := r.gen
	r.pending = r.sched.AfterFunc(r.debounce, func() {
		if gen != r.gen {
			return
		}
		r.pending = nil
		r.apply(width)
	})
}

// Pending reports whether a resize is waiting to be applied.
func (r *Resizer) Pending() bool { return r.pending != nil }

// Cancel drops the pending resize, if any.
func (r *Resizer) Cancel() {
	r.gen++
	if r.pending != nil {
		r.pending.Stop()
		r.pending = nil
	}
}
