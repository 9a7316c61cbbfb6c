package schedule

import "sync/atomic"

// Coalescer collapses any number of triggers within one unit of work into a
// single deferred run of an operation.
//
// At most one run is scheduled-but-not-executed at any time. The operation
// must capture the cumulative effect of all triggers issued before it ran,
// as triggers carry no arguments.
type Coalescer struct {
	sched   Scheduler
	op      func()
	pending int32
	runs    uint64
}

// Coalesce wraps op, deferring it with s.
func Coalesce(s Scheduler, op func()) *Coalescer {
	if s == nil || op == nil {
		panic("schedule: coalescer needs a scheduler and an operation")
	}
	return &Coalescer{sched: s, op: op}
}

// Trigger requests a run of the operation. If a run is already pending,
// Trigger does nothing.
func (c *Coalescer) Trigger() {
	if !atomic.CompareAndSwapInt32(&c.pending, 0, 1) {
		return
	}
	c.sched.QueueMicrotask(c.fire)
}

func (c *Coalescer) fire() {
	atomic.StoreInt32(&c.pending, 0) // reset first: triggers from op start a new round
	atomic.AddUint64(&c.runs, 1)
	c.op()
}

// Pending reports whether a run has been scheduled but not yet executed.
func (c *Coalescer) Pending() bool {
	return atomic.LoadInt32(&c.pending) == 1
}

// Runs returns the number of times the operation has been started.
func (c *Coalescer) Runs() uint64 {
	return atomic.LoadUint64(&c.runs)
}
