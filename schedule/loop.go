package schedule

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned when work is submitted to a closed loop.
var ErrClosed = errors.New("schedule: loop is closed")

// ErrBusy is returned if a loop is asked to run while it is already running.
var ErrBusy = errors.New("schedule: loop is already running")

// Scheduler is the minimal interface a Coalescer needs: a way to defer a
// function until the current unit of work has completed.
type Scheduler interface {
	QueueMicrotask(func())
}

// SchedulerFunc adapts a plain function to interface Scheduler.
type SchedulerFunc func(func())

// QueueMicrotask calls f(fn).
func (f SchedulerFunc) QueueMicrotask(fn func()) {
	f(fn)
}

// Loop is a cooperative task loop. All tasks run on the goroutine which drives
// the loop, either by calling Run or by calling RunPending.
//
// Submit and QueueMicrotask are safe to call from any goroutine.
type Loop struct {
	mx      sync.Mutex
	tasks   []func() // macrotasks, FIFO
	micro   []func() // microtasks, FIFO
	closed  bool
	wake    chan struct{}
	running int32
}

var _ Scheduler = (*Loop)(nil)

// New creates an empty loop.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Submit enqueues a macrotask.
func (l *Loop) Submit(task func()) error {
	if task == nil {
		return nil
	}
	l.mx.Lock()
	if l.closed {
		l.mx.Unlock()
		return ErrClosed
	}
	l.tasks = append(l.tasks, task)
	l.mx.Unlock()
	l.signal()
	return nil
}

// QueueMicrotask enqueues fn to run after the current macrotask (or, outside
// of any macrotask, before the next one). Microtasks are accepted even after
// Close, to let pending continuations complete.
func (l *Loop) QueueMicrotask(fn func()) {
	if fn == nil {
		return
	}
	l.mx.Lock()
	l.micro = append(l.micro, fn)
	l.mx.Unlock()
	l.signal()
}

// Close stops accepting macrotasks. Run returns as soon as all queued work is
// done.
func (l *Loop) Close() {
	l.mx.Lock()
	l.closed = true
	l.mx.Unlock()
	l.signal()
}

// RunPending synchronously processes queued work until both queues are empty:
// first all pending microtasks, then each macrotask followed by a complete
// microtask drain. It returns the number of macrotasks run.
//
// A call from inside a running task returns 0 immediately.
func (l *Loop) RunPending() int {
	if !atomic.CompareAndSwapInt32(&l.running, 0, 1) {
		return 0
	}
	defer atomic.StoreInt32(&l.running, 0)
	return l.runPending()
}

// Run processes work as it arrives, until ctx is done or the loop has been
// closed and all queued work is done.
func (l *Loop) Run(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&l.running, 0, 1) {
		return ErrBusy
	}
	defer atomic.StoreInt32(&l.running, 0)
	tracer().Debugf("schedule: loop started")
	for {
		l.runPending()
		if l.isDone() {
			tracer().Debugf("schedule: loop closed")
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *Loop) runPending() int {
	n := 0
	l.drainMicrotasks()
	for {
		task, ok := l.nextTask()
		if !ok {
			return n
		}
		l.run(task)
		n++
		l.drainMicrotasks()
	}
}

func (l *Loop) drainMicrotasks() {
	for {
		l.mx.Lock()
		if len(l.micro) == 0 {
			l.mx.Unlock()
			return
		}
		fn := l.micro[0]
		l.micro[0] = nil
		l.micro = l.micro[1:]
		l.mx.Unlock()
		l.run(fn)
	}
}

func (l *Loop) nextTask() (func(), bool) {
	l.mx.Lock()
	defer l.mx.Unlock()
	if len(l.tasks) == 0 {
		return nil, false
	}
	task := l.tasks[0]
	l.tasks[0] = nil
	l.tasks = l.tasks[1:]
	return task, true
}

func (l *Loop) isDone() bool {
	l.mx.Lock()
	defer l.mx.Unlock()
	return l.closed && len(l.tasks) == 0 && len(l.micro) == 0
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default: // a wake-up is already pending
	}
}

// run executes a single task. A panicking task does not take the loop down.
func (l *Loop) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("schedule: recovered from panic in task: %v", r)
		}
	}()
	fn()
}
