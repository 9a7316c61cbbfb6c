package styled

import (
	"github.com/npillmayer/styled/cssx"
	"github.com/npillmayer/styled/dom"
	"github.com/npillmayer/styled/memo"
	"github.com/npillmayer/styled/schedule"
)

// Engine ties a rule registry to a scheduler. It compiles styles and commits
// the resulting rules in coalesced flushes.
//
// Usually there is one engine per document, shared by all styled component
// types.
type Engine struct {
	sheet          *cssx.Sheet
	flush          *schedule.Coalescer
	highWater      int
	onCacheWarning func(kind string, size int)
}

// Option configures an engine.
type Option func(*Engine)

// WithHighWater sets the size at which the class name cache of a component
// type traces a growth diagnostic. 0 disables the diagnostic.
func WithHighWater(n int) Option {
	return func(e *Engine) {
		e.highWater = n
	}
}

// WithCacheWarning installs a hook which is called in addition to tracing
// the growth diagnostic, with the element kind of the component type.
func WithCacheWarning(hook func(kind string, size int)) Option {
	return func(e *Engine) {
		e.onCacheWarning = hook
	}
}

// NewEngine creates an engine compiling into sheet. Commits of the sheet are
// deferred with sched.
func NewEngine(sheet *cssx.Sheet, sched schedule.Scheduler, opts ...Option) *Engine {
	e := &Engine{
		sheet:     sheet,
		highWater: memo.DefaultHighWater,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.flush = schedule.Coalesce(sched, e.commit)
	return e
}

// ForDocument creates an engine with a fresh sheet committing to doc, with
// flushes scheduled on loop.
func ForDocument(doc *dom.Document, loop *schedule.Loop, opts ...Option) *Engine {
	return NewEngine(cssx.NewSheet(cssx.WithTarget(doc)), loop, opts...)
}

func (e *Engine) commit() {
	tracer().Debugf("styled: flushing %d pending rule(s)", e.sheet.Pending())
	e.sheet.Commit()
}

// Style compiles styles into a class name and requests a flush, even if
// compilation fails. Nil styles are ignored.
func (e *Engine) Style(styles ...cssx.Style) (string, error) {
	defer e.flush.Trigger()
	return e.sheet.Compile(styles...)
}

// Flush requests a coalesced commit of all pending rules.
func (e *Engine) Flush() {
	e.flush.Trigger()
}

// FlushPending is true while a flush is scheduled but has not yet run.
func (e *Engine) FlushPending() bool {
	return e.flush.Pending()
}

// Flushes returns the number of flushes run so far.
func (e *Engine) Flushes() uint64 {
	return e.flush.Runs()
}

// Sheet returns the engine's rule registry.
func (e *Engine) Sheet() *cssx.Sheet {
	return e.sheet
}
