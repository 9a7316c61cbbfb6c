/*
Package schedule provides a cooperative, single-threaded task loop with a
microtask queue, and a coalescer for deferred side effects.

Execution Model

A Loop owns two queues. Macrotasks are units of work submitted from the
outside (rendering a component, handling an update). Microtasks are deferred
continuations queued while a unit of work runs. After every macrotask the
loop drains the microtask queue completely, including microtasks queued by
other microtasks, before it starts the next macrotask. A microtask therefore
runs strictly after the current synchronous unit of work and strictly before
any other externally submitted work.

Coalescing

A Coalescer wraps a zero-argument operation. Any number of triggers within
one synchronous unit of work result in exactly one run of the operation, on
the next microtask boundary. The pending flag is reset right before the
operation runs, so a trigger issued by the operation itself schedules a new
round.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package schedule

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled.schedule'.
func tracer() tracing.Trace {
	return tracing.Select("styled.schedule")
}
