/*
Package memo implements an unbounded memoizer for single-argument functions.

Overview

A memoized function maps a serialized form of its input to a previously
computed result. Inputs with equal serializations share one result, and the
wrapped function is invoked at most once per serialized key.

Entries are never evicted. Callers are expected to create memoizers at
package level for a small, stable universe of inputs (e.g., the handful of
style variants of a component). To surface misuse (like feeding ever-changing
values as keys), a one-time diagnostic is emitted when the number of cached
entries first reaches a high-water mark.

The default key serializer is JSON (encoding/json), which sorts map keys and
handles arbitrarily nested data. It does not handle cyclic structures: the
encoder reports an error for those, which is returned to the caller wrapped
(errors.As finds the *json.UnsupportedValueError).

The JSON encoder skips unexported struct fields. Keys of a type like

    struct{ primary bool }

would all serialize to "{}" and share a single cache entry. JSONKey therefore
rejects struct types with unexported fields with ErrHiddenField, unless they
implement json.Marshaler or encoding.TextMarshaler. CheckJSONKey performs the
same check on a type up front.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package memo

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled.memo'.
func tracer() tracing.Trace {
	return tracing.Select("styled.memo")
}
