/*
Package dom provides the live document styled components render into.

Status

Early draft—API may change frequently. Please stay patient.

Overview

A Document wraps an HTML parse tree (golang.org/x/net/html). Rendered
component output is attached to its body, and compiled style rules are
committed to a dedicated <style data-styled> element in its head: a
Document is a cssx.Target.

Nodes may be located with CSS selectors (via
https://godoc.org/github.com/andybalholm/cascadia), and the embedded
stylesheets may be read back as CSSOM (see package cssom and its douceur
adapter). Both are mostly useful for verifying what has been committed.

A Document is not safe for concurrent use. Styled components and the
commit of style rules are expected to run on a single loop goroutine
(see package schedule).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'styled.dom'
func tracer() tracing.Trace {
	return tracing.Select("styled.dom")
}
