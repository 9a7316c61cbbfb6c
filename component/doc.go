/*
Package component is a small component model for rendering HTML node trees.

Overview

A component type is defined once, from a constructor. Mounting a type
creates an instance from an initial properties value and attaches its
rendered output to a parent node. Each later update notifies the instance
of new properties, then re-renders it and swaps the output in place.

Types defined as pure skip the re-render (but not the notification) if the
new properties are shallowly equal to the previous ones, see ShallowEqual.

Components render to intrinsic elements only. The set of intrinsic element
kinds is fixed (see Lookup); creating an element of an unknown kind fails.

Render output is a *html.Node from golang.org/x/net/html, so output can be
attached to a dom.Document and rendered as HTML.

Components are not safe for concurrent use. Mount, update and render are
meant to run on one goroutine, usually as tasks of a schedule.Loop.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package component

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled.component'.
func tracer() tracing.Trace {
	return tracing.Select("styled.component")
}
