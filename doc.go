/*
Package styled binds CSS objects to HTML components.

Overview

Given an intrinsic element kind and one or more style specs, New returns a
component type whose instances compute a CSS class name from their styled
properties, render the element with that class, and make sure the rule for
the class is committed to the live document before any further work runs.

    var Button = styled.MustNew(engine, "button",
        styled.Static[Variant](cssx.Style{"padding": 8}),
        func(v Variant) cssx.Style {
            if v.Primary {
                return cssx.Style{"backgroundColor": "blue"}
            }
            return cssx.Style{"backgroundColor": "grey"}
        },
    )

    root, err := Button.Mount(doc.Body(), styled.Props[Variant]{
        Styled:    Variant{Primary: true},
        ClassName: "wide",
        Children:  []*html.Node{component.Text("OK")},
    })

Style Resolution

Specs are applied in order: each is called with the styled properties, nil
results are dropped, and the remaining styles are compiled into one class
name by a shared cssx.Sheet (later styles win on conflicts). Every
resolution, successful or not, requests a flush of the sheet. Flush
requests are coalesced: however many resolutions run within one task of
the engine's scheduler, the sheet is committed exactly once, on the next
microtask boundary.

Resolution results are memoized per component type, keyed by the JSON
serialization of the styled properties. The cache is never evicted; a
one-time diagnostic is traced when it grows large. Styled properties must
not be cyclic: the serialization error is returned to the caller. Struct
types with unexported fields would lose those fields in the key; New
rejects them (see memo.CheckJSONKey).

Components

Component types are pure: re-rendering is skipped for shallowly equal
properties. The class name, however, is recomputed on every update
notification (usually a cache hit).

Properties Styled, ClassName, InnerRef and Children are consumed by the
component; attributes in Attrs are forwarded to the element, except for
reserved names. A caller-supplied class is placed in front of the computed
class.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled'.
func tracer() tracing.Trace {
	return tracing.Select("styled")
}
