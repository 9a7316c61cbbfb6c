/*
Package cssx compiles CSS objects into class names.

Overview

A Style is a CSS object: a map from property names to values, optionally
containing nested blocks for pseudo-classes, descendant selectors and
at-rules:

    cssx.Style{
        "backgroundColor": "blue",
        "padding":         8,              // => 8px
        "&:hover":         cssx.Style{"color": "white"},
        "@media (max-width: 600px)": cssx.Style{
            "padding": 4,
        },
    }

Compiling one or more styles merges them in order (later values override
earlier ones, nested blocks are merged recursively), turns the result into
CSS rules and derives a class name from a hash of the rule text. Identical
styles always yield identical class names, and each class is registered
only once.

Registered rules are pending until Commit hands them to a Target, typically
a live document (see package dom). Commit is cheap to call when nothing is
pending.

Rules are represented as douceur rules (github.com/aymerick/douceur/css),
which takes care of printing CSS text.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled.cssx'.
func tracer() tracing.Trace {
	return tracing.Select("styled.cssx")
}
