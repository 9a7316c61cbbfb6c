package styled

import (
	"github.com/npillmayer/styled/cssx"
)

// Spec derives a style from styled properties of type P. A nil Spec, as
// well as a nil result, means "no styles".
type Spec[P any] func(P) cssx.Style

// Static lifts a literal style into a Spec.
func Static[P any](s cssx.Style) Spec[P] {
	return func(P) cssx.Style {
		return s
	}
}

// resolve applies specs to props, in order, and compiles the non-nil
// results into a class name. A flush is requested in any case, even if a
// spec panics or compilation fails.
func resolve[P any](e *Engine, specs []Spec[P], props P) (string, error) {
	defer e.flush.Trigger()
	styles := make([]cssx.Style, 0, len(specs))
	for _, spec := range specs {
		if spec == nil {
			continue
		}
		if s := spec(props); s != nil {
			styles = append(styles, s)
		}
	}
	return e.sheet.Compile(styles...)
}
