package cssx

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// ErrMalformedStyle is returned for styles which cannot be turned into CSS.
var ErrMalformedStyle = errors.New("cssx: malformed style")

// Style is a CSS object. Keys are property names, either in CSS notation
// ("background-color") or in camel case ("backgroundColor"). Keys containing
// '&' denote nested selectors, where '&' stands for the enclosing selector.
// Keys starting with '@' denote at-rules wrapping a nested block; supported
// are @media, @supports and @document.
//
// Supported values are strings, integers and floats (rendered with unit "px",
// except for unitless properties), dimen.DU (rendered in "pt"), Dimen,
// slices of these (one declaration per entry, for fallbacks) and
// fmt.Stringers. A value of nil, false or a zero Dimen drops the property.
//
// A nil Style means "no styles".
type Style map[string]any

// Merge merges styles from left to right into a new Style. Values of later
// styles override values of earlier ones, except that nested blocks
// present in both are merged recursively. Property keys are converted to
// CSS notation (see PropertyName), so "backgroundColor" and
// "background-color" name the same property. Nil styles are skipped.
// The arguments are not modified.
func Merge(styles ...Style) Style {
	merged := Style{}
	for _, s := range styles {
		mergeInto(merged, s)
	}
	return merged
}

func mergeInto(dst, src Style) {
	for k, v := range src {
		if !isNestedKey(k) {
			k = PropertyName(k)
		}
		if nested, ok := asStyle(v); ok {
			if existing, ok := asStyle(dst[k]); ok {
				m := Style{}
				mergeInto(m, existing)
				mergeInto(m, nested)
				dst[k] = m
				continue
			}
			m := Style{}
			mergeInto(m, nested)
			dst[k] = m
			continue
		}
		dst[k] = v
	}
}

func asStyle(v any) (Style, bool) {
	switch s := v.(type) {
	case Style:
		return s, true
	case map[string]any:
		return Style(s), true
	}
	return nil, false
}

func isNestedKey(key string) bool {
	return strings.HasPrefix(key, "@") || strings.Contains(key, "&")
}

// sortedKeys returns the keys of a style in a deterministic order.
func sortedKeys(s Style) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PropertyName converts a property key to CSS notation:
//
//     backgroundColor  => background-color
//     WebkitTransition => -webkit-transition
//     msFlex           => -ms-flex
//     --main-color     => --main-color
//
func PropertyName(key string) string {
	if strings.HasPrefix(key, "--") || strings.ToLower(key) == key {
		return key
	}
	var b strings.Builder
	if strings.HasPrefix(key, "ms") && len(key) > 2 && isUpper(key[2]) {
		b.WriteByte('-') // vendor prefix ms is written lower case
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if isUpper(c) {
			b.WriteByte('-')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

var unitless = map[string]bool{
	"animation-iteration-count": true,
	"column-count":              true,
	"fill-opacity":              true,
	"flex":                      true,
	"flex-grow":                 true,
	"flex-shrink":               true,
	"font-weight":               true,
	"grid-column":               true,
	"grid-row":                  true,
	"line-height":               true,
	"opacity":                   true,
	"order":                     true,
	"orphans":                   true,
	"stroke-opacity":            true,
	"stroke-width":              true,
	"tab-size":                  true,
	"widows":                    true,
	"z-index":                   true,
	"zoom":                      true,
}

// IsUnitless is true for properties which take plain numbers, like z-index.
func IsUnitless(property string) bool {
	return unitless[property] || strings.HasPrefix(property, "--")
}

// propertyValues formats a style value for a property. It returns no values
// for dropped properties (nil, false).
func propertyValues(property string, v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case bool:
		if !val {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: property %q has value true", ErrMalformedStyle, property)
	case string:
		return []string{val}, nil
	case Dimen:
		if val.IsNone() {
			return nil, nil
		}
		return []string{val.String()}, nil
	case dimen.DU:
		return []string{formatFloat(float64(val)/float64(dimen.PT)) + "pt"}, nil
	case int:
		return []string{number(property, strconv.FormatInt(int64(val), 10), val == 0)}, nil
	case int32:
		return []string{number(property, strconv.FormatInt(int64(val), 10), val == 0)}, nil
	case int64:
		return []string{number(property, strconv.FormatInt(val, 10), val == 0)}, nil
	case uint:
		return []string{number(property, strconv.FormatUint(uint64(val), 10), val == 0)}, nil
	case float32:
		return []string{number(property, formatFloat(float64(val)), val == 0)}, nil
	case float64:
		return []string{number(property, formatFloat(val), val == 0)}, nil
	case []string:
		return append([]string(nil), val...), nil
	case []any:
		var values []string
		for i, x := range val {
			if _, nested := asStyle(x); nested {
				return nil, fmt.Errorf("%w: property %q[%d] is a nested style", ErrMalformedStyle, property, i)
			}
			vv, err := propertyValues(property, x)
			if err != nil {
				return nil, err
			}
			values = append(values, vv...)
		}
		return values, nil
	case Style, map[string]any:
		return nil, fmt.Errorf("%w: nested style under property %q (selectors need '&', at-rules '@')",
			ErrMalformedStyle, property)
	case fmt.Stringer:
		return []string{val.String()}, nil
	}
	return nil, fmt.Errorf("%w: property %q has unsupported value type %T", ErrMalformedStyle, property, v)
}

func number(property, n string, zero bool) string {
	if zero || IsUnitless(property) {
		return n
	}
	return n + "px"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
