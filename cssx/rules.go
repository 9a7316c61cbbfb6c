package cssx

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
)

// placeholder stands for the class selector while a class name is not yet known.
const placeholder = "&"

// buildRules converts a merged style into CSS rules for selector sel.
// The rule for sel itself comes first, followed by rules for nested blocks
// in key order. Rules without declarations are omitted.
func buildRules(sel string, s Style) ([]*css.Rule, error) {
	base := qualifiedRule(sel)
	var nested []*css.Rule
	for _, key := range sortedKeys(s) {
		value := s[key]
		if isNestedKey(key) {
			block, ok := asStyle(value)
			if !ok {
				if value == nil || value == false {
					continue
				}
				return nil, fmt.Errorf("%w: block %q must be a style, is %T", ErrMalformedStyle, key, value)
			}
			rules, err := nestedRules(sel, key, block)
			if err != nil {
				return nil, err
			}
			nested = append(nested, rules...)
			continue
		}
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: empty property name", ErrMalformedStyle)
		}
		property := PropertyName(key)
		values, err := propertyValues(property, value)
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			base.Declarations = append(base.Declarations, declaration(property, v))
		}
	}
	var rules []*css.Rule
	if len(base.Declarations) > 0 {
		rules = append(rules, base)
	}
	return append(rules, nested...), nil
}

// conditionalAtRules are the at-rules which may wrap rules of a class.
// douceur prints nested rules for these, and their blocks hold ordinary
// selector rules.
var conditionalAtRules = map[string]bool{
	"@media":    true,
	"@supports": true,
	"@document": true,
}

func nestedRules(sel, key string, block Style) ([]*css.Rule, error) {
	if strings.HasPrefix(key, "@") {
		name, prelude := splitAtRule(key)
		name = strings.ToLower(name)
		if !conditionalAtRules[name] {
			return nil, fmt.Errorf("%w: unsupported at-rule %q", ErrMalformedStyle, name)
		}
		inner, err := buildRules(sel, block)
		if err != nil {
			return nil, err
		}
		if len(inner) == 0 {
			return nil, nil
		}
		at := css.NewRule(css.AtRule)
		at.Name = name
		at.Prelude = prelude
		at.Rules = inner
		return []*css.Rule{at}, nil
	}
	return buildRules(nestSelector(sel, key), block)
}

// splitAtRule splits "@media (max-width: 600px)" into name and prelude.
func splitAtRule(key string) (string, string) {
	key = strings.TrimSpace(key)
	if i := strings.IndexAny(key, " \t"); i > 0 {
		return key[:i], strings.TrimSpace(key[i:])
	}
	return key, ""
}

// nestSelector substitutes every '&' in key with the parent selector. Both
// may be selector lists; the result is their cross product.
func nestSelector(parent, key string) string {
	parents := splitList(parent)
	var out []string
	for _, part := range splitList(key) {
		for _, p := range parents {
			out = append(out, strings.ReplaceAll(part, "&", p))
		}
	}
	return strings.Join(out, ", ")
}

func splitList(sel string) []string {
	parts := strings.Split(sel, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func qualifiedRule(sel string) *css.Rule {
	r := css.NewRule(css.QualifiedRule)
	r.Prelude = sel
	r.Selectors = splitList(sel)
	return r
}

func declaration(property, value string) *css.Declaration {
	d := css.NewDeclaration()
	d.Property = property
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "!important") {
		d.Important = true
		value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
	}
	d.Value = value
	return d
}

// rulesText is the canonical text of a list of rules, used for hashing.
func rulesText(rules []*css.Rule) string {
	var b strings.Builder
	for _, r := range rules {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// hashName derives a class name from the text of placeholder rules.
func hashName(prefix, text string) string {
	h := fnv.New64a()
	h.Write([]byte(text))
	return prefix + "-" + strconv.FormatUint(h.Sum64(), 36)
}

// bindSelector replaces the placeholder in all selectors with the class
// selector.
func bindSelector(rules []*css.Rule, class string) {
	sel := "." + class
	for _, r := range rules {
		if r.Kind == css.QualifiedRule {
			r.Prelude = strings.ReplaceAll(r.Prelude, placeholder, sel)
			for i := range r.Selectors {
				r.Selectors[i] = strings.ReplaceAll(r.Selectors[i], placeholder, sel)
			}
		}
		bindSelector(r.Rules, class)
	}
}
