package cssom

import "github.com/npillmayer/styled/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// RulesForClass returns the rules of a set of stylesheets whose selector
// is exactly the class selector for class, i.e. ".<class>".
// Rules nested in at-rules are not considered.
func RulesForClass(class string, sheets ...StyleSheet) []Rule {
	sel := "." + class
	var rules []Rule
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		for _, r := range sheet.Rules() {
			if r.Selector() == sel {
				rules = append(rules, r)
			}
		}
	}
	return rules
}

// ValueForClass looks up the value of property key for a class, taking the
// last matching declaration (later rules win).
func ValueForClass(class, key string, sheets ...StyleSheet) (style.Property, bool) {
	value, found := style.NullStyle, false
	for _, r := range RulesForClass(class, sheets...) {
		for _, p := range r.Properties() {
			if p == key {
				value, found = r.Value(key), true
			}
		}
	}
	return value, found
}
