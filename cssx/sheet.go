package cssx

import (
	"fmt"
	"sync"

	"github.com/aymerick/douceur/css"
)

// Target receives committed rules. The live document implements it.
type Target interface {
	InsertRules(rules []*css.Rule) error
}

// Sheet is a rule registry. It compiles styles to class names, registers the
// rules for each class once, and keeps them pending until they are committed
// to a target.
//
// A Sheet is meant to be shared by all styled components of a process.
// It is safe for concurrent use.
type Sheet struct {
	mx         sync.Mutex
	prefix     string
	target     Target
	registered map[string]bool
	rules      []*css.Rule // all registered rules, in order of registration
	pending    []*css.Rule // registered, not yet committed
}

// SheetOption configures a Sheet.
type SheetOption func(*Sheet)

// WithPrefix sets the prefix of generated class names. The default is "css".
func WithPrefix(prefix string) SheetOption {
	return func(s *Sheet) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithTarget sets the target for committed rules.
func WithTarget(t Target) SheetOption {
	return func(s *Sheet) {
		s.target = t
	}
}

// NewSheet creates an empty rule registry.
func NewSheet(opts ...SheetOption) *Sheet {
	s := &Sheet{
		prefix:     "css",
		registered: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetTarget replaces the target for committed rules. Rules already
// committed to a previous target are not transferred.
func (s *Sheet) SetTarget(t Target) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.target = t
}

// Compile merges styles (see Merge), registers the resulting rules and
// returns the class name for them. Nil styles are ignored. Compiling equal
// styles again returns the same class name without registering anything.
//
// Compile fails with ErrMalformedStyle if a style cannot be converted to CSS.
func (s *Sheet) Compile(styles ...Style) (string, error) {
	merged := Merge(styles...)
	rules, err := buildRules(placeholder, merged)
	if err != nil {
		return "", err
	}
	class := hashName(s.prefix, rulesText(rules))
	s.mx.Lock()
	defer s.mx.Unlock()
	if s.registered[class] {
		return class, nil
	}
	s.registered[class] = true
	if len(rules) == 0 {
		return class, nil
	}
	bindSelector(rules, class)
	s.rules = append(s.rules, rules...)
	s.pending = append(s.pending, rules...)
	tracer().Debugf("cssx: registered class %s with %d rule(s)", class, len(rules))
	return class, nil
}

// Commit hands all pending rules to the target, in order of registration.
// Without pending rules, Commit does nothing. If the target fails, the
// rules stay pending and will be part of the next commit.
//
// Without a target, pending rules are simply marked as committed; they are
// still part of the sheet's text (see String).
func (s *Sheet) Commit() {
	s.mx.Lock()
	defer s.mx.Unlock()
	if len(s.pending) == 0 {
		return
	}
	if s.target != nil {
		if err := s.target.InsertRules(s.pending); err != nil {
			tracer().Errorf("cssx: commit of %d rule(s) failed: %v", len(s.pending), err)
			return
		}
	}
	tracer().Debugf("cssx: committed %d rule(s)", len(s.pending))
	s.pending = nil
}

// Pending returns the number of registered rules awaiting a commit.
func (s *Sheet) Pending() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return len(s.pending)
}

// Registered is true if class has been produced by this sheet.
func (s *Sheet) Registered(class string) bool {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.registered[class]
}

// Stylesheet returns all registered rules, committed or not, as a
// douceur stylesheet. The stylesheet shares rule values with the sheet;
// clients must not modify them.
func (s *Sheet) Stylesheet() *css.Stylesheet {
	s.mx.Lock()
	defer s.mx.Unlock()
	sheet := css.NewStylesheet()
	sheet.Rules = append(sheet.Rules, s.rules...)
	return sheet
}

// String returns the CSS text of all registered rules.
func (s *Sheet) String() string {
	return s.Stylesheet().String()
}

// Debug representation.
func (s *Sheet) GoString() string {
	s.mx.Lock()
	defer s.mx.Unlock()
	return fmt.Sprintf("cssx.Sheet{prefix=%q, classes=%d, rules=%d, pending=%d}",
		s.prefix, len(s.registered), len(s.rules), len(s.pending))
}
