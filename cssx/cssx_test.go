package cssx

import (
	"errors"
	"strings"
	"testing"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	batches [][]*css.Rule
	fail    error
}

func (r *recorder) InsertRules(rules []*css.Rule) error {
	if r.fail != nil {
		return r.fail
	}
	r.batches = append(r.batches, append([]*css.Rule(nil), rules...))
	return nil
}

func declarations(rule *css.Rule) map[string]string {
	m := make(map[string]string)
	for _, d := range rule.Declarations {
		m[d.Property] = d.Value
	}
	return m
}

func TestMergeLaterWins(t *testing.T) {
	m := Merge(Style{"color": "red"}, Style{"color": "blue"})
	if m["color"] != "blue" {
		t.Errorf("expected later style to override color, have %v", m["color"])
	}
}

func TestMergeNormalizesPropertyNames(t *testing.T) {
	m := Merge(Style{"backgroundColor": "red"}, Style{"background-color": "blue"})
	assert.Equal(t, Style{"background-color": "blue"}, m)
	m = Merge(Style{"&:hover": Style{"background-color": "red"}},
		Style{"&:hover": Style{"backgroundColor": "blue"}})
	assert.Equal(t, "blue", m["&:hover"].(Style)["background-color"])
	assert.Len(t, m["&:hover"].(Style), 1)
}

func TestMergeNestedBlocks(t *testing.T) {
	a := Style{"&:hover": Style{"color": "red", "margin": 1}}
	b := Style{"&:hover": map[string]any{"color": "blue"}}
	m := Merge(a, b)
	hover := m["&:hover"].(Style)
	assert.Equal(t, "blue", hover["color"])
	assert.Equal(t, 1, hover["margin"])
	assert.Equal(t, "red", a["&:hover"].(Style)["color"], "merge must not modify its input")
}

func TestPropertyName(t *testing.T) {
	for in, out := range map[string]string{
		"color":            "color",
		"backgroundColor":  "background-color",
		"background-color": "background-color",
		"WebkitTransition": "-webkit-transition",
		"msFlex":           "-ms-flex",
		"--mainColor":      "--mainColor",
	} {
		if p := PropertyName(in); p != out {
			t.Errorf("expected %q for %q, have %q", out, in, p)
		}
	}
}

func TestCompileMergeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.cssx")
	defer teardown()
	//
	s := NewSheet()
	class, err := s.Compile(Style{"color": "red"}, Style{"color": "blue"})
	require.NoError(t, err)
	blue, err := s.Compile(Style{"color": "blue"})
	require.NoError(t, err)
	assert.Equal(t, blue, class)
	rules := s.Stylesheet().Rules
	require.Len(t, rules, 1)
	assert.Equal(t, "blue", declarations(rules[0])["color"])
	assert.Equal(t, []string{"." + class}, rules[0].Selectors)
}

func TestCompileFalsyStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.cssx")
	defer teardown()
	//
	s := NewSheet()
	a, err := s.Compile(nil, Style{"color": "red"}, nil)
	require.NoError(t, err)
	b, err := s.Compile(Style{"color": "red"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, s.Pending())
}

func TestCompileValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.cssx")
	defer teardown()
	//
	s := NewSheet(WithPrefix("x"))
	class, err := s.Compile(Style{
		"padding":    8,
		"margin":     0,
		"opacity":    0.5,
		"zIndex":     3,
		"width":      dimen.DU(12 * dimen.PT),
		"display":    []string{"-webkit-box", "flex"},
		"color":      "red !important",
		"border":     nil,
		"visibility": false,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(class, "x-"))
	rule := s.Stylesheet().Rules[0]
	d := declarations(rule)
	assert.Equal(t, "8px", d["padding"])
	assert.Equal(t, "0", d["margin"])
	assert.Equal(t, "0.5", d["opacity"])
	assert.Equal(t, "3", d["z-index"])
	assert.Equal(t, "12pt", d["width"])
	assert.Equal(t, "red", d["color"])
	assert.NotContains(t, d, "border")
	assert.NotContains(t, d, "visibility")
	displays := 0
	for _, decl := range rule.Declarations {
		if decl.Property == "display" {
			displays++
		}
		if decl.Property == "color" {
			assert.True(t, decl.Important)
		}
	}
	assert.Equal(t, 2, displays)
}

func TestCompileNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.cssx")
	defer teardown()
	//
	s := NewSheet()
	class, err := s.Compile(Style{
		"color":                     "black",
		"&:hover, &:focus":          Style{"color": "white"},
		"& > span":                  Style{"fontWeight": 700},
		"@media (max-width: 600px)": Style{"padding": 4, "&:hover": Style{"padding": 2}},
	})
	require.NoError(t, err)
	text := s.String()
	t.Logf("sheet = \n%s", text)
	sel := "." + class
	assert.Contains(t, text, sel+" {")
	assert.Contains(t, text, sel+":hover, "+sel+":focus {")
	assert.Contains(t, text, sel+" > span {")
	assert.Contains(t, text, "font-weight: 700;")
	assert.Contains(t, text, "@media (max-width: 600px) {")
	assert.NotContains(t, text, "&")
	rules := s.Stylesheet().Rules
	last := rules[len(rules)-1]
	assert.Equal(t, css.AtRule, last.Kind)
	assert.True(t, last.EmbedsRules(), "@media must print its nested rules")
	assert.Len(t, last.Rules, 2)
}

func TestCompileMergeOrderAcrossSpellings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.cssx")
	defer teardown()
	//
	s := NewSheet()
	_, err := s.Compile(Style{"backgroundColor": "red"}, Style{"background-color": "blue"})
	require.NoError(t, err)
	d := s.Stylesheet().Rules[0].Declarations
	require.Len(t, d, 1)
	assert.Equal(t, "blue", d[0].Value)
	//
	a, _ := s.Compile(Style{"fontSize": 12})
	b, _ := s.Compile(Style{"font-size": 12})
	assert.Equal(t, a, b, "spellings of one property must yield one class")
}

func TestCompileUnsupportedAtRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.cssx")
	defer teardown()
	//
	s := NewSheet()
	for _, key := range []string{"@container (min-width: 400px)", "@layer base", "@keyframes spin"} {
		_, err := s.Compile(Style{key: Style{"color": "red"}})
		if !errors.Is(err, ErrMalformedStyle) {
			t.Errorf("expected ErrMalformedStyle for %q, have %v", key, err)
		}
	}
	class, err := s.Compile(Style{"@supports (display: grid)": Style{"display": "grid"}})
	require.NoError(t, err)
	assert.Contains(t, s.String(), "@supports (display: grid) {")
	assert.Contains(t, s.String(), "."+class+" {")
}

func TestCompileMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.cssx")
	defer teardown()
	//
	s := NewSheet()
	for _, st := range []Style{
		{"color": Style{"red": 1}},
		{"color": make(chan int)},
		{"color": true},
		{"&:hover": "red"},
		{" ": "red"},
	} {
		_, err := s.Compile(st)
		if !errors.Is(err, ErrMalformedStyle) {
			t.Errorf("expected ErrMalformedStyle for %v, have %v", st, err)
		}
	}
	assert.Equal(t, 0, s.Pending())
}

func TestCompileRegistersOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.cssx")
	defer teardown()
	//
	s := NewSheet()
	a, _ := s.Compile(Style{"color": "red", "margin": 1})
	b, _ := s.Compile(Style{"margin": 1}, Style{"color": "red"})
	assert.Equal(t, a, b)
	assert.True(t, s.Registered(a))
	assert.Equal(t, 1, s.Pending())
	c, _ := s.Compile(Style{"color": "green"})
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, s.Pending())
}

func TestCommit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.cssx")
	defer teardown()
	//
	rec := &recorder{}
	s := NewSheet(WithTarget(rec))
	s.Commit() // nothing pending => no-op
	assert.Empty(t, rec.batches)
	s.Compile(Style{"color": "red"})
	s.Compile(Style{"color": "blue"})
	s.Commit()
	require.Len(t, rec.batches, 1)
	assert.Len(t, rec.batches[0], 2)
	assert.Equal(t, 0, s.Pending())
	s.Commit()
	assert.Len(t, rec.batches, 1)
}

func TestCommitFailureKeepsRulesPending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.cssx")
	defer teardown()
	//
	rec := &recorder{fail: errors.New("document gone")}
	s := NewSheet(WithTarget(rec))
	s.Compile(Style{"color": "red"})
	s.Commit()
	assert.Equal(t, 1, s.Pending())
	rec.fail = nil
	s.Commit()
	assert.Equal(t, 0, s.Pending())
	assert.Len(t, rec.batches, 1)
}
