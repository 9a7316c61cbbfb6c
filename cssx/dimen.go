package cssx

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// Dimen is a CSS dimension usable as a style value. The zero Dimen is
// "none" and drops the property it is assigned to.
//
//     cssx.Style{
//         "width":  cssx.Percentage(percent.FromInt(80)),
//         "height": cssx.Auto(),
//         "margin": cssx.Just(dimen.PT * 10),   // => 10pt
//     }
type Dimen struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

// Auto is the dimension "auto".
func Auto() Dimen {
	return Dimen{flags: dimenAuto}
}

// Inherit is the dimension "inherit".
func Inherit() Dimen {
	return Dimen{flags: dimenInherit}
}

// Initial is the dimension "initial".
func Initial() Dimen {
	return Dimen{flags: dimenInitial}
}

// Just creates a dimension with a fixed value of x.
func Just(x dimen.DU) Dimen {
	return Dimen{d: x, flags: dimenAbsolute}
}

// Percentage creates a %-relative dimension.
func Percentage(p percent.Percent) Dimen {
	return Dimen{percent: p, flags: dimenPercent}
}

// Content creates a content dependent dimension. flag is one of
// DimenContentMax, DimenContentMin or DimenContentFit.
func Content(flag uint32) Dimen {
	return Dimen{flags: flag & contentMask}
}

// IsNone is true for the zero Dimen.
func (d Dimen) IsNone() bool {
	return d.flags == dimenNone
}

// String returns the CSS text of d.
func (d Dimen) String() string {
	switch {
	case d.flags&dimenPercent == dimenPercent:
		return fmt.Sprint(d.percent)
	case d.flags&contentMask == DimenContentMax:
		return "max-content"
	case d.flags&contentMask == DimenContentMin:
		return "min-content"
	case d.flags&contentMask == DimenContentFit:
		return "fit-content"
	}
	switch d.flags & kindMask {
	case dimenAbsolute:
		if d.d == 0 {
			return "0"
		}
		return formatFloat(float64(d.d)/float64(dimen.PT)) + "pt"
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	}
	return ""
}

// MarshalJSON serializes d as its CSS text, giving distinct dimensions
// distinct memo keys.
func (d Dimen) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// --- Matching --------------------------------------------------------------

// Match starts matching d against dimension kinds:
//
//     switch m := d.Match(); m {
//     case m.Just(&du):
//         ...
//     case m.IsKind(cssx.Auto()):
//         ...
//     }
//
// Each match method returns m on success and nil otherwise.
func (d Dimen) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches a dimension, see Dimen.Match.
type Matcher struct {
	dimen Dimen
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d Dimen) *Matcher {
	switch {
	case (m.dimen.flags&relativeMask > 0) || (d.flags&relativeMask > 0):
		if (m.dimen.flags&dimenPercent == dimenPercent) != (d.flags&dimenPercent == dimenPercent) {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) || (d.flags&contentMask > 0):
		if m.dimen.flags&contentMask != d.flags&contentMask {
			return nil
		}
		return m
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	}
	return nil
}

// Just matches fixed dimensions and stores the value in du, if non-nil.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches %-relative dimensions and stores the value in p, if
// non-nil.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}
