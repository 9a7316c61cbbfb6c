/*
Package style holds CSS property values as read back from stylesheets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     background-color: blue
//
// a property value of "blue" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// Equals compares two property values, ignoring case and surrounding
// white space.
func (p Property) Equals(other Property) bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), strings.TrimSpace(string(other)))
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}
