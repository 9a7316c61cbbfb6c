package memo

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrHiddenField is returned for key types with fields the JSON encoder
// would silently skip. Values differing only in such fields would share a
// cache entry.
var ErrHiddenField = errors.New("memo: key type has unexported fields")

var (
	jsonMarshaler = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshaler = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// checked caches the results of CheckJSONKey per type.
var checked sync.Map // reflect.Type -> error

// CheckJSONKey reports whether values of type t serialize completely with
// JSONKey. It fails with ErrHiddenField if t, or a type reachable from t,
// is a struct with unexported fields. Fields tagged `json:"-"` and types
// implementing json.Marshaler or encoding.TextMarshaler are accepted as
// they are. Values inside interface-typed fields or elements are not
// inspected.
func CheckJSONKey(t reflect.Type) error {
	if t == nil {
		return nil
	}
	if err, ok := checked.Load(t); ok {
		if err == nil {
			return nil
		}
		return err.(error)
	}
	err := checkType(t, map[reflect.Type]bool{})
	checked.Store(t, err)
	return err
}

func checkType(t reflect.Type, seen map[reflect.Type]bool) error {
	if seen[t] {
		return nil
	}
	seen[t] = true
	if t.Implements(jsonMarshaler) || t.Implements(textMarshaler) {
		return nil
	}
	if t.Kind() != reflect.Ptr {
		pt := reflect.PtrTo(t)
		if pt.Implements(jsonMarshaler) || pt.Implements(textMarshaler) {
			return nil
		}
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Map:
		return checkType(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Tag.Get("json") == "-" {
				continue
			}
			if !f.IsExported() {
				ft := f.Type
				if ft.Kind() == reflect.Ptr {
					ft = ft.Elem()
				}
				if f.Anonymous && ft.Kind() == reflect.Struct {
					// exported fields of embedded structs are promoted
					if err := checkType(ft, seen); err != nil {
						return err
					}
					continue
				}
				return fmt.Errorf("%w: field %s of %s", ErrHiddenField, f.Name, t)
			}
			if err := checkType(f.Type, seen); err != nil {
				return err
			}
		}
	}
	return nil
}
