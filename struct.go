package argvalidation

import (
	"fmt"
	"reflect"
	"strings"
)

// Field returns a target for the struct field that fieldPtr addresses. The
// target is named after the field's json tag, or its Go name when there is no
// tag, and reads *fieldPtr when validated. Fields of embedded structs are
// found as well.
//
// A nil fieldPtr yields an absent target. If structPtr is not a non-nil
// pointer to a struct, or fieldPtr is not one of its fields, validating the
// target returns an error wrapping ErrStructPointer or ErrFieldNotFound.
func Field[T any](structPtr any, fieldPtr *T) *Argument[T] {
	if fieldPtr == nil {
		return nil
	}
	rv := reflect.ValueOf(structPtr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return &Argument[T]{err: fmt.Errorf("%w, got %T", ErrStructPointer, structPtr)}
	}
	structVal := rv.Elem()
	sf := findStructField(structVal, reflect.ValueOf(fieldPtr))
	if sf == nil {
		return &Argument[T]{err: fmt.Errorf("%w %s", ErrFieldNotFound, structVal.Type())}
	}
	return &Argument[T]{
		name:  fieldKey(*sf),
		value: func() T { return *fieldPtr },
	}
}

// findStructField looks for the field of structVal that fieldPtr points to,
// descending into embedded structs.
func findStructField(structVal, fieldPtr reflect.Value) *reflect.StructField {
	ptr := fieldPtr.Pointer()
	for i := structVal.NumField() - 1; i >= 0; i-- {
		sf := structVal.Type().Field(i)
		fv := structVal.Field(i)
		// An embedded struct shares its address with its first field.
		if fv.CanAddr() && fv.UnsafeAddr() == ptr && sf.Type == fieldPtr.Elem().Type() {
			return &sf
		}
		if !sf.Anonymous {
			continue
		}
		if sf.Type.Kind() == reflect.Ptr {
			fv = fv.Elem()
		}
		if fv.Kind() == reflect.Struct {
			if found := findStructField(fv, fieldPtr); found != nil {
				return found
			}
		}
	}
	return nil
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}
