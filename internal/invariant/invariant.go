// Package invariant provides contract assertions for programming errors.
//
// Violations panic. They must never be triggered by user input; malformed
// braille is reported through result.Error values instead.
package invariant

import (
	"fmt"
	"reflect"
)

// ViolationError is the panic value raised by a failed contract.
type ViolationError struct {
	Kind    string
	Message string
}

func (e ViolationError) Error() string {
	return fmt.Sprintf("%s violated: %s", e.Kind, e.Message)
}

// Precondition panics if cond is false.
func Precondition(cond bool, format string, args ...any) {
	if !cond {
		panic(ViolationError{Kind: "precondition", Message: fmt.Sprintf(format, args...)})
	}
}

// Postcondition panics if cond is false.
func Postcondition(cond bool, format string, args ...any) {
	if !cond {
		panic(ViolationError{Kind: "postcondition", Message: fmt.Sprintf(format, args...)})
	}
}

// NotNil panics if v is nil, including typed nil pointers and maps.
func NotNil(v any, name string) {
	if isNil(v) {
		panic(ViolationError{Kind: "precondition", Message: name + " must not be nil"})
	}
}

// InRange panics unless lo <= v < hi.
func InRange(v, lo, hi int, name string) {
	if v < lo || v >= hi {
		panic(ViolationError{
			Kind:    "precondition",
			Message: fmt.Sprintf("%s=%d out of range [%d, %d)", name, v, lo, hi),
		})
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
