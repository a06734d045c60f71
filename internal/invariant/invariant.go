// Package invariant holds contract assertions. A failed assertion is a
// programming error in the caller and panics; it is never reported as data.
package invariant

import (
	"fmt"
	"reflect"
	"runtime"
)

// Precondition checks an input contract at function entry.
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Invariant checks internal consistency while a function runs.
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// NotNil panics if value is nil, including typed nils such as (*T)(nil).
func NotNil(value any, name string) {
	if isNil(value) {
		fail("PRECONDITION", "%s must not be nil", name)
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// fail panics with the violation and the location of the failing assertion.
func fail(kind, format string, args ...any) {
	pc := make([]uintptr, 1)
	n := runtime.Callers(3, pc)
	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]any{kind}, args...)...)
	if n > 0 {
		frame, _ := runtime.CallersFrames(pc[:n]).Next()
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}
	panic(msg)
}
