package common

import (
	"fmt"
	"strings"

	"vnfe/internal/inputmethod"
)

const DefaultMethodName = "telex"

var availableMethods = []string{
	"telex",
	"simple-telex",
}

// ResolveMethod converts a user-provided method name into an input method
// and its canonical name.
func ResolveMethod(name string) (inputmethod.Method, string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "", "default", "telex":
		return inputmethod.NewTelex(), "telex", nil
	case "simple-telex", "simpletelex", "simple_telex", "telex-simple":
		return inputmethod.NewSimpleTelex(), "simple-telex", nil
	default:
		return nil, "", fmt.Errorf("unknown input method %q (available: %s)", name, strings.Join(availableMethods, ", "))
	}
}

// AvailableMethods returns the names understood by ResolveMethod.
func AvailableMethods() []string {
	copyOf := make([]string, len(availableMethods))
	copy(copyOf, availableMethods)
	return copyOf
}
