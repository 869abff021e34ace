package mathutil

import (
	"fmt"
	"strings"
)

// String renders the components with 8 decimals, space-separated.
func (v Vector3[T]) String() string {
	return v.FormatWith("%.8f")
}

// FormatWith applies a single fmt verb such as "%.3f" or "%g" to each
// component.
func (v Vector3[T]) FormatWith(verb string) string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = fmt.Sprintf(verb, c)
	}
	return strings.Join(parts, " ")
}
