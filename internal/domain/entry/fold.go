package entry

import "golang.org/x/text/cases"

// Fold maps s to its Unicode case-folded form for case-insensitive matching.
// A Caser is stateful, so one is built per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}
