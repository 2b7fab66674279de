package rules

import "github.com/cwbudde/go-javalint/internal/check"

// All returns every bundled check, in a fixed registration order so runs are
// reproducible.
func All() []check.Check {
	return []check.Check{
		EmptyBlock{},
		IfConditionAlwaysTrueOrFalse{},
	}
}
