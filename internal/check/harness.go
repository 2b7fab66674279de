package check

import (
	"log"

	"github.com/cwbudde/go-javalint/internal/ast"
)

// Harness coordinates the execution of multiple checks against one
// compilation unit, mirroring the multi-pass coordinator this core's checks
// are modelled after: passes run in registration order, each gets its own
// scoped context, and a panicking pass never takes down the rest.
type Harness struct {
	checks []Check
	logger *log.Logger
}

// NewHarness builds a Harness running checks in the given order. A nil
// logger falls back to the standard logger.
func NewHarness(logger *log.Logger, checks ...Check) *Harness {
	if logger == nil {
		logger = log.Default()
	}
	return &Harness{checks: checks, logger: logger}
}

// AddCheck registers an additional check, run after all previously added
// ones.
func (h *Harness) AddCheck(c Check) {
	h.checks = append(h.checks, c)
}

// RunAll runs every registered check against tree, in registration order.
// Issues accumulate across checks in invocation order (spec.md §5's
// ordering guarantee); a check that panics is isolated via recover, and the
// issues it recorded before panicking are still returned.
func (h *Harness) RunAll(tree *ast.CompilationUnit) []*Issue {
	var all []*Issue
	for _, c := range h.checks {
		fc := NewFileContext(tree)
		h.runOne(c, fc)
		all = append(all, fc.Issues()...)
	}
	return all
}

func (h *Harness) runOne(c Check, fc *FileContext) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Printf("check %q panicked: %v", c.RuleKey(), r)
		}
	}()
	c.ScanFile(fc)
}
