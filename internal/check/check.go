// Package check defines the check harness: the boundary between the
// immutable AST (internal/ast) and rule logic that inspects it and reports
// issues. A Check pairs a visitor with per-file bootstrap logic, mirroring
// the SonarQube JavaFileScannerContext contract this core's checks are
// modelled after.
package check

import "github.com/cwbudde/go-javalint/internal/ast"

// Issue is one reported finding: a rule key, a human message, and the
// source line taken from the offending node's concrete-tree back-reference.
type Issue struct {
	RuleKey string
	Message string
	Line    int
}

// FileContext is exclusively owned by one check at a time within a file
// (spec.md §5). AddIssue is append-only and side-effect-free with respect
// to the AST.
type FileContext struct {
	tree   *ast.CompilationUnit
	issues []*Issue
}

// NewFileContext wraps a built CompilationUnit for a single check pass.
func NewFileContext(tree *ast.CompilationUnit) *FileContext {
	return &FileContext{tree: tree}
}

// Tree returns the root of the AST this context was built for.
func (c *FileContext) Tree() *ast.CompilationUnit { return c.tree }

// AddIssue records a finding against node's source line.
func (c *FileContext) AddIssue(node ast.Node, ruleKey, message string) {
	line := 0
	if node != nil {
		line = node.Line()
	}
	c.issues = append(c.issues, &Issue{RuleKey: ruleKey, Message: message, Line: line})
}

// Issues returns every issue recorded so far, in report order.
func (c *FileContext) Issues() []*Issue { return c.issues }

// Check is a visitor plus the per-file setup that drives it, per spec.md
// §4.4. Implementations normally embed ast.BaseVisitor and override the
// categories they inspect.
type Check interface {
	// RuleKey identifies this check for issue attribution and for keying
	// panic-isolation log output.
	RuleKey() string

	// ScanFile is invoked once per compilation unit. Implementations read
	// ctx.Tree(), walk it via Accept, and call ctx.AddIssue for findings.
	ScanFile(ctx *FileContext)
}
