package rules

import (
	"github.com/cwbudde/go-javalint/internal/ast"
	"github.com/cwbudde/go-javalint/internal/check"
)

// EmptyBlock flags a block with no statements, other than a method or
// constructor body (an empty method is a legitimate no-op override, e.g. an
// empty interface-implementing stub) and other than the block belonging to
// a try-with-resources whose resources do all the work.
type EmptyBlock struct{}

func (EmptyBlock) RuleKey() string { return "EmptyBlock" }

func (r EmptyBlock) ScanFile(ctx *check.FileContext) {
	v := &emptyBlockVisitor{ctx: ctx}
	v.Self = v
	ctx.Tree().Accept(v)
}

type emptyBlockVisitor struct {
	ast.BaseVisitor
	ctx *check.FileContext
	// skipNext is true for the one Block that is a method/constructor's own
	// body or a try-with-resources block, so VisitBlock can skip it without
	// threading that context through every statement kind that might nest
	// another Block.
	skipNext bool
}

func (v *emptyBlockVisitor) VisitTryStatement(n *ast.TryStatement) {
	for _, r := range n.Resources {
		r.Accept(v)
	}
	if n.Block != nil {
		v.skipNext = len(n.Resources) > 0
		n.Block.Accept(v)
	}
	for _, c := range n.Catches {
		c.Accept(v)
	}
	if n.Finally != nil {
		n.Finally.Accept(v)
	}
}

func (v *emptyBlockVisitor) VisitMethod(n *ast.Method) {
	if n.Body != nil {
		v.skipNext = true
	}
	v.BaseVisitor.VisitMethod(n)
}

func (v *emptyBlockVisitor) VisitBlock(n *ast.Block) {
	skip := v.skipNext
	v.skipNext = false
	if !skip && len(n.Statements) == 0 {
		v.ctx.AddIssue(n, "EmptyBlock", "Either remove or fill this block of code.")
	}
	v.BaseVisitor.VisitBlock(n)
}
