// Package rules holds concrete Check implementations built on top of
// ast.BaseVisitor, each overriding only the categories it inspects.
package rules

import (
	"github.com/cwbudde/go-javalint/internal/ast"
	"github.com/cwbudde/go-javalint/internal/check"
)

// IfConditionAlwaysTrueOrFalse flags an if-statement whose condition is a
// literal `true` or `false`, optionally wrapped in any number of
// parentheses — spec.md §8 scenario 4.
type IfConditionAlwaysTrueOrFalse struct{}

func (IfConditionAlwaysTrueOrFalse) RuleKey() string { return "IfConditionAlwaysTrueOrFalse" }

func (r IfConditionAlwaysTrueOrFalse) ScanFile(ctx *check.FileContext) {
	v := &ifConditionVisitor{ctx: ctx}
	v.Self = v
	ctx.Tree().Accept(v)
}

type ifConditionVisitor struct {
	ast.BaseVisitor
	ctx *check.FileContext
}

func (v *ifConditionVisitor) VisitIfStatement(n *ast.IfStatement) {
	if lit, ok := unwrapParens(n.Condition).(*ast.Literal); ok && lit.Is(ast.BooleanLiteralKind) {
		v.ctx.AddIssue(n, "IfConditionAlwaysTrueOrFalse",
			"Remove this useless \"if\" statement; its condition is always "+lit.Text+".")
	}
	v.BaseVisitor.VisitIfStatement(n)
}

func unwrapParens(n ast.Node) ast.Node {
	for {
		p, ok := n.(*ast.Parenthesized)
		if !ok {
			return n
		}
		n = p.Expression
	}
}
