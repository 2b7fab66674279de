package ast

import "github.com/cwbudde/go-javalint/internal/ctree"

// Binary backs all 19 binary-operator kinds.
type Binary struct {
	base
	Left  Node
	Right Node
}

func NewBinary(kind Kind, cst ctree.Node, left, right Node) *Binary {
	return &Binary{base: newBase(kind, cst), Left: left, Right: right}
}
func (n *Binary) Accept(v Visitor) { v.VisitBinary(n) }

// Unary backs the 8 unary/prefix/postfix kinds.
type Unary struct {
	base
	Operand Node
}

func NewUnary(kind Kind, cst ctree.Node, operand Node) *Unary {
	return &Unary{base: newBase(kind, cst), Operand: operand}
}
func (n *Unary) Accept(v Visitor) { v.VisitUnary(n) }

// Assignment backs ASSIGNMENT and its 11 compound forms. Variable is the
// l-value left-hand side; invariant (v) of spec.md §3 requires it be one of
// IDENTIFIER, MEMBER_SELECT, or ARRAY_ACCESS_EXPRESSION for compound forms,
// which the builder checks via kinds.IsLValueKind before constructing this
// node.
type Assignment struct {
	base
	Variable   Node
	Expression Node
}

func NewAssignment(kind Kind, cst ctree.Node, lhs, rhs Node) *Assignment {
	return &Assignment{base: newBase(kind, cst), Variable: lhs, Expression: rhs}
}
func (n *Assignment) Accept(v Visitor) { v.VisitAssignment(n) }
