package ast

import "github.com/cwbudde/go-javalint/internal/ctree"

// PrimitiveType, ArrayType, and WildcardType are kindless auxiliary shapes
// (spec.md §3); none is ever matched by Is(Kind).

type PrimitiveType struct {
	auxBase
	Name string // "int", "boolean", "void", ...
}

func NewPrimitiveType(cst ctree.Node, name string) *PrimitiveType {
	return &PrimitiveType{auxBase: newAuxBase(cst), Name: name}
}
func (n *PrimitiveType) Accept(v Visitor) { v.VisitPrimitiveType(n) }

// ArrayType wraps an element type in one array dimension. A k-dimensional
// array is k nested ArrayType values, built by applyDim in the builder.
type ArrayType struct {
	auxBase
	ElementType Node
}

func NewArrayType(cst ctree.Node, elementType Node) *ArrayType {
	return &ArrayType{auxBase: newAuxBase(cst), ElementType: elementType}
}
func (n *ArrayType) Accept(v Visitor) { v.VisitArrayType(n) }

// WildcardType models a generic wildcard (`?`, `? extends T`, `? super T`).
// Generics are erased in this pass (spec.md §1), so Bound is only ever
// recorded for provenance and never consulted by the builder or checks.
type WildcardType struct {
	auxBase
	Bound Node // nilable
}

func NewWildcardType(cst ctree.Node, bound Node) *WildcardType {
	return &WildcardType{auxBase: newAuxBase(cst), Bound: bound}
}
func (n *WildcardType) Accept(v Visitor) { v.VisitWildcardType(n) }
