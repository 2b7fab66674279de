// Package ast defines the closed, immutable AST produced by internal/builder
// from a concrete syntax tree. Every node carries a Kind (possibly the
// sentinel absent Kind for the auxiliary shapes) and a back-reference to its
// originating ctree.Node for source position and token text.
package ast

import (
	"github.com/cwbudde/go-javalint/internal/ctree"
	"github.com/cwbudde/go-javalint/internal/kinds"
)

// Kind and Modifier are re-exported from internal/kinds so callers never
// need to import both packages just to write a check predicate.
type Kind = kinds.Kind
type Modifier = kinds.Modifier

// Re-export the full closed Kind domain under the ast package, matching the
// category names spec.md's §3 table uses.
const (
	CompilationUnitKind = kinds.CompilationUnit
	Class            = kinds.Class
	Interface         = kinds.Interface
	Enum              = kinds.Enum
	AnnotationType    = kinds.AnnotationType
	MethodKind        = kinds.Method
	VariableKind      = kinds.Variable
	EnumConstantKind  = kinds.EnumConstantKind
	InitializerKind   = kinds.Initializer
	StaticInitKind    = kinds.StaticInitializer

	BlockKind             = kinds.Block
	EmptyStatementKind    = kinds.EmptyStatement
	LabeledStatementKind  = kinds.LabeledStatement
	ExpressionStatementKind = kinds.ExpressionStatement
	IfStatementKind       = kinds.IfStatement
	AssertStatementKind   = kinds.AssertStatement
	SwitchStatementKind   = kinds.SwitchStatement
	CaseGroupKind         = kinds.CaseGroup
	CaseLabelKind         = kinds.CaseLabel
	WhileStatementKind    = kinds.WhileStatement
	DoStatementKind       = kinds.DoStatement
	ForStatementKind      = kinds.ForStatement
	EnhancedForStatementKind = kinds.EnhancedForStatement
	BreakStatementKind    = kinds.BreakStatement
	ContinueStatementKind = kinds.ContinueStatement
	ReturnStatementKind   = kinds.ReturnStatement
	ThrowStatementKind    = kinds.ThrowStatement
	SynchronizedStatementKind = kinds.SynchronizedStatement
	TryStatementKind      = kinds.TryStatement
	CatchKind             = kinds.Catch

	IdentifierKind    = kinds.Identifier
	IntLiteralKind    = kinds.IntLiteral
	LongLiteralKind   = kinds.LongLiteral
	FloatLiteralKind  = kinds.FloatLiteral
	DoubleLiteralKind = kinds.DoubleLiteral
	BooleanLiteralKind = kinds.BooleanLiteral
	CharLiteralKind   = kinds.CharLiteral
	StringLiteralKind = kinds.StringLiteral
	NullLiteralKind   = kinds.NullLiteral
	ParenthesizedExpressionKind = kinds.ParenthesizedExpression
	ConditionalExpressionKind   = kinds.ConditionalExpression
	InstanceOfKind    = kinds.InstanceOf
	TypeCastKind      = kinds.TypeCast
	MethodInvocationKind = kinds.MethodInvocation
	NewArrayKind      = kinds.NewArray
	NewClassKind      = kinds.NewClass
	MemberSelectKind  = kinds.MemberSelect
	ArrayAccessExpressionKind = kinds.ArrayAccessExpression
)

// Node is the base interface every AST node implements, per spec.md §6's
// "AST inspection interface".
type Node interface {
	// Kind reports this node's variant tag. Kindless auxiliary shapes
	// report the sentinel absent Kind.
	Kind() Kind

	// Is reports whether this node's Kind equals k. Kindless shapes always
	// return false, for every k (including the sentinel).
	Is(k Kind) bool

	// Line returns the 1-based source line of the node's first token, taken
	// verbatim from its concrete-tree back-reference.
	Line() int

	// Accept performs double dispatch into the visitor method named after
	// this node's category.
	Accept(v Visitor)

	// source returns the concrete-tree back-reference, for internal use by
	// accessors that need raw token text (e.g. identifier names at the
	// builder layer already copy what they need, so this stays unexported).
	source() ctree.Node
}

// base is embedded by every concrete node and supplies the back-reference,
// line number, and Kind plumbing so each variant only has to provide its own
// fields and Accept method.
type base struct {
	kind Kind
	cst  ctree.Node
	line int
}

func newBase(kind Kind, cst ctree.Node) base {
	line := 0
	if cst != nil {
		line = cst.Line()
	}
	return base{kind: kind, cst: cst, line: line}
}

func (b base) Kind() Kind        { return b.kind }
func (b base) Is(k Kind) bool    { return b.kind == k }
func (b base) Line() int         { return b.line }
func (b base) source() ctree.Node { return b.cst }

// auxBase is embedded by the kindless auxiliary shapes (PrimitiveType,
// ArrayType, WildcardType, Import, Modifiers). Is is always false, for every Kind,
// matching spec.md §4.3's "these variants never expose a kind tag to
// is(Kind) predicates".
type auxBase struct {
	cst  ctree.Node
	line int
}

func newAuxBase(cst ctree.Node) auxBase {
	line := 0
	if cst != nil {
		line = cst.Line()
	}
	return auxBase{cst: cst, line: line}
}

func (b auxBase) Kind() Kind         { return kinds.Absent }
func (b auxBase) Is(k Kind) bool     { return false }
func (b auxBase) Line() int          { return b.line }
func (b auxBase) source() ctree.Node { return b.cst }
