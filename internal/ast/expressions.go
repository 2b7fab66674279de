package ast

import "github.com/cwbudde/go-javalint/internal/ctree"

type Identifier struct {
	base
	Name string
}

func NewIdentifier(cst ctree.Node, name string) *Identifier {
	return &Identifier{base: newBase(IdentifierKind, cst), Name: name}
}
func (n *Identifier) Accept(v Visitor) { v.VisitIdentifier(n) }

// Literal is the shared shape for every literal Kind; Text preserves the
// original token text verbatim. Neither this package nor the builder
// converts it into a Go value (no int/float parsing, no char escape
// handling).
type Literal struct {
	base
	Text string
}

func newLiteral(kind Kind, cst ctree.Node, text string) *Literal {
	return &Literal{base: newBase(kind, cst), Text: text}
}

func NewIntLiteral(cst ctree.Node, text string) *Literal    { return newLiteral(IntLiteralKind, cst, text) }
func NewLongLiteral(cst ctree.Node, text string) *Literal   { return newLiteral(LongLiteralKind, cst, text) }
func NewFloatLiteral(cst ctree.Node, text string) *Literal  { return newLiteral(FloatLiteralKind, cst, text) }
func NewDoubleLiteral(cst ctree.Node, text string) *Literal { return newLiteral(DoubleLiteralKind, cst, text) }
func NewBooleanLiteral(cst ctree.Node, text string) *Literal { return newLiteral(BooleanLiteralKind, cst, text) }
func NewCharLiteral(cst ctree.Node, text string) *Literal   { return newLiteral(CharLiteralKind, cst, text) }
func NewStringLiteral(cst ctree.Node, text string) *Literal { return newLiteral(StringLiteralKind, cst, text) }
func NewNullLiteral(cst ctree.Node, text string) *Literal   { return newLiteral(NullLiteralKind, cst, text) }

func (n *Literal) Accept(v Visitor) { v.VisitLiteral(n) }

type Parenthesized struct {
	base
	Expression Node
}

func NewParenthesized(cst ctree.Node, expr Node) *Parenthesized {
	return &Parenthesized{base: newBase(ParenthesizedExpressionKind, cst), Expression: expr}
}
func (n *Parenthesized) Accept(v Visitor) { v.VisitParenthesized(n) }

type Conditional struct {
	base
	Condition  Node
	TrueExpr   Node
	FalseExpr  Node
}

func NewConditional(cst ctree.Node, cond, t, f Node) *Conditional {
	return &Conditional{base: newBase(ConditionalExpressionKind, cst), Condition: cond, TrueExpr: t, FalseExpr: f}
}
func (n *Conditional) Accept(v Visitor) { v.VisitConditional(n) }

type InstanceOfExpr struct {
	base
	Expression Node
	Type       Node
}

func NewInstanceOf(cst ctree.Node, expr, typ Node) *InstanceOfExpr {
	return &InstanceOfExpr{base: newBase(InstanceOfKind, cst), Expression: expr, Type: typ}
}
func (n *InstanceOfExpr) Accept(v Visitor) { v.VisitInstanceOf(n) }

type TypeCastExpr struct {
	base
	Type       Node
	Expression Node
}

func NewTypeCast(cst ctree.Node, typ, expr Node) *TypeCastExpr {
	return &TypeCastExpr{base: newBase(TypeCastKind, cst), Type: typ, Expression: expr}
}
func (n *TypeCastExpr) Accept(v Visitor) { v.VisitTypeCast(n) }

type MethodInvocationExpr struct {
	base
	MethodSelect Node
	Arguments    []Node
}

func NewMethodInvocation(cst ctree.Node, methodSelect Node, args []Node) *MethodInvocationExpr {
	return &MethodInvocationExpr{base: newBase(MethodInvocationKind, cst), MethodSelect: methodSelect, Arguments: args}
}
func (n *MethodInvocationExpr) Accept(v Visitor) { v.VisitMethodInvocation(n) }

// NewArrayExpr models a NEW_ARRAY node. ElementType is nilable for
// initializer-only array creations (`new int[]{1,2,3}` carries it;
// `{1,2,3}` nested initializers do not).
type NewArrayExpr struct {
	base
	ElementType Node // nilable
	Dimensions  []Node
	Initializer []Node
}

func NewNewArray(cst ctree.Node, elemType Node, dims []Node, init []Node) *NewArrayExpr {
	return &NewArrayExpr{base: newBase(NewArrayKind, cst), ElementType: elemType, Dimensions: dims, Initializer: init}
}
func (n *NewArrayExpr) Accept(v Visitor) { v.VisitNewArray(n) }

type NewClass struct {
	base
	Enclosing Node // nilable
	Identifier Node // the class type being instantiated
	Arguments []Node
	ClassBody *TypeDecl // nilable
}

func NewNewClass(cst ctree.Node, enclosing Node, identifier Node, args []Node, body *TypeDecl) *NewClass {
	return &NewClass{base: newBase(NewClassKind, cst), Enclosing: enclosing, Identifier: identifier, Arguments: args, ClassBody: body}
}
func (n *NewClass) Accept(v Visitor) { v.VisitNewClass(n) }

type MemberSelectExpr struct {
	base
	Qualifier  Node
	Identifier string
}

func NewMemberSelect(cst ctree.Node, qualifier Node, identifier string) *MemberSelectExpr {
	return &MemberSelectExpr{base: newBase(MemberSelectKind, cst), Qualifier: qualifier, Identifier: identifier}
}
func (n *MemberSelectExpr) Accept(v Visitor) { v.VisitMemberSelect(n) }

type ArrayAccessExpr struct {
	base
	Expression Node
	Index      Node
}

func NewArrayAccess(cst ctree.Node, expr, index Node) *ArrayAccessExpr {
	return &ArrayAccessExpr{base: newBase(ArrayAccessExpressionKind, cst), Expression: expr, Index: index}
}
func (n *ArrayAccessExpr) Accept(v Visitor) { v.VisitArrayAccess(n) }
