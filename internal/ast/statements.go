package ast

import "github.com/cwbudde/go-javalint/internal/ctree"

// Block backs BLOCK, INITIALIZER, and STATIC_INITIALIZER: spec.md's table
// gives these three one shared shape ("kind, statement list").
type Block struct {
	base
	Statements []Node
}

func NewBlock(kind Kind, cst ctree.Node, statements []Node) *Block {
	return &Block{base: newBase(kind, cst), Statements: statements}
}

func (n *Block) Accept(v Visitor) {
	switch n.Kind() {
	case InitializerKind, StaticInitKind:
		v.VisitInitializer(n)
	default:
		v.VisitBlock(n)
	}
}

type EmptyStatement struct{ base }

func NewEmptyStatement(cst ctree.Node) *EmptyStatement {
	return &EmptyStatement{base: newBase(EmptyStatementKind, cst)}
}
func (n *EmptyStatement) Accept(v Visitor) { v.VisitEmptyStatement(n) }

type LabeledStatement struct {
	base
	Label     string
	Statement Node
}

func NewLabeledStatement(cst ctree.Node, label string, stmt Node) *LabeledStatement {
	return &LabeledStatement{base: newBase(LabeledStatementKind, cst), Label: label, Statement: stmt}
}
func (n *LabeledStatement) Accept(v Visitor) { v.VisitLabeledStatement(n) }

type ExpressionStatement struct {
	base
	Expression Node
}

func NewExpressionStatement(cst ctree.Node, expr Node) *ExpressionStatement {
	return &ExpressionStatement{base: newBase(ExpressionStatementKind, cst), Expression: expr}
}
func (n *ExpressionStatement) Accept(v Visitor) { v.VisitExpressionStatement(n) }

type IfStatement struct {
	base
	Condition Node
	Then      Node
	Else      Node // nilable
}

func NewIfStatement(cst ctree.Node, cond, then, els Node) *IfStatement {
	return &IfStatement{base: newBase(IfStatementKind, cst), Condition: cond, Then: then, Else: els}
}
func (n *IfStatement) Accept(v Visitor) { v.VisitIfStatement(n) }

type AssertStatement struct {
	base
	Condition Node
	Detail    Node // nilable
}

func NewAssertStatement(cst ctree.Node, cond, detail Node) *AssertStatement {
	return &AssertStatement{base: newBase(AssertStatementKind, cst), Condition: cond, Detail: detail}
}
func (n *AssertStatement) Accept(v Visitor) { v.VisitAssertStatement(n) }

type SwitchStatement struct {
	base
	Expression Node
	Cases      []*CaseGroup
}

func NewSwitchStatement(cst ctree.Node, expr Node, cases []*CaseGroup) *SwitchStatement {
	return &SwitchStatement{base: newBase(SwitchStatementKind, cst), Expression: expr, Cases: cases}
}
func (n *SwitchStatement) Accept(v Visitor) { v.VisitSwitchStatement(n) }

// CaseGroup holds at least one CaseLabel (invariant iii in spec.md §3); the
// final trailing group for fall-through labels at the end of a switch may
// have an empty Body.
type CaseGroup struct {
	base
	Labels []*CaseLabel
	Body   []Node
}

func NewCaseGroup(cst ctree.Node, labels []*CaseLabel, body []Node) *CaseGroup {
	return &CaseGroup{base: newBase(CaseGroupKind, cst), Labels: labels, Body: body}
}
func (n *CaseGroup) Accept(v Visitor) { v.VisitCaseGroup(n) }

// CaseLabel's Expression is nil for the default label.
type CaseLabel struct {
	base
	Expression Node // nilable
}

func NewCaseLabel(cst ctree.Node, expr Node) *CaseLabel {
	return &CaseLabel{base: newBase(CaseLabelKind, cst), Expression: expr}
}
func (n *CaseLabel) Accept(v Visitor) { v.VisitCaseLabel(n) }

func (l *CaseLabel) IsDefault() bool { return l.Expression == nil }

type WhileStatement struct {
	base
	Condition Node
	Statement Node
}

func NewWhileStatement(cst ctree.Node, cond, stmt Node) *WhileStatement {
	return &WhileStatement{base: newBase(WhileStatementKind, cst), Condition: cond, Statement: stmt}
}
func (n *WhileStatement) Accept(v Visitor) { v.VisitWhileStatement(n) }

type DoStatement struct {
	base
	Statement Node
	Condition Node
}

func NewDoStatement(cst ctree.Node, stmt, cond Node) *DoStatement {
	return &DoStatement{base: newBase(DoStatementKind, cst), Statement: stmt, Condition: cond}
}
func (n *DoStatement) Accept(v Visitor) { v.VisitDoStatement(n) }

// ForStatement models the classical (non-enhanced) for loop. Init holds
// either a *Variable declarator expansion or a list of *ExpressionStatement,
// per spec.md §4.2.2's for-lowering rule; Condition is nilable.
type ForStatement struct {
	base
	Init      []Node
	Condition Node // nilable
	Update    []Node
	Statement Node
}

func NewForStatement(cst ctree.Node, init []Node, cond Node, update []Node, stmt Node) *ForStatement {
	return &ForStatement{base: newBase(ForStatementKind, cst), Init: init, Condition: cond, Update: update, Statement: stmt}
}
func (n *ForStatement) Accept(v Visitor) { v.VisitForStatement(n) }

type EnhancedForStatement struct {
	base
	Variable   *Variable
	Expression Node
	Statement  Node
}

func NewEnhancedForStatement(cst ctree.Node, v_ *Variable, expr, stmt Node) *EnhancedForStatement {
	return &EnhancedForStatement{base: newBase(EnhancedForStatementKind, cst), Variable: v_, Expression: expr, Statement: stmt}
}
func (n *EnhancedForStatement) Accept(v Visitor) { v.VisitEnhancedForStatement(n) }

type BreakStatement struct {
	base
	Label string // "" when absent
}

func NewBreakStatement(cst ctree.Node, label string) *BreakStatement {
	return &BreakStatement{base: newBase(BreakStatementKind, cst), Label: label}
}
func (n *BreakStatement) Accept(v Visitor) { v.VisitBreakStatement(n) }

type ContinueStatement struct {
	base
	Label string // "" when absent
}

func NewContinueStatement(cst ctree.Node, label string) *ContinueStatement {
	return &ContinueStatement{base: newBase(ContinueStatementKind, cst), Label: label}
}
func (n *ContinueStatement) Accept(v Visitor) { v.VisitContinueStatement(n) }

type ReturnStatement struct {
	base
	Expression Node // nilable
}

func NewReturnStatement(cst ctree.Node, expr Node) *ReturnStatement {
	return &ReturnStatement{base: newBase(ReturnStatementKind, cst), Expression: expr}
}
func (n *ReturnStatement) Accept(v Visitor) { v.VisitReturnStatement(n) }

type ThrowStatement struct {
	base
	Expression Node
}

func NewThrowStatement(cst ctree.Node, expr Node) *ThrowStatement {
	return &ThrowStatement{base: newBase(ThrowStatementKind, cst), Expression: expr}
}
func (n *ThrowStatement) Accept(v Visitor) { v.VisitThrowStatement(n) }

type SynchronizedStatement struct {
	base
	Expression Node
	Block      *Block
}

func NewSynchronizedStatement(cst ctree.Node, expr Node, block *Block) *SynchronizedStatement {
	return &SynchronizedStatement{base: newBase(SynchronizedStatementKind, cst), Expression: expr, Block: block}
}
func (n *SynchronizedStatement) Accept(v Visitor) { v.VisitSynchronizedStatement(n) }

// TryStatement has at least one of a non-empty Catches list or a Finally
// block (invariant iv in spec.md §3).
type TryStatement struct {
	base
	Resources []*Variable
	Block     *Block
	Catches   []*Catch
	Finally   *Block // nilable
}

func NewTryStatement(cst ctree.Node, resources []*Variable, block *Block, catches []*Catch, finally *Block) *TryStatement {
	return &TryStatement{base: newBase(TryStatementKind, cst), Resources: resources, Block: block, Catches: catches, Finally: finally}
}
func (n *TryStatement) Accept(v Visitor) { v.VisitTryStatement(n) }

type Catch struct {
	base
	Parameter *Variable
	Block     *Block
}

func NewCatch(cst ctree.Node, param *Variable, block *Block) *Catch {
	return &Catch{base: newBase(CatchKind, cst), Parameter: param, Block: block}
}
func (n *Catch) Accept(v Visitor) { v.VisitCatch(n) }
