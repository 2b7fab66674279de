package ast

// Visitor exposes one method per AST category listed in spec.md §3, plus the
// auxiliary categories. A concrete check overrides any subset and typically
// calls the corresponding BaseVisitor method to continue descent.
type Visitor interface {
	VisitCompilationUnit(n *CompilationUnit)
	VisitImport(n *Import)
	VisitClass(n *TypeDecl)
	VisitInterface(n *TypeDecl)
	VisitEnum(n *TypeDecl)
	VisitAnnotationType(n *TypeDecl)
	VisitMethod(n *Method)
	VisitVariable(n *Variable)
	VisitEnumConstant(n *EnumConstant)
	VisitModifiers(n *Modifiers)

	VisitBlock(n *Block)
	VisitInitializer(n *Block)
	VisitEmptyStatement(n *EmptyStatement)
	VisitLabeledStatement(n *LabeledStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitIfStatement(n *IfStatement)
	VisitAssertStatement(n *AssertStatement)
	VisitSwitchStatement(n *SwitchStatement)
	VisitCaseGroup(n *CaseGroup)
	VisitCaseLabel(n *CaseLabel)
	VisitWhileStatement(n *WhileStatement)
	VisitDoStatement(n *DoStatement)
	VisitForStatement(n *ForStatement)
	VisitEnhancedForStatement(n *EnhancedForStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitThrowStatement(n *ThrowStatement)
	VisitSynchronizedStatement(n *SynchronizedStatement)
	VisitTryStatement(n *TryStatement)
	VisitCatch(n *Catch)

	VisitIdentifier(n *Identifier)
	VisitLiteral(n *Literal)
	VisitParenthesized(n *Parenthesized)
	VisitConditional(n *Conditional)
	VisitInstanceOf(n *InstanceOfExpr)
	VisitTypeCast(n *TypeCastExpr)
	VisitMethodInvocation(n *MethodInvocationExpr)
	VisitNewArray(n *NewArrayExpr)
	VisitNewClass(n *NewClass)
	VisitMemberSelect(n *MemberSelectExpr)
	VisitArrayAccess(n *ArrayAccessExpr)
	VisitBinary(n *Binary)
	VisitUnary(n *Unary)
	VisitAssignment(n *Assignment)

	// Kindless auxiliary categories (VisitImport and VisitModifiers above are
	// also in this group). Their BaseVisitor implementations are no-ops, per
	// spec.md §4.3.
	VisitPrimitiveType(n *PrimitiveType)
	VisitArrayType(n *ArrayType)
	VisitWildcardType(n *WildcardType)
}

// BaseVisitor is the default Visitor: every method descends into each
// structural child in the declaration order spec.md §3 gives for that
// variant, and into nothing else. Embed it and override individual methods
// to build a check; call the embedded method from an override to keep
// descending.
//
// Go has no virtual dispatch through embedding: a BaseVisitor method called
// via an embedded field only ever sees itself, never the outer type that
// embeds it, so naively recursing via the receiver would silently skip every
// override once recursion enters BaseVisitor's own code. Self closes that
// loop — a concrete check sets it to its own outer value once, at
// construction, and every recursive call below dispatches through Self
// instead of the embedded receiver, so overrides keep firing at every
// depth.
type BaseVisitor struct {
	Self Visitor
}

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func visitNode(v Visitor, n Node) {
	if n == nil {
		return
	}
	n.Accept(v)
}

func (b *BaseVisitor) VisitCompilationUnit(n *CompilationUnit) {
	visitNode(b.self(), n.PackageName)
	for _, imp := range n.Imports {
		imp.Accept(b.self())
	}
	for _, t := range n.Types {
		visitNode(b.self(), t)
	}
}

// VisitImport is a no-op: IMPORT is one of the kindless auxiliary categories
// (spec.md §4.3) whose default visit never descends.
func (b *BaseVisitor) VisitImport(n *Import) {}

func (b *BaseVisitor) visitTypeDecl(n *TypeDecl) {
	if n.Modifiers != nil {
		n.Modifiers.Accept(b.self())
	}
	visitNode(b.self(), n.SuperClass)
	for _, i := range n.SuperInterfaces {
		visitNode(b.self(), i)
	}
	for _, m := range n.Members {
		visitNode(b.self(), m)
	}
}

func (b *BaseVisitor) VisitClass(n *TypeDecl)          { b.visitTypeDecl(n) }
func (b *BaseVisitor) VisitInterface(n *TypeDecl)      { b.visitTypeDecl(n) }
func (b *BaseVisitor) VisitEnum(n *TypeDecl)           { b.visitTypeDecl(n) }
func (b *BaseVisitor) VisitAnnotationType(n *TypeDecl) { b.visitTypeDecl(n) }

func (b *BaseVisitor) VisitMethod(n *Method) {
	if n.Modifiers != nil {
		n.Modifiers.Accept(b.self())
	}
	visitNode(b.self(), n.ReturnType)
	for _, p := range n.Parameters {
		p.Accept(b.self())
	}
	if n.Body != nil {
		n.Body.Accept(b.self())
	}
	for _, t := range n.Throws {
		visitNode(b.self(), t)
	}
	visitNode(b.self(), n.DefaultValue)
}

func (b *BaseVisitor) VisitVariable(n *Variable) {
	if n.Modifiers != nil {
		n.Modifiers.Accept(b.self())
	}
	visitNode(b.self(), n.Type)
	visitNode(b.self(), n.Initializer)
}

func (b *BaseVisitor) VisitEnumConstant(n *EnumConstant) {
	visitNode(b.self(), n.Initializer)
}

func (b *BaseVisitor) VisitModifiers(n *Modifiers) {}

func (b *BaseVisitor) VisitBlock(n *Block) {
	for _, s := range n.Statements {
		visitNode(b.self(), s)
	}
}
func (b *BaseVisitor) VisitInitializer(n *Block) { b.VisitBlock(n) }

func (b *BaseVisitor) VisitEmptyStatement(n *EmptyStatement) {}

func (b *BaseVisitor) VisitLabeledStatement(n *LabeledStatement) {
	visitNode(b.self(), n.Statement)
}

func (b *BaseVisitor) VisitExpressionStatement(n *ExpressionStatement) {
	visitNode(b.self(), n.Expression)
}

func (b *BaseVisitor) VisitIfStatement(n *IfStatement) {
	visitNode(b.self(), n.Condition)
	visitNode(b.self(), n.Then)
	visitNode(b.self(), n.Else)
}

func (b *BaseVisitor) VisitAssertStatement(n *AssertStatement) {
	visitNode(b.self(), n.Condition)
	visitNode(b.self(), n.Detail)
}

func (b *BaseVisitor) VisitSwitchStatement(n *SwitchStatement) {
	visitNode(b.self(), n.Expression)
	for _, c := range n.Cases {
		c.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitCaseGroup(n *CaseGroup) {
	for _, l := range n.Labels {
		l.Accept(b.self())
	}
	for _, s := range n.Body {
		visitNode(b.self(), s)
	}
}

func (b *BaseVisitor) VisitCaseLabel(n *CaseLabel) {
	visitNode(b.self(), n.Expression)
}

func (b *BaseVisitor) VisitWhileStatement(n *WhileStatement) {
	visitNode(b.self(), n.Condition)
	visitNode(b.self(), n.Statement)
}

func (b *BaseVisitor) VisitDoStatement(n *DoStatement) {
	visitNode(b.self(), n.Statement)
	visitNode(b.self(), n.Condition)
}

func (b *BaseVisitor) VisitForStatement(n *ForStatement) {
	for _, s := range n.Init {
		visitNode(b.self(), s)
	}
	visitNode(b.self(), n.Condition)
	for _, s := range n.Update {
		visitNode(b.self(), s)
	}
	visitNode(b.self(), n.Statement)
}

func (b *BaseVisitor) VisitEnhancedForStatement(n *EnhancedForStatement) {
	if n.Variable != nil {
		n.Variable.Accept(b.self())
	}
	visitNode(b.self(), n.Expression)
	visitNode(b.self(), n.Statement)
}

func (b *BaseVisitor) VisitBreakStatement(n *BreakStatement)       {}
func (b *BaseVisitor) VisitContinueStatement(n *ContinueStatement) {}

func (b *BaseVisitor) VisitReturnStatement(n *ReturnStatement) {
	visitNode(b.self(), n.Expression)
}

func (b *BaseVisitor) VisitThrowStatement(n *ThrowStatement) {
	visitNode(b.self(), n.Expression)
}

func (b *BaseVisitor) VisitSynchronizedStatement(n *SynchronizedStatement) {
	visitNode(b.self(), n.Expression)
	if n.Block != nil {
		n.Block.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitTryStatement(n *TryStatement) {
	for _, r := range n.Resources {
		r.Accept(b.self())
	}
	if n.Block != nil {
		n.Block.Accept(b.self())
	}
	for _, c := range n.Catches {
		c.Accept(b.self())
	}
	if n.Finally != nil {
		n.Finally.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitCatch(n *Catch) {
	if n.Parameter != nil {
		n.Parameter.Accept(b.self())
	}
	if n.Block != nil {
		n.Block.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitIdentifier(n *Identifier) {}
func (b *BaseVisitor) VisitLiteral(n *Literal)       {}

func (b *BaseVisitor) VisitParenthesized(n *Parenthesized) {
	visitNode(b.self(), n.Expression)
}

func (b *BaseVisitor) VisitConditional(n *Conditional) {
	visitNode(b.self(), n.Condition)
	visitNode(b.self(), n.TrueExpr)
	visitNode(b.self(), n.FalseExpr)
}

func (b *BaseVisitor) VisitInstanceOf(n *InstanceOfExpr) {
	visitNode(b.self(), n.Expression)
	visitNode(b.self(), n.Type)
}

func (b *BaseVisitor) VisitTypeCast(n *TypeCastExpr) {
	visitNode(b.self(), n.Type)
	visitNode(b.self(), n.Expression)
}

func (b *BaseVisitor) VisitMethodInvocation(n *MethodInvocationExpr) {
	visitNode(b.self(), n.MethodSelect)
	for _, a := range n.Arguments {
		visitNode(b.self(), a)
	}
}

func (b *BaseVisitor) VisitNewArray(n *NewArrayExpr) {
	visitNode(b.self(), n.ElementType)
	for _, d := range n.Dimensions {
		visitNode(b.self(), d)
	}
	for _, e := range n.Initializer {
		visitNode(b.self(), e)
	}
}

func (b *BaseVisitor) VisitNewClass(n *NewClass) {
	visitNode(b.self(), n.Enclosing)
	visitNode(b.self(), n.Identifier)
	for _, a := range n.Arguments {
		visitNode(b.self(), a)
	}
	if n.ClassBody != nil {
		n.ClassBody.Accept(b.self())
	}
}

func (b *BaseVisitor) VisitMemberSelect(n *MemberSelectExpr) {
	visitNode(b.self(), n.Qualifier)
}

func (b *BaseVisitor) VisitArrayAccess(n *ArrayAccessExpr) {
	visitNode(b.self(), n.Expression)
	visitNode(b.self(), n.Index)
}

func (b *BaseVisitor) VisitBinary(n *Binary) {
	visitNode(b.self(), n.Left)
	visitNode(b.self(), n.Right)
}

func (b *BaseVisitor) VisitUnary(n *Unary) {
	visitNode(b.self(), n.Operand)
}

func (b *BaseVisitor) VisitAssignment(n *Assignment) {
	visitNode(b.self(), n.Variable)
	visitNode(b.self(), n.Expression)
}

func (b *BaseVisitor) VisitPrimitiveType(n *PrimitiveType) {}
func (b *BaseVisitor) VisitArrayType(n *ArrayType)         {}
func (b *BaseVisitor) VisitWildcardType(n *WildcardType)   {}
