package ast

import (
	"fmt"
	"strings"
)

// Dumper renders an AST as an indented text tree, one node per line,
// mirroring the teacher's bytecode Disassembler: a writer-driven walk that
// prints a header for the current element before descending into its
// children. Used to produce deterministic golden-snapshot text for builder
// output; never used for diagnostics (see internal/errors for that).
type Dumper struct {
	BaseVisitor
	sb    strings.Builder
	depth int
}

// NewDumper returns a Dumper ready to walk one tree. Dump wraps this for the
// common case of dumping a single root node to a string.
func NewDumper() *Dumper {
	d := &Dumper{}
	d.Self = d
	return d
}

// Dump renders n and its descendants as indented text. A nil n renders as
// the empty string.
func Dump(n Node) string {
	if n == nil {
		return ""
	}
	d := NewDumper()
	n.Accept(d)
	return d.sb.String()
}

func (d *Dumper) emit(format string, args ...any) {
	d.sb.WriteString(strings.Repeat("  ", d.depth))
	fmt.Fprintf(&d.sb, format, args...)
	d.sb.WriteString("\n")
}

func (d *Dumper) descend(f func()) {
	d.depth++
	f()
	d.depth--
}

func (d *Dumper) VisitCompilationUnit(n *CompilationUnit) {
	d.emit("CompilationUnit")
	d.descend(func() { d.BaseVisitor.VisitCompilationUnit(n) })
}

func (d *Dumper) VisitImport(n *Import) {
	d.emit("Import static=%v", n.IsStatic)
}

func (d *Dumper) visitTypeDecl(label string, n *TypeDecl) {
	d.emit("%s %s", label, n.Name)
	d.descend(func() {
		if n.Modifiers != nil {
			n.Modifiers.Accept(d.self())
		}
		visitNode(d.self(), n.SuperClass)
		for _, i := range n.SuperInterfaces {
			visitNode(d.self(), i)
		}
		for _, m := range n.Members {
			visitNode(d.self(), m)
		}
	})
}

func (d *Dumper) VisitClass(n *TypeDecl)          { d.visitTypeDecl("Class", n) }
func (d *Dumper) VisitInterface(n *TypeDecl)      { d.visitTypeDecl("Interface", n) }
func (d *Dumper) VisitEnum(n *TypeDecl)           { d.visitTypeDecl("Enum", n) }
func (d *Dumper) VisitAnnotationType(n *TypeDecl) { d.visitTypeDecl("AnnotationType", n) }

func (d *Dumper) VisitMethod(n *Method) {
	d.emit("Method %s constructor=%v", n.Name, n.IsConstructor())
	d.descend(func() { d.BaseVisitor.VisitMethod(n) })
}

func (d *Dumper) VisitVariable(n *Variable) {
	d.emit("Variable %s", n.Name)
	d.descend(func() { d.BaseVisitor.VisitVariable(n) })
}

func (d *Dumper) VisitEnumConstant(n *EnumConstant) {
	d.emit("EnumConstant %s", n.Name)
	d.descend(func() { d.BaseVisitor.VisitEnumConstant(n) })
}

func (d *Dumper) VisitModifiers(n *Modifiers) {
	d.emit("Modifiers %v", n.Flags)
}

func (d *Dumper) VisitBlock(n *Block) {
	d.emit("Block")
	d.descend(func() { d.BaseVisitor.VisitBlock(n) })
}

func (d *Dumper) VisitInitializer(n *Block) {
	d.emit("Initializer")
	d.descend(func() { d.BaseVisitor.VisitBlock(n) })
}

func (d *Dumper) VisitIfStatement(n *IfStatement) {
	d.emit("If")
	d.descend(func() { d.BaseVisitor.VisitIfStatement(n) })
}

func (d *Dumper) VisitSwitchStatement(n *SwitchStatement) {
	d.emit("Switch")
	d.descend(func() { d.BaseVisitor.VisitSwitchStatement(n) })
}

func (d *Dumper) VisitCaseGroup(n *CaseGroup) {
	d.emit("CaseGroup")
	d.descend(func() { d.BaseVisitor.VisitCaseGroup(n) })
}

func (d *Dumper) VisitCaseLabel(n *CaseLabel) {
	d.emit("CaseLabel default=%v", n.IsDefault())
	d.descend(func() { d.BaseVisitor.VisitCaseLabel(n) })
}

func (d *Dumper) VisitWhileStatement(n *WhileStatement) {
	d.emit("While")
	d.descend(func() { d.BaseVisitor.VisitWhileStatement(n) })
}

func (d *Dumper) VisitForStatement(n *ForStatement) {
	d.emit("For")
	d.descend(func() { d.BaseVisitor.VisitForStatement(n) })
}

func (d *Dumper) VisitExpressionStatement(n *ExpressionStatement) {
	d.emit("ExpressionStatement")
	d.descend(func() { d.BaseVisitor.VisitExpressionStatement(n) })
}

func (d *Dumper) VisitReturnStatement(n *ReturnStatement) {
	d.emit("Return")
	d.descend(func() { d.BaseVisitor.VisitReturnStatement(n) })
}

func (d *Dumper) VisitIdentifier(n *Identifier) {
	d.emit("Identifier %s", n.Name)
}

func (d *Dumper) VisitLiteral(n *Literal) {
	d.emit("Literal(%s) %s", n.Kind(), n.Text)
}

func (d *Dumper) VisitMethodInvocation(n *MethodInvocationExpr) {
	d.emit("MethodInvocation")
	d.descend(func() { d.BaseVisitor.VisitMethodInvocation(n) })
}

func (d *Dumper) VisitMemberSelect(n *MemberSelectExpr) {
	d.emit("MemberSelect .%s", n.Identifier)
	d.descend(func() { d.BaseVisitor.VisitMemberSelect(n) })
}

func (d *Dumper) VisitBinary(n *Binary) {
	d.emit("Binary %s", n.Kind())
	d.descend(func() { d.BaseVisitor.VisitBinary(n) })
}

func (d *Dumper) VisitUnary(n *Unary) {
	d.emit("Unary %s", n.Kind())
	d.descend(func() { d.BaseVisitor.VisitUnary(n) })
}

func (d *Dumper) VisitAssignment(n *Assignment) {
	d.emit("Assignment %s", n.Kind())
	d.descend(func() { d.BaseVisitor.VisitAssignment(n) })
}

func (d *Dumper) VisitParenthesized(n *Parenthesized) {
	d.emit("Parenthesized")
	d.descend(func() { d.BaseVisitor.VisitParenthesized(n) })
}

func (d *Dumper) VisitPrimitiveType(n *PrimitiveType) {
	d.emit("PrimitiveType %s", n.Name)
}

func (d *Dumper) VisitArrayType(n *ArrayType) {
	d.emit("ArrayType")
	d.descend(func() { visitNode(d.self(), n.ElementType) })
}
