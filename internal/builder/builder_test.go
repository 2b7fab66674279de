package builder

import (
	"testing"

	"github.com/cwbudde/go-javalint/internal/ast"
	"github.com/cwbudde/go-javalint/internal/ctree"
)

// sn is a terse constructor for fixture nodes: a ctree.Simple with line 1
// unless a case needs otherwise.
func sn(tag ctree.Tag, text string, children ...ctree.Node) *ctree.Simple {
	return ctree.NewSimple(tag, text, 1, children...)
}

func identifier(name string) *ctree.Simple {
	return sn(tagIdentifier, name)
}

// TestBuildPackageAndEmptyClass covers spec.md §8 scenario 1:
// `package p; class A {}`.
func TestBuildPackageAndEmptyClass(t *testing.T) {
	root := sn(tagCompilationUnit, "",
		sn(tagPackageDeclaration, "", sn(tagQualifiedIdentifier, "", identifier("p"))),
		sn(tagTypeDeclaration, "",
			sn(tagClassDecl, "A", identifier("A"), sn(tagClassBody, ""))),
	)

	cu, err := Build(root)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	pkgID, ok := cu.PackageName.(*ast.Identifier)
	if !ok || pkgID.Name != "p" {
		t.Fatalf("PackageName = %#v, want Identifier \"p\"", cu.PackageName)
	}
	if len(cu.Imports) != 0 {
		t.Fatalf("Imports = %v, want none", cu.Imports)
	}
	if len(cu.Types) != 1 {
		t.Fatalf("Types = %v, want exactly one", cu.Types)
	}

	class, ok := cu.Types[0].(*ast.TypeDecl)
	if !ok || !class.Is(ast.Class) {
		t.Fatalf("Types[0] = %#v, want a CLASS TypeDecl", cu.Types[0])
	}
	if class.Name != "A" {
		t.Errorf("class.Name = %q, want \"A\"", class.Name)
	}
	if len(class.Members) != 0 {
		t.Errorf("class.Members = %v, want none", class.Members)
	}
}

// TestClassTypeQualifiedSupertype covers `class A extends a.b.C {}`: the
// supertype's dotted chain must be lowered in full, not truncated to its
// first identifier.
func TestClassTypeQualifiedSupertype(t *testing.T) {
	classDecl := sn(tagClassDecl, "A",
		identifier("A"),
		sn(tagExtends, "", sn(tagClassType, "", identifier("a"), identifier("b"), identifier("C"))),
		sn(tagClassBody, ""),
	)

	b := &builder{}
	decl := b.classDecl(classDecl, ast.NewModifiers(nil, nil))

	outer, ok := decl.SuperClass.(*ast.MemberSelectExpr)
	if !ok || outer.Identifier != "C" {
		t.Fatalf("SuperClass = %#v, want MemberSelect(...,\"C\")", decl.SuperClass)
	}
	middle, ok := outer.Qualifier.(*ast.MemberSelectExpr)
	if !ok || middle.Identifier != "b" {
		t.Fatalf("SuperClass.Qualifier = %#v, want MemberSelect(...,\"b\")", outer.Qualifier)
	}
	id, ok := middle.Qualifier.(*ast.Identifier)
	if !ok || id.Name != "a" {
		t.Fatalf("SuperClass.Qualifier.Qualifier = %#v, want Identifier(\"a\")", middle.Qualifier)
	}
}

// TestDeclaratorExpansion covers scenario 2: `int a = 1, b[] = null;` as two
// field declarators sharing a base type and modifiers, each with its own
// array-dimension count and initializer.
func TestDeclaratorExpansion(t *testing.T) {
	typeNode := sn(tagType, "", sn(tagBasicType, "int"))
	declA := sn(tagVariableDeclarator, "",
		identifier("a"),
		sn(tagVariableInitializer, "", exprNode(intLiteralExpr("1"))),
	)
	declB := sn(tagVariableDeclarator, "",
		identifier("b"),
		sn(tagDim, "[]"),
		sn(tagVariableInitializer, "", exprNode(nullLiteralExpr())),
	)
	field := sn(tagFieldDeclaration, "", typeNode, sn(tagVariableDeclarators, "", declA, declB))

	b := &builder{}
	vars := b.fieldDeclaration(field, ast.NewModifiers(nil, nil))
	if len(vars) != 2 {
		t.Fatalf("fieldDeclaration produced %d Variables, want 2", len(vars))
	}

	va, ok := vars[0].(*ast.Variable)
	if !ok {
		t.Fatalf("vars[0] is %T, want *ast.Variable", vars[0])
	}
	if _, ok := va.Type.(*ast.PrimitiveType); !ok {
		t.Errorf("vars[0].Type = %#v, want PrimitiveType(int)", va.Type)
	}
	lit, ok := va.Initializer.(*ast.Literal)
	if !ok || !lit.Is(ast.IntLiteralKind) || lit.Text != "1" {
		t.Errorf("vars[0].Initializer = %#v, want int literal \"1\"", va.Initializer)
	}

	vb, ok := vars[1].(*ast.Variable)
	if !ok {
		t.Fatalf("vars[1] is %T, want *ast.Variable", vars[1])
	}
	arrType, ok := vb.Type.(*ast.ArrayType)
	if !ok {
		t.Fatalf("vars[1].Type = %#v, want ArrayType", vb.Type)
	}
	if _, ok := arrType.ElementType.(*ast.PrimitiveType); !ok {
		t.Errorf("vars[1].Type.ElementType = %#v, want PrimitiveType(int)", arrType.ElementType)
	}
	blit, ok := vb.Initializer.(*ast.Literal)
	if !ok || !blit.Is(ast.NullLiteralKind) {
		t.Errorf("vars[1].Initializer = %#v, want null literal", vb.Initializer)
	}
}

// TestMethodInvocationChain covers scenario 3: `a.b.c(1+2)` as a statement.
func TestMethodInvocationChain(t *testing.T) {
	arg := exprFromAdditive(additiveExpr(intLiteralExpr("1"), intLiteralExpr("2")))
	stmtExpr := methodCallStatementExpr("a", []string{"b", "c"}, arg)

	b := &builder{}
	node := b.expression(stmtExpr)

	call, ok := node.(*ast.MethodInvocationExpr)
	if !ok {
		t.Fatalf("expression() = %#v, want *ast.MethodInvocationExpr", node)
	}
	if len(call.Arguments) != 1 {
		t.Fatalf("call.Arguments = %v, want exactly one", call.Arguments)
	}
	if _, ok := call.Arguments[0].(*ast.Binary); !ok {
		t.Errorf("call.Arguments[0] = %#v, want *ast.Binary", call.Arguments[0])
	}

	outer, ok := call.MethodSelect.(*ast.MemberSelectExpr)
	if !ok || outer.Identifier != "c" {
		t.Fatalf("call.MethodSelect = %#v, want MemberSelect(...,\"c\")", call.MethodSelect)
	}
	inner, ok := outer.Qualifier.(*ast.MemberSelectExpr)
	if !ok || inner.Identifier != "b" {
		t.Fatalf("outer.Qualifier = %#v, want MemberSelect(...,\"b\")", outer.Qualifier)
	}
	id, ok := inner.Qualifier.(*ast.Identifier)
	if !ok || id.Name != "a" {
		t.Fatalf("inner.Qualifier = %#v, want Identifier(\"a\")", inner.Qualifier)
	}
}

// TestIfStatementDoubleParenthesizedCondition covers the builder side of
// scenario 4: `if ((true)) {} else ;`.
func TestIfStatementDoubleParenthesizedCondition(t *testing.T) {
	innerParen := parenExpr(boolLiteralExpr("true")) // the explicit `(true)`
	ifStmt := sn(tagStatement, "",
		sn(tagIfStatement, "if"),
		sn(tagParExpression, "", exprNode(innerParen)),
		sn(tagStatement, "", sn(tagBlock, "")),
		sn(tagStatement, ";"),
	)

	b := &builder{}
	node := b.statement(ifStmt)
	ifNode, ok := node.(*ast.IfStatement)
	if !ok {
		t.Fatalf("statement() = %#v, want *ast.IfStatement", node)
	}

	outer, ok := ifNode.Condition.(*ast.Parenthesized)
	if !ok {
		t.Fatalf("Condition = %#v, want *ast.Parenthesized", ifNode.Condition)
	}
	inner, ok := outer.Expression.(*ast.Parenthesized)
	if !ok {
		t.Fatalf("Condition.Expression = %#v, want another *ast.Parenthesized", outer.Expression)
	}
	lit, ok := inner.Expression.(*ast.Literal)
	if !ok || !lit.Is(ast.BooleanLiteralKind) || lit.Text != "true" {
		t.Fatalf("innermost expression = %#v, want boolean literal \"true\"", inner.Expression)
	}

	if _, ok := ifNode.Then.(*ast.Block); !ok {
		t.Errorf("Then = %#v, want *ast.Block", ifNode.Then)
	}
	if _, ok := ifNode.Else.(*ast.EmptyStatement); !ok {
		t.Errorf("Else = %#v, want *ast.EmptyStatement", ifNode.Else)
	}
}

// TestSwitchGrouping covers scenario 5:
// `switch(x){ case 1: case 2: f(); case 3: }`.
func TestSwitchGrouping(t *testing.T) {
	group1 := sn(tagSwitchBlockStatementGroup, "",
		sn(tagSwitchLabel, "", sn(tagCaseKeyword, "case"), constExprNode(intLiteralExpr("1"))),
		sn(tagSwitchLabel, "", sn(tagCaseKeyword, "case"), constExprNode(intLiteralExpr("2"))),
		sn(tagBlockStatement, "", fCallStatement("f")),
	)
	group2 := sn(tagSwitchBlockStatementGroup, "",
		sn(tagSwitchLabel, "", sn(tagCaseKeyword, "case"), constExprNode(intLiteralExpr("3"))),
	)
	switchNode := sn(tagStatement, "",
		sn(tagParExpression, "", exprNode(sn(tagPrimary, "", sn(tagQualifiedIdentifier, "", identifier("x"))))),
		group1, group2,
	)

	b := &builder{}
	node := b.switchStatement(switchNode)
	sw, ok := node.(*ast.SwitchStatement)
	if !ok {
		t.Fatalf("switchStatement() = %#v, want *ast.SwitchStatement", node)
	}
	if len(sw.Cases) != 2 {
		t.Fatalf("Cases = %v, want exactly 2 groups", sw.Cases)
	}

	first := sw.Cases[0]
	if len(first.Labels) != 2 {
		t.Fatalf("Cases[0].Labels = %v, want 2", first.Labels)
	}
	for i, want := range []string{"1", "2"} {
		lit, ok := first.Labels[i].Expression.(*ast.Literal)
		if !ok || lit.Text != want {
			t.Errorf("Cases[0].Labels[%d].Expression = %#v, want int literal %q", i, first.Labels[i].Expression, want)
		}
	}
	if len(first.Body) != 1 {
		t.Fatalf("Cases[0].Body = %v, want exactly one statement", first.Body)
	}
	if _, ok := first.Body[0].(*ast.ExpressionStatement); !ok {
		t.Errorf("Cases[0].Body[0] = %#v, want *ast.ExpressionStatement", first.Body[0])
	}

	second := sw.Cases[1]
	if len(second.Labels) != 1 {
		t.Fatalf("Cases[1].Labels = %v, want 1", second.Labels)
	}
	if lit, ok := second.Labels[0].Expression.(*ast.Literal); !ok || lit.Text != "3" {
		t.Errorf("Cases[1].Labels[0].Expression = %#v, want int literal \"3\"", second.Labels[0].Expression)
	}
	if len(second.Body) != 0 {
		t.Errorf("Cases[1].Body = %v, want none (trailing empty group)", second.Body)
	}
}

// --- small fixture helpers shared by the scenarios above ---
//
// The concrete grammar folds binary/unary precedence through a dozen node
// kinds between EXPRESSION and PRIMARY (conditional-or down to unary). These
// helpers build that chain mechanically so each scenario only has to name
// the PRIMARY it cares about.

func intLiteralExpr(text string) *ctree.Simple {
	return sn(tagPrimary, "", sn(tagLiteral, "", sn("INT_LITERAL", text)))
}

func boolLiteralExpr(text string) *ctree.Simple {
	return sn(tagPrimary, "", sn(tagLiteral, "", sn("BOOLEAN_LITERAL", text)))
}

func nullLiteralExpr() *ctree.Simple {
	return sn(tagPrimary, "", sn(tagLiteral, "", sn(tagNullKeyword, "null")))
}

// parenExpr wraps a PRIMARY in `( ... )`, producing another PRIMARY.
func parenExpr(content *ctree.Simple) *ctree.Simple {
	return sn(tagPrimary, "", sn(tagParExpression, "", exprNode(content)))
}

func unaryOf(primary *ctree.Simple, selectors ...*ctree.Simple) *ctree.Simple {
	children := make([]ctree.Node, 0, 1+len(selectors))
	children = append(children, primary)
	for _, s := range selectors {
		children = append(children, s)
	}
	return sn(tagUnaryExpression, "", children...)
}

func multiplicativeOf(u *ctree.Simple) *ctree.Simple {
	return sn(tagMultiplicativeExpression, "", u)
}

// assignmentChainFromAdditive wraps an ADDITIVE_EXPRESSION node up through
// every remaining precedence level to an ASSIGNMENT_EXPRESSION.
func assignmentChainFromAdditive(add *ctree.Simple) *ctree.Simple {
	s := sn(tagShiftExpression, "", add)
	r := sn(tagRelationalExpression, "", s)
	eq := sn(tagEqualityExpression, "", r)
	an := sn(tagAndExpression, "", eq)
	xo := sn(tagExclusiveOrExpression, "", an)
	io := sn(tagInclusiveOrExpression, "", xo)
	ca := sn(tagConditionalAndExpression, "", io)
	co := sn(tagConditionalOrExpression, "", ca)
	ce := sn(tagConditionalExpression, "", co)
	return sn(tagAssignmentExpression, "", ce)
}

func assignmentChainFromUnary(u *ctree.Simple) *ctree.Simple {
	return assignmentChainFromAdditive(sn(tagAdditiveExpression, "", multiplicativeOf(u)))
}

func assignmentChain(primary *ctree.Simple) *ctree.Simple {
	return assignmentChainFromUnary(unaryOf(primary))
}

// exprNode wraps a PRIMARY all the way up to an EXPRESSION, the shape the
// builder expects wherever it calls b.expression on a sub-tree.
func exprNode(primary *ctree.Simple) *ctree.Simple {
	return sn(tagExpression, "", assignmentChain(primary))
}

// exprFromAdditive wraps an already-built ADDITIVE_EXPRESSION (e.g. one with
// a real binary operator) up to an EXPRESSION.
func exprFromAdditive(add *ctree.Simple) *ctree.Simple {
	return sn(tagExpression, "", assignmentChainFromAdditive(add))
}

// additiveExpr builds `left + right` at the ADDITIVE_EXPRESSION level.
func additiveExpr(left, right *ctree.Simple) *ctree.Simple {
	return sn(tagAdditiveExpression, "",
		multiplicativeOf(unaryOf(left)),
		sn(tagOperator, "+"),
		multiplicativeOf(unaryOf(right)),
	)
}

// constExprNode wraps a PRIMARY up to a CONSTANT_EXPRESSION, the shape
// expected under a SWITCH_LABEL.
func constExprNode(primary *ctree.Simple) *ctree.Simple {
	return sn(tagConstantExpression, "", assignmentChain(primary))
}

// fCallStatement builds the STATEMENT `name();` (a bare no-argument call).
func fCallStatement(name string) *ctree.Simple {
	primary := sn(tagPrimary, "",
		sn(tagQualifiedIdentifier, "", identifier(name)),
		sn(tagIdentifierSuffix, "", sn(tagArguments, "")),
	)
	return sn(tagStatement, "", sn(tagStatementExpression, "", assignmentChain(primary)))
}

// methodCallStatementExpr builds `recv.sel0.sel1(...)` as a
// STATEMENT_EXPRESSION, attaching arg as the ARGUMENTS of the final
// selector.
func methodCallStatementExpr(recv string, selectors []string, arg *ctree.Simple) *ctree.Simple {
	primary := sn(tagPrimary, "", sn(tagQualifiedIdentifier, "", identifier(recv)))

	var selNodes []*ctree.Simple
	for i, sel := range selectors {
		if i == len(selectors)-1 {
			selNodes = append(selNodes, sn(tagSelector, "", identifier(sel), sn(tagArguments, "", arg)))
		} else {
			selNodes = append(selNodes, sn(tagSelector, "", identifier(sel)))
		}
	}

	return sn(tagStatementExpression, "", assignmentChainFromUnary(unaryOf(primary, selNodes...)))
}
