package builder

import (
	"github.com/cwbudde/go-javalint/internal/ast"
	"github.com/cwbudde/go-javalint/internal/ctree"
)

// blockStatements concatenates the statements of a BLOCK's BLOCK_STATEMENTS
// child; each block-statement is a statement, a local variable declaration
// (expanded into a list of *ast.Variable), or a nested class/enum
// declaration (empty modifiers), per spec.md §4.2.2.
func (b *builder) blockStatements(block ctree.Node) []ast.Node {
	if block == nil {
		return nil
	}
	bs := block.Child(tagBlockStatements)
	if bs == nil {
		return nil
	}
	var out []ast.Node
	for _, child := range bs.Children() {
		out = append(out, b.blockStatement(child)...)
	}
	return out
}

func (b *builder) blockStatement(n ctree.Node) []ast.Node {
	if n.Tag() == tagStatement {
		return []ast.Node{b.statement(n)}
	}
	if lv := n.Child(tagLocalVariableDeclarationStatement); lv != nil {
		vars := b.variableDeclarators(lv.Child(tagType), b.modifiers(lv.Child(tagModifiers)), lv.Child(tagVariableDeclarators))
		out := make([]ast.Node, len(vars))
		for i, v := range vars {
			out[i] = v
		}
		return out
	}
	if decl := b.typeDeclaration(n); decl != nil {
		return []ast.Node{decl}
	}
	if s := n.Child(tagStatement); s != nil {
		return []ast.Node{b.statement(s)}
	}
	panic(ast.NewMalformedAst("blockStatement", string(n.Tag())))
}

// statement dispatches on the single grammar child of a STATEMENT node.
func (b *builder) statement(n ctree.Node) ast.Node {
	switch {
	case n.Child(tagBlock) != nil:
		blk := n.Child(tagBlock)
		return ast.NewBlock(ast.BlockKind, blk, b.blockStatements(blk))
	case hasChild(n, tagColon) && n.Child(tagIdentifier) != nil:
		return ast.NewLabeledStatement(n, identifierText(n), b.statement(n.Child(tagStatement)))
	case n.Child(tagIfStatement) != nil:
		return b.ifStatement(n)
	case hasChild(n, tagAssertStatement):
		return b.assertStatement(n)
	case n.Child(tagSwitchStatement) != nil || hasChild(n, tagSwitchStatement):
		return b.switchStatement(n)
	case hasChild(n, tagWhileStatement) && n.Child(tagDoStatement) == nil:
		return ast.NewWhileStatement(n, b.expressionFromParExpr(n.Child(tagParExpression)), b.statement(n.Child(tagStatement)))
	case hasChild(n, tagDoStatement):
		return b.doStatement(n)
	case n.Child(tagForStatement) != nil:
		return b.forStatement(n.Child(tagForStatement))
	case hasChild(n, tagBreakStatement):
		return ast.NewBreakStatement(n, identifierText(n))
	case hasChild(n, tagContinueStatement):
		return ast.NewContinueStatement(n, identifierText(n))
	case hasChild(n, tagReturnStatement):
		var expr ast.Node
		if e := n.Child(tagExpression); e != nil {
			expr = b.expression(e)
		}
		return ast.NewReturnStatement(n, expr)
	case hasChild(n, tagThrowStatement):
		return ast.NewThrowStatement(n, b.expression(n.Child(tagExpression)))
	case hasChild(n, tagSynchronizedStatement):
		blk := n.Child(tagBlock)
		return ast.NewSynchronizedStatement(n, b.expressionFromParExpr(n.Child(tagParExpression)),
			ast.NewBlock(ast.BlockKind, blk, b.blockStatements(blk)))
	case n.Child(tagTryStatement) != nil || hasChild(n, tagTryStatement):
		return b.tryStatement(n)
	case n.Child(tagStatementExpression) != nil:
		return ast.NewExpressionStatement(n, b.expression(n.Child(tagStatementExpression)))
	case n.Tag() == tagColon || n.Text() == ";":
		return ast.NewEmptyStatement(n)
	default:
		panic(ast.NewMalformedAst("statement", string(n.Tag())))
	}
}

func (b *builder) expressionFromParExpr(n ctree.Node) ast.Node {
	if n == nil {
		panic(ast.NewMalformedAst("expressionFromParExpr", ""))
	}
	return ast.NewParenthesized(n, b.expression(n.Child(tagExpression)))
}

func (b *builder) ifStatement(n ctree.Node) ast.Node {
	cond := b.expressionFromParExpr(n.Child(tagParExpression))
	stmts := n.ChildrenOf(tagStatement)
	then := b.statement(stmts[0])
	var els ast.Node
	if len(stmts) > 1 {
		els = b.statement(stmts[1])
	}
	return ast.NewIfStatement(n, cond, then, els)
}

func (b *builder) assertStatement(n ctree.Node) ast.Node {
	exprs := n.ChildrenOf(tagExpression)
	if len(exprs) == 0 {
		panic(ast.NewMalformedAst("assertStatement", string(n.Tag())))
	}
	cond := b.expression(exprs[0])
	var detail ast.Node
	if len(exprs) > 1 {
		detail = b.expression(exprs[1])
	}
	return ast.NewAssertStatement(n, cond, detail)
}

func (b *builder) doStatement(n ctree.Node) ast.Node {
	stmt := b.statement(n.Child(tagStatement))
	cond := b.expressionFromParExpr(n.Child(tagParExpression))
	return ast.NewDoStatement(n, stmt, cond)
}

// switchStatement walks SWITCH_BLOCK_STATEMENT_GROUP children in order,
// accumulating pending CASE_LABELs until a group with a non-empty statement
// list is found, per spec.md §4.2.2's switch-lowering rule.
func (b *builder) switchStatement(n ctree.Node) ast.Node {
	expr := b.expressionFromParExpr(n.Child(tagParExpression))

	var cases []*ast.CaseGroup
	var pending []*ast.CaseLabel

	for _, group := range n.ChildrenOf(tagSwitchBlockStatementGroup) {
		for _, label := range group.ChildrenOf(tagSwitchLabel) {
			pending = append(pending, b.caseLabel(label))
		}
		bs := group.ChildrenOf(tagBlockStatement)
		if len(bs) == 0 {
			continue
		}
		var body []ast.Node
		for _, stmt := range bs {
			body = append(body, b.blockStatement(stmt)...)
		}
		cases = append(cases, ast.NewCaseGroup(group, pending, body))
		pending = nil
	}
	if len(pending) > 0 {
		cases = append(cases, ast.NewCaseGroup(n, pending, nil))
	}

	return ast.NewSwitchStatement(n, expr, cases)
}

func (b *builder) caseLabel(n ctree.Node) *ast.CaseLabel {
	if ce := n.Child(tagConstantExpression); ce != nil {
		return ast.NewCaseLabel(n, b.expression(ce))
	}
	return ast.NewCaseLabel(n, nil)
}

func (b *builder) forStatement(n ctree.Node) ast.Node {
	if fp := n.Child(tagFormalParameter); fp != nil {
		declID := fp.Child(tagVariableDeclaratorID)
		typ := b.formalParameterType(fp, declID)
		v := ast.NewVariable(fp, ast.NewModifiers(nil, nil), typ, declID.Text(), nil)
		expr := b.expression(n.Child(tagExpression))
		stmt := b.statement(n.Child(tagStatement))
		return ast.NewEnhancedForStatement(n, v, expr, stmt)
	}

	var init []ast.Node
	if fi := n.Child(tagForInit); fi != nil {
		if t := fi.Child(tagType); t != nil {
			// For-init modifiers are dropped, per spec.md's Open Questions.
			vars := b.variableDeclarators(t, ast.NewModifiers(nil, nil), fi.Child(tagVariableDeclarators))
			for _, v := range vars {
				init = append(init, v)
			}
		} else if sel := fi.Child(tagStatementExpressionList); sel != nil {
			for _, se := range sel.ChildrenOf(tagStatementExpression) {
				init = append(init, ast.NewExpressionStatement(se, b.expression(se)))
			}
		}
	}

	var cond ast.Node
	if e := n.Child(tagExpression); e != nil {
		cond = b.expression(e)
	}

	var update []ast.Node
	if fu := n.Child(tagForUpdate); fu != nil {
		if sel := fu.Child(tagStatementExpressionList); sel != nil {
			for _, se := range sel.ChildrenOf(tagStatementExpression) {
				update = append(update, ast.NewExpressionStatement(se, b.expression(se)))
			}
		}
	}

	return ast.NewForStatement(n, init, cond, update, b.statement(n.Child(tagStatement)))
}

// tryStatement descends into a TRY_WITH_RESOURCES_STATEMENT wrapper if
// present, lowers optional resources, each CATCH_CLAUSE, and the optional
// finally block, per spec.md §4.2.2.
func (b *builder) tryStatement(n ctree.Node) ast.Node {
	if wrap := n.Child(tagTryWithResourcesStatement); wrap != nil {
		n = wrap
	}

	var resources []*ast.Variable
	if rs := n.Child(tagResourceSpecification); rs != nil {
		for _, r := range rs.ChildrenOf(tagFormalParameter) {
			declID := r.Child(tagVariableDeclaratorID)
			typ := b.formalParameterType(r, declID)
			var init ast.Node
			if e := r.Child(tagExpression); e != nil {
				init = b.expression(e)
			}
			// Resource modifiers are dropped, per spec.md's Open Questions.
			resources = append(resources, ast.NewVariable(r, ast.NewModifiers(nil, nil), typ, declID.Text(), init))
		}
	}

	blocks := n.ChildrenOf(tagBlock)
	if len(blocks) == 0 {
		panic(ast.NewMalformedAst("tryStatement", string(n.Tag())))
	}
	mainBlock := ast.NewBlock(ast.BlockKind, blocks[0], b.blockStatements(blocks[0]))

	var catches []*ast.Catch
	for _, cc := range n.ChildrenOf(tagCatchClause) {
		catches = append(catches, b.catchClause(cc))
	}

	var finallyBlock *ast.Block
	if f := n.Child(tagFinally); f != nil {
		fb := f.Child(tagBlock)
		finallyBlock = ast.NewBlock(ast.BlockKind, fb, b.blockStatements(fb))
	}

	return ast.NewTryStatement(n, resources, mainBlock, catches, finallyBlock)
}

func (b *builder) catchClause(n ctree.Node) *ast.Catch {
	declID := n.Child(tagVariableDeclaratorID)
	// The grammar unions multi-catch types but this pass models a single
	// type only (spec.md Open Questions: "catch-clause multi-catch is not
	// handled"); take the first QUALIFIED_IDENTIFIER.
	qi := n.Child(tagQualifiedIdentifier)
	var typ ast.Node
	if qi != nil {
		typ = b.qualifiedIdentifier(qi)
	}
	// Catch-parameter modifiers are dropped, per spec.md's Open Questions.
	param := ast.NewVariable(n, ast.NewModifiers(nil, nil), typ, declID.Text(), nil)
	blk := n.Child(tagBlock)
	body := ast.NewBlock(ast.BlockKind, blk, b.blockStatements(blk))
	return ast.NewCatch(n, param, body)
}
