package builder

import (
	"github.com/cwbudde/go-javalint/internal/ast"
	"github.com/cwbudde/go-javalint/internal/ctree"
	"github.com/cwbudde/go-javalint/internal/kinds"
)

// expression is the single entry point for lowering any expression-shaped
// concrete node, per spec.md §4.2.3. CONSTANT_EXPRESSION, STATEMENT_EXPRESSION,
// and EXPRESSION all unwrap to their ASSIGNMENT_EXPRESSION child (possibly via
// one more layer of wrapping); QUALIFIED_IDENTIFIER is accepted directly since
// the package-declaration caller hands one in without an EXPRESSION wrapper.
func (b *builder) expression(n ctree.Node) ast.Node {
	if n == nil {
		return nil
	}
	switch n.Tag() {
	case tagQualifiedIdentifier:
		return b.qualifiedIdentifier(n)
	case tagAssignmentExpression:
		return b.assignmentExpression(n)
	case tagConditionalExpression:
		return b.conditionalExpression(n)
	}
	if ae := n.Child(tagAssignmentExpression); ae != nil {
		return b.assignmentExpression(ae)
	}
	for _, wrapTag := range []ctree.Tag{tagExpression, tagConstantExpression, tagStatementExpression} {
		if inner := n.Child(wrapTag); inner != nil {
			return b.expression(inner)
		}
	}
	panic(ast.NewMalformedAst("expression", string(n.Tag())))
}

// assignmentExpression folds ASSIGNMENT_EXPRESSION right-associatively in
// steps of two: lhs op rhs, where rhs may itself be a nested assignment.
func (b *builder) assignmentExpression(n ctree.Node) ast.Node {
	var operands []ctree.Node
	var ops []ctree.Node
	for _, c := range n.Children() {
		if c.Tag() == tagAssignmentOperator {
			ops = append(ops, c)
		} else {
			operands = append(operands, c)
		}
	}
	if len(operands) == 0 {
		panic(ast.NewMalformedAst("assignmentExpression", string(n.Tag())))
	}

	result := b.assignOperand(operands[len(operands)-1])
	for i := len(ops) - 1; i >= 0; i-- {
		lhs := b.assignOperand(operands[i])
		kind, err := kinds.AssignmentKind(ops[i].Text())
		if err != nil {
			panic(err)
		}
		if kind != kinds.Assignment && !kinds.IsLValueKind(lhs.Kind()) {
			panic(ast.NewMalformedAst("assignmentExpression", string(ops[i].Tag())))
		}
		result = ast.NewAssignment(kind, ops[i], lhs, result)
	}
	return result
}

func (b *builder) assignOperand(n ctree.Node) ast.Node {
	switch n.Tag() {
	case tagConditionalExpression:
		return b.conditionalExpression(n)
	case tagAssignmentExpression:
		return b.assignmentExpression(n)
	default:
		return b.expression(n)
	}
}

// conditionalExpression folds CONDITIONAL_EXPRESSION right-associatively:
// the rightmost operand seeds the result, then every step combines (cond,
// true-branch, result) stepping backward. This same algorithm handles both a
// single ternary (3 parts) and a flattened a?b:c?d:e chain (5+ parts).
func (b *builder) conditionalExpression(n ctree.Node) ast.Node {
	parts := nonTokenChildren(n, tagQuestion, tagColon)
	if len(parts) == 0 {
		panic(ast.NewMalformedAst("conditionalExpression", string(n.Tag())))
	}
	if len(parts) == 1 {
		return b.condPart(parts[0])
	}

	result := b.condPart(parts[len(parts)-1])
	for i := len(parts) - 2; i >= 1; i -= 2 {
		trueExpr := b.condPart(parts[i])
		cond := b.condPart(parts[i-1])
		result = ast.NewConditional(n, cond, trueExpr, result)
	}
	return result
}

func (b *builder) condPart(n ctree.Node) ast.Node {
	if n.Tag() == tagConditionalOrExpression {
		return b.conditionalOrExpression(n)
	}
	return b.expression(n)
}

func nonTokenChildren(n ctree.Node, skip ...ctree.Tag) []ctree.Node {
	var out []ctree.Node
	for _, c := range n.Children() {
		keep := true
		for _, s := range skip {
			if c.Tag() == s {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, c)
		}
	}
	return out
}

// foldLeftBinary builds a left-associative Binary tree from a sequence of
// childTag operands interleaved with OPERATOR tokens, per spec.md §4.2.3's
// binary-family folding rule.
func (b *builder) foldLeftBinary(n ctree.Node, childTag ctree.Tag, next func(ctree.Node) ast.Node) ast.Node {
	operands := n.ChildrenOf(childTag)
	if len(operands) == 0 {
		panic(ast.NewMalformedAst("binaryExpression", string(n.Tag())))
	}
	result := next(operands[0])
	for i, opNode := range n.ChildrenOf(tagOperator) {
		kind, err := kinds.BinaryKind(opNode.Text())
		if err != nil {
			panic(err)
		}
		result = ast.NewBinary(kind, opNode, result, next(operands[i+1]))
	}
	return result
}

func (b *builder) conditionalOrExpression(n ctree.Node) ast.Node {
	return b.foldLeftBinary(n, tagConditionalAndExpression, b.conditionalAndExpression)
}

func (b *builder) conditionalAndExpression(n ctree.Node) ast.Node {
	return b.foldLeftBinary(n, tagInclusiveOrExpression, b.inclusiveOrExpression)
}

func (b *builder) inclusiveOrExpression(n ctree.Node) ast.Node {
	return b.foldLeftBinary(n, tagExclusiveOrExpression, b.exclusiveOrExpression)
}

func (b *builder) exclusiveOrExpression(n ctree.Node) ast.Node {
	return b.foldLeftBinary(n, tagAndExpression, b.andExpression)
}

func (b *builder) andExpression(n ctree.Node) ast.Node {
	return b.foldLeftBinary(n, tagEqualityExpression, b.equalityExpression)
}

func (b *builder) equalityExpression(n ctree.Node) ast.Node {
	return b.foldLeftBinary(n, tagRelationalExpression, b.relationalExpression)
}

// relationalExpression walks its children left-to-right since, unlike the
// other binary families, it interleaves an `instanceof REFERENCE_TYPE` leaf
// case among the ordinary comparison operators (spec.md §4.2.3's
// non-chainable instanceof special case).
func (b *builder) relationalExpression(n ctree.Node) ast.Node {
	children := n.Children()
	var result ast.Node
	i := 0
	for i < len(children) {
		c := children[i]
		switch {
		case c.Tag() == tagShiftExpression:
			result = b.shiftExpression(c)
			i++
		case c.Tag() == tagInstanceofKeyword:
			i++
			typ := b.referenceType(children[i])
			result = ast.NewInstanceOf(c, result, typ)
			i++
		case c.Tag() == tagOperator:
			kind, err := kinds.BinaryKind(c.Text())
			if err != nil {
				panic(err)
			}
			i++
			rhs := b.shiftExpression(children[i])
			result = ast.NewBinary(kind, c, result, rhs)
			i++
		default:
			panic(ast.NewMalformedAst("relationalExpression", string(c.Tag())))
		}
	}
	if result == nil {
		panic(ast.NewMalformedAst("relationalExpression", string(n.Tag())))
	}
	return result
}

func (b *builder) referenceType(n ctree.Node) ast.Node {
	if n.Tag() == tagReferenceType {
		dims := len(n.ChildrenOf(tagDim))
		if ct := n.Child(tagClassType); ct != nil {
			return applyDim(b.classType(ct), dims, n)
		}
		if bt := n.Child(tagBasicType); bt != nil {
			return applyDim(ast.NewPrimitiveType(bt, bt.Text()), dims, n)
		}
	}
	return b.typeNode(n)
}

func (b *builder) shiftExpression(n ctree.Node) ast.Node {
	return b.foldLeftBinary(n, tagAdditiveExpression, b.additiveExpression)
}

func (b *builder) additiveExpression(n ctree.Node) ast.Node {
	return b.foldLeftBinary(n, tagMultiplicativeExpression, b.multiplicativeExpression)
}

func (b *builder) multiplicativeExpression(n ctree.Node) ast.Node {
	return b.foldLeftBinary(n, tagUnaryExpression, b.unaryExpression)
}

// unaryExpression handles a parenthesised-TYPE cast, a prefix operator, or
// falls through to a primary with its selector chain and optional trailing
// postfix operator, per spec.md §4.2.3.
func (b *builder) unaryExpression(n ctree.Node) ast.Node {
	if prefix := n.Child(tagPrefixOp); prefix != nil {
		kind, err := kinds.PrefixKind(prefix.Text())
		if err != nil {
			panic(err)
		}
		return ast.NewUnary(kind, n, b.unaryExpression(n.Child(tagUnaryExpression)))
	}
	if typ := n.Child(tagType); typ != nil {
		return ast.NewTypeCast(n, b.typeNode(typ), b.unaryExpression(n.Child(tagUnaryExpression)))
	}

	primaryNode := n.Child(tagPrimary)
	if primaryNode == nil {
		panic(ast.NewMalformedAst("unaryExpression", string(n.Tag())))
	}
	result := b.primary(primaryNode)
	for _, sel := range n.ChildrenOf(tagSelector) {
		result = b.selector(result, sel)
	}
	if post := n.Child(tagPostfixOp); post != nil {
		kind, err := kinds.PostfixKind(post.Text())
		if err != nil {
			panic(err)
		}
		result = ast.NewUnary(kind, post, result)
	}
	return result
}

// primary dispatches PRIMARY by its first meaningful child's tag, per
// spec.md §4.2.3's primary-lowering table.
func (b *builder) primary(n ctree.Node) ast.Node {
	switch {
	case n.Child(tagParExpression) != nil:
		return b.expressionFromParExpr(n.Child(tagParExpression))

	case hasChild(n, tagThisKeyword):
		base := ast.NewIdentifier(n, "this")
		if args := n.Child(tagArguments); args != nil {
			return ast.NewMethodInvocation(n, base, b.arguments(args))
		}
		if suf := n.Child(tagIdentifierSuffix); suf != nil {
			return b.identifierSuffix(base, suf)
		}
		return base

	case hasChild(n, tagSuperKeyword):
		base := ast.NewIdentifier(n, "super")
		if suf := n.Child(tagSuperSuffix); suf != nil {
			return b.superSuffix(base, suf)
		}
		return base

	case n.Child(tagLiteral) != nil:
		return b.literal(n.Child(tagLiteral))

	case hasChild(n, tagNewKeyword):
		return b.creator(n.Child(tagCreator))

	case n.Child(tagQualifiedIdentifier) != nil:
		result := b.qualifiedIdentifier(n.Child(tagQualifiedIdentifier))
		if suf := n.Child(tagIdentifierSuffix); suf != nil {
			return b.identifierSuffix(result, suf)
		}
		return result

	case n.Child(tagBasicType) != nil:
		bt := n.Child(tagBasicType)
		dims := len(n.ChildrenOf(tagDim))
		typ := applyDim(ast.NewPrimitiveType(bt, bt.Text()), dims, n)
		return ast.NewMemberSelect(n, typ, "class")

	case hasChild(n, tagVoidKeyword):
		typ := ast.NewPrimitiveType(n.Child(tagVoidKeyword), "void")
		return ast.NewMemberSelect(n, typ, "class")

	default:
		panic(ast.NewMalformedAst("primary", string(n.Tag())))
	}
}

func (b *builder) literal(n ctree.Node) ast.Node {
	if hasChild(n, tagNullKeyword) {
		return ast.NewNullLiteral(n, "null")
	}
	for _, c := range n.Children() {
		kind, err := kinds.LiteralKind(string(c.Tag()))
		if err != nil {
			continue
		}
		switch kind {
		case kinds.IntLiteral:
			return ast.NewIntLiteral(c, c.Text())
		case kinds.LongLiteral:
			return ast.NewLongLiteral(c, c.Text())
		case kinds.FloatLiteral:
			return ast.NewFloatLiteral(c, c.Text())
		case kinds.DoubleLiteral:
			return ast.NewDoubleLiteral(c, c.Text())
		case kinds.BooleanLiteral:
			return ast.NewBooleanLiteral(c, c.Text())
		case kinds.CharLiteral:
			return ast.NewCharLiteral(c, c.Text())
		case kinds.StringLiteral:
			return ast.NewStringLiteral(c, c.Text())
		}
	}
	panic(ast.NewMalformedAst("literal", string(n.Tag())))
}

// identifierSuffix dispatches an IDENTIFIER_SUFFIX by its shape: array
// index/class-literal, ARGUMENTS (method invocation), or one of the
// dot-prefixed forms, per spec.md §4.2.3.
func (b *builder) identifierSuffix(base ast.Node, n ctree.Node) ast.Node {
	if args := n.Child(tagArguments); args != nil {
		return ast.NewMethodInvocation(n, base, b.arguments(args))
	}
	if dims := n.ChildrenOf(tagDim2); len(dims) > 0 {
		typ := applyDim(base, len(dims), n)
		return ast.NewMemberSelect(n, typ, "class")
	}
	if idx := n.Child(tagExpression); idx != nil {
		return ast.NewArrayAccess(n, base, b.expression(idx))
	}
	if hasChild(n, tagClassKeyword) {
		return ast.NewMemberSelect(n, base, "class")
	}
	if hasChild(n, tagThisKeyword) {
		return ast.NewMemberSelect(n, base, "this")
	}
	if suf := n.Child(tagSuperSuffix); suf != nil {
		return b.superSuffix(base, suf)
	}
	if inner := n.Child(tagInnerCreator); inner != nil {
		return b.innerCreator(base, inner)
	}
	if eg := n.Child(tagExplicitGenericInvocation); eg != nil {
		return b.explicitGenericInvocation(base, eg)
	}
	panic(ast.NewMalformedAst("identifierSuffix", string(n.Tag())))
}

// selector applies one SELECTOR left-to-right onto an already-lowered
// expression, per spec.md §4.2.3.
func (b *builder) selector(base ast.Node, n ctree.Node) ast.Node {
	if idx := n.Child(tagExpression); idx != nil {
		return ast.NewArrayAccess(n, base, b.expression(idx))
	}
	if hasChild(n, tagThisKeyword) {
		return ast.NewMemberSelect(n, base, "this")
	}
	if suf := n.Child(tagSuperSuffix); suf != nil {
		return b.superSuffix(ast.NewMemberSelect(n, base, "super"), suf)
	}
	if eg := n.Child(tagExplicitGenericInvocation); eg != nil {
		return b.explicitGenericInvocation(base, eg)
	}
	if id := n.Child(tagIdentifier); id != nil {
		member := ast.NewMemberSelect(n, base, id.Text())
		if args := n.Child(tagArguments); args != nil {
			return ast.NewMethodInvocation(n, member, b.arguments(args))
		}
		return member
	}
	panic(ast.NewMalformedAst("selector", string(n.Tag())))
}

// explicitGenericInvocation drops the `.<T, U>` type-argument list (type
// erasure is out of scope per spec.md's non-goals) and lowers the
// invocation or inner-creator it prefixes.
func (b *builder) explicitGenericInvocation(base ast.Node, n ctree.Node) ast.Node {
	if inner := n.Child(tagInnerCreator); inner != nil {
		return b.innerCreator(base, inner)
	}
	if id := n.Child(tagIdentifier); id != nil {
		member := ast.NewMemberSelect(n, base, id.Text())
		return ast.NewMethodInvocation(n, member, b.arguments(n.Child(tagArguments)))
	}
	if hasChild(n, tagThisKeyword) {
		member := ast.NewMemberSelect(n, base, "this")
		return ast.NewMethodInvocation(n, member, b.arguments(n.Child(tagArguments)))
	}
	if hasChild(n, tagSuperKeyword) {
		if suf := n.Child(tagSuperSuffix); suf != nil {
			return b.superSuffix(ast.NewMemberSelect(n, base, "super"), suf)
		}
	}
	panic(ast.NewMalformedAst("explicitGenericInvocation", string(n.Tag())))
}

// superSuffix: with ARGUMENTS it is a MethodInvocation (optionally through
// a named member); without, a plain MemberSelect, per spec.md §4.2.3.
func (b *builder) superSuffix(base ast.Node, n ctree.Node) ast.Node {
	if args := n.Child(tagArguments); args != nil {
		methodSelect := base
		if id := n.Child(tagIdentifier); id != nil {
			methodSelect = ast.NewMemberSelect(n, base, id.Text())
		}
		return ast.NewMethodInvocation(n, methodSelect, b.arguments(args))
	}
	if id := n.Child(tagIdentifier); id != nil {
		return ast.NewMemberSelect(n, base, id.Text())
	}
	panic(ast.NewMalformedAst("superSuffix", string(n.Tag())))
}

func (b *builder) innerCreator(enclosing ast.Node, n ctree.Node) ast.Node {
	id := ast.NewIdentifier(n, identifierText(n))
	rest := n.Child(tagClassCreatorRest)
	if rest == nil {
		panic(ast.NewMalformedAst("innerCreator", string(n.Tag())))
	}
	return b.classCreatorRest(enclosing, id, rest)
}

// creator lowers a CREATOR: either a class instantiation or an array
// creation, distinguished by which rest production it carries.
func (b *builder) creator(n ctree.Node) ast.Node {
	if n == nil {
		panic(ast.NewMalformedAst("creator", ""))
	}
	if rest := n.Child(tagArrayCreatorRest); rest != nil {
		var elemType ast.Node
		if bt := n.Child(tagBasicType); bt != nil {
			elemType = ast.NewPrimitiveType(bt, bt.Text())
		} else if ct := n.Child(tagClassType); ct != nil {
			elemType = b.classType(ct)
		}
		return b.arrayCreatorRest(elemType, rest)
	}
	if ct := n.Child(tagClassType); ct != nil {
		rest := n.Child(tagClassCreatorRest)
		if rest == nil {
			panic(ast.NewMalformedAst("creator", string(n.Tag())))
		}
		return b.classCreatorRest(nil, b.classType(ct), rest)
	}
	panic(ast.NewMalformedAst("creator", string(n.Tag())))
}

// classCreatorRest produces a NewClass with the supplied (possibly nil)
// enclosing expression, lowered arguments, and optional inline class body.
func (b *builder) classCreatorRest(enclosing, id ast.Node, rest ctree.Node) ast.Node {
	args := b.arguments(rest.Child(tagArguments))

	var body *ast.TypeDecl
	if cb := rest.Child(tagClassBody); cb != nil {
		members := b.classBody(cb)
		body = ast.NewTypeDecl(ast.Class, cb, ast.NewModifiers(nil, nil), "", nil, nil, members)
	}
	return ast.NewNewClass(rest, enclosing, id, args, body)
}

// arrayCreatorRest produces a NewArray: either from an ARRAY_INITIALIZER, or
// from one required dimension expression plus any explicit DIM_EXPRs, per
// spec.md §4.2.3.
func (b *builder) arrayCreatorRest(elemType ast.Node, rest ctree.Node) ast.Node {
	if ai := rest.Child(tagArrayInitializer); ai != nil {
		var elems []ast.Node
		for _, vi := range ai.ChildrenOf(tagVariableInitializer) {
			elems = append(elems, b.variableInitializer(vi))
		}
		return ast.NewNewArray(rest, elemType, nil, elems)
	}

	var dims []ast.Node
	if e := rest.Child(tagExpression); e != nil {
		dims = append(dims, b.expression(e))
	}
	for _, d := range rest.ChildrenOf(tagDimExpr) {
		if e := d.Child(tagExpression); e != nil {
			dims = append(dims, b.expression(e))
		}
	}
	if len(dims) == 0 {
		panic(ast.NewMalformedAst("arrayCreatorRest", string(rest.Tag())))
	}
	return ast.NewNewArray(rest, elemType, dims, nil)
}

// arguments lowers each EXPRESSION child of an ARGUMENTS node in order.
func (b *builder) arguments(n ctree.Node) []ast.Node {
	if n == nil {
		return nil
	}
	var out []ast.Node
	for _, e := range n.ChildrenOf(tagExpression) {
		out = append(out, b.expression(e))
	}
	return out
}
