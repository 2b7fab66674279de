package builder

import (
	"github.com/cwbudde/go-javalint/internal/ast"
	"github.com/cwbudde/go-javalint/internal/ctree"
	"github.com/cwbudde/go-javalint/internal/kinds"
)

// typeDeclaration lowers a TYPE_DECLARATION child of a compilation unit or
// class body. It returns nil for a stray semicolon (a TYPE_DECLARATION with
// none of the four declaration-kind children), per spec.md §4.2.1.
func (b *builder) typeDeclaration(n ctree.Node) ast.Node {
	mods := b.modifiers(n.Child(tagModifiers))

	switch {
	case n.Child(tagClassDecl) != nil:
		return b.classDecl(n.Child(tagClassDecl), mods)
	case n.Child(tagInterfaceDecl) != nil:
		return b.interfaceDecl(n.Child(tagInterfaceDecl), mods)
	case n.Child(tagEnumDecl) != nil:
		return b.enumDecl(n.Child(tagEnumDecl), mods)
	case n.Child(tagAnnotationTypeDecl) != nil:
		return b.annotationTypeDecl(n.Child(tagAnnotationTypeDecl), mods)
	default:
		return nil
	}
}

func (b *builder) modifiers(n ctree.Node) *ast.Modifiers {
	if n == nil {
		return ast.NewModifiers(nil, nil)
	}
	var flags []ast.Modifier
	for _, c := range n.Children() {
		if m, ok := kinds.ModifierKind(string(c.Tag())); ok {
			flags = append(flags, m)
		}
	}
	return ast.NewModifiers(n, flags)
}

func (b *builder) classDecl(n ctree.Node, mods *ast.Modifiers) *ast.TypeDecl {
	name := identifierText(n)

	var super ast.Node
	if ext := n.Child(tagExtends); ext != nil {
		if ct := ext.Child(tagClassType); ct != nil {
			super = b.classType(ct)
		}
	}

	var ifaces []ast.Node
	if impl := n.Child(tagImplements); impl != nil {
		ifaces = b.classTypeList(impl.Child(tagClassTypeList))
	}

	members := b.classBody(n.Child(tagClassBody))
	return ast.NewTypeDecl(ast.Class, n, mods, name, super, ifaces, members)
}

func (b *builder) interfaceDecl(n ctree.Node, mods *ast.Modifiers) *ast.TypeDecl {
	name := identifierText(n)

	var ifaces []ast.Node
	if ext := n.Child(tagExtends); ext != nil {
		ifaces = b.classTypeList(ext.Child(tagClassTypeList))
	}

	members := b.interfaceMemberList(n.Child(tagInterfaceBody))
	return ast.NewTypeDecl(ast.Interface, n, mods, name, nil, ifaces, members)
}

func (b *builder) enumDecl(n ctree.Node, mods *ast.Modifiers) *ast.TypeDecl {
	name := identifierText(n)

	var ifaces []ast.Node
	if impl := n.Child(tagImplements); impl != nil {
		ifaces = b.classTypeList(impl.Child(tagClassTypeList))
	}

	var members []ast.Node
	if consts := n.Child(tagEnumConstants); consts != nil {
		for _, ec := range consts.ChildrenOf(tagEnumConstant) {
			members = append(members, b.enumConstant(ec, name))
		}
	}
	if decls := n.Child(tagEnumBodyDeclarations); decls != nil {
		members = append(members, b.classBody(decls)...)
	}

	return ast.NewTypeDecl(ast.Enum, n, mods, name, nil, ifaces, members)
}

// enumConstant lowers a single ENUM_CONSTANT entry; its initializer is
// synthesised as a NewClass wrapping the constant's optional arguments and
// optional inline class body, per spec.md §4.2.1.
func (b *builder) enumConstant(n ctree.Node, enumName string) *ast.EnumConstant {
	name := identifierText(n)

	var args []ast.Node
	if a := n.Child(tagArguments); a != nil {
		args = b.arguments(a)
	}

	var body *ast.TypeDecl
	if cb := n.Child(tagClassBody); cb != nil {
		members := b.classBody(cb)
		body = ast.NewTypeDecl(ast.Class, cb, ast.NewModifiers(nil, nil), "", nil, nil, members)
	}

	enumType := ast.NewIdentifier(n, enumName)
	newClass := ast.NewNewClass(n, nil, enumType, args, body)
	return ast.NewEnumConstant(n, name, newClass)
}

func (b *builder) annotationTypeDecl(n ctree.Node, mods *ast.Modifiers) *ast.TypeDecl {
	name := identifierText(n)

	var members []ast.Node
	for _, ed := range n.ChildrenOf(tagAnnotationElementDecl) {
		members = append(members, b.annotationElementDecl(ed))
	}

	return ast.NewTypeDecl(ast.AnnotationType, n, mods, name, nil, nil, members)
}

func (b *builder) annotationElementDecl(n ctree.Node) ast.Node {
	rest := n.Child(tagAnnotationTypeElementRest)
	if rest != nil && rest.Child(tagAnnotationMethodRest) != nil {
		typ := b.typeNode(n.Child(tagType))
		name := identifierText(rest)
		// Default value is always null in this pass (spec.md Open
		// Questions: "annotation default values are dropped").
		return ast.NewMethod(n, ast.NewModifiers(nil, nil), typ, name, nil, nil, nil)
	}
	// Constant declaration: shares the field-declaration shape.
	vars := b.variableDeclarators(n.Child(tagType), ast.NewModifiers(nil, nil), n.Child(tagVariableDeclarators))
	if len(vars) == 0 {
		panic(ast.NewMalformedAst("annotationElementDecl", string(n.Tag())))
	}
	return vars[0]
}

// classBody lowers CLASS_BODY (or ENUM_BODY_DECLARATIONS, which shares the
// same CLASS_BODY_DECLARATION child shape) into a member list.
func (b *builder) classBody(n ctree.Node) []ast.Node {
	if n == nil {
		return nil
	}
	var members []ast.Node
	for _, decl := range n.ChildrenOf(tagClassBodyDeclaration) {
		members = append(members, b.classBodyDeclaration(decl)...)
	}
	return members
}

func (b *builder) classBodyDeclaration(n ctree.Node) []ast.Node {
	if md := n.Child(tagMemberDecl); md != nil {
		if fd := md.Child(tagFieldDeclaration); fd != nil {
			mods := b.modifiers(n.Child(tagModifiers))
			return b.fieldDeclaration(fd, mods)
		}
		return []ast.Node{b.memberDeclaration(md, n)}
	}
	if init := n.Child(tagClassInitDeclaration); init != nil {
		kind := ast.InitializerKind
		if hasChild(init, tagStatic) {
			kind = ast.StaticInitKind
		}
		stmts := b.blockStatements(init.Child(tagBlock))
		return []ast.Node{ast.NewBlock(kind, init, stmts)}
	}
	return nil
}

// memberDeclaration dispatches a MEMBER_DECL that is not a field
// declaration, per spec.md §4.2.1's ordered rule.
func (b *builder) memberDeclaration(md, declNode ctree.Node) ast.Node {
	mods := b.modifiers(declNode.Child(tagModifiers))

	if nested := b.typeDeclaration(declNode); nested != nil {
		return nested
	}
	switch {
	case md.Child(tagClassDecl) != nil:
		return b.classDecl(md.Child(tagClassDecl), mods)
	case md.Child(tagInterfaceDecl) != nil:
		return b.interfaceDecl(md.Child(tagInterfaceDecl), mods)
	case md.Child(tagEnumDecl) != nil:
		return b.enumDecl(md.Child(tagEnumDecl), mods)
	case md.Child(tagAnnotationTypeDecl) != nil:
		return b.annotationTypeDecl(md.Child(tagAnnotationTypeDecl), mods)
	case md.Child(tagGenericMethodOrCtorRest) != nil:
		return b.methodFromRest(md, md.Child(tagGenericMethodOrCtorRest), mods)
	case md.Child(tagMethodDeclaratorRest) != nil:
		return b.methodFromRest(md, md.Child(tagMethodDeclaratorRest), mods)
	case md.Child(tagVoidMethodDeclaratorRest) != nil:
		return b.methodFromRest(md, md.Child(tagVoidMethodDeclaratorRest), mods)
	case md.Child(tagConstructorDeclaratorRest) != nil:
		return b.methodFromRest(md, md.Child(tagConstructorDeclaratorRest), mods)
	default:
		panic(ast.NewMalformedAst("memberDeclaration", string(md.Tag())))
	}
}

func (b *builder) interfaceMemberList(n ctree.Node) []ast.Node {
	if n == nil {
		return nil
	}
	var members []ast.Node
	for _, decl := range n.ChildrenOf(tagClassBodyDeclaration) {
		members = append(members, b.classBodyDeclaration(decl)...)
	}
	return members
}

// methodFromRest lowers a method or constructor. rest is one of
// GENERIC_METHOD_OR_CONSTRUCTOR_REST, METHOD_DECLARATOR_REST,
// VOID_METHOD_DECLARATOR_REST, or CONSTRUCTOR_DECLARATOR_REST; md is the
// enclosing MEMBER_DECL, which carries the optional return-type/name prefix.
func (b *builder) methodFromRest(md, rest ctree.Node, mods *ast.Modifiers) *ast.Method {
	var returnType ast.Node
	isConstructor := rest.Tag() == tagConstructorDeclaratorRest

	if !isConstructor {
		if hasChild(md, tagVoidKeyword) {
			returnType = ast.NewPrimitiveType(md.Child(tagVoidKeyword), "void")
		} else if t := md.Child(tagType); t != nil {
			returnType = b.typeNode(t)
		}
	}

	name := identifierText(md)
	if name == "" {
		name = identifierText(rest)
	}

	params := b.formalParameters(rest.Child(tagFormalParameters))

	var body *ast.Block
	if mb := rest.Child(tagMethodBody); mb != nil {
		if blk := mb.Child(tagBlock); blk != nil {
			body = ast.NewBlock(ast.BlockKind, blk, b.blockStatements(blk))
		}
	}

	var throws []ast.Node
	if thr := rest.Child(tagThrows); thr != nil {
		throws = b.classTypeList(thr.Child(tagQualifiedIdentifierList))
	}

	return ast.NewMethod(rest, mods, returnType, name, params, body, throws)
}

// formalParameters walks every VARIABLE_DECLARATOR_ID descendant; each
// one's preceding sibling is its type node, per spec.md §4.2.1.
func (b *builder) formalParameters(n ctree.Node) []*ast.Variable {
	if n == nil {
		return nil
	}
	var params []*ast.Variable
	for _, declID := range descendantsOf(n, tagVariableDeclaratorID) {
		p := declID.Parent()
		if p == nil {
			panic(ast.NewMalformedAst("formalParameters", string(declID.Tag())))
		}
		typ := b.formalParameterType(p, declID)
		params = append(params, ast.NewVariable(p, ast.NewModifiers(nil, nil), typ, declID.Text(), nil))
	}
	return params
}

func (b *builder) formalParameterType(param, declID ctree.Node) ast.Node {
	typeNode := previousSibling(param, declID)
	if typeNode == nil {
		panic(ast.NewMalformedAst("formalParameterType", string(param.Tag())))
	}
	if typeNode.Tag() == tagEllipsis {
		prior := previousSibling(param, typeNode)
		return ast.NewArrayType(typeNode, b.typeNode(prior))
	}
	return b.typeNode(typeNode)
}

// fieldDeclaration expands one FIELD_DECLARATION into one *ast.Variable per
// declarator, sharing modifiers and base type identity.
func (b *builder) fieldDeclaration(n ctree.Node, mods *ast.Modifiers) []ast.Node {
	vars := b.variableDeclarators(n.Child(tagType), mods, n.Child(tagVariableDeclarators))
	out := make([]ast.Node, len(vars))
	for i, v := range vars {
		out[i] = v
	}
	return out
}

// variableDeclarators expands VARIABLE_DECLARATORS into one *ast.Variable
// per VARIABLE_DECLARATOR, applying each declarator's own DIM-count array
// wrapping and initializer on top of the shared base type.
func (b *builder) variableDeclarators(typeNode ctree.Node, mods *ast.Modifiers, decls ctree.Node) []*ast.Variable {
	if decls == nil {
		return nil
	}
	baseType := b.typeNode(typeNode)
	var out []*ast.Variable
	for _, d := range decls.ChildrenOf(tagVariableDeclarator) {
		dims := len(d.ChildrenOf(tagDim))
		typ := applyDim(baseType, dims, d)

		var init ast.Node
		if vi := d.Child(tagVariableInitializer); vi != nil {
			init = b.variableInitializer(vi)
		}

		name := identifierText(d)
		out = append(out, ast.NewVariable(d, mods, typ, name, init))
	}
	return out
}

// applyDim wraps e in k nested ArrayType nodes.
func applyDim(e ast.Node, k int, cst ctree.Node) ast.Node {
	for i := 0; i < k; i++ {
		e = ast.NewArrayType(cst, e)
	}
	return e
}

func (b *builder) variableInitializer(n ctree.Node) ast.Node {
	if arr := n.Child(tagArrayInitializer); arr != nil {
		return b.arrayInitializer(arr)
	}
	return b.expression(n.Child(tagExpression))
}

func (b *builder) arrayInitializer(n ctree.Node) ast.Node {
	var elems []ast.Node
	for _, vi := range n.ChildrenOf(tagVariableInitializer) {
		elems = append(elems, b.variableInitializer(vi))
	}
	return ast.NewNewArray(n, nil, nil, elems)
}
