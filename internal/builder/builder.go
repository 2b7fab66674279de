// Package builder lowers a concrete syntax tree (internal/ctree) into a
// typed AST (internal/ast). It is a pure, deterministic, single-pass
// top-down function: no two calls to Build observe or mutate shared state,
// and no partial AST is ever returned — a structurally impossible input
// fails the whole compilation unit (see internal/ast.MalformedAst).
package builder

import (
	"github.com/cwbudde/go-javalint/internal/ast"
	"github.com/cwbudde/go-javalint/internal/ctree"
)

// Build transforms a concrete COMPILATION_UNIT node into an AST
// CompilationUnit. This is spec.md §6's "Input interface":
// buildCompilationUnit(concreteRoot) -> CompilationUnit.
func Build(root ctree.Node) (cu *ast.CompilationUnit, err error) {
	if root.Tag() != tagCompilationUnit {
		return nil, ast.NewMalformedAst("Build", string(root.Tag()))
	}

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				cu, err = nil, e
				return
			}
			panic(r)
		}
	}()

	b := &builder{}
	return b.compilationUnit(root), nil
}

// builder holds no state across calls; its methods are value-receiver-like
// in spirit (no field ever changes) and exist only to group the lowering
// passes as methods instead of a long parameter-threading free function
// chain.
type builder struct{}

func (b *builder) compilationUnit(root ctree.Node) *ast.CompilationUnit {
	var pkg ast.Node
	if pd := root.Child(tagPackageDeclaration); pd != nil {
		pkg = b.expression(b.firstExpressionChild(pd))
	}

	var imports []*ast.Import
	for _, id := range root.ChildrenOf(tagImportDeclaration) {
		imports = append(imports, b.importDecl(id))
	}

	var types []ast.Node
	for _, td := range root.ChildrenOf(tagTypeDeclaration) {
		if t := b.typeDeclaration(td); t != nil {
			types = append(types, t)
		}
	}

	return ast.NewCompilationUnit(root, pkg, imports, types)
}

// firstExpressionChild finds the qualified-identifier expression under a
// PACKAGE_DECLARATION node, skipping any leading annotations (dropped per
// spec.md's Open Questions: "package annotations are dropped").
func (b *builder) firstExpressionChild(n ctree.Node) ctree.Node {
	if qi := n.Child(tagQualifiedIdentifier); qi != nil {
		return qi
	}
	panic(ast.NewMalformedAst("packageDeclaration", string(n.Tag())))
}

func (b *builder) importDecl(n ctree.Node) *ast.Import {
	isStatic := hasChild(n, tagStatic)
	qi := n.Child(tagQualifiedIdentifier)
	if qi == nil {
		panic(ast.NewMalformedAst("importDecl", string(n.Tag())))
	}
	return ast.NewImport(n, isStatic, b.qualifiedIdentifier(qi))
}

// qualifiedIdentifier lowers a dot-chained QUALIFIED_IDENTIFIER into a
// left-leaning MemberSelect chain over Identifier leaves, per the glossary
// entry in spec.md.
func (b *builder) qualifiedIdentifier(n ctree.Node) ast.Node {
	ids := n.ChildrenOf(tagIdentifier)
	if len(ids) == 0 {
		panic(ast.NewMalformedAst("qualifiedIdentifier", string(n.Tag())))
	}
	var result ast.Node = ast.NewIdentifier(ids[0], ids[0].Text())
	for _, id := range ids[1:] {
		result = ast.NewMemberSelect(id, result, id.Text())
	}
	return result
}
