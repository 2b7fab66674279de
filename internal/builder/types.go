package builder

import (
	"github.com/cwbudde/go-javalint/internal/ast"
	"github.com/cwbudde/go-javalint/internal/ctree"
)

// classType lowers a (possibly dot-qualified) CLASS_TYPE into a left-leaning
// MemberSelect chain over Identifier leaves, the same shape qualifiedIdentifier
// produces: type arguments on any segment are dropped (spec.md's Open
// Questions), but every dotted segment of the name itself is kept.
func (b *builder) classType(n ctree.Node) ast.Node {
	ids := n.ChildrenOf(tagIdentifier)
	if len(ids) == 0 {
		panic(ast.NewMalformedAst("classType", string(n.Tag())))
	}
	var result ast.Node = ast.NewIdentifier(ids[0], ids[0].Text())
	for _, id := range ids[1:] {
		result = ast.NewMemberSelect(id, result, id.Text())
	}
	return result
}

func (b *builder) classTypeList(n ctree.Node) []ast.Node {
	if n == nil {
		return nil
	}
	var out []ast.Node
	for _, ct := range n.ChildrenOf(tagClassType) {
		out = append(out, b.classType(ct))
	}
	// QUALIFIED_IDENTIFIER_LIST (throws clauses) shares this helper's
	// contract but holds QUALIFIED_IDENTIFIER children instead.
	for _, qi := range n.ChildrenOf(tagQualifiedIdentifier) {
		out = append(out, b.qualifiedIdentifier(qi))
	}
	return out
}

// typeNode lowers a TYPE node: void -> PrimitiveType, else a reference type
// with its dimension suffixes applied via applyDim.
func (b *builder) typeNode(n ctree.Node) ast.Node {
	if n == nil {
		return nil
	}
	dims := len(n.ChildrenOf(tagDim))

	if bt := n.Child(tagBasicType); bt != nil {
		return applyDim(ast.NewPrimitiveType(bt, bt.Text()), dims, n)
	}
	if hasChild(n, tagVoidKeyword) {
		return ast.NewPrimitiveType(n, "void")
	}
	if ct := n.Child(tagClassType); ct != nil {
		return applyDim(b.classType(ct), dims, n)
	}
	if n.Tag() == tagBasicType {
		return applyDim(ast.NewPrimitiveType(n, n.Text()), dims, n)
	}
	if n.Tag() == tagClassType {
		return applyDim(b.classType(n), dims, n)
	}
	panic(ast.NewMalformedAst("typeNode", string(n.Tag())))
}
