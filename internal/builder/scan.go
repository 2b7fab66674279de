package builder

import "github.com/cwbudde/go-javalint/internal/ctree"

// hasChild reports whether n has a direct child with the given tag.
func hasChild(n ctree.Node, tag ctree.Tag) bool {
	return n.Child(tag) != nil
}

// firstOf returns the first direct child of n whose tag is in tags, or nil.
func firstOf(n ctree.Node, tags ...ctree.Tag) ctree.Node {
	for _, c := range n.Children() {
		for _, t := range tags {
			if c.Tag() == t {
				return c
			}
		}
	}
	return nil
}

// identifierText returns the text of n's first IDENTIFIER child, or "" if
// none exists.
func identifierText(n ctree.Node) string {
	if id := n.Child(tagIdentifier); id != nil {
		return id.Text()
	}
	return ""
}

// descendantsOf collects every descendant of n (not including n itself)
// whose tag is tag, in pre-order. Used by formal-parameter lowering, which
// must walk past an arbitrary TYPE subtree to reach each
// VARIABLE_DECLARATOR_ID.
func descendantsOf(n ctree.Node, tag ctree.Tag) []ctree.Node {
	var out []ctree.Node
	var walk func(ctree.Node)
	walk = func(cur ctree.Node) {
		for _, c := range cur.Children() {
			if c.Tag() == tag {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// previousSibling returns the direct-child sibling of n immediately before
// it within parent's children, or nil if n is parent's first child.
func previousSibling(parent, n ctree.Node) ctree.Node {
	children := parent.Children()
	for i, c := range children {
		if c == n {
			if i == 0 {
				return nil
			}
			return children[i-1]
		}
	}
	return nil
}
