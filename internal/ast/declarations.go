package ast

import "github.com/cwbudde/go-javalint/internal/ctree"

// CompilationUnit is the root of a built AST. Imports and Types are snapshot
// copies taken at build time; neither list is ever mutated afterward.
type CompilationUnit struct {
	base
	PackageName Node // Expression, nilable
	Imports     []*Import
	Types       []Node // Class | Interface | Enum | AnnotationType
}

func NewCompilationUnit(cst ctree.Node, pkg Node, imports []*Import, types []Node) *CompilationUnit {
	return &CompilationUnit{base: newBase(CompilationUnitKind, cst), PackageName: pkg, Imports: imports, Types: types}
}

func (n *CompilationUnit) Accept(v Visitor) { v.VisitCompilationUnit(n) }

// Import is a kindless auxiliary shape (spec.md §3's auxiliary list); it is
// never matched by Is(Kind).
type Import struct {
	auxBase
	IsStatic bool
	Qualified Node // Expression: a MemberSelect/Identifier chain
}

func NewImport(cst ctree.Node, isStatic bool, qualified Node) *Import {
	return &Import{auxBase: newAuxBase(cst), IsStatic: isStatic, Qualified: qualified}
}

func (n *Import) Accept(v Visitor) { v.VisitImport(n) }

// TypeDecl backs CLASS, INTERFACE, ENUM, and ANNOTATION_TYPE: spec.md groups
// these four under one structural shape ("modifiers, simple name, superClass
// (opt), superInterfaces list, members list").
type TypeDecl struct {
	base
	Modifiers       *Modifiers
	Name            string
	SuperClass      Node   // Expression (class type), nilable — CLASS only
	SuperInterfaces []Node // Expression (class types)
	Members         []Node
}

func NewTypeDecl(kind Kind, cst ctree.Node, mods *Modifiers, name string, superClass Node, superInterfaces []Node, members []Node) *TypeDecl {
	return &TypeDecl{
		base:            newBase(kind, cst),
		Modifiers:       mods,
		Name:            name,
		SuperClass:      superClass,
		SuperInterfaces: superInterfaces,
		Members:         members,
	}
}

func (n *TypeDecl) Accept(v Visitor) {
	switch n.Kind() {
	case Class:
		v.VisitClass(n)
	case Interface:
		v.VisitInterface(n)
	case Enum:
		v.VisitEnum(n)
	case AnnotationType:
		v.VisitAnnotationType(n)
	}
}

// Method backs both methods and constructors: a nil ReturnType means
// constructor, per invariant (ii) in spec.md §3.
type Method struct {
	base
	Modifiers    *Modifiers
	ReturnType   Node // nilable: absent iff constructor
	Name         string
	Parameters   []*Variable
	Body         *Block // nilable: absent iff abstract/interface method
	Throws       []Node // Expression (class types)
	DefaultValue Node   // always nil in this pass (annotation defaults dropped, see DESIGN.md)
}

func NewMethod(cst ctree.Node, mods *Modifiers, returnType Node, name string, params []*Variable, body *Block, throws []Node) *Method {
	return &Method{
		base:       newBase(MethodKind, cst),
		Modifiers:  mods,
		ReturnType: returnType,
		Name:       name,
		Parameters: params,
		Body:       body,
		Throws:     throws,
	}
}

// IsConstructor reports whether this Method is a constructor, i.e. has no
// return type. Neither this method nor the builder checks that a
// constructor's Name equals the enclosing class's simple name.
func (m *Method) IsConstructor() bool { return m.ReturnType == nil }

func (n *Method) Accept(v Visitor) { v.VisitMethod(n) }

// Variable backs field declarations, local variable declarations, formal
// parameters, and (specialised, see EnumConstant) enum constants.
type Variable struct {
	base
	Modifiers   *Modifiers
	Type        Node // Expression/type shape
	Name        string
	Initializer Node // Expression, nilable
}

func NewVariable(cst ctree.Node, mods *Modifiers, typ Node, name string, init Node) *Variable {
	return &Variable{base: newBase(VariableKind, cst), Modifiers: mods, Type: typ, Name: name, Initializer: init}
}

func (n *Variable) Accept(v Visitor) { v.VisitVariable(n) }

// EnumConstant specialises Variable: its Initializer is always a *NewClass
// wrapping the constant's arguments and optional inline class body. The Kind
// reports ENUM_CONSTANT per spec.md's Variable/EnumConstant note.
type EnumConstant struct {
	*Variable
}

func NewEnumConstant(cst ctree.Node, name string, newClass *NewClass) *EnumConstant {
	v := &Variable{base: newBase(EnumConstantKind, cst), Name: name, Initializer: newClass}
	return &EnumConstant{Variable: v}
}

func (n *EnumConstant) Accept(v Visitor) { v.VisitEnumConstant(n) }

// Modifiers is a kindless auxiliary shape holding the set of modifier
// keywords that preceded a declaration, plus any leading annotations (not
// modelled as a distinct AST shape in this pass — see DESIGN.md).
type Modifiers struct {
	auxBase
	Flags []Modifier
}

func NewModifiers(cst ctree.Node, flags []Modifier) *Modifiers {
	return &Modifiers{auxBase: newAuxBase(cst), Flags: flags}
}

func (m *Modifiers) Has(mod Modifier) bool {
	for _, f := range m.Flags {
		if f == mod {
			return true
		}
	}
	return false
}

func (n *Modifiers) Accept(v Visitor) { v.VisitModifiers(n) }
