package ast

// Visibility distinguishes public/private members.
type Visibility int

const (
	Public Visibility = iota
	Private
)

// Toplevel is either a Class or an Interface, sharing a common shape:
// name, type parameters, extended/implemented nominal types, an
// optional type definition, and members.
type Toplevel interface {
	Node
	isToplevel()
	ToplevelName() Id
	ToplevelTypeParameters() []TypeParameter
	ToplevelExtendsOrImplements() []*NominalTypeAnnotation
	ToplevelMembers() []*MemberDeclaration
}

func (*ClassDef) isToplevel()     {}
func (*InterfaceDef) isToplevel() {}

// ClassDef is a class top-level: an optional type definition (struct
// or enum) plus members, each of which may be a method with a body.
type ClassDef struct {
	Loc               Location
	Name              Id
	TypeParameters    []TypeParameter
	Implements        []*NominalTypeAnnotation
	TypeDefinition    TypeDefinition // nil for classes with no struct/enum payload
	Members           []*MemberDeclaration
}

func (c *ClassDef) Span() Location                               { return c.Loc }
func (c *ClassDef) ToplevelName() Id                              { return c.Name }
func (c *ClassDef) ToplevelTypeParameters() []TypeParameter       { return c.TypeParameters }
func (c *ClassDef) ToplevelExtendsOrImplements() []*NominalTypeAnnotation {
	return c.Implements
}
func (c *ClassDef) ToplevelMembers() []*MemberDeclaration { return c.Members }

// InterfaceDef is an interface top-level: no type definition, members
// are method signatures only (a non-method function declared directly
// in an interface is illegal and reported while the global signature
// resolves each top-level's members).
type InterfaceDef struct {
	Loc            Location
	Name           Id
	TypeParameters []TypeParameter
	Extends        []*NominalTypeAnnotation
	Members        []*MemberDeclaration
}

func (i *InterfaceDef) Span() Location                         { return i.Loc }
func (i *InterfaceDef) ToplevelName() Id                       { return i.Name }
func (i *InterfaceDef) ToplevelTypeParameters() []TypeParameter { return i.TypeParameters }
func (i *InterfaceDef) ToplevelExtendsOrImplements() []*NominalTypeAnnotation {
	return i.Extends
}
func (i *InterfaceDef) ToplevelMembers() []*MemberDeclaration { return i.Members }

// MemberDeclaration is {visibility, is_method, name, type parameters,
// function type, parameters}; a class member additionally carries a
// body expression.
type MemberDeclaration struct {
	Loc            Location
	Visibility     Visibility
	IsMethod       bool
	Name           Id
	TypeParameters []TypeParameter
	Parameters     []Parameter
	ReturnType     TypeAnnotation
	Body           Expr // nil for interface member signatures
}

func (m *MemberDeclaration) Span() Location { return m.Loc }

// Parameter is a function/method parameter: a name and its annotated
// type.
type Parameter struct {
	Loc        Location
	Name       Id
	Annotation TypeAnnotation
}
