package ast

// TypeDefinition is the struct/enum payload of a class.
type TypeDefinition interface {
	Node
	isTypeDefinition()
}

func (*StructDefinition) isTypeDefinition() {}
func (*EnumDefinition) isTypeDefinition()   {}

// Field is one ordered struct field: {name, type, is_public}.
type Field struct {
	Loc        Location
	Name       Id
	Annotation TypeAnnotation
	IsPublic   bool
}

// StructDefinition is an ordered list of fields.
type StructDefinition struct {
	Loc    Location
	Fields []Field
}

func (s *StructDefinition) Span() Location { return s.Loc }

// Variant is one ordered enum variant: a name plus its associated data
// types (possibly empty, for a nullary variant).
type Variant struct {
	Loc            Location
	Name           Id
	AssociatedData []TypeAnnotation
}

// EnumDefinition is an ordered list of variants. Variant constructors
// are always public regardless of the class's own visibility.
type EnumDefinition struct {
	Loc      Location
	Variants []Variant
}

func (e *EnumDefinition) Span() Location { return e.Loc }
