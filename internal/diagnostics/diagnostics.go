package diagnostics

import "strconv"

// Kind identifies the shape of a diagnostic's payload.
type Kind int

const (
	KindSyntaxError Kind = iota
	KindCollision
	KindUnresolvedName
	KindCannotResolveClass
	KindCannotResolveMember
	KindCannotResolveModule
	KindMissingExport
	KindIncompatibleType
	KindIncompatibleSubtype
	KindIncompatibleTypeKind
	KindArityMismatch
	KindInsufficientTypeInference
	KindTypeParameterNameMismatch
	KindMissingClassMemberDefinitions
	KindCyclicTypeDefinition
	KindIllegalFunctionInInterface
	KindNonExhaustiveMatch
	KindUselessPattern
	// KindOrPatternInconsistentBindings reports an or-pattern alternative
	// whose binding set doesn't match the pattern's first alternative;
	// its message shape is "Expected bindings: [...], actual: [...]".
	KindOrPatternInconsistentBindings
)

func (k Kind) String() string {
	switch k {
	case KindSyntaxError:
		return "SyntaxError"
	case KindCollision:
		return "Collision"
	case KindUnresolvedName:
		return "UnresolvedName"
	case KindCannotResolveClass:
		return "CannotResolveClass"
	case KindCannotResolveMember:
		return "CannotResolveMember"
	case KindCannotResolveModule:
		return "CannotResolveModule"
	case KindMissingExport:
		return "MissingExport"
	case KindIncompatibleType:
		return "IncompatibleType"
	case KindIncompatibleSubtype:
		return "IncompatibleSubtype"
	case KindIncompatibleTypeKind:
		return "IncompatibleTypeKind"
	case KindArityMismatch:
		return "ArityMismatch"
	case KindInsufficientTypeInference:
		return "InsufficientTypeInference"
	case KindTypeParameterNameMismatch:
		return "TypeParameterNameMismatch"
	case KindMissingClassMemberDefinitions:
		return "MissingClassMemberDefinitions"
	case KindCyclicTypeDefinition:
		return "CyclicTypeDefinition"
	case KindIllegalFunctionInInterface:
		return "IllegalFunctionInInterface"
	case KindNonExhaustiveMatch:
		return "NonExhaustiveMatch"
	case KindUselessPattern:
		return "UselessPattern"
	case KindOrPatternInconsistentBindings:
		return "OrPatternInconsistentBindings"
	default:
		return "Unknown"
	}
}

// ArityKind distinguishes the counted entity of an ArityMismatch payload.
type ArityKind int

const (
	ArityArguments ArityKind = iota
	ArityTypeArguments
	ArityTypeParameters
	ArityFunctionArguments
	ArityParameter
	ArityDataVariables
)

func (a ArityKind) String() string {
	switch a {
	case ArityArguments:
		return "arguments"
	case ArityTypeArguments:
		return "type arguments"
	case ArityTypeParameters:
		return "type parameters"
	case ArityFunctionArguments:
		return "function arguments"
	case ArityParameter:
		return "parameter"
	case ArityDataVariables:
		return "data variables"
	default:
		return "entities"
	}
}

// Diagnostic is a structured, locatable error: { kind, location, payload }.
type Diagnostic struct {
	Kind     Kind
	Location Location
	// Related carries auxiliary locations rendered as numbered
	// footnotes (e.g. "see definition at [1]").
	Related []Location

	// Payload fields; only the ones relevant to Kind are populated.
	Name             string
	Expected         string
	Actual           string
	ExpectedBound    string
	ArityOf          ArityKind
	ExpectedCount    int
	ActualCount      int
	ExpectedKind     string
	ActualKind       string
	ExpectedSig      string
	Names            []string
	Witness          string
	// ExpectedNames/ActualNames are the two binding name-sets compared
	// by an OrPatternInconsistentBindings diagnostic.
	ExpectedNames []string
	ActualNames   []string
}

// Message renders the one-line, backtick-quoted message body (without
// the header/source-line framing done by the printer).
func (d Diagnostic) Message() string {
	switch d.Kind {
	case KindSyntaxError:
		return d.Actual
	case KindCollision:
		return "Name `" + d.Name + "` collides with a previous definition in this scope."
	case KindUnresolvedName:
		return "Cannot resolve name `" + d.Name + "`."
	case KindCannotResolveClass:
		return "Cannot resolve class `" + d.Name + "`."
	case KindCannotResolveMember:
		return "Cannot resolve member `" + d.Name + "`."
	case KindCannotResolveModule:
		return "Cannot resolve module `" + d.Name + "`."
	case KindMissingExport:
		return "Cannot resolve exported member `" + d.Name + "`."
	case KindIncompatibleType:
		return "Expected: `" + d.Expected + "`, actual: `" + d.Actual + "`."
	case KindIncompatibleSubtype:
		return "Expected subtype of `" + d.ExpectedBound + "`, actual: `" + d.Actual + "`."
	case KindIncompatibleTypeKind:
		return "Expected kind: `" + d.ExpectedKind + "`, actual kind: `" + d.ActualKind + "`."
	case KindArityMismatch:
		return "Incorrect " + d.ArityOf.String() + " size. Expected: " +
			strconv.Itoa(d.ExpectedCount) + ", actual: " + strconv.Itoa(d.ActualCount) + "."
	case KindInsufficientTypeInference:
		return "There is not enough context information to decide the type of this expression."
	case KindTypeParameterNameMismatch:
		return "Expected type parameter signature: `" + d.ExpectedSig + "`."
	case KindMissingClassMemberDefinitions:
		return "Missing definitions for [" + joinNames(d.Names) + "]."
	case KindCyclicTypeDefinition:
		return "Type `" + d.Name + "` has a cyclic definition."
	case KindIllegalFunctionInInterface:
		return "Interfaces cannot declare non-method functions."
	case KindNonExhaustiveMatch:
		return "The match is not exhaustive. It is missing the following case: `" + d.Witness + "`."
	case KindUselessPattern:
		return "This pattern is useless; it is covered by a previous case."
	case KindOrPatternInconsistentBindings:
		return "Expected bindings: [" + joinNames(d.ExpectedNames) + "], actual: [" + joinNames(d.ActualNames) + "]."
	default:
		return ""
	}
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
