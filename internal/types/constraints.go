package types

// TypeConstraint pairs a concrete type with a generic template.
type TypeConstraint struct {
	Concrete Type
	Template Type
}

// IncompatibleConstraint describes a parameter for which two
// constraints disagreed.
type IncompatibleConstraint struct {
	Parameter string
	First     Type
	Second    Type
}

// Solve walks each constraint pair in lockstep; when the template is a
// Generic bound to a parameter in typeParams, its concrete counterpart
// is recorded. Conflicting records for the same parameter are reported
// via the returned incompatibilities slice but do not stop solving.
// Unbound parameters are simply absent from the returned substitution;
// callers fill them with Any(under-constrained).
func Solve(constraints []TypeConstraint, typeParams []TypeParameterSignature) (Substitution, []IncompatibleConstraint) {
	wanted := make(map[string]bool, len(typeParams))
	for _, p := range typeParams {
		wanted[p.Name] = true
	}
	sigma := make(Substitution)
	var incompatible []IncompatibleConstraint
	for _, c := range constraints {
		solveOne(c.Template, c.Concrete, wanted, sigma, &incompatible)
	}
	return sigma, incompatible
}

func solveOne(template, concrete Type, wanted map[string]bool, sigma Substitution, incompatible *[]IncompatibleConstraint) {
	switch tmpl := template.(type) {
	case *GenericType:
		if !wanted[tmpl.Name] {
			return
		}
		if existing, ok := sigma[tmpl.Name]; ok {
			if !IsSameType(existing, concrete) {
				*incompatible = append(*incompatible, IncompatibleConstraint{
					Parameter: tmpl.Name, First: existing, Second: concrete,
				})
			}
			return
		}
		sigma[tmpl.Name] = concrete
	case *NominalType:
		cNom, ok := concrete.(*NominalType)
		if !ok || len(cNom.TypeArguments) != len(tmpl.TypeArguments) {
			return
		}
		for i := range tmpl.TypeArguments {
			solveOne(tmpl.TypeArguments[i], cNom.TypeArguments[i], wanted, sigma, incompatible)
		}
	case *FnType:
		cFn, ok := concrete.(*FnType)
		if !ok || len(cFn.ArgumentTypes) != len(tmpl.ArgumentTypes) {
			return
		}
		for i := range tmpl.ArgumentTypes {
			solveOne(tmpl.ArgumentTypes[i], cFn.ArgumentTypes[i], wanted, sigma, incompatible)
		}
		solveOne(tmpl.ReturnType, cFn.ReturnType, wanted, sigma, incompatible)
	default:
		// Primitive/Any templates carry no generics to record.
	}
}

// FillUnsolved returns a copy of sigma with every type parameter not
// already present bound to a fresh under-constrained Any carrying
// reason.
func FillUnsolved(sigma Substitution, typeParams []TypeParameterSignature, reason Reason) Substitution {
	out := make(Substitution, len(typeParams))
	for k, v := range sigma {
		out[k] = v
	}
	for _, p := range typeParams {
		if _, ok := out[p.Name]; !ok {
			out[p.Name] = &AnyType{Reason: reason, Underconstrained: true}
		}
	}
	return out
}
