package types

// Substitution maps a generic type parameter's name to a concrete type.
type Substitution map[string]Type

// Subst performs capture-free substitution of generics by concrete
// types, recursing into Fn argument/return types and Nominal type
// arguments.
func Subst(t Type, sigma Substitution) Type {
	if len(sigma) == 0 {
		return t
	}
	switch v := t.(type) {
	case *GenericType:
		if repl, ok := sigma[v.Name]; ok {
			return repl.WithReason(v.Reason)
		}
		return v
	case *NominalType:
		if len(v.TypeArguments) == 0 {
			return v
		}
		args := make([]Type, len(v.TypeArguments))
		changed := false
		for i, a := range v.TypeArguments {
			args[i] = Subst(a, sigma)
			if args[i] != a {
				changed = true
			}
		}
		if !changed {
			return v
		}
		cp := *v
		cp.TypeArguments = args
		return &cp
	case *FnType:
		args := make([]Type, len(v.ArgumentTypes))
		changed := false
		for i, a := range v.ArgumentTypes {
			args[i] = Subst(a, sigma)
			if args[i] != a {
				changed = true
			}
		}
		ret := Subst(v.ReturnType, sigma)
		if ret != v.ReturnType {
			changed = true
		}
		if !changed {
			return v
		}
		cp := *v
		cp.ArgumentTypes = args
		cp.ReturnType = ret
		return &cp
	default:
		return t
	}
}

// SubstFn substitutes through a function type specifically, used when
// instantiating a polymorphic member signature at a call site.
func SubstFn(fn *FnType, sigma Substitution) *FnType {
	return Subst(fn, sigma).(*FnType)
}

// ContainsPlaceholder reports whether t mentions an Any produced by
// under-constrained inference.
func ContainsPlaceholder(t Type) bool {
	switch v := t.(type) {
	case *AnyType:
		return v.Underconstrained
	case *NominalType:
		for _, a := range v.TypeArguments {
			if ContainsPlaceholder(a) {
				return true
			}
		}
		return false
	case *FnType:
		for _, a := range v.ArgumentTypes {
			if ContainsPlaceholder(a) {
				return true
			}
		}
		return ContainsPlaceholder(v.ReturnType)
	default:
		return false
	}
}
