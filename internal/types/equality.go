package types

// IsSameType performs structural equality ignoring reason.
func IsSameType(a, b Type) bool {
	switch av := a.(type) {
	case *AnyType:
		_, ok := b.(*AnyType)
		return ok
	case *PrimType:
		bv, ok := b.(*PrimType)
		return ok && av.Kind == bv.Kind
	case *GenericType:
		bv, ok := b.(*GenericType)
		return ok && av.Name == bv.Name
	case *NominalType:
		bv, ok := b.(*NominalType)
		if !ok || av.Module != bv.Module || av.Name != bv.Name || av.IsClassStatics != bv.IsClassStatics {
			return false
		}
		if len(av.TypeArguments) != len(bv.TypeArguments) {
			return false
		}
		for i := range av.TypeArguments {
			if !IsSameType(av.TypeArguments[i], bv.TypeArguments[i]) {
				return false
			}
		}
		return true
	case *FnType:
		bv, ok := b.(*FnType)
		if !ok || len(av.ArgumentTypes) != len(bv.ArgumentTypes) {
			return false
		}
		for i := range av.ArgumentTypes {
			if !IsSameType(av.ArgumentTypes[i], bv.ArgumentTypes[i]) {
				return false
			}
		}
		return IsSameType(av.ReturnType, bv.ReturnType)
	default:
		return false
	}
}

// IsSameTypeParameterSignature compares two type-parameter lists for
// identical arity and pairwise-equivalent bounds.
func IsSameTypeParameterSignature(a, b []TypeParameterSignature) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch {
		case a[i].Bound == nil && b[i].Bound == nil:
			continue
		case a[i].Bound == nil || b[i].Bound == nil:
			return false
		default:
			if !IsSameType(a[i].Bound, b[i].Bound) {
				return false
			}
		}
	}
	return true
}
