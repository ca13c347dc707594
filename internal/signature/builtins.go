package signature

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/SamChou19815/samlang-sub001/internal/diagnostics"
	"github.com/SamChou19815/samlang-sub001/internal/intern"
	"github.com/SamChou19815/samlang-sub001/internal/types"
)

// builtinLoc is the synthetic location attributed to every built-in
// signature; it never appears as a diagnostic's primary location.
var builtinLoc = diagnostics.Location{Module: intern.RootModule}

//go:embed builtins.yaml
var builtinsYAML []byte

// builtinManifest is the YAML shape of the root module's exported
// signatures: these are injected before signature building so that
// calls to them type-check.
type builtinManifest struct {
	Classes []struct {
		Name      string `yaml:"name"`
		Functions []struct {
			Name           string   `yaml:"name"`
			TypeParameters []string `yaml:"type_parameters"`
			Parameters     []string `yaml:"parameters"`
			Returns        string   `yaml:"returns"`
		} `yaml:"functions"`
	} `yaml:"classes"`
}

// parseBuiltinType resolves one of the manifest's tiny type-name
// vocabulary (unit/bool/int/string/or a bare type-parameter name) to a
// concrete types.Type at RootModule.
func parseBuiltinType(name string, typeParams map[string]bool) types.Type {
	reason := types.NewReason(builtinLoc)
	switch name {
	case "unit":
		return &types.PrimType{Reason: reason, Kind: types.Unit}
	case "bool":
		return &types.PrimType{Reason: reason, Kind: types.Bool}
	case "int":
		return &types.PrimType{Reason: reason, Kind: types.Int}
	case "string":
		return &types.NominalType{Reason: reason, Module: intern.RootModule, Name: "String"}
	default:
		if typeParams[name] {
			return &types.GenericType{Reason: reason, Name: name}
		}
		return &types.NominalType{Reason: reason, Module: intern.RootModule, Name: name}
	}
}

// LoadBuiltins registers the root module's exported classes/functions
// into sig, before any user module is folded in.
func LoadBuiltins(sig *GlobalSignature) error {
	var manifest builtinManifest
	if err := yaml.Unmarshal(builtinsYAML, &manifest); err != nil {
		return err
	}
	for _, cls := range manifest.Classes {
		entry := &Entry{
			Key:       Key{Module: intern.RootModule, Name: cls.Name},
			Functions: make(map[string]*MemberSig),
			Methods:   make(map[string]*MemberSig),
		}
		for _, fn := range cls.Functions {
			typeParamNames := make(map[string]bool, len(fn.TypeParameters))
			var tps []types.TypeParameterSignature
			for _, tp := range fn.TypeParameters {
				typeParamNames[tp] = true
				tps = append(tps, types.TypeParameterSignature{Name: tp})
			}
			args := make([]types.Type, len(fn.Parameters))
			for i, p := range fn.Parameters {
				args[i] = parseBuiltinType(p, typeParamNames)
			}
			ret := parseBuiltinType(fn.Returns, typeParamNames)
			entry.Functions[fn.Name] = &MemberSig{
				IsMethod:       false,
				TypeParameters: tps,
				Fn: &types.FnType{
					Reason:        types.NewReason(builtinLoc),
					ArgumentTypes: args,
					ReturnType:    ret,
				},
			}
		}
		entry.Supertypes = []*types.NominalType{
			{Reason: types.NewReason(builtinLoc), Module: intern.RootModule, Name: cls.Name},
		}
		sig.Types[entry.Key] = entry
	}
	return nil
}
