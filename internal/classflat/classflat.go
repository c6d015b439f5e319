// Package classflat implements the class flattening / inheritance
// linearization pass: resolving a single-inheritance chain into one
// property/method table per class, with override checks. The pass
// resolves once, memoizes, and guards against re-entry.
package classflat

import (
	"fmt"

	"github.com/moose-lang/moose/internal/dispatch"
	"github.com/moose-lang/moose/internal/scope"
)

// Flatten flattens cs in place, recursing into its superclass first.
// Idempotent: a class already flattened returns immediately, so Flatten
// may be called lazily on first construction as well as eagerly by a
// driving pass.
func Flatten(root *scope.Scope, cs *scope.ClassScope) error {
	if cs.Flattened {
		return nil
	}
	if cs.IsFlattening() {
		return fmt.Errorf("cyclic inheritance involving class '%s'", cs.Name)
	}
	cs.SetFlattening(true)
	defer cs.SetFlattening(false)

	var inheritedProps []scope.PropertyDecl
	inheritedMethods := make(map[string][]scope.FuncSig)

	if cs.SuperClassName != "" {
		super, ok := root.FindClass(cs.SuperClassName)
		if !ok {
			return fmt.Errorf("class '%s' extends undefined class '%s'", cs.Name, cs.SuperClassName)
		}
		if err := Flatten(root, super); err != nil {
			return err
		}
		inheritedProps = append(inheritedProps, super.Properties...)
		for name, sigs := range super.Methods {
			inheritedMethods[name] = append(inheritedMethods[name], sigs...)
		}

		ownNames := make(map[string]bool, len(cs.Properties))
		for _, p := range cs.Properties {
			ownNames[p.Name] = true
		}
		for _, p := range inheritedProps {
			if ownNames[p.Name] {
				return fmt.Errorf("property '%s' on class '%s' shadows an inherited property from '%s'",
					p.Name, cs.Name, cs.SuperClassName)
			}
		}

		for name, ownSigs := range cs.Methods {
			for _, ownSig := range ownSigs {
				for _, superSig := range inheritedMethods[name] {
					if dispatch.EqualSignature(ownSig.Params, superSig.Params) &&
						!ownSig.ReturnType.Equal(superSig.ReturnType) {
						return fmt.Errorf(
							"method '%s' on class '%s' overrides '%s' with a different return type (%s vs %s)",
							name, cs.Name, cs.SuperClassName, ownSig.ReturnType, superSig.ReturnType)
					}
				}
			}
		}
	}

	cs.Properties = append(inheritedProps, cs.Properties...)
	cs.Methods = mergeMethods(inheritedMethods, cs.Methods)
	cs.Flattened = true
	return nil
}

// mergeMethods unions inherited overloads with own ones; an own overload
// with an identical parameter signature overrides the inherited one in
// place, a different signature is added alongside it.
func mergeMethods(inherited, own map[string][]scope.FuncSig) map[string][]scope.FuncSig {
	merged := make(map[string][]scope.FuncSig, len(inherited))
	for name, sigs := range inherited {
		merged[name] = append([]scope.FuncSig(nil), sigs...)
	}
	for name, ownSigs := range own {
		for _, ownSig := range ownSigs {
			replaced := false
			for i, existing := range merged[name] {
				if dispatch.EqualSignature(existing.Params, ownSig.Params) {
					merged[name][i] = ownSig
					replaced = true
					break
				}
			}
			if !replaced {
				merged[name] = append(merged[name], ownSig)
			}
		}
	}
	return merged
}

// FlattenAll flattens every class reachable from root, so a full program
// check can surface inheritance errors before any call triggers a lazy
// Flatten.
func FlattenAll(root *scope.Scope, classes map[string]*scope.ClassScope) []error {
	var errs []error
	for _, cs := range classes {
		if err := Flatten(root, cs); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
