package internalcheck

import (
	"fmt"
	"go/types"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const (
	modulePath   = "github.com/hsiuhsiu/talib-go"
	bindingsPath = modulePath + "/internal/bindings"
)

func TestOnlyBindingsTouchMemory(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports,
	}

	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == bindingsPath {
			continue
		}
		for _, imp := range []string{"C", "unsafe"} {
			if _, ok := pkg.Imports[imp]; ok {
				findings = append(findings, fmt.Sprintf("%s imports %q; keep raw memory access in internal/bindings", pkg.PkgPath, imp))
			}
		}
	}

	if len(findings) > 0 {
		sort.Strings(findings)
		t.Fatalf("memory boundary violation:\n%s", strings.Join(findings, "\n"))
	}
}

func TestPublicAPIHidesBindings(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
	}

	pkgs, err := packages.Load(cfg, modulePath+"/pkg/talib")
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			if !obj.Exported() {
				continue
			}
			switch o := obj.(type) {
			case *types.Func:
				if leaksBindings(o.Type()) {
					findings = append(findings, fmt.Sprintf("%s: func %s exposes %s", pkg.PkgPath, name, bindingsPath))
				}
			case *types.TypeName:
				findings = append(findings, typeFindings(pkg.PkgPath, o)...)
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("public API leaks raw bindings:\n%s", strings.Join(findings, "\n"))
	}
}

func typeFindings(pkgPath string, tn *types.TypeName) []string {
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil
	}
	var out []string
	if st, ok := named.Underlying().(*types.Struct); ok {
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			if f.Exported() && leaksBindings(f.Type()) {
				out = append(out, fmt.Sprintf("%s: field %s.%s exposes %s", pkgPath, tn.Name(), f.Name(), bindingsPath))
			}
		}
	}
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		if m.Exported() && leaksBindings(m.Type()) {
			out = append(out, fmt.Sprintf("%s: method %s.%s exposes %s", pkgPath, tn.Name(), m.Name(), bindingsPath))
		}
	}
	return out
}

func leaksBindings(typ types.Type) bool {
	switch tt := typ.(type) {
	case *types.Named:
		if obj := tt.Obj(); obj.Pkg() != nil && obj.Pkg().Path() == bindingsPath {
			return true
		}
		return false
	case *types.Pointer:
		return leaksBindings(tt.Elem())
	case *types.Slice:
		return leaksBindings(tt.Elem())
	case *types.Array:
		return leaksBindings(tt.Elem())
	case *types.Map:
		return leaksBindings(tt.Key()) || leaksBindings(tt.Elem())
	case *types.Signature:
		return tupleLeaks(tt.Params()) || tupleLeaks(tt.Results())
	default:
		return false
	}
}

func tupleLeaks(tup *types.Tuple) bool {
	for i := 0; i < tup.Len(); i++ {
		if leaksBindings(tup.At(i).Type()) {
			return true
		}
	}
	return false
}
