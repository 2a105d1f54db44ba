// Package sigscan statically discovers function and method signatures in a
// target Go package, for driving `pycall inspect` and for feeding
// reflection-free Signature construction to callers that only have a
// package import path, not a live value to pass to pycall.Def.
package sigscan

import (
	"fmt"
	"go/types"
	"os"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/funvibe/pycall/internal/arg"
	"github.com/funvibe/pycall/internal/argkind"
	"github.com/funvibe/pycall/internal/signature"
)

// ParamInfo is one discovered parameter: its name (if any — unnamed
// parameters render as "") and its static Go type as source text.
type ParamInfo struct {
	Name     string
	Type     string
	Variadic bool
}

// FuncInfo is one discovered function or method.
type FuncInfo struct {
	// Name is the function or method name.
	Name string
	// Receiver is the receiver type's source text ("" for a plain
	// function).
	Receiver string
	Params   []ParamInfo
	Results  []string
}

// PackageInfo is every exported function and method sigscan found in one
// package.
type PackageInfo struct {
	ImportPath string
	Funcs      []FuncInfo
}

// Inspector loads and caches type-checked packages across repeated Scan
// calls, so a CLI session that inspects several packages in a row only pays
// the go/packages load cost once per import path.
type Inspector struct {
	dir        string
	loadedPkgs map[string]*packages.Package
}

// NewInspector builds an Inspector that resolves relative import paths
// against dir (the empty string means the process's working directory).
func NewInspector(dir string) *Inspector {
	return &Inspector{dir: dir, loadedPkgs: make(map[string]*packages.Package)}
}

// Scan loads pkgPath (a Go import path or a relative/absolute directory,
// anything go/packages accepts) and returns every exported top-level
// function and exported method on an exported type, in that package.
func (ins *Inspector) Scan(pkgPath string) (*PackageInfo, error) {
	pkg, err := ins.load(pkgPath)
	if err != nil {
		return nil, err
	}

	info := &PackageInfo{ImportPath: pkg.PkgPath}
	scope := pkg.Types.Scope()

	names := scope.Names()
	sort.Strings(names)
	for _, name := range names {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}
		switch o := obj.(type) {
		case *types.Func:
			info.Funcs = append(info.Funcs, extractFunc(o.Name(), "", o.Type().(*types.Signature)))
		case *types.TypeName:
			named, ok := o.Type().(*types.Named)
			if !ok {
				continue
			}
			for i := 0; i < named.NumMethods(); i++ {
				m := named.Method(i)
				if !m.Exported() {
					continue
				}
				info.Funcs = append(info.Funcs, extractFunc(m.Name(), o.Name(), m.Type().(*types.Signature)))
			}
		}
	}

	return info, nil
}

func (ins *Inspector) load(pkgPath string) (*packages.Package, error) {
	if pkg, ok := ins.loadedPkgs[pkgPath]; ok {
		return pkg, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedSyntax |
			packages.NeedImports |
			packages.NeedDeps,
		Dir: ins.dir,
		Env: append(os.Environ(), "GOWORK=off"),
	}

	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, fmt.Errorf("sigscan: loading %s: %w", pkgPath, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("sigscan: no package found for %s", pkgPath)
	}

	var errs []string
	for _, p := range pkgs {
		for _, e := range p.Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", p.PkgPath, e.Msg))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("sigscan: package errors:\n  %s", strings.Join(errs, "\n  "))
	}

	pkg := pkgs[0]
	ins.loadedPkgs[pkg.PkgPath] = pkg
	return pkg, nil
}

func extractFunc(name, receiver string, sig *types.Signature) FuncInfo {
	fn := FuncInfo{Name: name, Receiver: receiver}

	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		variadic := sig.Variadic() && i == params.Len()-1
		fn.Params = append(fn.Params, ParamInfo{
			Name:     p.Name(),
			Type:     p.Type().String(),
			Variadic: variadic,
		})
	}

	results := sig.Results()
	for i := 0; i < results.Len(); i++ {
		fn.Results = append(fn.Results, results.At(i).Type().String())
	}

	return fn
}

// ToSignature converts the discovered parameter list into a
// *signature.Signature built from signature.Descriptor values: one per
// parameter, positional-only when Go gave it no name, positional-or-keyword
// otherwise, with the trailing `...T` parameter (if any) becoming the *args
// slot. This is what lets cmd/pycall's `try` subcommand run a scanned
// function's call shape through the same internal/bind engine a value built
// via pycall.Def would use, without ever loading the target package as
// running code.
func (f FuncInfo) ToSignature() (*signature.Signature, error) {
	params := make([]arg.Traits, len(f.Params))
	for i, p := range f.Params {
		kind := argkind.POS
		if p.Variadic {
			kind |= argkind.VAR
		}
		params[i] = signature.NewDescriptor(p.Name, kind)
	}
	return signature.From(params)
}

// String renders a FuncInfo close to Go source syntax, e.g.
// "func(a int, b ...string) (int, error)".
func (f FuncInfo) String() string {
	var b strings.Builder
	if f.Receiver != "" {
		fmt.Fprintf(&b, "func (%s) %s(", f.Receiver, f.Name)
	} else {
		fmt.Fprintf(&b, "func %s(", f.Name)
	}
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if p.Name != "" {
			b.WriteString(p.Name)
			b.WriteString(" ")
		}
		if p.Variadic {
			b.WriteString("...")
			b.WriteString(strings.TrimPrefix(p.Type, "[]"))
		} else {
			b.WriteString(p.Type)
		}
	}
	b.WriteString(")")
	if len(f.Results) == 1 {
		b.WriteString(" " + f.Results[0])
	} else if len(f.Results) > 1 {
		b.WriteString(" (" + strings.Join(f.Results, ", ") + ")")
	}
	return b.String()
}
