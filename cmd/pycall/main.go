// Command pycall is a small CLI front end over the signature-introspection
// and binding engine: it scans a Go package for exported function
// signatures, can render one of them in the human-readable form of
// spec.md §6.3, and can run a scanned function's call shape through the
// same internal/bind engine pycall.Def/Call uses, without ever loading the
// target package as running code.
package main

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/pycall/internal/arg"
	"github.com/funvibe/pycall/internal/bind"
	"github.com/funvibe/pycall/internal/signature"
	"github.com/funvibe/pycall/internal/sigregistry"
	"github.com/funvibe/pycall/internal/sigscan"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "inspect":
		err = runInspect(os.Args[2:])
	case "try":
		err = runTry(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, colorize(os.Stderr, "error: "+err.Error(), 31))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pycall inspect <pkg>")
	fmt.Fprintln(os.Stderr, "       pycall try <pkg> <func> [args...]")
}

// runInspect scans pkgPath and renders each exported function's Signature
// (spec.md §6.3's pseudo-Python form, via signature.Signature.String), and
// registers each one in sigregistry.Default so a later `try` against the
// same function skips re-scanning.
func runInspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("inspect requires exactly one package path")
	}
	ins := sigscan.NewInspector("")
	info, err := ins.Scan(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", colorize(os.Stdout, info.ImportPath, 36))
	for _, fn := range info.Funcs {
		sig, err := fn.ToSignature()
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", fn.Name, err)
			continue
		}
		sigregistry.Default.Register(registryKey(info.ImportPath, fn.Name), sig)
		fmt.Printf("  %s%s\n", fn.Name, sig.String(nil))
	}
	return nil
}

// runTry binds the given string args positionally against the target
// function's scanned Signature and reports either the merged call or the
// structural *bind.Error that rejected it. A function already registered by
// a prior `inspect`/`try` is looked up in sigregistry.Default instead of
// re-running sigscan.
func runTry(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("try requires a package path, a function name, and zero or more string arguments")
	}
	pkgPath, funcName, rest := args[0], args[1], args[2:]
	key := registryKey(pkgPath, funcName)

	sig, ok := sigregistry.Default.Lookup(key)
	if !ok {
		ins := sigscan.NewInspector("")
		info, err := ins.Scan(pkgPath)
		if err != nil {
			return err
		}
		var found *sigscan.FuncInfo
		for i := range info.Funcs {
			if info.Funcs[i].Name == funcName {
				found = &info.Funcs[i]
				break
			}
		}
		if found == nil {
			return fmt.Errorf("no exported function %q in %s", funcName, pkgPath)
		}
		sig, err = found.ToSignature()
		if err != nil {
			return err
		}
		sigregistry.Default.Register(key, sig)
	}

	sources := make([]bind.Source, len(rest))
	for i, s := range rest {
		sources[i] = bind.PosSource{Value: arg.Plain(s)}
	}
	parsed, err := bind.ParseArgs(sources)
	if err != nil {
		return err
	}
	values, err := bind.Merge(sig, nil, nil, parsed)
	if err != nil {
		return err
	}

	fmt.Println(colorize(os.Stdout, pkgPath+"."+funcName, 36))
	for i, v := range values {
		name := sig.Params[i].Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		fmt.Printf("  %s = %s\n", name, renderMerged(sig, i, v))
	}
	return nil
}

func registryKey(pkgPath, funcName string) string {
	return pkgPath + "." + funcName
}

// renderMerged formats one Merge result entry, unpacking the *args/**kwargs
// slots' []reflect.Value / map[string]reflect.Value carriers instead of
// printing their Go-internal representation verbatim.
func renderMerged(sig *signature.Signature, index int, v reflect.Value) string {
	if !v.IsValid() {
		return "<unset>"
	}
	switch index {
	case sig.ArgsIndex:
		items, _ := v.Interface().([]reflect.Value)
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = fmt.Sprintf("%v", it.Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case sig.KwargsIndex:
		items, _ := v.Interface().(map[string]reflect.Value)
		parts := make([]string, 0, len(items))
		for name, it := range items {
			parts = append(parts, fmt.Sprintf("%s=%v", name, it.Interface()))
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// colorize wraps s in an ANSI color code when out is a real terminal —
// redirected output (a pipe, a file, CI logs) gets plain text.
func colorize(out *os.File, s string, code int) string {
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, s)
}
