// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package familygen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Resolver turns payload type expressions into go/types types and
// measures them under a target architecture's size model.
type Resolver struct {
	dir   string
	sizes types.Sizes

	// byName maps a package name to its loaded package.
	byName map[string]*types.Package

	// local is the package in dir, loaded on first use of an
	// unqualified non-builtin name.
	local       *types.Package
	localLoaded bool
	localErr    error
}

// Payload is a resolved payload type.
type Payload struct {
	// Expr is the payload expression as written in the manifest.
	Expr string
	// Type is the resolved type.
	Type types.Type
	// Size is the payload size in bytes.
	Size int64
	// Imports lists the import paths the expression refers to.
	Imports []string
}

// NewResolver creates a resolver for the given architecture. Packages are
// loaded relative to dir.
func NewResolver(dir, goarch string) (*Resolver, error) {
	sizes := types.SizesFor("gc", goarch)
	if sizes == nil {
		return nil, fmt.Errorf("unsupported goarch %q", goarch)
	}
	return &Resolver{
		dir:    dir,
		sizes:  sizes,
		byName: make(map[string]*types.Package),
	}, nil
}

// WordSize returns the size of a pointer-sized slot in bytes.
func (r *Resolver) WordSize() int64 {
	return r.sizes.Sizeof(types.Typ[types.Uintptr])
}

// Load loads the type information of the given import paths using
// go/packages, making their exported types available to payload
// expressions under their package names.
func (r *Resolver) Load(importPaths []string) error {
	if len(importPaths) == 0 {
		return nil
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  r.dir,
		Env:  append(os.Environ(), "GOWORK=off"),
	}
	pkgs, err := packages.Load(cfg, importPaths...)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}

	var errs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", pkg.PkgPath, e.Msg))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("package errors:\n  %s", strings.Join(errs, "\n  "))
	}

	for _, pkg := range pkgs {
		if err := r.Add(pkg.Types); err != nil {
			return err
		}
	}
	return nil
}

// Add makes the exported types of pkg available under its package name.
func (r *Resolver) Add(pkg *types.Package) error {
	if prev, ok := r.byName[pkg.Name()]; ok && prev.Path() != pkg.Path() {
		return fmt.Errorf("imports %s and %s share package name %q", prev.Path(), pkg.Path(), pkg.Name())
	}
	r.byName[pkg.Name()] = pkg
	return nil
}

// SetLocal makes the types declared in pkg available as unqualified names.
// The generated file is written into this package, so its types are
// referenced without an import.
func (r *Resolver) SetLocal(pkg *types.Package) {
	r.local = pkg
	r.localLoaded = true
	r.localErr = nil
}

// loadLocal loads the package in the resolver directory once.
func (r *Resolver) loadLocal() (*types.Package, error) {
	if r.localLoaded {
		return r.local, r.localErr
	}
	r.localLoaded = true

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  r.dir,
		Env:  append(os.Environ(), "GOWORK=off"),
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		r.localErr = fmt.Errorf("loading local package: %w", err)
		return nil, r.localErr
	}
	// A stale generated file may leave type errors behind; the declared
	// names are still usable.
	if len(pkgs) == 0 || pkgs[0].Types == nil {
		r.localErr = fmt.Errorf("no package in %s", r.dir)
		return nil, r.localErr
	}
	r.local = pkgs[0].Types
	return r.local, nil
}

// Resolve parses and resolves a payload type expression.
func (r *Resolver) Resolve(expr string) (*Payload, error) {
	e, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, fmt.Errorf("payload %q: %w", expr, err)
	}
	used := make(map[string]bool)
	t, err := r.typeOf(e, used)
	if err != nil {
		return nil, fmt.Errorf("payload %q: %w", expr, err)
	}

	imports := make([]string, 0, len(used))
	for path := range used {
		imports = append(imports, path)
	}
	sort.Strings(imports)

	return &Payload{
		Expr:    expr,
		Type:    t,
		Size:    r.sizes.Sizeof(t),
		Imports: imports,
	}, nil
}

func (r *Resolver) typeOf(e ast.Expr, used map[string]bool) (types.Type, error) {
	switch e := e.(type) {
	case *ast.ParenExpr:
		return r.typeOf(e.X, used)

	case *ast.Ident:
		if tn, ok := types.Universe.Lookup(e.Name).(*types.TypeName); ok {
			return tn.Type(), nil
		}
		if !token.IsIdentifier(e.Name) || e.Name == "_" {
			return nil, fmt.Errorf("unknown type %q", e.Name)
		}
		local, err := r.loadLocal()
		if err != nil {
			return nil, fmt.Errorf("unknown type %q: %w", e.Name, err)
		}
		tn, ok := local.Scope().Lookup(e.Name).(*types.TypeName)
		if !ok {
			return nil, fmt.Errorf("unknown type %q", e.Name)
		}
		return tn.Type(), nil

	case *ast.SelectorExpr:
		qual, ok := e.X.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("unsupported qualified type %s", types.ExprString(e))
		}
		pkg, ok := r.byName[qual.Name]
		if !ok {
			return nil, fmt.Errorf("package %q is not in imports", qual.Name)
		}
		if !token.IsExported(e.Sel.Name) {
			return nil, fmt.Errorf("%s.%s is not exported", qual.Name, e.Sel.Name)
		}
		tn, ok := pkg.Scope().Lookup(e.Sel.Name).(*types.TypeName)
		if !ok {
			return nil, fmt.Errorf("%s has no type %s", pkg.Path(), e.Sel.Name)
		}
		used[pkg.Path()] = true
		return tn.Type(), nil

	case *ast.StarExpr:
		elem, err := r.typeOf(e.X, used)
		if err != nil {
			return nil, err
		}
		return types.NewPointer(elem), nil

	case *ast.ArrayType:
		elem, err := r.typeOf(e.Elt, used)
		if err != nil {
			return nil, err
		}
		if e.Len == nil {
			return types.NewSlice(elem), nil
		}
		lit, ok := e.Len.(*ast.BasicLit)
		if !ok || lit.Kind != token.INT {
			return nil, fmt.Errorf("array length must be an integer literal")
		}
		n, err := strconv.ParseInt(lit.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("array length %s: %w", lit.Value, err)
		}
		return types.NewArray(elem, n), nil

	case *ast.MapType:
		key, err := r.typeOf(e.Key, used)
		if err != nil {
			return nil, err
		}
		if !types.Comparable(key) {
			return nil, fmt.Errorf("invalid map key type %s", key)
		}
		val, err := r.typeOf(e.Value, used)
		if err != nil {
			return nil, err
		}
		return types.NewMap(key, val), nil

	case *ast.ChanType:
		elem, err := r.typeOf(e.Value, used)
		if err != nil {
			return nil, err
		}
		dir := types.SendRecv
		switch e.Dir {
		case ast.SEND:
			dir = types.SendOnly
		case ast.RECV:
			dir = types.RecvOnly
		}
		return types.NewChan(dir, elem), nil

	case *ast.FuncType:
		if e.TypeParams != nil {
			return nil, fmt.Errorf("generic function types are not supported")
		}
		params, variadic, err := r.tuple(e.Params, used)
		if err != nil {
			return nil, err
		}
		results, _, err := r.tuple(e.Results, used)
		if err != nil {
			return nil, err
		}
		return types.NewSignatureType(nil, nil, nil, params, results, variadic), nil

	case *ast.InterfaceType:
		if e.Methods != nil && len(e.Methods.List) > 0 {
			return nil, fmt.Errorf("only the empty interface is supported inline; name the interface type instead")
		}
		return types.NewInterfaceType(nil, nil).Complete(), nil

	case *ast.IndexExpr, *ast.IndexListExpr:
		return nil, fmt.Errorf("generic payload types are not supported")

	default:
		return nil, fmt.Errorf("unsupported type expression %s", types.ExprString(e))
	}
}

func (r *Resolver) tuple(fl *ast.FieldList, used map[string]bool) (*types.Tuple, bool, error) {
	if fl == nil {
		return nil, false, nil
	}
	var vars []*types.Var
	variadic := false
	for i, field := range fl.List {
		typeExpr := field.Type
		if ell, ok := typeExpr.(*ast.Ellipsis); ok {
			if i != len(fl.List)-1 || len(field.Names) > 1 {
				return nil, false, fmt.Errorf("can only use ... with final parameter")
			}
			variadic = true
			typeExpr = &ast.ArrayType{Elt: ell.Elt}
		}
		t, err := r.typeOf(typeExpr, used)
		if err != nil {
			return nil, false, err
		}
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		for range n {
			vars = append(vars, types.NewParam(token.NoPos, nil, "", t))
		}
	}
	return types.NewTuple(vars...), variadic, nil
}
