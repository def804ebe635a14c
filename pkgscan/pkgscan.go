package pkgscan

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/doc"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/jonwraymond/goinspect/member"
)

// ErrNoPackage is returned when the directory holds no parseable
// non-test Go package.
var ErrNoPackage = errors.New("pkgscan: no Go package found")

// skipDirs never count as sub-packages.
var skipDirs = map[string]struct{}{
	"vendor":       {},
	"testdata":     {},
	"node_modules": {},
	".git":         {},
}

// Package is a scanned source directory implementing member.Target.
type Package struct {
	name    string
	dir     string
	doc     string
	members []member.Member
}

// Load parses the Go package in dir and returns it as an inspection
// target. Members are enumerated and classified once during the load.
// A directory with several package clauses resolves to the package
// named after the directory, then to the lexically smallest name.
func Load(dir string) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("pkgscan: %w", err)
	}

	// ReadDir sorts entries, so files reach the parser in a stable
	// order and go/doc output is deterministic.
	fset := token.NewFileSet()
	byName := make(map[string][]*ast.File)
	var parseErr error
	for _, e := range entries {
		if e.IsDir() || !sourceFile(e.Name()) {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, e.Name()), nil, parser.ParseComments)
		if err != nil {
			if parseErr == nil {
				parseErr = err
			}
			continue
		}
		byName[f.Name.Name] = append(byName[f.Name.Name], f)
	}

	files := pick(byName, filepath.Base(dir))
	if files == nil {
		if parseErr != nil {
			return nil, fmt.Errorf("pkgscan: parse %s: %w", dir, parseErr)
		}
		return nil, fmt.Errorf("%w: %s", ErrNoPackage, dir)
	}

	docPkg, err := doc.NewFromFiles(fset, files, files[0].Name.Name)
	if err != nil {
		return nil, fmt.Errorf("pkgscan: document %s: %w", dir, err)
	}

	p := &Package{
		name: docPkg.Name,
		dir:  dir,
		doc:  docPkg.Doc,
	}
	p.members = append(p.members, subPackages(dir)...)
	p.members = append(p.members, declMembers(fset, docPkg)...)
	return p, nil
}

// Name returns the declared package name.
func (p *Package) Name() string { return p.name }

// TypeName returns "package".
func (p *Package) TypeName() string { return "package" }

// Doc returns the package comment.
func (p *Package) Doc() string { return p.doc }

// IsContainer returns true: packages get the CONSTANTS and FUNCTIONS
// section labels.
func (p *Package) IsContainer() bool { return true }

// Dir returns the directory the package was loaded from.
func (p *Package) Dir() string { return p.dir }

// Members returns a copy of the members enumerated at load time.
func (p *Package) Members() []member.Member {
	return append([]member.Member(nil), p.members...)
}

// sourceFile keeps regular Go sources and drops tests and hidden
// files before parsing.
func sourceFile(name string) bool {
	return strings.HasSuffix(name, ".go") &&
		!strings.HasSuffix(name, "_test.go") &&
		!strings.HasPrefix(name, ".") &&
		!strings.HasPrefix(name, "_")
}

// pick selects the package to document when the directory declares
// more than one: the one named after the directory wins, then the
// lexically smallest for determinism.
func pick(byName map[string][]*ast.File, base string) []*ast.File {
	if files, ok := byName[base]; ok {
		return files
	}
	var keys []string
	for k := range byName {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)
	return byName[keys[0]]
}

// subPackages lists immediate subdirectories containing Go sources,
// honoring a .gitignore in dir.
func subPackages(dir string) []member.Member {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	gi, _ := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))

	var out []member.Member
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if _, skip := skipDirs[name]; skip {
			continue
		}
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		if gi != nil && gi.MatchesPath(name+"/") {
			continue
		}
		if !hasGoFiles(filepath.Join(dir, name)) {
			continue
		}
		out = append(out, member.Member{
			Name:     name,
			Kind:     member.KindModule,
			TypeName: "package",
		})
	}
	return out
}

func hasGoFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") ||
			strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		return true
	}
	return false
}

// declMembers flattens the documented package surface. Constructors
// and grouped values that go/doc files under a type are still
// package-level declarations, so they are lifted back up; methods are
// not, they belong to their receiver.
func declMembers(fset *token.FileSet, docPkg *doc.Package) []member.Member {
	var out []member.Member

	consts := append([]*doc.Value(nil), docPkg.Consts...)
	vars := append([]*doc.Value(nil), docPkg.Vars...)
	funcs := append([]*doc.Func(nil), docPkg.Funcs...)

	for _, t := range docPkg.Types {
		consts = append(consts, t.Consts...)
		vars = append(vars, t.Vars...)
		funcs = append(funcs, t.Funcs...)
		out = append(out, member.Member{
			Name:     t.Name,
			Kind:     member.KindType,
			TypeName: typeKind(t),
			Doc:      t.Doc,
		})
	}

	out = append(out, valueMembers(fset, consts, "const")...)
	out = append(out, valueMembers(fset, vars, "var")...)

	for _, f := range funcs {
		out = append(out, member.Member{
			Name:     f.Name,
			Kind:     member.KindCallable,
			TypeName: render(fset, f.Decl.Type),
			Doc:      f.Doc,
		})
	}
	return out
}

// typeKind names the underlying form of a type declaration.
func typeKind(t *doc.Type) string {
	if t.Decl == nil {
		return "type"
	}
	for _, spec := range t.Decl.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok || ts.Name.Name != t.Name {
			continue
		}
		switch ts.Type.(type) {
		case *ast.StructType:
			return "struct"
		case *ast.InterfaceType:
			return "interface"
		case *ast.FuncType:
			return "func"
		case *ast.MapType:
			return "map"
		case *ast.ArrayType:
			return "slice"
		case *ast.ChanType:
			return "chan"
		case *ast.StarExpr:
			return "pointer"
		}
	}
	return "type"
}

// valueMembers expands const and var declarations into one member per
// bound name.
func valueMembers(fset *token.FileSet, vals []*doc.Value, fallback string) []member.Member {
	var out []member.Member
	for _, v := range vals {
		for _, spec := range v.Decl.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			typeName := fallback
			if vs.Type != nil {
				typeName = render(fset, vs.Type)
			}
			docText := v.Doc
			if vs.Doc != nil {
				docText = vs.Doc.Text()
			}
			for i, name := range vs.Names {
				if name.Name == "_" {
					continue
				}
				m := member.Member{
					Name:     name.Name,
					Kind:     member.KindData,
					TypeName: typeName,
					Doc:      docText,
				}
				if i < len(vs.Values) {
					m.Repr = render(fset, vs.Values[i])
				}
				out = append(out, m)
			}
		}
	}
	return out
}

// render prints an AST node back to source text.
func render(fset *token.FileSet, node any) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, node); err != nil {
		return ""
	}
	return buf.String()
}
