package parser

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"

	"github.com/archlint/archlint/internal/domain"
)

// GoParser implements domain.CodeAnalyzer using go/ast.
type GoParser struct{}

func New() *GoParser {
	return &GoParser{}
}

func (p *GoParser) ParseFile(filePath string) (*domain.ParsedFile, error) {
	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, filePath, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}

	result := &domain.ParsedFile{
		Path:    filePath,
		Package: file.Name.Name,
	}

	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.GenDecl:
			for _, spec := range node.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				result.Types = append(result.Types, typeDecl(fset, ts))
			}
		case *ast.CallExpr:
			if call, ok := callSite(fset, node); ok {
				result.Calls = append(result.Calls, call)
			}
		}
		return true
	})

	return result, nil
}

func typeDecl(fset *token.FileSet, ts *ast.TypeSpec) domain.TypeDecl {
	decl := domain.TypeDecl{
		Name: ts.Name.Name,
		Line: fset.Position(ts.Pos()).Line,
	}

	switch t := ts.Type.(type) {
	case *ast.InterfaceType:
		decl.Kind = domain.TypeKindInterface
		for _, field := range t.Methods.List {
			// Embedded interfaces have no field names; methods do.
			if len(field.Names) == 0 {
				if name := typeRefName(field.Type); name != "" {
					decl.Bases = append(decl.Bases, name)
				}
			}
		}
	case *ast.StructType:
		decl.Kind = domain.TypeKindStruct
		for _, field := range t.Fields.List {
			if len(field.Names) == 0 {
				if name := typeRefName(field.Type); name != "" {
					decl.Bases = append(decl.Bases, name)
				}
			}
		}
	default:
		decl.Kind = domain.TypeKindAlias
		if name := typeRefName(ts.Type); name != "" {
			decl.Bases = append(decl.Bases, name)
		}
	}

	return decl
}

// typeRefName resolves a type reference expression to its simple or dotted
// name, stripping pointers and generic subscripts. Unhandled node kinds
// resolve to "".
func typeRefName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		qualifier := typeRefName(t.X)
		if qualifier == "" {
			return t.Sel.Name
		}
		return qualifier + "." + t.Sel.Name
	case *ast.StarExpr:
		return typeRefName(t.X)
	case *ast.IndexExpr:
		return typeRefName(t.X)
	case *ast.IndexListExpr:
		return typeRefName(t.X)
	default:
		return ""
	}
}

// callSite extracts the callee of a call expression when it is a bare name
// or a single-level selector off an identifier. Anything deeper (chained
// calls, method values) is not a pattern the rules match.
func callSite(fset *token.FileSet, call *ast.CallExpr) (domain.CallSite, bool) {
	line := fset.Position(call.Pos()).Line

	switch fn := call.Fun.(type) {
	case *ast.Ident:
		return domain.CallSite{Line: line, Name: fn.Name}, true
	case *ast.SelectorExpr:
		recv, ok := fn.X.(*ast.Ident)
		if !ok {
			return domain.CallSite{}, false
		}
		return domain.CallSite{Line: line, Receiver: recv.Name, Name: fn.Sel.Name}, true
	default:
		return domain.CallSite{}, false
	}
}
