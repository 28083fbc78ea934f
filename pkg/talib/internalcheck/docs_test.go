package internalcheck

import (
	"fmt"
	"go/ast"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

func TestExportedFuncsDocumented(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}

	pkgs, err := packages.Load(cfg, modulePath+"/pkg/talib")
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || !fn.Name.IsExported() || fn.Doc != nil {
					continue
				}
				name := fn.Name.Name
				if fn.Recv != nil {
					recv := receiverName(fn.Recv.List[0].Type)
					if !ast.IsExported(recv) {
						continue
					}
					name = recv + "." + name
				}
				pos := pkg.Fset.Position(fn.Pos())
				findings = append(findings, fmt.Sprintf("%s:%d: %s has no doc comment", pos.Filename, pos.Line, name))
			}
		}
	}

	if len(findings) > 0 {
		sort.Strings(findings)
		t.Fatalf("undocumented exported functions:\n%s", strings.Join(findings, "\n"))
	}
}

func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return ""
}
