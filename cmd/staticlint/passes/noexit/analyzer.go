// Package noexit проверяет, что процесс завершается только через пакет fatal.
//
// # Обзор
//
// Утилиты модуля при недоступном источнике энтропии обязаны писать диагностику
// в stderr и завершаться с ненулевым кодом. Эта логика собрана в пакете
// internal/fatal. Анализатор noexit сообщает о вызовах os.Exit и log.Fatal*
// в любом другом пакете, включая main: такие вызовы обходят общий формат
// сообщений и пропускают отложенные функции.
//
// Файлы тестов (_test.go) не проверяются.
//
// # Пример
//
// Следующий код вызовет предупреждение:
//
//	func main() {
//		if err := run(); err != nil {
//			os.Exit(1) // direct call to os.Exit outside package fatal
//		}
//	}
//
// Вместо этого используйте fatal.New(log).Check(err, "...").
package noexit

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// AllowedPackage имя единственного пакета, которому разрешено завершать процесс.
const AllowedPackage = "fatal"

// Analyzer - анализатор для проверки noexit.
var Analyzer = &analysis.Analyzer{
	Name:     "noexit",
	Doc:      "check that only package fatal terminates the process via os.Exit or log.Fatal",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// exitFuncs функции, завершающие процесс, по пакетам.
//
//nolint:gochecknoglobals // таблица только для чтения
var exitFuncs = map[string]map[string]bool{
	"os":  {"Exit": true},
	"log": {"Fatal": true, "Fatalf": true, "Fatalln": true},
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == AllowedPackage {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		if isTestFile(pass, call) {
			return
		}

		if pkg, name, ok := exitCall(pass, call); ok {
			pass.Reportf(call.Pos(), "direct call to %s.%s outside package %s", pkg, name, AllowedPackage)
		}
	})

	return nil, nil
}

// exitCall возвращает пакет и имя функции, если call завершает процесс.
func exitCall(pass *analysis.Pass, call *ast.CallExpr) (string, string, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return "", "", false
	}

	fn, ok := pass.TypesInfo.ObjectOf(sel.Sel).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return "", "", false
	}

	// методы вроде (*log.Logger).Fatal тоже завершают процесс
	pkgPath := fn.Pkg().Path()
	if exitFuncs[pkgPath][fn.Name()] {
		return pkgPath, fn.Name(), true
	}
	return "", "", false
}

func isTestFile(pass *analysis.Pass, node ast.Node) bool {
	return strings.HasSuffix(pass.Fset.Position(node.Pos()).Filename, "_test.go")
}
