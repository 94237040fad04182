// Package insecurerand запрещает math/rand вне тестов.
//
// Все случайные значения модуля должны приходить из источников энтропии
// операционной системы (pkg/random). Генераторы math/rand и math/rand/v2
// детерминированы от seed и не подходят для этого, поэтому их импорт
// в непроверочном коде считается ошибкой.
package insecurerand

import (
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Analyzer - анализатор для проверки insecurerand.
var Analyzer = &analysis.Analyzer{
	Name: "insecurerand",
	Doc:  "check that math/rand is not imported outside tests",
	Run:  run,
}

var forbidden = map[string]bool{
	"math/rand":    true,
	"math/rand/v2": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		name := pass.Fset.Position(file.Pos()).Filename
		if strings.HasSuffix(name, "_test.go") {
			continue
		}

		for _, imp := range file.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil || !forbidden[path] {
				continue
			}
			pass.Reportf(imp.Pos(), "import of %s: use pkg/random for cryptographically secure values", path)
		}
	}
	return nil, nil
}
