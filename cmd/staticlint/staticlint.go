// Staticlint реализует мультичекер для проверки кода модуля.
//
// Включает анализаторы golang.org/x/tools (printf, shadow, structtag),
// анализаторы staticcheck (SA*) и stylecheck (ST*) из honnef.co/go/tools
// и собственные анализаторы:
//   - noexit: процесс завершается только через internal/fatal;
//   - insecurerand: math/rand не используется вне тестов.
//
// Набор SA/ST анализаторов задаётся файлом cmd/staticlint/config.json.
// Если файла нет или список пуст, включаются все анализаторы группы.
//
// Запуск: go run ./cmd/staticlint ./...
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/maynagashev/go-entropy/cmd/staticlint/passes/insecurerand"
	"github.com/maynagashev/go-entropy/cmd/staticlint/passes/noexit"
)

// Config имя файла конфигурации.
const Config = `cmd/staticlint/config.json`

// ConfigData описывает структуру файла конфигурации.
type ConfigData struct {
	Staticcheck []string `json:"staticcheck"`
	Stylecheck  []string `json:"stylecheck"`
}

// loadConfig читает файл конфигурации. Отсутствующий файл не является ошибкой.
func loadConfig(path string) (*ConfigData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &ConfigData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ConfigData
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// selectAnalyzers возвращает анализаторы из lints, имена которых перечислены в names.
// Пустой names означает все анализаторы.
func selectAnalyzers(lints []*lint.Analyzer, names []string) []*analysis.Analyzer {
	enabled := make(map[string]bool, len(names))
	for _, name := range names {
		enabled[name] = true
	}

	result := make([]*analysis.Analyzer, 0, len(lints))
	for _, a := range lints {
		if len(names) == 0 || enabled[a.Analyzer.Name] {
			result = append(result, a.Analyzer)
		}
	}
	return result
}

// buildAnalyzers собирает итоговый список анализаторов по конфигурации.
func buildAnalyzers(cfg *ConfigData) []*analysis.Analyzer {
	mychecks := []*analysis.Analyzer{
		// анализаторы из golang.org/x/tools/go/analysis/passes
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,

		// собственные анализаторы
		noexit.Analyzer,
		insecurerand.Analyzer,
	}

	mychecks = append(mychecks, selectAnalyzers(staticcheck.Analyzers, cfg.Staticcheck)...)
	mychecks = append(mychecks, selectAnalyzers(stylecheck.Analyzers, cfg.Stylecheck)...)
	return mychecks
}

// printAnalyzersList выводит нумерованный список анализаторов с первой строкой описания.
func printAnalyzersList(analyzers []*analysis.Analyzer) {
	log.Println("Итоговый список анализаторов:")
	for i, analyzer := range analyzers {
		description := analyzer.Doc
		if newlineIndex := strings.Index(description, "\n"); newlineIndex != -1 {
			description = description[:newlineIndex]
		}
		log.Printf("%d. %s: %s\n", i+1, analyzer.Name, description)
	}
}

func main() {
	log.SetOutput(os.Stdout)

	cfg, err := loadConfig(Config)
	if err != nil {
		log.Println("Ошибка при чтении конфигурационного файла, используются все анализаторы:", err)
		cfg = &ConfigData{}
	}

	mychecks := buildAnalyzers(cfg)
	printAnalyzersList(mychecks)

	multichecker.Main(mychecks...)
}
