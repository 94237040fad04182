// Утилита печатает одно криптографически случайное число из единичного интервала.
// При недоступном источнике энтропии процесс завершается с ненулевым кодом
// и сообщением в stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/maynagashev/go-entropy/internal/fatal"
	"github.com/maynagashev/go-entropy/internal/logger"
	"github.com/maynagashev/go-entropy/pkg/random"
)

// Глобальные переменные для информации о сборке.
//
//nolint:gochecknoglobals // Эти переменные необходимы для информации о версии и задаются при сборке
var (
	BuildVersion = "N/A"
	BuildDate    = "N/A"
	BuildCommit  = "N/A"
)

// printVersion выводит информацию о версии сборки.
func printVersion(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Build version:", BuildVersion)
	_, _ = fmt.Fprintln(w, "Build date:", BuildDate)
	_, _ = fmt.Fprintln(w, "Build commit:", BuildCommit)
}

func main() {
	term := fatal.New(nil)

	flags, err := parseFlags(os.Args[1:], os.LookupEnv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	term.Check(err, "invalid configuration")

	if flags.Version {
		printVersion(os.Stdout)
		return
	}

	log, err := logger.New(logger.Config{Level: flags.LogLevel})
	term.Check(err, "failed to init logger")

	fatal.New(log).Check(run(flags, os.Stdout, log), "failed to get random value")
	_ = log.Sync()
}

// run выбирает источник, читает одно значение и печатает его в w.
func run(flags *Flags, w io.Writer, log *zap.Logger) error {
	kind, iv, err := flags.options()
	if err != nil {
		return err
	}

	src, err := random.Select(kind, flags.DevicePath)
	if err != nil {
		return err
	}
	log.Debug("entropy source selected",
		zap.String("source", src.Name()),
		zap.Stringer("interval", iv))

	value, err := random.New(src, random.WithInterval(iv)).Float64()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, strconv.FormatFloat(value, 'g', -1, 64))
	return err
}
