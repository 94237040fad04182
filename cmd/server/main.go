// Сервер случайных чисел: отдаёт по HTTP криптографически случайные значения
// из единичного интервала. Ошибки источника энтропии возвращаются клиенту
// кодом 503 и не останавливают сервер.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/maynagashev/go-entropy/internal/fatal"
	"github.com/maynagashev/go-entropy/internal/logger"
	"github.com/maynagashev/go-entropy/internal/server/app"
	"github.com/maynagashev/go-entropy/internal/server/router"
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

	flags, err := app.ParseFlags(os.Args[1:], os.LookupEnv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	term.Check(err, "invalid configuration")

	cfg, err := app.NewConfig(flags)
	term.Check(err, "invalid configuration")

	log, err := logger.New(logger.Config{Level: cfg.LogLevel})
	term.Check(err, "failed to init logger")
	term = fatal.New(log)

	printVersion(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term.Check(run(ctx, cfg, log), "server stopped")
	_ = log.Sync()
}

// run выбирает источник энтропии и запускает сервер до отмены ctx.
func run(ctx context.Context, cfg *app.Config, log *zap.Logger) error {
	src, err := cfg.NewSource()
	if err != nil {
		return err
	}
	log.Info("entropy source selected", zap.String("source", src.Name()))

	// Недоступный источник не мешает запуску: /ping и /value ответят 503.
	if _, err = random.New(src).Uint32(); err != nil {
		log.Warn("entropy source is not readable", zap.Error(err))
	}

	return app.New(cfg).Start(ctx, log, router.New(cfg, src, log))
}
