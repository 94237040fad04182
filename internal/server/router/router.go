package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/maynagashev/go-entropy/internal/server/app"
	"github.com/maynagashev/go-entropy/internal/server/handlers/index"
	"github.com/maynagashev/go-entropy/internal/server/handlers/ping"
	"github.com/maynagashev/go-entropy/internal/server/handlers/value"
	"github.com/maynagashev/go-entropy/internal/server/middleware/ipfilter"
	"github.com/maynagashev/go-entropy/internal/server/middleware/logger"
	"github.com/maynagashev/go-entropy/pkg/random"
)

// New инстанцирует новый роутер.
func New(config *app.Config, src random.Source, log *zap.Logger) chi.Router {
	compressLevel := 5

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Compress(compressLevel, "application/json", "text/plain"))
	r.Use(logger.New(log)) // используем единый логгер для запросов, вместо встроенного логгера chi
	r.Use(ipfilter.New(config, log))

	r.Get("/", index.New())
	r.Get("/value", value.NewPlain(src, log))
	r.Post("/value", value.NewJSON(src, log))
	r.Get("/ping", ping.New(src, log))

	return r
}
