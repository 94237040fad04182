// Package app реализует основную логику работы HTTP-сервера случайных чисел.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Server представляет собой HTTP-сервер, выдающий случайные числа.
// Ошибки источника энтропии не завершают процесс, а возвращаются клиенту.
type Server struct {
	cfg *Config
}

// New создает новый экземпляр сервера с указанной конфигурацией.
func New(cfg *Config) *Server {
	return &Server{
		cfg: cfg,
	}
}

// Start запускает HTTP-сервер и блокируется до отмены ctx.
// После отмены сервер завершает активные запросы за DefaultShutdownTimeout.
func (s *Server) Start(ctx context.Context, log *zap.Logger, handler http.Handler) error {
	log.Info("starting server", zap.Any("config", s.cfg))

	httpServer := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: handler,
		// Настройка таймаутов для сервера по рекомендациям линтера gosec
		ReadTimeout:       DefaultReadTimeout,
		WriteTimeout:      DefaultWriteTimeout,
		ReadHeaderTimeout: DefaultHeaderTimeout,
		IdleTimeout:       DefaultIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Config возвращает конфигурацию сервера.
func (s *Server) Config() *Config {
	return s.cfg
}
