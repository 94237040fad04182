// Package ping provides a health check of the entropy source.
package ping

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/maynagashev/go-entropy/pkg/random"
	"github.com/maynagashev/go-entropy/pkg/response"
)

// New возвращает http.HandlerFunc, который проверяет, что источник энтропии отдаёт байты.
func New(src random.Source, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if _, err := random.New(src).Uint32(); err != nil {
			log.Warn("entropy source health check failed", zap.String("source", src.Name()), zap.Error(err))
			response.Error(w, err, http.StatusServiceUnavailable)
			return
		}

		response.OK(w, src.Name())
	}
}
