// Package value provides handlers for the /value endpoint.
package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/maynagashev/go-entropy/pkg/random"
	"github.com/maynagashev/go-entropy/pkg/response"
)

// Request тело запроса `POST /value`. Пустое тело означает интервал closed.
type Request struct {
	Interval string `json:"interval"`
}

// NewPlain хэндлер `GET /value`, отдаёт число текстом.
// Интервал задаётся параметром ?interval=closed|half-open.
// Ошибка источника отдаётся в JSON, как и в `POST /value`.
func NewPlain(src random.Source, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		iv, err := random.ParseInterval(r.URL.Query().Get("interval"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		v, err := random.New(src, random.WithInterval(iv)).Float64()
		if err != nil {
			log.Error("failed to read entropy source", zap.String("source", src.Name()), zap.Error(err))
			response.Error(w, err, statusFor(err))
			return
		}

		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(strconv.FormatFloat(v, 'g', -1, 64)))
	}
}

// NewJSON хэндлер `POST /value`, отдаёт число в JSON вместе с именем источника.
func NewJSON(src random.Source, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseRequest(r)
		if err != nil {
			response.Error(w, err, http.StatusBadRequest)
			return
		}

		iv, err := random.ParseInterval(req.Interval)
		if err != nil {
			response.Error(w, err, http.StatusBadRequest)
			return
		}

		v, err := random.New(src, random.WithInterval(iv)).Float64()
		if err != nil {
			log.Error("failed to read entropy source", zap.String("source", src.Name()), zap.Error(err))
			response.Error(w, err, statusFor(err))
			return
		}

		response.Value(w, v, src.Name(), iv.String())
	}
}

// Читаем параметры из json запроса.
func parseRequest(r *http.Request) (Request, error) {
	req := Request{}
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r.Body); err != nil {
		return req, err
	}
	if buf.Len() == 0 {
		return req, nil
	}
	if err := json.Unmarshal(buf.Bytes(), &req); err != nil {
		return req, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}

// statusFor возвращает 503 для недоступного источника, иначе 500.
func statusFor(err error) int {
	if errors.Is(err, random.ErrEntropySourceUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
