package logger_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/maynagashev/go-entropy/internal/server/middleware/logger"
)

func TestLoggerMiddleware(t *testing.T) {
	// Create a logger that records logs for testing
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	observedLogger := zap.New(observedZapCore)

	req := httptest.NewRequest(http.MethodGet, "/value?interval=half-open", nil)
	rr := httptest.NewRecorder()

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, err := w.Write([]byte("entropy source unavailable"))
		if err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	})

	handler := logger.New(observedLogger)(testHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, 1, observedLogs.FilterMessage("logger middleware enabled").Len())

	completed := observedLogs.FilterMessage("request completed").All()
	require.Len(t, completed, 1)

	fields := completed[0].ContextMap()
	assert.Equal(t, int64(http.StatusServiceUnavailable), fields["status"])
	assert.Equal(t, int64(len("entropy source unavailable")), fields["response_bytes"])
	assert.Equal(t, "/value", fields["path"])
	assert.Equal(t, "interval=half-open", fields["query"])
	assert.Equal(t, http.MethodGet, fields["method"])
}
