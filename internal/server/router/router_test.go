package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maynagashev/go-entropy/internal/server/app"
	"github.com/maynagashev/go-entropy/internal/server/router"
	"github.com/maynagashev/go-entropy/pkg/random"
	"github.com/maynagashev/go-entropy/pkg/response"
)

func TestNew(t *testing.T) {
	config := &app.Config{Addr: "localhost:8080", Source: random.KindSystem}
	src, err := config.NewSource()
	require.NoError(t, err)

	r := router.New(config, src, zap.NewNop())
	require.NotNil(t, r)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "GET /", method: http.MethodGet, path: "/", expectedStatus: http.StatusOK},
		{name: "GET /value", method: http.MethodGet, path: "/value", expectedStatus: http.StatusOK},
		{name: "GET /value/ strips slash", method: http.MethodGet, path: "/value/", expectedStatus: http.StatusOK},
		{name: "POST /value", method: http.MethodPost, path: "/value", expectedStatus: http.StatusOK},
		{name: "GET /ping", method: http.MethodGet, path: "/ping", expectedStatus: http.StatusOK},
		{name: "DELETE /value", method: http.MethodDelete, path: "/value", expectedStatus: http.StatusMethodNotAllowed},
		{name: "GET /unknown", method: http.MethodGet, path: "/unknown", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestRouter_EndToEnd(t *testing.T) {
	device := filepath.Join(t.TempDir(), "urandom")
	require.NoError(t, os.WriteFile(device, []byte{0xFF, 0xFF, 0xFF, 0xFF}, 0o600))

	config := &app.Config{Source: random.KindDevice, DevicePath: device}
	src, err := config.NewSource()
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(config, src, zap.NewNop()))
	defer srv.Close()

	client := resty.New().SetBaseURL(srv.URL)

	resp, err := client.R().Get("/value")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "1", resp.String())

	resp, err = client.R().SetQueryParam("interval", "half-open").Get("/value")
	require.NoError(t, err)
	v, err := strconv.ParseFloat(resp.String(), 64)
	require.NoError(t, err)
	assert.Less(t, v, 1.0)

	var body response.Response
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"interval": "closed"}).
		SetResult(&body).
		Post("/value")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	require.NotNil(t, body.Value)
	assert.Equal(t, 1.0, *body.Value)
	assert.Equal(t, src.Name(), body.Source)
	assert.Equal(t, "closed", body.Interval)

	// Source disappears while the server keeps running.
	require.NoError(t, os.Remove(device))

	resp, err = client.R().Post("/value")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())

	var errBody response.Response
	require.NoError(t, json.Unmarshal(resp.Body(), &errBody))
	assert.Equal(t, response.StatusError, errBody.Status)
	assert.Contains(t, errBody.Error, "entropy source unavailable")

	resp, err = client.R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
}

func TestRouter_TrustedSubnet(t *testing.T) {
	config := &app.Config{Source: random.KindSystem, TrustedSubnet: "10.0.0.0/8"}
	src, err := config.NewSource()
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(config, src, zap.NewNop()))
	defer srv.Close()

	client := resty.New().SetBaseURL(srv.URL)

	resp, err := client.R().SetHeader("X-Real-IP", "10.1.2.3").Get("/value")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().SetHeader("X-Real-IP", "192.168.0.1").Get("/value")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())
}
