package fatal_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/maynagashev/go-entropy/internal/fatal"
)

func TestTerminator_Check(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantExit bool
		wantMsg  string
	}{
		{
			name:     "no error",
			err:      nil,
			wantExit: false,
		},
		{
			name:     "entropy failure",
			err:      errors.New("entropy source unavailable: device:/dev/urandom open: permission denied"),
			wantExit: true,
			wantMsg:  "failed to read random value: entropy source unavailable: device:/dev/urandom open: permission denied\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			var stderr bytes.Buffer
			exitCode := -1

			term := fatal.New(zap.New(core)).WithOutput(&stderr, func(code int) {
				exitCode = code
			})
			term.Check(tt.err, "failed to read random value")

			if !tt.wantExit {
				assert.Equal(t, -1, exitCode)
				assert.Empty(t, stderr.String())
				assert.Zero(t, logs.Len())
				return
			}

			assert.Equal(t, fatal.ExitCode, exitCode)
			assert.Equal(t, tt.wantMsg, stderr.String())
			assert.Equal(t, 1, logs.FilterMessage("fatal error").Len())
		})
	}
}

func TestNew_NilLogger(t *testing.T) {
	var stderr bytes.Buffer
	called := false

	fatal.New(nil).WithOutput(&stderr, func(int) { called = true }).Exit(errors.New("boom"))

	assert.True(t, called)
	assert.Equal(t, "boom\n", stderr.String())
}
