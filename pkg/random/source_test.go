package random

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemSource_Failure(t *testing.T) {
	cause := errors.New("ProcessPrng failed")
	src := &SystemSource{reader: iotest.ErrReader(cause)}

	_, err := New(src).Float64()
	require.ErrorIs(t, err, ErrEntropySourceUnavailable)
	require.ErrorIs(t, err, cause)

	var ee *EntropyError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "system", ee.Source)
	assert.Equal(t, OpRead, ee.Op)
}

func TestSystemSource_FixedBytes(t *testing.T) {
	src := &SystemSource{reader: bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})}

	v, err := New(src).Float64()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestFloat64_DefaultSourceFailureIsReturned(t *testing.T) {
	_, err := Default()
	require.NoError(t, err)

	saved := defaultGen
	t.Cleanup(func() { defaultGen = saved })
	defaultGen = New(NewDeviceSource(filepath.Join(t.TempDir(), "missing")))

	v, err := Float64()
	require.ErrorIs(t, err, ErrEntropySourceUnavailable)
	assert.Zero(t, v)

	var ee *EntropyError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, OpOpen, ee.Op)
}
