//go:build linux

package random

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func writeDevice(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urandom")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestSyscallSource_UsesGetrandom(t *testing.T) {
	src := NewSyscallSource(NewDeviceSource(filepath.Join(t.TempDir(), "missing")))
	src.getrandom = func(buf []byte, _ int) (int, error) {
		for i := range buf {
			buf[i] = 0xFF
		}
		return len(buf), nil
	}

	v, err := New(src).Float64()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Zero(t, src.Fallbacks())
}

func TestSyscallSource_FallsBackOnError(t *testing.T) {
	src := NewSyscallSource(NewDeviceSource(writeDevice(t, []byte{0, 0, 0, 0})))
	src.getrandom = func(_ []byte, _ int) (int, error) {
		return -1, unix.ENOSYS
	}

	v, err := New(src).Float64()
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, uint64(1), src.Fallbacks())
}

func TestSyscallSource_FallsBackOnShortRead(t *testing.T) {
	src := NewSyscallSource(NewDeviceSource(writeDevice(t, []byte{0xFF, 0xFF, 0xFF, 0xFF})))
	src.getrandom = func(buf []byte, _ int) (int, error) {
		buf[0] = 0x01
		return 1, nil
	}

	v, err := New(src).Float64()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, uint64(1), src.Fallbacks())
}

func TestSyscallSource_FallbackFails(t *testing.T) {
	src := NewSyscallSource(NewDeviceSource(filepath.Join(t.TempDir(), "missing")))
	src.getrandom = func(_ []byte, _ int) (int, error) {
		return -1, unix.EPERM
	}

	_, err := New(src).Float64()
	require.ErrorIs(t, err, ErrEntropySourceUnavailable)
	require.ErrorIs(t, err, unix.EPERM)

	var ee *EntropyError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, OpGetrandom, ee.Op)
	assert.Equal(t, "syscall", ee.Source)
}

func TestNewSyscallSource_DefaultFallback(t *testing.T) {
	src := NewSyscallSource(nil)
	assert.Equal(t, DefaultDevicePath, src.fallback.Path())
}

func openFDs(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	return len(entries)
}

func TestDeviceSource_NoDescriptorLeak(t *testing.T) {
	src := NewDeviceSource(DefaultDevicePath)
	missing := NewDeviceSource(filepath.Join(t.TempDir(), "missing"))
	short := NewDeviceSource(writeDevice(t, []byte{1}))

	// warm up the runtime poller so it does not count as a leak
	_, err := New(src).Float64()
	require.NoError(t, err)

	before := openFDs(t)
	for i := 0; i < 200; i++ {
		_, err = New(src).Float64()
		require.NoError(t, err)

		_, err = New(missing).Float64()
		require.Error(t, err)

		_, err = New(short).Float64()
		require.Error(t, err)
	}
	after := openFDs(t)

	assert.Equal(t, before, after)
}
