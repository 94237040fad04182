//go:build linux

package random

import (
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// SyscallSource читает байты системным вызовом getrandom(2), без файловых дескрипторов.
// Если вызов завершился ошибкой или вернул меньше байт, чтение повторяется
// через файл устройства.
type SyscallSource struct {
	getrandom func(buf []byte, flags int) (int, error)
	fallback  *DeviceSource
	fallbacks atomic.Uint64
}

// NewSyscallSource создаёт источник getrandom с запасным устройством fallback.
func NewSyscallSource(fallback *DeviceSource) *SyscallSource {
	if fallback == nil {
		fallback = NewDeviceSource(DefaultDevicePath)
	}
	return &SyscallSource{
		getrandom: unix.Getrandom,
		fallback:  fallback,
	}
}

func newSyscallSource(fallback *DeviceSource) (Source, error) {
	return NewSyscallSource(fallback), nil
}

// Name возвращает имя источника.
func (s *SyscallSource) Name() string {
	return string(KindSyscall)
}

// Fallbacks возвращает, сколько раз чтение уходило на запасное устройство.
func (s *SyscallSource) Fallbacks() uint64 {
	return s.fallbacks.Load()
}

// Read заполняет p через getrandom, при сбое через файл устройства.
func (s *SyscallSource) Read(p []byte) (int, error) {
	n, err := s.getrandom(p, 0)
	if err == nil && n == len(p) {
		return n, nil
	}
	if err == nil {
		err = fmt.Errorf("getrandom returned %d of %d bytes", n, len(p))
	}

	s.fallbacks.Add(1)
	n, fbErr := s.fallback.Read(p)
	if fbErr != nil {
		return n, newEntropyError(s.Name(), OpGetrandom, errors.Join(err, fbErr))
	}
	return n, nil
}
