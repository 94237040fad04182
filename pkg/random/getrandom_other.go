//go:build !linux

package random

import "fmt"

func newSyscallSource(_ *DeviceSource) (Source, error) {
	return nil, fmt.Errorf("select %q: %w", KindSyscall, ErrUnsupportedKind)
}
