package random

import (
	"fmt"
	"strings"
)

// Kind тип источника энтропии.
type Kind string

const (
	// KindAuto лучший источник для текущей платформы.
	KindAuto Kind = "auto"
	// KindSystem системная криптографическая библиотека.
	KindSystem Kind = "system"
	// KindSyscall системный вызов getrandom (только Linux) с запасным чтением устройства.
	KindSyscall Kind = "syscall"
	// KindDevice файл устройства, по умолчанию /dev/urandom.
	KindDevice Kind = "device"
)

// ParseKind разбирает название источника. Пустая строка означает KindAuto.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindAuto, nil
	case KindAuto, KindSystem, KindSyscall, KindDevice:
		return k, nil
	default:
		return "", fmt.Errorf("unknown entropy source %q (want auto, system, syscall or device)", s)
	}
}

// PlatformKind возвращает источник, который KindAuto выбирает на текущей платформе.
func PlatformKind() Kind {
	return platformKind
}

// Select создаёт источник указанного типа. devicePath используется источником
// device и как запасной путь для syscall.
func Select(kind Kind, devicePath string) (Source, error) {
	if kind == KindAuto || kind == "" {
		kind = platformKind
	}

	switch kind {
	case KindSystem:
		return NewSystemSource(), nil
	case KindSyscall:
		return newSyscallSource(NewDeviceSource(devicePath))
	case KindDevice:
		return NewDeviceSource(devicePath), nil
	default:
		return nil, fmt.Errorf("select %q: %w", kind, ErrUnsupportedKind)
	}
}
