package random

import (
	"errors"
	"fmt"
)

// ErrEntropySourceUnavailable возвращается, если источник энтропии не смог отдать
// запрошенное количество байт: не удалось открыть устройство, вызов API завершился
// ошибкой или прочитано меньше байт, чем нужно.
var ErrEntropySourceUnavailable = errors.New("entropy source unavailable")

// ErrUnsupportedKind возвращается при выборе источника, недоступного на текущей платформе.
var ErrUnsupportedKind = errors.New("entropy source kind is not supported on this platform")

// Операции, в которых может произойти ошибка источника.
const (
	OpOpen      = "open"
	OpRead      = "read"
	OpClose     = "close"
	OpGetrandom = "getrandom"
)

// EntropyError описывает сбой конкретного источника энтропии.
type EntropyError struct {
	Source string // имя источника, например "device:/dev/urandom"
	Op     string // операция, на которой произошёл сбой
	Err    error  // исходная ошибка
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrEntropySourceUnavailable, e.Source, e.Op, e.Err)
}

// Unwrap возвращает исходную ошибку (fs.ErrNotExist, io.ErrUnexpectedEOF и т.п.).
func (e *EntropyError) Unwrap() error {
	return e.Err
}

// Is позволяет сравнивать любую EntropyError с ErrEntropySourceUnavailable через errors.Is.
func (e *EntropyError) Is(target error) bool {
	return target == ErrEntropySourceUnavailable
}

func newEntropyError(source, op string, err error) *EntropyError {
	return &EntropyError{Source: source, Op: op, Err: err}
}
