// Package fatal завершает процесс при неустранимой ошибке.
// Это единственное место модуля, где вызывается os.Exit: утилиты командной
// строки передают сюда ошибки источника энтропии вместо того, чтобы завершаться сами.
package fatal

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// ExitCode код завершения процесса при фатальной ошибке.
const ExitCode = 1

// Terminator пишет диагностику в поток ошибок и завершает процесс.
type Terminator struct {
	log    *zap.Logger
	stderr io.Writer
	exit   func(code int)
}

// New создаёт Terminator, который пишет в os.Stderr и вызывает os.Exit.
func New(log *zap.Logger) *Terminator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Terminator{
		log:    log,
		stderr: os.Stderr,
		exit:   os.Exit,
	}
}

// WithOutput подменяет поток ошибок и функцию выхода. Используется в тестах.
func (t *Terminator) WithOutput(stderr io.Writer, exit func(code int)) *Terminator {
	t.stderr = stderr
	t.exit = exit
	return t
}

// Check ничего не делает при err == nil, иначе завершает процесс.
func (t *Terminator) Check(err error, msg string) {
	if err == nil {
		return
	}
	t.Exit(fmt.Errorf("%s: %w", msg, err))
}

// Exit пишет err в поток ошибок и завершает процесс с ExitCode.
func (t *Terminator) Exit(err error) {
	t.log.Error("fatal error", zap.Error(err))
	_ = t.log.Sync()

	// сообщение пишется напрямую, чтобы не зависеть от уровня логирования
	_, _ = fmt.Fprintln(t.stderr, err)
	t.exit(ExitCode)
}
