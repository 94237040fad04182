package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DefaultDevicePath файл устройства, из которого читаются случайные байты.
const DefaultDevicePath = "/dev/urandom"

// Source источник криптографически стойких случайных байт.
type Source interface {
	io.Reader
	// Name возвращает имя источника для диагностики.
	Name() string
}

// SystemSource читает байты через системную криптографическую библиотеку
// (arc4random на macOS и BSD, ProcessPrng/BCryptGenRandom на Windows).
// Ошибка библиотеки не повторяется и не подменяется другим источником.
type SystemSource struct {
	reader io.Reader
}

// NewSystemSource создаёт источник поверх crypto/rand.
func NewSystemSource() *SystemSource {
	return &SystemSource{reader: rand.Reader}
}

// Name возвращает имя источника.
func (s *SystemSource) Name() string {
	return string(KindSystem)
}

// Read заполняет p целиком или возвращает EntropyError.
func (s *SystemSource) Read(p []byte) (int, error) {
	n, err := io.ReadFull(s.reader, p)
	if err != nil {
		return n, newEntropyError(s.Name(), OpRead, err)
	}
	return n, nil
}

// DeviceSource читает байты из файла устройства. Файл открывается и закрывается
// на каждый вызов Read, поэтому источник не держит открытых дескрипторов.
type DeviceSource struct {
	path string
}

// NewDeviceSource создаёт источник для файла path. Пустой path означает DefaultDevicePath.
func NewDeviceSource(path string) *DeviceSource {
	if path == "" {
		path = DefaultDevicePath
	}
	return &DeviceSource{path: path}
}

// Path возвращает путь к файлу устройства.
func (d *DeviceSource) Path() string {
	return d.path
}

// Name возвращает имя источника.
func (d *DeviceSource) Name() string {
	return fmt.Sprintf("%s:%s", KindDevice, d.path)
}

// Read открывает устройство, читает ровно len(p) байт и закрывает его.
func (d *DeviceSource) Read(p []byte) (n int, err error) {
	f, err := os.Open(d.path)
	if err != nil {
		return 0, newEntropyError(d.Name(), OpOpen, pathCause(err))
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = newEntropyError(d.Name(), OpClose, pathCause(closeErr))
		}
	}()

	n, err = io.ReadFull(f, p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return n, newEntropyError(d.Name(), OpRead, fmt.Errorf("read %d of %d bytes: %w", n, len(p), pathCause(err)))
	}
	return n, nil
}

// pathCause снимает *fs.PathError: путь и операция уже есть в EntropyError.
func pathCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
