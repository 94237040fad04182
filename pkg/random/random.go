// Package random предоставляет функции для генерации случайных чисел.
// Использует криптографически стойкие источники энтропии операционной системы:
// системную криптографическую библиотеку, системный вызов getrandom или файл устройства.
//
// Источник выбирается один раз (см. Select и KindAuto), после чего каждый вызов
// читает ровно 4 байта и превращает их в float64 из единичного интервала.
package random

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
)

// rawSize количество байт, читаемых из источника за один вызов.
const rawSize = 4

// Generator генерирует случайные числа float64 из выбранного источника энтропии.
type Generator struct {
	src      Source
	interval Interval
}

// Option настраивает Generator.
type Option func(*Generator)

// WithInterval задаёт интервал возвращаемых значений.
func WithInterval(iv Interval) Option {
	return func(g *Generator) {
		g.interval = iv
	}
}

// New создаёт генератор поверх источника src. По умолчанию используется Closed.
func New(src Source, opts ...Option) *Generator {
	g := &Generator{
		src:      src,
		interval: Closed,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Source возвращает источник энтропии генератора.
func (g *Generator) Source() Source {
	return g.src
}

// Interval возвращает интервал, в котором генератор выдаёт значения.
func (g *Generator) Interval() Interval {
	return g.interval
}

// Uint32 читает 4 байта из источника и интерпретирует их в нативном порядке байт.
func (g *Generator) Uint32() (uint32, error) {
	var buf [rawSize]byte

	n, err := io.ReadFull(g.src, buf[:])
	if err != nil {
		return 0, asEntropyError(g.src.Name(), n, err)
	}

	return binary.NativeEndian.Uint32(buf[:]), nil
}

// Float64 возвращает случайное число в интервале генератора.
func (g *Generator) Float64() (float64, error) {
	raw, err := g.Uint32()
	if err != nil {
		return 0, err
	}
	return Convert(raw, g.interval), nil
}

// Convert преобразует сырое значение в float64.
// Для Closed делитель равен 2^32-1, поэтому максимальное raw даёт ровно 1.0.
// Для HalfOpen делитель 2^32, и 1.0 недостижима.
func Convert(raw uint32, iv Interval) float64 {
	if iv == HalfOpen {
		return float64(raw) / (float64(math.MaxUint32) + 1)
	}
	return float64(raw) / float64(math.MaxUint32)
}

// FromBytes преобразует 4 байта в нативном порядке в float64.
func FromBytes(b [rawSize]byte, iv Interval) float64 {
	return Convert(binary.NativeEndian.Uint32(b[:]), iv)
}

func asEntropyError(source string, n int, err error) error {
	var ee *EntropyError
	if errors.As(err, &ee) {
		return ee
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		err = fmt.Errorf("read %d of %d bytes: %w", n, rawSize, io.ErrUnexpectedEOF)
	}
	return newEntropyError(source, OpRead, err)
}

//nolint:gochecknoglobals // генератор по умолчанию выбирается один раз на процесс
var (
	defaultOnce sync.Once
	defaultGen  *Generator
	defaultErr  error
)

// Default возвращает генератор с источником, выбранным для текущей платформы.
// Выбор выполняется один раз; ошибка выбора также запоминается.
func Default() (*Generator, error) {
	defaultOnce.Do(func() {
		src, err := Select(KindAuto, DefaultDevicePath)
		if err != nil {
			defaultErr = err
			return
		}
		defaultGen = New(src)
	})
	return defaultGen, defaultErr
}

// Float64 генерирует случайное число типа float64 в диапазоне [0, 1]
// с помощью генератора по умолчанию.
func Float64() (float64, error) {
	g, err := Default()
	if err != nil {
		return 0, err
	}
	return g.Float64()
}
