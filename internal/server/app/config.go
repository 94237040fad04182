package app

import (
	"time"

	"github.com/maynagashev/go-entropy/pkg/random"
)

const (
	// HTTP server timeouts.
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultHeaderTimeout   = 5 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// Config конфигурация сервера случайных чисел.
type Config struct {
	Addr string
	// Источник энтропии: auto, system, syscall, device.
	Source random.Kind
	// Файл устройства для источника device и запасного чтения syscall.
	DevicePath string
	// Доверенная подсеть в формате CIDR, пустая строка отключает фильтр.
	TrustedSubnet string
	// Уровень логирования.
	LogLevel string
}

// NewConfig создаёт конфигурацию из разобранных флагов.
func NewConfig(flags *Flags) (*Config, error) {
	kind, err := random.ParseKind(flags.Server.Source)
	if err != nil {
		return nil, err
	}
	return &Config{
		Addr:          flags.Server.Addr,
		Source:        kind,
		DevicePath:    flags.Server.DevicePath,
		TrustedSubnet: flags.TrustedSubnet,
		LogLevel:      flags.LogLevel,
	}, nil
}

// IsTrustedSubnetEnabled возвращает true, если указана доверенная подсеть.
func (cfg *Config) IsTrustedSubnetEnabled() bool {
	return cfg.TrustedSubnet != ""
}

// NewSource выбирает источник энтропии по конфигурации.
func (cfg *Config) NewSource() (random.Source, error) {
	return random.Select(cfg.Source, cfg.DevicePath)
}
