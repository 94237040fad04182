package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/maynagashev/go-entropy/pkg/random"
)

// JSONConfig представляет структуру конфигурационного файла сервера в формате JSON.
type JSONConfig struct {
	Address       string `json:"address"`        // Адрес и порт сервера
	Source        string `json:"source"`         // Источник энтропии
	DevicePath    string `json:"device_path"`    // Файл устройства
	TrustedSubnet string `json:"trusted_subnet"` // Доверенная подсеть в формате CIDR
	LogLevel      string `json:"log_level"`      // Уровень логирования
}

// LoadJSONConfig загружает конфигурацию из JSON-файла.
// Возвращает nil, если файл не указан.
func LoadJSONConfig(filePath string) (*JSONConfig, error) {
	if filePath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config JSONConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// ApplyJSONConfig применяет настройки из JSON-конфигурации к флагам.
// Настройки из JSON имеют более низкий приоритет, чем флаги командной строки и переменные окружения.
func ApplyJSONConfig(flags *Flags, jsonConfig *JSONConfig) {
	if jsonConfig == nil {
		return
	}

	if flags.Server.Addr == defaultAddr && jsonConfig.Address != "" {
		flags.Server.Addr = jsonConfig.Address
	}
	if flags.Server.Source == defaultSource && jsonConfig.Source != "" {
		flags.Server.Source = jsonConfig.Source
	}
	if flags.Server.DevicePath == random.DefaultDevicePath && jsonConfig.DevicePath != "" {
		flags.Server.DevicePath = jsonConfig.DevicePath
	}
	if flags.TrustedSubnet == "" && jsonConfig.TrustedSubnet != "" {
		flags.TrustedSubnet = jsonConfig.TrustedSubnet
	}
	if flags.LogLevel == defaultLogLevel && jsonConfig.LogLevel != "" {
		flags.LogLevel = jsonConfig.LogLevel
	}
}
