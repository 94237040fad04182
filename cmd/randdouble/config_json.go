package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/maynagashev/go-entropy/pkg/random"
)

// JSONConfig представляет структуру конфигурационного файла утилиты в формате JSON.
type JSONConfig struct {
	Source     string `json:"source"`      // Источник энтропии: auto, system, syscall, device
	DevicePath string `json:"device_path"` // Файл устройства для device и запасного чтения syscall
	Interval   string `json:"interval"`    // closed или half-open
	LogLevel   string `json:"log_level"`   // Уровень логирования
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
// Значение из файла применяется, только если флаг остался со значением по умолчанию.
func ApplyJSONConfig(flags *Flags, jsonConfig *JSONConfig) {
	if jsonConfig == nil {
		return
	}

	if flags.Source == defaultSource && jsonConfig.Source != "" {
		flags.Source = jsonConfig.Source
	}
	if flags.DevicePath == random.DefaultDevicePath && jsonConfig.DevicePath != "" {
		flags.DevicePath = jsonConfig.DevicePath
	}
	if flags.Interval == defaultInterval && jsonConfig.Interval != "" {
		flags.Interval = jsonConfig.Interval
	}
	if flags.LogLevel == defaultLogLevel && jsonConfig.LogLevel != "" {
		flags.LogLevel = jsonConfig.LogLevel
	}
}
