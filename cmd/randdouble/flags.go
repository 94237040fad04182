package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/maynagashev/go-entropy/pkg/random"
)

const (
	defaultSource   = string(random.KindAuto)
	defaultInterval = "closed"
	defaultLogLevel = "warn"
)

// Flags содержит все флаги утилиты.
type Flags struct {
	Source     string
	DevicePath string
	Interval   string
	LogLevel   string
	ConfigPath string
	Version    bool
}

// lookupEnvFunc совпадает по сигнатуре с os.LookupEnv.
type lookupEnvFunc func(key string) (string, bool)

// parseFlags обрабатывает аргументы командной строки, переменные окружения и JSON-конфиг.
// Приоритет: переменные окружения, затем флаги, затем файл конфигурации.
func parseFlags(args []string, lookupEnv lookupEnvFunc, output io.Writer) (*Flags, error) {
	flags := Flags{}

	fs := flag.NewFlagSet("randdouble", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&flags.Source, "source", defaultSource, "entropy source: auto, system, syscall, device")
	fs.StringVar(&flags.DevicePath, "device", random.DefaultDevicePath, "random device file")
	fs.StringVar(&flags.Interval, "interval", defaultInterval, "output interval: closed or half-open")
	fs.StringVar(&flags.LogLevel, "log-level", defaultLogLevel, "log level")
	fs.StringVar(&flags.ConfigPath, "config", "", "path to JSON config file")
	fs.BoolVar(&flags.Version, "version", false, "print build info and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if v, ok := lookupEnv("SOURCE"); ok && v != "" {
		flags.Source = v
	}
	if v, ok := lookupEnv("DEVICE_PATH"); ok && v != "" {
		flags.DevicePath = v
	}
	if v, ok := lookupEnv("INTERVAL"); ok && v != "" {
		flags.Interval = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok && v != "" {
		flags.LogLevel = v
	}
	if v, ok := lookupEnv("CONFIG"); ok && v != "" {
		flags.ConfigPath = v
	}

	jsonConfig, err := LoadJSONConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	ApplyJSONConfig(&flags, jsonConfig)

	if _, err = random.ParseKind(flags.Source); err != nil {
		return nil, err
	}
	if _, err = random.ParseInterval(flags.Interval); err != nil {
		return nil, err
	}

	return &flags, nil
}

// options возвращает разобранные тип источника и интервал.
func (f *Flags) options() (random.Kind, random.Interval, error) {
	kind, err := random.ParseKind(f.Source)
	if err != nil {
		return "", random.Closed, fmt.Errorf("invalid source: %w", err)
	}
	iv, err := random.ParseInterval(f.Interval)
	if err != nil {
		return "", random.Closed, fmt.Errorf("invalid interval: %w", err)
	}
	return kind, iv, nil
}
