package app

import (
	"flag"
	"io"

	"github.com/maynagashev/go-entropy/pkg/random"
)

const (
	defaultAddr     = "localhost:8080"
	defaultSource   = string(random.KindAuto)
	defaultLogLevel = "info"
)

// Flags содержит все флаги сервера.
type Flags struct {
	Server struct {
		Addr       string
		Source     string
		DevicePath string
	}
	TrustedSubnet string
	LogLevel      string
	ConfigPath    string
}

// ParseFlags обрабатывает аргументы командной строки и переменные окружения.
// Переменные окружения имеют приоритет над флагами, JSON-файл конфигурации
// применяется последним и только к значениям по умолчанию.
func ParseFlags(args []string, lookupEnv func(string) (string, bool), output io.Writer) (*Flags, error) {
	flags := Flags{}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&flags.Server.Addr, "a", defaultAddr, "address and port to run server")
	fs.StringVar(&flags.Server.Source, "source", defaultSource, "entropy source: auto, system, syscall, device")
	fs.StringVar(&flags.Server.DevicePath, "device", random.DefaultDevicePath, "random device file")
	fs.StringVar(&flags.TrustedSubnet, "t", "", "trusted subnet in CIDR notation")
	fs.StringVar(&flags.LogLevel, "log-level", defaultLogLevel, "log level")
	fs.StringVar(&flags.ConfigPath, "c", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Для случаев, когда в переменной окружения ADDRESS присутствует непустое значение,
	// переопределим адрес запуска сервера,
	// даже если он был передан через аргумент командной строки.
	if v, ok := lookupEnv("ADDRESS"); ok && v != "" {
		flags.Server.Addr = v
	}
	if v, ok := lookupEnv("SOURCE"); ok && v != "" {
		flags.Server.Source = v
	}
	if v, ok := lookupEnv("DEVICE_PATH"); ok && v != "" {
		flags.Server.DevicePath = v
	}
	// TRUSTED_SUBNET применяется даже пустым, чтобы фильтр можно было отключить.
	if v, ok := lookupEnv("TRUSTED_SUBNET"); ok {
		flags.TrustedSubnet = v
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

	return &flags, nil
}
