package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New monta o logger do serviço. JSON por padrão; LOG_FORMAT=console
// troca para saída legível em desenvolvimento.
func New(service string) zerolog.Logger {
	var out = zerolog.New(os.Stdout)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
		out = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return out.With().
		Timestamp().
		Str("service", service).
		Logger().
		Level(ParseLevel(os.Getenv("LOG_LEVEL")))
}

func ParseLevel(value string) zerolog.Level {
	if value == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(value))); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}
