package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// logger fields
const (
	PACKAGE = "pkg"
	EVENT   = "event"
	ID      = "id"
	STATUS  = "status"
	COMPANY = "company"
	KEY     = "key"
	REQUEST = "request_id"
)

// Options настройки логгера
type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// New returns a zerolog.Logger, JSON by default and human readable for "console"/"text".
func New(opts Options) zerolog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	switch strings.ToLower(opts.Format) {
	case "console", "text":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
}

// ParseLevel falls back to info on empty or unknown input.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// ForPackage returns a child logger with pkg={name}.
func ForPackage(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(PACKAGE, name).Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
