package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

var (
	logger zerolog.Logger
	mu     sync.RWMutex
)

func init() {
	logger = newLogger("info", "json", os.Stderr)
}

// InitLogger настраивает глобальный zerolog логгер. Повторный вызов перенастраивает его.
func InitLogger(level, format string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(level, format, out)
}

func newLogger(level, format string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Logger возвращает текущий глобальный логгер
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

func LogError(err error, context string) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
		line = 0
	}

	Logger().Error().
		Err(err).
		Str("caller", fmt.Sprintf("%s:%d", filepath.Base(file), line)).
		Msg(context)
}

// LogPanic пишет перехваченную панику вместе с id запроса, если он есть
func LogPanic(recovered interface{}, context, requestID string) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}

	event := Logger().Error().
		Str("panic", fmt.Sprint(recovered)).
		Str("caller", fmt.Sprintf("%s:%d", filepath.Base(file), line))
	if requestID != "" {
		event = event.Str("request_id", requestID)
	}
	event.Msg(context)
}

// gormWriter пробрасывает сообщения gorm в zerolog
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	Logger().Warn().Str("component", "gorm").Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// GormLogger returns a gorm logger that reports slow queries and errors through zerolog.
// In debug every statement is logged.
func GormLogger(debug bool) gormlogger.Interface {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	return gormlogger.New(gormWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
