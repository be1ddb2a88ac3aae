// Package logger реализует простой уровневый логгер с записью в файл.
// Уровни: debug < info < warn < error. Fatal пишет сообщение и завершает процесс.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

// Logger уровневый логгер, безопасный для конкурентного использования
// (синхронизация обеспечивается стандартным log.Logger)
type Logger struct {
	out      *log.Logger
	minLevel level
	file     *os.File
}

// New создает логгер, пишущий в указанный файл и в stdout.
// Если path пустой, пишет только в stdout.
func New(path, levelName string) (*Logger, error) {
	minLevel, err := parseLevel(levelName)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stdout
	var file *os.File
	if path != "" {
		file, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file: %w", err)
		}
		w = io.MultiWriter(os.Stdout, file)
	}

	return &Logger{
		out:      log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		minLevel: minLevel,
		file:     file,
	}, nil
}

func parseLevel(name string) (level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return levelInfo, nil
	case "debug":
		return levelDebug, nil
	case "warn", "warning":
		return levelWarn, nil
	case "error":
		return levelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown level %q", name)
	}
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) printf(lv level, prefix, format string, v ...interface{}) {
	if lv < l.minLevel {
		return
	}
	l.out.Printf(prefix+" "+format, v...)
}

// Debug логирует отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.printf(levelDebug, "[DEBUG]", format, v...)
}

// Info логирует информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.printf(levelInfo, "[INFO]", format, v...)
}

// Warn логирует предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.printf(levelWarn, "[WARN]", format, v...)
}

// Error логирует ошибку
func (l *Logger) Error(format string, v ...interface{}) {
	l.printf(levelError, "[ERROR]", format, v...)
}

// Fatal логирует ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.printf(levelError, "[FATAL]", format, v...)
	if l.file != nil {
		l.file.Close()
	}
	os.Exit(1)
}
