package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Logger обертка над logrus с printf-интерфейсом, который используют все слои сервиса
type Logger struct {
	log  *logrus.Logger
	file *os.File
}

// New создает логгер, пишущий в stdout и (если filePath не пустой) дополнительно в файл.
// level: debug, info, warn, error.
func New(filePath string, level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	result := &Logger{log: l}

	if filePath == "" {
		l.SetOutput(os.Stdout)
		return result, nil
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l.SetOutput(io.MultiWriter(os.Stdout, file))
	result.file = file

	return result, nil
}

// NewNop создает логгер, который ничего не пишет (для тестов)
func NewNop() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{log: l}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Fatal логирует сообщение и завершает процесс с кодом 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatalf(format, v...)
}

// Printf нужен для совместимости с goose и другими библиотеками, ожидающими log.Printf
func (l *Logger) Printf(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

// Fatalf нужен для совместимости с goose.Logger
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.log.Fatalf(format, v...)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
