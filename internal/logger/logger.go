package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var (
	levelNames = map[Level]string{
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
		FATAL: "FATAL",
	}

	levelColors = map[Level]lipgloss.Color{
		DEBUG: lipgloss.Color("6"), // Cyan
		INFO:  lipgloss.Color("2"), // Green
		WARN:  lipgloss.Color("3"), // Yellow
		ERROR: lipgloss.Color("1"), // Red
		FATAL: lipgloss.Color("5"), // Magenta
	}
)

type Logger struct {
	mu         sync.Mutex
	level      Level
	out        io.Writer
	service    string
	useColors  bool
	showTime   bool
	levelStyle map[Level]lipgloss.Style
	svcStyle   lipgloss.Style
}

func New(service string) *Logger {
	l := &Logger{
		level:     ParseLevel(os.Getenv("LOG_LEVEL"), INFO),
		service:   service,
		useColors: os.Getenv("LOG_COLORS") != "false",
		showTime:  true,
	}
	l.setOutputLocked(os.Stdout)
	return l
}

// ParseLevel maps a level name to a Level, falling back to def for unknown input.
func ParseLevel(name string, def Level) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return def
	}
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// SetOutput redirects the logger. Colour support is detected per writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setOutputLocked(w)
}

func (l *Logger) setOutputLocked(w io.Writer) {
	r := lipgloss.NewRenderer(w)

	l.out = w
	l.levelStyle = make(map[Level]lipgloss.Style, len(levelColors))
	for level, color := range levelColors {
		l.levelStyle[level] = r.NewStyle().Foreground(color).Width(5)
	}
	l.svcStyle = r.NewStyle().Foreground(lipgloss.Color("8")) // Gray
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) SetShowTime(show bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.showTime = show
}

func (l *Logger) Enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	var buf strings.Builder

	if l.showTime {
		buf.WriteString(time.Now().Format("15:04:05"))
		buf.WriteString(" ")
	}

	name := fmt.Sprintf("%-5s", levelNames[level])
	if l.useColors {
		name = l.levelStyle[level].Render(levelNames[level])
	}
	buf.WriteString(name)
	buf.WriteString(" ")

	if l.service != "" {
		tag := "[" + l.service + "]"
		if l.useColors {
			tag = l.svcStyle.Render(tag)
		}
		buf.WriteString(tag)
		buf.WriteString(" ")
	}

	buf.WriteString(fmt.Sprintf(format, args...))

	fmt.Fprintln(l.out, buf.String())

	if level == FATAL {
		os.Exit(1)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FATAL, format, args...)
}

// SetStdLog redirects standard log package to use this logger
func (l *Logger) SetStdLog() {
	log.SetOutput(&stdLogWriter{logger: l})
	log.SetFlags(0)
}

type stdLogWriter struct {
	logger *Logger
}

func (w *stdLogWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSpace(string(p))
	w.logger.Info("%s", msg)
	return len(p), nil
}
