package logging

import (
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
)

// MessageFormatter renders log records as single console lines.
type MessageFormatter interface {
	// FormatRecord formats a log record with optional color support.
	FormatRecord(record slog.Record, useColor bool) string
}

// DefaultMessageFormatter renders records as "LEVEL message key=value ..."
// without a timestamp; interactive console output reads better without one,
// and the JSON file keeps the full record anyway.
type DefaultMessageFormatter struct {
	debugColor *color.Color
	infoColor  *color.Color
	warnColor  *color.Color
	errorColor *color.Color
}

// NewDefaultMessageFormatter creates a new DefaultMessageFormatter.
func NewDefaultMessageFormatter() *DefaultMessageFormatter {
	f := &DefaultMessageFormatter{
		debugColor: color.New(color.FgHiBlack),
		infoColor:  color.New(color.FgGreen),
		warnColor:  color.New(color.FgYellow),
		errorColor: color.New(color.FgRed),
	}

	// The useColor argument decides whether colors are used; the package
	// global TTY detection must not override it.
	for _, c := range []*color.Color{f.debugColor, f.infoColor, f.warnColor, f.errorColor} {
		c.EnableColor()
	}

	return f
}

// FormatRecord formats a log record with optional color support.
func (f *DefaultMessageFormatter) FormatRecord(record slog.Record, useColor bool) string {
	var sb strings.Builder

	sb.WriteString(f.formatLevel(record.Level, useColor))
	sb.WriteString(" ")
	sb.WriteString(record.Message)

	if record.NumAttrs() > 0 {
		sb.WriteString(" ")
		f.appendAttrs(&sb, record)
	}

	return sb.String()
}

// formatLevel formats the log level with visual distinction. The plain
// variants use bracketed prefixes so levels stay visible without ANSI
// escape sequences.
func (f *DefaultMessageFormatter) formatLevel(level slog.Level, useColor bool) string {
	if useColor {
		switch level {
		case slog.LevelDebug:
			return f.debugColor.Sprint("* DEBUG")
		case slog.LevelInfo:
			return f.infoColor.Sprint("+ INFO ")
		case slog.LevelWarn:
			return f.warnColor.Sprint("! WARN ")
		case slog.LevelError:
			return f.errorColor.Sprint("X ERROR")
		default:
			return f.debugColor.Sprint("> " + level.String())
		}
	}

	switch level {
	case slog.LevelDebug:
		return "[DEBUG]"
	case slog.LevelInfo:
		return "[INFO ]"
	case slog.LevelWarn:
		return "[WARN ]"
	case slog.LevelError:
		return "[ERROR]"
	default:
		return "[" + strings.ToUpper(level.String()) + "]"
	}
}

// appendAttrs appends log record attributes to the string builder
func (f *DefaultMessageFormatter) appendAttrs(sb *strings.Builder, record slog.Record) {
	first := true
	record.Attrs(func(attr slog.Attr) bool {
		if !first {
			sb.WriteString(" ")
		}
		first = false
		sb.WriteString(attr.Key)
		sb.WriteString("=")
		sb.WriteString(f.formatValue(attr.Value))
		return true
	})
}

// formatValue formats a slog.Value for display
func (f *DefaultMessageFormatter) formatValue(value slog.Value) string {
	switch value.Kind() {
	case slog.KindString:
		return value.String()
	case slog.KindTime:
		return value.Time().Format(time.RFC3339)
	case slog.KindDuration:
		return value.Duration().String()
	case slog.KindGroup:
		attrs := value.Group()
		if len(attrs) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(attrs))
		for _, attr := range attrs {
			parts = append(parts, attr.Key+"="+f.formatValue(attr.Value))
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return value.String()
	}
}
