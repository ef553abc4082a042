package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/joabzzz/r3dy/internal/terminal"
)

// Static errors for InteractiveHandler validation
var (
	ErrInteractiveHandlerWriterRequired       = errors.New("InteractiveHandler: Writer is required")
	ErrInteractiveHandlerCapabilitiesRequired = errors.New("InteractiveHandler: Capabilities is required")
	ErrInteractiveHandlerFormatterRequired    = errors.New("InteractiveHandler: Formatter is required")
)

// InteractiveHandler is a slog handler for interactive terminals. It writes
// compact colored lines and stays silent in non-interactive environments,
// where ConditionalTextHandler takes over.
type InteractiveHandler struct {
	capabilities terminal.Capabilities
	formatter    MessageFormatter
	writer       io.Writer
	level        slog.Level
	attrs        []slog.Attr
	groups       []string
}

// InteractiveHandlerOptions configures the InteractiveHandler.
type InteractiveHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Level

	// Writer is the output destination (typically os.Stderr)
	Writer io.Writer

	// Capabilities provides terminal feature detection
	Capabilities terminal.Capabilities

	// Formatter handles message formatting and coloring
	Formatter MessageFormatter
}

// NewInteractiveHandler creates a new InteractiveHandler with the given options.
// Returns an error if any required options are missing.
func NewInteractiveHandler(opts InteractiveHandlerOptions) (*InteractiveHandler, error) {
	if opts.Writer == nil {
		return nil, ErrInteractiveHandlerWriterRequired
	}
	if opts.Capabilities == nil {
		return nil, ErrInteractiveHandlerCapabilitiesRequired
	}
	if opts.Formatter == nil {
		return nil, ErrInteractiveHandlerFormatterRequired
	}

	return &InteractiveHandler{
		capabilities: opts.Capabilities,
		formatter:    opts.Formatter,
		writer:       opts.Writer,
		level:        opts.Level,
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *InteractiveHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.capabilities.IsInteractive() && level >= h.level
}

// Handle formats the record and writes it as a single line.
func (h *InteractiveHandler) Handle(_ context.Context, r slog.Record) error {
	if !h.capabilities.IsInteractive() {
		return nil
	}

	record := r.Clone()

	// Accumulated attributes carry their group path as a key prefix.
	attrs := h.attrs
	if len(h.groups) > 0 {
		prefix := strings.Join(h.groups, ".") + "."
		prefixedAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			prefixedAttrs[i] = slog.Attr{
				Key:   prefix + attr.Key,
				Value: attr.Value,
			}
		}
		attrs = prefixedAttrs
	}
	record.AddAttrs(attrs...)

	message := h.formatter.FormatRecord(record, h.capabilities.SupportsColor())

	_, err := h.writer.Write([]byte(message + "\n"))
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *InteractiveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &InteractiveHandler{
		capabilities: h.capabilities,
		formatter:    h.formatter,
		writer:       h.writer,
		level:        h.level,
		attrs:        newAttrs,
		groups:       h.groups,
	}
}

// WithGroup returns a new handler with an additional group.
func (h *InteractiveHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name

	return &InteractiveHandler{
		capabilities: h.capabilities,
		formatter:    h.formatter,
		writer:       h.writer,
		level:        h.level,
		attrs:        h.attrs,
		groups:       newGroups,
	}
}
