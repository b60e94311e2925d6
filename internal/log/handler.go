package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// MaskValue is the string used to replace sensitive attribute values.
const MaskValue = "***REDACTED***"

// timestampLayout matches the log line timestamp format.
const timestampLayout = "2006-01-02 15:04:05"

// sensitiveKeys contains attribute keys whose values are always masked.
// Both submission APIs are keyed by plain string secrets, so anything that
// looks like one must not reach the log output.
var sensitiveKeys = map[string]bool{
	"apikey":        true,
	"api_key":       true,
	"api-key":       true,
	"key":           true,
	"token":         true,
	"secret":        true,
	"password":      true,
	"authorization": true,
}

// levelColors maps log levels to their console colors.
var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgBlue),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
}

// ColorHandler is an slog.Handler that writes human-readable log lines with
// a colored level name and masked credential attributes.
//
// Design decision: We implement a handler rather than wrapping a logger
// because it integrates with standard slog APIs: any component that accepts
// a *slog.Logger gets the formatting and masking for free.
type ColorHandler struct {
	// mu serializes writes. Shared by pointer so handlers derived via
	// WithAttrs/WithGroup still write atomically to the same sink.
	mu *sync.Mutex

	// out is the destination for formatted lines.
	out io.Writer

	// level is the minimum level this handler reports.
	level slog.Leveler

	// attrs are attributes accumulated via WithAttrs.
	attrs []slog.Attr

	// groups are group names accumulated via WithGroup, used to prefix
	// attribute keys.
	groups []string
}

// NewColorHandler creates a ColorHandler writing to out.
// A nil opts uses slog.LevelInfo as the minimum level.
func NewColorHandler(out io.Writer, opts *slog.HandlerOptions) *ColorHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &ColorHandler{
		mu:    &sync.Mutex{},
		out:   out,
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ColorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes a single log record.
func (h *ColorHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(ts.Format(timestampLayout))
	b.WriteString("-")
	b.WriteString(levelString(r.Level))
	b.WriteString("]: ")
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		h.appendAttr(&b, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&b, attr)
		return true
	})
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// WithAttrs returns a new handler with the given attributes added.
func (h *ColorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a new handler with the given group name.
func (h *ColorHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// appendAttr writes one attribute as " key=value", masking sensitive values
// and flattening groups with dotted key prefixes.
func (h *ColorHandler) appendAttr(b *strings.Builder, attr slog.Attr) {
	if attr.Value.Kind() == slog.KindGroup {
		prefix := attr.Key
		for _, nested := range attr.Value.Group() {
			if prefix != "" {
				nested.Key = prefix + "." + nested.Key
			}
			h.appendAttr(b, nested)
		}
		return
	}

	key := attr.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}

	value := attr.Value.Resolve().String()
	if sensitiveKeys[strings.ToLower(attr.Key)] {
		value = MaskValue
	}

	fmt.Fprintf(b, " %s=%s", key, value)
}

// levelString returns the colored level name for a record.
func levelString(level slog.Level) string {
	name := level.String()
	if c, ok := levelColors[level]; ok {
		return c.Sprint(name)
	}
	return name
}

// Setup installs a ColorHandler writing to standard error and returns the
// logger together with a close function for the optional log file mirror.
//
// When logFile is non-empty, every line is also appended to that file.
// The returned close function must be called when logging is finished;
// it is a no-op when no file is involved.
func Setup(verbose bool, logFile string) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	closer := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // User-provided log path is intentional
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, f)
		closer = f.Close
	}

	handler := NewColorHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closer, nil
}
