// Package console writes human-readable log lines for the wxr CLI. Each line
// carries the stage that produced it ("[importer]", "[taxonomy]") and puts the
// item being processed ahead of the event's own fields.
package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-wxr/internal/logging"
	"github.com/goliatone/go-wxr/pkg/interfaces"
)

// Level represents the severity attached to a log entry.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

var levelsByName = map[string]Level{
	"trace":   LevelTrace,
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
	"fatal":   LevelFatal,
}

// String renders the severity label used in console output.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "INFO"
}

// ParseLevel maps a configuration level name onto a Level.
func ParseLevel(name string) (Level, bool) {
	level, ok := levelsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LevelInfo, false
	}
	return level, true
}

// Options configures the console logger provider.
type Options struct {
	Writer   io.Writer
	TimeFunc func() time.Time
	MinLevel *Level
}

// itemKeys lead every line in this order when present.
var itemKeys = []string{"export_path", "post_id", "post_type"}

// hiddenKeys are rendered through the stage tag instead of as fields.
var hiddenKeys = map[string]struct{}{"logger": {}, "module": {}}

type sink struct {
	mu       sync.Mutex
	out      io.Writer
	now      func() time.Time
	minLevel Level
}

type provider struct {
	sink *sink
}

// NewProvider constructs a console-backed logger provider. Entries go to
// stderr at INFO and above unless Options override them, keeping stdout free
// for command output.
func NewProvider(opts Options) interfaces.LoggerProvider {
	s := &sink{out: opts.Writer, now: opts.TimeFunc, minLevel: LevelInfo}
	if s.out == nil {
		s.out = os.Stderr
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.MinLevel != nil {
		s.minLevel = *opts.MinLevel
	}
	return &provider{sink: s}
}

func (p *provider) GetLogger(name string) interfaces.Logger {
	return &consoleLogger{sink: p.sink, stage: stageOf(name)}
}

// stageOf trims the shared "wxr." namespace so "wxr.importer" prints as "importer".
func stageOf(name string) string {
	if stage, ok := strings.CutPrefix(name, "wxr."); ok && stage != "" {
		return stage
	}
	if name == "" {
		return "wxr"
	}
	return name
}

type consoleLogger struct {
	sink   *sink
	stage  string
	fields map[string]any
	ctx    context.Context
}

var (
	_ interfaces.Logger       = (*consoleLogger)(nil)
	_ interfaces.FieldsLogger = (*consoleLogger)(nil)
)

func (l *consoleLogger) Trace(msg string, args ...any) { l.write(LevelTrace, msg, args) }
func (l *consoleLogger) Debug(msg string, args ...any) { l.write(LevelDebug, msg, args) }
func (l *consoleLogger) Info(msg string, args ...any)  { l.write(LevelInfo, msg, args) }
func (l *consoleLogger) Warn(msg string, args ...any)  { l.write(LevelWarn, msg, args) }
func (l *consoleLogger) Error(msg string, args ...any) { l.write(LevelError, msg, args) }
func (l *consoleLogger) Fatal(msg string, args ...any) { l.write(LevelFatal, msg, args) }

func (l *consoleLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	next := *l
	next.fields = maps.Clone(l.fields)
	if next.fields == nil {
		next.fields = make(map[string]any, len(fields))
	}
	maps.Copy(next.fields, fields)
	if module, ok := fields["module"].(string); ok && module != "" {
		next.stage = stageOf(module)
	}
	return &next
}

func (l *consoleLogger) WithContext(ctx context.Context) interfaces.Logger {
	next := *l
	next.ctx = ctx
	return &next
}

func (l *consoleLogger) write(level Level, event string, args []any) {
	if l.sink == nil || level < l.sink.minLevel {
		return
	}

	fields := maps.Clone(l.fields)
	if fields == nil {
		fields = map[string]any{}
	}
	maps.Copy(fields, logging.ContextFields(l.ctx))
	collectArgs(fields, args)

	line := formatLine(l.sink.now().UTC(), level, l.stage, event, fields)

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = io.WriteString(l.sink.out, line)
}

// collectArgs folds key/value pairs into fields. Values without a usable
// string key are stored as field_<n>, n being the pair position.
func collectArgs(fields map[string]any, args []any) {
	for i := 0; i < len(args); i += 2 {
		positional := "field_" + strconv.Itoa(i/2)
		if i+1 == len(args) {
			fields[positional] = args[i]
			return
		}
		if name, ok := args[i].(string); ok && name != "" {
			fields[name] = args[i+1]
			continue
		}
		fields[positional] = args[i+1]
	}
}

func formatLine(ts time.Time, level Level, stage, event string, fields map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s [%s] %s", ts.Format(time.RFC3339Nano), level, stage, event)

	for _, key := range itemKeys {
		if value, ok := fields[key]; ok {
			writeField(&b, key, value)
		}
	}

	rest := make([]string, 0, len(fields))
	for key := range fields {
		if _, hidden := hiddenKeys[key]; hidden || slices.Contains(itemKeys, key) {
			continue
		}
		rest = append(rest, key)
	}
	slices.Sort(rest)
	for _, key := range rest {
		writeField(&b, key, fields[key])
	}

	b.WriteByte('\n')
	return b.String()
}

func writeField(b *strings.Builder, key string, value any) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(renderValue(value))
}

func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if v == nil {
			return "null"
		}
		return v.UTC().Format(time.RFC3339Nano)
	case time.Duration:
		return v.String()
	case error:
		return quote(v.Error())
	case string:
		return quote(v)
	default:
		return quote(fmt.Sprint(v))
	}
}

// quote leaves simple tokens bare and quotes anything with spaces, control
// characters or '='.
func quote(value string) string {
	if value == "" || strings.ContainsFunc(value, func(r rune) bool { return r <= ' ' || r == '=' }) {
		return strconv.Quote(value)
	}
	return value
}
