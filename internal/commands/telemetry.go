package commands

import (
	"context"
	"errors"
	"time"

	command "github.com/goliatone/go-command"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-wxr/internal/failure"
	"github.com/goliatone/go-wxr/internal/logging"
	"github.com/goliatone/go-wxr/pkg/interfaces"
)

// TelemetryStatus classifies how a command run ended.
type TelemetryStatus string

const (
	TelemetryStatusSuccess      TelemetryStatus = "success"
	TelemetryStatusIOError      TelemetryStatus = "io_error"
	TelemetryStatusParseError   TelemetryStatus = "parse_error"
	TelemetryStatusDataError    TelemetryStatus = "data_error"
	TelemetryStatusContextError TelemetryStatus = "context_error"
	TelemetryStatusFailed       TelemetryStatus = "failed"
)

// InputFault reports whether the run failed because of the export itself
// rather than the environment running it.
func (s TelemetryStatus) InputFault() bool {
	switch s {
	case TelemetryStatusIOError, TelemetryStatusParseError, TelemetryStatusDataError:
		return true
	}
	return false
}

// TelemetryInfo is handed to the telemetry callback once per run.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	// ErrorCode is the WXR_* text code of Error, if it carries one.
	ErrorCode string
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// Telemetry is called after every run with its outcome.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// classifyOutcome maps a run error onto a status. Export failures keep their
// io/parse/data kind even after the command layer wraps them.
func classifyOutcome(err error) TelemetryStatus {
	switch {
	case err == nil:
		return TelemetryStatusSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return TelemetryStatusContextError
	case failure.IsIO(err):
		return TelemetryStatusIOError
	case failure.IsParse(err):
		return TelemetryStatusParseError
	case failure.IsData(err):
		return TelemetryStatusDataError
	default:
		return TelemetryStatusFailed
	}
}

func errorCode(err error) string {
	var rich *goerrors.Error
	if errors.As(err, &rich) {
		return rich.TextCode
	}
	return ""
}

// DefaultTelemetry logs one `command.execute.<status>` entry per run. Bad
// input is logged at warn, everything else that fails at error.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	logger = logging.Ensure(logger)
	return func(ctx context.Context, _ T, info TelemetryInfo) {
		entry := logging.WithFields(logger, info.Fields).WithContext(ctx)
		event := "command.execute." + string(info.Status)
		args := []any{"duration_ms", info.Duration.Milliseconds()}
		if info.ErrorCode != "" {
			args = append(args, "error_code", info.ErrorCode)
		}

		switch {
		case info.Status == TelemetryStatusSuccess:
			entry.Info(event, args...)
		case info.Status.InputFault():
			entry.Warn(event, append(args, "error", info.Error)...)
		default:
			entry.Error(event, append(args, "error", info.Error)...)
		}
	}
}
