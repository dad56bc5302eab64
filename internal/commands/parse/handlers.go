// Package parsecmd exposes export parsing as a go-command message and handler.
package parsecmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/goliatone/go-wxr/internal/commands"
	"github.com/goliatone/go-wxr/internal/domain"
	"github.com/goliatone/go-wxr/internal/importer"
	"github.com/goliatone/go-wxr/internal/logging"
	"github.com/goliatone/go-wxr/pkg/interfaces"
)

const parseOperation = "parse.export"

// ErrParserRequired is returned when a handler is built without a parser.
var ErrParserRequired = errors.New("parse command: parser is required")

var _ command.Commander[ParseExportCommand] = (*ParseExportHandler)(nil)

// Parser is the slice of the pipeline the handler needs.
type Parser interface {
	ParseFile(ctx context.Context, path string, opts ...importer.Option) (*domain.WordpressContent, error)
}

// ResultFunc receives the parsed content of a successful run.
type ResultFunc func(ctx context.Context, msg ParseExportCommand, content *domain.WordpressContent) error

// ParseExportHandler runs ParseExportCommand through the shared command handler.
type ParseExportHandler struct {
	inner *commands.Handler[ParseExportCommand]
}

// NewParseExportHandler creates a handler bound to parser. onResult may be nil.
func NewParseExportHandler(parser Parser, logger interfaces.Logger, onResult ResultFunc, opts ...commands.HandlerOption[ParseExportCommand]) *ParseExportHandler {
	baseLogger := logging.Ensure(logger)

	exec := func(ctx context.Context, msg ParseExportCommand) error {
		if parser == nil {
			return ErrParserRequired
		}

		var importOpts []importer.Option
		if msg.NormalizeTitleSlugs {
			importOpts = append(importOpts, importer.WithNormalizeTitleSlugs(true))
		}

		result, err := parser.ParseFile(ctx, msg.Path, importOpts...)
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"run_id":     msg.RunID.String(),
			"posts":      len(result.Posts),
			"categories": len(result.Categories),
			"tags":       len(result.Tags),
		}).Info("parse.command.export.completed")

		if onResult != nil {
			return onResult(ctx, msg, result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ParseExportCommand]{
		commands.WithLogger[ParseExportCommand](baseLogger),
		commands.WithOperation[ParseExportCommand](parseOperation),
		commands.WithMessageFields(func(msg ParseExportCommand) map[string]any {
			fields := map[string]any{
				"path":   msg.Path,
				"run_id": msg.RunID.String(),
			}
			if msg.NormalizeTitleSlugs {
				fields["normalize_title_slugs"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ParseExportCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ParseExportHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ParseExportCommand]. A zero RunID is
// filled in before execution so every entry of the run shares it.
func (h *ParseExportHandler) Execute(ctx context.Context, msg ParseExportCommand) error {
	if msg.RunID == uuid.Nil {
		msg.RunID = uuid.New()
	}
	return h.inner.Execute(ctx, msg)
}
