package parsecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const parseExportMessageType = "wxr.parse.export"

// ParseExportCommand parses one WordPress export file into structured content.
type ParseExportCommand struct {
	// Path locates the export document on disk.
	Path string `json:"path"`
	// NormalizeTitleSlugs runs title-derived slugs through go-slug for this run.
	NormalizeTitleSlugs bool `json:"normalize_title_slugs,omitempty"`
	// RunID correlates log entries of one run. A zero value is replaced with a fresh id.
	RunID uuid.UUID `json:"run_id,omitempty"`
}

// Type implements command.Message.
func (ParseExportCommand) Type() string { return parseExportMessageType }

// Validate ensures a path is present before handlers execute.
func (cmd ParseExportCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("wxr.parse.export.path_required", "path is required")
			}
			return nil
		})),
	)
}
