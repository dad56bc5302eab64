package wxr_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-wxr"
)

func TestConfigValidateUnknownProvider(t *testing.T) {
	cfg := wxr.DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, wxr.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := wxr.LoadConfig(t.TempDir() + "/nope.yaml"); !errors.Is(err, wxr.ErrSettingsUnreadable) {
		t.Fatalf("expected ErrSettingsUnreadable, got %v", err)
	}
}
