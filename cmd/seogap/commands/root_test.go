package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeWorkspaceConfig(t *testing.T, dir, level string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`
target:
  domain: target.com
apis:
  labs:
    login: user
    password: pass
logger:
  level: %s
storage:
  data_dir: %s
`, level, filepath.Join(dir, "reports"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestNewWorkspace_DebugFlagOverridesConfigLevel(t *testing.T) {
	oldPath, oldDebug := configPath, debug
	defer func() { configPath, debug = oldPath, oldDebug }()

	configPath = writeWorkspaceConfig(t, t.TempDir(), "warn")

	debug = false
	ws, err := newWorkspace()
	if err != nil {
		t.Fatalf("newWorkspace failed: %v", err)
	}
	if ws.cfg.Logger.Level != "warn" {
		t.Errorf("Expected config level to hold, got %q", ws.cfg.Logger.Level)
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("Expected warn global level, got %s", zerolog.GlobalLevel())
	}

	debug = true
	ws, err = newWorkspace()
	if err != nil {
		t.Fatalf("newWorkspace failed: %v", err)
	}
	if ws.cfg.Logger.Level != "debug" {
		t.Errorf("Expected debug flag to override level, got %q", ws.cfg.Logger.Level)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug global level, got %s", zerolog.GlobalLevel())
	}
}
