package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/waytap/internal/tap"
	"github.com/spf13/viper"
)

func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	cfg = nil
	configPathOverride = ""
	t.Cleanup(func() {
		viper.Reset()
		cfg = nil
		configPathOverride = ""
	})
}

func TestInit(t *testing.T) {
	t.Run("initializes with defaults when no config exists", func(t *testing.T) {
		reset(t)

		// Search paths only: an explicit missing file is a hard error for viper
		t.Setenv("HOME", t.TempDir())
		oldWd, _ := os.Getwd()
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatal(err)
		}
		defer func() { _ = os.Chdir(oldWd) }()

		if err := Init(); err != nil {
			t.Fatalf("Init() failed: %v", err)
		}

		config := Get()
		if len(config.Engine.Families) != 3 {
			t.Errorf("Expected 3 default families, got %v", config.Engine.Families)
		}
		if config.Monitor.MaxLog != 500 {
			t.Errorf("Expected default max_log 500, got %d", config.Monitor.MaxLog)
		}
	})

	t.Run("reads engine families from file", func(t *testing.T) {
		reset(t)
		path := filepath.Join(t.TempDir(), "waytap.toml")
		content := `[engine]
families = ["mouse", "pointer"]

[logging]
log_level = "debug"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		SetConfigPath(path)

		if err := Init(); err != nil {
			t.Fatalf("Init() failed: %v", err)
		}

		families, err := Get().Engine.ParseFamilies()
		if err != nil {
			t.Fatalf("ParseFamilies() failed: %v", err)
		}
		if len(families) != 2 || families[0] != tap.FamilyMouse || families[1] != tap.FamilyPointer {
			t.Errorf("Unexpected families %v", families)
		}
		if Get().Logging.LogLevel != "debug" {
			t.Errorf("Expected log level debug, got %q", Get().Logging.LogLevel)
		}
		if Get().Sink.UInputPath != "/dev/uinput" {
			t.Errorf("Expected default uinput path, got %q", Get().Sink.UInputPath)
		}
	})

	t.Run("rejects unknown family", func(t *testing.T) {
		reset(t)
		path := filepath.Join(t.TempDir(), "waytap.toml")
		if err := os.WriteFile(path, []byte("[engine]\nfamilies = [\"stylus\"]\n"), 0644); err != nil {
			t.Fatal(err)
		}
		SetConfigPath(path)

		err := Init()
		if err == nil || !strings.Contains(err.Error(), "stylus") {
			t.Errorf("Expected unknown family error, got %v", err)
		}
	})

	t.Run("handles invalid TOML", func(t *testing.T) {
		reset(t)
		path := filepath.Join(t.TempDir(), "waytap.toml")
		if err := os.WriteFile(path, []byte("[engine\nfamilies = 1"), 0644); err != nil {
			t.Fatal(err)
		}
		SetConfigPath(path)

		if err := Init(); err == nil {
			t.Error("Expected error for invalid TOML")
		}
	})
}

func TestParseFamilies(t *testing.T) {
	tests := []struct {
		name     string
		families []string
		wantErr  bool
	}{
		{"all", []string{"pointer", "touch", "mouse"}, false},
		{"single", []string{"touch"}, false},
		{"empty", nil, true},
		{"unknown", []string{"pen"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EngineConfig{Families: tt.families}.ParseFamilies()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFamilies() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != len(tt.families) {
				t.Errorf("Expected %d families, got %d", len(tt.families), len(got))
			}
		})
	}
}

func TestUpdateAndSave(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "nested", "waytap.toml")
	SetConfigPath(path)

	if err := Update(EngineConfig{Families: []string{"pointer"}}, LoggingConfig{LogLevel: "warn"}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "pointer") {
		t.Errorf("saved config missing families:\n%s", data)
	}

	if err := Update(EngineConfig{}, LoggingConfig{}); err == nil {
		t.Error("Expected error when no family is enabled")
	}
}

func TestGetConfigPath(t *testing.T) {
	reset(t)
	t.Setenv("HOME", "/home/testuser")

	if got := GetConfigPath(); got != "/home/testuser/.config/waytap/waytap.toml" {
		t.Errorf("Unexpected default path %s", got)
	}

	SetConfigPath("/tmp/custom.toml")
	if got := GetConfigPath(); got != "/tmp/custom.toml" {
		t.Errorf("Expected override path, got %s", got)
	}
}
