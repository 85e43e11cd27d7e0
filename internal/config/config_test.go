package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Config{Logging: LoggingConfig{Level: "verbose"}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}

	expected := `logging.level must be one of debug, info, warn, error, got "verbose"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ValidLogLevels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		t.Run("level="+level, func(t *testing.T) {
			cfg := Config{Logging: LoggingConfig{Level: level}}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for valid level %q: %v", level, err)
			}
		})
	}
}

func TestValidate_Databases(t *testing.T) {
	tests := []struct {
		name      string
		databases []string
		wantErr   string
	}{
		{"subset", []string{"geriatric", "urology"}, ""},
		{"unknown", []string{"cardiology"}, "unknown database"},
		{"duplicate", []string{"geriatric", "geriatric"}, "listed twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Content: ContentConfig{Databases: tt.databases}}
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_ContentDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.yaml")
	if err := os.WriteFile(file, []byte("x: 1"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Config{Content: ContentConfig{Dir: dir}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for directory: %v", err)
	}

	cfg.Content.Dir = file
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for file used as content.dir")
	}

	cfg.Content.Dir = filepath.Join(dir, "missing")
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing content.dir")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Logging: LoggingConfig{Level: " INFO "}}
	cfg.ApplyDefaults()

	want := []string{"geriatric", "ophthalmic", "pregnancy", "urology", "physiology"}
	if strings.Join(cfg.Content.Databases, ",") != strings.Join(want, ",") {
		t.Errorf("expected databases %v, got %v", want, cfg.Content.Databases)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected normalized level 'info', got %q", cfg.Logging.Level)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{Content: ContentConfig{Databases: []string{"pregnancy"}}}
	cfg.ApplyDefaults()

	if len(cfg.Content.Databases) != 1 || cfg.Content.Databases[0] != "pregnancy" {
		t.Errorf("expected databases [pregnancy], got %v", cfg.Content.Databases)
	}
}

func TestParse_ExpandsEnvVars(t *testing.T) {
	t.Setenv("MEDCONTENT_TEST_LEVEL", "debug")

	cfg, err := Parse([]byte(`
logging:
  level: ${MEDCONTENT_TEST_LEVEL}
metrics:
  textfile: ${MEDCONTENT_TEST_UNSET:-/tmp/medcontent.prom}
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %q", cfg.Logging.Level)
	}
	if cfg.Metrics.Textfile != "/tmp/medcontent.prom" {
		t.Errorf("expected default textfile, got %q", cfg.Metrics.Textfile)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("logging: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("load local config: %v", err)
	}
	if len(cfg.EnabledDatabases()) != 5 {
		t.Errorf("expected 5 databases, got %v", cfg.EnabledDatabases())
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("expected 'local', got %q", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("expected 'prod', got %q", got)
	}
}
