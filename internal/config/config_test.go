package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Models.BaseDir != "./testmodels" {
		t.Errorf("expected base dir ./testmodels, got %s", cfg.Models.BaseDir)
	}
	if cfg.Models.Count != 3 {
		t.Errorf("expected 3 model slots, got %d", cfg.Models.Count)
	}
	if cfg.Models.SynthesizeTexCoords {
		t.Error("expected synthesize_texcoords to be false by default")
	}
	if !cfg.Textures.Cache {
		t.Error("expected texture cache to be enabled by default")
	}
	if cfg.Viewer.Width != 1280 || cfg.Viewer.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if !cfg.Viewer.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Viewer.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir 'screenshots', got %s", cfg.Viewer.ScreenshotDir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "objview.yaml")

	yamlContent := `
models:
  base_dir: "D:/testmodels/"
  prefix: "building"
  count: 6
  workers: 2
  synthesize_texcoords: true

textures:
  cache: false
  export_max_size: 256

viewer:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  spacing: 7.5

logging:
  level: "debug"
  log_file: "objview.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Models.BaseDir != "D:/testmodels/" {
		t.Errorf("expected base dir D:/testmodels/, got %s", cfg.Models.BaseDir)
	}
	if cfg.Models.Prefix != "building" {
		t.Errorf("expected prefix building, got %s", cfg.Models.Prefix)
	}
	if cfg.Models.Count != 6 || cfg.Models.Workers != 2 {
		t.Errorf("expected count 6 / workers 2, got %d / %d", cfg.Models.Count, cfg.Models.Workers)
	}
	if !cfg.Models.SynthesizeTexCoords {
		t.Error("expected synthesize_texcoords to be true")
	}
	if cfg.Textures.Cache {
		t.Error("expected texture cache to be disabled")
	}
	if cfg.Textures.ExportMaxSize != 256 {
		t.Errorf("expected export max size 256, got %d", cfg.Textures.ExportMaxSize)
	}
	if !cfg.Viewer.Fullscreen || cfg.Viewer.VSync {
		t.Error("expected fullscreen without vsync")
	}
	if cfg.Viewer.Spacing != 7.5 {
		t.Errorf("expected spacing 7.5, got %f", cfg.Viewer.Spacing)
	}
	if cfg.Logging.LogFile != "objview.log" {
		t.Errorf("expected log file objview.log, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "objview.yaml")
	if err := os.WriteFile(configPath, []byte("models:\n  count: 9\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Models.Count != 9 {
		t.Errorf("expected count 9, got %d", cfg.Models.Count)
	}
	// Untouched keys keep their defaults
	if cfg.Models.BaseDir != "./testmodels" {
		t.Errorf("expected default base dir, got %s", cfg.Models.BaseDir)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
models:
  count: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/objview.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty base dir", func(c *Config) { c.Models.BaseDir = "" }, true},
		{"negative count", func(c *Config) { c.Models.Count = -1 }, true},
		{"negative workers", func(c *Config) { c.Models.Workers = -2 }, true},
		{"zero count", func(c *Config) { c.Models.Count = 0 }, false},
		{"known charset", func(c *Config) { c.Models.Charset = "EUC-KR" }, false},
		{"unknown charset", func(c *Config) { c.Models.Charset = "ebcdic-fr" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "objview.yaml")
	if err := os.WriteFile(configPath, []byte("models:\n  count: 1\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find objview.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "dir flag",
			setup: func() { *flagDir = "/srv/models" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Models.BaseDir != "/srv/models" {
					t.Errorf("expected base dir /srv/models, got %s", cfg.Models.BaseDir)
				}
			},
			teardown: func() { *flagDir = "" },
		},
		{
			name:  "count flag",
			setup: func() { *flagCount = 12 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Models.Count != 12 {
					t.Errorf("expected count 12, got %d", cfg.Models.Count)
				}
			},
			teardown: func() { *flagCount = 0 },
		},
		{
			name:  "synth-uv flag",
			setup: func() { *flagSynthUV = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Models.SynthesizeTexCoords {
					t.Error("expected synthesize_texcoords with synth-uv flag")
				}
			},
			teardown: func() { *flagSynthUV = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Viewer.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewer.Width != 2560 || cfg.Viewer.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "objview.yaml")

	yamlContent := `
models:
  base_dir: /from/file
  count: 5
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagCount = 8
	defer func() {
		*flagConfig = ""
		*flagCount = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Count comes from the flag, base dir from the file
	if cfg.Models.Count != 8 {
		t.Errorf("expected count 8 from flag, got %d", cfg.Models.Count)
	}
	if cfg.Models.BaseDir != "/from/file" {
		t.Errorf("expected base dir /from/file, got %s", cfg.Models.BaseDir)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "objview.yaml")

	cfg := Default()
	cfg.Models.Prefix = "tower"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Models.Prefix != "tower" {
		t.Errorf("expected prefix tower after reload, got %s", loaded.Models.Prefix)
	}
}
