// Package config handles viewer and loader configuration.
package config

// Config holds all settings.
type Config struct {
	Models   ModelsConfig   `yaml:"models"`
	Textures TexturesConfig `yaml:"textures"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ModelsConfig controls where models are found and how they are loaded.
type ModelsConfig struct {
	BaseDir string `yaml:"base_dir"` // Directory holding <prefix><index>.obj, .mtl and textures
	Prefix  string `yaml:"prefix"`   // Filename prefix before the index
	Count   int    `yaml:"count"`    // Number of model slots (indices 1..Count)
	Workers int    `yaml:"workers"`  // Parallel loads; 0 = one per slot

	// SynthesizeTexCoords gives every corner (0,0) when a file has no vt records.
	SynthesizeTexCoords bool `yaml:"synthesize_texcoords"`

	// Charset of mtllib and map_Kd names, e.g. "euc-kr"; empty means UTF-8.
	Charset string `yaml:"charset"`
}

// TexturesConfig holds texture acquisition settings.
type TexturesConfig struct {
	Cache         bool `yaml:"cache"`           // Share decoded file bytes between models
	ExportMaxSize int  `yaml:"export_max_size"` // Longest side for objtool exports; 0 = original
}

// ViewerConfig holds display settings for objviewer.
type ViewerConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	Spacing       float32 `yaml:"spacing"` // Distance between model slots
	ScreenshotDir string  `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Models: ModelsConfig{
			BaseDir: "./testmodels",
			Prefix:  "",
			Count:   3,
			Workers: 0,
		},
		Textures: TexturesConfig{
			Cache:         true,
			ExportMaxSize: 1024,
		},
		Viewer: ViewerConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			Spacing:       4,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
