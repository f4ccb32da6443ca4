package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagDir        = flag.String("dir", "", "Model base directory")
	flagCount      = flag.Int("count", 0, "Number of model slots to load")
	flagSynthUV    = flag.Bool("synth-uv", false, "Use (0,0) texture coordinates for models without vt records")
	flagCharset    = flag.String("charset", "", "Charset of material and texture names (e.g. euc-kr)")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDir != "" {
		cfg.Models.BaseDir = *flagDir
	}
	if *flagCount > 0 {
		cfg.Models.Count = *flagCount
	}
	if *flagSynthUV {
		cfg.Models.SynthesizeTexCoords = true
	}
	if *flagCharset != "" {
		cfg.Models.Charset = *flagCharset
	}
	if *flagFullscreen {
		cfg.Viewer.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
}
