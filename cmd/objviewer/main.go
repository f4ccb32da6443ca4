// objviewer loads numbered OBJ models from a directory and displays them side by side.
package main

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/assets"
	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/camera"
	"github.com/Faultbox/objview/internal/engine/debug"
	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/engine/renderer"
	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/internal/engine/window"
	"github.com/Faultbox/objview/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== OBJ Viewer ===",
		zap.String("dir", cfg.Models.BaseDir),
		zap.Int("slots", cfg.Models.Count))

	if err := run(cfg); err != nil {
		logger.Fatal("viewer error", zap.Error(err))
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "objviewer - " + cfg.Models.BaseDir,
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	w, h := win.Size()
	r, err := renderer.New(w, h)
	if err != nil {
		return err
	}
	defer r.Close()

	am := assets.NewManager(cfg.Textures.Cache)
	defer am.Close()

	loader := model.NewLoader(
		cfg.Models.BaseDir,
		cfg.Models.Prefix,
		model.BuildOptions{SynthesizeTexCoords: cfg.Models.SynthesizeTexCoords},
		texture.NewFileFetcher(am),
	)
	loader.Charset = cfg.Models.Charset

	v := newViewer(cfg, win, r, loader)
	v.loadAll()
	return v.loop()
}

// viewer owns the slot-to-model wiring: slot i shows model index i+1.
type viewer struct {
	cfg    *config.Config
	win    *window.Window
	r      *renderer.Renderer
	loader *model.Loader
	cam    *camera.OrbitCamera
	shots  *debug.ScreenshotCapture
	slots  []*renderer.GPUMesh
}

func newViewer(cfg *config.Config, win *window.Window, r *renderer.Renderer, loader *model.Loader) *viewer {
	cam := camera.NewOrbitCamera()
	cam.FitToBounds(rowBounds(cfg.Models.Count, cfg.Viewer.Spacing))
	return &viewer{
		cfg:    cfg,
		win:    win,
		r:      r,
		loader: loader,
		cam:    cam,
		shots:  debug.NewScreenshotCapture(cfg.Viewer.ScreenshotDir, "objviewer"),
		slots:  make([]*renderer.GPUMesh, cfg.Models.Count),
	}
}

func (v *viewer) loadAll() {
	models, err := v.loader.LoadAll(model.SlotIndices(len(v.slots)), v.cfg.Models.Workers)
	for _, m := range models {
		if m != nil {
			v.place(m)
		}
	}
	if err != nil {
		logger.Warn("some models failed to load",
			zap.Int("failed", len(multierr.Errors(err))),
			zap.Error(err))
	}
	v.updateTitle()
}

// retry reloads a slot that failed; loaded slots are left alone.
func (v *viewer) retry(index int) {
	if index < 1 || index > len(v.slots) || v.slots[index-1] != nil {
		return
	}
	m, err := v.loader.LoadModel(index)
	if err != nil {
		return
	}
	v.place(m)
	v.updateTitle()
}

func (v *viewer) place(m *model.Model) {
	g := renderer.Upload(m, slotTransform(m.Index, len(v.slots), v.cfg.Viewer.Spacing, m.Mesh.Bounds))
	v.slots[m.Index-1] = g
	v.r.Add(g)
}

func (v *viewer) screenshot() {
	pixels, w, h := v.r.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (v *viewer) updateTitle() {
	loaded := 0
	for _, s := range v.slots {
		if s != nil {
			loaded++
		}
	}
	v.win.SetTitle(fmt.Sprintf("objviewer - %s (%d/%d loaded)", v.cfg.Models.BaseDir, loaded, len(v.slots)))
}
