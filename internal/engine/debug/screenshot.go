// Package debug provides viewer capture utilities.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/objview/internal/engine/texture"
)

// ScreenshotCapture writes framebuffer captures as WebP files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a capture handler writing into outputDir.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// FlipRows converts bottom-up RGBA rows as returned by glReadPixels into an image.
func FlipRows(pixels []byte, width, height int) (*texture.Image, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := &texture.Image{
		Format: texture.FormatRGBA8,
		Width:  width,
		Height: height,
		Pix:    make([]byte, len(pixels)),
	}
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*row:(y+1)*row], pixels[src:src+row])
	}
	return img, nil
}

// CaptureFromPixels saves raw framebuffer pixels and returns the file path.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := FlipRows(pixels, width, height)
	if err != nil {
		return "", err
	}

	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := texture.EncodeWebP(file, img); err != nil {
		return "", fmt.Errorf("encoding WebP: %w", err)
	}
	return filename, nil
}

// GenerateFilename returns the timestamped path the next capture would use.
func (sc *ScreenshotCapture) GenerateFilename() string {
	name := fmt.Sprintf("%s_%s.webp", sc.prefix, sc.now().Format("2006-01-02_15-04-05"))
	return filepath.Join(sc.outputDir, name)
}
