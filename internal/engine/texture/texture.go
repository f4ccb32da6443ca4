// Package texture provides diffuse texture decoding and asynchronous acquisition.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"github.com/Faultbox/objview/internal/assets"
)

// ErrLoadFailed is returned when a texture cannot be read or decoded.
var ErrLoadFailed = errors.New("texture load failed")

// Format identifies the pixel layout of an Image.
type Format int

// Pixel formats.
const (
	FormatRGBA8 Format = iota // 8 bits per channel, non-premultiplied order R,G,B,A
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Image is decoded pixel data ready for GPU upload.
type Image struct {
	Format Format
	Width  int
	Height int
	Pix    []byte // row-major, top row first
}

// RGBA returns an image.RGBA view sharing the pixel buffer.
func (i *Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    i.Pix,
		Stride: i.Width * 4,
		Rect:   image.Rect(0, 0, i.Width, i.Height),
	}
}

// FromImage converts any image.Image to an RGBA8 Image.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) || rgba.Stride != b.Dx()*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}
	return &Image{
		Format: FormatRGBA8,
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    rgba.Pix,
	}
}

// Placeholder returns the 2x2 opaque white texture shown until a diffuse map arrives.
func Placeholder() *Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return FromImage(img)
}

// Decode decodes texture data, choosing the decoder by the file extension of name.
func Decode(data []byte, name string) (*Image, error) {
	r := bytes.NewReader(data)

	var img image.Image
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		img, err = png.Decode(r)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(r)
	case ".gif":
		img, err = gif.Decode(r)
	case ".bmp":
		img, err = bmp.Decode(r)
	case ".webp":
		img, err = webp.Decode(r)
	case ".tga":
		img, err = tga.Decode(r)
	default:
		// TGA has no magic number, so it is never sniffed.
		img, _, err = image.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrLoadFailed, name, err)
	}

	return FromImage(img), nil
}

// Fetcher produces decoded pixel data for a resolved texture path.
type Fetcher interface {
	Fetch(path string) (*Image, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(path string) (*Image, error)

// Fetch calls f(path).
func (f FetcherFunc) Fetch(path string) (*Image, error) {
	return f(path)
}

// FileFetcher reads textures from disk through an asset manager.
type FileFetcher struct {
	Assets *assets.Manager
}

// NewFileFetcher creates a fetcher backed by the given asset manager.
func NewFileFetcher(m *assets.Manager) *FileFetcher {
	return &FileFetcher{Assets: m}
}

// Fetch reads and decodes the texture at path.
func (f *FileFetcher) Fetch(path string) (*Image, error) {
	data, err := f.Assets.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return Decode(data, path)
}
