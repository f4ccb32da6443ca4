package texture

import (
	"image"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Fit scales img down so neither side exceeds maxSize, keeping the aspect ratio.
// Images already within bounds, or a non-positive maxSize, are returned as is.
func Fit(img *Image, maxSize int) *Image {
	if maxSize <= 0 || (img.Width <= maxSize && img.Height <= maxSize) {
		return img
	}

	w, h := maxSize, maxSize
	if img.Width > img.Height {
		h = max(1, img.Height*maxSize/img.Width)
	} else {
		w = max(1, img.Width*maxSize/img.Height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img.RGBA(), image.Rect(0, 0, img.Width, img.Height), draw.Src, nil)
	return FromImage(dst)
}

// EncodeWebP writes img as a lossless WebP.
func EncodeWebP(w io.Writer, img *Image) error {
	return nativewebp.Encode(w, img.RGBA(), nil)
}
