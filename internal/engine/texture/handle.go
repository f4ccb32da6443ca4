package texture

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/logger"
)

// Handle tracks one in-flight texture acquisition.
// Image returns the placeholder until decoding succeeds; a failed or
// never-completing fetch leaves the placeholder in place.
type Handle struct {
	path    string
	current atomic.Pointer[Image]
	done    chan struct{}
	err     error // set before done is closed
}

// Acquire starts fetching path in the background and returns immediately.
// There is no cancellation.
func Acquire(f Fetcher, path string) *Handle {
	h := newHandle(path)
	go h.run(f)
	return h
}

// Resolved returns a completed handle that keeps the placeholder.
// It is used when a material names no diffuse map.
func Resolved() *Handle {
	h := newHandle("")
	close(h.done)
	return h
}

func newHandle(path string) *Handle {
	h := &Handle{
		path: path,
		done: make(chan struct{}),
	}
	h.current.Store(Placeholder())
	return h
}

// run keeps every failure inside the goroutine, panics included.
func (h *Handle) run(f Fetcher) {
	defer close(h.done)
	defer func() {
		if r := recover(); r != nil {
			h.fail(fmt.Errorf("%w: %s: %v", ErrLoadFailed, h.path, r))
		}
	}()

	if f == nil {
		h.fail(fmt.Errorf("%w: %s: no fetcher configured", ErrLoadFailed, h.path))
		return
	}

	img, err := f.Fetch(h.path)
	if err != nil {
		h.fail(err)
		return
	}
	if img == nil {
		h.fail(fmt.Errorf("%w: %s: fetcher returned no image", ErrLoadFailed, h.path))
		return
	}

	h.current.Store(img)
	logger.Debug("texture decoded",
		zap.String("path", h.path),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height))
}

func (h *Handle) fail(err error) {
	h.err = err
	logger.Warn("texture unavailable, keeping placeholder",
		zap.String("path", h.path),
		zap.Error(err))
}

// Path returns the texture path being fetched, empty for a placeholder-only handle.
func (h *Handle) Path() string {
	return h.path
}

// Image returns the current pixels: the placeholder or the decoded texture.
func (h *Handle) Image() *Image {
	return h.current.Load()
}

// Done is closed once the fetch has finished, successfully or not.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns the fetch error after Done is closed, nil before.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Ready reports whether a decoded texture replaced the placeholder.
func (h *Handle) Ready() bool {
	select {
	case <-h.done:
		return h.err == nil && h.path != ""
	default:
		return false
	}
}

// Wait blocks until the fetch finishes and returns the resulting pixels.
func (h *Handle) Wait() (*Image, error) {
	<-h.done
	return h.Image(), h.err
}
