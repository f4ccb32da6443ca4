package main

import "github.com/veandco/go-sdl2/sdl"

// autoOrbit is the idle yaw speed in radians per second.
const autoOrbit = 0.25

func (v *viewer) loop() error {
	last := sdl.GetTicks64()
	dragging := false
	capture := false

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					v.r.Resize(v.win.Size())
				}
			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				if dragging {
					v.cam.HandleDrag(float32(e.XRel), float32(e.YRel))
				}
			case *sdl.MouseWheelEvent:
				v.cam.HandleZoom(float32(e.Y))
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					continue
				}
				switch key := e.Keysym.Sym; {
				case key == sdl.K_ESCAPE:
					return nil
				case key == sdl.K_F12:
					capture = true
				case key == sdl.K_r:
					v.cam.FitToBounds(rowBounds(len(v.slots), v.cfg.Viewer.Spacing))
				case key >= sdl.K_1 && key <= sdl.K_9:
					v.retry(int(key-sdl.K_1) + 1)
				}
			}
		}

		now := sdl.GetTicks64()
		if !dragging {
			v.cam.Orbit(float32(now-last) / 1000 * autoOrbit)
		}
		last = now

		v.r.Render(v.cam.ViewProjection(v.r.Aspect()))
		if capture {
			v.screenshot()
			capture = false
		}
		v.win.SwapBuffers()
	}
}
