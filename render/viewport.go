package render

import (
	"sync"

	"go.lepak.sg/bstviz/camera"
	"go.lepak.sg/bstviz/display"
	"golang.org/x/exp/constraints"
)

// Viewport moves a camera according to each frame and passes the
// frame on with View set:
//   - the camera's world follows the frame's bounding box
//   - Recenter sends the camera home
//   - Target centers the camera on that point
type Viewport[T constraints.Ordered] struct {
	mu   sync.Mutex
	cam  *camera.Camera
	next display.Renderer[T]
	last display.Frame[T]
}

func NewViewport[T constraints.Ordered](cfg camera.Config, next display.Renderer[T]) *Viewport[T] {
	return &Viewport[T]{
		cam:  camera.New(cfg, display.BoundingBox{}),
		next: next,
	}
}

func (v *Viewport[T]) Render(f display.Frame[T]) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if f.State != nil {
		v.cam.UpdateWorld(f.State.BoundingBox)
	}
	if f.Recenter {
		v.cam.Center()
	}
	v.cam.Calibrate()
	if f.Target != nil {
		v.cam.CenterOn(*f.Target)
	}

	view := v.cam.View()
	f.View = &view
	v.last = f

	return v.next.Render(f)
}

// Pan moves the camera in the directions in d. If the camera moved,
// the last frame is rendered again with the new view, without its
// target. It returns whether the camera moved.
func (v *Viewport[T]) Pan(d camera.Direction) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cam.Update(d)
	if !v.cam.HasMoved() {
		return false, nil
	}

	f := v.last
	f.Target = nil
	view := v.cam.View()
	f.View = &view
	v.last = f

	return true, v.next.Render(f)
}

// View returns the current camera view.
func (v *Viewport[T]) View() display.Rect {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.cam.View()
}
