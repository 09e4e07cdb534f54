package viewer

import (
	"github.com/Faultbox/terrainview/internal/engine/camera"
	"github.com/Faultbox/terrainview/pkg/math"
)

// Projection describes the perspective lens.
type Projection struct {
	FOV  float32 // Vertical field of view, degrees
	Near float32
	Far  float32
}

// Matrix returns the projection for the given aspect ratio.
func (p Projection) Matrix(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(p.FOV), aspect, p.Near, p.Far)
}

// RenderState is the mutable per-session state shared by the frame loop and
// the key handler.
type RenderState struct {
	Camera *camera.FlyCamera

	lens       Projection
	projection math.Mat4
	width      int
	height     int

	wireframe  bool
	quit       bool
	screenshot bool
}

// NewRenderState creates state for a surface of the given drawable size.
func NewRenderState(cam *camera.FlyCamera, lens Projection, width, height int) *RenderState {
	s := &RenderState{
		Camera: cam,
		lens:   lens,
	}
	s.Resize(width, height)
	return s
}

// Resize records a new drawable size and recomputes the projection.
// A zero dimension, as reported while minimized, keeps the previous one.
func (s *RenderState) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.projection = s.lens.Matrix(s.Aspect())
}

// Size returns the drawable size the projection was built for.
func (s *RenderState) Size() (int, int) {
	return s.width, s.height
}

// Aspect returns width/height of the drawable surface, or 1 before the first
// valid size is known.
func (s *RenderState) Aspect() float32 {
	if s.width <= 0 || s.height <= 0 {
		return 1
	}
	return float32(s.width) / float32(s.height)
}

// Projection returns the cached projection matrix.
func (s *RenderState) Projection() math.Mat4 {
	return s.projection
}

// Wireframe reports whether line rendering is requested.
func (s *RenderState) Wireframe() bool { return s.wireframe }

// SetWireframe sets the polygon mode request directly.
func (s *RenderState) SetWireframe(on bool) { s.wireframe = on }

// ToggleWireframe flips between line and fill rendering.
func (s *RenderState) ToggleWireframe() { s.wireframe = !s.wireframe }

// RequestQuit asks the loop to stop after the current frame.
func (s *RenderState) RequestQuit() { s.quit = true }

// QuitRequested reports whether the loop should stop.
func (s *RenderState) QuitRequested() bool { return s.quit }

// RequestScreenshot asks for a capture of the next drawn frame.
func (s *RenderState) RequestScreenshot() { s.screenshot = true }

// takeScreenshot reports and clears a pending screenshot request.
func (s *RenderState) takeScreenshot() bool {
	pending := s.screenshot
	s.screenshot = false
	return pending
}
