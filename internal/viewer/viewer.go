// Package viewer runs the interactive terrain frame loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terrainview/internal/engine/input"
	"github.com/Faultbox/terrainview/internal/logger"
	"github.com/Faultbox/terrainview/pkg/math"
)

// Uniform names used by the terrain shaders.
const (
	UniformProjection = "projectionMatrix"
	UniformView       = "viewMatrix"
	UniformCamera     = "cameraPosition"
	UniformMaxHeight  = "maxHeight"
	UniformWireframe  = "wireframe"
)

// Surface is the presentable window.
type Surface interface {
	SwapBuffers()
	DrawableSize() (int, int)
	SetTitle(title string)
}

// EventSource delivers input once per frame.
type EventSource interface {
	Update() bool
	Events() []input.Event
}

// GPU draws the uploaded terrain mesh.
type GPU interface {
	Begin()
	DrawMesh()
	SetWireframe(on bool)
	Resize(width, height int)
	ReadPixels() ([]byte, int, int)
	CheckError(op string) error
}

// Program is a linked shader program.
type Program interface {
	Use()
	SetMat4(name string, m math.Mat4)
	SetVec3(name string, v math.Vec3)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
}

// Screenshotter saves framebuffer pixels.
type Screenshotter interface {
	CaptureFromPixels(pixels []byte, width, height int) (string, error)
}

// Options configures a Viewer.
type Options struct {
	Title       string
	MaxHeight   float32
	Screenshots Screenshotter // Optional; F12 is ignored when nil
}

// Viewer owns the frame loop.
type Viewer struct {
	opts     Options
	state    *RenderState
	controls *Controls

	surface Surface
	events  EventSource
	gpu     GPU
	program Program

	appliedWireframe bool
	now              func() time.Time
}

// New creates a viewer over its collaborators. The state's size is replaced
// by the surface's current drawable size.
func New(opts Options, state *RenderState, surface Surface, events EventSource, gpu GPU, program Program) *Viewer {
	v := &Viewer{
		opts:     opts,
		state:    state,
		controls: NewControls(state),
		surface:  surface,
		events:   events,
		gpu:      gpu,
		program:  program,
		now:      time.Now,
	}

	w, h := surface.DrawableSize()
	state.Resize(w, h)
	gpu.Resize(w, h)
	v.appliedWireframe = state.Wireframe()
	gpu.SetWireframe(v.appliedWireframe)

	return v
}

// State returns the viewer's render state.
func (v *Viewer) State() *RenderState {
	return v.state
}

// Run draws frames until a quit is requested or rendering fails.
func (v *Viewer) Run() error {
	logger.Info("starting render loop",
		zap.Int("width", v.state.width),
		zap.Int("height", v.state.height),
	)

	lastTime := v.now()
	frameCount := 0
	fpsTimer := lastTime

	for !v.state.QuitRequested() {
		now := v.now()
		dt := now.Sub(lastTime)
		lastTime = now

		if err := v.Frame(); err != nil {
			return err
		}

		frameCount++
		if elapsed := now.Sub(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			logger.Debug("fps",
				zap.Float64("fps", fps),
				zap.Duration("frame", dt),
				logger.Vec3("camera", v.state.Camera.Position),
			)
			if v.opts.Title != "" {
				v.surface.SetTitle(fmt.Sprintf("%s - %.0f fps", v.opts.Title, fps))
			}
			frameCount = 0
			fpsTimer = now
		}
	}

	logger.Info("render loop stopped")
	return nil
}

// Frame renders one frame: clear, view, uniforms, draw, input, present.
func (v *Viewer) Frame() error {
	v.gpu.Begin()

	view := v.state.Camera.ViewMatrix()
	v.program.Use()
	v.program.SetMat4(UniformProjection, v.state.Projection())
	v.program.SetMat4(UniformView, view)
	v.program.SetVec3(UniformCamera, v.state.Camera.Position)
	v.program.SetFloat(UniformMaxHeight, v.opts.MaxHeight)
	v.program.SetInt(UniformWireframe, boolToInt(v.appliedWireframe))

	v.gpu.DrawMesh()
	if err := v.gpu.CheckError("draw"); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}

	if v.state.takeScreenshot() {
		v.captureScreenshot()
	}

	v.processInput()

	v.surface.SwapBuffers()
	return nil
}

func (v *Viewer) processInput() {
	if v.events.Update() {
		v.state.RequestQuit()
	}

	for _, event := range v.events.Events() {
		switch event.Type {
		case input.EventResize:
			// Event sizes are in screen coordinates; the viewport needs pixels.
			w, h := v.surface.DrawableSize()
			v.gpu.Resize(w, h)
			v.state.Resize(w, h)
		case input.EventKey:
			v.controls.HandleKey(event.Key, event.Action)
		}
	}

	if v.state.Wireframe() != v.appliedWireframe {
		v.appliedWireframe = v.state.Wireframe()
		v.gpu.SetWireframe(v.appliedWireframe)
	}
}

func (v *Viewer) captureScreenshot() {
	if v.opts.Screenshots == nil {
		return
	}
	pixels, w, h := v.gpu.ReadPixels()
	path, err := v.opts.Screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
