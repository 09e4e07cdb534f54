package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/terrainview/internal/engine/input"
	"github.com/Faultbox/terrainview/internal/logger"
)

// Controls maps keys to camera moves and viewer toggles.
//
//	W/S         move forward/backward
//	A/D         strafe left/right
//	arrows      look
//	Space       toggle wireframe
//	F12         screenshot
//	Escape      quit
//
// Movement and look keys act on press and on auto-repeat. Toggles act on the
// press edge only so a held key does not flicker.
type Controls struct {
	state *RenderState
}

var _ input.Handler = (*Controls)(nil)

// NewControls creates a key handler driving state.
func NewControls(state *RenderState) *Controls {
	return &Controls{state: state}
}

// HandleKey implements input.Handler.
func (c *Controls) HandleKey(key input.Key, action input.Action) {
	if action == input.Release {
		return
	}

	cam := c.state.Camera
	switch key {
	case input.KeyW:
		cam.MoveForward()
	case input.KeyS:
		cam.MoveBackward()
	case input.KeyA:
		cam.StrafeLeft()
	case input.KeyD:
		cam.StrafeRight()
	case input.KeyUp:
		cam.LookUp()
	case input.KeyDown:
		cam.LookDown()
	case input.KeyLeft:
		cam.LookLeft()
	case input.KeyRight:
		cam.LookRight()
	}

	if action != input.Press {
		return
	}
	switch key {
	case input.KeySpace:
		c.state.ToggleWireframe()
		logger.Debug("wireframe toggled", zap.Bool("on", c.state.Wireframe()))
	case input.KeyF12:
		c.state.RequestScreenshot()
	case input.KeyEscape:
		c.state.RequestQuit()
	}
}
