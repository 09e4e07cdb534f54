// Package camera provides the free-fly camera used to explore the terrain.
package camera

import (
	gomath "math"

	"github.com/Faultbox/terrainview/pkg/math"
)

// FlyCamera moves freely through the scene in discrete steps.
// Yaw and pitch are in degrees and unbounded unless PitchLimit is set.
// Roll is always zero.
type FlyCamera struct {
	Position math.Vec3

	yaw   float32
	pitch float32
	front math.Vec3

	Speed        float32 // World units per move
	AngularSpeed float32 // Degrees per look step

	// PitchLimit clamps pitch to [-PitchLimit, PitchLimit] when non-zero.
	// Zero leaves pitch unbounded, which lets the view flip past vertical.
	PitchLimit float32
}

// NewFlyCamera creates a camera at the default start state.
func NewFlyCamera() *FlyCamera {
	c := &FlyCamera{
		Position:     math.Vec3{X: 5, Y: 100, Z: 10},
		yaw:          90,
		pitch:        0,
		Speed:        1.5,
		AngularSpeed: 4,
	}
	c.updateFront()
	return c
}

// Yaw returns the heading in degrees.
func (c *FlyCamera) Yaw() float32 { return c.yaw }

// Pitch returns the elevation in degrees.
func (c *FlyCamera) Pitch() float32 { return c.pitch }

// Front returns the unit view direction.
func (c *FlyCamera) Front() math.Vec3 { return c.front }

// Up returns the fixed world-up reference vector.
func (c *FlyCamera) Up() math.Vec3 { return math.WorldUp }

// Right returns the unit vector pointing to the camera's right.
// It is zero when looking straight up or down.
func (c *FlyCamera) Right() math.Vec3 {
	return c.front.Cross(math.WorldUp).Normalize()
}

// SetOrientation sets yaw and pitch in degrees.
func (c *FlyCamera) SetOrientation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = pitch
	c.updateFront()
}

// MoveForward moves along the view direction.
func (c *FlyCamera) MoveForward() {
	c.Position = c.Position.Add(c.front.Scale(c.Speed))
}

// MoveBackward moves against the view direction.
func (c *FlyCamera) MoveBackward() {
	c.Position = c.Position.Sub(c.front.Scale(c.Speed))
}

// StrafeLeft moves sideways to the left.
func (c *FlyCamera) StrafeLeft() {
	c.Position = c.Position.Sub(c.Right().Scale(c.Speed))
}

// StrafeRight moves sideways to the right.
func (c *FlyCamera) StrafeRight() {
	c.Position = c.Position.Add(c.Right().Scale(c.Speed))
}

// LookUp raises the pitch by one step.
func (c *FlyCamera) LookUp() {
	c.pitch += c.AngularSpeed
	c.updateFront()
}

// LookDown lowers the pitch by one step.
func (c *FlyCamera) LookDown() {
	c.pitch -= c.AngularSpeed
	c.updateFront()
}

// LookLeft turns the heading left by one step.
func (c *FlyCamera) LookLeft() {
	c.yaw -= c.AngularSpeed
	c.updateFront()
}

// LookRight turns the heading right by one step.
func (c *FlyCamera) LookRight() {
	c.yaw += c.AngularSpeed
	c.updateFront()
}

// ViewMatrix returns the look-at transform for the current state.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.front), math.WorldUp)
}

// updateFront recomputes the view direction from yaw and pitch.
func (c *FlyCamera) updateFront() {
	if c.PitchLimit > 0 {
		c.pitch = clampf(c.pitch, -c.PitchLimit, c.PitchLimit)
	}

	yaw := float64(math.Radians(c.yaw))
	pitch := float64(math.Radians(c.pitch))

	dir := math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.front = dir.Normalize()
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
