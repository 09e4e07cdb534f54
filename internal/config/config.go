// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Camera     CameraConfig     `yaml:"camera"`
	Projection ProjectionConfig `yaml:"projection"`
	Shaders    ShaderConfig     `yaml:"shaders"`
	Debug      DebugConfig      `yaml:"debug"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// TerrainConfig holds heightmap and mesh construction settings.
type TerrainConfig struct {
	Heightmap string  `yaml:"heightmap"`  // Path to the heightmap image
	SpacingX  float32 `yaml:"spacing_x"`  // World units between columns
	SpacingZ  float32 `yaml:"spacing_z"`  // World units between rows
	MaxHeight float32 `yaml:"max_height"` // Height of a sample equal to 1

	// AssumeSquareGrid bounds columns by the row count, reproducing meshes
	// built by square-only triangulation.
	AssumeSquareGrid bool `yaml:"assume_square_grid"`
}

// CameraConfig holds the free-fly camera start state and speeds.
type CameraConfig struct {
	Position     [3]float32 `yaml:"position"`
	Yaw          float32    `yaml:"yaw"`           // Degrees
	Pitch        float32    `yaml:"pitch"`         // Degrees
	Speed        float32    `yaml:"speed"`         // World units per key event
	AngularSpeed float32    `yaml:"angular_speed"` // Degrees per key event
	PitchLimit   float32    `yaml:"pitch_limit"`   // 0 = unbounded
}

// ProjectionConfig holds perspective projection settings.
type ProjectionConfig struct {
	FOV  float32 `yaml:"fov"` // Vertical field of view, degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// ShaderConfig holds shader source paths.
type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// DebugConfig holds developer toggles.
type DebugConfig struct {
	ScreenshotDir  string `yaml:"screenshot_dir"`
	StartWireframe bool   `yaml:"start_wireframe"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Terrain",
			Width:  1000,
			Height: 1000,
			VSync:  true,
		},
		Terrain: TerrainConfig{
			Heightmap: "map.jpg",
			SpacingX:  1,
			SpacingZ:  1,
			MaxHeight: 2048,
		},
		Camera: CameraConfig{
			Position:     [3]float32{5, 100, 10},
			Yaw:          90,
			Pitch:        0,
			Speed:        1.5,
			AngularSpeed: 4,
		},
		Projection: ProjectionConfig{
			FOV:  45,
			Near: 0.1,
			Far:  100,
		},
		Shaders: ShaderConfig{
			Vertex:   "assets/shaders/terrain.vert",
			Fragment: "assets/shaders/terrain.frag",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Terrain.Heightmap == "" {
		errs = append(errs, errors.New("terrain.heightmap is empty"))
	}
	if c.Terrain.SpacingX <= 0 || c.Terrain.SpacingZ <= 0 {
		errs = append(errs, fmt.Errorf("terrain spacing (%g, %g) must be positive", c.Terrain.SpacingX, c.Terrain.SpacingZ))
	}
	if c.Camera.PitchLimit < 0 {
		errs = append(errs, fmt.Errorf("camera.pitch_limit %g must not be negative", c.Camera.PitchLimit))
	}
	if c.Projection.FOV <= 0 || c.Projection.FOV >= 180 {
		errs = append(errs, fmt.Errorf("projection.fov %g must be within (0, 180)", c.Projection.FOV))
	}
	if c.Projection.Near <= 0 || c.Projection.Near >= c.Projection.Far {
		errs = append(errs, fmt.Errorf("projection near %g / far %g: need 0 < near < far", c.Projection.Near, c.Projection.Far))
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		errs = append(errs, errors.New("shader paths must be set"))
	}

	return errors.Join(errs...)
}
