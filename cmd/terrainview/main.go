// Package main is the entry point for the terrain viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainview/internal/config"
	"github.com/Faultbox/terrainview/internal/engine/camera"
	"github.com/Faultbox/terrainview/internal/engine/debug"
	"github.com/Faultbox/terrainview/internal/engine/input"
	"github.com/Faultbox/terrainview/internal/engine/renderer"
	"github.com/Faultbox/terrainview/internal/engine/shader"
	"github.com/Faultbox/terrainview/internal/engine/terrain"
	"github.com/Faultbox/terrainview/internal/engine/window"
	"github.com/Faultbox/terrainview/internal/logger"
	"github.com/Faultbox/terrainview/internal/viewer"
	"github.com/Faultbox/terrainview/pkg/math"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== Terrain Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
	logger.Sync()
}

func run(cfg *config.Config) error {
	if config.PickHeightmap() {
		path, err := pickHeightmap()
		if err != nil {
			return err
		}
		cfg.Terrain.Heightmap = path
	}

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("path", path))
		return nil
	}

	// Geometry is built before any window exists so a bad heightmap fails fast.
	mesh, err := buildMesh(cfg.Terrain)
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	// Renderer needs the OpenGL context the window just made current.
	width, height := win.DrawableSize()
	rend, err := renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer rend.Close()

	program, err := shader.LoadProgram(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return fmt.Errorf("failed to build shader program: %w", err)
	}
	defer program.Delete()

	if err := rend.UploadMesh(mesh); err != nil {
		return fmt.Errorf("failed to upload terrain: %w", err)
	}

	state := viewer.NewRenderState(newCamera(cfg.Camera), viewer.Projection{
		FOV:  cfg.Projection.FOV,
		Near: cfg.Projection.Near,
		Far:  cfg.Projection.Far,
	}, width, height)
	state.SetWireframe(cfg.Debug.StartWireframe)

	v := viewer.New(viewer.Options{
		Title:       cfg.Window.Title,
		MaxHeight:   cfg.Terrain.MaxHeight,
		Screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "terrain"),
	}, state, win, input.New(), rend, program)

	return v.Run()
}

func buildMesh(tc config.TerrainConfig) (*terrain.Mesh, error) {
	hm, err := terrain.LoadHeightmap(tc.Heightmap)
	if err != nil {
		return nil, err
	}

	mesh, err := terrain.BuildMesh(hm, terrain.MeshOptions{
		SpacingX:         tc.SpacingX,
		SpacingZ:         tc.SpacingZ,
		MaxHeight:        tc.MaxHeight,
		AssumeSquareGrid: tc.AssumeSquareGrid,
	})
	if err != nil {
		return nil, fmt.Errorf("building terrain mesh: %w", err)
	}

	logger.Info("terrain built",
		zap.String("heightmap", tc.Heightmap),
		zap.Int("columns", mesh.Width),
		zap.Int("rows", mesh.Height),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float32("min_y", mesh.Bounds.Min[1]),
		zap.Float32("max_y", mesh.Bounds.Max[1]),
	)
	return mesh, nil
}

func newCamera(cc config.CameraConfig) *camera.FlyCamera {
	cam := camera.NewFlyCamera()
	cam.Position = math.Vec3{X: cc.Position[0], Y: cc.Position[1], Z: cc.Position[2]}
	cam.Speed = cc.Speed
	cam.AngularSpeed = cc.AngularSpeed
	cam.PitchLimit = cc.PitchLimit
	cam.SetOrientation(cc.Yaw, cc.Pitch)
	return cam
}

var errNoHeightmap = errors.New("no heightmap selected")

func pickHeightmap() (string, error) {
	filename, err := dialog.File().
		Filter("Images", "jpg", "jpeg", "png", "bmp", "gif", "tga", "tif", "tiff", "webp").
		Filter("All Files", "*").
		Title("Open Heightmap").
		Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", errNoHeightmap
		}
		return "", fmt.Errorf("file dialog: %w", err)
	}
	return filename, nil
}
