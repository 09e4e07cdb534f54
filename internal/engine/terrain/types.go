// Package terrain turns heightmap images into an indexed triangle mesh.
package terrain

// MaxHeight is the default world height of a sample equal to 1.
const MaxHeight float32 = 1 << 11

// Heightmap is a row-major grid of intensity samples.
// Sample (col, row) lives at Samples[row*Width+col].
type Heightmap struct {
	Width   int
	Height  int
	Samples []float32
}

// Vertex is a terrain mesh vertex. Only positions are uploaded.
type Vertex struct {
	Position [3]float32
}

// Mesh holds the terrain geometry ready for GPU upload.
// Vertices are row-major, so vertex (col, row) is Vertices[row*Width+col].
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Width    int // Grid columns
	Height   int // Grid rows
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// MeshOptions controls grid spacing and height scaling.
type MeshOptions struct {
	SpacingX  float32 // World units between columns
	SpacingZ  float32 // World units between rows
	MaxHeight float32 // Height of a sample equal to 1

	// AssumeSquareGrid bounds the column loop by the row count instead of
	// the column count, matching meshes produced by square-only
	// builder. Grids taller than they are wide are rejected in this mode.
	AssumeSquareGrid bool
}

// DefaultMeshOptions returns unit spacing and the default height scale.
func DefaultMeshOptions() MeshOptions {
	return MeshOptions{
		SpacingX:  1,
		SpacingZ:  1,
		MaxHeight: MaxHeight,
	}
}
