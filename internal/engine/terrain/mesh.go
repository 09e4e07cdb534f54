package terrain

import (
	"errors"
	"fmt"
	"math"
)

// ErrGridOutOfRange is returned when AssumeSquareGrid would emit indices past
// the end of the vertex buffer.
var ErrGridOutOfRange = errors.New("square-grid triangulation out of range")

// BuildMesh creates a terrain mesh from a heightmap.
//
// Vertex (col, row) sits at (col*SpacingX, MaxHeight*sample, row*SpacingZ).
// Each grid quad becomes two triangles whose diagonal alternates with the
// column parity, giving a herringbone strip instead of a uniform split.
func BuildMesh(hm *Heightmap, opts MeshOptions) (*Mesh, error) {
	if hm == nil || hm.Width <= 0 || hm.Height <= 0 {
		return nil, ErrEmptyHeightmap
	}
	if len(hm.Samples) != hm.Width*hm.Height {
		return nil, fmt.Errorf("heightmap %dx%d has %d samples", hm.Width, hm.Height, len(hm.Samples))
	}

	width, height := hm.Width, hm.Height
	if uint64(width)*uint64(height) > math.MaxUint32 {
		return nil, fmt.Errorf("heightmap %dx%d exceeds 32-bit indices", width, height)
	}

	cols := width - 1
	if opts.AssumeSquareGrid {
		if height > width {
			return nil, fmt.Errorf("%w: %dx%d grid", ErrGridOutOfRange, width, height)
		}
		cols = height - 1
	}

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, width*height),
		Width:    width,
		Height:   height,
		Bounds: Bounds{
			Min: [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
			Max: [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
		},
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := [3]float32{
				float32(col) * opts.SpacingX,
				opts.MaxHeight * hm.At(col, row),
				float32(row) * opts.SpacingZ,
			}
			updateBounds(&mesh.Bounds, p)
			mesh.Vertices = append(mesh.Vertices, Vertex{Position: p})
		}
	}

	if height > 1 && cols > 0 {
		mesh.Indices = make([]uint32, 0, 6*(height-1)*cols)
	}
	stride := uint32(width)
	for row := 0; row < height-1; row++ {
		for col := 0; col < cols; col++ {
			base := uint32(row*width + col)
			mesh.Indices = appendQuad(mesh.Indices, base, stride, col%2 == 0)
		}
	}

	return mesh, nil
}

// appendQuad emits the two triangles of the quad whose bottom-left vertex
// is base. stride is the grid width.
func appendQuad(indices []uint32, base, stride uint32, even bool) []uint32 {
	bl := base
	br := base + 1
	tl := base + stride
	tr := base + stride + 1

	if even {
		return append(indices,
			bl, br, tr,
			bl, tl, tr,
		)
	}
	return append(indices,
		bl, br, tl,
		tl, tr, br,
	)
}

// Positions returns vertex positions tightly packed as x, y, z float32s.
func (m *Mesh) Positions() []float32 {
	out := make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2])
	}
	return out
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
