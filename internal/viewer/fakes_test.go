package viewer

import (
	"github.com/Faultbox/terrainview/internal/engine/input"
	"github.com/Faultbox/terrainview/pkg/math"
)

// calls records collaborator calls in order across all fakes.
type calls struct {
	log []string
}

func (c *calls) add(name string) { c.log = append(c.log, name) }

type fakeSurface struct {
	c      *calls
	w, h   int
	swaps  int
	titles []string
}

func (s *fakeSurface) SwapBuffers() { s.c.add("swap"); s.swaps++ }
func (s *fakeSurface) DrawableSize() (int, int) { return s.w, s.h }
func (s *fakeSurface) SetTitle(title string) { s.titles = append(s.titles, title) }

// fakeEvents replays one batch of events per Update call.
type fakeEvents struct {
	c       *calls
	frames  [][]input.Event
	quitAt  int // Update call (1-based) that reports quit; 0 = never
	updates int
	current []input.Event
}

func (e *fakeEvents) Update() bool {
	e.c.add("input")
	e.updates++
	e.current = nil
	if len(e.frames) > 0 {
		e.current = e.frames[0]
		e.frames = e.frames[1:]
	}
	return e.quitAt != 0 && e.updates >= e.quitAt
}

func (e *fakeEvents) Events() []input.Event { return e.current }

type fakeGPU struct {
	c         *calls
	wireframe []bool
	resizes   [][2]int
	draws     int
	reads     int
	checkErr  error
	pixels    []byte
	pixelsW   int
	pixelsH   int
}

func (g *fakeGPU) Begin() { g.c.add("clear") }
func (g *fakeGPU) DrawMesh() { g.c.add("draw"); g.draws++ }
func (g *fakeGPU) SetWireframe(on bool) { g.wireframe = append(g.wireframe, on) }
func (g *fakeGPU) Resize(w, h int) { g.resizes = append(g.resizes, [2]int{w, h}) }
func (g *fakeGPU) ReadPixels() ([]byte, int, int) {
	g.reads++
	return g.pixels, g.pixelsW, g.pixelsH
}
func (g *fakeGPU) CheckError(op string) error { return g.checkErr }

type fakeProgram struct {
	c      *calls
	mats   map[string]math.Mat4
	vecs   map[string]math.Vec3
	floats map[string]float32
	ints   map[string]int32
}

func newFakeProgram(c *calls) *fakeProgram {
	return &fakeProgram{
		c:      c,
		mats:   map[string]math.Mat4{},
		vecs:   map[string]math.Vec3{},
		floats: map[string]float32{},
		ints:   map[string]int32{},
	}
}

func (p *fakeProgram) Use() {}
func (p *fakeProgram) SetMat4(name string, m math.Mat4) {
	p.c.add("uniform:" + name)
	p.mats[name] = m
}
func (p *fakeProgram) SetVec3(name string, v math.Vec3) { p.vecs[name] = v }
func (p *fakeProgram) SetFloat(name string, v float32) { p.floats[name] = v }
func (p *fakeProgram) SetInt(name string, v int32) { p.ints[name] = v }

type fakeScreenshots struct {
	captured [][]byte
	err      error
}

func (s *fakeScreenshots) CaptureFromPixels(pixels []byte, w, h int) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.captured = append(s.captured, pixels)
	return "shot.png", nil
}
