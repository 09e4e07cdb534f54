package shader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.vert")
	require.NoError(t, os.WriteFile(path, []byte("#version 410 core\n"), 0644))

	src, err := readSource(path)
	require.NoError(t, err)
	require.Equal(t, "#version 410 core\n", src)
}

func TestReadSourceMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.frag")

	_, err := readSource(path)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	require.Equal(t, path, loadErr.Path)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadProgramMissingVertexFailsBeforeGL(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "terrain.frag")
	require.NoError(t, os.WriteFile(frag, []byte("void main() {}"), 0644))

	// No GL context exists here; the read error must surface first.
	_, err := LoadProgram(filepath.Join(dir, "terrain.vert"), frag)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestErrorMessages(t *testing.T) {
	compile := &CompileError{Stage: "fragment", Log: "0:3(1): error: syntax error\n\x00"}
	require.Equal(t, "fragment shader: compile failed: 0:3(1): error: syntax error", compile.Error())

	link := &LinkError{Log: "error: vertex output 'height' not read\x00"}
	require.Equal(t, "link failed: error: vertex output 'height' not read", link.Error())

	load := &LoadError{Path: "a.vert", Err: fs.ErrPermission}
	require.Equal(t, "read shader a.vert: permission denied", load.Error())
}
