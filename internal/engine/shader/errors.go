package shader

import (
	"fmt"
	"strings"
)

// LoadError reports shader source that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("read shader %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// CompileError carries the driver's info log for a shader stage that failed
// to compile.
type CompileError struct {
	Stage string // "vertex" or "fragment"
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: compile failed: %s", e.Stage, cleanLog(e.Log))
}

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link failed: %s", cleanLog(e.Log))
}

// cleanLog strips the NUL terminator and trailing whitespace GL leaves in
// info logs.
func cleanLog(log string) string {
	return strings.TrimRight(log, "\x00 \t\r\n")
}
