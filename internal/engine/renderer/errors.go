package renderer

import "fmt"

// GL error codes, mirrored so error text does not need a GL context.
const (
	codeInvalidEnum                 = 0x0500
	codeInvalidValue                = 0x0501
	codeInvalidOperation            = 0x0502
	codeOutOfMemory                 = 0x0505
	codeInvalidFramebufferOperation = 0x0506
)

// RenderError reports a GL error observed after a rendering step.
type RenderError struct {
	Op   string
	Code uint32
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %s (0x%04X)", e.Op, codeName(e.Code), e.Code)
}

func codeName(code uint32) string {
	switch code {
	case codeInvalidEnum:
		return "GL_INVALID_ENUM"
	case codeInvalidValue:
		return "GL_INVALID_VALUE"
	case codeInvalidOperation:
		return "GL_INVALID_OPERATION"
	case codeOutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case codeInvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "GL error"
	}
}
