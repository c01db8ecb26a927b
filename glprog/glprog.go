// Package glprog compiles and links the fixed shader programs used by the
// demos, reporting compiler and linker diagnostics as errors.
package glprog

import (
	"fmt"
	"strings"

	"golang.org/x/mobile/gl"
)

// CompileError is returned when a shader fails to compile.  Log holds the
// compiler diagnostic.
type CompileError struct {
	Type gl.Enum
	Log  string
}

func (err *CompileError) Error() string {
	return fmt.Sprintf("%s shader compile failed: %s", shaderKind(err.Type), err.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (err *LinkError) Error() string {
	return fmt.Sprintf("program link failed: %s", err.Log)
}

func shaderKind(ty gl.Enum) string {
	switch ty {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("0x%x", uint32(ty))
	}
}

// MissingError lists the attribute and uniform names a program does not
// expose.
type MissingError struct {
	Attribs  []string
	Uniforms []string
}

func (err *MissingError) Error() string {
	var parts []string
	if len(err.Attribs) > 0 {
		parts = append(parts, "attributes "+strings.Join(err.Attribs, ", "))
	}
	if len(err.Uniforms) > 0 {
		parts = append(parts, "uniforms "+strings.Join(err.Uniforms, ", "))
	}
	return "missing " + strings.Join(parts, "; ")
}

// Locations looks up the named attributes and uniforms of program.  All
// locations are returned even when some are missing, in which case the
// error is a *MissingError naming every one of them.
func Locations(glctx gl.Context, program gl.Program, attribs, uniforms []string) ([]gl.Attrib, []gl.Uniform, error) {
	var missing MissingError
	as := make([]gl.Attrib, len(attribs))
	for i, name := range attribs {
		as[i] = glctx.GetAttribLocation(program, name)
		// -1 arrives as an unsigned value; only its low 32 bits are reliable.
		if int32(as[i].Value) < 0 {
			missing.Attribs = append(missing.Attribs, name)
		}
	}
	us := make([]gl.Uniform, len(uniforms))
	for i, name := range uniforms {
		us[i] = glctx.GetUniformLocation(program, name)
		if us[i].Value < 0 {
			missing.Uniforms = append(missing.Uniforms, name)
		}
	}
	if len(missing.Attribs) > 0 || len(missing.Uniforms) > 0 {
		return as, us, &missing
	}
	return as, us, nil
}
