// Package shader compiles and links GLSL programs and resolves their
// attribute and uniform bindings.
package shader

import (
	"fmt"

	"github.com/zhijia2/DancingLogo/internal/engine/gpu"
)

// Stage is a compiled shader object of a known kind.
type Stage struct {
	Kind   gpu.ShaderKind
	handle uint32
}

// Handle returns the GL shader name.
func (s Stage) Handle() uint32 { return s.handle }

// CompileError reports a shader that failed to compile.
type CompileError struct {
	Kind gpu.ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: compile failed: %s", e.Kind, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link failed: %s", e.Log)
}

// MissingAttributeError reports an attribute that is not active in the
// linked program.
type MissingAttributeError struct {
	Name string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("attribute %q not found", e.Name)
}

// MissingUniformError reports a uniform that is not active in the linked
// program.
type MissingUniformError struct {
	Name string
}

func (e *MissingUniformError) Error() string {
	return fmt.Sprintf("uniform %q not found", e.Name)
}

// Compile compiles source as a shader of the given kind. The kind comes
// from the caller; it is never inferred from the source.
func Compile(dev gpu.Device, source string, kind gpu.ShaderKind) (Stage, error) {
	handle := dev.CreateShader(kind)
	if ok, log := dev.CompileShader(handle, source); !ok {
		dev.DeleteShader(handle)
		return Stage{}, &CompileError{Kind: kind, Log: log}
	}
	return Stage{Kind: kind, handle: handle}, nil
}

// Program is a linked shader program.
type Program struct {
	dev    gpu.Device
	handle uint32
}

// Link links a vertex and a fragment stage into a program. Both stages are
// released whether or not linking succeeds.
func Link(dev gpu.Device, vertex, fragment Stage) (*Program, error) {
	defer dev.DeleteShader(vertex.handle)
	defer dev.DeleteShader(fragment.handle)

	if vertex.Kind != gpu.VertexShader || fragment.Kind != gpu.FragmentShader {
		return nil, &LinkError{Log: fmt.Sprintf("stage order: got %s and %s", vertex.Kind, fragment.Kind)}
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vertex.handle)
	dev.AttachShader(program, fragment.handle)
	if ok, log := dev.LinkProgram(program); !ok {
		dev.DeleteProgram(program)
		return nil, &LinkError{Log: log}
	}

	return &Program{dev: dev, handle: program}, nil
}

// CompileProgram compiles vertex and fragment sources and links them.
// Nothing is left allocated when an error is returned.
func CompileProgram(dev gpu.Device, vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := Compile(dev, vertexSrc, gpu.VertexShader)
	if err != nil {
		return nil, err
	}

	frag, err := Compile(dev, fragmentSrc, gpu.FragmentShader)
	if err != nil {
		dev.DeleteShader(vert.handle)
		return nil, err
	}

	return Link(dev, vert, frag)
}

// Handle returns the GL program name.
func (p *Program) Handle() uint32 { return p.handle }

// Attribute returns the location of the named vertex attribute.
func (p *Program) Attribute(name string) (uint32, error) {
	loc := p.dev.AttribLocation(p.handle, name)
	if loc < 0 {
		return 0, &MissingAttributeError{Name: name}
	}
	return uint32(loc), nil
}

// Uniform returns the location of the named uniform.
func (p *Program) Uniform(name string) (int32, error) {
	loc := p.dev.UniformLocation(p.handle, name)
	if loc < 0 {
		return -1, &MissingUniformError{Name: name}
	}
	return loc, nil
}

// Use makes p the current program.
func (p *Program) Use() {
	p.dev.UseProgram(p.handle)
}

// Delete releases the program. It is safe to call more than once.
func (p *Program) Delete() {
	if p.handle == 0 {
		return
	}
	p.dev.UseProgram(0)
	p.dev.DeleteProgram(p.handle)
	p.handle = 0
}
