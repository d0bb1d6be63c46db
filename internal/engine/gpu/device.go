// Package gpu defines the narrow slice of OpenGL the renderer depends on.
//
// Device is implemented by GL (go-gl, desktop core profile) and by the
// recording fake in gpu/gputest, which lets the pipeline, buffer and
// scheduler logic run in tests without a context.
package gpu

// ShaderKind selects the programmable stage a shader object belongs to.
type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

// String returns the lowercase stage name.
func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// Usage is the buffer usage hint passed to BufferData.
type Usage int

const (
	StaticDraw Usage = iota
	DynamicDraw
)

// String returns the GL-style name of the hint.
func (u Usage) String() string {
	if u == DynamicDraw {
		return "DYNAMIC_DRAW"
	}
	return "STATIC_DRAW"
}

// Device is the set of GL entry points used by the render pipeline.
// All methods must be called from the thread that owns the context.
type Device interface {
	// Info returns the GL version and renderer strings.
	Info() (version, renderer string)

	CreateShader(kind ShaderKind) uint32
	// CompileShader uploads source and compiles it. On failure ok is
	// false and log holds the driver's info log.
	CompileShader(shader uint32, source string) (ok bool, log string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	// LinkProgram links program. On failure ok is false and log holds
	// the driver's info log.
	LinkProgram(program uint32) (ok bool, log string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// AttribLocation returns -1 when name is not an active attribute.
	AttribLocation(program uint32, name string) int32
	// UniformLocation returns -1 when name is not an active uniform.
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m *[16]float32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindArrayBuffer(buffer uint32)
	// BufferData replaces the contents of the bound array buffer.
	BufferData(data []float32, usage Usage)
	DeleteBuffer(buffer uint32)

	// VertexAttribPointer describes a tightly packed float attribute in
	// the bound array buffer.
	VertexAttribPointer(location uint32, size int32)
	EnableVertexAttribArray(location uint32)

	ClearColor(r, g, b, a float32)
	Clear()
	Viewport(x, y, width, height int32)
	DrawTriangles(first, count int32)

	// ReadPixels reads the RGBA framebuffer, bottom row first.
	ReadPixels(width, height int) []byte
}
