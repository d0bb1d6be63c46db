// Package gputest provides a recording gpu.Device for tests.
package gputest

import (
	"github.com/zhijia2/DancingLogo/internal/engine/gpu"
)

// Draw records a single DrawTriangles call together with the state that
// was bound when it was issued.
type Draw struct {
	First, Count int32
	Program      uint32
	VAO          uint32
	Matrix       [16]float32
}

// Pointer records a VertexAttribPointer call.
type Pointer struct {
	Buffer uint32
	Size   int32
}

// Buffer is the recorded state of one array buffer.
type Buffer struct {
	Data    []float32
	Usage   gpu.Usage
	Uploads int
}

// Device is an in-memory gpu.Device. Handles are allocated from a single
// counter so every object gets a distinct non-zero name.
type Device struct {
	// Attributes and Uniforms are the active bindings reported for every
	// linked program. New fills them with the scene shader's names.
	Attributes map[string]int32
	Uniforms   map[string]int32

	// CompileLogs makes compilation of the given stage fail with the log.
	CompileLogs map[gpu.ShaderKind]string
	// LinkLog makes linking fail with the log when non-empty.
	LinkLog string

	Width, Height int

	next uint32

	Shaders      map[uint32]gpu.ShaderKind
	Programs     map[uint32][]uint32
	VAOs         map[uint32]bool
	Buffers      map[uint32]*Buffer
	Pointers     map[uint32]Pointer
	Enabled      map[uint32]bool
	UniformState map[int32][16]float32

	CurrentProgram uint32
	BoundVAO       uint32
	BoundBuffer    uint32

	ClearColorValue [4]float32
	Clears          int
	ViewportValue   [4]int32
	Draws           []Draw
}

var _ gpu.Device = (*Device)(nil)

// New returns a device whose programs expose aVertexPosition,
// aVertexColor and uModelViewMatrix.
func New() *Device {
	return &Device{
		Attributes: map[string]int32{
			"aVertexPosition": 0,
			"aVertexColor":    1,
		},
		Uniforms: map[string]int32{
			"uModelViewMatrix": 0,
		},
		CompileLogs:  map[gpu.ShaderKind]string{},
		Width:        4,
		Height:       2,
		Shaders:      map[uint32]gpu.ShaderKind{},
		Programs:     map[uint32][]uint32{},
		VAOs:         map[uint32]bool{},
		Buffers:      map[uint32]*Buffer{},
		Pointers:     map[uint32]Pointer{},
		Enabled:      map[uint32]bool{},
		UniformState: map[int32][16]float32{},
	}
}

func (d *Device) alloc() uint32 {
	d.next++
	return d.next
}

// Live reports the number of shader, program, vertex array and buffer
// objects that have not been deleted.
func (d *Device) Live() int {
	return len(d.Shaders) + len(d.Programs) + len(d.VAOs) + len(d.Buffers)
}

// LastDraw returns the most recent draw call.
func (d *Device) LastDraw() (Draw, bool) {
	if len(d.Draws) == 0 {
		return Draw{}, false
	}
	return d.Draws[len(d.Draws)-1], true
}

func (d *Device) Info() (string, string) { return "4.1 gputest", "gputest" }

func (d *Device) CreateShader(kind gpu.ShaderKind) uint32 {
	h := d.alloc()
	d.Shaders[h] = kind
	return h
}

func (d *Device) CompileShader(shader uint32, source string) (bool, string) {
	if log, ok := d.CompileLogs[d.Shaders[shader]]; ok {
		return false, log
	}
	return true, ""
}

func (d *Device) DeleteShader(shader uint32) { delete(d.Shaders, shader) }

func (d *Device) CreateProgram() uint32 {
	h := d.alloc()
	d.Programs[h] = nil
	return h
}

func (d *Device) AttachShader(program, shader uint32) {
	d.Programs[program] = append(d.Programs[program], shader)
}

func (d *Device) LinkProgram(program uint32) (bool, string) {
	if d.LinkLog != "" {
		return false, d.LinkLog
	}
	return true, ""
}

func (d *Device) UseProgram(program uint32) { d.CurrentProgram = program }

func (d *Device) DeleteProgram(program uint32) {
	delete(d.Programs, program)
	if d.CurrentProgram == program {
		d.CurrentProgram = 0
	}
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	if loc, ok := d.Attributes[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	if loc, ok := d.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) UniformMatrix4(location int32, m *[16]float32) {
	d.UniformState[location] = *m
}

func (d *Device) GenVertexArray() uint32 {
	h := d.alloc()
	d.VAOs[h] = true
	return h
}

func (d *Device) BindVertexArray(vao uint32) { d.BoundVAO = vao }

func (d *Device) DeleteVertexArray(vao uint32) {
	delete(d.VAOs, vao)
	if d.BoundVAO == vao {
		d.BoundVAO = 0
	}
}

func (d *Device) GenBuffer() uint32 {
	h := d.alloc()
	d.Buffers[h] = &Buffer{}
	return h
}

func (d *Device) BindArrayBuffer(buffer uint32) { d.BoundBuffer = buffer }

func (d *Device) BufferData(data []float32, usage gpu.Usage) {
	b, ok := d.Buffers[d.BoundBuffer]
	if !ok {
		return
	}
	b.Data = append([]float32(nil), data...)
	b.Usage = usage
	b.Uploads++
}

func (d *Device) DeleteBuffer(buffer uint32) {
	delete(d.Buffers, buffer)
	if d.BoundBuffer == buffer {
		d.BoundBuffer = 0
	}
}

func (d *Device) VertexAttribPointer(location uint32, size int32) {
	d.Pointers[location] = Pointer{Buffer: d.BoundBuffer, Size: size}
}

func (d *Device) EnableVertexAttribArray(location uint32) { d.Enabled[location] = true }

func (d *Device) ClearColor(r, g, b, a float32) { d.ClearColorValue = [4]float32{r, g, b, a} }

func (d *Device) Clear() { d.Clears++ }

func (d *Device) Viewport(x, y, width, height int32) {
	d.ViewportValue = [4]int32{x, y, width, height}
}

// DrawTriangles records the call along with the matrix last uploaded to
// uniform location 0.
func (d *Device) DrawTriangles(first, count int32) {
	d.Draws = append(d.Draws, Draw{
		First:   first,
		Count:   count,
		Program: d.CurrentProgram,
		VAO:     d.BoundVAO,
		Matrix:  d.UniformState[d.Uniforms["uModelViewMatrix"]],
	})
}

// ReadPixels returns an opaque white framebuffer.
func (d *Device) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	for i := range pixels {
		pixels[i] = 0xff
	}
	return pixels
}
