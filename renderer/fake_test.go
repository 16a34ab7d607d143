package renderer

import (
	"fmt"
	"strings"

	"github.com/richinsley/shaderbackdrop/graphics"
)

// fakeHost is a graphics.Host driven by hand from tests.
type fakeHost struct {
	width, height int
	clock         float64
	gl            *fakeGL
	acquireErr    error

	frames   graphics.FrameQueue
	pointers map[int]func(graphics.PointerEvent)
	resizes  map[int]func(int, int)
	nextID   int
}

func newFakeHost(width, height int) *fakeHost {
	return &fakeHost{
		width:    width,
		height:   height,
		gl:       newFakeGL(),
		pointers: make(map[int]func(graphics.PointerEvent)),
		resizes:  make(map[int]func(int, int)),
	}
}

func (h *fakeHost) MakeCurrent()                   {}
func (h *fakeHost) Shutdown()                      {}
func (h *fakeHost) ShouldClose() bool              { return false }
func (h *fakeHost) EndFrame()                      {}
func (h *fakeHost) GetFramebufferSize() (int, int) { return h.width, h.height }
func (h *fakeHost) Time() float64                  { return h.clock }
func (h *fakeHost) IsGLES() bool                   { return false }

func (h *fakeHost) AcquireGL() (graphics.GL, error) {
	if h.acquireErr != nil {
		return nil, h.acquireErr
	}
	return h.gl, nil
}

func (h *fakeHost) RequestFrame(fn graphics.FrameCallback) graphics.FrameHandle {
	return h.frames.Request(fn)
}

func (h *fakeHost) CancelFrame(handle graphics.FrameHandle) {
	h.frames.Cancel(handle)
}

func (h *fakeHost) AddPointerMoveListener(fn func(graphics.PointerEvent)) func() {
	h.nextID++
	id := h.nextID
	h.pointers[id] = fn
	return func() { delete(h.pointers, id) }
}

func (h *fakeHost) AddResizeListener(fn func(int, int)) func() {
	h.nextID++
	id := h.nextID
	h.resizes[id] = fn
	return func() { delete(h.resizes, id) }
}

// refresh advances the clock and runs one display refresh.
func (h *fakeHost) refresh(dt float64) int {
	h.clock += dt
	return h.frames.Dispatch(h.clock)
}

func (h *fakeHost) movePointer(x, y float64) {
	for _, fn := range h.pointers {
		fn(graphics.PointerEvent{X: x, Y: y, ViewWidth: float64(h.width), ViewHeight: float64(h.height)})
	}
}

func (h *fakeHost) resize(width, height int) {
	h.width, h.height = width, height
	for _, fn := range h.resizes {
		fn(width, height)
	}
}

// fakeGL records the calls the renderer makes.
type fakeGL struct {
	calls []string
	next  uint32

	sources       map[uint32]string
	live          map[uint32]string
	failLink      bool
	uniformLocs   map[string]int32
	uniform1f     map[int32][]float32
	uniform2f     map[int32][][2]float32
	draws         int
	lastViewport  [4]int32
	boundProgram  uint32
	boundVAO      uint32
	bufferUploads [][]float32
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		sources: make(map[uint32]string),
		live:    make(map[uint32]string),
		uniformLocs: map[string]int32{
			"u_time":       1,
			"u_mouse":      2,
			"u_resolution": 3,
		},
		uniform1f: make(map[int32][]float32),
		uniform2f: make(map[int32][][2]float32),
	}
}

func (g *fakeGL) record(format string, args ...any) {
	g.calls = append(g.calls, fmt.Sprintf(format, args...))
}

func (g *fakeGL) alloc(kind string) uint32 {
	g.next++
	g.live[g.next] = kind
	return g.next
}

func (g *fakeGL) free(name uint32) {
	delete(g.live, name)
}

func (g *fakeGL) liveOf(kind string) int {
	n := 0
	for _, k := range g.live {
		if k == kind {
			n++
		}
	}
	return n
}

func (g *fakeGL) countCalls(prefix string) int {
	n := 0
	for _, c := range g.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (g *fakeGL) CreateShader(stage graphics.ShaderStage) uint32 {
	g.record("CreateShader %s", stage)
	return g.alloc("shader")
}

func (g *fakeGL) ShaderSource(shader uint32, source string) {
	g.sources[shader] = source
}

func (g *fakeGL) CompileShader(shader uint32) {
	g.record("CompileShader %d", shader)
}

// Sources containing "#error" fail to compile, like a real compiler would.
func (g *fakeGL) ShaderStatus(shader uint32) (bool, string) {
	if strings.Contains(g.sources[shader], "#error") {
		return false, "0:1: '#error' : broken"
	}
	return true, ""
}

func (g *fakeGL) DeleteShader(shader uint32) {
	g.record("DeleteShader %d", shader)
	g.free(shader)
}

func (g *fakeGL) CreateProgram() uint32 {
	g.record("CreateProgram")
	return g.alloc("program")
}

func (g *fakeGL) AttachShader(program, shader uint32) {}

func (g *fakeGL) LinkProgram(program uint32) {
	g.record("LinkProgram %d", program)
}

func (g *fakeGL) ProgramStatus(program uint32) (bool, string) {
	if g.failLink {
		return false, "error: varying mismatch"
	}
	return true, ""
}

func (g *fakeGL) UseProgram(program uint32) {
	g.boundProgram = program
	g.record("UseProgram %d", program)
}

func (g *fakeGL) DeleteProgram(program uint32) {
	g.record("DeleteProgram %d", program)
	g.free(program)
}

func (g *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	if loc, ok := g.uniformLocs[name]; ok {
		return loc
	}
	return -1
}

func (g *fakeGL) GenVertexArray() uint32 {
	g.record("GenVertexArray")
	return g.alloc("vao")
}

func (g *fakeGL) BindVertexArray(vao uint32) {
	g.boundVAO = vao
	g.record("BindVertexArray %d", vao)
}

func (g *fakeGL) DeleteVertexArray(vao uint32) {
	g.record("DeleteVertexArray %d", vao)
	g.free(vao)
}

func (g *fakeGL) GenBuffer() uint32 {
	g.record("GenBuffer")
	return g.alloc("buffer")
}

func (g *fakeGL) BindArrayBuffer(buffer uint32) {}

func (g *fakeGL) ArrayBufferData(data []float32) {
	g.bufferUploads = append(g.bufferUploads, append([]float32(nil), data...))
}

func (g *fakeGL) DeleteBuffer(buffer uint32) {
	g.record("DeleteBuffer %d", buffer)
	g.free(buffer)
}

func (g *fakeGL) VertexAttribPointer2f(index uint32)    {}
func (g *fakeGL) EnableVertexAttribArray(index uint32) {}

func (g *fakeGL) Uniform1f(location int32, v float32) {
	g.record("Uniform1f %d", location)
	g.uniform1f[location] = append(g.uniform1f[location], v)
}

func (g *fakeGL) Uniform2f(location int32, x, y float32) {
	g.record("Uniform2f %d", location)
	g.uniform2f[location] = append(g.uniform2f[location], [2]float32{x, y})
}

func (g *fakeGL) Viewport(x, y, width, height int32) {
	g.lastViewport = [4]int32{x, y, width, height}
	g.record("Viewport %d %d", width, height)
}

func (g *fakeGL) ClearColor(r, g2, b, a float32) {}

func (g *fakeGL) Clear() {
	g.record("Clear")
}

func (g *fakeGL) DrawTriangles(first, count int32) {
	g.draws++
	g.record("DrawTriangles %d %d", first, count)
}
