package renderer

import "github.com/richinsley/shaderbackdrop/graphics"

type driverState int

const (
	driverIdle driverState = iota
	driverRunning
	driverStopped
)

func (s driverState) String() string {
	switch s {
	case driverIdle:
		return "idle"
	case driverRunning:
		return "running"
	case driverStopped:
		return "stopped"
	}
	return "unknown"
}

// FrameState is what one frame feeds the program: seconds since mount and the
// normalized pointer position.
type FrameState struct {
	Time    float32
	Pointer [2]float32
}

// FrameDriver re-arms itself on every display refresh until stopped. At most
// one request is outstanding at any time.
type FrameDriver struct {
	host     graphics.Host
	gl       graphics.GL
	surface  *Surface
	program  *ShaderProgram
	geometry *Geometry
	pointer  *PointerTracker

	state     driverState
	pending   graphics.FrameHandle
	mountTime float64
	last      FrameState
	frames    uint64
}

func (d *FrameDriver) start() {
	if d.state != driverIdle {
		return
	}
	d.state = driverRunning
	d.pending = d.host.RequestFrame(d.frame)
}

// stop cancels the outstanding request. A stopped driver never resumes.
func (d *FrameDriver) stop() {
	if d.state == driverRunning && d.pending != 0 {
		d.host.CancelFrame(d.pending)
	}
	d.pending = 0
	d.state = driverStopped
}

func (d *FrameDriver) frame(now float64) {
	d.pending = 0
	if d.state != driverRunning {
		return
	}

	d.surface.resize()

	elapsed := float32(now - d.mountTime)
	// the time uniform never decreases
	if elapsed < d.last.Time {
		elapsed = d.last.Time
	}
	d.last = FrameState{Time: elapsed, Pointer: d.pointer.Position()}

	d.gl.Clear()
	d.gl.UseProgram(d.program.Program)
	d.program.setUniforms(d.gl, d.last, d.surface.Width, d.surface.Height)
	d.geometry.bind(d.gl)
	d.gl.DrawTriangles(0, quadVertexCount)
	d.frames++

	d.pending = d.host.RequestFrame(d.frame)
}
