package renderer

import (
	"errors"
	"log"

	"github.com/richinsley/shaderbackdrop/graphics"
	"github.com/richinsley/shaderbackdrop/shader"
)

// Options configure one mounted background.
type Options struct {
	// Sources are the stages to build; see shader.Build.
	Sources shader.Sources
	// ClearColor fills the surface before each draw.
	ClearColor [4]float32
	// Class is an optional tag identifying the mount in diagnostics.
	Class string
}

// Background is one mounted instance of the animated backdrop. A Background
// whose context or program could not be set up is inert: it never schedules
// a frame and Unmount is a no-op.
//
// All methods must be called on the thread that owns the host's context.
type Background struct {
	host graphics.Host
	gl   graphics.GL
	opts Options

	surface  *Surface
	program  *ShaderProgram
	geometry *Geometry
	pointer  *PointerTracker
	driver   *FrameDriver

	removePointer func()
	removeResize  func()

	err     error
	mounted bool
}

// Mount builds the geometry and program and starts the frame loop. It never
// fails: when the context is unavailable or the program does not build, the
// cause is logged, reported by Err, and the returned Background does nothing.
func Mount(host graphics.Host, opts Options) *Background {
	b := &Background{host: host, opts: opts}

	g, err := host.AcquireGL()
	if err == nil && g == nil {
		err = ErrContextUnavailable
	}
	if err != nil {
		if !errors.Is(err, ErrContextUnavailable) {
			err = errors.Join(ErrContextUnavailable, err)
		}
		b.disable(err)
		return b
	}
	b.gl = g

	program, err := newProgram(g, opts.Sources)
	if err != nil {
		b.disable(err)
		return b
	}
	b.program = program
	b.geometry = newGeometry(g)
	b.surface = newSurface(host, g)
	b.pointer = newPointerTracker()

	c := opts.ClearColor
	g.ClearColor(c[0], c[1], c[2], c[3])
	b.surface.resize()

	b.removeResize = host.AddResizeListener(func(int, int) { b.surface.resize() })
	b.removePointer = host.AddPointerMoveListener(b.pointer.handleMove)

	b.driver = &FrameDriver{
		host:      host,
		gl:        g,
		surface:   b.surface,
		program:   b.program,
		geometry:  b.geometry,
		pointer:   b.pointer,
		mountTime: host.Time(),
		last:      FrameState{Pointer: b.pointer.Position()},
	}
	b.mounted = true
	b.driver.start()
	return b
}

func (b *Background) disable(err error) {
	b.err = err
	if b.opts.Class != "" {
		log.Printf("Background %q disabled: %v", b.opts.Class, err)
		return
	}
	log.Printf("Background disabled: %v", err)
}

// Unmount stops the frame loop, detaches the listeners and releases the GL
// objects. It is safe to call more than once.
func (b *Background) Unmount() {
	if !b.mounted {
		return
	}
	b.mounted = false

	b.driver.stop()
	b.removePointer()
	b.removeResize()
	b.geometry.release(b.gl)
	b.program.release(b.gl)
}

// Active reports whether the frame loop is running.
func (b *Background) Active() bool {
	return b.mounted && b.driver.state == driverRunning
}

// Err returns why the background is inert, or nil.
func (b *Background) Err() error {
	return b.err
}

// FrameState returns the inputs of the last drawn frame.
func (b *Background) FrameState() FrameState {
	if b.driver == nil {
		return FrameState{Pointer: [2]float32{0.5, 0.5}}
	}
	return b.driver.last
}

// Frames returns how many frames have been drawn.
func (b *Background) Frames() uint64 {
	if b.driver == nil {
		return 0
	}
	return b.driver.frames
}

// Surface returns the tracked surface, nil when inert.
func (b *Background) Surface() *Surface {
	return b.surface
}
