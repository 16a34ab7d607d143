package glfwcontext

import (
	"context"
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/shaderbackdrop/graphics"
	"github.com/richinsley/shaderbackdrop/graphics/glcore"
	options "github.com/richinsley/shaderbackdrop/options"
)

// Context is a GLFW window implementing graphics.Host. Display refreshes are
// paced by the vsynced buffer swap in Run; every callback, frame or input,
// runs on the thread that called Run.
type Context struct {
	window *glfw.Window
	gles   bool

	frames   graphics.FrameQueue
	nextID   int
	pointers map[int]func(graphics.PointerEvent)
	resizes  map[int]func(int, int)
	// A map to store functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
}

var _ graphics.Host = (*Context)(nil)

// New creates the window and its GL context.
func New(opts *options.BackdropOptions, title string) (*Context, error) {
	gles := *opts.GLES
	if gles {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, 3)
		glfw.WindowHint(glfw.ContextVersionMinor, 0)
	} else {
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)

	width, height := *opts.Width, *opts.Height
	var monitor *glfw.Monitor
	if *opts.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	win, err := glfw.CreateWindow(width, height, title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	c := &Context{
		window:       win,
		gles:         gles,
		pointers:     make(map[int]func(graphics.PointerEvent)),
		resizes:      make(map[int]func(int, int)),
		keyCallbacks: make(map[glfw.Key]func()),
	}

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)

	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	if action == glfw.Press {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

// Cursor positions are in screen coordinates, so they are normalized against
// the window size rather than the framebuffer size.
func (c *Context) glfwCursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	winWidth, winHeight := w.GetSize()
	ev := graphics.PointerEvent{
		X:          xpos,
		Y:          ypos,
		ViewWidth:  float64(winWidth),
		ViewHeight: float64(winHeight),
	}
	for _, fn := range c.pointers {
		fn(ev)
	}
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	for _, fn := range c.resizes {
		fn(width, height)
	}
}

func (c *Context) AddPointerMoveListener(fn func(graphics.PointerEvent)) func() {
	c.nextID++
	id := c.nextID
	c.pointers[id] = fn
	return func() { delete(c.pointers, id) }
}

func (c *Context) AddResizeListener(fn func(width, height int)) func() {
	c.nextID++
	id := c.nextID
	c.resizes[id] = fn
	return func() { delete(c.resizes, id) }
}

func (c *Context) RequestFrame(fn graphics.FrameCallback) graphics.FrameHandle {
	return c.frames.Request(fn)
}

func (c *Context) CancelFrame(h graphics.FrameHandle) {
	c.frames.Cancel(h)
}

// AcquireGL makes the context current and loads the GL entry points.
func (c *Context) AcquireGL() (graphics.GL, error) {
	c.MakeCurrent()
	glfw.SwapInterval(1)
	if err := glcore.Init(); err != nil {
		return nil, err
	}
	log.Printf("OpenGL version: %s", glcore.Version())
	return glcore.New(), nil
}

// Run dispatches one display refresh per swap until the window is closed or
// ctx is done.
func (c *Context) Run(ctx context.Context) {
	for !c.ShouldClose() && ctx.Err() == nil {
		c.frames.Dispatch(c.Time())
		c.EndFrame()
	}
}

func (c *Context) IsGLES() bool {
	return c.gles
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown now only destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
