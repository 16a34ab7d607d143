package graphics

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	// GetFramebufferSize returns the drawable size in device pixels.
	GetFramebufferSize() (int, int)
	Time() float64
	IsGLES() bool
}

// PointerEvent is a pointer position in window coordinates together with the
// size of the view it was measured against. Y grows downwards.
type PointerEvent struct {
	X, Y       float64
	ViewWidth  float64
	ViewHeight float64
}

// Host is a Context that also owns display-refresh scheduling and the
// window-wide input events a mounted component can listen to.
// All callbacks are delivered on the thread that owns the context.
type Host interface {
	Context

	// AcquireGL makes the context current and returns its function table.
	AcquireGL() (GL, error)

	RequestFrame(fn FrameCallback) FrameHandle
	CancelFrame(h FrameHandle)

	// The returned func detaches the listener.
	AddPointerMoveListener(fn func(PointerEvent)) (remove func())
	AddResizeListener(fn func(width, height int)) (remove func())
}
