package renderer

import (
	"github.com/chewxy/math32"
	"github.com/richinsley/shaderbackdrop/graphics"
)

// PointerTracker keeps the last pointer position normalized to [0,1] with
// y measured from the bottom edge. There is no smoothing and no queue.
type PointerTracker struct {
	x, y float32
}

func newPointerTracker() *PointerTracker {
	return &PointerTracker{x: 0.5, y: 0.5}
}

// Position returns the last normalized position, (0.5, 0.5) before any event.
func (p *PointerTracker) Position() [2]float32 {
	return [2]float32{p.x, p.y}
}

func (p *PointerTracker) handleMove(ev graphics.PointerEvent) {
	// minimised or not laid out yet
	if ev.ViewWidth <= 0 || ev.ViewHeight <= 0 {
		return
	}
	p.x = clamp01(float32(ev.X / ev.ViewWidth))
	p.y = clamp01(1 - float32(ev.Y/ev.ViewHeight))
}

// GLFW keeps reporting positions outside the client area while a button is held.
func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0.5
	}
	return math32.Max(0, math32.Min(1, v))
}
