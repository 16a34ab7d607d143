package renderer

import "github.com/richinsley/shaderbackdrop/graphics"

// Surface tracks the pixel size the viewport was last configured for.
type Surface struct {
	ctx graphics.Context
	gl  graphics.GL

	Width  int
	Height int
	sized  bool
}

func newSurface(ctx graphics.Context, g graphics.GL) *Surface {
	return &Surface{ctx: ctx, gl: g}
}

// resize matches the viewport to the framebuffer. It reports whether the size changed.
func (s *Surface) resize() bool {
	fbWidth, fbHeight := s.ctx.GetFramebufferSize()
	if s.sized && fbWidth == s.Width && fbHeight == s.Height {
		return false
	}
	s.Width, s.Height = fbWidth, fbHeight
	s.sized = true
	s.gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	return true
}
