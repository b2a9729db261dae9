package vecpaint

// RenderContext carries what the executor needs beyond the draw
// operation itself: the rasterizer and limits for nested pattern-tile
// rendering. A single context may be shared across many Execute calls;
// it holds no per-call state.
type RenderContext struct {
	rasterizer  Rasterizer
	maxTileSize int
}

// RenderContextOption configures a RenderContext during creation.
type RenderContextOption func(*RenderContext)

// WithRasterizer sets a custom rasterizer for the context.
// Use this for dependency injection of alternative scanline engines.
func WithRasterizer(r Rasterizer) RenderContextOption {
	return func(c *RenderContext) {
		c.rasterizer = r
	}
}

// WithMaxTileSize caps pattern tile dimensions in pixels. Tiles whose
// device-space size exceeds the cap are rendered at the cap and
// positioned by a compensating transform.
func WithMaxTileSize(px int) RenderContextOption {
	return func(c *RenderContext) {
		if px > 0 {
			c.maxTileSize = px
		}
	}
}

// NewRenderContext creates a render context with the software rasterizer
// and a 4096 px tile cap by default.
func NewRenderContext(opts ...RenderContextOption) *RenderContext {
	c := &RenderContext{
		maxTileSize: 4096,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rasterizer == nil {
		c.rasterizer = NewSoftwareRasterizer()
	}
	return c
}

// Execute runs a single draw operation against the target pixmap under
// the given transform and blend mode.
//
// The operation's paint is resolved into a concrete shader first: shader
// paints are reused as-is, pattern paints render their tile sub-scene
// into a fresh pixmap and wrap it as a repeating, bicubic-filtered
// shading source. Any failure (degenerate tile, non-invertible
// transform, rasterizer error) skips exactly this operation and returns
// false with the target untouched by it; nothing is ever raised as a
// hard error.
func Execute(op DrawOp, transform Matrix, blend BlendMode, ctx *RenderContext, target *Pixmap) bool {
	if ctx == nil || target == nil {
		return false
	}

	switch o := op.(type) {
	case *FillOp:
		shader, ok := resolveShader(o.Paint, transform, ctx)
		if !ok {
			return false
		}
		err := ctx.rasterizer.FillPath(target, o.Path, shader, o.Rule,
			transform, o.Antialias, blend, nil)
		if err != nil {
			Logger().Debug("fill rasterization failed", "error", err)
			return false
		}
		return true

	case *StrokeOp:
		shader, ok := resolveShader(o.Paint, transform, ctx)
		if !ok {
			return false
		}
		err := ctx.rasterizer.StrokePath(target, o.Path, shader, o.Stroke,
			transform, o.Antialias, blend, nil)
		if err != nil {
			Logger().Debug("stroke rasterization failed", "error", err)
			return false
		}
		return true
	}
	return false
}

// resolveShader turns a resolved Paint into the shader handed to the
// rasterizer, rendering pattern tiles on demand.
func resolveShader(paint Paint, transform Matrix, ctx *RenderContext) (Shader, bool) {
	switch p := paint.(type) {
	case ShaderPaint:
		return p.Shader, true
	case *PatternPaint:
		return prepareTileShader(p, transform, ctx)
	}
	return nil, false
}
