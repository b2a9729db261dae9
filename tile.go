package vecpaint

import "math"

// prepareTileShader renders a pattern's tile sub-scene into a freshly
// allocated pixmap sized for the current transform and wraps it as a
// repeating, bicubic-filtered shading source.
//
// Preparation fails on degenerate tile sizes (the pattern rect collapses
// below one device pixel) and on non-invertible tile transforms; the
// caller then skips the draw operation silently.
func prepareTileShader(pattern *PatternPaint, transform Matrix, ctx *RenderContext) (Shader, bool) {
	sx, sy := transform.ScaleFactors()

	width := int(math.Round(pattern.Rect.W * sx))
	height := int(math.Round(pattern.Rect.H * sy))
	if width < 1 || height < 1 {
		return nil, false
	}
	if width > ctx.maxTileSize {
		width = ctx.maxTileSize
	}
	if height > ctx.maxTileSize {
		height = ctx.maxTileSize
	}

	// Effective scale after rounding and clamping, so the tile grid
	// stays aligned even when the pixmap size was adjusted.
	effSX := float64(width) / pattern.Rect.W
	effSY := float64(height) / pattern.Rect.H

	tile := NewPixmap(width, height)
	if tile == nil {
		return nil, false
	}

	contentTS := Scale(effSX, effSY).Multiply(pattern.ContentTransform)
	for _, op := range pattern.Content {
		// Individual content failures skip just that operation, the
		// same soft-failure policy as the outer pipeline.
		Execute(op, contentTS, BlendSrcOver, ctx, tile)
	}

	// Maps tile pixel coordinates into user space.
	tileTS := pattern.Transform.
		Multiply(Translate(pattern.Rect.X, pattern.Rect.Y)).
		Multiply(Scale(1/effSX, 1/effSY))
	inverse, ok := tileTS.Invert()
	if !ok {
		return nil, false
	}

	return &TileShader{
		tile:    tile,
		inverse: inverse,
		opacity: pattern.Opacity,
	}, true
}

// TileShader samples a rendered pattern tile as a repeating shading
// source with Catmull-Rom (bicubic) filtering.
type TileShader struct {
	tile    *Pixmap
	inverse Matrix // user space -> tile pixel space
	opacity float64
}

// shaderMarker implements the sealed Shader interface.
func (*TileShader) shaderMarker() {}

// ColorAt implements Shader.
func (t *TileShader) ColorAt(x, y float64) RGBA {
	p := t.inverse.TransformPoint(Pt(x, y))
	c := t.sampleBicubic(p.X, p.Y)
	return c.MulAlpha(t.opacity)
}

// wrap maps a coordinate into [0, n) with repeat spread.
func wrap(v float64, n int) int {
	i := int(math.Floor(v)) % n
	if i < 0 {
		i += n
	}
	return i
}

// catmullRom is the Catmull-Rom spline kernel weight for distance t in
// [-2, 2].
func catmullRom(t float64) float64 {
	t = math.Abs(t)
	switch {
	case t < 1:
		return 1.5*t*t*t - 2.5*t*t + 1
	case t < 2:
		return -0.5*t*t*t + 2.5*t*t - 4*t + 2
	default:
		return 0
	}
}

// sampleBicubic performs Catmull-Rom interpolation over a 4x4 pixel
// neighborhood with repeat wrapping at the tile boundaries.
func (t *TileShader) sampleBicubic(fx, fy float64) RGBA {
	fx -= 0.5
	fy -= 0.5
	x0 := math.Floor(fx)
	y0 := math.Floor(fy)
	tx := fx - x0
	ty := fy - y0

	var r, g, b, a float64
	for j := -1; j <= 2; j++ {
		wy := catmullRom(float64(j) - ty)
		if wy == 0 {
			continue
		}
		py := wrap(y0+float64(j), t.tile.Height())
		for i := -1; i <= 2; i++ {
			wx := catmullRom(float64(i) - tx)
			if wx == 0 {
				continue
			}
			px := wrap(x0+float64(i), t.tile.Width())
			c := t.tile.GetPixel(px, py)
			w := wx * wy
			// Accumulate premultiplied so transparent texels do not
			// bleed their color channels.
			r += c.R * c.A * w
			g += c.G * c.A * w
			b += c.B * c.A * w
			a += c.A * w
		}
	}

	if a <= 0 {
		return Transparent
	}
	return RGBA{
		R: clamp01(r / a),
		G: clamp01(g / a),
		B: clamp01(b / a),
		A: clamp01(a),
	}
}
