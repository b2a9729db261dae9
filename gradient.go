package vecpaint

import (
	"math"
	"sort"
)

// SpreadMode defines how gradients extend beyond their defined bounds.
type SpreadMode int

const (
	// SpreadPad extends edge colors beyond bounds (default behavior).
	SpreadPad SpreadMode = iota
	// SpreadRepeat repeats the gradient pattern.
	SpreadRepeat
	// SpreadReflect mirrors the gradient pattern.
	SpreadReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops returns the color stops sorted by offset without modifying
// the original slice.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// applySpreadMode normalizes t to [0, 1] according to the spread mode.
func applySpreadMode(t float64, mode SpreadMode) float64 {
	switch mode {
	case SpreadRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case SpreadReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // SpreadPad
		t = clamp01(t)
	}
	return t
}

// srgbToLinear converts an sRGB component to linear light.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB converts a linear-light component to sRGB.
func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// interpolateColorLinear interpolates two colors in linear sRGB space,
// which avoids the muddy midpoints of naive sRGB interpolation.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	lerp := func(a, b float64) float64 {
		la := srgbToLinear(a)
		lb := srgbToLinear(b)
		return linearToSRGB(la + t*(lb-la))
	}
	return RGBA{
		R: lerp(c1.R, c2.R),
		G: lerp(c1.G, c2.G),
		B: lerp(c1.B, c2.B),
		A: c1.A + t*(c2.A-c1.A),
	}
}

// colorAtOffset returns the interpolated color at a gradient offset.
// Stops must already be sorted by offset.
func colorAtOffset(stops []ColorStop, t float64, mode SpreadMode) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = applySpreadMode(t, mode)

	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}

	for i := 0; i+1 < len(stops); i++ {
		s0, s1 := stops[i], stops[i+1]
		if t < s0.Offset || t > s1.Offset {
			continue
		}
		span := s1.Offset - s0.Offset
		if span <= 0 {
			return s1.Color
		}
		return interpolateColorLinear(s0.Color, s1.Color, (t-s0.Offset)/span)
	}
	return last.Color
}

// LinearGradientShader shades a linear color transition between two
// points. The inverse maps user space into gradient space; the
// resolver bakes the gradient's own transform (and any object-bbox
// mapping) into it before the shader is used.
type LinearGradientShader struct {
	Start   Point
	End     Point
	Stops   []ColorStop // sorted by offset
	Spread  SpreadMode
	inverse Matrix
}

// shaderMarker implements the sealed Shader interface.
func (*LinearGradientShader) shaderMarker() {}

// ColorAt implements Shader.
func (g *LinearGradientShader) ColorAt(x, y float64) RGBA {
	p := g.inverse.TransformPoint(Pt(x, y))

	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return g.Stops[0].Color
	}

	// Project the point onto the gradient line.
	t := ((p.X-g.Start.X)*dx + (p.Y-g.Start.Y)*dy) / lengthSq
	return colorAtOffset(g.Stops, t, g.Spread)
}

// RadialGradientShader shades a radial color transition radiating from a
// focal point within the circle defined by Center and Radius.
type RadialGradientShader struct {
	Center  Point
	Focus   Point
	Radius  float64
	Stops   []ColorStop // sorted by offset
	Spread  SpreadMode
	inverse Matrix
}

// shaderMarker implements the sealed Shader interface.
func (*RadialGradientShader) shaderMarker() {}

// ColorAt implements Shader.
func (g *RadialGradientShader) ColorAt(x, y float64) RGBA {
	p := g.inverse.TransformPoint(Pt(x, y))

	var t float64
	if g.Focus == g.Center {
		t = p.Distance(g.Center) / g.Radius
	} else {
		t = g.focalT(p)
	}
	return colorAtOffset(g.Stops, t, g.Spread)
}

// focalT computes the gradient parameter for an off-center focal point
// by intersecting the ray from the focus through p with the gradient
// circle.
func (g *RadialGradientShader) focalT(p Point) float64 {
	d := p.Sub(g.Focus)
	dist := d.Length()
	if dist == 0 {
		return 0
	}
	dir := d.Mul(1 / dist)

	// Solve |focus + s*dir - center|^2 = radius^2 for the positive root.
	f := g.Focus.Sub(g.Center)
	b := 2 * (f.X*dir.X + f.Y*dir.Y)
	c := f.X*f.X + f.Y*f.Y - g.Radius*g.Radius
	disc := b*b - 4*c
	if disc < 0 {
		return 1
	}
	s := (-b + math.Sqrt(disc)) / 2
	if s <= 0 {
		return 1
	}
	return dist / s
}
