package vecpaint

import "math"

// BlendMode represents a compositing operation applied when a draw
// operation writes to the target.
//
// The Porter-Duff operators follow "Compositing Digital Images" (1984);
// the separable modes follow the W3C Compositing and Blending Level 1
// specification. Blending happens in premultiplied-alpha space.
type BlendMode int

const (
	// BlendClear writes transparent pixels.
	BlendClear BlendMode = iota
	// BlendSrc replaces the destination with the source.
	BlendSrc
	// BlendDst keeps the destination unchanged.
	BlendDst
	// BlendSrcOver composites source over destination (default).
	BlendSrcOver
	// BlendDstOver composites destination over source.
	BlendDstOver
	// BlendSrcIn keeps the source where the destination is opaque.
	BlendSrcIn
	// BlendDstIn keeps the destination where the source is opaque.
	BlendDstIn
	// BlendSrcOut keeps the source where the destination is transparent.
	BlendSrcOut
	// BlendDstOut keeps the destination where the source is transparent.
	BlendDstOut
	// BlendSrcAtop composites the source atop the destination.
	BlendSrcAtop
	// BlendDstAtop composites the destination atop the source.
	BlendDstAtop
	// BlendXor keeps source and destination where they do not overlap.
	BlendXor
	// BlendPlus adds source and destination, clamped.
	BlendPlus
	// BlendMultiply multiplies source and destination.
	BlendMultiply
	// BlendScreen inverts, multiplies, and inverts again.
	BlendScreen
	// BlendOverlay multiplies or screens depending on the destination.
	BlendOverlay
	// BlendDarken keeps the darker of source and destination.
	BlendDarken
	// BlendLighten keeps the lighter of source and destination.
	BlendLighten
)

// premul holds a premultiplied-alpha color.
type premul struct {
	r, g, b, a float64
}

func toPremul(c RGBA) premul {
	return premul{r: c.R * c.A, g: c.G * c.A, b: c.B * c.A, a: c.A}
}

func (p premul) unpremul() RGBA {
	if p.a <= 0 {
		return RGBA{}
	}
	return RGBA{
		R: clamp01(p.r / p.a),
		G: clamp01(p.g / p.a),
		B: clamp01(p.b / p.a),
		A: clamp01(p.a),
	}
}

// blendPixel composites src over/into dst according to the blend mode,
// in non-premultiplied terms at the API boundary.
func blendPixel(src, dst RGBA, mode BlendMode) RGBA {
	s := toPremul(src)
	d := toPremul(dst)

	var out premul
	switch mode {
	case BlendClear:
		out = premul{}
	case BlendSrc:
		out = s
	case BlendDst:
		out = d
	case BlendSrcOver:
		out = porterDuff(s, d, 1, 1-s.a)
	case BlendDstOver:
		out = porterDuff(s, d, 1-d.a, 1)
	case BlendSrcIn:
		out = porterDuff(s, d, d.a, 0)
	case BlendDstIn:
		out = porterDuff(s, d, 0, s.a)
	case BlendSrcOut:
		out = porterDuff(s, d, 1-d.a, 0)
	case BlendDstOut:
		out = porterDuff(s, d, 0, 1-s.a)
	case BlendSrcAtop:
		out = porterDuff(s, d, d.a, 1-s.a)
	case BlendDstAtop:
		out = porterDuff(s, d, 1-d.a, s.a)
	case BlendXor:
		out = porterDuff(s, d, 1-d.a, 1-s.a)
	case BlendPlus:
		out = premul{
			r: math.Min(s.r+d.r, 1),
			g: math.Min(s.g+d.g, 1),
			b: math.Min(s.b+d.b, 1),
			a: math.Min(s.a+d.a, 1),
		}
	case BlendMultiply, BlendScreen, BlendOverlay, BlendDarken, BlendLighten:
		out = separable(src, dst, mode)
	default:
		out = porterDuff(s, d, 1, 1-s.a)
	}
	return out.unpremul()
}

// porterDuff computes fs*S + fd*D in premultiplied space.
func porterDuff(s, d premul, fs, fd float64) premul {
	return premul{
		r: fs*s.r + fd*d.r,
		g: fs*s.g + fd*d.g,
		b: fs*s.b + fd*d.b,
		a: fs*s.a + fd*d.a,
	}
}

// separable applies a separable blend function per channel and then
// composites source-over, per the W3C compositing model.
func separable(src, dst RGBA, mode BlendMode) premul {
	var f func(cs, cd float64) float64
	switch mode {
	case BlendMultiply:
		f = func(cs, cd float64) float64 { return cs * cd }
	case BlendScreen:
		f = func(cs, cd float64) float64 { return cs + cd - cs*cd }
	case BlendOverlay:
		f = func(cs, cd float64) float64 {
			if cd <= 0.5 {
				return 2 * cs * cd
			}
			return 1 - 2*(1-cs)*(1-cd)
		}
	case BlendDarken:
		f = math.Min
	case BlendLighten:
		f = math.Max
	}

	// Blend in non-premultiplied space, then mix by destination alpha
	// and composite source-over.
	blended := RGBA{
		R: (1-dst.A)*src.R + dst.A*f(src.R, dst.R),
		G: (1-dst.A)*src.G + dst.A*f(src.G, dst.G),
		B: (1-dst.A)*src.B + dst.A*f(src.B, dst.B),
		A: src.A,
	}
	return porterDuff(toPremul(blended), toPremul(dst), 1, 1-blended.A)
}
