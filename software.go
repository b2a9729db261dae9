package vecpaint

import (
	"image"

	ipath "github.com/gogpu/vecpaint/internal/path"
	"github.com/gogpu/vecpaint/internal/raster"
	istroke "github.com/gogpu/vecpaint/internal/stroke"
)

// SoftwareRasterizer is the CPU scanline implementation of Rasterizer.
// It flattens curves to polylines, builds an edge list, and walks
// scanlines with vertical supersampling when antialiasing is on.
//
// The zero value is not usable; create instances with
// NewSoftwareRasterizer.
type SoftwareRasterizer struct {
	tolerance float64
}

// SoftwareRasterizerOption configures a SoftwareRasterizer.
type SoftwareRasterizerOption func(*SoftwareRasterizer)

// WithTolerance sets the maximum distance the flattened polyline may
// deviate from the true curve, in device pixels.
func WithTolerance(t float64) SoftwareRasterizerOption {
	return func(r *SoftwareRasterizer) {
		if t > 0 {
			r.tolerance = t
		}
	}
}

// NewSoftwareRasterizer creates a software rasterizer with the default
// flattening tolerance.
func NewSoftwareRasterizer(opts ...SoftwareRasterizerOption) *SoftwareRasterizer {
	r := &SoftwareRasterizer{
		tolerance: ipath.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FillPath fills the path on the target. The path is given in user
// space; it is mapped to device space by transform before scanning.
// The shader is evaluated in user space: pixel centers are mapped back
// through the inverse transform. A non-invertible transform collapses
// the geometry to nothing and draws nothing.
func (r *SoftwareRasterizer) FillPath(target *Pixmap, path *Path, shader Shader,
	rule FillRule, transform Matrix, antialias bool, blend BlendMode, clip *image.Alpha) error {

	if target == nil || path == nil || path.IsEmpty() || shader == nil {
		return nil
	}

	contours := ipath.FlattenContours(toInternalElements(path, transform), r.tolerance)
	if len(contours) == 0 {
		return nil
	}

	blit, ok := newBlitter(target, shader, transform, blend, clip)
	if !ok {
		return nil
	}

	raster.Fill(contours, target.Width(), target.Height(),
		internalFillRule(rule), antialias, blit)
	return nil
}

// StrokePath strokes the path on the target. Stroking happens in user
// space, so the stroke width is in user units and scales with the
// transform; the expanded outline is mapped to device space and filled
// with the non-zero rule.
func (r *SoftwareRasterizer) StrokePath(target *Pixmap, path *Path, shader Shader,
	stroke Stroke, transform Matrix, antialias bool, blend BlendMode, clip *image.Alpha) error {

	if target == nil || path == nil || path.IsEmpty() || shader == nil {
		return nil
	}
	if stroke.Width <= 0 {
		return nil
	}

	// Flatten in user space so dashing and width use user units.
	contours := ipath.FlattenContours(toInternalElements(path, Identity()), r.tolerance)
	if len(contours) == 0 {
		return nil
	}

	if stroke.IsDashed() {
		contours = istroke.ApplyDash(contours,
			stroke.Dash.EffectiveArray(), stroke.Dash.NormalizedOffset())
		if len(contours) == 0 {
			return nil
		}
	}

	outline := istroke.Expand(contours, istroke.Style{
		Width:      stroke.Width,
		Cap:        internalLineCap(stroke.Cap),
		Join:       internalLineJoin(stroke.Join),
		MiterLimit: stroke.MiterLimit,
	})
	if len(outline) == 0 {
		return nil
	}

	for i := range outline {
		transformContour(&outline[i], transform)
	}

	blit, ok := newBlitter(target, shader, transform, blend, clip)
	if !ok {
		return nil
	}

	raster.Fill(outline, target.Width(), target.Height(),
		raster.FillRuleNonZero, antialias, blit)
	return nil
}

// newBlitter builds the per-run callback that samples the shader,
// applies coverage and the optional clip mask, and blends into the
// target. Solid shaders skip the per-pixel inverse mapping. Reports
// false when the transform cannot be inverted for shader sampling.
func newBlitter(target *Pixmap, shader Shader, transform Matrix,
	blend BlendMode, clip *image.Alpha) (raster.BlitFunc, bool) {

	solid, isSolid := shader.(SolidShader)

	var inverse Matrix
	if !isSolid {
		var ok bool
		inverse, ok = transform.Invert()
		if !ok {
			return nil, false
		}
	}

	return func(x0, x1, y int, coverage float64) {
		for x := x0; x < x1; x++ {
			var src RGBA
			if isSolid {
				src = solid.Color
			} else {
				// Map the device pixel center back to user space.
				up := inverse.TransformPoint(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
				src = shader.ColorAt(up.X, up.Y)
			}

			cov := coverage
			if clip != nil {
				cov *= float64(clip.AlphaAt(x, y).A) / 255
			}
			if cov <= 0 {
				continue
			}
			src.A *= cov
			if src.A <= 0 && blend == BlendSrcOver {
				continue
			}

			target.SetPixel(x, y, blendPixel(src, target.GetPixel(x, y), blend))
		}
	}, true
}

// toInternalElements converts the public path elements into the
// internal flattening representation, applying the transform.
func toInternalElements(p *Path, m Matrix) []ipath.PathElement {
	elems := p.Elements()
	out := make([]ipath.PathElement, 0, len(elems))
	mp := func(pt Point) ipath.Point {
		t := m.TransformPoint(pt)
		return ipath.Point{X: t.X, Y: t.Y}
	}

	for _, e := range elems {
		switch el := e.(type) {
		case MoveTo:
			out = append(out, ipath.MoveTo{Point: mp(el.Point)})
		case LineTo:
			out = append(out, ipath.LineTo{Point: mp(el.Point)})
		case QuadTo:
			out = append(out, ipath.QuadTo{Control: mp(el.Control), Point: mp(el.Point)})
		case CubicTo:
			out = append(out, ipath.CubicTo{
				Control1: mp(el.Control1),
				Control2: mp(el.Control2),
				Point:    mp(el.Point),
			})
		case Close:
			out = append(out, ipath.Close{})
		}
	}
	return out
}

// transformContour maps a contour's points to device space in place.
func transformContour(c *ipath.Contour, m Matrix) {
	for i, pt := range c.Points {
		t := m.TransformPoint(Point{X: pt.X, Y: pt.Y})
		c.Points[i] = ipath.Point{X: t.X, Y: t.Y}
	}
}

func internalFillRule(r FillRule) raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

func internalLineCap(c LineCap) istroke.LineCap {
	switch c {
	case LineCapRound:
		return istroke.CapRound
	case LineCapSquare:
		return istroke.CapSquare
	default:
		return istroke.CapButt
	}
}

func internalLineJoin(j LineJoin) istroke.LineJoin {
	switch j {
	case LineJoinRound:
		return istroke.JoinRound
	case LineJoinBevel:
		return istroke.JoinBevel
	default:
		return istroke.JoinMiter
	}
}
