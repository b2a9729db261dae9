// Package path provides internal path flattening for the software
// rasterizer: curves become polylines grouped per subpath.
package path

import "math"

// Point represents a 2D point (internal copy to avoid importing the
// public package).
type Point struct {
	X, Y float64
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the vector length.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// DefaultTolerance is the maximum distance from the true curve when
// flattening.
const DefaultTolerance = 0.1

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the path.
type Close struct{}

func (Close) isPathElement() {}

// Contour is a flattened subpath.
type Contour struct {
	Points []Point
	Closed bool
}

// FlattenContours converts a path with curves into per-subpath
// polylines. Curves are subdivided until they stay within tolerance of
// the true curve.
func FlattenContours(elements []PathElement, tolerance float64) []Contour {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var contours []Contour
	var current []Point
	var pos Point

	flush := func(closed bool) {
		// A single point is kept: a bare MoveTo still describes
		// geometry that strokes with round or square caps can render.
		if len(current) >= 1 {
			contours = append(contours, Contour{Points: current, Closed: closed})
		}
		current = nil
	}

	// begin ensures the current contour has its starting point; a
	// drawing element right after Close continues from the subpath
	// start.
	begin := func() {
		if len(current) == 0 {
			current = append(current, pos)
		}
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			pos = e.Point
			current = append(current, pos)

		case LineTo:
			begin()
			current = append(current, e.Point)
			pos = e.Point

		case QuadTo:
			begin()
			flattenQuadratic(pos, e.Control, e.Point, tolerance, &current)
			pos = e.Point

		case CubicTo:
			begin()
			flattenCubic(pos, e.Control1, e.Control2, e.Point, tolerance, &current)
			pos = e.Point

		case Close:
			if len(current) > 0 {
				pos = current[0]
			}
			flush(true)
		}
	}
	flush(false)

	return contours
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64, points *[]Point) {
	if distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, q2, tolerance, points)
	flattenQuadratic(q2, q1, p2, tolerance, points)
}

// flattenCubic recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, points)
	flattenCubic(s, r1, q2, p3, tolerance, points)
}

// distanceToLine calculates the perpendicular distance from point p to
// line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}
