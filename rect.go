package vecpaint

import "math"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectWH creates a rectangle at the origin with the given size.
func RectWH(w, h float64) Rect {
	return Rect{W: w, H: h}
}

// IsValid reports whether the rectangle has positive width and height.
// A fill cannot cover a region that fails this check.
func (r Rect) IsValid() bool {
	return r.W > 0 && r.H > 0
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.MaxX(), other.MaxX())
	y1 := math.Max(r.MaxY(), other.MaxY())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// TransformedBounds returns the axis-aligned bounds of the rectangle
// after applying the transformation.
func (r Rect) TransformedBounds(m Matrix) Rect {
	corners := [4]Point{
		m.TransformPoint(Pt(r.X, r.Y)),
		m.TransformPoint(Pt(r.MaxX(), r.Y)),
		m.TransformPoint(Pt(r.MaxX(), r.MaxY())),
		m.TransformPoint(Pt(r.X, r.MaxY())),
	}
	x0, y0 := corners[0].X, corners[0].Y
	x1, y1 := x0, y0
	for _, c := range corners[1:] {
		x0 = math.Min(x0, c.X)
		y0 = math.Min(y0, c.Y)
		x1 = math.Max(x1, c.X)
		y1 = math.Max(y1, c.Y)
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// BBox is an optional bounding box: either empty or a rectangle.
// It accumulates a node's fill and stroke contributions; hidden nodes
// still produce one so layout bookkeeping survives suppressed output.
type BBox struct {
	rect  Rect
	valid bool
}

// BBoxFrom creates a non-empty bounding box from a rectangle.
func BBoxFrom(r Rect) BBox {
	return BBox{rect: r, valid: true}
}

// IsEmpty reports whether the bounding box holds no rectangle.
func (b BBox) IsEmpty() bool {
	return !b.valid
}

// Expand returns the union of the bounding box and a rectangle.
// Expanding an empty box yields a box holding just the rectangle.
func (b BBox) Expand(r Rect) BBox {
	if !b.valid {
		return BBoxFrom(r)
	}
	return BBoxFrom(b.rect.Union(r))
}

// Rect returns the held rectangle. The second result is false when the
// box is empty.
func (b BBox) Rect() (Rect, bool) {
	return b.rect, b.valid
}
