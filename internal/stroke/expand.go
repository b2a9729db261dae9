// Package stroke converts stroked polylines into fillable outlines.
//
// The expansion follows the tiny-skia/kurbo pattern: the outer offset
// path runs forward, the inner offset path runs reversed, line caps
// connect the endpoints of open contours, and line joins connect the
// segments. The resulting outlines are filled with the non-zero rule,
// which tolerates the self-intersections concave joins produce.
package stroke

import (
	"math"

	"github.com/gogpu/vecpaint/internal/path"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Style carries the geometric stroke parameters.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// arcStep is the angular step used to approximate round joins and caps.
const arcStep = 0.25

const ptEps = 1e-9

// Expand converts stroked contours into closed outline contours ready
// for non-zero filling. Zero-length contours still produce cap geometry
// for round and square caps; with butt caps they produce nothing.
func Expand(contours []path.Contour, style Style) []path.Contour {
	if style.Width <= 0 {
		return nil
	}
	r := style.Width / 2

	var out []path.Contour
	for _, c := range contours {
		pts := dedupe(c.Points)
		closed := c.Closed

		if closed && len(pts) > 1 && pts[0].Distance(pts[len(pts)-1]) < ptEps {
			pts = pts[:len(pts)-1]
		}
		if len(pts) == 0 {
			continue
		}

		if len(pts) == 1 {
			if dot := capDot(pts[0], r, style.Cap); dot != nil {
				out = append(out, path.Contour{Points: dot, Closed: true})
			}
			continue
		}

		if closed && len(pts) >= 3 {
			outer := offsetLoop(pts, r, style)
			inner := offsetLoop(reversed(pts), r, style)
			out = append(out,
				path.Contour{Points: outer, Closed: true},
				path.Contour{Points: inner, Closed: true},
			)
			continue
		}

		out = append(out, path.Contour{Points: strokeOpen(pts, r, style), Closed: true})
	}
	return out
}

// strokeOpen builds the single closed outline of an open polyline:
// forward offset side, end cap, reverse offset side, start cap.
func strokeOpen(pts []path.Point, r float64, style Style) []path.Point {
	outline := offsetSide(pts, r, style)

	last := pts[len(pts)-1]
	dEnd := direction(pts[len(pts)-2], last)
	outline = append(outline, capPoints(last, dEnd, r, style.Cap)...)

	rev := reversed(pts)
	outline = append(outline, offsetSide(rev, r, style)...)

	first := pts[0]
	dStart := direction(pts[1], first)
	outline = append(outline, capPoints(first, dStart, r, style.Cap)...)

	return outline
}

// offsetSide emits the polyline offset by r along the left normals,
// inserting join geometry at convex vertices.
func offsetSide(pts []path.Point, r float64, style Style) []path.Point {
	var out []path.Point
	var prevDir path.Point

	for i := 0; i+1 < len(pts); i++ {
		d := direction(pts[i], pts[i+1])
		n := leftNormal(d)

		if i > 0 {
			out = append(out, joinPoints(pts[i], prevDir, d, r, style)...)
		}
		out = append(out, offset(pts[i], n, r), offset(pts[i+1], n, r))
		prevDir = d
	}
	return out
}

// offsetLoop offsets a closed polyline, joining every vertex including
// the wrap-around one.
func offsetLoop(pts []path.Point, r float64, style Style) []path.Point {
	var out []path.Point
	n := len(pts)
	var prevDir path.Point

	lastDir := direction(pts[n-1], pts[0])

	for i := 0; i < n; i++ {
		next := pts[(i+1)%n]
		d := direction(pts[i], next)

		prev := lastDir
		if i > 0 {
			prev = prevDir
		}
		out = append(out, joinPoints(pts[i], prev, d, r, style)...)
		nrm := leftNormal(d)
		out = append(out, offset(pts[i], nrm, r), offset(next, nrm, r))
		prevDir = d
	}
	return out
}

// joinPoints returns the intermediate points connecting two offset
// segments around vertex v. Concave turns need no geometry: the offset
// segments cross and the non-zero fill absorbs the overlap.
func joinPoints(v, dPrev, dNext path.Point, r float64, style Style) []path.Point {
	cross := dPrev.X*dNext.Y - dPrev.Y*dNext.X
	if cross <= 1e-12 {
		return nil
	}

	nPrev := leftNormal(dPrev)
	nNext := leftNormal(dNext)

	switch style.Join {
	case JoinRound:
		return arcPoints(v, nPrev, nNext, r)

	case JoinMiter:
		// The miter ratio is 1/cos(phi) where phi is half the angle
		// between the two normals.
		dot := nPrev.Dot(nNext)
		cosPhi := math.Sqrt(math.Max(0, (1+dot)/2))
		if cosPhi > 1e-9 && 1/cosPhi <= style.MiterLimit {
			bis := normalize(nPrev.Add(nNext))
			return []path.Point{offset(v, bis, r/cosPhi)}
		}
		return nil // falls back to bevel

	default: // JoinBevel
		return nil
	}
}

// capPoints returns the intermediate points of a line cap at endpoint v
// with outward direction d, running from the +normal side to the
// -normal side.
func capPoints(v, d path.Point, r float64, capStyle LineCap) []path.Point {
	n := leftNormal(d)
	switch capStyle {
	case CapSquare:
		return []path.Point{
			offset(offset(v, n, r), d, r),
			offset(offset(v, n, -r), d, r),
		}
	case CapRound:
		return arcPoints(v, n, path.Point{X: -n.X, Y: -n.Y}, r)
	default: // CapButt
		return nil
	}
}

// capDot builds the standalone outline of a zero-length stroked
// subpath: a full disc for round caps, a square for square caps.
// Butt caps render nothing, matching the full stroking algorithm's
// behavior on degenerate geometry.
func capDot(v path.Point, r float64, capStyle LineCap) []path.Point {
	switch capStyle {
	case CapRound:
		steps := int(math.Ceil(2 * math.Pi / arcStep))
		pts := make([]path.Point, 0, steps)
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			pts = append(pts, path.Point{X: v.X + r*math.Cos(a), Y: v.Y + r*math.Sin(a)})
		}
		return pts
	case CapSquare:
		return []path.Point{
			{X: v.X - r, Y: v.Y - r},
			{X: v.X + r, Y: v.Y - r},
			{X: v.X + r, Y: v.Y + r},
			{X: v.X - r, Y: v.Y + r},
		}
	default:
		return nil
	}
}

// arcPoints approximates the arc of radius r around v from normal n0 to
// normal n1, sweeping in the positive angular direction.
func arcPoints(v, n0, n1 path.Point, r float64) []path.Point {
	a0 := math.Atan2(n0.Y, n0.X)
	a1 := math.Atan2(n1.Y, n1.X)
	sweep := a1 - a0
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}

	steps := int(math.Ceil(sweep / arcStep))
	pts := make([]path.Point, 0, steps-1)
	for i := 1; i < steps; i++ {
		a := a0 + sweep*float64(i)/float64(steps)
		pts = append(pts, path.Point{X: v.X + r*math.Cos(a), Y: v.Y + r*math.Sin(a)})
	}
	return pts
}

func direction(a, b path.Point) path.Point {
	return normalize(b.Sub(a))
}

// leftNormal returns the unit normal on the left of direction d
// (y-down coordinates).
func leftNormal(d path.Point) path.Point {
	return path.Point{X: d.Y, Y: -d.X}
}

func normalize(p path.Point) path.Point {
	l := p.Length()
	if l < 1e-12 {
		return path.Point{}
	}
	return p.Mul(1 / l)
}

func offset(p, dir path.Point, r float64) path.Point {
	return p.Add(dir.Mul(r))
}

func reversed(pts []path.Point) []path.Point {
	out := make([]path.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// dedupe removes consecutive duplicate points.
func dedupe(pts []path.Point) []path.Point {
	if len(pts) == 0 {
		return nil
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.Distance(out[len(out)-1]) >= ptEps {
			out = append(out, p)
		}
	}
	return out
}
