// Package raster provides scanline rasterization of flattened contours
// with per-span coverage output. It computes which pixels a filled shape
// touches and with what coverage; what color those pixels become is the
// caller's business (shader evaluation, blending, clipping all live one
// level up).
package raster

import (
	"math"
	"sort"

	"github.com/gogpu/vecpaint/internal/path"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// BlitFunc receives a run of pixels on row y with uniform coverage in
// (0, 1]. x1 is exclusive.
type BlitFunc func(x0, x1, y int, coverage float64)

// samples is the vertical supersampling factor for antialiased fills.
const samples = 4

// Edge is a non-horizontal line segment prepared for the active edge
// table: y-sorted, with the inverse slope precomputed.
type Edge struct {
	y0, y1 float64 // y0 < y1
	x0     float64 // x at y0
	dxdy   float64
	dir    int // +1 if the original segment pointed down, -1 up
}

// NewEdge creates an edge from two points, or false for horizontal
// segments (they never cross a scanline).
func NewEdge(a, b path.Point) (Edge, bool) {
	dir := 1
	if a.Y > b.Y {
		a, b = b, a
		dir = -1
	}
	dy := b.Y - a.Y
	if dy < 1e-12 {
		return Edge{}, false
	}
	return Edge{
		y0:   a.Y,
		y1:   b.Y,
		x0:   a.X,
		dxdy: (b.X - a.X) / dy,
		dir:  dir,
	}, true
}

// BuildEdges converts contours into an edge list. Every contour is
// treated as closed: an implicit segment connects its last point back
// to its first.
func BuildEdges(contours []path.Contour) []Edge {
	var edges []Edge
	for _, c := range contours {
		pts := c.Points
		if len(pts) < 2 {
			continue
		}
		for i := 0; i+1 < len(pts); i++ {
			if e, ok := NewEdge(pts[i], pts[i+1]); ok {
				edges = append(edges, e)
			}
		}
		if pts[len(pts)-1] != pts[0] {
			if e, ok := NewEdge(pts[len(pts)-1], pts[0]); ok {
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// crossing is an active-edge intersection with a scanline.
type crossing struct {
	x   float64
	dir int
}

// Fill rasterizes the filled contours, clipped to a width x height
// target, and reports covered pixel runs through blit. Antialiasing
// supersamples each pixel row vertically and accumulates fractional
// horizontal coverage at span ends.
func Fill(contours []path.Contour, width, height int, rule FillRule, antialias bool, blit BlitFunc) {
	edges := BuildEdges(contours)
	if len(edges) == 0 || width <= 0 || height <= 0 {
		return
	}

	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}
	rowMin := int(math.Floor(yMin))
	rowMax := int(math.Ceil(yMax))
	if rowMin < 0 {
		rowMin = 0
	}
	if rowMax > height {
		rowMax = height
	}

	coverage := make([]float64, width)
	crossings := make([]crossing, 0, 16)

	subrows := 1
	weight := 1.0
	if antialias {
		subrows = samples
		weight = 1.0 / samples
	}

	for y := rowMin; y < rowMax; y++ {
		for i := range coverage {
			coverage[i] = 0
		}
		touched := false

		for s := 0; s < subrows; s++ {
			sy := float64(y) + (float64(s)+0.5)/float64(subrows)
			crossings = scanCrossings(edges, sy, crossings[:0])
			if len(crossings) == 0 {
				continue
			}
			touched = spanAccumulate(coverage, crossings, rule, weight) || touched
		}

		if !touched {
			continue
		}
		emitRow(coverage, y, blit)
	}
}

// scanCrossings collects the x positions where edges cross the scanline
// at sy, sorted by x.
func scanCrossings(edges []Edge, sy float64, out []crossing) []crossing {
	for _, e := range edges {
		if e.y0 <= sy && sy < e.y1 {
			out = append(out, crossing{
				x:   e.x0 + (sy-e.y0)*e.dxdy,
				dir: e.dir,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].x < out[j].x })
	return out
}

// spanAccumulate converts sorted crossings into inside spans per the
// fill rule and adds weighted coverage for each. Reports whether any
// coverage was added.
func spanAccumulate(coverage []float64, crossings []crossing, rule FillRule, weight float64) bool {
	touched := false
	if rule == FillRuleNonZero {
		winding := 0
		var spanStart float64
		for _, c := range crossings {
			if winding == 0 {
				spanStart = c.x
			}
			winding += c.dir
			if winding == 0 {
				touched = addSpan(coverage, spanStart, c.x, weight) || touched
			}
		}
	} else {
		for i := 0; i+1 < len(crossings); i += 2 {
			touched = addSpan(coverage, crossings[i].x, crossings[i+1].x, weight) || touched
		}
	}
	return touched
}

// addSpan adds weighted coverage for the horizontal span [x0, x1),
// splitting fractional coverage at the boundary pixels.
func addSpan(coverage []float64, x0, x1 float64, weight float64) bool {
	width := float64(len(coverage))
	if x1 <= 0 || x0 >= width || x1 <= x0 {
		return false
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > width {
		x1 = width
	}

	ix0 := int(x0)
	ix1 := int(x1)

	if ix0 == ix1 {
		coverage[ix0] += (x1 - x0) * weight
		return true
	}

	// Partial first pixel, full middle, partial last.
	coverage[ix0] += (float64(ix0+1) - x0) * weight
	for x := ix0 + 1; x < ix1; x++ {
		coverage[x] += weight
	}
	if ix1 < len(coverage) {
		coverage[ix1] += (x1 - float64(ix1)) * weight
	}
	return true
}

// emitRow walks a coverage row and reports runs of uniform coverage.
func emitRow(coverage []float64, y int, blit BlitFunc) {
	const eps = 1e-6

	runStart := -1
	runCov := 0.0
	for x, cov := range coverage {
		if cov > 1 {
			cov = 1
		}
		if cov <= eps {
			if runStart >= 0 {
				blit(runStart, x, y, runCov)
				runStart = -1
			}
			continue
		}
		if runStart >= 0 && math.Abs(cov-runCov) <= eps {
			continue
		}
		if runStart >= 0 {
			blit(runStart, x, y, runCov)
		}
		runStart = x
		runCov = cov
	}
	if runStart >= 0 {
		blit(runStart, len(coverage), y, runCov)
	}
}
