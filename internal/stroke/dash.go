package stroke

import "github.com/gogpu/vecpaint/internal/path"

// ApplyDash splits contours into the "on" pieces of an alternating
// dash/gap pattern. The array must have even length with a positive
// total; offset is the starting distance into the pattern. Closed
// contours are dashed as open ones with the closing segment appended,
// which matches how SVG renderers treat dashed closed shapes.
func ApplyDash(contours []path.Contour, array []float64, offset float64) []path.Contour {
	total := 0.0
	for _, l := range array {
		total += l
	}
	if len(array) == 0 || total <= 0 {
		return contours
	}

	var out []path.Contour
	for _, c := range contours {
		pts := c.Points
		if c.Closed && len(pts) > 1 && pts[0].Distance(pts[len(pts)-1]) >= ptEps {
			pts = append(append([]path.Point(nil), pts...), pts[0])
		}
		if len(pts) < 2 {
			continue
		}
		out = append(out, dashContour(pts, array, offset)...)
	}
	return out
}

// dashContour walks the polyline splitting it at dash boundaries.
func dashContour(pts []path.Point, array []float64, offset float64) []path.Contour {
	idx := 0
	rem := array[0]

	// Consume the starting offset.
	for offset > 0 {
		if offset < rem {
			rem -= offset
			break
		}
		offset -= rem
		idx = (idx + 1) % len(array)
		rem = array[idx]
	}

	on := idx%2 == 0

	var contours []path.Contour
	var run []path.Point

	flush := func() {
		if len(run) >= 2 {
			contours = append(contours, path.Contour{Points: run})
		}
		run = nil
	}

	if on {
		run = append(run, pts[0])
	}

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := a.Distance(b)
		walked := 0.0

		for segLen-walked > ptEps {
			left := segLen - walked
			if rem > left {
				// Dash continues past this segment.
				if on {
					run = append(run, b)
				}
				rem -= left
				walked = segLen
				continue
			}

			walked += rem
			split := a.Lerp(b, walked/segLen)
			if on {
				run = append(run, split)
				flush()
			}

			idx = (idx + 1) % len(array)
			rem = array[idx]
			on = !on
			if on {
				run = append(run, split)
			}
		}
	}

	flush()
	return contours
}
