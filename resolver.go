package vecpaint

// ResolvePaint turns an abstract paint description into a renderable
// Paint value for an object with the given bounding box. The opacity is
// the fill or stroke opacity and is folded into the resolved paint.
//
// Resolution can fail: an empty gradient, a gradient or pattern in
// object-bbox units over a degenerate bounding box, a non-positive
// radial radius, or a degenerate pattern rectangle all yield (nil,
// false). Failure means the corresponding draw operation is simply not
// produced; it is never an error.
func ResolvePaint(server PaintServer, opacity float64, objectBBox Rect) (Paint, bool) {
	switch s := server.(type) {
	case SolidServer:
		return ShaderPaint{Shader: Solid(s.Color.MulAlpha(opacity))}, true

	case *LinearGradientServer:
		stops, ok := resolveStops(s.Stops, opacity)
		if !ok {
			return nil, false
		}
		if len(stops) == 1 {
			return ShaderPaint{Shader: Solid(stops[0].Color)}, true
		}
		inverse, ok := gradientInverse(s.Units, s.Transform, objectBBox)
		if !ok {
			return nil, false
		}
		return ShaderPaint{Shader: &LinearGradientShader{
			Start:   s.Start,
			End:     s.End,
			Stops:   stops,
			Spread:  s.Spread,
			inverse: inverse,
		}}, true

	case *RadialGradientServer:
		stops, ok := resolveStops(s.Stops, opacity)
		if !ok {
			return nil, false
		}
		if len(stops) == 1 {
			return ShaderPaint{Shader: Solid(stops[0].Color)}, true
		}
		if s.Radius <= 0 {
			return nil, false
		}
		inverse, ok := gradientInverse(s.Units, s.Transform, objectBBox)
		if !ok {
			return nil, false
		}
		focus := s.Focus
		if focus == (Point{}) {
			focus = s.Center
		}
		return ShaderPaint{Shader: &RadialGradientShader{
			Center:  s.Center,
			Focus:   focus,
			Radius:  s.Radius,
			Stops:   stops,
			Spread:  s.Spread,
			inverse: inverse,
		}}, true

	case *PatternServer:
		rect := s.Rect
		if s.Units == UnitsObjectBBox {
			if !objectBBox.IsValid() {
				return nil, false
			}
			rect = Rect{
				X: objectBBox.X + rect.X*objectBBox.W,
				Y: objectBBox.Y + rect.Y*objectBBox.H,
				W: rect.W * objectBBox.W,
				H: rect.H * objectBBox.H,
			}
		}
		if !rect.IsValid() {
			return nil, false
		}
		return &PatternPaint{
			Rect:             rect,
			Transform:        orIdentity(s.Transform),
			ContentTransform: orIdentity(s.ContentTransform),
			Opacity:          opacity,
			Content:          s.Content,
		}, true
	}
	return nil, false
}

// resolveStops sorts the stops, clamps offsets, and folds the paint
// opacity into every stop. Gradients without stops are not renderable.
func resolveStops(stops []ColorStop, opacity float64) ([]ColorStop, bool) {
	if len(stops) == 0 {
		return nil, false
	}
	sorted := sortStops(stops)
	out := make([]ColorStop, len(sorted))
	for i, s := range sorted {
		out[i] = ColorStop{
			Offset: clamp01(s.Offset),
			Color:  s.Color.MulAlpha(opacity),
		}
	}
	return out, true
}

// gradientInverse composes the object-bbox mapping (when the gradient is
// expressed in bbox units) with the gradient's own transform and inverts
// the result, producing the user-to-gradient-space matrix shaders
// sample through. Degenerate bounding boxes and non-invertible
// transforms make the gradient unrenderable.
func gradientInverse(units GradientUnits, transform Matrix, bbox Rect) (Matrix, bool) {
	ts := orIdentity(transform)
	if units == UnitsObjectBBox {
		if !bbox.IsValid() {
			return Matrix{}, false
		}
		bboxTS := Translate(bbox.X, bbox.Y).Multiply(Scale(bbox.W, bbox.H))
		ts = bboxTS.Multiply(ts)
	}
	return ts.Invert()
}
