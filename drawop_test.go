package vecpaint

import "testing"

func rectPath(x, y, w, h float64) *Path {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	return p
}

func solidFill(c RGBA) *Fill {
	return &Fill{Paint: SolidServer{Color: c}, Opacity: 1}
}

func solidStroke(c RGBA, width float64) *StrokeSpec {
	return &StrokeSpec{
		Paint:   SolidServer{Color: c},
		Opacity: 1,
		Stroke:  DefaultStroke().WithWidth(width),
	}
}

func TestBuildDrawOps_FillAndStroke(t *testing.T) {
	bbox := Rect{X: 0, Y: 0, W: 10, H: 10}
	node := &PathNode{
		Data:        rectPath(0, 0, 10, 10),
		Fill:        solidFill(Red),
		Stroke:      solidStroke(Blue, 2),
		BoundingBox: &bbox,
	}

	ops, layer, ok := BuildDrawOps(node, nil)
	if !ok {
		t.Fatal("BuildDrawOps failed")
	}
	if len(ops) != 2 {
		t.Fatalf("got %d ops, want 2", len(ops))
	}
	if _, isFill := ops[0].(*FillOp); !isFill {
		t.Errorf("ops[0] is %T, want *FillOp first in default paint order", ops[0])
	}
	if _, isStroke := ops[1].(*StrokeOp); !isStroke {
		t.Errorf("ops[1] is %T, want *StrokeOp", ops[1])
	}
	if r, _ := layer.Rect(); !rectsClose(r, bbox, 1e-9) {
		t.Errorf("layer bbox = %+v, want %+v", r, bbox)
	}
}

func TestBuildDrawOps_PaintOrderReversed(t *testing.T) {
	bbox := Rect{W: 10, H: 10}
	node := &PathNode{
		Data:        rectPath(0, 0, 10, 10),
		Fill:        solidFill(Red),
		Stroke:      solidStroke(Blue, 2),
		PaintOrder:  PaintOrderStrokeFill,
		BoundingBox: &bbox,
	}

	ops, _, ok := BuildDrawOps(node, nil)
	if !ok {
		t.Fatal("BuildDrawOps failed")
	}
	if len(ops) != 2 {
		t.Fatalf("got %d ops, want 2", len(ops))
	}
	if _, isStroke := ops[0].(*StrokeOp); !isStroke {
		t.Errorf("ops[0] is %T, want *StrokeOp under stroke-fill order", ops[0])
	}
	if _, isFill := ops[1].(*FillOp); !isFill {
		t.Errorf("ops[1] is %T, want *FillOp", ops[1])
	}
}

func TestBuildDrawOps_MissingBBox(t *testing.T) {
	node := &PathNode{
		Data: rectPath(0, 0, 10, 10),
		Fill: solidFill(Red),
	}

	ops, layer, ok := BuildDrawOps(node, nil)
	if ok {
		t.Error("node without bounding box succeeded")
	}
	if ops != nil {
		t.Errorf("got %d ops, want none", len(ops))
	}
	if !layer.IsEmpty() {
		t.Error("layer bbox not empty for skipped node")
	}
}

func TestBuildDrawOps_DegenerateGeometry(t *testing.T) {
	// A horizontal line: zero-height geometry.
	line := NewPath()
	line.MoveTo(0, 5)
	line.LineTo(10, 5)
	bbox := Rect{X: 0, Y: 5, W: 10, H: 0}

	t.Run("fill rejected", func(t *testing.T) {
		node := &PathNode{
			Data:        line,
			Fill:        solidFill(Red),
			BoundingBox: &bbox,
		}
		if _, _, ok := BuildDrawOps(node, nil); ok {
			t.Error("fill-only node with zero-height geometry produced output")
		}
	})

	t.Run("stroke still produced", func(t *testing.T) {
		node := &PathNode{
			Data:        line,
			Fill:        solidFill(Red),
			Stroke:      solidStroke(Blue, 2),
			BoundingBox: &bbox,
		}
		ops, _, ok := BuildDrawOps(node, nil)
		if !ok {
			t.Fatal("stroked degenerate geometry produced nothing")
		}
		if len(ops) != 1 {
			t.Fatalf("got %d ops, want 1 (stroke only)", len(ops))
		}
		if _, isStroke := ops[0].(*StrokeOp); !isStroke {
			t.Errorf("op is %T, want *StrokeOp", ops[0])
		}
	})

	t.Run("single point with caps strokes", func(t *testing.T) {
		dot := NewPath()
		dot.MoveTo(5, 5)
		dotBBox := Rect{X: 5, Y: 5}
		node := &PathNode{
			Data:        dot,
			Stroke:      &StrokeSpec{Paint: SolidServer{Color: Red}, Opacity: 1, Stroke: RoundStroke()},
			BoundingBox: &dotBBox,
		}
		ops, _, ok := BuildDrawOps(node, nil)
		if !ok || len(ops) != 1 {
			t.Fatalf("single-point stroke: ops=%d ok=%v, want 1 op", len(ops), ok)
		}
	})
}

func TestBuildDrawOps_HiddenKeepsBBox(t *testing.T) {
	bbox := Rect{W: 10, H: 10}
	strokeBBox := Rect{X: -1, Y: -1, W: 12, H: 12}

	visible := &PathNode{
		Data:              rectPath(0, 0, 10, 10),
		Fill:              solidFill(Red),
		Stroke:            solidStroke(Blue, 2),
		BoundingBox:       &bbox,
		StrokeBoundingBox: &strokeBBox,
	}
	hidden := &PathNode{
		Data:              rectPath(0, 0, 10, 10),
		Fill:              solidFill(Red),
		Stroke:            solidStroke(Blue, 2),
		Visibility:        VisibilityHidden,
		BoundingBox:       &bbox,
		StrokeBoundingBox: &strokeBBox,
	}

	_, visLayer, ok := BuildDrawOps(visible, nil)
	if !ok {
		t.Fatal("visible node failed")
	}
	ops, hidLayer, ok := BuildDrawOps(hidden, nil)
	if !ok {
		t.Fatal("hidden node failed")
	}
	if len(ops) != 0 {
		t.Errorf("hidden node produced %d ops", len(ops))
	}

	vr, _ := visLayer.Rect()
	hr, _ := hidLayer.Rect()
	if !rectsClose(vr, hr, 1e-9) {
		t.Errorf("hidden layer bbox %+v differs from visible %+v", hr, vr)
	}
	if !rectsClose(hr, strokeBBox, 1e-9) {
		t.Errorf("layer bbox = %+v, want stroke-expanded %+v", hr, strokeBBox)
	}
}

func TestBuildDrawOps_StrokeBBoxExpansion(t *testing.T) {
	bbox := Rect{W: 10, H: 10}
	strokeBBox := Rect{X: -2, Y: -2, W: 14, H: 14}

	t.Run("expands with stroke op", func(t *testing.T) {
		node := &PathNode{
			Data:              rectPath(0, 0, 10, 10),
			Stroke:            solidStroke(Blue, 4),
			BoundingBox:       &bbox,
			StrokeBoundingBox: &strokeBBox,
		}
		_, layer, ok := BuildDrawOps(node, nil)
		if !ok {
			t.Fatal("BuildDrawOps failed")
		}
		r, _ := layer.Rect()
		if !rectsClose(r, strokeBBox, 1e-9) {
			t.Errorf("layer bbox = %+v, want %+v", r, strokeBBox)
		}
	})

	t.Run("fill only ignores stroke bbox", func(t *testing.T) {
		node := &PathNode{
			Data:              rectPath(0, 0, 10, 10),
			Fill:              solidFill(Red),
			BoundingBox:       &bbox,
			StrokeBoundingBox: &strokeBBox,
		}
		_, layer, ok := BuildDrawOps(node, nil)
		if !ok {
			t.Fatal("BuildDrawOps failed")
		}
		r, _ := layer.Rect()
		if !rectsClose(r, bbox, 1e-9) {
			t.Errorf("layer bbox = %+v, want object bbox %+v", r, bbox)
		}
	})
}

func TestBuildDrawOps_TextBBoxOverridesPaintOnly(t *testing.T) {
	bbox := Rect{W: 10, H: 10}
	textBBox := Rect{X: 100, Y: 100, W: 50, H: 50}

	node := &PathNode{
		Data: rectPath(0, 0, 10, 10),
		Fill: &Fill{
			Paint: &LinearGradientServer{
				Start: Pt(0, 0),
				End:   Pt(1, 0),
				Stops: []ColorStop{
					{Offset: 0, Color: Red},
					{Offset: 1, Color: Blue},
				},
				Units: UnitsObjectBBox,
			},
			Opacity: 1,
		},
		BoundingBox: &bbox,
	}

	_, layer, ok := BuildDrawOps(node, &textBBox)
	if !ok {
		t.Fatal("BuildDrawOps failed")
	}
	// The layer box stays the node's own bounding box.
	r, _ := layer.Rect()
	if !rectsClose(r, bbox, 1e-9) {
		t.Errorf("layer bbox = %+v, want node bbox %+v", r, bbox)
	}
}

func TestBuildDrawOps_UnresolvedPaint(t *testing.T) {
	bbox := Rect{W: 10, H: 10}

	t.Run("both fail", func(t *testing.T) {
		node := &PathNode{
			Data:        rectPath(0, 0, 10, 10),
			Fill:        &Fill{Paint: &LinearGradientServer{}, Opacity: 1},
			Stroke:      &StrokeSpec{Paint: &LinearGradientServer{}, Opacity: 1, Stroke: DefaultStroke()},
			BoundingBox: &bbox,
		}
		if _, _, ok := BuildDrawOps(node, nil); ok {
			t.Error("node with unresolvable paints produced output")
		}
	})

	t.Run("one survives", func(t *testing.T) {
		node := &PathNode{
			Data:        rectPath(0, 0, 10, 10),
			Fill:        &Fill{Paint: &LinearGradientServer{}, Opacity: 1},
			Stroke:      solidStroke(Blue, 1),
			BoundingBox: &bbox,
		}
		ops, _, ok := BuildDrawOps(node, nil)
		if !ok || len(ops) != 1 {
			t.Fatalf("ops=%d ok=%v, want the stroke op alone", len(ops), ok)
		}
	})
}

func TestShapeRendering_Antialiasing(t *testing.T) {
	bbox := Rect{W: 10, H: 10}

	tests := []struct {
		mode ShapeRendering
		want bool
	}{
		{ShapeRenderingGeometricPrecision, true},
		{ShapeRenderingOptimizeSpeed, false},
		{ShapeRenderingCrispEdges, false},
	}

	for _, tt := range tests {
		node := &PathNode{
			Data:        rectPath(0, 0, 10, 10),
			Fill:        solidFill(Red),
			Rendering:   tt.mode,
			BoundingBox: &bbox,
		}
		ops, _, ok := BuildDrawOps(node, nil)
		if !ok || len(ops) != 1 {
			t.Fatalf("mode %v: ops=%d ok=%v", tt.mode, len(ops), ok)
		}
		if got := ops[0].(*FillOp).Antialias; got != tt.want {
			t.Errorf("mode %v: antialias = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
