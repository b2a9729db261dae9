package vecpaint

import (
	"image"
	"testing"
)

// failingRasterizer reports an error from every call.
type failingRasterizer struct{}

func (failingRasterizer) FillPath(*Pixmap, *Path, Shader, FillRule, Matrix, bool, BlendMode, *image.Alpha) error {
	return errFailRaster
}

func (failingRasterizer) StrokePath(*Pixmap, *Path, Shader, Stroke, Matrix, bool, BlendMode, *image.Alpha) error {
	return errFailRaster
}

var errFailRaster = errSentinel("rasterizer failure")

type errSentinel string

func (e errSentinel) Error() string { return string(e) }

func fillOpFor(node *PathNode, t *testing.T) *FillOp {
	t.Helper()
	ops, _, ok := BuildDrawOps(node, nil)
	if !ok || len(ops) != 1 {
		t.Fatalf("BuildDrawOps: ops=%d ok=%v", len(ops), ok)
	}
	fo, ok := ops[0].(*FillOp)
	if !ok {
		t.Fatalf("op is %T, want *FillOp", ops[0])
	}
	return fo
}

func TestExecute_SolidRect(t *testing.T) {
	bbox := Rect{X: 5, Y: 5, W: 10, H: 10}
	node := &PathNode{
		Data:        rectPath(5, 5, 10, 10),
		Fill:        solidFill(Red),
		BoundingBox: &bbox,
	}
	op := fillOpFor(node, t)

	target := NewPixmap(20, 20)
	ctx := NewRenderContext()

	if !Execute(op, Identity(), BlendSrcOver, ctx, target) {
		t.Fatal("Execute returned false")
	}

	// Interior pixels take the solid color at full opacity.
	if got := target.GetPixel(10, 10); !colorsClose(got, Red, 0.01) {
		t.Errorf("interior pixel = %v, want red", got)
	}
	if got := target.GetPixel(7, 12); !colorsClose(got, Red, 0.01) {
		t.Errorf("interior pixel = %v, want red", got)
	}
	// Pixels outside the rectangle stay untouched.
	if got := target.GetPixel(2, 2); got != Transparent {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
	if got := target.GetPixel(18, 10); got != Transparent {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestExecute_TransformScales(t *testing.T) {
	bbox := Rect{W: 5, H: 5}
	node := &PathNode{
		Data:        rectPath(0, 0, 5, 5),
		Fill:        solidFill(Green),
		BoundingBox: &bbox,
	}
	op := fillOpFor(node, t)

	target := NewPixmap(20, 20)
	if !Execute(op, Scale(2, 2), BlendSrcOver, NewRenderContext(), target) {
		t.Fatal("Execute returned false")
	}

	// The 5x5 rect covers 10x10 device pixels under 2x scale.
	if got := target.GetPixel(8, 8); !colorsClose(got, Green, 0.01) {
		t.Errorf("scaled interior = %v, want green", got)
	}
	if got := target.GetPixel(12, 12); got != Transparent {
		t.Errorf("beyond scaled rect = %v, want transparent", got)
	}
}

func TestExecute_RasterizerFailureIsSoft(t *testing.T) {
	bbox := Rect{W: 10, H: 10}
	node := &PathNode{
		Data:        rectPath(0, 0, 10, 10),
		Fill:        solidFill(Red),
		BoundingBox: &bbox,
	}
	op := fillOpFor(node, t)

	target := NewPixmap(20, 20)
	ctx := NewRenderContext(WithRasterizer(failingRasterizer{}))

	if Execute(op, Identity(), BlendSrcOver, ctx, target) {
		t.Error("Execute returned true despite rasterizer failure")
	}
	for _, p := range []struct{ x, y int }{{5, 5}, {0, 0}, {19, 19}} {
		if got := target.GetPixel(p.x, p.y); got != Transparent {
			t.Errorf("pixel (%d,%d) = %v after failed execute, want untouched", p.x, p.y, got)
		}
	}
}

func TestExecute_NilArguments(t *testing.T) {
	bbox := Rect{W: 10, H: 10}
	node := &PathNode{
		Data:        rectPath(0, 0, 10, 10),
		Fill:        solidFill(Red),
		BoundingBox: &bbox,
	}
	op := fillOpFor(node, t)
	target := NewPixmap(10, 10)
	ctx := NewRenderContext()

	if Execute(op, Identity(), BlendSrcOver, nil, target) {
		t.Error("Execute with nil context returned true")
	}
	if Execute(op, Identity(), BlendSrcOver, ctx, nil) {
		t.Error("Execute with nil target returned true")
	}
}

func TestExecute_Deterministic(t *testing.T) {
	bbox := Rect{X: 2, Y: 2, W: 12, H: 12}
	node := &PathNode{
		Data:        rectPath(2, 2, 12, 12),
		Fill:        solidFill(Blue),
		Stroke:      solidStroke(Red, 2),
		BoundingBox: &bbox,
	}
	ops, _, ok := BuildDrawOps(node, nil)
	if !ok {
		t.Fatal("BuildDrawOps failed")
	}

	render := func() *Pixmap {
		target := NewPixmap(16, 16)
		ctx := NewRenderContext()
		for _, op := range ops {
			Execute(op, Identity(), BlendSrcOver, ctx, target)
		}
		return target
	}

	a, b := render(), render()
	da, db := a.Data(), b.Data()
	for i := range da {
		if da[i] != db[i] {
			t.Fatalf("render not deterministic: byte %d differs (%d vs %d)", i, da[i], db[i])
		}
	}
}

func TestExecute_PatternFill(t *testing.T) {
	// Pattern tile: a 4x4 tile fully covered by a red fill.
	tileRect := Rect{W: 4, H: 4}
	tileNode := &PathNode{
		Data:        rectPath(0, 0, 4, 4),
		Fill:        solidFill(Red),
		BoundingBox: &tileRect,
	}
	tileOps, _, ok := BuildDrawOps(tileNode, nil)
	if !ok {
		t.Fatal("tile BuildDrawOps failed")
	}

	bbox := Rect{W: 16, H: 16}
	node := &PathNode{
		Data: rectPath(0, 0, 16, 16),
		Fill: &Fill{
			Paint: &PatternServer{
				Rect:    Rect{W: 4, H: 4},
				Units:   UnitsUserSpace,
				Content: tileOps,
			},
			Opacity: 1,
		},
		BoundingBox: &bbox,
	}
	op := fillOpFor(node, t)

	target := NewPixmap(16, 16)
	if !Execute(op, Identity(), BlendSrcOver, NewRenderContext(), target) {
		t.Fatal("pattern Execute returned false")
	}

	// The fully covered tile repeats over the whole shape.
	for _, p := range []struct{ x, y int }{{2, 2}, {8, 8}, {13, 5}} {
		got := target.GetPixel(p.x, p.y)
		if !colorsClose(got, Red, 0.05) {
			t.Errorf("pattern pixel (%d,%d) = %v, want red", p.x, p.y, got)
		}
	}
}

func TestExecute_PatternTooSmallSkips(t *testing.T) {
	bbox := Rect{W: 10, H: 10}
	node := &PathNode{
		Data: rectPath(0, 0, 10, 10),
		Fill: &Fill{
			Paint: &PatternServer{
				Rect:  Rect{W: 0.1, H: 0.1},
				Units: UnitsUserSpace,
			},
			Opacity: 1,
		},
		BoundingBox: &bbox,
	}
	op := fillOpFor(node, t)

	target := NewPixmap(10, 10)
	if Execute(op, Identity(), BlendSrcOver, NewRenderContext(), target) {
		t.Error("sub-pixel pattern tile executed")
	}
	if got := target.GetPixel(5, 5); got != Transparent {
		t.Errorf("pixel = %v after skipped pattern, want untouched", got)
	}
}
