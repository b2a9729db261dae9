package vecpaint

import "testing"

// redTilePaint builds a pattern paint whose tile is fully covered by a
// solid fill.
func redTilePaint(t *testing.T, w, h float64) *PatternPaint {
	t.Helper()
	bbox := Rect{W: w, H: h}
	node := &PathNode{
		Data:        rectPath(0, 0, w, h),
		Fill:        solidFill(Red),
		BoundingBox: &bbox,
	}
	ops, _, ok := BuildDrawOps(node, nil)
	if !ok {
		t.Fatal("tile content BuildDrawOps failed")
	}
	return &PatternPaint{
		Rect:             Rect{W: w, H: h},
		Transform:        Identity(),
		ContentTransform: Identity(),
		Opacity:          1,
		Content:          ops,
	}
}

func TestPrepareTileShader(t *testing.T) {
	ctx := NewRenderContext()

	t.Run("renders tile", func(t *testing.T) {
		shader, ok := prepareTileShader(redTilePaint(t, 8, 8), Identity(), ctx)
		if !ok {
			t.Fatal("tile preparation failed")
		}
		if got := shader.ColorAt(4, 4); !colorsClose(got, Red, 0.05) {
			t.Errorf("tile center = %v, want red", got)
		}
		// Repeats outside the tile rectangle.
		if got := shader.ColorAt(20, -12); !colorsClose(got, Red, 0.05) {
			t.Errorf("repeated sample = %v, want red", got)
		}
	})

	t.Run("sub-pixel tile fails", func(t *testing.T) {
		if _, ok := prepareTileShader(redTilePaint(t, 8, 8), Scale(0.01, 0.01), ctx); ok {
			t.Error("sub-pixel tile prepared")
		}
	})

	t.Run("transform scales tile buffer", func(t *testing.T) {
		// At 4x the 8-unit tile needs a 32 px buffer; clamped contexts
		// compensate through the tile transform instead.
		small := NewRenderContext(WithMaxTileSize(16))
		shader, ok := prepareTileShader(redTilePaint(t, 8, 8), Scale(4, 4), small)
		if !ok {
			t.Fatal("clamped tile preparation failed")
		}
		ts := shader.(*TileShader)
		if ts.tile.Width() != 16 || ts.tile.Height() != 16 {
			t.Errorf("tile buffer = %dx%d, want clamped 16x16", ts.tile.Width(), ts.tile.Height())
		}
		if got := shader.ColorAt(4, 4); !colorsClose(got, Red, 0.05) {
			t.Errorf("clamped tile sample = %v, want red", got)
		}
	})

	t.Run("opacity applied to samples", func(t *testing.T) {
		paint := redTilePaint(t, 8, 8)
		paint.Opacity = 0.5
		shader, ok := prepareTileShader(paint, Identity(), ctx)
		if !ok {
			t.Fatal("tile preparation failed")
		}
		got := shader.ColorAt(4, 4)
		if !almostEqual(got.A, 0.5, 0.02) {
			t.Errorf("sample alpha = %g, want 0.5", got.A)
		}
	})
}

func TestTileShaderWrap(t *testing.T) {
	tests := []struct {
		v    float64
		n    int
		want int
	}{
		{0, 4, 0},
		{3.7, 4, 3},
		{4, 4, 0},
		{-1, 4, 3},
		{-0.5, 4, 3},
		{9, 4, 1},
	}

	for _, tt := range tests {
		if got := wrap(tt.v, tt.n); got != tt.want {
			t.Errorf("wrap(%g, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestCatmullRomKernel(t *testing.T) {
	// Partition of unity: weights at any phase sum to 1.
	for _, phase := range []float64{0, 0.25, 0.5, 0.75} {
		sum := 0.0
		for i := -1; i <= 2; i++ {
			sum += catmullRom(float64(i) - phase)
		}
		if !almostEqual(sum, 1, 1e-9) {
			t.Errorf("kernel weights at phase %g sum to %g, want 1", phase, sum)
		}
	}
	if got := catmullRom(0); !almostEqual(got, 1, 1e-9) {
		t.Errorf("catmullRom(0) = %g, want 1", got)
	}
	if got := catmullRom(2.5); got != 0 {
		t.Errorf("catmullRom(2.5) = %g, want 0", got)
	}
}
