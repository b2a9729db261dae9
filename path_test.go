package vecpaint

import "testing"

func TestPath_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Path)
		want  Rect
	}{
		{
			name:  "empty",
			build: func(*Path) {},
			want:  Rect{},
		},
		{
			name: "single point",
			build: func(p *Path) {
				p.MoveTo(3, 4)
			},
			want: Rect{X: 3, Y: 4},
		},
		{
			name: "horizontal line",
			build: func(p *Path) {
				p.MoveTo(0, 5)
				p.LineTo(10, 5)
			},
			want: Rect{X: 0, Y: 5, W: 10, H: 0},
		},
		{
			name: "rectangle",
			build: func(p *Path) {
				p.Rectangle(1, 2, 10, 20)
			},
			want: Rect{X: 1, Y: 2, W: 10, H: 20},
		},
		{
			name: "control points count",
			build: func(p *Path) {
				p.MoveTo(0, 0)
				p.QuadraticTo(5, -10, 10, 0)
			},
			want: Rect{X: 0, Y: -10, W: 10, H: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			if got := p.Bounds(); !rectsClose(got, tt.want, 1e-9) {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPath_BoundsCacheInvalidation(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 10)

	if got := p.Bounds(); !rectsClose(got, Rect{W: 10, H: 10}, 1e-9) {
		t.Fatalf("initial Bounds() = %+v", got)
	}

	p.LineTo(20, 0)
	want := Rect{W: 20, H: 10}
	if got := p.Bounds(); !rectsClose(got, want, 1e-9) {
		t.Errorf("Bounds() after mutation = %+v, want %+v", got, want)
	}
}

func TestPath_Transform(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)

	moved := p.Transform(Translate(5, 7))
	if got, want := moved.Bounds(), (Rect{X: 5, Y: 7, W: 10, H: 10}); !rectsClose(got, want, 1e-9) {
		t.Errorf("transformed Bounds() = %+v, want %+v", got, want)
	}
	// The original is untouched.
	if got, want := p.Bounds(), (Rect{W: 10, H: 10}); !rectsClose(got, want, 1e-9) {
		t.Errorf("original Bounds() changed: %+v", got)
	}
}

func TestPath_CircleBounds(t *testing.T) {
	p := NewPath()
	p.Circle(50, 50, 10)
	got := p.Bounds()
	want := Rect{X: 40, Y: 40, W: 20, H: 20}
	if !rectsClose(got, want, 1e-9) {
		t.Errorf("circle Bounds() = %+v, want %+v", got, want)
	}
}
