package vecpaint

// PaintServer is an abstract paint description attached to a fill or
// stroke: a solid color, a gradient, or a pattern. Paint servers are
// resolved into concrete [Paint] values by [ResolvePaint] against the
// object's bounding box.
//
// This is a sealed interface - only types in this package implement it.
type PaintServer interface {
	paintServerMarker()
}

// GradientUnits selects the coordinate space of gradient and pattern
// geometry.
type GradientUnits int

const (
	// UnitsObjectBBox expresses coordinates as fractions of the object
	// bounding box (SVG objectBoundingBox, the default).
	UnitsObjectBBox GradientUnits = iota
	// UnitsUserSpace expresses coordinates in user-space units.
	UnitsUserSpace
)

// SolidServer is a plain color paint description.
type SolidServer struct {
	Color RGBA
}

func (SolidServer) paintServerMarker() {}

// LinearGradientServer describes a linear gradient paint.
// A zero-value Transform is treated as identity.
type LinearGradientServer struct {
	Start     Point
	End       Point
	Stops     []ColorStop
	Spread    SpreadMode
	Units     GradientUnits
	Transform Matrix
}

func (*LinearGradientServer) paintServerMarker() {}

// RadialGradientServer describes a radial gradient paint.
// A zero Focus means the focus coincides with the center.
// A zero-value Transform is treated as identity.
type RadialGradientServer struct {
	Center    Point
	Focus     Point
	Radius    float64
	Stops     []ColorStop
	Spread    SpreadMode
	Units     GradientUnits
	Transform Matrix
}

func (*RadialGradientServer) paintServerMarker() {}

// PatternServer describes a pattern paint: a tile rectangle and the
// sub-scene rendered into it. The content draw operations are expressed
// in tile coordinates (origin at the tile's top-left corner) further
// positioned by ContentTransform.
// Zero-value transforms are treated as identity.
type PatternServer struct {
	// Rect is the tile rectangle. With UnitsObjectBBox its fields are
	// fractions of the object bounding box.
	Rect Rect

	// Units selects the coordinate space of Rect.
	Units GradientUnits

	// Transform positions the tile grid in user space.
	Transform Matrix

	// ContentTransform maps the tile content into the tile rectangle.
	ContentTransform Matrix

	// Content is the tile sub-scene.
	Content []DrawOp
}

func (*PatternServer) paintServerMarker() {}

// Paint is a resolved paint: either a ready-to-use shader or a reference
// to pattern tile content that still needs rendering at execute time.
//
// This is a sealed interface; the executor type-switches over the two
// variants rather than dispatching dynamically.
type Paint interface {
	paintMarker()
}

// ShaderPaint wraps a shader that can be handed to the rasterizer as-is.
type ShaderPaint struct {
	Shader Shader
}

func (ShaderPaint) paintMarker() {}

// PatternPaint references tile content to be rendered into a pixmap at
// execute time and then used as a repeating shading source.
type PatternPaint struct {
	// Rect is the tile rectangle in user space (object-bbox units are
	// already resolved away here).
	Rect Rect

	// Transform positions the tile grid in user space.
	Transform Matrix

	// ContentTransform maps the tile content into the tile rectangle.
	ContentTransform Matrix

	// Opacity is the pattern-level opacity applied to sampled pixels.
	Opacity float64

	// Content is the tile sub-scene.
	Content []DrawOp
}

func (*PatternPaint) paintMarker() {}

// orIdentity maps the zero matrix to identity so that struct-literal
// paint servers without an explicit transform behave as untransformed.
func orIdentity(m Matrix) Matrix {
	if m == (Matrix{}) {
		return Identity()
	}
	return m
}
