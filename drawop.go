package vecpaint

// Visibility is a node's resolved visibility value.
type Visibility int

const (
	// VisibilityVisible renders the node normally.
	VisibilityVisible Visibility = iota
	// VisibilityHidden suppresses output but keeps the bounding box.
	VisibilityHidden
	// VisibilityCollapse behaves like hidden for path nodes.
	VisibilityCollapse
)

// PaintOrder is the declared sequencing of fill vs stroke for a node.
type PaintOrder int

const (
	// PaintOrderFillStroke paints the fill first, then the stroke.
	PaintOrderFillStroke PaintOrder = iota
	// PaintOrderStrokeFill paints the stroke first, then the fill.
	PaintOrderStrokeFill
)

// ShapeRendering is a node's declared rendering-quality mode.
type ShapeRendering int

const (
	// ShapeRenderingGeometricPrecision favors accurate, antialiased
	// geometry (the default).
	ShapeRenderingGeometricPrecision ShapeRendering = iota
	// ShapeRenderingOptimizeSpeed favors speed over edge quality.
	ShapeRenderingOptimizeSpeed
	// ShapeRenderingCrispEdges favors sharp edges over smoothness.
	ShapeRenderingCrispEdges
)

// UseShapeAntialiasing reports whether shapes drawn under this mode
// should be antialiased.
func (s ShapeRendering) UseShapeAntialiasing() bool {
	return s == ShapeRenderingGeometricPrecision
}

// Fill describes how a node's interior is painted.
type Fill struct {
	Paint   PaintServer
	Opacity float64
	Rule    FillRule
}

// StrokeSpec describes how a node's outline is painted.
type StrokeSpec struct {
	Paint   PaintServer
	Opacity float64
	Stroke  Stroke
}

// PathNode is a resolved vector-path node: geometry plus fill/stroke
// style, visibility, and paint order, with bounding boxes already
// computed by an upstream pass.
type PathNode struct {
	// Data is the path geometry, shared by reference with any draw
	// operations built from this node.
	Data *Path

	// Fill and Stroke are optional; a node may carry either, both, or
	// neither.
	Fill   *Fill
	Stroke *StrokeSpec

	Visibility Visibility
	PaintOrder PaintOrder
	Rendering  ShapeRendering

	// BoundingBox is the object bounding box, computed upstream.
	// A nil value is a precondition violation.
	BoundingBox *Rect

	// StrokeBoundingBox is the object bounding box expanded by the
	// stroke extent, computed upstream. Optional.
	StrokeBoundingBox *Rect
}

// DrawOp is a concrete draw operation produced by BuildDrawOps and
// consumed by Execute.
//
// This is a sealed interface over [*FillOp] and [*StrokeOp]; the
// executor type-switches on it.
type DrawOp interface {
	drawOpMarker()
}

// FillOp fills a path's interior.
type FillOp struct {
	Paint     Paint
	Rule      FillRule
	Antialias bool
	Path      *Path
}

func (*FillOp) drawOpMarker() {}

// StrokeOp paints a path's outline.
type StrokeOp struct {
	Paint     Paint
	Stroke    Stroke
	Antialias bool
	Path      *Path
}

func (*StrokeOp) drawOpMarker() {}

// BuildDrawOps converts a path node into draw operations and the node's
// layer bounding box.
//
// textBBox, when non-nil, overrides the node's bounding box for
// paint-coordinate resolution only (used for text glyph runs whose paint
// box is derived by the text subsystem); the returned layer box always
// derives from the node's own bounding box.
//
// The third result is false when the node contributes nothing: a missing
// precomputed bounding box (logged as a diagnostic, since boxes must be
// computed in a prior pass) or a node where neither a fill nor a stroke
// operation could be built. A hidden node with buildable operations
// still returns true, with an empty op slice and the layer box intact.
func BuildDrawOps(node *PathNode, textBBox *Rect) ([]DrawOp, BBox, bool) {
	if node.BoundingBox == nil {
		Logger().Warn("path node bounding box should be already calculated by an upstream pass; skipping node")
		return nil, BBox{}, false
	}

	paintBBox := *node.BoundingBox
	if textBBox != nil {
		paintBBox = *textBBox
	}

	antialias := node.Rendering.UseShapeAntialiasing()

	var fillOp *FillOp
	if node.Fill != nil {
		fillOp = buildFillOp(node.Fill, node.Data, paintBBox, antialias)
	}

	var strokeOp *StrokeOp
	if node.Stroke != nil {
		strokeOp = buildStrokeOp(node.Stroke, node.Data, paintBBox, antialias)
	}

	if fillOp == nil && strokeOp == nil {
		return nil, BBox{}, false
	}

	layerBBox := BBoxFrom(*node.BoundingBox)
	if strokeOp != nil && node.StrokeBoundingBox != nil {
		layerBBox = layerBBox.Expand(*node.StrokeBoundingBox)
	}

	// Hidden nodes produce no output, but the bounding box still
	// propagates: visibility affects painting, not layout.
	if node.Visibility != VisibilityVisible {
		return nil, layerBBox, true
	}

	ops := make([]DrawOp, 0, 2)
	if node.PaintOrder == PaintOrderFillStroke {
		if fillOp != nil {
			ops = append(ops, fillOp)
		}
		if strokeOp != nil {
			ops = append(ops, strokeOp)
		}
	} else {
		if strokeOp != nil {
			ops = append(ops, strokeOp)
		}
		if fillOp != nil {
			ops = append(ops, fillOp)
		}
	}

	return ops, layerBBox, true
}

// buildFillOp resolves a fill spec into a fill operation, or nil when
// the geometry cannot be filled or the paint does not resolve.
func buildFillOp(fill *Fill, path *Path, bbox Rect, antialias bool) *FillOp {
	// Horizontal and vertical lines cannot be filled. Skip.
	if b := path.Bounds(); b.W == 0 || b.H == 0 {
		return nil
	}

	paint, ok := ResolvePaint(fill.Paint, fill.Opacity, bbox)
	if !ok {
		return nil
	}

	return &FillOp{
		Paint:     paint,
		Rule:      fill.Rule,
		Antialias: antialias,
		Path:      path,
	}
}

// buildStrokeOp resolves a stroke spec into a stroke operation, or nil
// when the paint does not resolve. Zero-sized geometry is not rejected:
// round or square caps produce visible area either way.
func buildStrokeOp(stroke *StrokeSpec, path *Path, bbox Rect, antialias bool) *StrokeOp {
	paint, ok := ResolvePaint(stroke.Paint, stroke.Opacity, bbox)
	if !ok {
		return nil
	}

	return &StrokeOp{
		Paint:     paint,
		Stroke:    stroke.Stroke,
		Antialias: antialias,
		Path:      path,
	}
}
