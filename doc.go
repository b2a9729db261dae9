// Package vecpaint converts resolved vector-path nodes into concrete draw
// operations and executes them against a pixel target.
//
// # Overview
//
// vecpaint sits between a resolved vector-graphics tree and a rasterizer.
// It owns two stages:
//
//   - BuildDrawOps runs once per path node during scene preparation. It
//     resolves the node's fill and stroke paints, rejects degenerate
//     geometry, honors visibility and paint order, and keeps bounding-box
//     bookkeeping correct even when nothing is drawn.
//   - Execute runs once per draw operation during the pixel-producing
//     pass. It turns the operation's paint into a concrete shader (solid,
//     gradient, or a freshly rendered repeating pattern tile) and invokes
//     the rasterizer's fill or stroke primitive.
//
// # Quick Start
//
//	path := vecpaint.NewPath()
//	path.Rectangle(10, 10, 80, 60)
//	bbox := path.Bounds()
//
//	node := &vecpaint.PathNode{
//	    Data:        path,
//	    Fill:        &vecpaint.Fill{Paint: vecpaint.SolidServer{Color: vecpaint.Red}, Opacity: 1},
//	    BoundingBox: &bbox,
//	}
//
//	ops, _, ok := vecpaint.BuildDrawOps(node, nil)
//	if !ok {
//	    return
//	}
//
//	target := vecpaint.NewPixmap(100, 100)
//	ctx := vecpaint.NewRenderContext()
//	for _, op := range ops {
//	    vecpaint.Execute(op, vecpaint.Identity(), vecpaint.BlendSrcOver, ctx, target)
//	}
//
// # Failure Model
//
// Every failure is a silent, local skip: a missing bounding box, an
// unresolvable paint, or a degenerate pattern tile drops exactly the
// affected operation and nothing else. Stage boundaries return
// (value, ok) pairs instead of errors; nothing in this package panics or
// aborts a render.
//
// # Concurrency
//
// BuildDrawOps is pure computation over immutable inputs and is safe to
// run in parallel across independent nodes. Execute allocates fresh tile
// pixmaps per pattern, so parallel execution is safe as long as writes to
// the shared target pixmap are externally serialized; this package does
// not synchronize the target.
//
// # Architecture
//
// The library is organized into:
//   - Public API: PathNode, DrawOp, Paint, Shader, Rasterizer, Pixmap
//   - Internal: raster (scanline), path (flattening), stroke (expansion)
package vecpaint
