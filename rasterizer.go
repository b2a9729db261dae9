package vecpaint

import "image"

// Rasterizer is the interface to the scanline engine that turns draw
// operations into pixels. Implementations receive geometry in user
// space together with the transform to apply; shaders are evaluated in
// user space as well.
//
// The clip parameter is an optional alpha mask in device space that
// scales coverage where present. Draw-op execution always passes nil;
// the parameter exists for callers composing larger pipelines (group
// clips, masks).
type Rasterizer interface {
	// FillPath fills a path with the given shader.
	// Returns an error if the rendering operation fails.
	FillPath(target *Pixmap, path *Path, shader Shader, rule FillRule,
		transform Matrix, antialias bool, blend BlendMode, clip *image.Alpha) error

	// StrokePath strokes a path with the given shader and stroke style.
	// Returns an error if the rendering operation fails.
	StrokePath(target *Pixmap, path *Path, shader Shader, stroke Stroke,
		transform Matrix, antialias bool, blend BlendMode, clip *image.Alpha) error
}
