package vecpaint

// Shader is a resolved shading source: it answers what color a given
// point in user space should receive. The rasterizer maps device pixel
// centers back through the inverse of the draw transform before asking.
//
// This is a sealed interface - only types in this package implement it.
// Rasterizers evaluate it per pixel; shaders must therefore be safe for
// concurrent reads and must not retain references to the target.
type Shader interface {
	// shaderMarker is an unexported method that seals this interface.
	shaderMarker()

	// ColorAt returns the color at the given user-space coordinates.
	ColorAt(x, y float64) RGBA
}

// SolidShader is a single-color shader.
type SolidShader struct {
	Color RGBA
}

// shaderMarker implements the sealed Shader interface.
func (SolidShader) shaderMarker() {}

// ColorAt implements Shader. Returns the solid color regardless of
// position.
func (s SolidShader) ColorAt(_, _ float64) RGBA {
	return s.Color
}

// Solid creates a SolidShader from an RGBA color.
func Solid(c RGBA) SolidShader {
	return SolidShader{Color: c}
}
