// Package gl implements vgcore.Renderer on top of github.com/goxjs/gl, a
// portable GL ES2/WebGL binding that runs unmodified on desktop (via
// glfw) and in the browser (via GopherJS) — the same binding the
// reference nanovgo sample program drives (C6/§6 back-end contract).
package gl

import (
	"fmt"
	"math"

	"github.com/goxjs/gl"
	"github.com/jbonneau/vgcore"
)

const vertexShaderSrc = `
uniform vec2 viewSize;
attribute vec2 vertex;
attribute vec2 tcoord;
varying vec2 ftcoord;
varying vec2 fpos;
void main(void) {
	ftcoord = tcoord;
	fpos = vertex;
	gl_Position = vec4(2.0*vertex.x/viewSize.x - 1.0, 1.0 - 2.0*vertex.y/viewSize.y, 0, 1);
}
`

const fragmentShaderSrc = `
#ifdef GL_ES
precision highp float;
#endif
uniform vec4 innerCol;
uniform vec4 outerCol;
uniform mat3 scissorMat;
uniform mat3 paintMat;
uniform vec2 scissorExt;
uniform vec2 scissorScale;
uniform vec2 extent;
uniform float radius;
uniform float feather;
uniform float strokeMult;
uniform float texType;
uniform float shaderType;
uniform sampler2D tex;
varying vec2 ftcoord;
varying vec2 fpos;

float sdroundrect(vec2 pt, vec2 ext, float rad) {
	vec2 ext2 = ext - vec2(rad, rad);
	vec2 d = abs(pt) - ext2;
	return min(max(d.x, d.y), 0.0) + length(max(d, 0.0)) - rad;
}

float scissorMask(vec2 p) {
	vec2 sc = (abs((scissorMat * vec3(p, 1.0)).xy) - scissorExt);
	sc = vec2(0.5, 0.5) - sc * scissorScale;
	return clamp(sc.x, 0.0, 1.0) * clamp(sc.y, 0.0, 1.0);
}

void main(void) {
	float scissor = scissorMask(fpos);
	if (scissor == 0.0) { discard; }

	if (shaderType > 1.5) {
		// glyph / image texture
		vec4 color = texture2D(tex, ftcoord);
		if (texType > 0.5) { color = vec4(color.xyz * color.w, color.w); }
		else { color = vec4(color.x, color.x, color.x, color.x) * innerCol; }
		gl_FragColor = color * scissor;
		return;
	}

	vec2 pt = (paintMat * vec3(fpos, 1.0)).xy;
	float d = clamp((sdroundrect(pt, extent, radius) + feather * 0.5) / feather, 0.0, 1.0);
	vec4 color = mix(innerCol, outerCol, d);

	if (shaderType > 0.5) {
		// stroke/fringe coverage from the flattened aa U coordinate
		float strokeAlpha = 1.0 - abs(ftcoord.x * 2.0 - 1.0);
		color *= clamp(strokeAlpha * strokeMult, 0.0, 1.0);
	}

	gl_FragColor = color * scissor;
}
`

type uniforms struct {
	viewSize, innerCol, outerCol, scissorMat, paintMat, scissorExt, scissorScale,
	extent, radius, feather, strokeMult, texType, shaderType gl.Uniform
	vertex, tcoord gl.Attrib
}

// Backend is a vgcore.Renderer backed by a GL ES2/WebGL context.
type Backend struct {
	prog      gl.Program
	u         uniforms
	vbo       gl.Buffer
	textures  map[int]texture
	nextImage int
	antiAlias bool
	viewW     int
	viewH     int
}

type texture struct {
	id         gl.Texture
	w, h       int
	kind       vgcore.TextureKind
}

// New compiles the shader program and returns a ready Backend. flags
// controls AntiAlias (fringe coverage); StencilStrokes/Debug are
// accepted for API parity with the reference but do not change this
// simplified single-pass renderer.
func New(flags vgcore.CreateFlags) (*Backend, error) {
	vs := gl.CreateShader(gl.VERTEX_SHADER)
	gl.ShaderSource(vs, vertexShaderSrc)
	gl.CompileShader(vs)
	if gl.GetShaderi(vs, gl.COMPILE_STATUS) == 0 {
		return nil, fmt.Errorf("gl: vertex shader: %s", gl.GetShaderInfoLog(vs))
	}

	fs := gl.CreateShader(gl.FRAGMENT_SHADER)
	gl.ShaderSource(fs, fragmentShaderSrc)
	gl.CompileShader(fs)
	if gl.GetShaderi(fs, gl.COMPILE_STATUS) == 0 {
		return nil, fmt.Errorf("gl: fragment shader: %s", gl.GetShaderInfoLog(fs))
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.BindAttribLocation(prog, 0, "vertex")
	gl.BindAttribLocation(prog, 1, "tcoord")
	gl.LinkProgram(prog)
	if gl.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		return nil, fmt.Errorf("gl: link: %s", gl.GetProgramInfoLog(prog))
	}

	b := &Backend{
		prog:      prog,
		vbo:       gl.CreateBuffer(),
		textures:  make(map[int]texture),
		nextImage: 1,
		antiAlias: flags&vgcore.AntiAlias != 0,
	}
	b.u = uniforms{
		viewSize:     gl.GetUniformLocation(prog, "viewSize"),
		innerCol:     gl.GetUniformLocation(prog, "innerCol"),
		outerCol:     gl.GetUniformLocation(prog, "outerCol"),
		scissorMat:   gl.GetUniformLocation(prog, "scissorMat"),
		paintMat:     gl.GetUniformLocation(prog, "paintMat"),
		scissorExt:   gl.GetUniformLocation(prog, "scissorExt"),
		scissorScale: gl.GetUniformLocation(prog, "scissorScale"),
		extent:       gl.GetUniformLocation(prog, "extent"),
		radius:       gl.GetUniformLocation(prog, "radius"),
		feather:      gl.GetUniformLocation(prog, "feather"),
		strokeMult:   gl.GetUniformLocation(prog, "strokeMult"),
		texType:      gl.GetUniformLocation(prog, "texType"),
		shaderType:   gl.GetUniformLocation(prog, "shaderType"),
		vertex:       gl.GetAttribLocation(prog, "vertex"),
		tcoord:       gl.GetAttribLocation(prog, "tcoord"),
	}
	return b, nil
}

func (b *Backend) EdgeAntiAlias() bool { return b.antiAlias }

func (b *Backend) RenderViewport(width, height int) {
	b.viewW, b.viewH = width, height
	gl.Viewport(0, 0, width, height)
}

func (b *Backend) RenderCancel() {}

func (b *Backend) RenderFlush() { gl.Flush() }

func (b *Backend) RenderDelete() {
	gl.DeleteProgram(b.prog)
	gl.DeleteBuffer(b.vbo)
	for _, t := range b.textures {
		gl.DeleteTexture(t.id)
	}
}

func (b *Backend) RenderCreateTexture(kind vgcore.TextureKind, w, h int, flags vgcore.ImageFlags, data []byte) int {
	id := gl.CreateTexture()
	gl.BindTexture(gl.TEXTURE_2D, id)

	format := gl.Enum(gl.ALPHA)
	if kind == vgcore.TextureRGBA {
		format = gl.RGBA
	}
	var pix []byte
	if data != nil {
		pix = data
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, w, h, format, gl.UNSIGNED_BYTE, pix)

	wrap := gl.Enum(gl.CLAMP_TO_EDGE)
	if flags&vgcore.ImageRepeatX != 0 || flags&vgcore.ImageRepeatY != 0 {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	handle := b.nextImage
	b.nextImage++
	b.textures[handle] = texture{id: id, w: w, h: h, kind: kind}
	return handle
}

func (b *Backend) RenderUpdateTexture(image, x, y, w, h int, data []byte) error {
	t, ok := b.textures[image]
	if !ok {
		return fmt.Errorf("gl: no such texture %d", image)
	}
	format := gl.Enum(gl.ALPHA)
	if t.kind == vgcore.TextureRGBA {
		format = gl.RGBA
	}
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, x, y, w, h, format, gl.UNSIGNED_BYTE, data)
	return nil
}

func (b *Backend) RenderGetTextureSize(image int) (int, int, error) {
	t, ok := b.textures[image]
	if !ok {
		return 0, 0, fmt.Errorf("gl: no such texture %d", image)
	}
	return t.w, t.h, nil
}

func (b *Backend) RenderDeleteTexture(image int) error {
	t, ok := b.textures[image]
	if !ok {
		return fmt.Errorf("gl: no such texture %d", image)
	}
	gl.DeleteTexture(t.id)
	delete(b.textures, image)
	return nil
}

func blendFactor(f vgcore.BlendFactor) gl.Enum {
	switch f {
	case vgcore.ZERO:
		return gl.ZERO
	case vgcore.ONE:
		return gl.ONE
	case vgcore.SRC_COLOR:
		return gl.SRC_COLOR
	case vgcore.ONE_MINUS_SRC_COLOR:
		return gl.ONE_MINUS_SRC_COLOR
	case vgcore.DST_COLOR:
		return gl.DST_COLOR
	case vgcore.ONE_MINUS_DST_COLOR:
		return gl.ONE_MINUS_DST_COLOR
	case vgcore.SRC_ALPHA:
		return gl.SRC_ALPHA
	case vgcore.ONE_MINUS_SRC_ALPHA:
		return gl.ONE_MINUS_SRC_ALPHA
	case vgcore.DST_ALPHA:
		return gl.DST_ALPHA
	case vgcore.ONE_MINUS_DST_ALPHA:
		return gl.ONE_MINUS_DST_ALPHA
	case vgcore.SRC_ALPHA_SATURATE:
		return gl.SRC_ALPHA_SATURATE
	}
	return gl.ONE
}

func (b *Backend) applyComposite(op vgcore.CompositeOperationState) {
	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(blendFactor(op.SrcRGB), blendFactor(op.DstRGB), blendFactor(op.SrcAlpha), blendFactor(op.DstAlpha))
}

func mat3(m vgcore.TransformMatrix) [9]float32 {
	inv, _ := m.TryInverse()
	a, bq, c, d, e, f := inv[0], inv[1], inv[2], inv[3], inv[4], inv[5]
	return [9]float32{a, bq, 0, c, d, 0, e, f, 1}
}

func (b *Backend) bindPaint(paint *vgcore.Paint, scissor *vgcore.Scissor, shaderType, strokeMult float32) {
	xform, extent, radius, feather, inner, outer, image := paint.Fields()
	sxform, sextent := scissor.Fields()

	gl.Uniform2f(b.u.viewSize, float32(b.viewW), float32(b.viewH))
	gl.Uniform1f(b.u.shaderType, shaderType)
	gl.Uniform1f(b.u.strokeMult, strokeMult)

	gl.Uniform4f(b.u.innerCol, inner.R, inner.G, inner.B, inner.A)
	gl.Uniform4f(b.u.outerCol, outer.R, outer.G, outer.B, outer.A)
	gl.Uniform2f(b.u.extent, extent[0], extent[1])
	gl.Uniform1f(b.u.radius, radius)
	gl.Uniform1f(b.u.feather, feather)

	pm := mat3(xform)
	gl.UniformMatrix3fv(b.u.paintMat, pm[:])
	sm := mat3(sxform)
	gl.UniformMatrix3fv(b.u.scissorMat, sm[:])
	gl.Uniform2f(b.u.scissorExt, sextent[0], sextent[1])
	scale := [2]float32{1, 1}
	gl.Uniform2f(b.u.scissorScale, scale[0], scale[1])

	texType := float32(0)
	if t, ok := b.textures[image]; ok {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, t.id)
		if t.kind == vgcore.TextureRGBA {
			texType = 1
		}
	}
	gl.Uniform1f(b.u.texType, texType)
}

func (b *Backend) setupArrays(verts []vgcore.Vertex) {
	data := make([]float32, 0, len(verts)*4)
	for _, v := range verts {
		data = append(data, v.X, v.Y, v.U, v.V)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, byteSlice(data), gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(b.u.vertex)
	gl.EnableVertexAttribArray(b.u.tcoord)
	gl.VertexAttribPointer(b.u.vertex, 2, gl.FLOAT, false, 16, 0)
	gl.VertexAttribPointer(b.u.tcoord, 2, gl.FLOAT, false, 16, 8)
}

func byteSlice(f []float32) []byte {
	b := make([]byte, len(f)*4)
	for i, v := range f {
		bits := math.Float32bits(v)
		b[i*4+0] = byte(bits)
		b[i*4+1] = byte(bits >> 8)
		b[i*4+2] = byte(bits >> 16)
		b[i*4+3] = byte(bits >> 24)
	}
	return b
}

// RenderFill draws the fill and, when present, the antialiasing fringe
// of every sub-path in paths.
func (b *Backend) RenderFill(paint *vgcore.Paint, compositeOp vgcore.CompositeOperationState, scissor *vgcore.Scissor, fringe float32, bounds [4]float32, paths []vgcore.Path) {
	b.applyComposite(compositeOp)
	gl.UseProgram(b.prog)
	b.bindPaint(paint, scissor, 0, 1)

	for _, path := range paths {
		if len(path.Fill()) > 0 {
			b.setupArrays(path.Fill())
			gl.DrawArrays(gl.TRIANGLE_FAN, 0, len(path.Fill()))
		}
	}
	b.bindPaint(paint, scissor, 1, 1)
	for _, path := range paths {
		if len(path.Stroke()) > 0 {
			b.setupArrays(path.Stroke())
			gl.DrawArrays(gl.TRIANGLE_STRIP, 0, len(path.Stroke()))
		}
	}
}

// RenderStroke draws the stroke triangle strip of every sub-path in
// paths.
func (b *Backend) RenderStroke(paint *vgcore.Paint, compositeOp vgcore.CompositeOperationState, scissor *vgcore.Scissor, fringe, strokeWidth float32, paths []vgcore.Path) {
	b.applyComposite(compositeOp)
	gl.UseProgram(b.prog)
	b.bindPaint(paint, scissor, 1, 1)
	for _, path := range paths {
		if len(path.Stroke()) > 0 {
			b.setupArrays(path.Stroke())
			gl.DrawArrays(gl.TRIANGLE_STRIP, 0, len(path.Stroke()))
		}
	}
}

// RenderTriangles draws a raw triangle list, used for glyph quads.
func (b *Backend) RenderTriangles(paint *vgcore.Paint, compositeOp vgcore.CompositeOperationState, scissor *vgcore.Scissor, verts []vgcore.Vertex) {
	if len(verts) == 0 {
		return
	}
	b.applyComposite(compositeOp)
	gl.UseProgram(b.prog)
	b.bindPaint(paint, scissor, 2, 1)
	b.setupArrays(verts)
	gl.DrawArrays(gl.TRIANGLES, 0, len(verts))
}
