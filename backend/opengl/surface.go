// Package opengl provides an OpenGL 4.1 Surface for rroguelib.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/tdejager/rroguelib"
	"github.com/tdejager/rroguelib/internal/logger"
)

// Surface implements rroguelib.Surface over an OpenGL context owned
// by a glfw window.
type Surface struct {
	window *glfw.Window
	log    *logger.Logger

	gridProgram uint32
	textProgram uint32
	texLoc      int32

	gridVAO, gridVBO uint32
	textVAO, textVBO uint32
}

var _ rroguelib.Surface = (*Surface)(nil)

// NewSurface creates the two shader programs (grid lines, glyph
// quads) and their vertex buffers. The window's context must be
// current and gl.Init must have run.
func NewSurface(window *glfw.Window, log *logger.Logger) (*Surface, error) {
	s := &Surface{window: window, log: log}

	var err error
	s.gridProgram, err = createShaderProgram(gridVertexShaderSource, gridFragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("grid program: %w", err)
	}
	s.textProgram, err = createShaderProgram(textVertexShaderSource, textFragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("text program: %w", err)
	}
	s.texLoc = gl.GetUniformLocation(s.textProgram, gl.Str("atlasTexture\x00"))

	// Grid mesh layout: Pos (2 floats) + Color (3 floats)
	gl.GenVertexArrays(1, &s.gridVAO)
	gl.BindVertexArray(s.gridVAO)
	gl.GenBuffers(1, &s.gridVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.gridVBO)
	gridStride := int32(unsafe.Sizeof(rroguelib.GridVertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, gridStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, gridStride, unsafe.Offsetof(rroguelib.GridVertex{}.Color))
	gl.EnableVertexAttribArray(1)

	// Text batch layout: Pos (2 floats) + TexCoord (2 floats) + Color (4 floats)
	gl.GenVertexArrays(1, &s.textVAO)
	gl.BindVertexArray(s.textVAO)
	gl.GenBuffers(1, &s.textVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.textVBO)
	textStride := int32(unsafe.Sizeof(rroguelib.TextVertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, textStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, textStride, unsafe.Offsetof(rroguelib.TextVertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, textStride, unsafe.Offsetof(rroguelib.TextVertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	s.log.Debug("opengl surface ready, GL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	return s, nil
}

// Size implements rroguelib.Surface. Framebuffer size, in physical
// pixels.
func (s *Surface) Size() (int, int) {
	return s.window.GetFramebufferSize()
}

// DPIScale implements rroguelib.Surface.
func (s *Surface) DPIScale() float32 {
	scale, _ := s.window.GetContentScale()
	return scale
}

// CreateTexture implements rroguelib.Surface: a single-channel (R8)
// texture with nearest filtering, every texel set to fill.
func (s *Surface) CreateTexture(width, height int, fill byte) (rroguelib.TextureID, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	data := make([]byte, width*height)
	for i := range data {
		data[i] = fill
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return 0, fmt.Errorf("glTexImage2D: 0x%04x", glErr)
	}

	s.log.Debug("created %dx%d atlas texture %d", width, height, tex)
	return rroguelib.TextureID(tex), nil
}

// WriteTexture implements rroguelib.Surface: a sub-rectangle upload
// of coverage bytes.
func (s *Surface) WriteTexture(id rroguelib.TextureID, x, y, w, h int, pixels []byte) error {
	if len(pixels) < w*h {
		return fmt.Errorf("write texture %d: %d pixels for %dx%d region", id, len(pixels), w, h)
	}
	gl.BindTexture(gl.TEXTURE_2D, uint32(id))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(x), int32(y), int32(w), int32(h), gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		return fmt.Errorf("glTexSubImage2D: 0x%04x", glErr)
	}
	return nil
}

// DestroyTexture implements rroguelib.Surface.
func (s *Surface) DestroyTexture(id rroguelib.TextureID) {
	tex := uint32(id)
	gl.DeleteTextures(1, &tex)
}

// BeginFrame implements rroguelib.Surface.
func (s *Surface) BeginFrame(clear rroguelib.Color) {
	width, height := s.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawGrid implements rroguelib.Surface: one line-list submission,
// no blending.
func (s *Surface) DrawGrid(vertices []rroguelib.GridVertex) error {
	if len(vertices) == 0 {
		return nil
	}
	gl.Disable(gl.BLEND)
	gl.UseProgram(s.gridProgram)
	gl.BindVertexArray(s.gridVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.gridVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(rroguelib.GridVertex{})), gl.Ptr(vertices), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)))
	gl.BindVertexArray(0)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		return fmt.Errorf("grid draw: 0x%04x", glErr)
	}
	return nil
}

// DrawText implements rroguelib.Surface: one triangle-list submission
// sampling the atlas, alpha blending enabled for this pass only.
func (s *Surface) DrawText(vertices []rroguelib.TextVertex, atlas rroguelib.TextureID) error {
	if len(vertices) == 0 {
		return nil
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.UseProgram(s.textProgram)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(atlas))
	gl.Uniform1i(s.texLoc, 0)

	gl.BindVertexArray(s.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.textVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(rroguelib.TextVertex{})), gl.Ptr(vertices), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)))
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		return fmt.Errorf("text draw: 0x%04x", glErr)
	}
	return nil
}

// Present implements rroguelib.Surface. Blocks on vsync when swap
// interval is 1.
func (s *Surface) Present() error {
	s.window.SwapBuffers()
	return nil
}

// Delete releases the surface's OpenGL resources. Textures created
// through CreateTexture are owned by their callers.
func (s *Surface) Delete() {
	if s.textVBO != 0 {
		gl.DeleteBuffers(1, &s.textVBO)
	}
	if s.textVAO != 0 {
		gl.DeleteVertexArrays(1, &s.textVAO)
	}
	if s.gridVBO != 0 {
		gl.DeleteBuffers(1, &s.gridVBO)
	}
	if s.gridVAO != 0 {
		gl.DeleteVertexArrays(1, &s.gridVAO)
	}
	if s.textProgram != 0 {
		gl.DeleteProgram(s.textProgram)
	}
	if s.gridProgram != 0 {
		gl.DeleteProgram(s.gridProgram)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Shaders are linked into the program now.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &infoLog[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", string(infoLog))
	}
	return program, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &infoLog[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compilation failed: %s", string(infoLog))
	}
	return shader, nil
}
