// Package blit uploads a CPU-rendered RGBA8 framebuffer to the GPU each
// frame and draws it as a single fullscreen textured quad, the hand-off
// point between the software renderer and the GLFW window's OpenGL
// context.
package blit

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

const vertSrc = `
#version 410 core
layout(location = 0) in vec2 inPosition;
layout(location = 1) in vec2 inUV;

out vec2 fragUV;

void main() {
    gl_Position = vec4(inPosition, 0.0, 1.0);
    fragUV = inUV;
}
` + "\x00"

const fragSrc = `
#version 410 core
in vec2 fragUV;
out vec4 outColor;

uniform sampler2D frameTex;

void main() {
    outColor = vec4(texture(frameTex, fragUV).rgb, 1.0);
}
` + "\x00"

// fullscreen quad: position (x,y) + uv, two triangles. UV is flipped on
// V since the CPU framebuffer is stored top-to-bottom.
var quadVertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,

	-1, -1, 0, 1,
	1, 1, 1, 0,
	-1, 1, 0, 0,
}

// Blitter owns the GPU resources for the fullscreen-quad present path.
type Blitter struct {
	program   uint32
	texLoc    int32
	vao, vbo  uint32
	tex       uint32
	texW, texH int
}

// New compiles the blit shader and allocates the quad VBO/VAO. Must be
// called after the GLFW window's context is current and gl.Init has run.
func New() (*Blitter, error) {
	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("blit shader compile: %w", err)
	}

	b := &Blitter{
		program: prog,
		texLoc:  gl.GetUniformLocation(prog, gl.Str("frameTex\x00")),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	const stride = 4 * 4 // 4 float32 per vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.BindVertexArray(0)

	gl.GenTextures(1, &b.tex)
	gl.BindTexture(gl.TEXTURE_2D, b.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return b, nil
}

// Upload pushes an RGBA8 framebuffer of the given dimensions to the GPU
// texture, reallocating storage only when the size changes.
func (b *Blitter) Upload(pixels []uint8, width, height int) {
	gl.BindTexture(gl.TEXTURE_2D, b.tex)
	if width != b.texW || height != b.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		b.texW, b.texH = width, height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Draw issues the fullscreen-quad draw call against whatever was last
// uploaded.
func (b *Blitter) Draw() {
	gl.UseProgram(b.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.tex)
	gl.Uniform1i(b.texLoc, 0)

	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// Destroy releases the blitter's GPU resources.
func (b *Blitter) Destroy() {
	gl.DeleteTextures(1, &b.tex)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteProgram(b.program)
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
