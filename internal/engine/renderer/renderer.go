// Package renderer provides OpenGL rendering of the scene graph.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/driftlabs/driftline/internal/engine/scene"
	"github.com/driftlabs/driftline/internal/engine/shader"
	"github.com/driftlabs/driftline/internal/logger"
	"github.com/driftlabs/driftline/pkg/math"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vColor;

void main() {
    gl_Position = uMVP * vec4(aPos, 1.0);
    vNormal = mat3(uModel) * aNormal;
    vColor = aColor;
}
`

const fragmentShaderSource = `#version 410 core
in vec3 vNormal;
in vec3 vColor;

uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    float nl = max(dot(n, normalize(uLightDir)), 0.0);
    vec3 lit = vColor * (uAmbient + uDiffuse * nl);
    FragColor = vec4(lit, 1.0);
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	FOVY   float32 // vertical field of view in radians; 0 uses the default
}

// Renderer draws a scene graph with a single lit vertex-color shader.
type Renderer struct {
	config Config

	program     uint32
	locMVP      int32
	locModel    int32
	locLightDir int32
	locAmbient  int32
	locDiffuse  int32

	proj math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.FOVY == 0 {
		cfg.FOVY = math.Pi / 3
	}
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)

	program, err := shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	r.program = program
	r.locMVP = shader.GetUniform(program, "uMVP")
	r.locModel = shader.GetUniform(program, "uModel")
	r.locLightDir = shader.GetUniform(program, "uLightDir")
	r.locAmbient = shader.GetUniform(program, "uAmbient")
	r.locDiffuse = shader.GetUniform(program, "uDiffuse")

	r.updateProjection()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.updateProjection()
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

func (r *Renderer) updateProjection() {
	aspect := float32(r.config.Width) / float32(r.config.Height)
	r.proj = math.Perspective(r.config.FOVY, aspect, 0.1, 500)
}

// Begin starts a new frame with the given sky color.
func (r *Renderer) Begin(clearColor [3]float32) {
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawScene walks the scene graph and draws every visible mesh with the
// given view matrix. Meshes are uploaded lazily on first sight.
func (r *Renderer) DrawScene(s *scene.Scene, view math.Mat4) {
	gl.UseProgram(r.program)

	gl.Uniform3f(r.locLightDir, s.SunDir.X, s.SunDir.Y, s.SunDir.Z)
	gl.Uniform3f(r.locAmbient, s.Ambient[0], s.Ambient[1], s.Ambient[2])
	gl.Uniform3f(r.locDiffuse, s.Diffuse[0], s.Diffuse[1], s.Diffuse[2])

	viewProj := r.proj.Mul(view)

	s.Walk(func(n *scene.Node, world math.Mat4) {
		if n.Mesh == nil {
			return
		}
		if !n.Mesh.Uploaded() {
			n.Mesh.Upload()
		}

		mvp := viewProj.Mul(world)
		gl.UniformMatrix4fv(r.locMVP, 1, false, mvp.Ptr())
		gl.UniformMatrix4fv(r.locModel, 1, false, world.Ptr())

		gl.BindVertexArray(n.Mesh.VAO())
		gl.DrawElements(gl.TRIANGLES, n.Mesh.IndexCount(), gl.UNSIGNED_INT, nil)
	})

	gl.BindVertexArray(0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Draws are immediate; nothing to flush.
}

// ReadPixels reads the current framebuffer as RGBA bytes in OpenGL's
// bottom-left row order, along with its dimensions. Call after drawing
// and before the buffer swap.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
