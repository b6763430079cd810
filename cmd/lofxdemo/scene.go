package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/lofx"
)

// scene renders a rotating cube into a two-target G-buffer, then lights it
// on screen with a fullscreen quad.
type scene struct {
	ctx     *lofx.Context
	shaders shaderSource
	width   int
	height  int
	angle   float32

	buffers []*lofx.Buffer

	cube        *lofx.AttributePack
	cubeIndices lofx.BufferAccessor
	quad        *lofx.AttributePack
	quadIndices lofx.BufferAccessor

	// programs by shader file name
	programs map[string]*lofx.Program
	geometry *lofx.Pipeline
	compose  *lofx.Pipeline

	sampler *lofx.TextureSampler
	albedo  *lofx.Texture
	normals *lofx.Texture
	depth   *lofx.Renderbuffer
	gbuffer *lofx.Framebuffer
}

func newScene(ctx *lofx.Context, shaders shaderSource, width, height int) (*scene, error) {
	s := &scene{
		ctx:      ctx,
		shaders:  shaders,
		width:    width,
		height:   height,
		programs: make(map[string]*lofx.Program),
	}
	s.buildGeometry()

	geometry, err := s.pipeline("scene.vert", "scene.frag")
	if err != nil {
		s.release()
		return nil, err
	}
	compose, err := s.pipeline("compose.vert", "compose.frag")
	if err != nil {
		s.release()
		return nil, err
	}
	s.geometry, s.compose = geometry, compose

	s.buildTargets()
	if !s.gbuffer.Complete() {
		status := s.gbuffer.Status()
		s.release()
		return nil, fmt.Errorf("g-buffer: %s", status)
	}

	s.sendConstants()
	return s, nil
}

// sendConstants pushes the uniforms that only change with the window size.
func (s *scene) sendConstants() {
	aspect := float32(s.width) / float32(max(s.height, 1))
	s.geometry.Send(lofx.Mat4("projection", mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)))
	s.geometry.Send(lofx.Mat4("view", mgl32.LookAtV(mgl32.Vec3{2, 1.5, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})))
	s.compose.Send(lofx.Vec3("light", mgl32.Vec3{0.4, 1, 0.6}))
}

func (s *scene) buildGeometry() {
	vertices, indices := cubeMesh()
	vbo := s.upload(lofx.BufferVertex, lofx.Bytes(vertices))
	ebo := s.upload(lofx.BufferIndex, lofx.Bytes(indices))
	s.cube = lofx.BuildInterleavedAttributePack(
		lofx.CreateAccessor(vbo, lofx.AttribFloat, 3, 24),
		lofx.CreateAccessor(vbo, lofx.AttribFloat, 3, 24),
	)
	s.cubeIndices = lofx.CreateAccessor(ebo, lofx.AttribUnsignedShort, 1, len(indices))

	quad := []float32{
		-1, -1, 1, -1, 1, 1, -1, 1, // positions
		0, 0, 1, 0, 1, 1, 0, 1, // uvs
	}
	qvbo := s.upload(lofx.BufferVertex, lofx.Bytes(quad))
	qebo := s.upload(lofx.BufferIndex, lofx.Bytes([]uint16{0, 1, 2, 0, 2, 3}))
	s.quad = lofx.BuildSequentialAttributePack(
		lofx.CreateAccessor(qvbo, lofx.AttribFloat, 2, 4),
		lofx.CreateAccessor(qvbo, lofx.AttribFloat, 2, 4),
	)
	s.quadIndices = lofx.CreateAccessor(qebo, lofx.AttribUnsignedShort, 1, 6)
}

func (s *scene) upload(kind lofx.BufferKind, data []byte) *lofx.Buffer {
	b := s.ctx.CreateBuffer(kind, len(data))
	b.Send(data)
	s.buffers = append(s.buffers, b)
	return b
}

func (s *scene) buildTargets() {
	s.sampler = s.ctx.CreateTextureSampler(lofx.DefaultSamplerParameters())
	desc := lofx.TextureDescriptor{
		Width:   s.width,
		Height:  s.height,
		Levels:  1,
		Target:  lofx.Texture2D,
		Format:  lofx.FormatRGBA8,
		Sampler: s.sampler,
	}
	s.albedo = s.ctx.CreateTexture(desc)
	s.normals = s.ctx.CreateTexture(desc)
	s.depth = s.ctx.CreateRenderbuffer(s.width, s.height)

	s.gbuffer = s.ctx.CreateFramebuffer()
	s.gbuffer.Attachments = []*lofx.Texture{s.albedo, s.normals}
	s.gbuffer.Renderbuffer = s.depth
	s.gbuffer.Build()
}

// pipeline compiles one program per shader file and combines them.
func (s *scene) pipeline(names ...string) (*lofx.Pipeline, error) {
	programs := make([]*lofx.Program, 0, len(names))
	for _, name := range names {
		p, err := s.compile(name)
		if err != nil {
			return nil, err
		}
		s.programs[name] = p
		programs = append(programs, p)
	}
	return s.ctx.CreatePipeline(programs...), nil
}

func (s *scene) compile(name string) (*lofx.Program, error) {
	stage, ok := shaderStage(name)
	if !ok {
		return nil, fmt.Errorf("%s: unknown shader stage", name)
	}
	source, err := s.shaders.read(name)
	if err != nil {
		return nil, err
	}
	p := s.ctx.CreateProgram(stage, source)
	if !p.Valid() {
		return nil, fmt.Errorf("%s: compilation failed", name)
	}
	return p, nil
}

// reload recompiles one shader file and swaps it into its pipeline. A
// program that fails to compile leaves the previous one in place.
func (s *scene) reload(name string) {
	old, ok := s.programs[name]
	if !ok {
		return
	}
	p, err := s.compile(name)
	if err != nil {
		slog.Warn("shader reload failed", "shader", name, "error", err)
		return
	}
	for _, pl := range []*lofx.Pipeline{s.geometry, s.compose} {
		if pl.FindStage(old.Stages()) == old {
			pl.AddStage(p)
		}
	}
	old.Release()
	s.programs[name] = p
	slog.Info("shader reloaded", "shader", name)

	// Uniform values live in the program object.
	s.sendConstants()
}

func (s *scene) frame() {
	s.angle += 0.01
	model := mgl32.HomogRotate3DY(s.angle).Mul4(mgl32.HomogRotate3DX(s.angle * 0.5))
	s.geometry.Send(lofx.Mat4("model", model))

	viewport := image.Rect(0, 0, s.width, s.height)

	s.ctx.Clear(s.gbuffer, lofx.DefaultClearProperties())
	s.ctx.Draw(&lofx.DrawProperties{
		Target:     s.gbuffer,
		Pipeline:   s.geometry,
		Attributes: s.cube,
		Indices:    lofx.IndexRef{Accessor: s.cubeIndices},
		Graphics:   lofx.DefaultGraphicsProperties(),
		Viewport:   viewport,
	})

	s.ctx.Clear(nil, lofx.ClearProperties{
		Color:  mgl32.Vec4{0.05, 0.05, 0.08, 1},
		Depth:  1,
		Planes: lofx.PlaneColor | lofx.PlaneDepth,
	})
	graphics := lofx.DefaultGraphicsProperties()
	graphics.DepthTest = false
	s.ctx.Draw(&lofx.DrawProperties{
		Pipeline:   s.compose,
		Attributes: s.quad,
		Indices:    lofx.IndexRef{Accessor: s.quadIndices},
		Textures: map[string]*lofx.Texture{
			"albedo":  s.albedo,
			"normals": s.normals,
		},
		Graphics: graphics,
		Viewport: viewport,
	})
}

// screenshot writes the albedo target to path as PNG.
func (s *scene) screenshot(path string) error {
	img := s.gbuffer.ReadImage(0, s.width, s.height)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (s *scene) release() {
	s.gbuffer.Release()
	s.depth.Release()
	s.albedo.Release()
	s.normals.Release()
	s.sampler.Release()
	s.geometry.Release()
	s.compose.Release()
	for _, p := range s.programs {
		p.Release()
	}
	for _, b := range s.buffers {
		b.Release()
	}
}

// cubeMesh returns a unit cube as interleaved position/normal vertices, four
// per face, and counter-clockwise triangles.
func cubeMesh() ([]float32, []uint16) {
	// normal, then two edges whose cross product is the normal
	faces := [6][3]mgl32.Vec3{
		{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
		{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
		{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
		{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	vertices := make([]float32, 0, 24*6)
	indices := make([]uint16, 0, 36)
	for i, f := range faces {
		n, u, v := f[0], f[1], f[2]
		for _, c := range corners {
			p := n.Add(u.Mul(c[0])).Add(v.Mul(c[1])).Mul(0.5)
			vertices = append(vertices, p[0], p[1], p[2], n[0], n[1], n[2])
		}
		base := uint16(i * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}
