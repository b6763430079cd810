// Package lofx is a resource and draw layer over OpenGL 4.5.
//
// # Overview
//
// lofx turns declarative descriptions of GPU resources and draws into the
// exact, ordered sequence of GL calls they need. It targets the 4.5 core
// profile only: immutable buffer and texture storage, separable shader
// programs combined in program pipelines, and DSA object creation.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/lofx"
//		_ "github.com/gogpu/lofx/backend/glfw"
//	)
//
//	ctx, err := lofx.Init(lofx.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Terminate()
//
//	// Upload interleaved position/color vertices and 16-bit indices
//	data := lofx.Bytes(vertices) // []float32
//	vbo := ctx.CreateBuffer(lofx.BufferVertex, len(data))
//	vbo.Send(data)
//	pack := lofx.BuildInterleavedAttributePack(
//		lofx.CreateAccessor(vbo, lofx.AttribFloat, 3, 3),
//		lofx.CreateAccessor(vbo, lofx.AttribFloat, 3, 3),
//	)
//
//	// One program per stage
//	pipeline := ctx.CreatePipeline(
//		ctx.CreateProgram(lofx.StageVertex, vertexSource),
//		ctx.CreateProgram(lofx.StageFragment, fragmentSource),
//	)
//
//	ctx.Loop(func() {
//		ctx.Clear(nil, lofx.DefaultClearProperties())
//		ctx.Draw(&lofx.DrawProperties{
//			Pipeline:   pipeline,
//			Attributes: pack,
//			Indices:    lofx.IndexRef{Accessor: indices},
//			Graphics:   lofx.DefaultGraphicsProperties(),
//		})
//	})
//
// # Resources
//
// Every resource is an owning handle created by a Context: Buffer, Texture,
// TextureSampler, Renderbuffer, Framebuffer, Program and Pipeline. Release
// deletes the GL object and is safe to call more than once, even after GL
// has handed the same name to a newer object.
//
// BufferView and BufferAccessor describe typed ranges of a buffer. An
// AttributePack maps vertex attribute slots to accessors and is built flat,
// interleaved or sequential.
//
// # Diagnostics
//
// Resource and draw operations never return errors. Problems are reported
// through the debug callback (WithDebugCallback) and the package logger
// (SetLogger) with a level and a source:
//   - Trace: initialization and version negotiation
//   - Warn: unknown uniform, missing renderbuffer, attachment overflow
//   - Error: compile or link failure, incomplete framebuffer, GL errors
//
// # Threading
//
// A Context and its resources belong to the goroutine that created the GL
// context, which must stay locked to its OS thread.
package lofx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
