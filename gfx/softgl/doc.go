// Package softgl is a small CPU rasterizer: vector and matrix math, a vertex
// transform stage, a barycentric triangle filler with a depth test, and the
// framebuffer it draws into.
//
// Pipeline (fixed):
//
//	Mesh + Uniforms → TransformVertex → Triangle → Framebuffer.Write.
//
// Shading is pluggable through the Shader interface. Triangle and DrawMesh are
// generic over the shader type, so a concrete shader is called directly from the
// per-pixel loop.
//
// Bad geometry never fails a draw. Degenerate triangles, out-of-range indices,
// non-finite or negative depths and vertices with a near-zero w are dropped
// silently at the step that notices them.
//
// A Framebuffer is not safe for concurrent use. Draw calls run one at a time.
package softgl
