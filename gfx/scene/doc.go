// Package scene holds the solar-system content drawn with softgl: an orbit
// camera with timed warps, the sun and its planets, their procedural shaders,
// a star backdrop and orbit paths.
//
// Typical use:
//
//	sys := scene.DefaultSystem()
//	cam := scene.NewCamera(softgl.V3(0, 10, 20), softgl.Vec3{}, softgl.V3(0, 1, 0))
//	r := scene.NewRenderer(sys, cam, mesh.UVSphere(24, 32))
//	stats := r.Frame(fb, dt)
package scene
