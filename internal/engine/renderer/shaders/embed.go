// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms clip-space positions by uModelViewMatrix
// and forwards the per-vertex color.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader writes the interpolated vertex color.
//
//go:embed scene.frag
var SceneFragmentShader string
