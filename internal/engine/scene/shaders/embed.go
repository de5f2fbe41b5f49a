// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms scene meshes and passes world-space
// position, normal and texture coordinates to the fragment stage.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader applies texture or flat color and point lighting.
//
//go:embed scene.frag
var SceneFragmentShader string
