// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader transforms mesh vertices and passes the normal on as a
// color.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader colors fragments by their interpolated normal.
//
//go:embed mesh.frag
var MeshFragmentShader string
