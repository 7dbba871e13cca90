package geometry

import (
	"fmt"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// TriangleMesh is an indexed set of triangles sharing vertices. It is not a
// shape itself: hand Triangles() to a BVH builder or an Arena.
type TriangleMesh struct {
	vertices  []Vertex
	triangles []*Triangle
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Shading       ShadingMode
	TexCoords     []core.Vec2 // Optional, one per vertex
	ImageTexture  *material.ImageTexture
	PerlinTexture *material.PerlinTexture
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices.
// Each group of 3 face indices forms a triangle. With smooth shading, every
// vertex normal is the normalized sum of the face normals around it.
func NewTriangleMesh(positions []core.Vec3, faces []int, mat material.Material, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}
	if options == nil {
		options = &TriangleMeshOptions{}
	}
	if options.TexCoords != nil && len(options.TexCoords) != len(positions) {
		return nil, fmt.Errorf("got %d texture coordinates for %d vertices", len(options.TexCoords), len(positions))
	}

	for i, index := range faces {
		if index < 0 || index >= len(positions) {
			return nil, fmt.Errorf("face index %d at position %d out of range [0,%d)", index, i, len(positions))
		}
	}

	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		vertices[i].Position = p
	}

	if options.Shading == ShadingSmooth {
		for f := 0; f < len(faces); f += 3 {
			a, b, c := positions[faces[f]], positions[faces[f+1]], positions[faces[f+2]]
			n := b.Subtract(a).Cross(c.Subtract(a)).Normalize()
			for _, index := range faces[f : f+3] {
				vertices[index].Normal = vertices[index].Normal.Add(n)
			}
		}
		for i := range vertices {
			vertices[i].Normal = vertices[i].Normal.Normalize()
		}
	}

	mesh := &TriangleMesh{vertices: vertices}
	for f := 0; f < len(faces); f += 3 {
		i0, i1, i2 := faces[f], faces[f+1], faces[f+2]
		tri := NewTriangleFromVertices(vertices[i0], vertices[i1], vertices[i2], options.Shading, mat)
		if options.TexCoords != nil {
			tri.TexCoords = [3]core.Vec2{options.TexCoords[i0], options.TexCoords[i1], options.TexCoords[i2]}
		}
		tri.ImageTexture = options.ImageTexture
		tri.PerlinTexture = options.PerlinTexture
		mesh.triangles = append(mesh.triangles, tri)
	}

	return mesh, nil
}

// Triangles returns the mesh triangles as shapes
func (tm *TriangleMesh) Triangles() []Shape {
	shapes := make([]Shape, len(tm.triangles))
	for i, t := range tm.triangles {
		shapes[i] = t
	}
	return shapes
}

// TriangleCount returns the number of triangles
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// Vertices returns the shared vertices with their accumulated normals
func (tm *TriangleMesh) Vertices() []Vertex {
	return tm.vertices
}
