package scene

import (
	"math"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/geometry"
	"github.com/df07/whitted-raytracer/pkg/material"
)

// Mesh helpers build geometry around the origin; placement is left to the
// instance that references the mesh.

// createBoxMesh creates a triangle mesh representing an axis-aligned box
func createBoxMesh(size core.Vec3, mat material.Material) (*geometry.TriangleMesh, error) {
	halfSize := size.Multiply(0.5)
	vertices := []core.Vec3{
		core.NewVec3(-halfSize.X, -halfSize.Y, -halfSize.Z), // 0: left-bottom-back
		core.NewVec3(+halfSize.X, -halfSize.Y, -halfSize.Z), // 1: right-bottom-back
		core.NewVec3(+halfSize.X, +halfSize.Y, -halfSize.Z), // 2: right-top-back
		core.NewVec3(-halfSize.X, +halfSize.Y, -halfSize.Z), // 3: left-top-back
		core.NewVec3(-halfSize.X, -halfSize.Y, +halfSize.Z), // 4: left-bottom-front
		core.NewVec3(+halfSize.X, -halfSize.Y, +halfSize.Z), // 5: right-bottom-front
		core.NewVec3(+halfSize.X, +halfSize.Y, +halfSize.Z), // 6: right-top-front
		core.NewVec3(-halfSize.X, +halfSize.Y, +halfSize.Z), // 7: left-top-front
	}

	// Define the 12 triangles (2 per face, 6 faces), wound outward
	faces := []int{
		// Back face (Z-)
		0, 2, 1, 0, 3, 2,
		// Front face (Z+)
		4, 5, 6, 4, 6, 7,
		// Left face (X-)
		0, 4, 7, 0, 7, 3,
		// Right face (X+)
		1, 2, 6, 1, 6, 5,
		// Bottom face (Y-)
		0, 1, 5, 0, 5, 4,
		// Top face (Y+)
		3, 7, 6, 3, 6, 2,
	}

	return geometry.NewTriangleMesh(vertices, faces, mat, nil)
}

// createPyramidMesh creates a square pyramid centered on the origin
func createPyramidMesh(baseSize, height float64, mat material.Material) (*geometry.TriangleMesh, error) {
	halfBase := baseSize * 0.5
	halfHeight := height * 0.5

	vertices := []core.Vec3{
		core.NewVec3(-halfBase, -halfHeight, -halfBase), // 0: left-back
		core.NewVec3(+halfBase, -halfHeight, -halfBase), // 1: right-back
		core.NewVec3(+halfBase, -halfHeight, +halfBase), // 2: right-front
		core.NewVec3(-halfBase, -halfHeight, +halfBase), // 3: left-front
		core.NewVec3(0, +halfHeight, 0),                 // 4: apex
	}

	faces := []int{
		// Base (2 triangles)
		0, 1, 2, 0, 2, 3,
		// Side faces
		0, 4, 1, // back face
		1, 4, 2, // right face
		2, 4, 3, // front face
		3, 4, 0, // left face
	}

	return geometry.NewTriangleMesh(vertices, faces, mat, nil)
}

// createIcosahedronMesh creates an icosahedron; with smooth shading it reads
// as a sphere
func createIcosahedronMesh(radius float64, mat material.Material, options *geometry.TriangleMeshOptions) (*geometry.TriangleMesh, error) {
	phi := (1 + math.Sqrt(5)) / 2
	scale := radius / math.Sqrt(1+phi*phi)

	vertices := []core.Vec3{
		core.NewVec3(-1, phi, 0).Multiply(scale),  // 0
		core.NewVec3(1, phi, 0).Multiply(scale),   // 1
		core.NewVec3(-1, -phi, 0).Multiply(scale), // 2
		core.NewVec3(1, -phi, 0).Multiply(scale),  // 3
		core.NewVec3(0, -1, phi).Multiply(scale),  // 4
		core.NewVec3(0, 1, phi).Multiply(scale),   // 5
		core.NewVec3(0, -1, -phi).Multiply(scale), // 6
		core.NewVec3(0, 1, -phi).Multiply(scale),  // 7
		core.NewVec3(phi, 0, -1).Multiply(scale),  // 8
		core.NewVec3(phi, 0, 1).Multiply(scale),   // 9
		core.NewVec3(-phi, 0, -1).Multiply(scale), // 10
		core.NewVec3(-phi, 0, 1).Multiply(scale),  // 11
	}

	// 20 triangular faces
	faces := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return geometry.NewTriangleMesh(vertices, faces, mat, options)
}

// createGroundQuad creates a horizontal square of two triangles centered at
// center, with normal +Y and texture coordinates spanning [0,1]²
func createGroundQuad(center core.Vec3, size float64, mat material.Material, texture *material.ImageTexture) (*geometry.TriangleMesh, error) {
	h := size / 2
	vertices := []core.Vec3{
		center.Add(core.NewVec3(-h, 0, -h)),
		center.Add(core.NewVec3(h, 0, -h)),
		center.Add(core.NewVec3(h, 0, h)),
		center.Add(core.NewVec3(-h, 0, h)),
	}
	options := &geometry.TriangleMeshOptions{
		TexCoords:    []core.Vec2{core.NewVec2(0, 1), core.NewVec2(1, 1), core.NewVec2(1, 0), core.NewVec2(0, 0)},
		ImageTexture: texture,
	}
	// u × v = (+X) × (+Z) would point down, so wind the other way
	return geometry.NewTriangleMesh(vertices, []int{0, 2, 1, 0, 3, 2}, mat, options)
}
