package host

import "fmt"

// DenormalizeUVs returns a copy of uvs with every (u, v) pair scaled to
// (u*width, v*height). Host mesh primitives sample images in pixel units.
func DenormalizeUVs(uvs []float32, width, height float32) []float32 {
	out := make([]float32, len(uvs))
	for i := 0; i+1 < len(uvs); i += 2 {
		out[i] = uvs[i] * width
		out[i+1] = uvs[i+1] * height
	}
	if len(uvs)%2 == 1 {
		out[len(uvs)-1] = uvs[len(uvs)-1] * width
	}
	return out
}

// checkMesh panics unless vertices and uvs hold the same even number of
// scalars.
func checkMesh(vertices, uvs int) {
	if vertices != uvs {
		panic(fmt.Sprintf("host: mesh has %d vertex scalars but %d uv scalars", vertices, uvs))
	}
	if vertices%2 != 0 {
		panic(fmt.Sprintf("host: mesh vertex scalar count %d is odd", vertices))
	}
}
