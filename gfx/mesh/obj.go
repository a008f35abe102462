// Package mesh loads triangle meshes for softgl: a Wavefront OBJ subset and a
// procedural UV sphere.
package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"orrery/gfx/softgl"
)

// ErrNoFaces is returned when an OBJ source contains no usable faces.
var ErrNoFaces = errors.New("mesh: no faces")

var (
	defaultNormal   = softgl.V3(0, 1, 0)
	defaultTexCoord = softgl.Vec3{}
)

// Load reads an OBJ file from disk.
func Load(path string) (softgl.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return softgl.Mesh{}, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return softgl.Mesh{}, fmt.Errorf("mesh: %s: %w", path, err)
	}
	return m, nil
}

// Parse reads the v, vn, vt and f directives of an OBJ stream.
//
// Every face corner becomes its own vertex; faces with more than three corners
// are split into a triangle fan. A corner without a normal index gets (0,1,0),
// one without a texcoord index gets (0,0,0), and a position index that does not
// resolve puts the corner at the origin. Numbers that fail to parse read as 0.
// Lines with too few fields and unknown directives are ignored.
func Parse(r io.Reader) (softgl.Mesh, error) {
	var (
		positions []softgl.Vec3
		normals   []softgl.Vec3
		texCoords []softgl.Vec3
		m         softgl.Mesh
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) >= 4 {
				positions = append(positions, parseVec3(fields[1], fields[2], fields[3]))
			}
		case "vn":
			if len(fields) >= 4 {
				normals = append(normals, parseVec3(fields[1], fields[2], fields[3]))
			}
		case "vt":
			if len(fields) >= 3 {
				texCoords = append(texCoords, softgl.V3(parseScalar(fields[1]), parseScalar(fields[2]), 0))
			}
		case "f":
			if len(fields) < 4 {
				continue
			}
			base := len(m.Vertices)
			for _, corner := range fields[1:] {
				m.Vertices = append(m.Vertices, resolveCorner(corner, positions, normals, texCoords))
			}
			for i := 1; i+1 < len(fields)-1; i++ {
				m.Indices = append(m.Indices, base, base+i, base+i+1)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return softgl.Mesh{}, fmt.Errorf("read: %w", err)
	}
	if len(m.Indices) == 0 {
		return softgl.Mesh{}, ErrNoFaces
	}
	return m, nil
}

// resolveCorner turns "p", "p/t", "p//n" or "p/t/n" into a vertex.
func resolveCorner(corner string, positions, normals, texCoords []softgl.Vec3) softgl.Vertex {
	parts := strings.Split(corner, "/")
	v := softgl.Vertex{Normal: defaultNormal, TexCoords: defaultTexCoord}

	if p, ok := lookup(parts[0], positions); ok {
		v.Position = p
	}
	if len(parts) > 1 && parts[1] != "" {
		if t, ok := lookup(parts[1], texCoords); ok {
			v.TexCoords = t
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if n, ok := lookup(parts[2], normals); ok {
			v.Normal = n
		}
	}
	return v
}

// lookup resolves a 1-based OBJ index. Negative indices count back from the
// most recent element.
func lookup(s string, list []softgl.Vec3) (softgl.Vec3, bool) {
	i, err := strconv.Atoi(s)
	if err != nil || i == 0 {
		return softgl.Vec3{}, false
	}
	if i < 0 {
		i = len(list) + i
	} else {
		i--
	}
	if i < 0 || i >= len(list) {
		return softgl.Vec3{}, false
	}
	return list[i], true
}

func parseVec3(x, y, z string) softgl.Vec3 {
	return softgl.V3(parseScalar(x), parseScalar(y), parseScalar(z))
}

func parseScalar(s string) softgl.Scalar {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0
	}
	return softgl.Scalar(f)
}
