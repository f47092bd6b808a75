package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/helios/internal/engine/render"
	"github.com/Faultbox/helios/pkg/math"
)

// LoadOBJ reads a Wavefront OBJ file into a flat triangle list. Faces
// with more than three corners are fan-triangulated; indices may be
// 1-based or negative (counting back from the elements parsed so far).
// Corners without a normal fall back to the flat face normal; missing
// texture coordinates default to (0,0).
func LoadOBJ(path string) ([]render.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model %s: %w", path, err)
	}
	defer f.Close()

	vertices, err := decodeOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model %s: %w", path, err)
	}
	return vertices, nil
}

func decodeOBJ(r io.Reader) ([]render.Vertex, error) {
	var (
		positions []math.Vec3
		normals   []math.Vec3
		texCoords []math.Vec2
		out       []render.Vertex
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "vt":
			t, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: texture coordinate: %w", lineNo, err)
			}
			texCoords = append(texCoords, t)
		case "f":
			tris, err := parseFace(fields[1:], positions, normals, texCoords)
			if err != nil {
				return nil, fmt.Errorf("line %d: face: %w", lineNo, err)
			}
			out = append(out, tris...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// parseFace resolves one face line into triangles, fanning polygons
// around the first corner.
func parseFace(fields []string, positions, normals []math.Vec3, texCoords []math.Vec2) ([]render.Vertex, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face has %d corners, need at least 3", len(fields))
	}

	corners := make([]render.Vertex, 0, len(fields))
	missingNormal := false
	for _, field := range fields {
		parts := strings.Split(field, "/")

		pi, err := resolveIndex(parts[0], len(positions))
		if err != nil {
			return nil, fmt.Errorf("vertex index %q: %w", parts[0], err)
		}
		corner := render.Vertex{Position: positions[pi]}

		if len(parts) > 1 && parts[1] != "" {
			ti, err := resolveIndex(parts[1], len(texCoords))
			if err != nil {
				return nil, fmt.Errorf("texture index %q: %w", parts[1], err)
			}
			corner.TexCoords = texCoords[ti]
		}

		if len(parts) > 2 && parts[2] != "" {
			ni, err := resolveIndex(parts[2], len(normals))
			if err != nil {
				return nil, fmt.Errorf("normal index %q: %w", parts[2], err)
			}
			corner.Normal = normals[ni]
		} else {
			missingNormal = true
		}

		corners = append(corners, corner)
	}

	if missingNormal {
		flat := faceNormal(corners)
		for i := range corners {
			if corners[i].Normal == (math.Vec3{}) {
				corners[i].Normal = flat
			}
		}
	}

	out := make([]render.Vertex, 0, (len(corners)-2)*3)
	for i := 1; i+1 < len(corners); i++ {
		out = append(out, corners[0], corners[i], corners[i+1])
	}
	return out, nil
}

// resolveIndex converts a 1-based or negative OBJ index into a slice
// offset and bounds-checks it.
func resolveIndex(raw string, count int) (int, error) {
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if val == 0 {
		return 0, fmt.Errorf("index must not be 0")
	}

	idx := val - 1
	if val < 0 {
		idx = count + val
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("index %d out of range (%d elements)", val, count)
	}
	return idx, nil
}

func faceNormal(corners []render.Vertex) math.Vec3 {
	a := corners[0].Position
	b := corners[1].Position
	c := corners[2].Position
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

func parseVec3(fields []string) (math.Vec3, error) {
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var out [3]float32
	for i := 0; i < 3; i++ {
		val, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec3{}, err
		}
		out[i] = float32(val)
	}
	return math.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

func parseVec2(fields []string) (math.Vec2, error) {
	if len(fields) < 2 {
		return math.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	var out [2]float32
	for i := 0; i < 2; i++ {
		val, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec2{}, err
		}
		out[i] = float32(val)
	}
	return math.Vec2{X: out[0], Y: out[1]}, nil
}
