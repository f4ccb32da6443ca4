package formats

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/objview/pkg/math"
)

// OBJ format errors.
var (
	ErrMalformedNumber     = errors.New("malformed number")
	ErrMalformedIndex      = errors.New("malformed face index")
	ErrUnsupportedTopology = errors.New("unsupported face topology: expected a triangle")
)

// Corner is one vertex reference of a face. Indices are zero-based.
type Corner struct {
	Position int
	TexCoord int
	Normal   int
}

// OBJ holds the raw records of a parsed OBJ file in file order.
type OBJ struct {
	Positions []math.Vec3
	TexCoords []math.Vec2
	Normals   []math.Vec3
	Corners   []Corner // three per triangle

	// MaterialLib is the filename from the first mtllib statement, verbatim.
	MaterialLib string
}

// TriangleCount returns the number of faces read.
func (o *OBJ) TriangleCount() int {
	return len(o.Corners) / 3
}

// ParseOBJ reads an OBJ model from r.
// Any malformed statement aborts the parse; nothing partial is returned.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}

	err := readLines(r, func(lineNo int, raw string) error {
		line := strings.TrimSpace(raw)
		if line == "" || line[0] == '#' {
			return nil
		}
		if err := obj.parseLine(line); err != nil {
			return fmt.Errorf("line %d %q: %w", lineNo, line, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return obj, nil
}

func (o *OBJ) parseLine(line string) error {
	fields := strings.Fields(line)

	switch fields[0] {
	case "v":
		v, err := parseVec3(fields)
		if err != nil {
			return err
		}
		o.Positions = append(o.Positions, v)

	case "vn":
		v, err := parseVec3(fields)
		if err != nil {
			return err
		}
		o.Normals = append(o.Normals, v)

	case "vt":
		v, err := parseVec2(fields)
		if err != nil {
			return err
		}
		o.TexCoords = append(o.TexCoords, v)

	case "f":
		if len(fields) != 4 {
			return fmt.Errorf("%w: got %d corners", ErrUnsupportedTopology, len(fields)-1)
		}
		var tri [3]Corner
		for i, tok := range fields[1:] {
			c, err := parseCorner(tok)
			if err != nil {
				return err
			}
			tri[i] = c
		}
		o.Corners = append(o.Corners, tri[:]...)

	case "mtllib":
		if len(fields) > 1 && o.MaterialLib == "" {
			o.MaterialLib = fields[1]
		}
	}

	return nil
}

// parseVec3 reads the three components following the tag.
func parseVec3(fields []string) (math.Vec3, error) {
	var c [3]float32
	if err := parseFloats(fields, c[:]); err != nil {
		return math.Vec3{}, err
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

// parseVec2 reads the two components following the tag.
func parseVec2(fields []string) (math.Vec2, error) {
	var c [2]float32
	if err := parseFloats(fields, c[:]); err != nil {
		return math.Vec2{}, err
	}
	return math.Vec2{X: c[0], Y: c[1]}, nil
}

// parseFloats fills dst from fields[1:]. Extra trailing fields are ignored.
func parseFloats(fields []string, dst []float32) error {
	if len(fields)-1 < len(dst) {
		return fmt.Errorf("%w: expected %d components, got %d", ErrMalformedNumber, len(dst), len(fields)-1)
	}
	for i := range dst {
		f, err := strconv.ParseFloat(fields[i+1], 32)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedNumber, fields[i+1])
		}
		dst[i] = float32(f)
	}
	return nil
}

// parseCorner converts a "p/t/n" token to zero-based indices.
func parseCorner(tok string) (Corner, error) {
	parts := strings.Split(tok, "/")
	if len(parts) != 3 {
		return Corner{}, fmt.Errorf("%w: %q needs position/uv/normal", ErrMalformedIndex, tok)
	}

	var idx [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return Corner{}, fmt.Errorf("%w: %q in %q", ErrMalformedIndex, p, tok)
		}
		idx[i] = n - 1
	}

	return Corner{Position: idx[0], TexCoord: idx[1], Normal: idx[2]}, nil
}
