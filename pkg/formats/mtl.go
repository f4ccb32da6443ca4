package formats

import (
	"fmt"
	"io"
	"strings"
)

// MTL holds what is read from a material library.
type MTL struct {
	// DiffuseMap is the filename of the first map_Kd statement, or empty.
	DiffuseMap string
}

// HasDiffuseMap reports whether a map_Kd statement was found.
func (m *MTL) HasDiffuseMap() bool {
	return m.DiffuseMap != ""
}

// ParseMTL reads a material library from r.
// Only the first map_Kd is honored; scanning stops there.
func ParseMTL(r io.Reader) (*MTL, error) {
	mtl := &MTL{}

	err := readLines(r, func(_ int, line string) error {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "map_Kd" {
			return nil
		}
		mtl.DiffuseMap = fields[1]
		return errStopLines
	})
	if err != nil {
		return nil, fmt.Errorf("reading MTL: %w", err)
	}

	return mtl, nil
}
