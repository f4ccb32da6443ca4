package formats

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

// longLine is larger than any fixed scanner buffer a reader would pick.
var longLine = strings.Repeat("x", 2<<20)

func TestParseOBJ_LongLines(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"comment", "# " + longLine + "\n"},
		{"unknown tag", "o " + longLine + "\n"},
		{"crlf comment", "#" + longLine + "\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := ParseOBJ(strings.NewReader(tt.prefix + triangleOBJ))
			if err != nil {
				t.Fatalf("ParseOBJ failed: %v", err)
			}
			if obj.TriangleCount() != 1 || obj.MaterialLib != "foo.mtl" {
				t.Errorf("unexpected result: %d triangles, mtllib %q", obj.TriangleCount(), obj.MaterialLib)
			}
		})
	}
}

func TestParseMTL_LongLines(t *testing.T) {
	src := "# " + longLine + "\nnewmtl wall\nmap_Kd wall.png\n"
	mtl, err := ParseMTL(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseMTL failed: %v", err)
	}
	if mtl.DiffuseMap != "wall.png" {
		t.Errorf("DiffuseMap = %q, want wall.png", mtl.DiffuseMap)
	}
}

func TestReadErrorNamesLine(t *testing.T) {
	errDisk := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("v 0 0 0\nv 1 0 0\n"), iotest.ErrReader(errDisk))

	_, err := ParseOBJ(r)
	if !errors.Is(err, errDisk) {
		t.Fatalf("expected the read error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected error to name line 3, got %v", err)
	}
}

func TestReadLinesNumbering(t *testing.T) {
	var got []int
	err := readLines(strings.NewReader("a\n\nb\r\nc"), func(lineNo int, line string) error {
		got = append(got, lineNo)
		return nil
	})
	if err != nil {
		t.Fatalf("readLines failed: %v", err)
	}
	if len(got) != 4 || got[3] != 4 {
		t.Errorf("line numbers = %v, want [1 2 3 4]", got)
	}
}
