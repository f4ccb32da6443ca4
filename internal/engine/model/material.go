package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Faultbox/objview/pkg/formats"
)

// ResolveMaterial reads the material library libName in baseDir and returns
// its diffuse texture. A missing map_Kd, or an empty libName, yields the
// placeholder reference rather than an error.
func ResolveMaterial(baseDir, libName string) (TextureRef, error) {
	if libName == "" {
		return TextureRef{BaseDir: baseDir}, nil
	}

	ref := MaterialRef{BaseDir: baseDir, LibName: libName}
	f, err := os.Open(ref.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return TextureRef{}, fmt.Errorf("%w: %s", ErrMaterialFileNotFound, ref.Path())
		}
		return TextureRef{}, fmt.Errorf("opening material %s: %w", ref.Path(), err)
	}
	defer f.Close()

	mtl, err := formats.ParseMTL(f)
	if err != nil {
		return TextureRef{}, fmt.Errorf("parsing material %s: %w", ref.Path(), err)
	}

	if !mtl.HasDiffuseMap() {
		return TextureRef{BaseDir: baseDir}, nil
	}
	return TextureRef{BaseDir: baseDir, FileName: mtl.DiffuseMap}, nil
}
