package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/encoding"
	"github.com/Faultbox/objview/pkg/formats"
)

// ModelPath returns the path of model index: <baseDir>/<prefix><index>.obj.
func ModelPath(baseDir, prefix string, index int) string {
	return filepath.Join(baseDir, prefix+strconv.Itoa(index)+".obj")
}

// Loader loads numbered models from one directory.
// It holds no per-load state, so concurrent LoadModel calls are independent.
type Loader struct {
	BaseDir string
	Prefix  string
	Options BuildOptions
	Fetcher texture.Fetcher

	// Charset decodes mtllib and map_Kd names; empty means UTF-8.
	Charset string
}

// NewLoader creates a loader for models in baseDir.
func NewLoader(baseDir, prefix string, opts BuildOptions, fetcher texture.Fetcher) *Loader {
	return &Loader{
		BaseDir: baseDir,
		Prefix:  prefix,
		Options: opts,
		Fetcher: fetcher,
	}
}

// LoadModel loads model index from the base directory.
// Geometry errors abort the load; the diffuse texture is fetched in the
// background and the returned model shows the placeholder until it arrives.
func (l *Loader) LoadModel(index int) (*Model, error) {
	return l.load(index, ModelPath(l.BaseDir, l.Prefix, index), l.BaseDir)
}

// LoadFile loads an OBJ file by path, resolving its material next to it.
func (l *Loader) LoadFile(path string) (*Model, error) {
	return l.load(0, path, filepath.Dir(path))
}

func (l *Loader) load(index int, path, baseDir string) (*Model, error) {
	start := time.Now()

	mesh, libName, err := l.loadMesh(path)
	if err != nil {
		logger.Error("model load failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	texRef, err := l.resolveMaterial(baseDir, libName)
	if err != nil {
		logger.Error("model load failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	var diffuse *texture.Handle
	if texRef.IsPlaceholder() {
		logger.Warn("no diffuse map, using placeholder texture",
			zap.String("path", path),
			zap.String("material", libName))
		diffuse = texture.Resolved()
	} else {
		diffuse = texture.Acquire(l.Fetcher, texRef.Path())
	}

	logger.Info("model loaded",
		zap.Int("index", index),
		zap.String("path", path),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.String("texture", texRef.Path()),
		zap.Duration("elapsed", time.Since(start)))

	return &Model{
		Index:   index,
		Path:    path,
		Mesh:    mesh,
		Texture: texRef,
		Diffuse: diffuse,
	}, nil
}

// resolveMaterial decodes names in the loader's charset around ResolveMaterial.
func (l *Loader) resolveMaterial(baseDir, libName string) (TextureRef, error) {
	libName, err := encoding.DecodeName(libName, l.Charset)
	if err != nil {
		return TextureRef{}, err
	}
	ref, err := ResolveMaterial(baseDir, libName)
	if err != nil {
		return TextureRef{}, err
	}
	ref.FileName, err = encoding.DecodeName(ref.FileName, l.Charset)
	return ref, err
}

// loadMesh parses and expands the OBJ at path, returning its mtllib name.
func (l *Loader) loadMesh(path string) (*Mesh, string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	obj, err := formats.ParseOBJ(f)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", path, err)
	}

	logger.Debug("OBJ stats",
		zap.String("path", path),
		zap.Int("positions", len(obj.Positions)),
		zap.Int("normals", len(obj.Normals)),
		zap.Int("uvs", len(obj.TexCoords)),
		zap.Int("corners", len(obj.Corners)))

	mesh, err := BuildMesh(obj, l.Options)
	if err != nil {
		return nil, "", fmt.Errorf("building mesh from %s: %w", path, err)
	}

	return mesh, obj.MaterialLib, nil
}
