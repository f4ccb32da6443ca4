// objtool is a CLI utility for inspecting OBJ models and their textures.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/objview/internal/assets"
	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/encoding"
	"github.com/Faultbox/objview/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "check":
		cmdCheck(args)
	case "texture", "tex":
		cmdTexture(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - OBJ model utility

Usage:
  objtool <command> [options]

Commands:
  info <file.obj>                    Show geometry and material information
  check <dir> <index>                Load <dir>/<index>.obj and report the result
  check <file.obj>                   Load one OBJ file and report the result
  texture <dir> <index> <out.webp>   Export the model's diffuse map as WebP
  config [-o file] [-dir d] [-count n]
                                     Write a default objviewer config

Options:
  -synth-uv    Use (0,0) texture coordinates when a model has no vt records
  -charset     Charset of material and texture names (e.g. euc-kr)
  -prefix      Model filename prefix (check, texture)
  -max         Longest side of exported textures (texture)
  -o           Config output path; default is the user config directory (config)
  -v           Verbose logging

Examples:
  objtool info testmodels/1.obj
  objtool check -synth-uv testmodels 2
  objtool texture -max 512 testmodels 1 wall.webp
  objtool config -dir testmodels -count 6`)
}

// options holds the flags shared by every command.
type options struct {
	synth   *bool
	verbose *bool
	charset *string
}

// commonFlags registers the options shared by every command.
func commonFlags(name string) (*flag.FlagSet, options) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs, options{
		synth:   fs.Bool("synth-uv", false, "Use (0,0) texture coordinates when a model has no vt records"),
		verbose: fs.Bool("v", false, "Verbose logging"),
		charset: fs.String("charset", "", "Charset of material and texture names (e.g. euc-kr)"),
	}
}

func initLogger(verbose bool) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
}

func newLoader(dir, prefix string, opts options) *model.Loader {
	fetcher := texture.NewFileFetcher(assets.NewManager(false))
	l := model.NewLoader(dir, prefix, model.BuildOptions{SynthesizeTexCoords: *opts.synth}, fetcher)
	l.Charset = *opts.charset
	return l
}

func cmdInfo(args []string) {
	fs, opts := commonFlags("info")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool info <file.obj>")
		os.Exit(1)
	}
	initLogger(*opts.verbose)
	defer logger.Sync()

	path := fs.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	obj, err := formats.ParseOBJ(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", errorKind(err), err)
		os.Exit(1)
	}

	fmt.Printf("File:      %s\n", path)
	fmt.Printf("Positions: %d\n", len(obj.Positions))
	fmt.Printf("Normals:   %d\n", len(obj.Normals))
	fmt.Printf("UVs:       %d\n", len(obj.TexCoords))
	fmt.Printf("Triangles: %d\n", obj.TriangleCount())
	lib, err := encoding.DecodeName(obj.MaterialLib, *opts.charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Material:  %s\n", valueOr(lib, "(none)"))

	mesh, err := model.BuildMesh(obj, model.BuildOptions{SynthesizeTexCoords: *opts.synth})
	if err != nil {
		fmt.Printf("Mesh:      %s: %v\n", errorKind(err), err)
		os.Exit(1)
	}
	b := mesh.Bounds
	fmt.Printf("Vertices:  %d (limit %d)\n", mesh.VertexCount(), model.MaxVertices-1)
	fmt.Printf("Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

func cmdCheck(args []string) {
	fs, opts := commonFlags("check")
	prefix := fs.String("prefix", "", "Model filename prefix")
	fs.Parse(args)

	var load func() (*model.Model, error)
	if fs.NArg() == 1 && strings.EqualFold(filepath.Ext(fs.Arg(0)), ".obj") {
		path := fs.Arg(0)
		load = func() (*model.Model, error) {
			return newLoader(filepath.Dir(path), "", opts).LoadFile(path)
		}
	} else {
		dir, index := dirAndIndex(fs, "Usage: objtool check <dir> <index> | <file.obj>")
		load = func() (*model.Model, error) {
			return newLoader(dir, *prefix, opts).LoadModel(index)
		}
	}
	initLogger(*opts.verbose)
	defer logger.Sync()

	m, err := load()
	if err != nil {
		fmt.Printf("FAIL %s: %v\n", errorKind(err), err)
		os.Exit(1)
	}

	_, texErr := m.Diffuse.Wait()
	fmt.Printf("OK   %s: %d triangles\n", m.Path, m.Mesh.TriangleCount())
	switch {
	case m.Texture.IsPlaceholder():
		fmt.Println("     texture: placeholder (no diffuse map)")
	case texErr != nil:
		fmt.Printf("     texture: placeholder (%s: %v)\n", errorKind(texErr), texErr)
	default:
		img := m.Diffuse.Image()
		fmt.Printf("     texture: %s %dx%d\n", m.Texture.Path(), img.Width, img.Height)
	}
}

func cmdTexture(args []string) {
	fs, opts := commonFlags("texture")
	prefix := fs.String("prefix", "", "Model filename prefix")
	maxSize := fs.Int("max", config.Default().Textures.ExportMaxSize, "Longest side of the exported texture (0 = original)")
	fs.Parse(args)

	if fs.NArg() < 3 {
		fmt.Fprintln(os.Stderr, "Usage: objtool texture <dir> <index> <out.webp>")
		os.Exit(1)
	}
	dir, index := dirAndIndex(fs, "Usage: objtool texture <dir> <index> <out.webp>")
	initLogger(*opts.verbose)
	defer logger.Sync()

	m, err := newLoader(dir, *prefix, opts).LoadModel(index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", errorKind(err), err)
		os.Exit(1)
	}
	if m.Texture.IsPlaceholder() {
		fmt.Fprintln(os.Stderr, "Error: model has no diffuse map")
		os.Exit(1)
	}

	img, err := m.Diffuse.Wait()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", errorKind(err), err)
		os.Exit(1)
	}
	img = texture.Fit(img, *maxSize)

	outPath := fs.Arg(2)
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outPath, err)
		os.Exit(1)
	}
	if err := texture.EncodeWebP(out, img); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error encoding %s: %v\n", outPath, err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Exported %s (%dx%d) -> %s\n", m.Texture.Path(), img.Width, img.Height, outPath)
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	out := fs.String("o", "", "Output path (default: user config directory)")
	dir := fs.String("dir", "", "Model base directory")
	count := fs.Int("count", 0, "Number of model slots")
	fs.Parse(args)

	path, err := writeConfig(*out, *dir, *count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}

// writeConfig saves the default config with optional overrides and returns
// where it was written. An empty path means the user config directory.
func writeConfig(path, dir string, count int) (string, error) {
	cfg := config.Default()
	if dir != "" {
		cfg.Models.BaseDir = dir
	}
	if count > 0 {
		cfg.Models.Count = count
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	if path == "" {
		if err := cfg.Save(); err != nil {
			return "", err
		}
		return filepath.Join(config.ConfigDir(), "config.yaml"), nil
	}
	if err := cfg.SaveTo(path); err != nil {
		return "", err
	}
	return path, nil
}

func dirAndIndex(fs *flag.FlagSet, usage string) (string, int) {
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	index, err := strconv.Atoi(fs.Arg(1))
	if err != nil || index < 1 {
		fmt.Fprintf(os.Stderr, "Invalid model index: %s\n", fs.Arg(1))
		os.Exit(1)
	}
	return fs.Arg(0), index
}

// errorKind names the failure class of a load error.
func errorKind(err error) string {
	switch {
	case errors.Is(err, model.ErrFileNotFound):
		return "FileNotFound"
	case errors.Is(err, formats.ErrMalformedNumber):
		return "MalformedNumber"
	case errors.Is(err, formats.ErrMalformedIndex):
		return "MalformedIndex"
	case errors.Is(err, formats.ErrUnsupportedTopology):
		return "UnsupportedTopology"
	case errors.Is(err, model.ErrIndexOutOfRange):
		return "IndexOutOfRange"
	case errors.Is(err, model.ErrMeshTooLarge):
		return "MeshTooLarge"
	case errors.Is(err, model.ErrMaterialFileNotFound):
		return "MaterialFileNotFound"
	case errors.Is(err, texture.ErrLoadFailed):
		return "TextureLoadFailed"
	default:
		return "Error"
	}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
