package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestResolveMaterial(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "foo.mtl", []byte("newmtl wall\nKd 1 1 1\nmap_Kd wall.png\nmap_Kd other.png\n"))

	ref, err := ResolveMaterial(dir, "foo.mtl")
	if err != nil {
		t.Fatalf("ResolveMaterial failed: %v", err)
	}
	if ref.IsPlaceholder() {
		t.Fatal("expected a diffuse map")
	}
	if want := filepath.Join(dir, "wall.png"); ref.Path() != want {
		t.Errorf("expected %s, got %s", want, ref.Path())
	}
}

func TestResolveMaterial_NoDiffuseMap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.mtl", []byte("newmtl plain\nKd 0.8 0.8 0.8\n"))

	ref, err := ResolveMaterial(dir, "plain.mtl")
	if err != nil {
		t.Fatalf("missing map_Kd should not fail: %v", err)
	}
	if !ref.IsPlaceholder() {
		t.Errorf("expected placeholder, got %q", ref.FileName)
	}
	if ref.Path() != "" {
		t.Errorf("placeholder should have no path, got %s", ref.Path())
	}
}

func TestResolveMaterial_NoLibrary(t *testing.T) {
	ref, err := ResolveMaterial(t.TempDir(), "")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !ref.IsPlaceholder() {
		t.Error("expected placeholder when the model names no material library")
	}
}

func TestResolveMaterial_FileMissing(t *testing.T) {
	_, err := ResolveMaterial(t.TempDir(), "missing.mtl")
	if !errors.Is(err, ErrMaterialFileNotFound) {
		t.Errorf("expected ErrMaterialFileNotFound, got %v", err)
	}
}

func TestMaterialRefPath(t *testing.T) {
	ref := MaterialRef{BaseDir: "/models", LibName: "foo.mtl"}
	if got := ref.Path(); got != filepath.Join("/models", "foo.mtl") {
		t.Errorf("unexpected path %s", got)
	}
}

func TestModelPath(t *testing.T) {
	tests := []struct {
		dir, prefix string
		index       int
		want        string
	}{
		{"/models", "", 1, filepath.Join("/models", "1.obj")},
		{"/models/", "", 12, filepath.Join("/models", "12.obj")},
		{"/models", "tower", 3, filepath.Join("/models", "tower3.obj")},
	}
	for _, tt := range tests {
		if got := ModelPath(tt.dir, tt.prefix, tt.index); got != tt.want {
			t.Errorf("ModelPath(%q, %q, %d) = %s, want %s", tt.dir, tt.prefix, tt.index, got, tt.want)
		}
	}
}
