package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"go-pathtracer"}, args...))
	return out.String(), err
}

func TestListScenes(t *testing.T) {
	out, err := runApp(t, "list-scenes")
	if err != nil {
		t.Fatalf("list-scenes failed: %v", err)
	}
	for _, name := range scene.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("Expected scene %q in listing:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "Description") {
		t.Errorf("Expected table header in listing:\n%s", out)
	}
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name   string
		scene  string
		output string
	}{
		{"png", "ground-metal", "frame.png"},
		{"bmp", "quads", "frame.bmp"},
		{"tiff", "cornell-box", "frame.tiff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.output)
			_, err := runApp(t, "render",
				"--width", "16", "--height", "8", "--spp", "2", "--depth", "3",
				"--workers", "2", "--tile-size", "4", "--texture", "",
				"-o", path, tt.scene)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}

			image, err := loaders.LoadImage(path)
			if err != nil {
				t.Fatalf("Failed to read rendered frame: %v", err)
			}
			if image.Width != 16 || image.Height != 8 {
				t.Errorf("Expected 16x8 frame, got %dx%d", image.Width, image.Height)
			}
		})
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"missing scene", []string{"render", "-o", filepath.Join(dir, "a.png")}},
		{"unknown scene", []string{"render", "-o", filepath.Join(dir, "b.png"), "no-such-scene"}},
		{"unsupported output", []string{"render", "--width", "4", "-o", filepath.Join(dir, "c.gif"), "ground-metal"}},
		{"negative tile size", []string{"render", "--width", "4", "--tile-size", "-1", "-o", filepath.Join(dir, "d.png"), "ground-metal"}},
		{"zero exposure", []string{"render", "--width", "4", "--exposure", "0", "-o", filepath.Join(dir, "e.png"), "ground-metal"}},
		{"negative gamma", []string{"render", "--width", "4", "--gamma", "-2", "-o", filepath.Join(dir, "f.png"), "ground-metal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runApp(t, tt.args...); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestInfoCommand(t *testing.T) {
	out, err := runApp(t, "info")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	if !strings.Contains(out, "Default workers") {
		t.Errorf("Expected worker row in info output:\n%s", out)
	}
}
