package render

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/opd-ai/woosh/pkg/config"
)

func TestSpritePaths(t *testing.T) {
	paths := SpritePaths("assets", config.ImagesConfig{
		Background: "images/space.png",
		LeftShip:   "images/yellow.png",
	})

	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %v", paths)
	}
	if paths[Background] != filepath.Join("assets", "images", "space.png") {
		t.Errorf("background path = %q", paths[Background])
	}
	if _, ok := paths[RightShip]; ok {
		t.Error("unconfigured sprite should be left out")
	}
}

func TestLoadSprite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tall.png")
	if err := imaging.Save(image.NewNRGBA(image.Rect(0, 0, 4, 10)), path); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		sprite Sprite
		w, h   int
	}{
		{Background, 4, 10},
		{LeftShip, 10, 4},
		{RightShip, 10, 4},
	}
	for _, tt := range tests {
		t.Run(tt.sprite.String(), func(t *testing.T) {
			img, err := LoadSprite(tt.sprite, path)
			if err != nil {
				t.Fatalf("LoadSprite: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("size %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
		})
	}

	if _, err := LoadSprite(LeftShip, filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
