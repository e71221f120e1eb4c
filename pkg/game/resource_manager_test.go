package game

import (
	"os"
	"testing"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context before running tests
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// countOpaque counts texels with non-zero alpha.
func countOpaque(t *testing.T, kind types.SpriteKind, variant int) int {
	t.Helper()
	art, ok := config.GetSpriteArt(kind)
	if !ok {
		t.Fatalf("missing art for %s", kind)
	}
	img, err := RasterizeArt(art, 0, variant)
	if err != nil {
		t.Fatalf("RasterizeArt() error = %v", err)
	}

	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

// TestRasterizeArt tests that the image matches the art grid.
func TestRasterizeArt(t *testing.T) {
	art, _ := config.GetSpriteArt(types.SpriteShip)
	img, err := RasterizeArt(art, 0, 0)
	if err != nil {
		t.Fatalf("RasterizeArt() error = %v", err)
	}

	w, h := config.SpriteSize(types.SpriteShip)
	if img.Bounds().Dx()*int(config.PixelScale) != int(w) || img.Bounds().Dy()*int(config.PixelScale) != int(h) {
		t.Errorf("image %v does not match sprite size %vx%v", img.Bounds(), w, h)
	}

	// 第一行只有中间一个像素
	if img.RGBAAt(0, 0).A != 0 || img.RGBAAt(6, 0).A == 0 {
		t.Error("texels do not follow the art")
	}
}

// TestRasterizeArtErrors tests invalid frame handling.
func TestRasterizeArtErrors(t *testing.T) {
	art, _ := config.GetSpriteArt(types.SpriteMissile)

	if _, err := RasterizeArt(art, len(art.Frames), 0); err == nil {
		t.Error("expected error for out-of-range frame")
	}
	if _, err := RasterizeArt(art, -1, 0); err == nil {
		t.Error("expected error for negative frame")
	}
	if _, err := RasterizeArt(config.SpriteArt{Frames: [][]string{{}}}, 0, 0); err == nil {
		t.Error("expected error for empty frame")
	}
}

// TestShelterDamageVariants tests that damage only ever removes texels.
func TestShelterDamageVariants(t *testing.T) {
	prev := countOpaque(t, types.SpriteShelter, 0)
	for v := 1; v < config.ShelterTextureStates; v++ {
		n := countOpaque(t, types.SpriteShelter, v)
		if n > prev {
			t.Errorf("variant %d has %d texels, more than variant %d (%d)", v, n, v-1, prev)
		}
		if n == 0 {
			t.Errorf("variant %d is fully erased", v)
		}
		prev = n
	}

	if prev >= countOpaque(t, types.SpriteShelter, 0) {
		t.Error("most damaged shelter should have fewer texels than the intact one")
	}
}

// TestLoadSpriteCaching tests that LoadSprite caches images.
func TestLoadSpriteCaching(t *testing.T) {
	rm := NewResourceManager()

	img1, err := rm.LoadSprite(types.SpriteCrab, 0, 0)
	if err != nil {
		t.Fatalf("LoadSprite() error = %v", err)
	}
	img2 := rm.GetSprite(types.SpriteCrab, 0, 0)
	if img1 != img2 {
		t.Error("second request should return the cached image")
	}

	if rm.GetSprite(types.SpriteNone, 0, 0) != nil {
		t.Error("unknown sprite should return nil")
	}
	if rm.Font() == nil {
		t.Error("font face should be available")
	}
}
