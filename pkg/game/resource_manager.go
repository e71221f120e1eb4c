package game

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// spriteKey identifies one cached sprite image: kind, animation frame and damage variant.
type spriteKey struct {
	kind    types.SpriteKind
	frame   int
	variant int
}

// ResourceManager is responsible for centralized management of game images and fonts.
// Every sprite is rasterized from the pixel art in pkg/config the first time it is
// requested and cached afterwards, so no image files ship with the game.
//
// The ResourceManager implements the following key features:
//   - Sprite rasterization and caching (one image per frame and damage variant)
//   - Shelter damage variants derived from the intact shelter art
//   - Star field layers for the scrolling background
//   - A shared bitmap font face for HUD and menu text
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager()
//	if err := rm.Preload(); err != nil {
//	    log.Printf("Failed to preload sprites: %v", err)
//	}
//	img := rm.GetSprite(types.SpriteShip, 0, 0)
type ResourceManager struct {
	spriteCache map[spriteKey]*ebiten.Image // Cache for rasterized sprites
	starLayers  []*ebiten.Image             // Background layers, far to near
	fontFace    *text.GoXFace               // Shared bitmap font
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		spriteCache: make(map[spriteKey]*ebiten.Image),
		fontFace:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// LoadSprite rasterizes a sprite frame and caches it for future use.
// If the image has already been built, it returns the cached version.
//
// Parameters:
//   - kind: The sprite to build.
//   - frame: The animation frame index.
//   - variant: The damage variant (only shelters have more than one).
//
// Returns:
//   - A pointer to the ebiten.Image at art resolution (one texel per art pixel).
//   - An error if the sprite or frame does not exist.
func (rm *ResourceManager) LoadSprite(kind types.SpriteKind, frame, variant int) (*ebiten.Image, error) {
	key := spriteKey{kind, frame, variant}
	if img, exists := rm.spriteCache[key]; exists {
		return img, nil
	}

	art, ok := config.GetSpriteArt(kind)
	if !ok {
		return nil, fmt.Errorf("no pixel art for sprite %s", kind)
	}

	rgba, err := RasterizeArt(art, frame, variant)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize %s: %w", kind, err)
	}

	img := ebiten.NewImageFromImage(rgba)
	rm.spriteCache[key] = img
	return img, nil
}

// GetSprite returns a cached sprite, building it on first use.
// Missing sprites are logged and reported as nil so that drawing can skip them.
func (rm *ResourceManager) GetSprite(kind types.SpriteKind, frame, variant int) *ebiten.Image {
	img, err := rm.LoadSprite(kind, frame, variant)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v", err)
		return nil
	}
	return img
}

// Preload builds every sprite frame, every shelter damage variant and the star layers.
//
// Returns:
//   - An error if any sprite fails to rasterize.
func (rm *ResourceManager) Preload() error {
	kinds := []types.SpriteKind{
		types.SpriteOctopus, types.SpriteCrab, types.SpriteSquid, types.SpriteUfo,
		types.SpriteShip, types.SpriteMissile, types.SpriteLaser,
	}
	for _, kind := range kinds {
		for frame := 0; frame < config.SpriteFrameCount(kind); frame++ {
			if _, err := rm.LoadSprite(kind, frame, 0); err != nil {
				return err
			}
		}
	}
	for v := 0; v < config.ShelterTextureStates; v++ {
		if _, err := rm.LoadSprite(types.SpriteShelter, 0, v); err != nil {
			return err
		}
	}
	rm.StarLayers()

	log.Printf("[ResourceManager] Preloaded %d sprite images", len(rm.spriteCache))
	return nil
}

// Font returns the shared HUD font face.
func (rm *ResourceManager) Font() *text.GoXFace {
	return rm.fontFace
}

// StarLayers returns the background star field layers (far layer first).
// Layers are generated once with a fixed seed so the sky is identical between runs.
func (rm *ResourceManager) StarLayers() []*ebiten.Image {
	if rm.starLayers != nil {
		return rm.starLayers
	}

	rng := rand.New(rand.NewPCG(0x1f, 0x2e))
	for layer := 0; layer < config.BackgroundLayers; layer++ {
		img := image.NewRGBA(image.Rect(0, 0, config.GameWindowWidth, config.GameWindowHeight))
		count := 60 * (config.BackgroundLayers - layer)
		brightness := uint8(110 + 70*layer)
		for i := 0; i < count; i++ {
			x := rng.IntN(config.GameWindowWidth)
			y := rng.IntN(config.GameWindowHeight)
			img.Set(x, y, color.RGBA{brightness, brightness, brightness, 255})
			if layer > 0 {
				img.Set(x+1, y, color.RGBA{brightness, brightness, brightness, 255})
			}
		}
		rm.starLayers = append(rm.starLayers, ebiten.NewImageFromImage(img))
	}
	return rm.starLayers
}

// RasterizeArt converts a pixel-art frame into an RGBA image.
// Variant v > 0 erodes the frame as damage: a texel is removed when its
// position hash is below v, so each variant contains all holes of the previous one.
func RasterizeArt(art config.SpriteArt, frame, variant int) (*image.RGBA, error) {
	if frame < 0 || frame >= len(art.Frames) {
		return nil, fmt.Errorf("frame %d out of range (%d frames)", frame, len(art.Frames))
	}

	rows := art.Frames[frame]
	if len(rows) == 0 {
		return nil, fmt.Errorf("frame %d is empty", frame)
	}

	c := color.RGBA{art.Color[0], art.Color[1], art.Color[2], art.Color[3]}
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			if ch != '#' {
				continue
			}
			if variant > 0 && damageHash(x, y) < variant {
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// damageHash spreads texels over [0, ShelterTextureStates*2) so that the
// most damaged variant still keeps roughly half of the shelter.
func damageHash(x, y int) int {
	h := uint32(x*73856093) ^ uint32(y*19349663)
	return int(h % uint32(config.ShelterTextureStates*2))
}
