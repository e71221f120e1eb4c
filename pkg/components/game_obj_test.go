package components

import (
	"testing"

	"github.com/decker502/invaders/pkg/types"
)

type recordingCanvas struct {
	sprites []Sprite
	boxes   []BoundBox
}

func (c *recordingCanvas) DrawSprite(s Sprite) { c.sprites = append(c.sprites, s) }
func (c *recordingCanvas) DrawBox(b BoundBox)  { c.boxes = append(c.boxes, b) }

func TestGameObjRender(t *testing.T) {
	obj := NewGameObj(types.SpriteShip, Vec2{30, 20})
	obj.SetPosition(100, 200)
	obj.UpdateBox(1)

	c := &recordingCanvas{}
	obj.Render(c, true)
	if len(c.sprites) != 0 {
		t.Fatal("Inactive object should not render")
	}

	obj.SetActive(true)
	obj.Render(c, false)
	if len(c.sprites) != 1 || len(c.boxes) != 0 {
		t.Fatalf("Expected 1 sprite and no box, got %d/%d", len(c.sprites), len(c.boxes))
	}
	if c.sprites[0].Pos != (Vec2{100, 200}) {
		t.Errorf("Sprite drawn at %+v", c.sprites[0].Pos)
	}

	obj.Sprite.Hidden = true
	obj.Render(c, true)
	if len(c.sprites) != 1 {
		t.Error("Hidden sprite should not be drawn")
	}
	if len(c.boxes) != 1 || c.boxes[0] != (BoundBox{85, 190, 115, 210}) {
		t.Errorf("Unexpected collider drawn: %+v", c.boxes)
	}
}

func TestGameObjMove(t *testing.T) {
	obj := NewGameObj(types.SpriteLaser, Vec2{9, 18})
	obj.SetPosition(10, 10)
	obj.Move(5, -3)
	if obj.Position() != (Vec2{15, 7}) {
		t.Errorf("Position = %+v, want {15 7}", obj.Position())
	}
}
