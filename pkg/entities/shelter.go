package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
)

// Shelter 可被逐步摧毁的掩体
//
// 每次命中减少一条生命并切换到下一张损伤贴图（最多第 9 张），
// 生命耗尽后停用。碰撞盒高度随剩余生命缩小，底边保持不动。
type Shelter struct {
	components.GameObj
	lives        int
	textureState int
}

// NewShelter 在 (x, y) 创建一个完好的掩体
func NewShelter(x, y float64) *Shelter {
	w, h := config.SpriteSize(types.SpriteShelter)
	s := &Shelter{
		GameObj: components.NewGameObj(types.SpriteShelter, components.Vec2{X: w, Y: h}),
		lives:   config.ShelterLives,
	}
	s.Active = true
	s.SetPosition(x, y)
	s.Update(0)
	return s
}

// Lives 剩余生命
func (s *Shelter) Lives() int {
	return s.lives
}

// TextureState 当前损伤贴图索引（0-9）
func (s *Shelter) TextureState() int {
	return s.textureState
}

// Update 根据剩余生命刷新碰撞盒
func (s *Shelter) Update(dt float64) {
	size := s.Sprite.Size
	fullHeight := size.Y
	size.Y *= float64(s.lives) / float64(config.ShelterTextureStates)

	pos := s.Sprite.Pos
	pos.Y += (fullHeight - size.Y) / 2 * config.ShelterBoxScale

	s.Box.Update(pos, size, config.ShelterBoxScale, true)
}

// Hit 承受一次命中
func (s *Shelter) Hit() {
	s.lives--

	if s.lives < 1 {
		s.Active = false
		return
	}

	if s.textureState < config.ShelterTextureStates-1 {
		s.textureState++
	}
	s.Sprite.Variant = s.textureState
	s.Update(0)
}
