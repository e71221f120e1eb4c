package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
)

// MissileSpinFPS 导弹旋转动画帧率
const MissileSpinFPS = 15

// MissileCollider 解析导弹与掩体的碰撞
type MissileCollider interface {
	AnySheltersLeft() bool
	CheckMissileCollision(m *Missile) bool
}

// Missile 玩家发射的导弹，向上移动
type Missile struct {
	components.GameObj
	anim     components.Animation
	shelters MissileCollider
}

// NewMissile 创建一个未激活的导弹
// shelters 可以为 nil（没有掩体的场景）
func NewMissile(shelters MissileCollider) *Missile {
	w, h := config.SpriteSize(types.SpriteMissile)
	frames := config.SpriteFrameCount(types.SpriteMissile)
	return &Missile{
		GameObj:  components.NewGameObj(types.SpriteMissile, components.Vec2{X: w, Y: h}),
		anim:     components.NewAnimation(frames, MissileSpinFPS, true),
		shelters: shelters,
	}
}

// SetShelters 设置掩体碰撞解析器
func (m *Missile) SetShelters(shelters MissileCollider) {
	m.shelters = shelters
}

// Launch 从 (x, y) 发射
func (m *Missile) Launch(x, y float64) {
	m.Active = true
	m.SetPosition(x, y)
	m.anim.Reset()
	m.Sprite.Frame = 0
	m.UpdateBox(config.MissileBoxScale)
}

// Update 向上移动并推进旋转动画，离开屏幕顶部后停用
// 移动后检查是否撞上掩体
func (m *Missile) Update(dt float64) {
	m.Move(0, -config.MissileSpeed*dt)
	m.UpdateBox(config.MissileBoxScale)

	if m.Sprite.Pos.Y < 0 {
		m.Active = false
	}

	m.Sprite.Frame = m.anim.Update(dt)

	if m.Active && m.shelters != nil && m.shelters.AnySheltersLeft() {
		m.shelters.CheckMissileCollision(m)
	}
}

// Explode 命中后停用
func (m *Missile) Explode() {
	m.Active = false
}
