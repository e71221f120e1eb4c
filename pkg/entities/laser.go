package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
)

// Laser 乌贼发射的激光，向下移动
type Laser struct {
	components.GameObj
}

// NewLaser 创建一个未激活的激光
func NewLaser() *Laser {
	w, h := config.SpriteSize(types.SpriteLaser)
	return &Laser{GameObj: components.NewGameObj(types.SpriteLaser, components.Vec2{X: w, Y: h})}
}

// Fire 从 (x, y) 发射
func (l *Laser) Fire(x, y float64) {
	l.Active = true
	l.SetPosition(x, y)
	l.UpdateBox(config.LaserBoxScale)
}

// Update 向下移动，离开屏幕底部后停用
func (l *Laser) Update(dt float64) {
	l.Move(0, config.LaserSpeed*dt)
	l.UpdateBox(config.LaserBoxScale)

	if l.Sprite.Pos.Y > config.GameWindowHeight+l.Sprite.Size.Y {
		l.Active = false
	}
}

// Extinguish 命中后停用并清空碰撞盒
func (l *Laser) Extinguish() {
	l.Active = false
	l.Box.Set(0, 0, 0, 0)
}
