package components

import "github.com/decker502/invaders/pkg/types"

// GameObj 所有游戏实体的公共部分
//
// 实体从不销毁，只会被停用，之后可以重新激活复用。
type GameObj struct {
	Active bool
	Sprite Sprite
	Box    BoundBox
}

// NewGameObj 创建指定精灵尺寸的游戏对象
func NewGameObj(kind types.SpriteKind, size Vec2) GameObj {
	return GameObj{
		Sprite: Sprite{Kind: kind, Size: size, Scale: 1},
	}
}

// IsActive 是否处于激活状态
func (g *GameObj) IsActive() bool {
	return g.Active
}

// SetActive 设置激活状态
func (g *GameObj) SetActive(active bool) {
	g.Active = active
}

// Position 返回精灵中心位置
func (g *GameObj) Position() Vec2 {
	return g.Sprite.Pos
}

// SetPosition 设置精灵中心位置
func (g *GameObj) SetPosition(x, y float64) {
	g.Sprite.Pos = Vec2{X: x, Y: y}
}

// Move 位移
func (g *GameObj) Move(dx, dy float64) {
	g.Sprite.Pos.X += dx
	g.Sprite.Pos.Y += dy
}

// Size 返回单帧尺寸
func (g *GameObj) Size() Vec2 {
	return g.Sprite.Size
}

// UpdateBox 以精灵中心为原点重新计算碰撞盒
func (g *GameObj) UpdateBox(uniformScale float64) {
	g.Box.Update(g.Sprite.Pos, g.Sprite.Size, uniformScale, true)
}

// Render 绘制精灵，showCollider 为 true 时额外绘制碰撞盒
func (g *GameObj) Render(c Canvas, showCollider bool) {
	if !g.Active {
		return
	}
	if !g.Sprite.Hidden {
		c.DrawSprite(g.Sprite)
	}
	if showCollider {
		c.DrawBox(g.Box)
	}
}
