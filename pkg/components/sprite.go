package components

import "github.com/decker502/invaders/pkg/types"

// Sprite 实体的视觉表现
// 只记录画什么、画在哪里，具体绘制由 Canvas 实现负责
type Sprite struct {
	Kind    types.SpriteKind
	Frame   int     // 当前帧索引
	Pos     Vec2    // 精灵中心位置
	Size    Vec2    // 单帧在屏幕上的尺寸
	Scale   float64 // 绘制缩放
	Hidden  bool    // 闪烁时临时隐藏
	Variant int     // 额外的外观状态（如掩体的破损程度）
}

// Canvas 绘制目标
// ebiten 场景和终端前端各自实现
type Canvas interface {
	DrawSprite(s Sprite)
	DrawBox(b BoundBox)
}
