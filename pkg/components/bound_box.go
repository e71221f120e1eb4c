package components

// BoundBox 轴对齐包围盒
//
// 对于非负的尺寸和缩放，始终满足 Left <= Right 且 Top <= Bottom。
type BoundBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Set 直接设置四条边
// 激光命中后用 Set(0, 0, 0, 0) 清空碰撞盒，避免同一帧再次命中
func (b *BoundBox) Set(left, top, right, bottom float64) {
	b.Left = left
	b.Top = top
	b.Right = right
	b.Bottom = bottom
}

// Update 根据位置和尺寸重新计算包围盒
//
// 参数：
//   - pos: 实体位置
//   - size: 屏幕上的精灵尺寸
//   - uniformScale: 统一缩放系数（小于 1 时碰撞盒比精灵小）
//   - originCentred: 为 true 时 pos 是精灵中心，半宽为 size/2
func (b *BoundBox) Update(pos, size Vec2, uniformScale float64, originCentred bool) {
	half := size
	if originCentred {
		half = size.Scale(0.5)
	}
	half = half.Scale(uniformScale)

	b.Left = pos.X - half.X
	b.Right = pos.X + half.X
	b.Top = pos.Y - half.Y
	b.Bottom = pos.Y + half.Y
}

// Overlaps 检测两个包围盒是否相交
// 边缘刚好接触也视为相交，结果与调用顺序无关
func (b BoundBox) Overlaps(o BoundBox) bool {
	if b.Right < o.Left || o.Right < b.Left {
		return false
	}
	if b.Top > o.Bottom || o.Top > b.Bottom {
		return false
	}
	return true
}

// Width 包围盒宽度
func (b BoundBox) Width() float64 {
	return b.Right - b.Left
}

// Height 包围盒高度
func (b BoundBox) Height() float64 {
	return b.Bottom - b.Top
}

// IsZero 包围盒是否已被清空
func (b BoundBox) IsZero() bool {
	return b == BoundBox{}
}
