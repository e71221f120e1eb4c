package components

// Vec2 二维向量（屏幕坐标，Y 轴向下）
type Vec2 struct {
	X, Y float64
}

// Add 向量相加
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale 向量数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}
