package components

import "testing"

func TestBoundBoxUpdate(t *testing.T) {
	tests := []struct {
		name     string
		pos      Vec2
		size     Vec2
		scale    float64
		centred  bool
		expected BoundBox
	}{
		{"中心原点", Vec2{100, 50}, Vec2{20, 10}, 1, true, BoundBox{90, 45, 110, 55}},
		{"中心原点缩放", Vec2{100, 50}, Vec2{20, 10}, 0.5, true, BoundBox{95, 47.5, 105, 52.5}},
		{"非中心原点", Vec2{0, 0}, Vec2{4, 2}, 1, false, BoundBox{-4, -2, 4, 2}},
		{"零尺寸", Vec2{7, 8}, Vec2{0, 0}, 1, true, BoundBox{7, 8, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BoundBox
			b.Update(tt.pos, tt.size, tt.scale, tt.centred)
			if b != tt.expected {
				t.Errorf("Update() = %+v, want %+v", b, tt.expected)
			}
			if b.Left > b.Right || b.Top > b.Bottom {
				t.Errorf("Box edges out of order: %+v", b)
			}
		})
	}
}

func TestBoundBoxOverlaps(t *testing.T) {
	base := BoundBox{0, 0, 10, 10}

	tests := []struct {
		name  string
		other BoundBox
		want  bool
	}{
		{"完全重叠", BoundBox{0, 0, 10, 10}, true},
		{"部分重叠", BoundBox{5, 5, 15, 15}, true},
		{"包含", BoundBox{2, 2, 3, 3}, true},
		{"右边缘接触", BoundBox{10, 0, 20, 10}, true},
		{"下边缘接触", BoundBox{0, 10, 10, 20}, true},
		{"右侧分离", BoundBox{10.1, 0, 20, 10}, false},
		{"左侧分离", BoundBox{-20, 0, -0.1, 10}, false},
		{"上方分离", BoundBox{0, -20, 10, -0.1}, false},
		{"下方分离", BoundBox{0, 10.1, 10, 20}, false},
		{"X 重叠 Y 分离", BoundBox{5, 20, 15, 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("base.Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// 交换顺序结果一致
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("%+v.Overlaps(base) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestBoundBoxSet(t *testing.T) {
	b := BoundBox{1, 2, 3, 4}
	b.Set(0, 0, 0, 0)
	if !b.IsZero() {
		t.Errorf("Expected zero box, got %+v", b)
	}
	b.Set(1, 2, 4, 6)
	if b.Width() != 3 || b.Height() != 4 {
		t.Errorf("Width/Height = %v/%v, want 3/4", b.Width(), b.Height())
	}
}
