package components

// Animation 基于帧序号的循环动画
// 只推进帧索引，帧图像由渲染端根据 Sprite.Kind 查表
type Animation struct {
	FrameCount   int     // 帧数
	FrameSpeed   float64 // 每帧持续时间（秒）
	FrameCounter float64 // 当前帧计时器（秒）
	CurrentFrame int     // 当前帧索引（0-based）
	IsLooping    bool    // 是否循环播放
	IsFinished   bool    // 非循环动画是否已播放完毕
}

// NewAnimation 创建 fps 帧率的动画
func NewAnimation(frameCount int, fps float64, looping bool) Animation {
	speed := 0.0
	if fps > 0 {
		speed = 1 / fps
	}
	return Animation{
		FrameCount: frameCount,
		FrameSpeed: speed,
		IsLooping:  looping,
	}
}

// Update 推进动画，返回当前帧索引
func (a *Animation) Update(dt float64) int {
	if a.FrameCount <= 1 || a.FrameSpeed <= 0 || a.IsFinished {
		return a.CurrentFrame
	}

	a.FrameCounter += dt
	for a.FrameCounter >= a.FrameSpeed {
		a.FrameCounter -= a.FrameSpeed
		a.CurrentFrame++
		if a.CurrentFrame >= a.FrameCount {
			if a.IsLooping {
				a.CurrentFrame = 0
			} else {
				a.CurrentFrame = a.FrameCount - 1
				a.IsFinished = true
				break
			}
		}
	}
	return a.CurrentFrame
}

// Reset 回到第一帧
func (a *Animation) Reset() {
	a.CurrentFrame = 0
	a.FrameCounter = 0
	a.IsFinished = false
}
