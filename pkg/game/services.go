package game

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/types"
)

// 核心玩法通过以下接口访问外部服务，构造时注入。
// 桌面端、终端前端和测试各自提供实现。

// SFXPlayer 播放音效
type SFXPlayer interface {
	PlaySFX(kind types.SFX, volume float64)
}

// Haptics 手柄震动
type Haptics interface {
	IsConnected() bool
	// Vibrate 震动 duration 秒，low/high 为低频/高频马达强度（0-1）
	Vibrate(duration, low, high float64)
}

// ScoreKeeper 当前局分数的记录入口
type ScoreKeeper interface {
	AddCurrentPoints(points int)
	CurrentScore() Score
}

// Random 随机数源
// math/rand/v2 的 *rand.Rand 直接满足该接口
type Random interface {
	IntN(n int) int
	Float64() float64
}

// Canvas 绘制目标
type Canvas = components.Canvas

// NopSFX 不发声的音效播放器
type NopSFX struct{}

func (NopSFX) PlaySFX(types.SFX, float64) {}

// NopHaptics 未连接手柄
type NopHaptics struct{}

func (NopHaptics) IsConnected() bool                { return false }
func (NopHaptics) Vibrate(float64, float64, float64) {}
