package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 标题滑入、菜单高亮都通过 Tween 使用这些函数。
//
// 参考：https://easings.net/

// EaseFunc 缓动函数签名
type EaseFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（标题滑入使用）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出
// 公式：f(t) = -(cos(πt) - 1) / 2
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制到 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Tween 在固定时长内把数值从 From 过渡到 To
type Tween struct {
	From     float64
	To       float64
	Duration float64 // 秒，<= 0 时立即完成
	Ease     EaseFunc

	elapsed float64
}

// NewTween 创建补间，ease 为 nil 时使用线性缓动
func NewTween(from, to, duration float64, ease EaseFunc) *Tween {
	if ease == nil {
		ease = EaseLinear
	}
	return &Tween{From: from, To: to, Duration: duration, Ease: ease}
}

// Update 推进 dt 秒
func (tw *Tween) Update(dt float64) {
	tw.elapsed += dt
	if tw.Duration > 0 && tw.elapsed > tw.Duration {
		tw.elapsed = tw.Duration
	}
}

// Progress 归一化进度
func (tw *Tween) Progress() float64 {
	if tw.Duration <= 0 {
		return 1
	}
	return Clamp01(tw.elapsed / tw.Duration)
}

// Value 当前插值结果
func (tw *Tween) Value() float64 {
	return Lerp(tw.From, tw.To, tw.Ease(tw.Progress()))
}

// Done 是否已到达终点
func (tw *Tween) Done() bool {
	return tw.Progress() >= 1
}

// Finish 直接跳到终点
func (tw *Tween) Finish() {
	tw.elapsed = tw.Duration
}

// Restart 从头开始
func (tw *Tween) Restart() {
	tw.elapsed = 0
}
