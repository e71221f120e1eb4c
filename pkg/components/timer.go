package components

// Timer 通用计时器
// 用于开火冷却、敌人射击判定间隔、恢复期等
type Timer struct {
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
}

// NewTimer 创建目标时间为 target 的计时器
func NewTimer(target float64) Timer {
	return Timer{TargetTime: target}
}

// Tick 推进计时器
func (t *Timer) Tick(dt float64) {
	t.CurrentTime += dt
}

// Ready 已过时间是否超过目标时间
func (t *Timer) Ready() bool {
	return t.CurrentTime > t.TargetTime
}

// Elapsed 已过时间是否达到目标时间（含等于）
func (t *Timer) Elapsed() bool {
	return t.CurrentTime >= t.TargetTime
}

// Reset 清零
func (t *Timer) Reset() {
	t.CurrentTime = 0
}
