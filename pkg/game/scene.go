package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., intro, main menu, gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Enterable 场景被激活时调用 Enter
type Enterable interface {
	Enter()
}

// Exitable 场景被切走前调用 Exit
// 返回 false 表示仍在播放退出过渡，切换推迟到下一帧
type Exitable interface {
	Exit() bool
}

// Resettable 场景被选为切换目标时调用 Reset，重置内部状态
type Resettable interface {
	Reset()
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 游戏窗口关闭
//   - 用户通过 OS 命令关闭程序
type Saveable interface {
	// SaveOnExit 在程序退出时保存状态
	// 返回 true 表示保存成功或无需保存
	SaveOnExit() bool
}
