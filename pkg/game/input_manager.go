package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// triggerThreshold 扳机按下超过该值视为开火
const triggerThreshold = 0.5

// keyBindings 键盘到动作的映射
var keyBindings = map[Action][]ebiten.Key{
	ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	ActionFire:    {ebiten.KeySpace},
	ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	ActionBack:    {ebiten.KeyEscape},
	ActionDelete:  {ebiten.KeyBackspace},
}

// padBindings 标准布局手柄按钮到动作的映射
var padBindings = map[Action][]ebiten.StandardGamepadButton{
	ActionLeft:    {ebiten.StandardGamepadButtonLeftLeft},
	ActionRight:   {ebiten.StandardGamepadButtonLeftRight},
	ActionUp:      {ebiten.StandardGamepadButtonLeftTop},
	ActionDown:    {ebiten.StandardGamepadButtonLeftBottom},
	ActionFire:    {ebiten.StandardGamepadButtonRightBottom},
	ActionConfirm: {ebiten.StandardGamepadButtonRightBottom, ebiten.StandardGamepadButtonCenterRight},
	ActionBack:    {ebiten.StandardGamepadButtonRightRight, ebiten.StandardGamepadButtonCenterLeft},
	ActionDelete:  {ebiten.StandardGamepadButtonRightLeft},
}

// InputManager 从 ebiten 读取键盘、鼠标和手柄输入
//
// 每帧调用一次 Update，把原始输入折算成动作快照。
// 同时实现 Input 和 Haptics 接口。
type InputManager struct {
	state   *InputState
	gamepad ebiten.GamepadID
	hasPad  bool
	ids     []ebiten.GamepadID
	chars   []rune
}

// NewInputManager 创建输入管理器
func NewInputManager() *InputManager {
	return &InputManager{state: NewInputState()}
}

// Update 采集本帧输入
func (im *InputManager) Update() {
	im.state.EndFrame()
	im.detectGamepad()

	for a := Action(0); a < actionCount; a++ {
		held, pressed := im.poll(a)
		if held {
			im.state.Press(a)
		} else {
			im.state.Release(a)
		}
		if pressed {
			im.state.Tap(a)
		}
	}

	im.chars = ebiten.AppendInputChars(im.chars[:0])
	im.state.Type(im.chars...)

	axis := 0.0
	if im.hasPad && ebiten.IsStandardGamepadLayoutAvailable(im.gamepad) {
		axis = ebiten.StandardGamepadAxisValue(im.gamepad, ebiten.StandardGamepadAxisLeftStickHorizontal)
	}
	im.state.SetAxis(axis)
	im.state.SetGamepadConnected(im.hasPad)
}

// detectGamepad 使用第一个连接的手柄
func (im *InputManager) detectGamepad() {
	im.ids = ebiten.AppendGamepadIDs(im.ids[:0])
	im.hasPad = len(im.ids) > 0
	if im.hasPad {
		im.gamepad = im.ids[0]
	}
}

// poll 返回动作是否按住、是否刚按下
func (im *InputManager) poll(a Action) (held, pressed bool) {
	for _, k := range keyBindings[a] {
		held = held || ebiten.IsKeyPressed(k)
		pressed = pressed || inpututil.IsKeyJustPressed(k)
	}

	if a == ActionFire {
		held = held || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		pressed = pressed || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}

	if !im.hasPad || !ebiten.IsStandardGamepadLayoutAvailable(im.gamepad) {
		return held, pressed
	}
	for _, b := range padBindings[a] {
		held = held || ebiten.IsStandardGamepadButtonPressed(im.gamepad, b)
		pressed = pressed || inpututil.IsStandardGamepadButtonJustPressed(im.gamepad, b)
	}
	if a == ActionFire {
		trigger := ebiten.StandardGamepadButtonValue(im.gamepad, ebiten.StandardGamepadButtonFrontBottomRight)
		held = held || trigger > triggerThreshold
	}
	return held, pressed
}

func (im *InputManager) IsHeld(a Action) bool      { return im.state.IsHeld(a) }
func (im *InputManager) JustPressed(a Action) bool { return im.state.JustPressed(a) }
func (im *InputManager) TypedChars() []rune        { return im.state.TypedChars() }
func (im *InputManager) GamepadConnected() bool    { return im.hasPad }

// MoveAxis 左摇杆 X 轴
func (im *InputManager) MoveAxis() float64 {
	return im.state.MoveAxis()
}

// IsConnected 是否连接了手柄
func (im *InputManager) IsConnected() bool {
	return im.hasPad
}

// Vibrate 让当前手柄震动
//
// 参数：
//   - duration: 震动时长（秒）
//   - low: 低频（强）马达强度 0-1
//   - high: 高频（弱）马达强度 0-1
func (im *InputManager) Vibrate(duration, low, high float64) {
	if !im.hasPad {
		return
	}
	ebiten.VibrateGamepad(im.gamepad, &ebiten.VibrateGamepadOptions{
		Duration:        time.Duration(duration * float64(time.Second)),
		StrongMagnitude: low,
		WeakMagnitude:   high,
	})
}
