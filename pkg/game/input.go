package game

// Action 与具体按键无关的输入动作
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionConfirm
	ActionBack
	ActionDelete
	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionFire:
		return "fire"
	case ActionConfirm:
		return "confirm"
	case ActionBack:
		return "back"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Input 每帧的输入快照
type Input interface {
	// IsHeld 动作对应的按键当前是否按住
	IsHeld(a Action) bool
	// JustPressed 动作是否在本帧刚刚按下
	JustPressed(a Action) bool
	// MoveAxis 手柄左摇杆 X 轴（-1..1），死区内返回 0
	MoveAxis() float64
	// TypedChars 本帧输入的字符
	TypedChars() []rune
	// GamepadConnected 是否连接了手柄
	GamepadConnected() bool
}

// InputState 可手动设置的输入快照
//
// 终端前端把键盘事件写入它，测试用它模拟按键。
// 每帧结束调用 EndFrame 清空"刚按下"状态和输入字符。
type InputState struct {
	held    [actionCount]bool
	pressed [actionCount]bool
	axis    float64
	chars   []rune
	hasPad  bool
}

// NewInputState 创建空的输入快照
func NewInputState() *InputState {
	return &InputState{}
}

// Press 按下动作（同时标记为刚按下）
func (s *InputState) Press(a Action) {
	if !s.held[a] {
		s.pressed[a] = true
	}
	s.held[a] = true
}

// Tap 仅在本帧触发一次，不保持按住
func (s *InputState) Tap(a Action) {
	s.pressed[a] = true
}

// Release 松开动作
func (s *InputState) Release(a Action) {
	s.held[a] = false
}

// ReleaseAll 松开所有动作
func (s *InputState) ReleaseAll() {
	for i := range s.held {
		s.held[i] = false
	}
}

// SetAxis 设置摇杆 X 轴
func (s *InputState) SetAxis(v float64) {
	s.axis = v
}

// SetGamepadConnected 设置手柄连接状态
func (s *InputState) SetGamepadConnected(connected bool) {
	s.hasPad = connected
}

// Type 追加本帧输入的字符
func (s *InputState) Type(chars ...rune) {
	s.chars = append(s.chars, chars...)
}

// EndFrame 清空单帧状态
func (s *InputState) EndFrame() {
	for i := range s.pressed {
		s.pressed[i] = false
	}
	s.chars = s.chars[:0]
}

func (s *InputState) IsHeld(a Action) bool      { return s.held[a] }
func (s *InputState) JustPressed(a Action) bool { return s.pressed[a] }
func (s *InputState) MoveAxis() float64         { return s.axis }
func (s *InputState) TypedChars() []rune        { return s.chars }
func (s *InputState) GamepadConnected() bool    { return s.hasPad }
