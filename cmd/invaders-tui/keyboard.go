package main

import (
	"time"

	"github.com/decker502/invaders/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// keyHoldTime 终端只发送按下和自动重复事件，没有松开事件。
// 超过该时长没有收到重复事件即视为松开。
const keyHoldTime = 120 * time.Millisecond

// keyboard 把 tcell 键盘事件转换成 game.InputState
type keyboard struct {
	state    *game.InputState
	lastSeen map[game.Action]time.Time
	holdFor  time.Duration
}

func newKeyboard(state *game.InputState) *keyboard {
	return &keyboard{
		state:    state,
		lastSeen: make(map[game.Action]time.Time),
		holdFor:  keyHoldTime,
	}
}

// handle 处理一个按键事件
// 返回 true 表示用户要求立即退出（Ctrl+C）
func (k *keyboard) handle(ev *tcell.EventKey, now time.Time) (exit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		k.press(game.ActionLeft, now)
	case tcell.KeyRight:
		k.press(game.ActionRight, now)
	case tcell.KeyUp:
		k.press(game.ActionUp, now)
	case tcell.KeyDown:
		k.press(game.ActionDown, now)
	case tcell.KeyEnter:
		k.press(game.ActionConfirm, now)
	case tcell.KeyEscape:
		k.press(game.ActionBack, now)
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		k.press(game.ActionDelete, now)
	case tcell.KeyRune:
		r := ev.Rune()
		k.state.Type(r)
		if a, ok := runeAction(r); ok {
			k.press(a, now)
		}
	}
	return false
}

// runeAction 字符键对应的动作
func runeAction(r rune) (game.Action, bool) {
	switch r {
	case ' ':
		return game.ActionFire, true
	case 'a', 'A':
		return game.ActionLeft, true
	case 'd', 'D':
		return game.ActionRight, true
	case 'w', 'W':
		return game.ActionUp, true
	case 's', 'S':
		return game.ActionDown, true
	}
	return 0, false
}

func (k *keyboard) press(a game.Action, now time.Time) {
	k.state.Press(a)
	k.lastSeen[a] = now
}

// expire 松开超时未重复的按键，每帧更新前调用
func (k *keyboard) expire(now time.Time) {
	for a, seen := range k.lastSeen {
		if now.Sub(seen) > k.holdFor {
			k.state.Release(a)
			delete(k.lastSeen, a)
		}
	}
}
