package systems

import (
	"strings"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
)

// 输入名字时的提示文本
const (
	MsgNoSpaces       = "NO SPACES ALLOWED"
	MsgTooLong        = "CANNOT EXCEED 8 CHARACTERS"
	MsgLettersOnly    = "ALPHABETICAL CHARACTERS ONLY"
	MsgPressToProceed = "PRESS ENTER OR A (CONTROLLER) TO CONTINUE"
	MsgEmptyName      = "CANNOT INPUT NOTHING"
)

// ScoreEntry 游戏结束后的名字输入框
// 只接受英文字母，自动转为大写，最长 MaxNameLength 个字符
type ScoreEntry struct {
	name    []rune
	message string
	warning bool
}

// NewScoreEntry 创建空的名字输入框
func NewScoreEntry() *ScoreEntry {
	return &ScoreEntry{}
}

// Name 当前输入的名字
func (se *ScoreEntry) Name() string {
	return string(se.name)
}

// Message 当前提示文本，没有提示时为空
func (se *ScoreEntry) Message() string {
	return se.message
}

// IsWarning 当前提示是否为错误提示
func (se *ScoreEntry) IsWarning() bool {
	return se.warning
}

func (se *ScoreEntry) setMessage(msg string, warning bool) {
	se.message = msg
	se.warning = warning
}

// ProcessChar 处理一个输入字符
func (se *ScoreEntry) ProcessChar(r rune) {
	switch {
	case r == ' ':
		se.setMessage(MsgNoSpaces, true)
	case len(se.name) >= config.MaxNameLength:
		se.setMessage(MsgTooLong, true)
	case !isLetter(r):
		se.setMessage(MsgLettersOnly, true)
	default:
		se.name = []rune(strings.ToUpper(string(append(se.name, r))))
		se.setMessage(MsgPressToProceed, false)
	}
}

// Backspace 删除最后一个字符
func (se *ScoreEntry) Backspace() {
	if len(se.name) > 0 {
		se.name = se.name[:len(se.name)-1]
	}
}

// Submit 确认输入
// 名字为空时给出提示并返回 false
func (se *ScoreEntry) Submit() (string, bool) {
	if len(se.name) == 0 {
		se.setMessage(MsgEmptyName, true)
		return "", false
	}
	return string(se.name), true
}

// Update 根据本帧输入编辑名字
// 确认成功时返回名字和 true
func (se *ScoreEntry) Update(in game.Input) (string, bool) {
	if in == nil {
		return "", false
	}

	chars := in.TypedChars()
	deleting := in.JustPressed(game.ActionDelete)
	confirming := in.JustPressed(game.ActionConfirm)

	if len(chars) > 0 || deleting || confirming {
		se.setMessage("", false)
	}

	if deleting {
		se.Backspace()
	}
	for _, r := range chars {
		se.ProcessChar(r)
	}
	if confirming {
		return se.Submit()
	}
	return "", false
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
