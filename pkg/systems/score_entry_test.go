package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/game"
)

func TestScoreEntry_ProcessChar(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantName    string
		wantMessage string
		wantWarning bool
	}{
		{"小写转大写", "amy", "AMY", MsgPressToProceed, false},
		{"空格被拒绝", "a ", "A", MsgNoSpaces, true},
		{"数字被拒绝", "a1", "A", MsgLettersOnly, true},
		{"超过长度", "abcdefghi", "ABCDEFGH", MsgTooLong, true},
		{"满长度时空格优先提示", "abcdefgh ", "ABCDEFGH", MsgNoSpaces, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := NewScoreEntry()
			for _, r := range tt.input {
				se.ProcessChar(r)
			}

			if se.Name() != tt.wantName {
				t.Errorf("name = %q, want %q", se.Name(), tt.wantName)
			}
			if se.Message() != tt.wantMessage || se.IsWarning() != tt.wantWarning {
				t.Errorf("message = %q (warning %v), want %q (warning %v)",
					se.Message(), se.IsWarning(), tt.wantMessage, tt.wantWarning)
			}
		})
	}
}

func TestScoreEntry_Submit(t *testing.T) {
	se := NewScoreEntry()

	if _, ok := se.Submit(); ok {
		t.Fatal("empty name should not submit")
	}
	if se.Message() != MsgEmptyName {
		t.Errorf("message = %q, want %q", se.Message(), MsgEmptyName)
	}

	se.ProcessChar('z')
	name, ok := se.Submit()
	if !ok || name != "Z" {
		t.Errorf("Submit() = %q, %v", name, ok)
	}
}

func TestScoreEntry_Update(t *testing.T) {
	in := game.NewInputState()
	se := NewScoreEntry()

	in.Type('b', 'o', 'b', '!')
	if _, done := se.Update(in); done {
		t.Fatal("should not finish without confirm")
	}
	if se.Name() != "BOB" || se.Message() != MsgLettersOnly {
		t.Errorf("name %q message %q", se.Name(), se.Message())
	}
	in.EndFrame()

	// 任意按键清除提示
	in.Tap(game.ActionDelete)
	se.Update(in)
	if se.Name() != "BO" || se.Message() != "" {
		t.Errorf("after backspace: name %q message %q", se.Name(), se.Message())
	}
	in.EndFrame()

	in.Tap(game.ActionConfirm)
	name, done := se.Update(in)
	if !done || name != "BO" {
		t.Errorf("Update() = %q, %v", name, done)
	}
}
