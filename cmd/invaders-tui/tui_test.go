package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestKeyboardMapping(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		action game.Action
	}{
		{"左方向键", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.ActionLeft},
		{"D 键", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), game.ActionRight},
		{"空格开火", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.ActionFire},
		{"回车确认", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), game.ActionConfirm},
		{"Esc 返回", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.ActionBack},
		{"退格删除", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), game.ActionDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := game.NewInputState()
			kb := newKeyboard(state)
			if kb.handle(tt.ev, time.Now()) {
				t.Fatal("should not request exit")
			}
			if !state.JustPressed(tt.action) || !state.IsHeld(tt.action) {
				t.Errorf("%v not pressed", tt.action)
			}
		})
	}
}

func TestKeyboardTypesRunes(t *testing.T) {
	state := game.NewInputState()
	kb := newKeyboard(state)
	kb.handle(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), time.Now())
	kb.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), time.Now())

	if got := string(state.TypedChars()); got != "ax" {
		t.Errorf("TypedChars() = %q, want ax", got)
	}
	if !state.IsHeld(game.ActionLeft) {
		t.Error("'a' should also move left")
	}
}

func TestKeyboardReleaseAfterHold(t *testing.T) {
	state := game.NewInputState()
	kb := newKeyboard(state)
	start := time.Now()

	kb.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), start)
	kb.expire(start.Add(keyHoldTime / 2))
	if !state.IsHeld(game.ActionRight) {
		t.Fatal("key released before hold time")
	}

	// 自动重复延长按住时间
	kb.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), start.Add(keyHoldTime))
	kb.expire(start.Add(keyHoldTime * 3 / 2))
	if !state.IsHeld(game.ActionRight) {
		t.Fatal("repeat should keep the key held")
	}

	kb.expire(start.Add(keyHoldTime * 3))
	if state.IsHeld(game.ActionRight) {
		t.Error("key should be released after the hold time")
	}
}

func TestKeyboardCtrlCExits(t *testing.T) {
	kb := newKeyboard(game.NewInputState())
	if !kb.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), time.Now()) {
		t.Error("Ctrl+C should request exit")
	}
}

func TestCellCanvasDrawSprite(t *testing.T) {
	// 96x72 字符格，每格对应 10x10 逻辑像素
	screen := newTestScreen(t, 96, 72)
	c := newCellCanvas(screen)

	c.DrawSprite(components.Sprite{
		Kind:  types.SpriteShip,
		Pos:   components.Vec2{X: 480, Y: 648},
		Size:  components.Vec2{X: 39, Y: 24},
		Scale: 1,
	})

	// x: 460.5..499.5 → 46..49, y: 636..660 → 63..65
	for _, p := range [][2]int{{46, 63}, {49, 65}, {48, 64}} {
		if r, _, _, _ := screen.GetContent(p[0], p[1]); r != 'A' {
			t.Errorf("cell %v = %q, want 'A'", p, r)
		}
	}
	for _, p := range [][2]int{{45, 64}, {50, 64}, {48, 62}, {48, 66}} {
		if r, _, _, _ := screen.GetContent(p[0], p[1]); r == 'A' {
			t.Errorf("cell %v should be empty", p)
		}
	}
}

func TestCellCanvasSkipsHidden(t *testing.T) {
	screen := newTestScreen(t, 96, 72)
	c := newCellCanvas(screen)
	c.DrawSprite(components.Sprite{
		Kind:   types.SpriteShip,
		Pos:    components.Vec2{X: 480, Y: 648},
		Size:   components.Vec2{X: 39, Y: 24},
		Scale:  1,
		Hidden: true,
	})
	if r, _, _, _ := screen.GetContent(48, 64); r == 'A' {
		t.Error("hidden sprite was drawn")
	}
}

func TestSpriteGlyphShelterDamage(t *testing.T) {
	prev := spriteGlyph(types.SpriteShelter, 0)
	if prev != shelterShades[0] {
		t.Errorf("intact shelter glyph = %q", prev)
	}
	last := spriteGlyph(types.SpriteShelter, config.ShelterTextureStates-1)
	if last != shelterShades[len(shelterShades)-1] {
		t.Errorf("most damaged shelter glyph = %q", last)
	}
}

func TestDrawTextCentered(t *testing.T) {
	screen := newTestScreen(t, 20, 5)
	c := newCellCanvas(screen)
	c.drawText(-1, 2, "ABCD", tcell.StyleDefault)

	if r, _, _, _ := screen.GetContent(8, 2); r != 'A' {
		t.Errorf("centered text starts at %q, want 'A' at column 8", r)
	}
}

func TestPrintTuning(t *testing.T) {
	cfg := config.DefaultWaveConfig()
	cfg.UfoChance = 0

	var buf bytes.Buffer
	printTuning(&buf, cfg)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(config.TuningKeys) {
		t.Fatalf("got %d lines, want %d", len(lines), len(config.TuningKeys))
	}
	for _, line := range lines {
		if fields := strings.Fields(line); fields[0] == "ufoChance:" && fields[1] != "0" {
			t.Errorf("ufoChance line = %q", line)
		}
		if fields := strings.Fields(line); fields[0] == "enemiesPerRow:" && fields[1] != "11" {
			t.Errorf("enemiesPerRow line = %q", line)
		}
	}
}
