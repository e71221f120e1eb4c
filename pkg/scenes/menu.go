package scenes

import (
	"image/color"

	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	menuItemScale   = 3.0
	menuItemSpacing = 56.0
	menuPulseTime   = 0.6
)

// menu 纵向按钮列表
// 上下键切换选中项（循环），确认或开火键激活
type menu struct {
	items    []string
	selected int
	sfx      game.SFXPlayer
	pulse    *utils.Tween
}

func newMenu(sfx game.SFXPlayer, items ...string) *menu {
	if sfx == nil {
		sfx = game.NopSFX{}
	}
	return &menu{
		items: items,
		sfx:   sfx,
		pulse: utils.NewTween(0.55, 1, menuPulseTime, utils.EaseInOutSine),
	}
}

// update 处理一帧输入
// 返回被激活的选项下标，没有激活时 ok 为 false
func (m *menu) update(in game.Input, dt float64) (index int, ok bool) {
	m.pulse.Update(dt)
	if m.pulse.Done() {
		m.pulse.From, m.pulse.To = m.pulse.To, m.pulse.From
		m.pulse.Restart()
	}

	if in == nil || len(m.items) == 0 {
		return 0, false
	}

	switch {
	case in.JustPressed(game.ActionUp):
		m.move(-1)
	case in.JustPressed(game.ActionDown):
		m.move(1)
	case in.JustPressed(game.ActionConfirm), in.JustPressed(game.ActionFire):
		m.sfx.PlaySFX(types.SFXEnter, 1)
		return m.selected, true
	}
	return 0, false
}

func (m *menu) move(step int) {
	n := len(m.items)
	m.selected = ((m.selected+step)%n + n) % n
	m.sfx.PlaySFX(types.SFXSelect, 1)
}

// reset 回到第一项
func (m *menu) reset() {
	m.selected = 0
	m.pulse.Restart()
}

func (m *menu) draw(screen *ebiten.Image, face text.Face, top float64) {
	for i, item := range m.items {
		var clr color.Color = colorText
		label := item
		if i == m.selected {
			a := m.pulse.Value()
			clr = color.RGBA{
				R: uint8(float64(colorHighlight.R) * a),
				G: uint8(float64(colorHighlight.G) * a),
				B: uint8(float64(colorHighlight.B) * a),
				A: 255,
			}
			label = "> " + item + " <"
		}
		drawCentered(screen, face, label, top+float64(i)*menuItemSpacing, menuItemScale, clr)
	}
}
