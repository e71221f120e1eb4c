package main

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// shelterShades 掩体从完好到严重破损的字符
var shelterShades = []rune{'█', '▓', '▒', '░'}

// cellCanvas 把逻辑屏幕坐标缩放到终端字符格
type cellCanvas struct {
	screen tcell.Screen
	sx, sy float64 // 每个逻辑像素对应的字符格数
}

func newCellCanvas(screen tcell.Screen) *cellCanvas {
	cols, rows := screen.Size()
	return &cellCanvas{
		screen: screen,
		sx:     float64(cols) / config.GameWindowWidth,
		sy:     float64(rows) / config.GameWindowHeight,
	}
}

// cellRect 逻辑矩形覆盖的字符格范围，至少一格
func (c *cellCanvas) cellRect(left, top, right, bottom float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(left * c.sx))
	y0 = int(math.Floor(top * c.sy))
	x1 = max(int(math.Ceil(right*c.sx))-1, x0)
	y1 = max(int(math.Ceil(bottom*c.sy))-1, y0)
	return
}

func (c *cellCanvas) DrawSprite(s components.Sprite) {
	if s.Hidden {
		return
	}

	w, h := s.Size.X*s.Scale/2, s.Size.Y*s.Scale/2
	x0, y0, x1, y1 := c.cellRect(s.Pos.X-w, s.Pos.Y-h, s.Pos.X+w, s.Pos.Y+h)

	glyph := spriteGlyph(s.Kind, s.Variant)
	style := tcell.StyleDefault.Foreground(spriteColor(s.Kind))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (c *cellCanvas) DrawBox(b components.BoundBox) {
	x0, y0, x1, y1 := c.cellRect(b.Left, b.Top, b.Right, b.Bottom)
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for _, p := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		c.screen.SetContent(p[0], p[1], '+', nil, style)
	}
}

// drawText 在第 row 行绘制文本，col < 0 时水平居中
func (c *cellCanvas) drawText(col, row int, str string, style tcell.Style) {
	if col < 0 {
		cols, _ := c.screen.Size()
		col = max((cols-len([]rune(str)))/2, 0)
	}
	for i, r := range []rune(str) {
		c.screen.SetContent(col+i, row, r, nil, style)
	}
}

func spriteGlyph(kind types.SpriteKind, variant int) rune {
	switch kind {
	case types.SpriteOctopus:
		return 'W'
	case types.SpriteCrab:
		return 'M'
	case types.SpriteSquid:
		return 'Y'
	case types.SpriteUfo:
		return '@'
	case types.SpriteShip:
		return 'A'
	case types.SpriteMissile:
		return '|'
	case types.SpriteLaser:
		return '!'
	case types.SpriteShelter:
		i := variant * len(shelterShades) / config.ShelterTextureStates
		return shelterShades[min(max(i, 0), len(shelterShades)-1)]
	}
	return '?'
}

func spriteColor(kind types.SpriteKind) tcell.Color {
	art, ok := config.GetSpriteArt(kind)
	if !ok {
		return tcell.ColorWhite
	}
	return tcell.NewRGBColor(int32(art.Color[0]), int32(art.Color[1]), int32(art.Color[2]))
}
