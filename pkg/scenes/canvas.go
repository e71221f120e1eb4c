package scenes

import (
	"image/color"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorText      = color.RGBA{235, 235, 235, 255}
	colorHighlight = color.RGBA{255, 220, 60, 255}
	colorWarning   = color.RGBA{255, 70, 70, 255}
	colorCollider  = color.RGBA{0, 255, 0, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 180}
)

// spriteCanvas 把实体精灵画到 ebiten 屏幕上
// 精灵图按像素画原始分辨率缓存，绘制时放大到精灵尺寸并以 Pos 为中心
type spriteCanvas struct {
	screen    *ebiten.Image
	resources *game.ResourceManager
}

func (c *spriteCanvas) DrawSprite(s components.Sprite) {
	img := c.resources.GetSprite(s.Kind, s.Frame, s.Variant)
	if img == nil {
		return
	}

	b := img.Bounds()
	w, h := s.Size.X*s.Scale, s.Size.Y*s.Scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(s.Pos.X-w/2, s.Pos.Y-h/2)
	c.screen.DrawImage(img, op)
}

func (c *spriteCanvas) DrawBox(b components.BoundBox) {
	vector.StrokeRect(c.screen,
		float32(b.Left), float32(b.Top), float32(b.Width()), float32(b.Height()),
		1, colorCollider, false)
}

// drawStarfield 绘制两层滚动星空，offset 返回每层的纵向偏移
func drawStarfield(screen *ebiten.Image, layers []*ebiten.Image, offset func(layer int) float64) {
	for i, layer := range layers {
		y := 0.0
		if offset != nil {
			y = offset(i)
		}
		for _, dy := range [2]float64{y, y - config.GameWindowHeight} {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(0, dy)
			screen.DrawImage(layer, op)
		}
	}
}

// starScroll 菜单场景共用的星空滚动偏移
type starScroll [config.BackgroundLayers]float64

func (s *starScroll) update(dt float64) {
	for i := range s {
		s[i] += config.ScrollSpeed * float64(i+1) * dt
		for s[i] >= config.GameWindowHeight {
			s[i] -= config.GameWindowHeight
		}
	}
}

func (s *starScroll) offset(layer int) float64 {
	return s[layer]
}

// drawCentered 以屏幕水平中心为锚点绘制文本
func drawCentered(screen *ebiten.Image, face text.Face, str string, y, scale float64, clr color.Color) {
	utils.DrawText(screen, face, str, config.GameWindowWidth/2, y, scale, text.AlignCenter, clr)
}

// drawOverlay 在全屏绘制半透明遮罩
func drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorOverlay, false)
}
