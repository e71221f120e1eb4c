package scenes

import (
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TutorialScene 操作说明
// 连接手柄时显示手柄说明，否则显示键盘说明
type TutorialScene struct {
	*Services
	stars starScroll
}

func NewTutorialScene(svc *Services) *TutorialScene {
	return &TutorialScene{Services: svc}
}

// GuideText 当前输入设备对应的说明文本
func (s *TutorialScene) GuideText() string {
	if s.Input != nil && s.Input.GamepadConnected() {
		return config.TutorialControllerGuide
	}
	return config.TutorialKeyboardGuide
}

func (s *TutorialScene) Update(dt float64) {
	s.stars.update(dt)
	if s.Input == nil {
		return
	}
	if s.Input.JustPressed(game.ActionBack) || s.Input.JustPressed(game.ActionConfirm) {
		s.sfx().PlaySFX(types.SFXEnter, 1)
		s.switchTo(SceneMainMenu)
	}
}

func (s *TutorialScene) Draw(screen *ebiten.Image) {
	rm := s.State.Resources
	drawStarfield(screen, rm.StarLayers(), s.stars.offset)

	face := rm.Font()
	drawCentered(screen, face, "TUTORIAL", 40, 4, colorHighlight)
	utils.DrawText(screen, face, s.GuideText(), config.GameWindowWidth/2, 110, 2, text.AlignCenter, colorText)
	drawCentered(screen, face, "PRESS ENTER OR B TO GO BACK", config.GameWindowHeight-50, 2, colorHighlight)
}
