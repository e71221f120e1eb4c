package scenes

import (
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	introSlideTime = 1.5
	introHoldTime  = 3.0
	introTitleFrom = -60.0
	introTitleTo   = 220.0
)

// IntroScene 开场画面
// 标题从屏幕上方滑入，停留片刻后进入主菜单，任意确认键可跳过
type IntroScene struct {
	*Services

	title *utils.Tween
	hold  float64
	stars starScroll
}

// NewIntroScene 创建开场场景
func NewIntroScene(svc *Services) *IntroScene {
	return &IntroScene{
		Services: svc,
		title:    utils.NewTween(introTitleFrom, introTitleTo, introSlideTime, utils.EaseOutCubic),
	}
}

// Reset 重新播放滑入动画
func (s *IntroScene) Reset() {
	s.title.Restart()
	s.hold = 0
}

func (s *IntroScene) Enter() {
	s.playMusic(types.MusicMenu)
}

func (s *IntroScene) Update(dt float64) {
	s.stars.update(dt)
	s.title.Update(dt)

	skip := s.Input != nil && (s.Input.JustPressed(game.ActionConfirm) ||
		s.Input.JustPressed(game.ActionFire) || s.Input.JustPressed(game.ActionBack))

	if !s.title.Done() {
		if skip {
			s.title.Finish()
		}
		return
	}

	s.hold += dt
	if skip || s.hold >= introHoldTime {
		log.Printf("[IntroScene] Intro finished (skipped: %v)", skip)
		s.sfx().PlaySFX(types.SFXEnter, 1)
		s.switchTo(SceneMainMenu)
	}
}

// TitleY 标题当前的纵坐标
func (s *IntroScene) TitleY() float64 {
	return s.title.Value()
}

func (s *IntroScene) Draw(screen *ebiten.Image) {
	rm := s.State.Resources
	drawStarfield(screen, rm.StarLayers(), s.stars.offset)

	face := rm.Font()
	drawCentered(screen, face, config.WindowTitle, s.TitleY(), 6, colorHighlight)
	if s.title.Done() && int(s.hold*2)%2 == 0 {
		drawCentered(screen, face, "PRESS ENTER", introTitleTo+200, 2, colorText)
	}
}
