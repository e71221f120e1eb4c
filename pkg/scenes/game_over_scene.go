package scenes

import (
	"fmt"

	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// FinalScoreSource 提供刚结束那一局的分数
type FinalScoreSource interface {
	FinalScore() game.Score
}

const (
	gameOverPlayAgain = iota
	gameOverMainMenu
)

// GameOverScene 结算画面：本局分数、最高分，以及再来一局/回主菜单
type GameOverScene struct {
	*Services

	source FinalScoreSource
	menu   *menu
	stars  starScroll
}

func NewGameOverScene(svc *Services, source FinalScoreSource) *GameOverScene {
	return &GameOverScene{
		Services: svc,
		source:   source,
		menu:     newMenu(svc.sfx(), "PLAY AGAIN", "MAIN MENU"),
	}
}

func (s *GameOverScene) Reset() {
	s.menu.reset()
}

func (s *GameOverScene) Enter() {
	s.playMusic(types.MusicMenu)
}

func (s *GameOverScene) Update(dt float64) {
	s.stars.update(dt)

	if s.Input != nil && s.Input.JustPressed(game.ActionBack) {
		s.switchTo(SceneMainMenu)
		return
	}

	index, ok := s.menu.update(s.Input, dt)
	if !ok {
		return
	}
	switch index {
	case gameOverPlayAgain:
		s.switchTo(ScenePlay)
	case gameOverMainMenu:
		s.switchTo(SceneMainMenu)
	}
}

// FinalText 本局分数文本
func (s *GameOverScene) FinalText() string {
	points := 0
	if s.source != nil {
		points = s.source.FinalScore().Points
	}
	return fmt.Sprintf("FINAL SCORE: %d", points)
}

// HighestText 历史最高分文本
func (s *GameOverScene) HighestText() string {
	return fmt.Sprintf("HIGHEST SCORE: %d", s.State.Scores.HighestScore())
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	rm := s.State.Resources
	drawStarfield(screen, rm.StarLayers(), s.stars.offset)

	face := rm.Font()
	drawCentered(screen, face, "GAME OVER", 110, 8, colorWarning)
	drawCentered(screen, face, s.FinalText(), 250, 3, colorText)
	drawCentered(screen, face, s.HighestText(), 300, 3, colorHighlight)
	s.menu.draw(screen, face, 420)
}
