package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 主菜单选项，顺序即显示顺序
const (
	mainMenuPlay = iota
	mainMenuTutorial
	mainMenuScores
	mainMenuSettings
	mainMenuQuit
)

// MainMenuScene represents the main menu screen of the game.
// It lets the player start a session or navigate to the other screens.
type MainMenuScene struct {
	*Services

	menu   *menu
	stars  starScroll
	onQuit func() // called when QUIT is activated
}

// NewMainMenuScene creates and returns a new MainMenuScene instance.
//
// Parameters:
//   - svc: The shared services (state, scene manager and input).
//   - onQuit: Callback invoked when the player chooses QUIT. May be nil.
//
// Returns:
//   - A pointer to the newly created MainMenuScene.
//
// On mobile the QUIT entry is omitted.
func NewMainMenuScene(svc *Services, onQuit func()) *MainMenuScene {
	items := []string{"PLAY", "TUTORIAL", "SCORES", "SETTINGS", "QUIT"}
	if utils.IsMobile() {
		items = items[:mainMenuQuit]
	}
	return &MainMenuScene{
		Services: svc,
		menu:     newMenu(svc.sfx(), items...),
		onQuit:   onQuit,
	}
}

func (s *MainMenuScene) Enter() {
	s.playMusic(types.MusicMenu)
}

func (s *MainMenuScene) Update(dt float64) {
	s.stars.update(dt)

	index, ok := s.menu.update(s.Input, dt)
	if !ok {
		return
	}

	switch index {
	case mainMenuPlay:
		s.switchTo(ScenePlay)
	case mainMenuTutorial:
		s.switchTo(SceneTutorial)
	case mainMenuScores:
		s.switchTo(SceneScores)
	case mainMenuSettings:
		s.switchTo(SceneSettings)
	case mainMenuQuit:
		log.Printf("[MainMenuScene] Quit requested")
		if s.onQuit != nil {
			s.onQuit()
		}
	}
}

// Selected 当前选中的选项下标
func (s *MainMenuScene) Selected() int {
	return s.menu.selected
}

func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	rm := s.State.Resources
	drawStarfield(screen, rm.StarLayers(), s.stars.offset)

	face := rm.Font()
	drawCentered(screen, face, config.WindowTitle, 120, 5, colorHighlight)
	drawCentered(screen, face, fmt.Sprintf("HI-SCORE: %d", s.State.Scores.HighestScore()), 200, 2, colorText)
	s.menu.draw(screen, face, 300)
}
