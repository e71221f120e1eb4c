package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PlayScene 游戏场景
//
// 包装一局 systems.PlayMode：每帧推进玩法，把精灵画到屏幕上并绘制 HUD。
// 本局结束（退出或录入名字）后切换到结算场景。
type PlayScene struct {
	*Services

	mode *systems.PlayMode
}

// NewPlayScene 创建游戏场景
//
// 参数：
//   - svc: 共享服务，玩法所需的配置、音效、计分和随机数都取自 svc.State
//
// 返回：
//   - *PlayScene: 已开好一局的游戏场景
func NewPlayScene(svc *Services) *PlayScene {
	gs := svc.State
	return &PlayScene{
		Services: svc,
		mode: systems.NewPlayMode(systems.PlayModeDeps{
			Config:  gs.Config,
			Input:   svc.Input,
			SFX:     svc.sfx(),
			Haptics: svc.haptics(),
			Scores:  gs.Scores,
			Rand:    gs.Rand,
		}),
	}
}

// Reset 每次切换到本场景时重新开局
func (s *PlayScene) Reset() {
	s.mode.Reset()
}

func (s *PlayScene) Enter() {
	s.playMusic(types.MusicPlay)
}

func (s *PlayScene) Update(dt float64) {
	switch s.mode.Update(dt) {
	case systems.OutcomeQuit:
		log.Printf("[PlayScene] Session abandoned")
		s.switchTo(SceneGameOver)
	case systems.OutcomeFinished:
		log.Printf("[PlayScene] Session finished with %d points", s.mode.FinalScore().Points)
		s.switchTo(SceneGameOver)
	}
}

// Mode 当前这局游戏
func (s *PlayScene) Mode() *systems.PlayMode {
	return s.mode
}

// FinalScore 最近一局结束时的分数
func (s *PlayScene) FinalScore() game.Score {
	return s.mode.FinalScore()
}

// SaveOnExit 窗口关闭时把正在进行的一局作废，只保存已有的分数表
func (s *PlayScene) SaveOnExit() bool {
	s.State.Scores.DiscardCurrentScore()
	return true
}

func (s *PlayScene) Draw(screen *ebiten.Image) {
	rm := s.State.Resources
	drawStarfield(screen, rm.StarLayers(), s.mode.BackgroundOffset)

	canvas := &spriteCanvas{screen: screen, resources: rm}
	s.mode.Render(canvas, s.State.Settings.GetSettings().ShowColliders)

	s.drawHUD(screen, rm.Font())
}

func (s *PlayScene) drawHUD(screen *ebiten.Image, face text.Face) {
	pm := s.mode

	drawCentered(screen, face, fmt.Sprintf("SCORE: %d", pm.Score()), 12, 3, colorText)
	utils.DrawText(screen, face, pm.LivesText(), 16, 12, 3, text.AlignStart, colorText)
	utils.DrawText(screen, face, fmt.Sprintf("HI: %d", pm.HighestScore()),
		config.GameWindowWidth-16, 12, 3, text.AlignEnd, colorText)

	if pm.ShowGameOverText() {
		drawCentered(screen, face, "GAME OVER", 300, 8, colorWarning)
	}

	if pm.IsQuitPrompt() {
		drawOverlay(screen)
		drawCentered(screen, face, pm.QuitPromptText(), 330, 3, colorHighlight)
	}

	if entry := pm.ScoreEntry(); entry != nil {
		drawOverlay(screen)
		drawCentered(screen, face, fmt.Sprintf("YOUR SCORE: %d", pm.Score()), 200, 4, colorHighlight)
		drawCentered(screen, face, "ENTER YOUR NAME", 280, 3, colorText)
		drawCentered(screen, face, entry.Name()+"_", 340, 5, colorHighlight)

		clr := colorText
		if entry.IsWarning() {
			clr = colorWarning
		}
		drawCentered(screen, face, entry.Message(), 440, 2, clr)
	}
}
