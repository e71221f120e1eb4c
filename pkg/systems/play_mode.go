package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// Outcome 一帧更新后游戏模式希望发生的切换
type Outcome int

const (
	OutcomeNone     Outcome = iota // 继续游戏
	OutcomeQuit                    // 玩家确认退出，本局分数作废
	OutcomeFinished                // 名字已录入，分数已保存
)

// ScoreBook 游戏模式使用的计分服务
// *game.ScoreSystem 满足该接口
type ScoreBook interface {
	game.ScoreKeeper
	AddCurrentName(name string)
	ClearCurrentScore()
	DiscardCurrentScore()
	SaveScores() error
	HighestScore() int
}

// PlayModeDeps 一局游戏依赖的外部服务
type PlayModeDeps struct {
	Config  *config.WaveConfig
	Input   game.Input
	SFX     game.SFXPlayer
	Haptics game.Haptics
	Scores  ScoreBook
	Rand    game.Random
}

// PlayMode 一局游戏
//
// 持有玩家、导弹池、掩体和敌人阵列，按固定顺序逐帧更新，
// 并管理退出确认、游戏结束倒计时和名字录入。
type PlayMode struct {
	deps PlayModeDeps

	player   *entities.Player
	missiles *ecs.Pool[*entities.Missile]
	shelters *ShelterManager
	enemies  *EnemyManager

	gameOver         bool
	gameOverTime     float64
	blinkTimer       float64
	showGameOverText bool

	quitPrompt bool
	entry      *ScoreEntry
	finalScore game.Score

	bgOffsets [config.BackgroundLayers]float64
}

// NewPlayMode 创建一局新游戏
//
// 参数：
//   - deps: 配置、输入、音效、震动、计分和随机数服务（Scores 不能为 nil）
//
// 返回：
//   - *PlayMode: 已布置好所有实体的游戏模式
func NewPlayMode(deps PlayModeDeps) *PlayMode {
	if deps.Config == nil {
		deps.Config = config.DefaultWaveConfig()
	}
	if deps.SFX == nil {
		deps.SFX = game.NopSFX{}
	}
	if deps.Haptics == nil {
		deps.Haptics = game.NopHaptics{}
	}
	if deps.Scores == nil {
		deps.Scores = game.NewScoreSystem(nil)
	}

	pm := &PlayMode{deps: deps}
	pm.init()
	return pm
}

// init 重建本局所有实体
func (pm *PlayMode) init() {
	pm.gameOver = false
	pm.gameOverTime = 0
	pm.blinkTimer = 0
	pm.showGameOverText = false
	pm.quitPrompt = false
	pm.entry = nil
	pm.finalScore = game.Score{}

	pm.missiles = ecs.NewPool(config.MaxMissiles, func(int) *entities.Missile {
		return entities.NewMissile(nil)
	})
	pm.player = entities.NewPlayer(pm.deps.Config.PlayerLives, pm, pm.deps.Input, pm.missiles, pm.deps.SFX)
	pm.shelters = NewShelterManager(pm.player.Position().Y, pm.deps.SFX)
	pm.missiles.Each(func(_ int, m *entities.Missile) bool {
		m.SetShelters(pm.shelters)
		return true
	})

	pm.enemies = NewEnemyManager(EnemyManagerDeps{
		Config:  pm.deps.Config,
		SFX:     pm.deps.SFX,
		Haptics: pm.deps.Haptics,
		Scores:  pm.deps.Scores,
		Rand:    pm.deps.Rand,
	}, pm)
}

// Reset 放弃当前分数并重新开局
func (pm *PlayMode) Reset() {
	pm.deps.Scores.DiscardCurrentScore()
	pm.init()
	log.Printf("[PlayMode] Session reset")
}

// Update 推进一帧并返回需要的模式切换
func (pm *PlayMode) Update(dt float64) Outcome {
	if pm.entry != nil {
		return pm.updateScoreEntry()
	}

	in := pm.deps.Input
	if pm.quitPrompt {
		return pm.updateQuitPrompt(in)
	}

	pm.updateObjects(dt)

	if pm.gameOver {
		pm.blinkTimer += dt
		if pm.blinkTimer >= config.GameOverBlinkInterval {
			pm.gameOverTime += pm.blinkTimer
			pm.blinkTimer = 0
			pm.showGameOverText = !pm.showGameOverText
		}
		if pm.gameOverTime > config.GameOverTransitionTime {
			pm.entry = NewScoreEntry()
			log.Printf("[PlayMode] Entering score name for %d points", pm.Score())
		}
		return OutcomeNone
	}

	if in != nil && in.JustPressed(game.ActionBack) {
		pm.quitPrompt = true
	}
	return OutcomeNone
}

// updateObjects 按 玩家 → 导弹 → 掩体 → 敌人 的顺序更新，并滚动背景
func (pm *PlayMode) updateObjects(dt float64) {
	for i := range pm.bgOffsets {
		speed := config.ScrollSpeed * float64(i+1)
		pm.bgOffsets[i] = math.Mod(pm.bgOffsets[i]+speed*dt, config.GameWindowHeight)
	}

	pm.player.Update(dt)
	pm.missiles.EachActive(func(m *entities.Missile) {
		m.Update(dt)
	})
	pm.shelters.Update(dt)
	pm.enemies.Update(dt)
}

func (pm *PlayMode) updateQuitPrompt(in game.Input) Outcome {
	if in == nil {
		return OutcomeNone
	}

	for _, r := range in.TypedChars() {
		switch r {
		case 'y', 'Y':
			return pm.quit()
		case 'n', 'N':
			pm.quitPrompt = false
			return OutcomeNone
		}
	}

	if in.JustPressed(game.ActionConfirm) {
		return pm.quit()
	}
	if in.JustPressed(game.ActionBack) {
		pm.quitPrompt = false
	}
	return OutcomeNone
}

func (pm *PlayMode) quit() Outcome {
	pm.quitPrompt = false
	pm.finalScore = pm.deps.Scores.CurrentScore()
	pm.deps.Scores.DiscardCurrentScore()
	log.Printf("[PlayMode] Player quit with %d points", pm.finalScore.Points)
	return OutcomeQuit
}

func (pm *PlayMode) updateScoreEntry() Outcome {
	name, ok := pm.entry.Update(pm.deps.Input)
	if !ok {
		return OutcomeNone
	}

	scores := pm.deps.Scores
	scores.AddCurrentName(name)
	pm.finalScore = scores.CurrentScore()
	scores.ClearCurrentScore()
	if err := scores.SaveScores(); err != nil {
		log.Printf("[PlayMode] Failed to save scores: %v", err)
	}
	pm.entry = nil
	return OutcomeFinished
}

// GameIsOver 宣布游戏结束，玩家失去全部生命
// 重复调用无效果
func (pm *PlayMode) GameIsOver() {
	if pm.gameOver {
		return
	}
	pm.gameOver = true
	pm.showGameOverText = true
	pm.missiles.EachActive(func(m *entities.Missile) {
		m.Explode()
	})
	pm.player.Kill()
	log.Printf("[PlayMode] Game over, score %d", pm.Score())
}

// IsGameOver 游戏是否已结束
func (pm *PlayMode) IsGameOver() bool {
	return pm.gameOver
}

// Player 玩家飞船
func (pm *PlayMode) Player() *entities.Player {
	return pm.player
}

// Missiles 导弹池
func (pm *PlayMode) Missiles() *ecs.Pool[*entities.Missile] {
	return pm.missiles
}

// ShelterManager 掩体管理器
func (pm *PlayMode) ShelterManager() *ShelterManager {
	return pm.shelters
}

// EnemyManager 敌人管理器
func (pm *PlayMode) EnemyManager() *EnemyManager {
	return pm.enemies
}

// Render 绘制本局所有实体
func (pm *PlayMode) Render(c components.Canvas, showColliders bool) {
	pm.shelters.Render(c, showColliders)
	pm.player.Render(c, showColliders)
	pm.missiles.EachActive(func(m *entities.Missile) {
		m.Render(c, showColliders)
	})
	pm.enemies.Render(c, showColliders)
}

// Lives 剩余生命
func (pm *PlayMode) Lives() int {
	return pm.player.Lives()
}

// Score 当前分数
func (pm *PlayMode) Score() int {
	return pm.deps.Scores.CurrentScore().Points
}

// HighestScore 历史最高分
func (pm *PlayMode) HighestScore() int {
	return pm.deps.Scores.HighestScore()
}

// FinalScore 最近一次结束（退出或录入名字）时的分数
func (pm *PlayMode) FinalScore() game.Score {
	return pm.finalScore
}

// LivesText 生命显示文本
func (pm *PlayMode) LivesText() string {
	return fmt.Sprintf("LIVES: %d", pm.Lives())
}

// ShowGameOverText GAME OVER 文字当前是否可见
func (pm *PlayMode) ShowGameOverText() bool {
	return pm.gameOver && pm.showGameOverText
}

// IsQuitPrompt 是否显示退出确认
func (pm *PlayMode) IsQuitPrompt() bool {
	return pm.quitPrompt
}

// QuitPromptText 退出确认文本，按输入设备提示按键
func (pm *PlayMode) QuitPromptText() string {
	if pm.deps.Input != nil && pm.deps.Input.GamepadConnected() {
		return "WOULD YOU LIKE TO EXIT? (A or B)"
	}
	return "WOULD YOU LIKE TO EXIT? (Y or N)"
}

// ScoreEntry 名字输入框，未处于录入阶段时返回 nil
func (pm *PlayMode) ScoreEntry() *ScoreEntry {
	return pm.entry
}

// BackgroundOffset 第 layer 层背景的滚动偏移
func (pm *PlayMode) BackgroundOffset(layer int) float64 {
	if layer < 0 || layer >= len(pm.bgOffsets) {
		return 0
	}
	return pm.bgOffsets[layer]
}
