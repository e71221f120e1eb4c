package scenes

import (
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 场景注册名
const (
	SceneIntro    = "intro"
	SceneMainMenu = "menu"
	SceneTutorial = "tutorial"
	SceneSettings = "settings"
	SceneScores   = "scores"
	ScenePlay     = "play"
	SceneGameOver = "gameover"
)

// Services 所有场景共享的服务
//
// Input 单独给出，游戏运行时是 State.Input，测试中可以换成 game.InputState。
type Services struct {
	State  *game.GameState
	Scenes *game.SceneManager
	Input  game.Input
}

// sfx 音效播放器，没有音频服务时静音
func (s *Services) sfx() game.SFXPlayer {
	if s.State == nil || s.State.Audio == nil {
		return game.NopSFX{}
	}
	return s.State.Audio
}

// haptics 输入设备提供震动时使用它，否则不震动
func (s *Services) haptics() game.Haptics {
	if h, ok := s.Input.(game.Haptics); ok {
		return h
	}
	return game.NopHaptics{}
}

// playMusic 播放背景音乐
func (s *Services) playMusic(m types.Music) {
	if s.State != nil && s.State.Audio != nil {
		s.State.Audio.PlayMusic(m)
	}
}

func (s *Services) switchTo(name string) {
	if s.Scenes != nil {
		s.Scenes.SwitchTo(name)
	}
}

// RegisterAll 创建并注册全部场景
//
// 参数：
//   - svc: 共享服务，svc.Scenes 不能为 nil
//   - onQuit: 主菜单选择 QUIT 时的回调
//
// 返回：
//   - *PlayScene: 游戏场景，调用方可用它读取本局结果
func RegisterAll(svc *Services, onQuit func()) *PlayScene {
	sm := svc.Scenes
	play := NewPlayScene(svc)

	sm.Register(SceneIntro, NewIntroScene(svc))
	sm.Register(SceneMainMenu, NewMainMenuScene(svc, onQuit))
	sm.Register(SceneTutorial, NewTutorialScene(svc))
	sm.Register(SceneSettings, NewSettingsScene(svc))
	sm.Register(SceneScores, NewScoresScene(svc))
	sm.Register(ScenePlay, play)
	sm.Register(SceneGameOver, NewGameOverScene(svc, play))
	return play
}
