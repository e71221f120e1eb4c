// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// sampleRate 音频采样率
const sampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 调优文件路径，为空时使用内嵌配置
	ConfigPath string
	// ScoresPath 分数文件路径
	ScoresPath string
	// UseGdata 通过 gdata 把设置和分数保存到用户数据目录
	UseGdata bool
	// SkipIntro 跳过开场直接进入主菜单
	SkipIntro bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	state                    *game.GameState
	sceneManager             *game.SceneManager
	verbose                  bool
	quitRequested            bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	audioContext := audio.NewContext(sampleRate)

	state, err := game.NewGameState(game.Options{
		ConfigPath:   cfg.ConfigPath,
		ScoresPath:   cfg.ScoresPath,
		UseGdata:     cfg.UseGdata,
		AudioContext: audioContext,
	})
	if err != nil {
		return nil, fmt.Errorf("服务初始化失败: %w", err)
	}

	if err := state.Resources.Preload(); err != nil {
		return nil, fmt.Errorf("精灵加载失败: %w", err)
	}
	state.Audio.Preload()

	a := &App{
		state:        state,
		sceneManager: game.NewSceneManager(),
		verbose:      cfg.Verbose,
	}

	scenes.RegisterAll(&scenes.Services{
		State:  state,
		Scenes: a.sceneManager,
		Input:  state.Input,
	}, a.RequestQuit)

	first := scenes.SceneIntro
	if cfg.SkipIntro {
		first = scenes.SceneMainMenu
	}
	a.sceneManager.SwitchTo(first)

	if state.Settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Started with scene %q", first)
	return a, nil
}

// RequestQuit 请求在下一帧结束游戏循环
func (a *App) RequestQuit() {
	a.quitRequested = true
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.quitRequested {
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	settings := a.state.Settings
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		settings.SetFullscreen(!settings.GetSettings().Fullscreen)
	}
	a.applyFullscreen(settings.GetSettings().Fullscreen)

	a.state.Input.Update()

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// applyFullscreen 让窗口状态跟随设置
func (a *App) applyFullscreen(want bool) {
	if ebiten.IsFullscreen() == want {
		return
	}

	ebiten.SetFullscreen(want)
	if want {
		return
	}

	// 退出全屏
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
	a.pendingWindowSizeReset = true
	a.windowSizeResetCountdown = 3
	log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 像素风画面使用最近邻滤波，保持像素边缘清晰
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 在游戏循环结束后调用
// 通知实现 Saveable 的场景，然后保存设置和分数表
func (a *App) Shutdown() error {
	for name, scene := range a.sceneManager.Scenes() {
		if s, ok := scene.(game.Saveable); ok && !s.SaveOnExit() {
			log.Printf("[App] Warning: scene %q failed to save on exit", name)
		}
	}
	if err := a.state.SaveAll(); err != nil {
		return fmt.Errorf("保存失败: %w", err)
	}
	log.Printf("[App] Saved settings and scores")
	return nil
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetGameState 返回服务容器
func (a *App) GetGameState() *game.GameState {
	return a.state
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
