package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
)

// DefaultAppName gdata 用户数据目录名
const DefaultAppName = "interstellar_assault"

// Options 创建 GameState 的启动参数
type Options struct {
	// ConfigPath 调优文件路径，为空时使用内嵌的 data/tuning.yaml
	ConfigPath string
	// ScoresPath 分数文件路径，为空且启用 gdata 时保存到用户数据目录，否则使用 config.ScoreFilePath
	ScoresPath string
	// UseGdata 是否通过 gdata 持久化设置和分数
	UseGdata bool
	// AppName gdata 应用名，为空时使用 DefaultAppName
	AppName string
	// AudioContext 音频上下文，为 nil 时静音
	AudioContext *audio.Context
	// Seed 随机数种子，为 0 时使用当前时间
	Seed uint64
}

// GameState 持有所有跨场景共享的服务
//
// 由 app 在启动时创建一次，然后逐个注入到场景和玩法对象中。
// 不提供全局访问入口。
type GameState struct {
	Config    *config.WaveConfig
	Settings  *SettingsManager
	Scores    *ScoreSystem
	Audio     *AudioManager
	Input     *InputManager
	Resources *ResourceManager
	Rand      *rand.Rand

	gdataManager *gdata.Manager
}

// NewGameState 按启动参数创建所有服务
//
// 参数：
//   - opts: 启动参数
//
// 返回：
//   - *GameState: 服务容器
//   - error: 调优文件读取或校验失败时返回错误
func NewGameState(opts Options) (*GameState, error) {
	cfg, err := loadWaveConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	gs := &GameState{Config: cfg}

	if opts.UseGdata {
		gs.gdataManager = openGdata(opts.AppName)
	}

	gs.Settings, _ = NewSettingsManager(gs.gdataManager)
	gs.Scores = NewScoreSystem(gs.scoreStore(opts.ScoresPath))
	gs.Audio = NewAudioManager(opts.AudioContext, gs.Settings)
	gs.Input = NewInputManager()
	gs.Resources = NewResourceManager()

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gs.Rand = rand.New(rand.NewPCG(seed, seed>>1|1))

	log.Printf("[GameState] Services ready (gdata: %v, %d scores loaded)", gs.gdataManager != nil, len(gs.Scores.Scores()))
	return gs, nil
}

// loadWaveConfig 读取调优文件
// 内嵌资源未初始化时（例如测试中）使用默认值
func loadWaveConfig(path string) (*config.WaveConfig, error) {
	if path != "" {
		return config.LoadWaveConfig(path)
	}
	if !embedded.IsInitialized() {
		log.Printf("[GameState] Embedded data not initialized, using default tuning")
		return config.DefaultWaveConfig(), nil
	}
	cfg, err := config.LoadEmbeddedWaveConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load tuning: %w", err)
	}
	return cfg, nil
}

// openGdata 打开 gdata 存储，失败时返回 nil（降级为本地文件/内存）
func openGdata(appName string) *gdata.Manager {
	if appName == "" {
		appName = DefaultAppName
	}
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[GameState] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[GameState] Warning: Failed to open gdata storage: %v (falling back)", err)
		return nil
	}
	return manager
}

// scoreStore 选择分数存储后端
func (gs *GameState) scoreStore(path string) ScoreStore {
	if path == "" && gs.gdataManager != nil {
		return NewGdataScoreStore(gs.gdataManager)
	}
	if path == "" {
		path = config.ScoreFilePath
	}
	return NewFileScoreStore(path)
}

// GetGdataManager 返回 gdata 管理器，未启用时为 nil
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}

// SaveAll 保存设置和分数表
// 两者互不影响，错误合并后返回
func (gs *GameState) SaveAll() error {
	var errs []error
	if err := gs.Settings.Save(); err != nil {
		errs = append(errs, err)
	}
	if err := gs.Scores.SaveScores(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
