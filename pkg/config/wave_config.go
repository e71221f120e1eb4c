package config

import (
	"fmt"
	"os"

	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultWaveConfigPath 内嵌的默认调优文件
const DefaultWaveConfigPath = "data/tuning.yaml"

// WaveConfig 敌人波次与玩家的可调参数
//
// 所有字段都可以在 YAML 中省略，缺省的字段保留 DefaultWaveConfig 的值，显式写出的 0 会被保留。
type WaveConfig struct {
	NumOfRows             int     `yaml:"numOfRows"`             // 敌人行数
	EnemiesPerRow         int     `yaml:"enemiesPerRow"`         // 每行敌人数量
	RowXSpacing           float64 `yaml:"rowXSpacing"`           // 同一行敌人之间的水平间距
	RowYSpacing           float64 `yaml:"rowYSpacing"`           // 行间距
	EnemyInitialY         float64 `yaml:"enemyInitialY"`         // 首行初始 Y 坐标
	UfoInitialY           float64 `yaml:"ufoInitialY"`           // 飞碟 Y 坐标
	EnemyLimitOffset      float64 `yaml:"enemyLimitOffset"`      // 阵列左右边界距屏幕边缘的距离
	EnemyDownstep         float64 `yaml:"enemyDownstep"`         // 碰到边界后整体下移的距离
	EnemyStartSpeed       float64 `yaml:"enemyStartSpeed"`       // 每波开始时的阵列速度
	UfoChance             int     `yaml:"ufoChance"`             // 每次下移时出现飞碟的概率（0-100）
	EnemyShootChance      int     `yaml:"enemyShootChance"`      // 乌贼每次判定开火的概率（0-100）
	EnemyTimeBetweenShots float64 `yaml:"enemyTimeBetweenShots"` // 两次开火判定之间的间隔（秒）
	GameOverLine          float64 `yaml:"gameOverLine"`          // 最低敌人到达该 Y 坐标即游戏结束
	PlayerLives           int     `yaml:"playerLives"`           // 玩家初始生命数
}

// DefaultWaveConfig 返回默认调优参数
func DefaultWaveConfig() *WaveConfig {
	return &WaveConfig{
		NumOfRows:             5,
		EnemiesPerRow:         11,
		RowXSpacing:           10,
		RowYSpacing:           50,
		EnemyInitialY:         120,
		UfoInitialY:           50,
		EnemyLimitOffset:      25,
		EnemyDownstep:         15,
		EnemyStartSpeed:       10,
		UfoChance:             5,
		EnemyShootChance:      3,
		EnemyTimeBetweenShots: 1,
		GameOverLine:          600,
		PlayerLives:           3,
	}
}

// LoadWaveConfig 从磁盘读取调优文件
//
// 参数：
//   - path: YAML 文件路径
//
// 返回：
//   - *WaveConfig: 合并默认值并通过校验的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadWaveConfig(path string) (*WaveConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}

	cfg, err := ParseWaveConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEmbeddedWaveConfig 读取内嵌的默认调优文件
func LoadEmbeddedWaveConfig() (*WaveConfig, error) {
	data, err := embedded.ReadFile(DefaultWaveConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tuning file: %w", err)
	}
	return ParseWaveConfig(data)
}

// ParseWaveConfig 解析 YAML 数据，缺失字段保留默认值
func ParseWaveConfig(data []byte) (*WaveConfig, error) {
	cfg := *DefaultWaveConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验参数合法性，并确保整行敌人能放进左右边界之间
func (c *WaveConfig) Validate() error {
	if c.NumOfRows < 1 || c.EnemiesPerRow < 1 {
		return fmt.Errorf("numOfRows and enemiesPerRow must be at least 1, got %d x %d", c.NumOfRows, c.EnemiesPerRow)
	}
	if c.RosterSize() > MaxRosterSize {
		return fmt.Errorf("roster size %d exceeds limit %d", c.RosterSize(), MaxRosterSize)
	}
	if c.UfoChance < 0 || c.UfoChance > 100 {
		return fmt.Errorf("ufoChance must be within 0..100, got %d", c.UfoChance)
	}
	if c.EnemyShootChance < 0 || c.EnemyShootChance > 100 {
		return fmt.Errorf("enemyShootChance must be within 0..100, got %d", c.EnemyShootChance)
	}
	if c.RowXSpacing < 0 || c.RowYSpacing < 0 || c.EnemyDownstep < 0 {
		return fmt.Errorf("spacing and downstep cannot be negative")
	}
	if c.EnemyStartSpeed < 0 || c.EnemyTimeBetweenShots < 0 {
		return fmt.Errorf("enemyStartSpeed and enemyTimeBetweenShots cannot be negative")
	}
	if c.PlayerLives < 1 {
		return fmt.Errorf("playerLives must be at least 1, got %d", c.PlayerLives)
	}

	// 首尾两个敌人的中心必须位于 [leftLimit, rightLimit] 内
	first, last := c.RowExtent(GameWindowWidth)
	if first < c.EnemyLimitOffset || last > GameWindowWidth-c.EnemyLimitOffset {
		return fmt.Errorf("row of %d enemies (x %.1f..%.1f) does not fit between limits %.1f..%.1f",
			c.EnemiesPerRow, first, last, c.EnemyLimitOffset, GameWindowWidth-c.EnemyLimitOffset)
	}
	return nil
}

// RosterSize 返回阵列容量（行数 × 每行数量）
func (c *WaveConfig) RosterSize() int {
	return c.NumOfRows * c.EnemiesPerRow
}

// CellWidth 返回阵列中每个敌人占用的宽度
// 以最宽的章鱼为准，保证所有类型间距一致
func (c *WaveConfig) CellWidth() float64 {
	w, _ := SpriteSize(types.SpriteOctopus)
	return w + c.RowXSpacing
}

// RowStartX 返回一行敌人居中排布时的起始 X 坐标
func (c *WaveConfig) RowStartX(screenWidth float64) float64 {
	rowWidth := float64(c.EnemiesPerRow) * c.CellWidth()
	return (screenWidth - rowWidth) / 2
}

// RowExtent 返回一行中第一个与最后一个敌人的中心 X 坐标
func (c *WaveConfig) RowExtent(screenWidth float64) (first, last float64) {
	start := c.RowStartX(screenWidth)
	cell := c.CellWidth()
	return start + 0.5*cell, start + (float64(c.EnemiesPerRow)-0.5)*cell
}

// TuningKeys 所有调优参数的 YAML 字段名，顺序与文件中一致
var TuningKeys = []string{
	"numOfRows", "enemiesPerRow", "rowXSpacing", "rowYSpacing",
	"enemyInitialY", "ufoInitialY", "enemyLimitOffset", "enemyDownstep",
	"enemyStartSpeed", "ufoChance", "enemyShootChance", "enemyTimeBetweenShots",
	"gameOverLine", "playerLives",
}

// lookup 按 YAML 字段名取值
func (c *WaveConfig) lookup(name string) (float64, bool) {
	switch name {
	case "numOfRows":
		return float64(c.NumOfRows), true
	case "enemiesPerRow":
		return float64(c.EnemiesPerRow), true
	case "rowXSpacing":
		return c.RowXSpacing, true
	case "rowYSpacing":
		return c.RowYSpacing, true
	case "enemyInitialY":
		return c.EnemyInitialY, true
	case "ufoInitialY":
		return c.UfoInitialY, true
	case "enemyLimitOffset":
		return c.EnemyLimitOffset, true
	case "enemyDownstep":
		return c.EnemyDownstep, true
	case "enemyStartSpeed":
		return c.EnemyStartSpeed, true
	case "ufoChance":
		return float64(c.UfoChance), true
	case "enemyShootChance":
		return float64(c.EnemyShootChance), true
	case "enemyTimeBetweenShots":
		return c.EnemyTimeBetweenShots, true
	case "gameOverLine":
		return c.GameOverLine, true
	case "playerLives":
		return float64(c.PlayerLives), true
	}
	return 0, false
}

// GetInt 按 YAML 字段名读取整数参数，不存在时返回 def
// 玩法代码直接读字段；按名读取供命令行工具和调试输出使用
func (c *WaveConfig) GetInt(name string, def int) int {
	if v, ok := c.lookup(name); ok {
		return int(v)
	}
	return def
}

// GetFloat 按 YAML 字段名读取浮点参数，不存在时返回 def
func (c *WaveConfig) GetFloat(name string, def float64) float64 {
	if v, ok := c.lookup(name); ok {
		return v
	}
	return def
}
