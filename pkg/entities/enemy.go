package entities

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
)

// EnemyDeps 敌人射击需要的外部服务
type EnemyDeps struct {
	Config *config.WaveConfig
	SFX    game.SFXPlayer
	Rand   game.Random
}

// Enemy 阵列中的敌人或飞碟
//
// 只有乌贼拥有激光。敌人的水平移动由 EnemyManager 统一驱动，
// Enemy.Update 只负责刷新碰撞盒和射击判定。
type Enemy struct {
	components.GameObj
	Type  types.EnemyType
	Laser *Laser

	shootTimer components.Timer
	deps       EnemyDeps
}

// NewEnemy 创建指定类型的敌人（未激活）
// 未知类型属于编程错误，直接 panic
func NewEnemy(t types.EnemyType, deps EnemyDeps) *Enemy {
	if !t.IsValid() {
		panic(fmt.Sprintf("entities: unknown enemy type %d", t))
	}
	if deps.Config == nil {
		deps.Config = config.DefaultWaveConfig()
	}
	if deps.SFX == nil {
		deps.SFX = game.NopSFX{}
	}

	e := &Enemy{
		deps:       deps,
		shootTimer: components.NewTimer(deps.Config.EnemyTimeBetweenShots),
	}
	e.setType(t)
	return e
}

// setType 切换类型并同步精灵，乌贼按需创建激光
func (e *Enemy) setType(t types.EnemyType) {
	kind := types.SpriteForEnemy(t)
	w, h := config.SpriteSize(kind)

	e.Type = t
	e.Sprite.Kind = kind
	e.Sprite.Size = components.Vec2{X: w, Y: h}
	e.Sprite.Scale = 1

	if t == types.EnemySquid {
		if e.Laser == nil {
			e.Laser = NewLaser()
		}
	} else {
		e.Laser = nil
	}
}

// Spawn 以指定类型在 (x, y) 激活
// 新一波开始时复用已有实例
func (e *Enemy) Spawn(t types.EnemyType, x, y float64) {
	if t != e.Type {
		e.setType(t)
	}
	e.Active = true
	e.SetPosition(x, y)
	e.shootTimer.Reset()
	if e.Laser != nil {
		e.Laser.Active = false
	}
	e.UpdateBox(config.EnemyBoxScale)
}

// Update 刷新碰撞盒并进行射击判定
//
// 射击计时超过间隔后掷一次 [0,100) 的骰子，小于射击概率且激光空闲时开火。
// 无论是否开火，每次掷骰后计时器清零。
func (e *Enemy) Update(dt float64) {
	e.UpdateBox(config.EnemyBoxScale)

	if e.Laser == nil || e.deps.Rand == nil {
		return
	}

	e.shootTimer.Tick(dt)
	if !e.shootTimer.Ready() {
		return
	}
	e.shootTimer.Reset()

	if e.deps.Rand.IntN(100) >= e.deps.Config.EnemyShootChance {
		return
	}

	if !e.Laser.Active {
		e.Laser.Fire(e.Sprite.Pos.X, e.Sprite.Pos.Y+e.Sprite.Size.Y/2)
		e.deps.SFX.PlaySFX(types.SFXLaserShoot, 1)
	}
}

// Points 击毁该敌人获得的分数
// 飞碟从 UfoPoints 中随机选择
func (e *Enemy) Points(rng game.Random) int {
	switch e.Type {
	case types.EnemyOctopus:
		return config.OctopusPoints
	case types.EnemyCrab:
		return config.CrabPoints
	case types.EnemySquid:
		return config.SquidPoints
	case types.EnemyUfo:
		if rng == nil {
			return config.UfoPoints[0]
		}
		return config.UfoPoints[rng.IntN(len(config.UfoPoints))]
	default:
		return 0
	}
}

// Render 绘制敌人（激光由 EnemyManager 在所有敌人之后绘制）
func (e *Enemy) Render(c components.Canvas, showCollider bool) {
	e.GameObj.Render(c, showCollider)
}
