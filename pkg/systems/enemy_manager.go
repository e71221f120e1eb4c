package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
)

// Battlefield 敌人管理器所在的游戏模式
// 提供玩家、导弹池和掩体，并接收游戏结束通知
type Battlefield interface {
	IsGameOver() bool
	GameIsOver()
	Player() *entities.Player
	Missiles() *ecs.Pool[*entities.Missile]
	ShelterManager() *ShelterManager
}

// EnemyManagerDeps 敌人管理器依赖的外部服务
type EnemyManagerDeps struct {
	Config  *config.WaveConfig
	SFX     game.SFXPlayer
	Haptics game.Haptics
	Scores  game.ScoreKeeper
	Rand    game.Random
}

// EnemyManager 驱动敌人阵列的行进、飞碟和碰撞结算
//
// 阵列中的敌人全部预先分配，一波结束后原地复用。
// 飞碟是独立于阵列的单个实例。
type EnemyManager struct {
	deps  EnemyManagerDeps
	field Battlefield

	roster *ecs.Pool[*entities.Enemy]
	ufo    *entities.Enemy

	activeEnemies int
	wave          int
	speed         float64
	direction     float64
	ufoDirection  float64

	leftLimit  float64
	rightLimit float64
}

// NewEnemyManager 创建敌人管理器并摆好第一波阵列
//
// 参数：
//   - deps: 配置、音效、震动、计分和随机数服务
//   - field: 所在的游戏模式
//
// 返回：
//   - *EnemyManager: 已布阵的敌人管理器
func NewEnemyManager(deps EnemyManagerDeps, field Battlefield) *EnemyManager {
	if deps.Config == nil {
		deps.Config = config.DefaultWaveConfig()
	}
	if deps.SFX == nil {
		deps.SFX = game.NopSFX{}
	}
	if deps.Haptics == nil {
		deps.Haptics = game.NopHaptics{}
	}

	enemyDeps := entities.EnemyDeps{Config: deps.Config, SFX: deps.SFX, Rand: deps.Rand}
	cfg := deps.Config

	em := &EnemyManager{
		deps:       deps,
		field:      field,
		leftLimit:  cfg.EnemyLimitOffset,
		rightLimit: config.GameWindowWidth - cfg.EnemyLimitOffset,
	}
	em.roster = ecs.NewPool(cfg.RosterSize(), func(i int) *entities.Enemy {
		return entities.NewEnemy(types.RowEnemyType(i/cfg.EnemiesPerRow), enemyDeps)
	})

	em.ufo = entities.NewEnemy(types.EnemyUfo, enemyDeps)
	em.ufo.SetPosition(0, cfg.UfoInitialY)
	em.ufoDirection = 1

	em.layout()
	return em
}

// layout 按行列摆放整波敌人并恢复初始速度和方向
func (em *EnemyManager) layout() {
	cfg := em.deps.Config
	startX := cfg.RowStartX(config.GameWindowWidth)
	cell := cfg.CellWidth()

	em.activeEnemies = 0
	em.roster.Each(func(i int, e *entities.Enemy) bool {
		row, col := i/cfg.EnemiesPerRow, i%cfg.EnemiesPerRow
		x := startX + (float64(col)+0.5)*cell
		y := cfg.EnemyInitialY + float64(row)*cfg.RowYSpacing
		e.Spawn(types.RowEnemyType(row), x, y)
		em.activeEnemies++
		return true
	})

	em.speed = cfg.EnemyStartSpeed
	em.direction = 1
}

// ResetWave 奖励清场分数和一条生命，然后重新布阵
func (em *EnemyManager) ResetWave() {
	if em.deps.Scores != nil {
		em.deps.Scores.AddCurrentPoints(config.WaveFinishPoints)
	}
	if p := em.player(); p != nil {
		p.AddLives(1)
	}

	em.wave++
	log.Printf("[EnemyManager] Wave %d cleared, respawning %d enemies", em.wave, em.roster.Len())
	em.layout()
}

// Update 推进一帧
//
// 执行顺序：
//  1. 场上没有敌人时重新布阵并返回
//  2. 更新激光，整体水平移动，记录最低敌人
//  3. 任一敌人越过边界时整体下移一次并掉头，同时掷骰决定是否放出飞碟
//  4. 移动飞碟
//  5. 最低敌人越过结束线时宣布游戏结束
//  6. 结算碰撞
func (em *EnemyManager) Update(dt float64) {
	if em.field != nil && em.field.IsGameOver() {
		return
	}

	if em.activeEnemies <= 0 {
		em.ResetWave()
		return
	}

	bottomY := 0.0
	crossed := false
	em.roster.Each(func(_ int, e *entities.Enemy) bool {
		if e.Laser != nil && e.Laser.Active {
			e.Laser.Update(dt)
		}
		if !e.Active {
			return true
		}

		e.Move(em.direction*em.speed*dt, 0)
		e.Update(dt)

		x := e.Position().X
		if (em.direction > 0 && x > em.rightLimit) || (em.direction < 0 && x < em.leftLimit) {
			crossed = true
		}
		return true
	})

	if crossed {
		em.stepDown()
	}

	em.roster.EachActive(func(e *entities.Enemy) {
		if y := e.Position().Y; y > bottomY {
			bottomY = y
		}
	})

	em.updateUfo(dt)

	if bottomY >= em.deps.Config.GameOverLine {
		log.Printf("[EnemyManager] Invaders reached the line at y=%.1f", bottomY)
		if em.field != nil {
			em.field.GameIsOver()
		}
		return
	}

	em.CheckCollisions()
}

// stepDown 所有存活敌人下移一格并掉头，之后尝试放出飞碟
func (em *EnemyManager) stepDown() {
	downstep := em.deps.Config.EnemyDownstep
	em.roster.EachActive(func(e *entities.Enemy) {
		e.Move(0, downstep)
		e.UpdateBox(config.EnemyBoxScale)
	})
	em.direction = -em.direction

	if em.ufo.Active || em.deps.Rand == nil {
		return
	}
	if em.deps.Rand.IntN(100) < em.deps.Config.UfoChance {
		em.activateUfo()
	}
}

// activateUfo 从当前行进方向的起始一侧放出飞碟
func (em *EnemyManager) activateUfo() {
	x := 0.0
	if em.ufoDirection < 0 {
		x = config.GameWindowWidth
	}
	em.ufo.Spawn(types.EnemyUfo, x, em.deps.Config.UfoInitialY)
	log.Printf("[EnemyManager] UFO launched at x=%.0f", x)
}

// updateUfo 飞碟水平飞行，离开屏幕后停用并在下次出现时反向
func (em *EnemyManager) updateUfo(dt float64) {
	if !em.ufo.Active {
		return
	}

	em.ufo.Move(em.ufoDirection*config.EnemyUfoSpeed*dt, 0)
	x := em.ufo.Position().X
	if x < 0 || x > config.GameWindowWidth+em.ufo.Size().X/2 {
		em.ufo.Active = false
		em.ufoDirection = -em.ufoDirection
		return
	}
	em.ufo.Update(dt)
}

// CheckCollisions 结算激光与掩体、激光与玩家、导弹与敌人/飞碟的碰撞
// 每帧至多结算一次导弹命中
func (em *EnemyManager) CheckCollisions() {
	var missile *entities.Missile
	var shelters *ShelterManager
	player := em.player()
	if em.field != nil {
		if pool := em.field.Missiles(); pool != nil {
			missile, _ = pool.FindFirst(true)
		}
		shelters = em.field.ShelterManager()
	}

	missileExploded := false
	em.roster.Each(func(_ int, e *entities.Enemy) bool {
		if l := e.Laser; l != nil {
			if l.Active && shelters != nil && shelters.AnySheltersLeft() {
				shelters.CheckLaserCollision(l)
			}
			if l.Active && player != nil && player.IsAlive() && player.Box.Overlaps(l.Box) {
				em.LaserHit(player, l)
			}
		}

		if missile != nil && missile.Active && !missileExploded && e.Active && missile.Box.Overlaps(e.Box) {
			em.MissileHit(e, missile)
			missileExploded = true
		}
		return true
	})

	if missile != nil && missile.Active && !missileExploded && em.ufo.Active && missile.Box.Overlaps(em.ufo.Box) {
		em.MissileHit(em.ufo, missile)
		em.ufo.SetPosition(0, em.ufo.Position().Y)
		em.ufoDirection = 1
	}
}

// MissileHit 导弹击中敌人：停用两者，计分并加快阵列速度
func (em *EnemyManager) MissileHit(e *entities.Enemy, m *entities.Missile) {
	m.Explode()
	em.deps.SFX.PlaySFX(types.SFXExplosion, 1)

	e.Active = false
	if e.Type != types.EnemyUfo {
		em.activeEnemies--
	}
	em.deps.SFX.PlaySFX(types.SFXHit, 1)

	if em.deps.Haptics.IsConnected() {
		em.deps.Haptics.Vibrate(config.EnemyKilledVibrateSeconds, config.EnemyKilledVibrateWeak, config.EnemyKilledVibrateStrong)
	}

	if em.deps.Scores != nil {
		em.deps.Scores.AddCurrentPoints(e.Points(em.deps.Rand))
	}
	em.speed += config.EnemySpeedInc
}

// LaserHit 激光击中玩家：熄灭激光，玩家进入恢复期
func (em *EnemyManager) LaserHit(p *entities.Player, l *entities.Laser) {
	l.Extinguish()
	p.Hit()
	em.deps.SFX.PlaySFX(types.SFXHit, 1)

	if em.deps.Haptics.IsConnected() {
		em.deps.Haptics.Vibrate(config.PlayerHitVibrateSeconds, config.PlayerHitVibrateWeak, config.PlayerHitVibrateStrong)
	}
}

// Render 先绘制敌人和飞碟，最后绘制激光使其位于最上层
func (em *EnemyManager) Render(c components.Canvas, showColliders bool) {
	var lasers []*entities.Laser
	em.roster.Each(func(_ int, e *entities.Enemy) bool {
		e.Render(c, showColliders)
		if e.Laser != nil && e.Laser.Active {
			lasers = append(lasers, e.Laser)
		}
		return true
	})

	em.ufo.Render(c, showColliders)

	for _, l := range lasers {
		l.Render(c, showColliders)
	}
}

func (em *EnemyManager) player() *entities.Player {
	if em.field == nil {
		return nil
	}
	return em.field.Player()
}

// ActiveEnemies 场上存活的阵列敌人数量（不含飞碟）
func (em *EnemyManager) ActiveEnemies() int {
	return em.activeEnemies
}

// Roster 返回阵列实例池
func (em *EnemyManager) Roster() *ecs.Pool[*entities.Enemy] {
	return em.roster
}

// Ufo 返回飞碟实例
func (em *EnemyManager) Ufo() *entities.Enemy {
	return em.ufo
}

// Speed 当前阵列速度
func (em *EnemyManager) Speed() float64 {
	return em.speed
}

// Direction 当前阵列行进方向（1 向右，-1 向左）
func (em *EnemyManager) Direction() float64 {
	return em.direction
}

// Limits 阵列左右边界
func (em *EnemyManager) Limits() (left, right float64) {
	return em.leftLimit, em.rightLimit
}

// Wave 已清空的波数
func (em *EnemyManager) Wave() int {
	return em.wave
}
