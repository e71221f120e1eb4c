package entities

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
)

// PlayerOwner 承载玩家的游戏模式
type PlayerOwner interface {
	IsGameOver() bool
	GameIsOver()
}

// PlayArea 玩家可以移动的矩形区域
type PlayArea struct {
	Left, Top, Right, Bottom float64
}

// Player 玩家飞船
type Player struct {
	components.GameObj

	lives         int
	recovering    bool
	recoveryTimer float64
	fireTimer     components.Timer
	area          PlayArea

	owner    PlayerOwner
	input    game.Input
	missiles *ecs.Pool[*Missile]
	sfx      game.SFXPlayer
}

// NewPlayer 创建玩家飞船并放在可移动区域底部中央
//
// 参数：
//   - lives: 初始生命数
//   - owner: 游戏模式，生命耗尽时通知
//   - input: 输入快照
//   - missiles: 导弹池
//   - sfx: 音效播放器
func NewPlayer(lives int, owner PlayerOwner, input game.Input, missiles *ecs.Pool[*Missile], sfx game.SFXPlayer) *Player {
	if sfx == nil {
		sfx = game.NopSFX{}
	}
	w, h := config.SpriteSize(types.SpriteShip)
	p := &Player{
		GameObj:  components.NewGameObj(types.SpriteShip, components.Vec2{X: w, Y: h}),
		lives:    lives,
		owner:    owner,
		input:    input,
		missiles: missiles,
		sfx:      sfx,
	}
	p.Init()
	return p
}

// Init 计算可移动区域并重置位置和开火冷却
func (p *Player) Init() {
	size := p.Sprite.Size
	p.area.Left = size.X * config.PlayAreaMarginFactor
	p.area.Top = size.Y * config.PlayAreaMarginFactor
	p.area.Right = config.GameWindowWidth - p.area.Left
	p.area.Bottom = config.GameWindowHeight * config.PlayAreaBottomFactor

	p.Active = true
	p.SetPosition((p.area.Left+p.area.Right)/2, p.area.Bottom)
	p.UpdateBox(config.PlayerBoxScale)

	// 刚进入游戏时不能立即开火
	p.fireTimer = components.NewTimer(config.FireDelay)
	p.recovering = false
	p.recoveryTimer = 0
}

// Area 返回可移动区域
func (p *Player) Area() PlayArea {
	return p.area
}

// Update 处理移动、开火和恢复计时
func (p *Player) Update(dt float64) {
	p.fireTimer.Tick(dt)

	gameOver := p.owner != nil && p.owner.IsGameOver()
	if p.recovering || gameOver {
		p.recoveryTimer += dt
		if p.recoveryTimer >= config.TimeToRecover && !gameOver {
			p.recovering = false
		}
		p.updateFlicker()
		return
	}
	p.Sprite.Hidden = false

	if p.input == nil {
		return
	}

	if p.input.IsHeld(game.ActionFire) && p.fireTimer.Ready() {
		p.fire()
	}

	dx := 0.0
	left := p.input.IsHeld(game.ActionLeft)
	right := p.input.IsHeld(game.ActionRight)
	if left || right {
		if right {
			dx += config.ShipSpeed * dt
		}
		if left {
			dx -= config.ShipSpeed * dt
		}
	} else if p.input.GamepadConnected() {
		if axis := p.input.MoveAxis(); math.Abs(axis) > config.StickDeadzone {
			dx += axis * config.ShipSpeed * dt
		}
	}

	pos := p.Position()
	pos.X = clamp(pos.X+dx, p.area.Left, p.area.Right)
	pos.Y = clamp(pos.Y, p.area.Top, p.area.Bottom)
	p.SetPosition(pos.X, pos.Y)

	p.UpdateBox(config.PlayerBoxScale)
}

// fire 使用第一个空闲导弹开火
func (p *Player) fire() {
	if p.missiles == nil {
		return
	}
	m, ok := p.missiles.FindFirst(false)
	if !ok {
		return
	}
	m.Launch(p.Sprite.Pos.X, p.Sprite.Pos.Y-p.Sprite.Size.Y/2)
	p.fireTimer.Reset()
	p.sfx.PlaySFX(types.SFXMissileShoot, 1)
}

// updateFlicker 恢复期间只在每秒后半段绘制
func (p *Player) updateFlicker() {
	frac := p.recoveryTimer - math.Floor(p.recoveryTimer)
	p.Sprite.Hidden = !(frac > 0.5 && frac < 1)
}

// Hit 被激光击中
// 恢复期间的命中被忽略，生命耗尽时通知游戏模式
func (p *Player) Hit() {
	if p.recovering {
		return
	}

	p.lives--
	p.recoveryTimer = 0
	p.recovering = true
	p.updateFlicker()

	if !p.IsAlive() && p.owner != nil {
		p.owner.GameIsOver()
	}
}

// Kill 一次性失去全部生命
func (p *Player) Kill() {
	if p.lives <= 0 {
		return
	}
	p.lives = 0
	p.recoveryTimer = 0
	p.recovering = true
	p.updateFlicker()
}

// AddLives 增加生命
func (p *Player) AddLives(n int) {
	p.lives += n
}

// Lives 剩余生命
func (p *Player) Lives() int {
	return p.lives
}

// IsAlive 是否还有生命
func (p *Player) IsAlive() bool {
	return p.lives > 0
}

// IsRecovering 是否处于受击后的恢复期
func (p *Player) IsRecovering() bool {
	return p.recovering
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
