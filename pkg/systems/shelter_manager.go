package systems

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
)

// ShelterManager 管理玩家上方的一排掩体并解析弹道碰撞
type ShelterManager struct {
	shelters []*entities.Shelter
	sfx      game.SFXPlayer
}

// NewShelterManager 在玩家上方等距摆放 NumShelters 个掩体
//
// 参数：
//   - playerY: 玩家飞船的 Y 坐标
//   - sfx: 音效播放器（可为 nil）
func NewShelterManager(playerY float64, sfx game.SFXPlayer) *ShelterManager {
	if sfx == nil {
		sfx = game.NopSFX{}
	}

	perShelter := config.GameWindowWidth / float64(config.NumShelters)
	frameW, _ := config.SpriteSize(types.SpriteShelter)

	sm := &ShelterManager{sfx: sfx}
	for i := 0; i < config.NumShelters; i++ {
		x := (perShelter - frameW/2) * float64(i+1)
		sm.shelters = append(sm.shelters, entities.NewShelter(x, playerY-config.ShelterOffsetY))
	}
	return sm
}

// Shelters 返回所有掩体（包括已摧毁的）
func (sm *ShelterManager) Shelters() []*entities.Shelter {
	return sm.shelters
}

// Update 刷新所有存活掩体的碰撞盒
func (sm *ShelterManager) Update(dt float64) {
	for _, s := range sm.shelters {
		if s.IsActive() {
			s.Update(dt)
		}
	}
}

// Hit 让离 x 最近的存活掩体承受一次命中，没有存活掩体时什么也不做
func (sm *ShelterManager) Hit(x float64) {
	var closest *entities.Shelter
	closestDistance := math.Inf(1)

	for _, s := range sm.shelters {
		if !s.IsActive() {
			continue
		}
		if d := math.Abs(s.Position().X - x); d < closestDistance {
			closestDistance = d
			closest = s
		}
	}

	if closest != nil {
		closest.Hit()
	}
}

// firstOverlapping 按数组顺序返回第一个与 box 相交的存活掩体
func (sm *ShelterManager) firstOverlapping(box components.BoundBox) *entities.Shelter {
	for _, s := range sm.shelters {
		if s.IsActive() && s.Box.Overlaps(box) {
			return s
		}
	}
	return nil
}

// CheckLaserCollision 激光撞上掩体时停用激光并损伤掩体
// 返回是否发生碰撞
func (sm *ShelterManager) CheckLaserCollision(l *entities.Laser) bool {
	s := sm.firstOverlapping(l.Box)
	if s == nil {
		return false
	}

	l.Extinguish()
	s.Hit()
	sm.sfx.PlaySFX(types.SFXHit, 1)
	return true
}

// CheckMissileCollision 导弹撞上掩体时停用导弹并损伤掩体
// 返回是否发生碰撞
func (sm *ShelterManager) CheckMissileCollision(m *entities.Missile) bool {
	s := sm.firstOverlapping(m.Box)
	if s == nil {
		return false
	}

	m.Explode()
	s.Hit()
	sm.sfx.PlaySFX(types.SFXExplosion, 1)
	sm.sfx.PlaySFX(types.SFXHit, 1)
	return true
}

// AnySheltersLeft 是否还有存活的掩体
func (sm *ShelterManager) AnySheltersLeft() bool {
	for _, s := range sm.shelters {
		if s.IsActive() {
			return true
		}
	}
	return false
}

// Render 绘制所有存活掩体
func (sm *ShelterManager) Render(c components.Canvas, showColliders bool) {
	for _, s := range sm.shelters {
		s.Render(c, showColliders)
	}
}
