package systems

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/types"
)

// seqRandom 按顺序返回预设的骰子结果，用完后重复最后一个
type seqRandom struct {
	rolls []int
	next  int
}

func (r *seqRandom) IntN(n int) int {
	if len(r.rolls) == 0 {
		return 0
	}
	v := r.rolls[r.next]
	if r.next < len(r.rolls)-1 {
		r.next++
	}
	return v % n
}

func (r *seqRandom) Float64() float64 {
	return float64(r.IntN(100)) / 100
}

// quietRandom 不开火也不放飞碟
func quietRandom() *seqRandom {
	return &seqRandom{rolls: []int{99}}
}

type sfxLog struct {
	played []types.SFX
}

func (s *sfxLog) PlaySFX(kind types.SFX, _ float64) {
	s.played = append(s.played, kind)
}

func (s *sfxLog) count(kind types.SFX) int {
	n := 0
	for _, k := range s.played {
		if k == kind {
			n++
		}
	}
	return n
}

type vibration struct {
	duration, low, high float64
}

type fakeHaptics struct {
	connected bool
	calls     []vibration
}

func (h *fakeHaptics) IsConnected() bool { return h.connected }
func (h *fakeHaptics) Vibrate(duration, low, high float64) {
	h.calls = append(h.calls, vibration{duration, low, high})
}

// fakeField 最小化的战场，供敌人管理器单独测试
type fakeField struct {
	over      bool
	overCalls int
	player    *entities.Player
	missiles  *ecs.Pool[*entities.Missile]
	shelters  *ShelterManager
}

func newFakeField(lives int) *fakeField {
	f := &fakeField{}
	f.missiles = ecs.NewPool(config.MaxMissiles, func(int) *entities.Missile {
		return entities.NewMissile(nil)
	})
	f.player = entities.NewPlayer(lives, f, nil, f.missiles, nil)
	return f
}

func (f *fakeField) IsGameOver() bool { return f.over }
// GameIsOver 与 PlayMode 一样引爆飞行中的导弹
func (f *fakeField) GameIsOver() {
	f.overCalls++
	f.over = true
	f.missiles.EachActive(func(m *entities.Missile) {
		m.Explode()
	})
}
func (f *fakeField) Player() *entities.Player               { return f.player }
func (f *fakeField) Missiles() *ecs.Pool[*entities.Missile] { return f.missiles }
func (f *fakeField) ShelterManager() *ShelterManager        { return f.shelters }

// launchAt 在 (x, y) 发射第一枚空闲导弹
func (f *fakeField) launchAt(x, y float64) *entities.Missile {
	m, ok := f.missiles.FindFirst(false)
	if !ok {
		panic("no free missile")
	}
	m.Launch(x, y)
	return m
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type countingCanvas struct {
	sprites int
	boxes   int
	kinds   []types.SpriteKind
}

func (c *countingCanvas) DrawSprite(s components.Sprite) {
	c.sprites++
	c.kinds = append(c.kinds, s.Kind)
}

func (c *countingCanvas) DrawBox(components.BoundBox) {
	c.boxes++
}
