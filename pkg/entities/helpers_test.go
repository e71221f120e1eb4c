package entities

import (
	"math"

	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

// fixedRandom 按顺序返回预设的骰子结果，用完后重复最后一个
type fixedRandom struct {
	rolls []int
	next  int
}

func (r *fixedRandom) IntN(n int) int {
	if len(r.rolls) == 0 {
		return 0
	}
	v := r.rolls[r.next]
	if r.next < len(r.rolls)-1 {
		r.next++
	}
	return v % n
}

func (r *fixedRandom) Float64() float64 {
	return float64(r.IntN(100)) / 100
}

type recordingSFX struct {
	played []types.SFX
}

func (s *recordingSFX) PlaySFX(kind types.SFX, _ float64) {
	s.played = append(s.played, kind)
}

func (s *recordingSFX) count(kind types.SFX) int {
	n := 0
	for _, k := range s.played {
		if k == kind {
			n++
		}
	}
	return n
}

type fakeOwner struct {
	over      bool
	overCalls int
}

func (o *fakeOwner) IsGameOver() bool { return o.over }
func (o *fakeOwner) GameIsOver() {
	o.overCalls++
	o.over = true
}

func newMissilePool(n int) *ecs.Pool[*Missile] {
	return ecs.NewPool(n, func(int) *Missile { return NewMissile(nil) })
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
