package entities

import (
	"testing"

	"github.com/decker502/invaders/pkg/config"
)

func TestLaserUpdate(t *testing.T) {
	l := NewLaser()
	l.Fire(100, 100)
	l.Update(0.5)

	if l.Sprite.Pos.Y != 100+config.LaserSpeed*0.5 {
		t.Errorf("laser y = %v", l.Sprite.Pos.Y)
	}
	if !l.Active {
		t.Fatal("laser should still be on screen")
	}

	l.SetPosition(100, config.GameWindowHeight+l.Sprite.Size.Y)
	l.Update(0.01)
	if l.Active {
		t.Error("laser below the screen should deactivate")
	}
}

func TestLaserExtinguish(t *testing.T) {
	l := NewLaser()
	l.Fire(10, 10)
	l.Extinguish()
	if l.Active || !l.Box.IsZero() {
		t.Errorf("Extinguish should deactivate and zero the box, got active=%v box=%+v", l.Active, l.Box)
	}
}

type fakeShelters struct {
	left  bool
	hit   bool
	calls int
}

func (f *fakeShelters) AnySheltersLeft() bool { return f.left }

func (f *fakeShelters) CheckMissileCollision(m *Missile) bool {
	f.calls++
	if f.hit {
		m.Explode()
	}
	return f.hit
}

func TestMissileUpdate(t *testing.T) {
	shelters := &fakeShelters{left: true}
	m := NewMissile(shelters)
	m.Launch(200, 300)

	m.Update(0.1)
	if m.Sprite.Pos.Y != 300-config.MissileSpeed*0.1 {
		t.Errorf("missile y = %v", m.Sprite.Pos.Y)
	}
	if shelters.calls != 1 {
		t.Errorf("Expected one shelter check, got %d", shelters.calls)
	}

	for i := 0; i < 4; i++ {
		m.Update(1.0/MissileSpinFPS + 1e-9)
	}
	if m.Sprite.Frame >= config.SpriteFrameCount(m.Sprite.Kind) {
		t.Errorf("frame %d out of range", m.Sprite.Frame)
	}

	shelters.hit = true
	m.Update(0.01)
	if m.Active {
		t.Error("missile should explode on a shelter")
	}
}

func TestMissileSkipsShelterCheckWhenNoneLeft(t *testing.T) {
	shelters := &fakeShelters{left: false}
	m := NewMissile(shelters)
	m.Launch(200, 300)
	m.Update(0.1)
	if shelters.calls != 0 {
		t.Errorf("shelter check ran %d times with no shelters left", shelters.calls)
	}
}

func TestMissileLeavesScreen(t *testing.T) {
	shelters := &fakeShelters{left: true}
	m := NewMissile(shelters)
	m.Launch(200, 1)
	m.Update(0.1)
	if m.Active {
		t.Error("missile above the screen should deactivate")
	}
	if shelters.calls != 0 {
		t.Error("inactive missile should not be checked against shelters")
	}
}

func TestMissileBoxUsesOneFrame(t *testing.T) {
	m := NewMissile(nil)
	m.Launch(100, 100)
	want := m.Sprite.Size.X * config.MissileBoxScale
	if got := m.Box.Width(); got != want {
		t.Errorf("box width = %v, want %v", got, want)
	}
}
