package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/types"
)

const testPlayerY = config.GameWindowHeight * config.PlayAreaBottomFactor

func TestNewShelterManager_Placement(t *testing.T) {
	sm := NewShelterManager(testPlayerY, nil)

	shelters := sm.Shelters()
	if len(shelters) != config.NumShelters {
		t.Fatalf("expected %d shelters, got %d", config.NumShelters, len(shelters))
	}

	frameW, _ := config.SpriteSize(types.SpriteShelter)
	step := config.GameWindowWidth/float64(config.NumShelters) - frameW/2
	for i, s := range shelters {
		pos := s.Position()
		if !approx(pos.X, step*float64(i+1)) {
			t.Errorf("shelter %d x = %.2f, want %.2f", i, pos.X, step*float64(i+1))
		}
		if !approx(pos.Y, testPlayerY-config.ShelterOffsetY) {
			t.Errorf("shelter %d y = %.2f, want %.2f", i, pos.Y, testPlayerY-config.ShelterOffsetY)
		}
		if !s.IsActive() || s.Lives() != config.ShelterLives {
			t.Errorf("shelter %d should start intact", i)
		}
	}
}

func TestShelterManager_HitNearest(t *testing.T) {
	sm := NewShelterManager(testPlayerY, nil)
	shelters := sm.Shelters()

	// 第二个掩体离 x=400 最近
	sm.Hit(400)
	if shelters[1].TextureState() != 1 || shelters[1].Lives() != config.ShelterLives-1 {
		t.Errorf("nearest shelter should take the hit, got state %d lives %d",
			shelters[1].TextureState(), shelters[1].Lives())
	}
	for _, i := range []int{0, 2, 3} {
		if shelters[i].Lives() != config.ShelterLives {
			t.Errorf("shelter %d should be untouched", i)
		}
	}

	// 摧毁后命中转移到剩余掩体中最近的一个
	for shelters[1].IsActive() {
		sm.Hit(400)
	}
	sm.Hit(400)
	if shelters[0].Lives() != config.ShelterLives-1 {
		t.Errorf("hit should move to the next nearest active shelter, lives = %d", shelters[0].Lives())
	}
}

func TestShelterManager_HitWithNoSheltersLeft(t *testing.T) {
	sm := NewShelterManager(testPlayerY, nil)
	for _, s := range sm.Shelters() {
		s.Active = false
	}

	sm.Hit(100)

	if sm.AnySheltersLeft() {
		t.Error("AnySheltersLeft should be false")
	}
}

func TestShelterManager_CheckLaserCollision(t *testing.T) {
	sfx := &sfxLog{}
	sm := NewShelterManager(testPlayerY, sfx)
	target := sm.Shelters()[2]

	t.Run("激光命中掩体", func(t *testing.T) {
		l := entities.NewLaser()
		l.Fire(target.Position().X, target.Position().Y)

		if !sm.CheckLaserCollision(l) {
			t.Fatal("expected a collision")
		}
		if l.Active || !l.Box.IsZero() {
			t.Error("laser should be extinguished")
		}
		if target.Lives() != config.ShelterLives-1 {
			t.Errorf("shelter lives = %d", target.Lives())
		}
		if sfx.count(types.SFXHit) != 1 {
			t.Error("expected one hit cue")
		}
	})

	t.Run("激光未命中", func(t *testing.T) {
		l := entities.NewLaser()
		l.Fire(target.Position().X, 10)

		if sm.CheckLaserCollision(l) {
			t.Error("laser far above shelters should not collide")
		}
		if !l.Active {
			t.Error("laser should stay active")
		}
	})
}

func TestShelterManager_CheckMissileCollision(t *testing.T) {
	sfx := &sfxLog{}
	sm := NewShelterManager(testPlayerY, sfx)
	target := sm.Shelters()[0]

	m := entities.NewMissile(sm)
	m.Launch(target.Position().X, target.Position().Y)

	if !sm.CheckMissileCollision(m) {
		t.Fatal("expected a collision")
	}
	if m.Active {
		t.Error("missile should explode")
	}
	if target.TextureState() != 1 {
		t.Errorf("texture state = %d, want 1", target.TextureState())
	}
	if sfx.count(types.SFXExplosion) != 1 || sfx.count(types.SFXHit) != 1 {
		t.Errorf("unexpected cues: %v", sfx.played)
	}
}

func TestShelterManager_FirstHitInArrayOrder(t *testing.T) {
	sm := NewShelterManager(testPlayerY, nil)
	shelters := sm.Shelters()

	// 让第 1、2 个掩体重叠在同一位置
	shelters[1].SetPosition(shelters[0].Position().X, shelters[0].Position().Y)
	shelters[1].Update(0)

	l := entities.NewLaser()
	l.Fire(shelters[0].Position().X, shelters[0].Position().Y)
	sm.CheckLaserCollision(l)

	if shelters[0].Lives() != config.ShelterLives-1 {
		t.Error("first shelter in array order should take the hit")
	}
	if shelters[1].Lives() != config.ShelterLives {
		t.Error("only one shelter should be hit")
	}
}

func TestShelterManager_RenderSkipsDestroyed(t *testing.T) {
	sm := NewShelterManager(testPlayerY, nil)
	sm.Shelters()[3].Active = false

	c := &countingCanvas{}
	sm.Render(c, true)

	if c.sprites != config.NumShelters-1 || c.boxes != config.NumShelters-1 {
		t.Errorf("drew %d sprites and %d boxes", c.sprites, c.boxes)
	}
}
