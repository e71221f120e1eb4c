package entities

import (
	"testing"

	"github.com/decker502/invaders/pkg/config"
)

func TestShelterHitTransitions(t *testing.T) {
	s := NewShelter(200, 500)
	fullHeight := s.Box.Height()
	bottom := s.Box.Bottom

	for i := 1; i <= 9; i++ {
		s.Hit()
		if !s.IsActive() {
			t.Fatalf("shelter destroyed after %d hits", i)
		}
		if s.Lives() != config.ShelterLives-i {
			t.Errorf("lives = %d after %d hits", s.Lives(), i)
		}
		if s.TextureState() != i {
			t.Errorf("texture state = %d after %d hits", s.TextureState(), i)
		}
	}

	// 碰撞盒随生命缩小，底边保持不动
	wantHeight := fullHeight * float64(s.Lives()) / float64(config.ShelterTextureStates)
	if !approx(s.Box.Height(), wantHeight) {
		t.Errorf("box height = %v, want %v", s.Box.Height(), wantHeight)
	}
	if !approx(s.Box.Bottom, bottom) {
		t.Errorf("box bottom moved from %v to %v", bottom, s.Box.Bottom)
	}

	s.Hit()
	if s.IsActive() {
		t.Error("shelter should be destroyed after 10 hits")
	}
	if s.TextureState() != 9 {
		t.Errorf("texture state = %d, want capped at 9", s.TextureState())
	}
}
