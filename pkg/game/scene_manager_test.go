package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64

	enterCount int
	exitCount  int
	resetCount int
	exitReady  bool
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) Enter() { m.enterCount++ }
func (m *MockScene) Reset() { m.resetCount++ }
func (m *MockScene) Exit() bool {
	m.exitCount++
	return m.exitReady
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no current scene initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo resets the target and Update enters it.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	menu := &MockScene{exitReady: true}
	sm.Register("menu", menu)

	if !sm.SwitchTo("menu") {
		t.Fatal("SwitchTo returned false for a registered scene")
	}
	if menu.resetCount != 1 {
		t.Errorf("Expected Reset once, got %d", menu.resetCount)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Switch should not happen before Update")
	}

	sm.Update(0.016)
	if sm.CurrentName() != "menu" || menu.enterCount != 1 {
		t.Errorf("current=%q enter=%d", sm.CurrentName(), menu.enterCount)
	}
	if !menu.updateCalled || menu.deltaTime != 0.016 {
		t.Error("Scene's Update method was not called with deltaTime")
	}
}

func TestSceneManagerUnknownScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.SwitchTo("nowhere") {
		t.Error("SwitchTo should fail for an unknown scene")
	}
	sm.Update(0.016) // Should not panic
}

// TestSceneManagerExitDelaysSwitch verifies that Exit returning false postpones the switch.
func TestSceneManagerExitDelaysSwitch(t *testing.T) {
	sm := NewSceneManager()
	intro := &MockScene{exitReady: false}
	menu := &MockScene{exitReady: true}
	sm.Register("intro", intro)
	sm.Register("menu", menu)

	sm.SwitchTo("intro")
	sm.Update(0.016)

	sm.SwitchTo("menu")
	sm.Update(0.016)
	if sm.CurrentName() != "intro" {
		t.Fatalf("switch should wait for Exit, current=%q", sm.CurrentName())
	}

	intro.exitReady = true
	sm.Update(0.016)
	if sm.CurrentName() != "menu" || menu.enterCount != 1 {
		t.Errorf("current=%q menu.enter=%d", sm.CurrentName(), menu.enterCount)
	}
	if intro.exitCount != 2 {
		t.Errorf("Exit called %d times, want 2", intro.exitCount)
	}
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	sm.Draw(nil) // no scene, should not panic

	mockScene := &MockScene{}
	sm.Register("play", mockScene)
	sm.SwitchTo("play")
	sm.Update(0)

	sm.Draw(nil)
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}
