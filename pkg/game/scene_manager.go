package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// Scenes are registered by name; only the active scene's Update and Draw are called.
//
// SwitchTo only records the desired scene and resets it. The switch happens on the
// next Update once the current scene's Exit hook allows it, then Enter is called.
type SceneManager struct {
	scenes      map[string]Scene
	current     string
	desired     string
	switchCount int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		scenes: make(map[string]Scene),
	}
}

// Register 以名字注册场景
// 重复注册会覆盖旧场景
func (sm *SceneManager) Register(name string, scene Scene) {
	sm.scenes[name] = scene
}

// SwitchTo 请求切换到指定名字的场景
//
// 参数：
//   - name: 已注册的场景名
//
// 返回：
//   - bool: 场景不存在时返回 false
func (sm *SceneManager) SwitchTo(name string) bool {
	scene, ok := sm.scenes[name]
	if !ok {
		log.Printf("[SceneManager] 错误: 场景未注册: %s", name)
		return false
	}

	sm.desired = name
	if r, ok := scene.(Resettable); ok {
		r.Reset()
	}
	return true
}

// CurrentName 返回当前活动场景的名字
func (sm *SceneManager) CurrentName() string {
	return sm.current
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	if sm.current == "" {
		return nil
	}
	return sm.scenes[sm.current]
}

// Scenes 返回所有已注册的场景
func (sm *SceneManager) Scenes() map[string]Scene {
	return sm.scenes
}

// applyPendingSwitch 完成挂起的场景切换
func (sm *SceneManager) applyPendingSwitch() {
	if sm.desired == "" || sm.desired == sm.current {
		return
	}

	if cur := sm.GetCurrentScene(); cur != nil {
		if e, ok := cur.(Exitable); ok && !e.Exit() {
			return
		}
	}

	log.Printf("[SceneManager] 切换场景: %q -> %q", sm.current, sm.desired)
	sm.current = sm.desired
	sm.switchCount++

	if e, ok := sm.scenes[sm.current].(Enterable); ok {
		e.Enter()
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	sm.applyPendingSwitch()

	if cur := sm.GetCurrentScene(); cur != nil {
		cur.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if cur := sm.GetCurrentScene(); cur != nil {
		cur.Draw(screen)
	}
}
