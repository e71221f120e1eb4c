package scenes

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 设置项，顺序即显示顺序
const (
	settingMaster = iota
	settingMusic
	settingSFX
	settingColliders
	settingFullscreen
	settingBack
)

// volumeStep 左右键每次调整的音量
const volumeStep = 0.1

// SettingsScene 设置界面
//
// 左右键调整音量或切换开关，确认键切换开关或返回。
// 离开场景时保存设置。
type SettingsScene struct {
	*Services

	menu  *menu
	stars starScroll
}

func NewSettingsScene(svc *Services) *SettingsScene {
	s := &SettingsScene{Services: svc}
	s.menu = newMenu(svc.sfx(), make([]string, settingBack+1)...)
	s.refreshLabels()
	return s
}

// Reset 每次进入时从第一项开始
func (s *SettingsScene) Reset() {
	s.menu.reset()
	s.refreshLabels()
}

// Exit 离开时保存设置
func (s *SettingsScene) Exit() bool {
	if err := s.State.Settings.Save(); err != nil {
		log.Printf("[SettingsScene] Warning: Failed to save settings: %v", err)
	}
	return true
}

func (s *SettingsScene) Update(dt float64) {
	s.stars.update(dt)

	if s.Input != nil {
		switch {
		case s.Input.JustPressed(game.ActionBack):
			s.sfx().PlaySFX(types.SFXEnter, 1)
			s.switchTo(SceneMainMenu)
			return
		case s.Input.JustPressed(game.ActionLeft):
			s.adjust(-1)
		case s.Input.JustPressed(game.ActionRight):
			s.adjust(1)
		}
	}

	index, ok := s.menu.update(s.Input, dt)
	if !ok {
		return
	}
	switch index {
	case settingColliders, settingFullscreen:
		s.adjust(1)
	case settingBack:
		s.switchTo(SceneMainMenu)
	}
}

// adjust 按方向修改选中项
func (s *SettingsScene) adjust(dir float64) {
	sm := s.State.Settings
	st := sm.GetSettings()

	switch s.menu.selected {
	case settingMaster:
		sm.SetMasterVolume(stepVolume(st.MasterVolume, dir))
	case settingMusic:
		sm.SetMusicVolume(stepVolume(st.MusicVolume, dir))
	case settingSFX:
		sm.SetSFXVolume(stepVolume(st.SFXVolume, dir))
	case settingColliders:
		sm.SetShowColliders(!st.ShowColliders)
	case settingFullscreen:
		sm.SetFullscreen(!st.Fullscreen)
	default:
		return
	}

	if s.State.Audio != nil {
		s.State.Audio.ApplyVolumes()
	}
	s.sfx().PlaySFX(types.SFXSelect, 1)
	s.refreshLabels()
}

// stepVolume 调整一档并对齐到 0.1
func stepVolume(v, dir float64) float64 {
	return utils.Clamp01(math.Round((v+dir*volumeStep)*10) / 10)
}

func (s *SettingsScene) refreshLabels() {
	st := s.State.Settings.GetSettings()
	s.menu.items[settingMaster] = fmt.Sprintf("MASTER VOLUME  %3.0f%%", st.MasterVolume*100)
	s.menu.items[settingMusic] = fmt.Sprintf("MUSIC VOLUME  %3.0f%%", st.MusicVolume*100)
	s.menu.items[settingSFX] = fmt.Sprintf("SFX VOLUME  %3.0f%%", st.SFXVolume*100)
	s.menu.items[settingColliders] = "SHOW COLLIDERS  " + onOff(st.ShowColliders)
	s.menu.items[settingFullscreen] = "FULLSCREEN  " + onOff(st.Fullscreen)
	s.menu.items[settingBack] = "BACK"
}

// Label 第 i 项的显示文本
func (s *SettingsScene) Label(i int) string {
	return s.menu.items[i]
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

func (s *SettingsScene) Draw(screen *ebiten.Image) {
	rm := s.State.Resources
	drawStarfield(screen, rm.StarLayers(), s.stars.offset)

	face := rm.Font()
	drawCentered(screen, face, "SETTINGS", 100, 5, colorHighlight)
	s.menu.draw(screen, face, 220)
	drawCentered(screen, face, "LEFT / RIGHT TO CHANGE", 620, 2, colorText)
}
