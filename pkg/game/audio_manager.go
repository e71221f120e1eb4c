package game

import (
	"bytes"
	"log"

	synth "github.com/decker502/invaders/internal/audio"
	"github.com/decker502/invaders/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效和背景音乐的播放
//   - 实现音量控制（从 SettingsManager 读取主音量和通道音量）
//   - 实现 SFXPlayer 接口，供玩法代码注入
//
// 声音在首次使用时合成为 PCM 并缓存。context 为 nil 时所有播放都是空操作。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager              // 设置管理器（用于读取音量设置，可为 nil）
	sfxPCM          map[types.SFX][]byte          // 音效 PCM 缓存
	musicPlayers    map[types.Music]*audio.Player // 背景音乐播放器缓存
	currentMusic    *audio.Player                 // 当前播放的背景音乐
	currentMusicID  types.Music                   // 当前播放的背景音乐
	activeSFX       []*audio.Player               // 仍在播放的音效实例
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（可为 nil，此时静音）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		sfxPCM:          make(map[types.SFX][]byte),
		musicPlayers:    make(map[types.Music]*audio.Player),
		currentMusicID:  -1,
	}
}

// PlaySFX 播放一个新的音效实例
// 同一音效可以重叠播放，实际音量 = volume × 主音量 × 音效音量
//
// 参数：
//   - kind: 音效种类
//   - volume: 相对音量（0-1）
func (am *AudioManager) PlaySFX(kind types.SFX, volume float64) {
	if am.context == nil {
		return
	}

	pcm := am.getSFXPCM(kind)
	player := am.context.NewPlayerFromBytes(pcm)
	player.SetVolume(volume * am.GetSFXVolume())
	player.Play()

	am.activeSFX = append(am.activeSFX, player)
	am.reapSFX()
}

// reapSFX 释放已经播放完毕的音效实例
func (am *AudioManager) reapSFX() {
	alive := am.activeSFX[:0]
	for _, p := range am.activeSFX {
		if p.IsPlaying() {
			alive = append(alive, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close sound player: %v", err)
		}
	}
	am.activeSFX = alive
}

// PlayMusic 循环播放背景音乐
// 同一时间只能播放一首背景音乐，重复请求同一首时不重新开始
//
// 参数：
//   - m: 曲目
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayMusic(m types.Music) bool {
	if am.context == nil {
		return false
	}

	if am.currentMusicID == m && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getMusicPlayer(m)
	if player == nil {
		return false
	}

	volume := am.GetMusicVolume()
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", m, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = m

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", m, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = -1
	}
}

// ApplyVolumes 设置变化后立即应用到当前音乐
func (am *AudioManager) ApplyVolumes() {
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.GetMusicVolume())
	}
}

// GetMusicVolume 获取音乐的实际音量
func (am *AudioManager) GetMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.EffectiveMusicVolume()
	}
	def := DefaultSettings()
	return def.MasterVolume * def.MusicVolume
}

// GetSFXVolume 获取音效的实际音量
func (am *AudioManager) GetSFXVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.EffectiveSFXVolume()
	}
	def := DefaultSettings()
	return def.MasterVolume * def.SFXVolume
}

// getSFXPCM 获取或合成音效 PCM
func (am *AudioManager) getSFXPCM(kind types.SFX) []byte {
	if pcm, ok := am.sfxPCM[kind]; ok {
		return pcm
	}
	pcm := synth.RenderPCM(synth.SFX(kind), 1)
	am.sfxPCM[kind] = pcm
	return pcm
}

// getMusicPlayer 获取或创建循环播放的音乐播放器
func (am *AudioManager) getMusicPlayer(m types.Music) *audio.Player {
	if player, exists := am.musicPlayers[m]; exists {
		return player
	}

	pcm := synth.RenderPCM(synth.Music(m), 1)
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := am.context.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create music player %s: %v", m, err)
		return nil
	}
	am.musicPlayers[m] = player
	return player
}

// Preload 预先合成所有音效和音乐，避免首次播放时卡顿
func (am *AudioManager) Preload() {
	for _, kind := range types.AllSFX {
		am.getSFXPCM(kind)
	}
	if am.context == nil {
		return
	}
	for _, m := range []types.Music{types.MusicMenu, types.MusicPlay} {
		am.getMusicPlayer(m)
	}
	log.Printf("[AudioManager] Preloaded %d sounds and 2 music tracks", len(types.AllSFX))
}
