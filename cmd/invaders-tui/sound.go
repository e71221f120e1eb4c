package main

import (
	"log"
	"math"
	"time"

	synth "github.com/decker502/invaders/internal/audio"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// speakerAudio 通过 beep speaker 播放合成音效和循环音乐
// 实现 game.SFXPlayer
type speakerAudio struct {
	settings *game.SettingsManager
	mixer    *beep.Mixer
	sfx      map[types.SFX]*beep.Buffer
	music    map[types.Music]*beep.Buffer
	playing  *beep.Ctrl
}

// newSpeakerAudio 初始化扬声器并预先合成所有声音
func newSpeakerAudio(settings *game.SettingsManager) (*speakerAudio, error) {
	if err := speaker.Init(synth.SampleRate, synth.SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}

	a := &speakerAudio{
		settings: settings,
		mixer:    &beep.Mixer{},
		sfx:      make(map[types.SFX]*beep.Buffer),
		music:    make(map[types.Music]*beep.Buffer),
	}
	for _, kind := range types.AllSFX {
		a.sfx[kind] = synth.Buffered(synth.SFX(kind))
	}
	for _, m := range []types.Music{types.MusicMenu, types.MusicPlay} {
		a.music[m] = synth.Buffered(synth.Music(m))
	}

	speaker.Play(a.mixer)
	log.Printf("[SpeakerAudio] Speaker ready, %d sfx and %d music loops buffered", len(a.sfx), len(a.music))
	return a, nil
}

func (a *speakerAudio) PlaySFX(kind types.SFX, volume float64) {
	buf, ok := a.sfx[kind]
	if !ok {
		return
	}
	v := volume * a.settings.EffectiveSFXVolume()
	if v <= 0 {
		return
	}

	speaker.Lock()
	a.mixer.Add(withVolume(buf.Streamer(0, buf.Len()), v))
	speaker.Unlock()
}

// PlayMusic 循环播放曲目，替换正在播放的音乐
func (a *speakerAudio) PlayMusic(m types.Music) {
	buf, ok := a.music[m]
	if !ok {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if a.playing != nil {
		a.playing.Paused = true
	}
	a.playing = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	a.mixer.Add(withVolume(a.playing, a.settings.EffectiveMusicVolume()))
}

// Close 停止所有声音并关闭扬声器
func (a *speakerAudio) Close() {
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// withVolume 线性音量转换为 effects.Volume 的以 2 为底的对数音量
func withVolume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}
