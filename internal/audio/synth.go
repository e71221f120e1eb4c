// Package audio 合成游戏音效与背景音乐
//
// 所有声音都由振荡器实时生成，不依赖音频文件。
// 桌面端把合成结果渲染成 PCM 交给 ebiten 播放，终端前端直接交给 beep speaker。
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/decker502/invaders/pkg/types"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate 合成采样率，与 ebiten 音频上下文一致
const SampleRate = beep.SampleRate(48000)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// sweep 频率线性滑动的振荡器
// from == to 时就是普通的定频振荡器
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewSweep 创建从 from 滑到 to（Hz）的振荡器
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(uint64(from), uint64(to))),
	}
}

// NewOscillator 创建定频振荡器
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope 为 s 加上起音和释音
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 线性音量转换为 effects.Volume 的对数音量
// math.Log2(0) 是 -Inf，音量为 0 时直接静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone 带包络的单个音符
func tone(from, to float64, d time.Duration, wave WaveType, vol float64) beep.Streamer {
	osc := NewSweep(from, to, d, wave, SampleRate)
	shaped := NewEnvelope(osc, d, 5*time.Millisecond, d/2, SampleRate)
	return newVolume(shaped, vol)
}

// rest 静音
func rest(d time.Duration) beep.Streamer {
	return beep.Take(SampleRate.N(d), beep.Silence(-1))
}

// SFX 返回音效的合成流（有限长度）
func SFX(kind types.SFX) beep.Streamer {
	switch kind {
	case types.SFXMissileShoot:
		// 上扬的方波
		return tone(300, 1200, 120*time.Millisecond, WaveSquare, 0.35)
	case types.SFXLaserShoot:
		// 下坠的锯齿波
		return tone(900, 200, 180*time.Millisecond, WaveSaw, 0.3)
	case types.SFXExplosion:
		noise := NewEnvelope(NewOscillator(0, 350*time.Millisecond, WaveNoise, SampleRate),
			350*time.Millisecond, 2*time.Millisecond, 300*time.Millisecond, SampleRate)
		rumble := tone(120, 40, 350*time.Millisecond, WaveTriangle, 0.6)
		return beep.Take(SampleRate.N(350*time.Millisecond), beep.Mix(newVolume(noise, 0.5), rumble))
	case types.SFXHit:
		return tone(220, 110, 90*time.Millisecond, WaveSquare, 0.4)
	case types.SFXEnter:
		return beep.Seq(
			tone(660, 660, 70*time.Millisecond, WaveSquare, 0.3),
			tone(990, 990, 110*time.Millisecond, WaveSquare, 0.3),
		)
	case types.SFXSelect:
		sine, err := generators.SineTone(SampleRate, 1320)
		if err != nil {
			return tone(1320, 1320, 40*time.Millisecond, WaveSine, 0.3)
		}
		d := 40 * time.Millisecond
		return newVolume(NewEnvelope(beep.Take(SampleRate.N(d), sine), d, time.Millisecond, 30*time.Millisecond, SampleRate), 0.3)
	default:
		return rest(10 * time.Millisecond)
	}
}

// note 乐谱中的一个音符，freq 为 0 表示休止
type note struct {
	freq  float64
	beats float64
}

// 旋律按 110 BPM 演奏
const beat = 545 * time.Millisecond

var menuTheme = []note{
	{110, 1}, {0, 0.5}, {130.81, 0.5}, {146.83, 1}, {0, 0.5}, {130.81, 0.5},
	{110, 1}, {98, 1}, {110, 2},
}

var playTheme = []note{
	{65.41, 0.5}, {61.74, 0.5}, {58.27, 0.5}, {55, 0.5},
	{65.41, 0.5}, {61.74, 0.5}, {58.27, 0.5}, {55, 0.5},
}

// Music 返回一遍背景音乐的合成流（有限长度，由调用方循环）
func Music(m types.Music) beep.Streamer {
	score := menuTheme
	wave := WaveTriangle
	if m == types.MusicPlay {
		score = playTheme
		wave = WaveSquare
	}

	parts := make([]beep.Streamer, 0, len(score))
	for _, n := range score {
		d := time.Duration(float64(beat) * n.beats)
		if n.freq == 0 {
			parts = append(parts, rest(d))
			continue
		}
		parts = append(parts, tone(n.freq, n.freq, d, wave, 0.25))
	}
	return beep.Seq(parts...)
}
