package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// bufferSamples 每次从流中读取的采样数
const bufferSamples = 512

// RenderPCM 将有限长度的流渲染为 16 位有符号小端立体声 PCM
// ebiten audio.NewPlayerFromBytes 要求的就是这种格式
//
// 参数：
//   - s: 有限长度的音频流
//   - volume: 线性音量（0-1）
//
// 返回：
//   - []byte: 每个采样 4 字节（左、右声道各 2 字节）
func RenderPCM(s beep.Streamer, volume float64) []byte {
	var out []byte
	buf := make([][2]float64, bufferSamples)
	var frame [4]byte

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:2], uint16(toInt16(buf[i][0]*volume)))
			binary.LittleEndian.PutUint16(frame[2:4], uint16(toInt16(buf[i][1]*volume)))
			out = append(out, frame[:]...)
		}
		if !ok {
			break
		}
	}
	return out
}

// toInt16 将 [-1, 1] 的浮点采样转换为 int16，超出范围时截断
func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Buffered 将有限长度的流缓存为可重复播放的 StreamSeeker
// 终端前端用它循环播放背景音乐
func Buffered(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}
