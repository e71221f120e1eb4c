package components

import "testing"

func TestAnimationUpdate(t *testing.T) {
	tests := []struct {
		name      string
		looping   bool
		steps     int
		wantFrame int
		wantDone  bool
	}{
		{"第一帧", true, 0, 0, false},
		{"推进两帧", true, 2, 2, false},
		{"循环回到开头", true, 4, 0, false},
		{"非循环停在最后一帧", false, 6, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 4 帧，每帧 0.5 秒
			a := NewAnimation(4, 2, tt.looping)
			frame := a.CurrentFrame
			for i := 0; i < tt.steps; i++ {
				frame = a.Update(0.5)
			}
			if frame != tt.wantFrame {
				t.Errorf("frame = %d, want %d", frame, tt.wantFrame)
			}
			if a.IsFinished != tt.wantDone {
				t.Errorf("IsFinished = %v, want %v", a.IsFinished, tt.wantDone)
			}
		})
	}
}

func TestAnimationSingleFrame(t *testing.T) {
	a := NewAnimation(1, 15, true)
	if got := a.Update(10); got != 0 {
		t.Errorf("single-frame animation advanced to %d", got)
	}
}

func TestAnimationReset(t *testing.T) {
	a := NewAnimation(3, 10, false)
	a.Update(1)
	a.Reset()
	if a.CurrentFrame != 0 || a.FrameCounter != 0 || a.IsFinished {
		t.Errorf("after Reset: %+v", a)
	}
}
