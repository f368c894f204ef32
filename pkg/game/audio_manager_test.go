package game

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestSynthesizeChime(t *testing.T) {
	notes := []ChimeNote{
		{Frequency: 440, Start: 0, Duration: 0.1},
		{Frequency: 660, Start: 0.05, Duration: 0.1},
	}

	buf := SynthesizeChime(1000, notes)

	// 0.15 秒 * 1000Hz = 150 帧，每帧 4 字节
	if len(buf) != 150*4 {
		t.Fatalf("len(buf) = %d, 期望 %d", len(buf), 150*4)
	}

	peak := 0
	for i := 0; i < len(buf); i += 4 {
		left := int16(binary.LittleEndian.Uint16(buf[i:]))
		right := int16(binary.LittleEndian.Uint16(buf[i+2:]))
		if left != right {
			t.Fatalf("帧 %d 左右声道不一致: %d vs %d", i/4, left, right)
		}
		if a := int(math.Abs(float64(left))); a > peak {
			peak = a
		}
	}

	// 归一化到 0.8 倍满幅
	fullScale := float64(math.MaxInt16)
	want := int(0.8 * fullScale)
	if peak < want-2 || peak > want+2 {
		t.Errorf("峰值 = %d, 期望约 %d", peak, want)
	}
}

func TestSynthesizeChimeEmpty(t *testing.T) {
	if buf := SynthesizeChime(AudioSampleRate, nil); buf != nil {
		t.Errorf("空音符列表应返回 nil，得到 %d 字节", len(buf))
	}
}

// TestPlayWaterChimeSilent 没有音频上下文时不播放
func TestPlayWaterChimeSilent(t *testing.T) {
	am := NewAudioManager(nil, NewSettingsManager(nil))
	if am.PlayWaterChime() {
		t.Error("静音模式不应播放")
	}
	if len(am.waterChime) == 0 {
		t.Error("提示音应在创建时合成")
	}
}
