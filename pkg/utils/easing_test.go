package utils

import (
	"image/color"
	"math"
	"testing"
)

// TestEaseOutQuad 测试二次方缓出函数
func TestEaseOutQuad(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.75},
		{"四分之一", 0.25, 0.4375},
		{"终点", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutQuad(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutQuad(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	t.Run("单调递增", func(t *testing.T) {
		prev := -1.0
		for p := 0.0; p <= 1.0; p += 0.05 {
			v := EaseOutQuad(p)
			if v < prev {
				t.Errorf("EaseOutQuad(%v) = %v 小于前一个值 %v", p, v, prev)
			}
			prev = v
		}
	})
}

func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp = %v, 期望 12.5", got)
	}
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Errorf("Clamp(-1) = %v", got)
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Errorf("Clamp(2) = %v", got)
	}
	if got := Clamp(0.3, 0, 1); got != 0.3 {
		t.Errorf("Clamp(0.3) = %v", got)
	}
}

func TestLerpColor(t *testing.T) {
	from := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	to := color.RGBA{R: 100, G: 200, B: 0, A: 0}

	got := LerpColor(from, to, 0.5)
	want := color.RGBA{R: 50, G: 150, B: 100, A: 255}
	if got != want {
		t.Errorf("LerpColor = %+v, 期望 %+v", got, want)
	}
}

func TestClampByte(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{-20, 0},
		{0, 0},
		{128, 128},
		{300, 255},
	}
	for _, tt := range tests {
		if got := ClampByte(tt.in); got != tt.want {
			t.Errorf("ClampByte(%d) = %d, 期望 %d", tt.in, got, tt.want)
		}
	}
}
