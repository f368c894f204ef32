package utils

import (
	"image"
	"image/color"
	"testing"
)

func TestGeneratePlaceholder(t *testing.T) {
	tests := []struct {
		stage     string
		x, y      int
		wantColor color.RGBA
	}{
		{"seed", 50, 50, placeholderSeed},
		{"sprout", 50, 60, placeholderStem},
		{"sprout", 50, 12, placeholderLeaf},
		{"flower", 50, 70, placeholderStem},
		{"flower", 50, 30, placeholderCenter},
		{"flower", 70, 30, placeholderPetal},
	}

	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			img := GeneratePlaceholder(tt.stage)
			if img.Bounds().Dx() != PlaceholderSize || img.Bounds().Dy() != PlaceholderSize {
				t.Fatalf("占位图尺寸 = %v", img.Bounds())
			}
			if got := img.RGBAAt(tt.x, tt.y); got != tt.wantColor {
				t.Errorf("(%d,%d) 颜色 = %+v, 期望 %+v", tt.x, tt.y, got, tt.wantColor)
			}
			// 角落保持透明
			if got := img.RGBAAt(0, 0); got.A != 0 {
				t.Errorf("角落应透明，得到 %+v", got)
			}
		})
	}
}

func TestFillCircleClipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	clr := color.RGBA{R: 255, A: 255}

	// 圆心在图片外，不应 panic
	FillCircle(img, -3, -3, 5, clr)

	if img.RGBAAt(0, 0) != clr {
		t.Error("圆内的可见像素应被填充")
	}
	if img.RGBAAt(9, 9).A != 0 {
		t.Error("圆外像素不应被填充")
	}
}

func TestFillRectClipped(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	clr := color.RGBA{G: 255, A: 255}

	FillRect(img, image.Rect(2, 2, 20, 20), clr)

	if img.RGBAAt(3, 3) != clr {
		t.Error("矩形内像素应被填充")
	}
	if img.RGBAAt(1, 1).A != 0 {
		t.Error("矩形外像素不应被填充")
	}
}

func TestVerticalGradientColor(t *testing.T) {
	start := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	end := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	if got := VerticalGradientColor(start, end, 0, 100); got != start {
		t.Errorf("第 0 行 = %+v", got)
	}
	if got := VerticalGradientColor(start, end, 50, 100); got != (color.RGBA{R: 100, G: 50, B: 25, A: 255}) {
		t.Errorf("中间行 = %+v", got)
	}
	if got := VerticalGradientColor(start, end, 5, 0); got != start {
		t.Errorf("高度为 0 时应返回起始色，得到 %+v", got)
	}
}

func TestWaveGradientColor(t *testing.T) {
	// animationTime=0, y=0 时正弦项为 0
	got := WaveGradientColor(0, 600, 0)
	want := color.RGBA{R: 100, G: 150, B: 200, A: 255}
	if got != want {
		t.Errorf("WaveGradientColor(0) = %+v, 期望 %+v", got, want)
	}

	// 任意时刻都不越界
	for y := 0; y < 600; y += 37 {
		c := WaveGradientColor(y, 600, 123.4)
		if c.A != 255 {
			t.Fatalf("alpha 应为 255，得到 %d", c.A)
		}
	}
}
