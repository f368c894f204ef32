package utils

import (
	"image"
	"image/color"
	"math"
)

// PlaceholderSize 占位图边长（像素）
const PlaceholderSize = 100

// 占位图配色
var (
	placeholderSeed   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	placeholderStem   = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	placeholderLeaf   = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	placeholderPetal  = color.RGBA{R: 255, G: 20, B: 147, A: 255}
	placeholderCenter = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

// GeneratePlaceholder 生成阶段图片缺失时使用的占位图
//
// 规则：
//   - seed: 棕色圆形种子
//   - sprout: 绿色茎 + 深绿叶片
//   - 其他（flower）: 细茎 + 六片花瓣 + 花心
func GeneratePlaceholder(stageName string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))

	switch stageName {
	case "seed":
		FillCircle(img, 50, 50, 20, placeholderSeed)
	case "sprout":
		FillRect(img, image.Rect(40, 20, 60, 80), placeholderStem)
		FillCircle(img, 50, 20, 15, placeholderLeaf)
	default:
		FillRect(img, image.Rect(45, 30, 55, 80), placeholderStem)
		for i := 0; i < 6; i++ {
			angle := float64(i) * math.Pi / 3
			x := 50 + 20*math.Cos(angle)
			y := 30 + 20*math.Sin(angle)
			FillCircle(img, int(x), int(y), 8, placeholderPetal)
		}
		FillCircle(img, 50, 30, 7, placeholderCenter)
	}

	return img
}

// FillRect 用纯色填充矩形区域（超出图片边界的部分被裁剪）
func FillRect(img *image.RGBA, rect image.Rectangle, clr color.RGBA) {
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetRGBA(x, y, clr)
		}
	}
}

// FillCircle 用纯色填充圆形区域（超出图片边界的部分被裁剪）
func FillCircle(img *image.RGBA, cx, cy, radius int, clr color.RGBA) {
	bounds := image.Rect(cx-radius, cy-radius, cx+radius+1, cy+radius+1).Intersect(img.Bounds())
	r2 := radius * radius
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, clr)
			}
		}
	}
}

// VerticalGradientColor 计算竖直渐变在第 y 行的颜色
func VerticalGradientColor(start, end color.RGBA, y, height int) color.RGBA {
	if height <= 0 {
		return start
	}
	return LerpColor(start, end, float64(y)/float64(height))
}

// WaveGradientColor 主菜单动态渐变背景第 y 行的颜色
//
// 基础色从 (100,150,200) 渐变到 (180,255,180)，叠加随时间和行号变化的正弦波。
func WaveGradientColor(y, height int, animationTime float64) color.RGBA {
	ratio := 0.0
	if height > 0 {
		ratio = float64(y) / float64(height)
	}
	wave := math.Sin(animationTime*0.5+float64(y)*0.01) * 20

	return color.RGBA{
		R: ClampByte(int(100 + (180-100)*ratio + wave)),
		G: ClampByte(int(150 + (255-150)*ratio + wave)),
		B: ClampByte(int(200 + (180-200)*ratio + wave)),
		A: 255,
	}
}
