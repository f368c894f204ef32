package scenes

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/decker502/plantbuddy/pkg/config"
	"github.com/decker502/plantbuddy/pkg/game"
)

// Rect 逻辑屏幕上的矩形
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// PlayButtonRect 返回开始按钮的点击区域（未缩放）
func PlayButtonRect() Rect {
	return Rect{
		X: config.GameWindowWidth/2 - config.MenuButtonWidth/2,
		Y: config.GameWindowHeight/2 + config.MenuButtonOffsetY,
		W: config.MenuButtonWidth,
		H: config.MenuButtonHeight,
	}
}

// ScaledButtonRect 返回按缩放绘制的按钮矩形
// 水平方向以屏幕中心为轴，竖直方向以按钮中心为轴
func ScaledButtonRect(base Rect, scale float64) Rect {
	w := base.W * scale
	h := base.H * scale
	return Rect{
		X: config.GameWindowWidth/2 - w/2,
		Y: base.Y + (base.H-h)/2,
		W: w,
		H: h,
	}
}

// MenuParticle 计算主菜单第 i 个漂浮粒子在某一时刻的位置、半径与颜色
func MenuParticle(i int, animationTime float64) (x, y, radius float64, clr color.RGBA) {
	fi := float64(i)
	x = config.GameWindowWidth/2 + 200*math.Cos(animationTime*0.3+fi*0.5)
	y = config.GameWindowHeight/2 + 100*math.Sin(animationTime*0.4+fi*0.7)
	radius = 3 + 2*math.Sin(animationTime*2+fi)
	clr = config.MenuParticleColors[i%len(config.MenuParticleColors)]
	return x, y, radius, clr
}

// SubtitleScale 副标题呼吸缩放
func SubtitleScale(animationTime float64) float64 {
	return 1 + 0.1*math.Sin(animationTime*2)
}

// PlantPosition 植物中心位置（含左右摇摆）
func PlantPosition(animationTime float64) (float64, float64) {
	sway := config.PlantSwayAmplitude * math.Sin(animationTime*config.PlantSwaySpeed)
	return config.GameWindowWidth/2 + sway, config.GameWindowHeight/2 + config.PlantOffsetY
}

// isFading 是否处于过渡窗口内
// 进入新阶段后沿用的旧进度不触发淡入淡出
func isFading(info game.StageInfo) bool {
	return info.HasNext && info.Transitioning && info.TransitionProgress > 0
}

// ShouldDrawNextStage 过渡进度超过阈值后才绘制下一阶段
func ShouldDrawNextStage(info game.StageInfo) bool {
	return isFading(info) && info.TransitionProgress > config.NextStageRevealThreshold
}

// CurrentStageAlpha 当前阶段透明度
// 过渡中从 1 淡出到 0.3，其余时候保持不透明
func CurrentStageAlpha(info game.StageInfo) float64 {
	if !isFading(info) {
		return 1
	}
	return 1 - info.TransitionProgress*0.7
}

// NextStageAlpha 下一阶段透明度，从显现阈值处的 0 线性增长到 1
func NextStageAlpha(info game.StageInfo) float64 {
	if !ShouldDrawNextStage(info) {
		return 0
	}
	threshold := config.NextStageRevealThreshold
	return (info.TransitionProgress - threshold) / (1 - threshold)
}

// Sparkle 计算第 i 个生长闪光的位置与颜色
func Sparkle(i int, centerX, centerY, animationTime float64) (x, y float64, clr color.RGBA) {
	fi := float64(i)
	x = centerX + config.SparkleRadius*math.Cos(animationTime*3+fi)
	y = centerY + config.SparkleRadius*math.Sin(animationTime*3+fi)
	intensity := int(128 + 127*math.Sin(animationTime*5+fi))
	return x, y, color.RGBA{R: 255, G: uint8(intensity), B: 100, A: 255}
}

// WaterBarColor 按水量档位返回水量条颜色
func WaterBarColor(tier game.WaterTier) color.RGBA {
	switch tier {
	case game.WaterTierHigh:
		return config.ColorWaterHigh
	case game.WaterTierMedium:
		return config.ColorWaterMedium
	default:
		return config.ColorWaterLow
	}
}

// WaterBarFillWidth 水量条填充宽度
func WaterBarFillWidth(water int, width float64) float64 {
	if water <= 0 {
		return 0
	}
	if water >= config.MaxWater {
		return width
	}
	return width * float64(water) / config.MaxWater
}

// StageDisplayName 阶段名首字母大写，如 "sprout" -> "Sprout"
func StageDisplayName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// GrowthIndicatorText 生长过渡提示文本；不在过渡中时返回 false
func GrowthIndicatorText(info game.StageInfo) (string, bool) {
	if !isFading(info) {
		return "", false
	}
	percent := int(info.TransitionProgress * 100)
	return fmt.Sprintf("Growing into %s... %d%%", info.Next.Name, percent), true
}
