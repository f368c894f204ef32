package config

import "image/color"

// 界面配色
var (
	ColorBackgroundStart = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	ColorBackgroundEnd   = color.RGBA{R: 200, G: 255, B: 200, A: 255}
	ColorGround          = color.RGBA{R: 101, G: 67, B: 33, A: 255}

	ColorWaterHigh   = color.RGBA{R: 0, G: 150, B: 255, A: 255}
	ColorWaterMedium = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	ColorWaterLow    = color.RGBA{R: 255, G: 100, B: 100, A: 255}

	ColorTextDark  = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	ColorTextLight = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	ColorPanelBackground = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	ColorPanelBorder     = color.RGBA{R: 100, G: 100, B: 100, A: 255}

	ColorButtonNormal = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	ColorButtonHover  = color.RGBA{R: 50, G: 180, B: 50, A: 255}
	ColorButtonShadow = color.RGBA{R: 20, G: 20, B: 20, A: 255}

	ColorTitle       = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	ColorTitleShadow = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	ColorSubtitle    = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	ColorHint        = color.RGBA{R: 80, G: 80, B: 80, A: 255}

	ColorStatLabel  = color.RGBA{R: 0, G: 100, B: 200, A: 255}
	ColorStatTrack  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	ColorAgeText    = color.RGBA{R: 0, G: 150, B: 0, A: 255}
	ColorHappiness  = color.RGBA{R: 255, G: 100, B: 150, A: 255}
	ColorGrowthText = color.RGBA{R: 0, G: 150, B: 0, A: 255}
)

// MenuParticleColors 主菜单漂浮粒子的循环配色
var MenuParticleColors = []color.RGBA{
	{R: 144, G: 238, B: 144, A: 255}, // 浅绿
	{R: 34, G: 139, B: 34, A: 255},   // 森林绿
	{R: 255, G: 215, B: 0, A: 255},   // 金色
	{R: 255, G: 182, B: 193, A: 255}, // 浅粉
}
