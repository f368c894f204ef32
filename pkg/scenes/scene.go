// Package scenes 实现主菜单与植物照料两个场景
//
// 场景只负责输入和绘制，所有可变状态都在 game.Session 中。
package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/plantbuddy/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// drawRowGradient 逐行填充背景，rowColor 返回第 y 行的颜色
func drawRowGradient(dst *ebiten.Image, rowColor func(y, height int) color.RGBA) {
	bounds := dst.Bounds()
	width := float32(bounds.Dx())
	height := bounds.Dy()
	for y := 0; y < height; y++ {
		vector.DrawFilledRect(dst, 0, float32(y), width, 1, rowColor(y, height), false)
	}
}

// loadFace 加载字体，失败时返回 nil（文本绘制函数会跳过 nil 字体）
func loadFace(rm *game.ResourceManager, size float64) *text.GoTextFace {
	if rm == nil {
		return nil
	}
	face, err := rm.LoadFont(size)
	if err != nil {
		log.Printf("[Scenes] Warning: 字体加载失败 (size=%.0f): %v", size, err)
		return nil
	}
	return face
}
