package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DrawText 以左上角为锚点绘制文本
func DrawText(screen *ebiten.Image, textStr string, x, y float64, face *text.GoTextFace, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, textStr, face, op)
}

// DrawCenteredText 以 (centerX, centerY) 为中心绘制文本，可附加缩放
func DrawCenteredText(screen *ebiten.Image, textStr string, centerX, centerY, scale float64, face *text.GoTextFace, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, textStr, face, op)
}
