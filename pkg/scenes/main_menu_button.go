package scenes

import (
	"github.com/decker502/plantbuddy/pkg/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// buttonHover 按钮悬停缩放动画
// 悬停状态变化时，从当前缩放补间到目标缩放
type buttonHover struct {
	hovered bool
	scale   float64
	tween   *gween.Tween
}

func newButtonHover() *buttonHover {
	return &buttonHover{scale: 1}
}

// SetHovered 更新悬停状态，状态改变时重新开始补间
func (b *buttonHover) SetHovered(hovered bool) {
	if hovered == b.hovered {
		return
	}
	b.hovered = hovered

	target := 1.0
	if hovered {
		target = config.MenuButtonHoverScale
	}
	b.tween = gween.New(float32(b.scale), float32(target), config.MenuButtonHoverDuration, ease.OutQuad)
}

// Update 推进补间
func (b *buttonHover) Update(deltaTime float64) {
	if b.tween == nil {
		return
	}
	value, finished := b.tween.Update(float32(deltaTime))
	b.scale = float64(value)
	if finished {
		b.tween = nil
	}
}

// Scale 返回当前缩放
func (b *buttonHover) Scale() float64 {
	return b.scale
}

// IsHovered 返回当前是否悬停
func (b *buttonHover) IsHovered() bool {
	return b.hovered
}
