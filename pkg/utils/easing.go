package utils

import (
	"image/color"

	"github.com/tanema/gween/ease"
)

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 底层使用 gween/ease 的标准缓动曲线。

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return float64(ease.OutQuad(float32(t), 0, 1, 1))
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpColor 在两个颜色之间逐通道线性插值（alpha 取 from 的值）
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(Lerp(float64(from.R), float64(to.R), t)),
		G: uint8(Lerp(float64(from.G), float64(to.G), t)),
		B: uint8(Lerp(float64(from.B), float64(to.B), t)),
		A: from.A,
	}
}

// ClampByte 将整数限制为合法的颜色分量
func ClampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
