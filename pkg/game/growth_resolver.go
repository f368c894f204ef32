package game

import (
	"math"

	"github.com/decker502/plantbuddy/pkg/config"
	"github.com/decker502/plantbuddy/pkg/utils"
)

// StageInfo 根据年龄解析出的生长阶段信息
type StageInfo struct {
	// Current 当前阶段：StartAge <= age 的最后一个阶段
	Current config.GrowthStage
	// CurrentIndex 当前阶段在阶段列表中的下标
	CurrentIndex int
	// Next 紧随当前阶段的下一个阶段，仅在 HasNext 为 true 时有效
	Next config.GrowthStage
	// HasNext 是否存在下一个阶段
	HasNext bool
	// TransitionProgress 过渡进度 [0, 1]
	//
	// 过渡在下一阶段 StartAge 之前 TransitionLeadTime 秒开始。
	// 只有最后一个满足条件的阶段迭代会写入该值，
	// 因此越过所有过渡窗口后它保持最近一次计算的结果。
	TransitionProgress float64
	// Transitioning 年龄是否位于当前阶段通往下一阶段的过渡窗口内
	// 与 TransitionProgress 不同，它不会沿用前一阶段的结果，绘制淡入淡出时使用
	Transitioning bool
}

// ResolveStage 根据年龄解析当前阶段、下一阶段与过渡进度
//
// stages 必须按 StartAge 升序排列。年龄小于第一个阶段的 StartAge 时，
// 当前阶段取第一个阶段。
func ResolveStage(age int, stages []config.GrowthStage) StageInfo {
	var info StageInfo
	if len(stages) == 0 {
		return info
	}

	info.Current = stages[0]

	for i, stage := range stages {
		if age < stage.StartAge {
			continue
		}

		info.Current = stage
		info.CurrentIndex = i
		info.HasNext = i+1 < len(stages)
		info.Transitioning = false
		if !info.HasNext {
			info.Next = config.GrowthStage{}
			continue
		}

		info.Next = stages[i+1]
		transitionStart := info.Next.StartAge - config.TransitionLeadTime
		if age >= transitionStart {
			info.Transitioning = true
			info.TransitionProgress = math.Min(1.0, float64(age-transitionStart)/config.TransitionLeadTime)
		}
	}

	return info
}

// StageProgress 当前阶段内的成长进度 [0, 1]（未缓动）
func StageProgress(age int, stage config.GrowthStage) float64 {
	duration := stage.FullSizeAge - stage.StartAge
	if duration <= 0 {
		return 1.0
	}
	return utils.Clamp(float64(age-stage.StartAge)/float64(duration), 0, 1)
}

// GrowthScale 不含呼吸与浇水动画的阶段缩放
//
// 阶段内进度经过二次缓出后，在 MinScaleFactor*baseline 与
// stage.BaseScale*baseline 之间线性插值。
func GrowthScale(age int, stage config.GrowthStage, baseline float64) float64 {
	progress := utils.EaseOutQuad(StageProgress(age, stage))

	minScale := baseline * config.MinScaleFactor
	maxScale := baseline * stage.BaseScale
	return minScale + (maxScale-minScale)*progress
}

// BreathingFactor 呼吸动画系数
func BreathingFactor(animationTime float64) float64 {
	return 1 + config.BreathingAmplitude*math.Sin(animationTime*config.BreathingSpeed)
}

// WaterBoostFactor 浇水特效的瞬时放大系数
//
// waterEffectTime 为特效剩余时间，<= 0 表示特效未激活
func WaterBoostFactor(waterEffectTime float64) float64 {
	if waterEffectTime <= 0 {
		return 1.0
	}
	return 1 + config.WaterEffectBoost*(waterEffectTime/config.WaterEffectDuration)
}

// CalculateScale 计算植物最终绘制缩放
//
// 参数：
//   - age: 植物年龄
//   - stages: 阶段列表
//   - baseline: 基准缩放
//   - animationTime: 全局动画时间（秒）
//   - waterEffectTime: 浇水特效剩余时间（秒）
func CalculateScale(age int, stages []config.GrowthStage, baseline, animationTime, waterEffectTime float64) float64 {
	info := ResolveStage(age, stages)
	return GrowthScale(age, info.Current, baseline) * BreathingFactor(animationTime) * WaterBoostFactor(waterEffectTime)
}
