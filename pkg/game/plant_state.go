package game

import (
	"fmt"
	"math"

	"github.com/decker502/plantbuddy/pkg/config"
)

// 存档记录中的键名
const (
	KeyAge            = "age"
	KeyWater          = "water"
	KeyGrowthProgress = "growth_progress"
	KeyLastWatered    = "last_watered"
	KeyHappiness      = "happiness"
)

// WaterTier 水量档位，用于水量条配色
type WaterTier int

const (
	// WaterTierLow 水量 <= 30
	WaterTierLow WaterTier = iota
	// WaterTierMedium 30 < 水量 <= 60
	WaterTierMedium
	// WaterTierHigh 水量 > 60
	WaterTierHigh
)

// PlantState 植物的持久化状态
//
// 不变量：
//   - Water, Happiness ∈ [0, 100]
//   - Age >= 0，游玩期间单调不减
//   - LastWatered <= Age
//
// GrowthProgress 只写不读：阶段完全由 Age 决定，该字段仅为存档兼容而保留。
type PlantState struct {
	Age            int     `yaml:"age"`
	Water          int     `yaml:"water"`
	GrowthProgress float64 `yaml:"growth_progress"`
	LastWatered    int     `yaml:"last_watered"`
	Happiness      int     `yaml:"happiness"`
}

// NewPlantState 创建一个默认状态的植物
func NewPlantState() *PlantState {
	ps := &PlantState{}
	ps.Reset()
	return ps
}

// Reset 将所有字段恢复为默认值
func (ps *PlantState) Reset() {
	ps.Age = config.DefaultAge
	ps.Water = config.DefaultWater
	ps.GrowthProgress = config.DefaultGrowthProgress
	ps.LastWatered = config.DefaultLastWatered
	ps.Happiness = config.DefaultHappiness
}

// WaterPlant 给植物浇水
//
// 返回：
//   - bool: 水量是否真的增加（已满时返回 false，调用方据此决定是否播放浇水特效）
func (ps *PlantState) WaterPlant() bool {
	oldWater := ps.Water
	ps.Water = min(ps.Water+config.WaterGainPerAction, config.MaxWater)
	ps.Happiness = min(ps.Happiness+config.HappinessGainPerWater, config.MaxHappiness)
	ps.LastWatered = ps.Age
	return ps.Water > oldWater
}

// Tick 推进一秒游戏时间
// 只应在游玩状态下、每累计一秒调用一次
func (ps *PlantState) Tick() {
	ps.Age++

	waterLoss := config.WaterLossNormal
	if ps.Happiness < config.HappinessThresholdStressed {
		waterLoss = config.WaterLossStressed
	}
	ps.Water = max(0, ps.Water-waterLoss)

	// 疏于照料惩罚
	if ps.Age-ps.LastWatered > config.NeglectTimeThreshold {
		ps.Happiness = max(0, ps.Happiness-1)
	}

	if ps.Water > config.GrowthWaterThreshold && ps.Happiness > config.HappinessThresholdHappy {
		ps.GrowthProgress += config.GrowthProgressPerTick
	}
}

// WaterTier 返回当前水量档位
func (ps *PlantState) WaterTier() WaterTier {
	switch {
	case ps.Water > config.WaterTierHigh:
		return WaterTierHigh
	case ps.Water > config.WaterTierMedium:
		return WaterTierMedium
	default:
		return WaterTierLow
	}
}

// IsGrowing 植物是否处于阶段过渡中
func (ps *PlantState) IsGrowing(stages []config.GrowthStage) bool {
	info := ResolveStage(ps.Age, stages)
	return info.HasNext && info.TransitionProgress > 0
}

// ShouldShowSparkles 是否显示生长闪光（水量充足且正在过渡）
func (ps *PlantState) ShouldShowSparkles(stages []config.GrowthStage) bool {
	return ps.Water > config.SparkleWaterThreshold && ps.IsGrowing(stages)
}

// Snapshot 导出用于持久化的键值记录
func (ps *PlantState) Snapshot() map[string]any {
	return map[string]any{
		KeyAge:            ps.Age,
		KeyWater:          ps.Water,
		KeyGrowthProgress: ps.GrowthProgress,
		KeyLastWatered:    ps.LastWatered,
		KeyHappiness:      ps.Happiness,
	}
}

// Restore 从键值记录恢复状态
//
// 缺失的键使用默认值，不视为错误。
// 值类型不合法时整体回退到默认状态并返回错误。
// 恢复后的数值会被限制到不变量允许的范围内（兼容手工修改过的存档）。
func (ps *PlantState) Restore(data map[string]any) error {
	restored := NewPlantState()

	steps := []func() error{
		func() error { return restoreInt(data, KeyAge, &restored.Age) },
		func() error { return restoreInt(data, KeyWater, &restored.Water) },
		func() error { return restoreFloat(data, KeyGrowthProgress, &restored.GrowthProgress) },
		func() error { return restoreInt(data, KeyLastWatered, &restored.LastWatered) },
		func() error { return restoreInt(data, KeyHappiness, &restored.Happiness) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			ps.Reset()
			return err
		}
	}

	restored.normalize()
	*ps = *restored
	return nil
}

// normalize 将字段限制在不变量范围内
func (ps *PlantState) normalize() {
	ps.Age = max(0, ps.Age)
	ps.Water = clampInt(ps.Water, 0, config.MaxWater)
	ps.Happiness = clampInt(ps.Happiness, 0, config.MaxHappiness)
	ps.LastWatered = clampInt(ps.LastWatered, 0, ps.Age)
	if ps.GrowthProgress < 0 || math.IsNaN(ps.GrowthProgress) {
		ps.GrowthProgress = 0
	}
}

func restoreInt(data map[string]any, key string, dst *int) error {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case int:
		*dst = v
	case int64:
		*dst = int(v)
	case uint64:
		*dst = int(v)
	case float64:
		// JSON 存档中的整数会被解码为浮点数
		*dst = int(v)
	default:
		return fmt.Errorf("field %q: expected integer, got %T", key, raw)
	}
	return nil
}

func restoreFloat(data map[string]any, key string, dst *float64) error {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		*dst = v
	case int:
		*dst = float64(v)
	case int64:
		*dst = float64(v)
	case uint64:
		*dst = float64(v)
	default:
		return fmt.Errorf("field %q: expected number, got %T", key, raw)
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
