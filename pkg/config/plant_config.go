package config

// GrowthStage 生长阶段配置
//
// 阶段列表是只读的编译期常量，按 StartAge 升序排列。
// 年龄单位均为"游戏秒"（仅在游玩状态下累计）。
type GrowthStage struct {
	Name        string  // 阶段名称，同时作为图片资源键（如 "seed"）
	Image       string  // 图片文件名，位于 PlantImageDir 下
	StartAge    int     // 进入该阶段的年龄
	FullSizeAge int     // 在该阶段内长到最大尺寸的年龄
	BaseScale   float64 // 该阶段的目标缩放系数
}

// GrowthStages 默认的三个生长阶段：种子 → 幼苗 → 花
var GrowthStages = []GrowthStage{
	{Name: "seed", Image: "seed.png.webp", StartAge: 0, FullSizeAge: 5, BaseScale: 0.3},
	{Name: "sprout", Image: "sprout.png.webp", StartAge: 8, FullSizeAge: 15, BaseScale: 0.6},
	{Name: "flower", Image: "flower.png.webp", StartAge: 18, FullSizeAge: 25, BaseScale: 1.0},
}

// 植物照料参数
const (
	// WaterGainPerAction 每次浇水增加的水量
	WaterGainPerAction = 25
	// HappinessGainPerWater 每次浇水增加的快乐值
	HappinessGainPerWater = 10

	// WaterLossNormal 正常状态下每秒消耗的水量
	WaterLossNormal = 1
	// WaterLossStressed 快乐值过低（压力状态）时每秒消耗的水量
	WaterLossStressed = 2

	// HappinessThresholdStressed 低于该值视为压力状态
	HappinessThresholdStressed = 30
	// HappinessThresholdHappy 高于该值（且水量 > GrowthWaterThreshold）时累计生长进度
	HappinessThresholdHappy = 60
	// GrowthWaterThreshold 累计生长进度所需的最低水量（不含）
	GrowthWaterThreshold = 50
	// GrowthProgressPerTick 良好照料下每秒累计的生长进度
	GrowthProgressPerTick = 0.1

	// NeglectTimeThreshold 距上次浇水超过该秒数后，每秒扣除 1 点快乐值
	NeglectTimeThreshold = 15

	// MaxWater 水量上限
	MaxWater = 100
	// MaxHappiness 快乐值上限
	MaxHappiness = 100

	// SparkleWaterThreshold 生长过渡期间显示闪光特效所需的最低水量（不含）
	SparkleWaterThreshold = 70
	// WaterTierHigh 水量条显示"充足"颜色的阈值（不含）
	WaterTierHigh = 60
	// WaterTierMedium 水量条显示"一般"颜色的阈值（不含）
	WaterTierMedium = 30
)

// 植物初始状态
const (
	DefaultAge            = 0
	DefaultWater          = 100
	DefaultGrowthProgress = 0.0
	DefaultLastWatered    = 0
	DefaultHappiness      = 50
)

// 生长动画参数
const (
	// TransitionLeadTime 进入下一阶段前提前开始过渡的秒数
	TransitionLeadTime = 3

	// MinScaleFactor 阶段刚开始时相对基准缩放的比例
	MinScaleFactor = 0.3

	// BreathingAmplitude 呼吸动画的振幅
	BreathingAmplitude = 0.05
	// BreathingSpeed 呼吸动画的角速度（弧度/秒）
	BreathingSpeed = 1.5

	// WaterEffectDuration 浇水特效持续时间（秒）
	WaterEffectDuration = 1.0
	// WaterEffectBoost 浇水特效开始时的额外缩放
	WaterEffectBoost = 0.2

	// TickInterval 植物状态推进的间隔（秒）
	TickInterval = 1.0
)

// 资源与存档路径
const (
	// PlantImageDir 植物阶段图片目录
	PlantImageDir = "assets/images"
	// DefaultSaveFile 植物存档文件
	DefaultSaveFile = "data/savegame.yaml"
)
