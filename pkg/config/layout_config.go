package config

// 窗口与布局配置
// 所有坐标均为逻辑屏幕坐标，ebiten 负责缩放到实际窗口

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600
	// TargetTPS 目标逻辑帧率
	TargetTPS = 60

	// WindowTitle 窗口标题
	WindowTitle = "Virtual Plant Buddy - Enhanced Growth"

	// VolumeStep 每次按 -/= 调整的音量
	VolumeStep = 0.1
)

// 主菜单布局
const (
	MenuButtonWidth  = 200.0
	MenuButtonHeight = 60.0
	// MenuButtonOffsetY 按钮顶部相对屏幕中心的偏移
	MenuButtonOffsetY = 20.0
	// MenuButtonHoverScale 鼠标悬停时的按钮缩放
	MenuButtonHoverScale = 1.05
	// MenuButtonHoverDuration 悬停缩放补间时长（秒）
	MenuButtonHoverDuration = 0.15

	// MenuParticleCount 主菜单漂浮粒子数量
	MenuParticleCount = 15
)

// 游戏场景布局
const (
	// GroundHeight 底部地面高度
	GroundHeight = 100.0

	// PlantOffsetY 植物中心相对屏幕中心的下移量
	PlantOffsetY = 50.0
	// PlantSwayAmplitude 植物左右摇摆幅度（像素）
	PlantSwayAmplitude = 5.0
	// PlantSwaySpeed 植物摇摆角速度
	PlantSwaySpeed = 0.8
	// NextStageRevealThreshold 过渡进度超过该值后开始绘制下一阶段
	NextStageRevealThreshold = 0.3

	// SparkleCount 生长闪光数量
	SparkleCount = 5
	// SparkleRadius 闪光环绕半径
	SparkleRadius = 40.0

	// StatsPanelX, StatsPanelY, StatsPanelWidth, StatsPanelHeight 状态面板
	StatsPanelX      = 20.0
	StatsPanelY      = 20.0
	StatsPanelWidth  = 300.0
	StatsPanelHeight = 120.0

	// StatBarWidth 水量条宽度
	StatBarWidth = 150.0
	// StatBarHeight 水量条高度
	StatBarHeight = 15.0

	// InstructionBarWidth 底部操作说明条宽度
	InstructionBarWidth = 360.0
	// InstructionBarHeight 底部操作说明条高度
	InstructionBarHeight = 40.0

	// GrowthIndicatorY "正在长成..."提示的 Y 坐标
	GrowthIndicatorY = 150.0
)

// 字号
const (
	FontSizeTitle       = 48.0
	FontSizeSubtitle    = 24.0
	FontSizeLarge       = 28.0
	FontSizeMedium      = 20.0
	FontSizeSmall       = 16.0
	FontSizeInstruction = 16.0
)
