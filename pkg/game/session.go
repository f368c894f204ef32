package game

import (
	"fmt"
	"log"

	"github.com/decker502/plantbuddy/pkg/config"
)

// PlantSaver 植物状态持久化接口
// SaveManager 实现此接口；测试中可替换为内存实现
type PlantSaver interface {
	Save(state *PlantState) error
}

// Session 一次游戏会话的全部可变状态
//
// 由 App 持有并在 Update/Draw 中传递给各场景，取代全局变量。
// 所有方法都在 ebiten 的单一更新线程中调用，不需要加锁。
type Session struct {
	plant  *PlantState
	stages []config.GrowthStage
	saver  PlantSaver

	mode Mode

	animationTime   float64 // 全局动画时间（秒），菜单和游玩中都推进
	waterEffectTime float64 // 浇水特效剩余时间（秒）
	tickAccumulator float64 // 距上次 Tick 累计的时间（秒）

	onWatered    func()          // 浇水成功回调（播放音效等）
	onModeChange func(mode Mode) // 模式切换回调（切换场景）
}

// NewSession 创建会话，初始处于主菜单
//
// 参数：
//   - plant: 已从存档恢复的植物状态
//   - stages: 生长阶段配置
//   - saver: 存档接口，可为 nil（不持久化）
func NewSession(plant *PlantState, stages []config.GrowthStage, saver PlantSaver) *Session {
	if plant == nil {
		plant = NewPlantState()
	}
	return &Session{
		plant:  plant,
		stages: stages,
		saver:  saver,
		mode:   ModeMenu,
	}
}

// Plant 返回植物状态
func (s *Session) Plant() *PlantState { return s.plant }

// Stages 返回生长阶段配置
func (s *Session) Stages() []config.GrowthStage { return s.stages }

// Mode 返回当前模式
func (s *Session) Mode() Mode { return s.mode }

// AnimationTime 返回全局动画时间
func (s *Session) AnimationTime() float64 { return s.animationTime }

// WaterEffectTime 返回浇水特效剩余时间
func (s *Session) WaterEffectTime() float64 { return s.waterEffectTime }

// IsWaterEffectActive 浇水特效是否正在播放
func (s *Session) IsWaterEffectActive() bool { return s.waterEffectTime > 0 }

// StageInfo 返回当前阶段信息
func (s *Session) StageInfo() StageInfo {
	return ResolveStage(s.plant.Age, s.stages)
}

// PlantScale 返回植物当前绘制缩放（含呼吸与浇水动画）
func (s *Session) PlantScale(baseline float64) float64 {
	return CalculateScale(s.plant.Age, s.stages, baseline, s.animationTime, s.waterEffectTime)
}

// SetWateredListener 设置浇水成功回调
func (s *Session) SetWateredListener(fn func()) {
	s.onWatered = fn
}

// SetModeChangeListener 设置模式切换回调
func (s *Session) SetModeChangeListener(fn func(mode Mode)) {
	s.onModeChange = fn
}

// Update 推进会话时间
//
// 动画时间与浇水特效始终推进；植物状态仅在游玩中推进，
// 每累计满 TickInterval 秒调用一次 Tick，之后清空累计值（每帧最多一次）。
func (s *Session) Update(deltaTime float64) {
	s.animationTime += deltaTime

	if s.waterEffectTime > 0 {
		s.waterEffectTime = max(0, s.waterEffectTime-deltaTime)
	}

	if s.mode != ModePlaying {
		return
	}

	s.tickAccumulator += deltaTime
	if s.tickAccumulator >= config.TickInterval {
		s.tickAccumulator = 0
		s.plant.Tick()
	}
}

// HandleEvent 处理模式事件
//
// 返回：
//   - bool: 是否发生了模式切换
//   - error: 返回菜单时存档失败的错误（模式仍会切换）
func (s *Session) HandleEvent(event ModeEvent) (bool, error) {
	next, ok := NextMode(s.mode, event)
	if !ok {
		return false, nil
	}

	var saveErr error
	if s.mode == ModePlaying && next == ModeMenu {
		saveErr = s.persist()
	}

	log.Printf("[Session] 模式切换: %s -> %s (%s)", s.mode, next, event)
	s.mode = next
	if s.onModeChange != nil {
		s.onModeChange(next)
	}
	return true, saveErr
}

// StartPlaying 从主菜单进入游玩
func (s *Session) StartPlaying() bool {
	changed, _ := s.HandleEvent(EventStart)
	return changed
}

// ReturnToMenu 从游玩返回主菜单并存档
func (s *Session) ReturnToMenu() error {
	_, err := s.HandleEvent(EventBack)
	return err
}

// Water 给植物浇水
// 仅在游玩中生效；水量真的增加时启动浇水特效并通知回调
func (s *Session) Water() bool {
	if s.mode != ModePlaying {
		return false
	}

	if !s.plant.WaterPlant() {
		return false
	}

	s.waterEffectTime = config.WaterEffectDuration
	if s.onWatered != nil {
		s.onWatered()
	}
	return true
}

// ResetPlant 将植物恢复为初始状态
func (s *Session) ResetPlant() {
	s.plant.Reset()
	s.waterEffectTime = 0
	s.tickAccumulator = 0
	log.Printf("[Session] 植物已重置")
}

// Shutdown 进程退出前调用，游玩中会写入存档
func (s *Session) Shutdown() error {
	if s.mode != ModePlaying {
		return nil
	}
	return s.persist()
}

func (s *Session) persist() error {
	if s.saver == nil {
		return nil
	}
	if err := s.saver.Save(s.plant); err != nil {
		return fmt.Errorf("failed to save plant state: %w", err)
	}
	return nil
}
