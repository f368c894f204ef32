package game

import (
	"errors"
	"testing"

	"github.com/decker502/plantbuddy/pkg/config"
)

// memorySaver 记录保存次数的内存存档
type memorySaver struct {
	saved []PlantState
	err   error
}

func (m *memorySaver) Save(state *PlantState) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, *state)
	return nil
}

func newTestSession(saver PlantSaver) *Session {
	return NewSession(NewPlantState(), config.GrowthStages, saver)
}

func TestSession_StartsInMenu(t *testing.T) {
	s := newTestSession(nil)
	if s.Mode() != ModeMenu {
		t.Errorf("初始模式 = %s, 期望 menu", s.Mode())
	}
}

func TestSession_NilPlant(t *testing.T) {
	s := NewSession(nil, config.GrowthStages, nil)
	if s.Plant() == nil || *s.Plant() != *NewPlantState() {
		t.Error("nil 植物应替换为默认状态")
	}
}

func TestSession_MenuDoesNotTick(t *testing.T) {
	s := newTestSession(nil)

	for i := 0; i < 8; i++ {
		s.Update(0.5)
	}

	if s.Plant().Age != 0 {
		t.Errorf("菜单中植物不应成长，Age = %d", s.Plant().Age)
	}
	if s.AnimationTime() != 4.0 {
		t.Errorf("动画时间应持续推进，得到 %v", s.AnimationTime())
	}
}

func TestSession_TicksOncePerSecond(t *testing.T) {
	s := newTestSession(nil)
	s.StartPlaying()

	// 0.25 * 4 = 1.0 秒，浮点精确
	for i := 0; i < 3; i++ {
		s.Update(0.25)
	}
	if s.Plant().Age != 0 {
		t.Fatalf("不足一秒不应 Tick，Age = %d", s.Plant().Age)
	}

	s.Update(0.25)
	if s.Plant().Age != 1 {
		t.Fatalf("满一秒应 Tick 一次，Age = %d", s.Plant().Age)
	}

	// 一次大步长也只 Tick 一次
	s.Update(3.0)
	if s.Plant().Age != 2 {
		t.Errorf("单帧最多 Tick 一次，Age = %d", s.Plant().Age)
	}
}

func TestSession_WaterOnlyWhilePlaying(t *testing.T) {
	s := newTestSession(nil)
	s.Plant().Water = 50

	if s.Water() {
		t.Error("菜单中浇水不应生效")
	}
	if s.Plant().Water != 50 {
		t.Errorf("菜单中水量不应变化，得到 %d", s.Plant().Water)
	}

	calls := 0
	s.SetWateredListener(func() { calls++ })
	s.StartPlaying()

	if !s.Water() {
		t.Error("游玩中浇水应生效")
	}
	if !s.IsWaterEffectActive() || s.WaterEffectTime() != config.WaterEffectDuration {
		t.Errorf("浇水后特效时间 = %v", s.WaterEffectTime())
	}
	if calls != 1 {
		t.Errorf("浇水回调次数 = %d, 期望 1", calls)
	}

	// 水满时不触发特效
	s.Plant().Water = 100
	s.Update(0.5)
	if s.Water() {
		t.Error("水满时 Water() 应返回 false")
	}
	if calls != 1 {
		t.Errorf("水满时不应触发回调，次数 = %d", calls)
	}
}

func TestSession_WaterEffectDecays(t *testing.T) {
	s := newTestSession(nil)
	s.StartPlaying()
	s.Plant().Water = 10
	s.Water()

	s.Update(0.5)
	if s.WaterEffectTime() != 0.5 {
		t.Errorf("特效剩余时间 = %v, 期望 0.5", s.WaterEffectTime())
	}

	s.Update(0.75)
	if s.WaterEffectTime() != 0 || s.IsWaterEffectActive() {
		t.Errorf("特效结束后剩余时间应为 0，得到 %v", s.WaterEffectTime())
	}
}

func TestSession_ReturnToMenuSaves(t *testing.T) {
	saver := &memorySaver{}
	s := newTestSession(saver)

	var modes []Mode
	s.SetModeChangeListener(func(m Mode) { modes = append(modes, m) })

	s.StartPlaying()
	s.Update(1.0)
	if err := s.ReturnToMenu(); err != nil {
		t.Fatalf("ReturnToMenu() error: %v", err)
	}

	if s.Mode() != ModeMenu {
		t.Errorf("模式 = %s, 期望 menu", s.Mode())
	}
	if len(saver.saved) != 1 || saver.saved[0].Age != 1 {
		t.Errorf("返回菜单应保存一次，得到 %+v", saver.saved)
	}
	if len(modes) != 2 || modes[0] != ModePlaying || modes[1] != ModeMenu {
		t.Errorf("模式回调序列 = %v", modes)
	}

	// 菜单中再次返回无效，也不保存
	if err := s.ReturnToMenu(); err != nil {
		t.Errorf("无效转移不应返回错误: %v", err)
	}
	if len(saver.saved) != 1 {
		t.Errorf("无效转移不应保存，保存次数 = %d", len(saver.saved))
	}
}

func TestSession_ReturnToMenuSaveError(t *testing.T) {
	saver := &memorySaver{err: errors.New("disk full")}
	s := newTestSession(saver)
	s.StartPlaying()

	err := s.ReturnToMenu()
	if err == nil {
		t.Fatal("存档失败应返回错误")
	}
	if !errors.Is(err, saver.err) {
		t.Errorf("错误应包装原始错误: %v", err)
	}
	if s.Mode() != ModeMenu {
		t.Error("存档失败时仍应返回菜单")
	}
}

func TestSession_Shutdown(t *testing.T) {
	saver := &memorySaver{}
	s := newTestSession(saver)

	if err := s.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if len(saver.saved) != 0 {
		t.Error("菜单中退出不应保存")
	}

	s.StartPlaying()
	if err := s.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if len(saver.saved) != 1 {
		t.Error("游玩中退出应保存")
	}
}

func TestSession_ResetPlant(t *testing.T) {
	s := newTestSession(nil)
	s.StartPlaying()
	s.Plant().Water = 20
	s.Water()
	s.Update(1.0)

	s.ResetPlant()

	if *s.Plant() != *NewPlantState() {
		t.Errorf("重置后应为默认状态，得到 %+v", *s.Plant())
	}
	if s.IsWaterEffectActive() {
		t.Error("重置后浇水特效应结束")
	}
}

func TestSession_PlantScale(t *testing.T) {
	s := newTestSession(nil)
	s.Plant().Age = 25

	info := s.StageInfo()
	if info.Current.Name != "flower" {
		t.Fatalf("Age=25 应为花期，得到 %s", info.Current.Name)
	}
	if got := s.PlantScale(1.0); !approxEqual(got, 1.0) {
		t.Errorf("PlantScale = %v, 期望 1.0", got)
	}
}
