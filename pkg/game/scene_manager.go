package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 每个 Mode 对应一个场景，场景在首次切换时通过注册的工厂函数创建并缓存。
type SceneManager struct {
	currentScene Scene
	currentMode  Mode
	factories    map[Mode]func() Scene // 场景工厂，延迟创建
	scenes       map[Mode]Scene        // 已创建的场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchToMode to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[Mode]func() Scene),
		scenes:    make(map[Mode]Scene),
	}
}

// Register 注册某个模式的场景工厂
func (sm *SceneManager) Register(mode Mode, factory func() Scene) {
	sm.factories[mode] = factory
	delete(sm.scenes, mode)
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// SwitchToMode 切换到指定模式对应的场景
//
// 返回：
//   - bool: 该模式是否注册了场景
func (sm *SceneManager) SwitchToMode(mode Mode) bool {
	scene, exists := sm.scenes[mode]
	if !exists {
		factory, ok := sm.factories[mode]
		if !ok {
			log.Printf("[SceneManager] 错误: 模式 %s 未注册场景", mode)
			return false
		}
		scene = factory()
		sm.scenes[mode] = scene
	}

	sm.currentMode = mode
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] 切换到场景: %s", mode)
	return true
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// GetCurrentMode 返回当前场景对应的模式
func (sm *SceneManager) GetCurrentMode() Mode {
	return sm.currentMode
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
