package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchToMode verifies lazy creation and caching of mode scenes.
func TestSceneManagerSwitchToMode(t *testing.T) {
	sm := NewSceneManager()
	created := 0
	menu := &MockScene{}
	sm.Register(ModeMenu, func() Scene {
		created++
		return menu
	})

	if !sm.SwitchToMode(ModeMenu) {
		t.Fatal("SwitchToMode(ModeMenu) returned false")
	}
	if sm.GetCurrentScene() != menu {
		t.Error("SwitchToMode did not set the menu scene")
	}
	if sm.GetCurrentMode() != ModeMenu {
		t.Errorf("Expected mode %s, got %s", ModeMenu, sm.GetCurrentMode())
	}

	sm.SwitchToMode(ModeMenu)
	if created != 1 {
		t.Errorf("Expected factory to run once, ran %d times", created)
	}
}

// TestSceneManagerSwitchToUnregisteredMode verifies the active scene is kept.
func TestSceneManagerSwitchToUnregisteredMode(t *testing.T) {
	sm := NewSceneManager()
	menu := &MockScene{}
	sm.Register(ModeMenu, func() Scene { return menu })
	sm.SwitchToMode(ModeMenu)

	if sm.SwitchToMode(ModePlaying) {
		t.Error("Expected SwitchToMode to fail for an unregistered mode")
	}
	if sm.GetCurrentScene() != menu {
		t.Error("Active scene changed after a failed switch")
	}
	if sm.GetCurrentMode() != ModeMenu {
		t.Errorf("Expected mode to stay %s, got %s", ModeMenu, sm.GetCurrentMode())
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
}
