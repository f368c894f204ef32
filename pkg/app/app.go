// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：设置、存档、会话、资源与场景
// 都在 NewApp 中组装，main.go 只负责解析参数和启动游戏循环。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/plantbuddy/pkg/config"
	"github.com/decker502/plantbuddy/pkg/game"
	"github.com/decker502/plantbuddy/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SavePath 植物存档路径，为空时使用 config.DefaultSaveFile
	SavePath string
	// Reset 启动时丢弃已有存档，从新种子开始
	Reset bool
	// AssetDir 资源根目录，为空时使用当前工作目录
	AssetDir string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	session         *game.Session
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	saveManager     *game.SaveManager
	audioManager    *game.AudioManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	shutdownDone             bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settingsManager := game.NewSettingsManager(game.OpenGdataManager(game.GdataAppName))

	savePath := cfg.SavePath
	if savePath == "" {
		savePath = config.DefaultSaveFile
	}
	saveManager := game.NewSaveManager(savePath)

	if cfg.Reset {
		if err := saveManager.Delete(); err != nil {
			return nil, fmt.Errorf("存档重置失败: %w", err)
		}
		log.Printf("[App] 已删除存档: %s", savePath)
	}

	if !saveManager.HasSave() {
		log.Printf("[App] 没有存档，从新种子开始")
	}
	plant := saveManager.Load()
	session := game.NewSession(plant, config.GrowthStages, saveManager)
	log.Printf("[App] 植物已加载: age=%d water=%d happiness=%d", plant.Age, plant.Water, plant.Happiness)

	assetDir := cfg.AssetDir
	if assetDir == "" {
		assetDir = "."
	}
	resourceManager := game.NewResourceManager(os.DirFS(assetDir), config.PlantImageDir)
	if fallbacks := resourceManager.LoadStageImages(config.GrowthStages); fallbacks > 0 {
		for _, stage := range config.GrowthStages {
			if resourceManager.IsPlaceholder(stage.Name) {
				log.Printf("[App] 阶段 %s 使用占位图（缺少 %s/%s）", stage.Name, config.PlantImageDir, stage.Image)
			}
		}
	}

	audioManager := game.NewAudioManager(audio.NewContext(game.AudioSampleRate), settingsManager)
	session.SetWateredListener(func() {
		audioManager.PlayWaterChime()
	})

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.Register(game.ModeMenu, func() game.Scene {
		return scenes.NewMainMenuScene(session, resourceManager)
	})
	sceneManager.Register(game.ModePlaying, func() game.Scene {
		return scenes.NewPlantScene(session, resourceManager)
	})
	session.SetModeChangeListener(func(mode game.Mode) {
		sceneManager.SwitchToMode(mode)
	})
	sceneManager.SwitchToMode(session.Mode())

	return &App{
		session:         session,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		saveManager:     saveManager,
		audioManager:    audioManager,
		verbose:         cfg.Verbose,
	}, nil
}

// ApplyWindowSettings 在启动游戏循环前应用窗口设置
func (a *App) ApplyWindowSettings() {
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TargetTPS)
	// 关闭窗口时先存档，再结束游戏循环
	ebiten.SetWindowClosingHandled(true)

	if a.settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if err := a.Shutdown(); err != nil {
			log.Printf("[App] Warning: 退出时存档失败: %v", err)
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.handleSettingsKeys()

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.session.Update(deltaTime)
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		a.settingsManager.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}
	a.saveSettings()
}

// handleSettingsKeys 全局设置快捷键：F3 帧率，M 音效开关，-/= 音量
func (a *App) handleSettingsKeys() {
	settings := a.settingsManager.GetSettings()
	changed := true

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		a.settingsManager.SetShowFPS(!settings.ShowFPS)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		a.settingsManager.SetSoundEnabled(!settings.SoundEnabled)
		log.Printf("[App] 音效: %v", settings.SoundEnabled)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		a.settingsManager.SetSoundVolume(settings.SoundVolume - config.VolumeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		a.settingsManager.SetSoundVolume(settings.SoundVolume + config.VolumeStep)
	default:
		changed = false
	}

	if changed {
		a.saveSettings()
	}
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: 设置保存失败: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)

	if a.settingsManager.GetSettings().ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), config.GameWindowWidth-150, 4)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 持久化会话状态，可重复调用
func (a *App) Shutdown() error {
	if a.shutdownDone {
		return nil
	}
	a.shutdownDone = true
	if err := a.session.Shutdown(); err != nil {
		return fmt.Errorf("会话关闭失败: %w", err)
	}
	log.Printf("[App] 会话已关闭 (save=%s)", a.saveManager.GetSavePath())
	return nil
}

// GetSession 返回当前游戏会话
func (a *App) GetSession() *game.Session {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
