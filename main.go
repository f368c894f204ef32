package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/decker502/plantbuddy/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	savePath = flag.String("save", "", "植物存档路径（默认 data/savegame.yaml）")
	reset    = flag.Bool("reset", false, "删除已有存档，从新种子开始")
	assetDir = flag.String("assets", "", "资源根目录（默认当前目录，图片位于 <dir>/assets/images）")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Virtual Plant Buddy: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		SavePath: *savePath,
		Reset:    *reset,
		AssetDir: *assetDir,
	})
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}

	gameApp.ApplyWindowSettings()

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		_ = gameApp.Shutdown()
		return err
	}

	// RunGame 在某些平台上不经过 IsWindowBeingClosed 直接返回
	return gameApp.Shutdown()
}
