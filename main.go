package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/minesweeper/pkg/app"
	"github.com/decker502/minesweeper/pkg/config"
	"github.com/decker502/minesweeper/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag     = flag.String("config", "", "Menu config file on disk (default: embedded data/menu.yaml)")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// Set window properties
	// 主菜单进入时会把标题改为配置中的 caption
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Fullscreen: *fullscreenFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetTPS(gameApp.MenuConfig().EffectiveTPS())

	// Start the game loop
	// Update 返回 ebiten.Termination 时 RunGame 返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		// 非 verbose 模式下日志已被丢弃，致命错误仍需输出
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
