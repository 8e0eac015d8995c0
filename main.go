package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/zoomnav/pkg/app"
	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	configDir = flag.String("config", "", "配置目录（包含 navigation.yaml 和 scenes.yaml），为空则使用内置配置")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		ConfigDir: *configDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Zoom Navigation")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Settings().Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
