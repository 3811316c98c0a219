package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/arspawn/pkg/app"
	"github.com/gonewx/arspawn/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "演示配置文件路径（默认使用内置 data/demo.yaml）")
	seed := flag.Int64("seed", 0, "随机种子，0 表示使用配置文件中的值")
	mute := flag.Bool("mute", false, "不播放环境音")
	flag.Parse()

	embedded.Init(dataFS)
	configData, err := embedded.ReadFile(embedded.DemoConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取内置配置失败: %v\n", err)
		os.Exit(1)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		ConfigData: configData,
		Seed:       *seed,
		Mute:       *mute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(gameApp.WindowSize())
	ebiten.SetWindowTitle("AR Surface Spawn Demo")

	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
