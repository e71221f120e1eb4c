package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/decker502/invaders/pkg/app"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "调优文件路径（默认使用内嵌的 data/tuning.yaml）")
	scoresPath := flag.String("scores", "", "分数文件路径（默认 "+config.ScoreFilePath+"）")
	useGdata := flag.Bool("gdata", false, "把设置和分数保存到用户数据目录")
	skipIntro := flag.Bool("skip-intro", false, "跳过开场直接进入主菜单")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		ScoresPath: *scoresPath,
		UseGdata:   *useGdata,
		SkipIntro:  *skipIntro,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	if saveErr := gameApp.Shutdown(); saveErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", saveErr)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "游戏异常退出: %v\n", runErr)
		os.Exit(1)
	}
}
