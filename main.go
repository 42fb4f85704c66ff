package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/arcade/internal/logger"
	"github.com/decker502/arcade/pkg/app"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/embedded"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var (
	modeFlag    = flag.String("mode", "shooter", "游戏模式: shooter | avoid")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	seed        = flag.String("seed", "", "随机种子（相同种子可复现同一局）")
	configPath  = flag.String("config", "", "参数表 YAML 路径，为空使用内置参数")
	logFile     = flag.String("log", "", "日志输出文件，为空输出到 stderr")
	touchLayout = flag.Bool("touch", false, "显示触屏按钮")
)

func main() {
	flag.Parse()

	log, err := logger.New(logger.Options{Verbose: *verbose, OutputPath: *logFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Error("game exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	embedded.Init(dataFS)

	mode, err := game.ParseMode(*modeFlag)
	if err != nil {
		return err
	}

	cfg := app.Config{
		Mode:   mode,
		Seed:   *seed,
		Assets: dataFS,
		Logger: log,
		Touch:  *touchLayout || utils.IsMobile(),
	}

	// -config 只覆盖当前模式的参数表
	switch mode {
	case game.ModeShooter:
		path := config.ShooterConfigPath
		if *configPath != "" {
			path = *configPath
		}
		if cfg.Shooter, err = config.LoadShooterConfig(path); err != nil {
			return err
		}
	case game.ModeAvoid:
		path := config.AvoidConfigPath
		if *configPath != "" {
			path = *configPath
		}
		if cfg.Avoid, err = config.LoadAvoidConfig(path); err != nil {
			return err
		}
	}

	store := game.OpenScoreStore(game.AppName, log)
	if !store.Persistent() {
		log.Warn("best scores are kept in memory only")
	}
	cfg.Store = store

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		return err
	}

	w, h := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(windowTitle(mode))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(gameApp)
}

func windowTitle(mode game.Mode) string {
	if mode == game.ModeAvoid {
		return "Fish Avoid Block"
	}
	return "Arcade Shooter"
}
