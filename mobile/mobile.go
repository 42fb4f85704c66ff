//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	make build-android    # Android
//	make build-ios        # iOS (仅 macOS)
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/arcade/internal/logger"
	"github.com/decker502/arcade/pkg/app"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/embedded"
	"github.com/decker502/arcade/pkg/game"
)

func init() {
	embedded.Init(dataFS)

	zl, err := logger.New(logger.Options{Verbose: true})
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}

	shooterCfg, err := config.LoadShooterConfig(config.ShooterConfigPath)
	if err != nil {
		log.Fatalf("参数表加载失败: %v", err)
	}

	// 移动端：触屏按钮 + 逻辑尺寸跟随屏幕
	cfg := app.Config{
		Mode:      game.ModeShooter,
		Shooter:   shooterCfg,
		Store:     game.OpenScoreStore(game.AppName, zl),
		Assets:    dataFS,
		Logger:    zl,
		Touch:     true,
		Resizable: true,
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
