// arcade-tty 在终端里运行同一套场景（tcell 字符画）
//
// 用法:
//
//	go run ./cmd/arcade-tty -mode avoid -seed demo
//
// 终端占用 stdout，日志写到 -log 指定的文件。
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/decker502/arcade/data"
	"github.com/decker502/arcade/internal/logger"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/scenes"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// frameInterval 约 60 FPS
const frameInterval = 16 * time.Millisecond

var (
	modeFlag   = flag.String("mode", "shooter", "游戏模式: shooter | avoid")
	seed       = flag.String("seed", "", "随机种子")
	configPath = flag.String("config", "", "参数表 YAML 路径，为空使用内置参数")
	logPath    = flag.String("log", "arcade-tty.log", "日志文件")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	log, err := logger.New(logger.Options{Verbose: *verbose, OutputPath: *logPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	scene, err := newScene(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create scene: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	run(screen, scene, log)
}

func newScene(log *zap.Logger) (game.Scene, error) {
	mode, err := game.ParseMode(*modeFlag)
	if err != nil {
		return nil, err
	}

	opts, err := sceneOptions(mode, *configPath)
	if err != nil {
		return nil, err
	}
	opts.Seed = *seed
	opts.Logger = log
	opts.Store = game.OpenScoreStore(game.AppName, log)
	return scenes.New(mode, opts)
}

// sceneOptions 加载当前模式的参数表：默认使用内置 data/*.yaml，path 非空时改用该文件
func sceneOptions(mode game.Mode, path string) (scenes.Options, error) {
	var opts scenes.Options
	var err error
	switch mode {
	case game.ModeShooter:
		if path != "" {
			opts.Shooter, err = config.LoadShooterConfig(path)
		} else {
			opts.Shooter, err = config.ParseShooterConfig(data.ShooterYAML)
		}
	case game.ModeAvoid:
		if path != "" {
			opts.Avoid, err = config.LoadAvoidConfig(path)
		} else {
			opts.Avoid, err = config.ParseAvoidConfig(data.AvoidYAML)
		}
	}
	if err != nil {
		return scenes.Options{}, err
	}
	return opts, nil
}

// run 主循环：事件协程把 tcell 事件送进通道，ticker 驱动模拟和绘制
func run(screen tcell.Screen, scene game.Scene, log *zap.Logger) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Fini 之后 PollEvent 返回 nil
				return
			}
			eventChan <- ev
		}
	}()

	ctl := newControls()
	for {
		select {
		case ev := <-eventChan:
			if !handleEvent(screen, scene, ctl, ev) {
				log.Info("quit requested")
				return
			}

		case now := <-ticker.C:
			in, start, pause := ctl.frame(now)
			if start && scene.State().CanStart() {
				scene.Start()
			}
			if pause {
				scene.TogglePause()
			}
			scene.Update(frameInterval, in)
			draw(screen, scene)
		}
	}
}

// handleEvent 处理一个终端事件；返回 false 表示退出
func handleEvent(screen tcell.Screen, scene game.Scene, ctl *controls, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := keyCommand(ev.Key(), ev.Rune())
		if cmd == cmdQuit {
			return false
		}
		ctl.press(cmd, time.Now())

	case *tcell.EventMouse:
		w, h := screen.Size()
		v := newViewport(w, h, scene.State().Arena)
		col, row := ev.Position()
		x, y := v.toArena(col, row)
		pressed := ev.Buttons()&tcell.Button1 != 0
		// 未开始/结束时点击等同于 Enter
		if pressed && !ctl.pointerActive && scene.State().CanStart() {
			ctl.press(cmdStart, time.Now())
		}
		ctl.pointer(x, y, !pressed)

	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
