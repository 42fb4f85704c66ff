// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io/fs"
	"time"

	"github.com/decker502/arcade/internal/logger"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/render"
	"github.com/decker502/arcade/pkg/scenes"
	"github.com/decker502/arcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Config 定义应用启动配置
type Config struct {
	// Mode 启动时进入的游戏模式
	Mode game.Mode
	// Seed 随机种子字符串，为空则按时间
	Seed string

	Shooter *config.ShooterConfig
	Avoid   *config.AvoidConfig

	// Store 最高分存储，nil 时只保存在内存
	Store game.BestScoreStore
	// Assets 可选贴图所在的文件系统，nil 时全部使用占位图形
	Assets fs.FS

	Logger *zap.Logger

	// Touch 显示触屏按钮（移动端）
	Touch bool
	// Resizable 逻辑尺寸跟随窗口尺寸（移动端）；否则固定为竞技场尺寸
	Resizable bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	poller       *inputPoller
	touch        *render.TouchControls

	shooterRenderer *render.ShooterRenderer
	avoidRenderer   *render.AvoidRenderer

	resizable          bool
	layoutW, layoutH   int
	pendingW, pendingH int
	pendingResize      bool
	logger             *zap.Logger
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入资源时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	log := logger.OrNop(cfg.Logger)

	rng := utils.NewRand(cfg.Seed)
	opts := scenes.Options{
		Shooter: cfg.Shooter,
		Avoid:   cfg.Avoid,
		Store:   cfg.Store,
		Rand:    rng,
		Logger:  log,
	}

	var touch *render.TouchControls
	if cfg.Touch {
		touch = render.NewTouchControls()
	}

	resourceManager := render.NewResourceManager(cfg.Assets, log)

	a := &App{
		sceneManager:    game.NewSceneManager(log),
		poller:          newInputPoller(),
		touch:           touch,
		shooterRenderer: render.NewShooterRenderer(resourceManager, rng, touch),
		avoidRenderer:   render.NewAvoidRenderer(),
		resizable:       cfg.Resizable,
		logger:          log.Named("app"),
	}
	a.sceneManager.SetSceneFactory(scenes.Factory(opts))
	if err := a.sceneManager.LoadMode(cfg.Mode); err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	arena := a.sceneManager.GetCurrentScene().State().Arena
	a.layoutW, a.layoutH = int(arena.Width), int(arena.Height)
	return a, nil
}

// FrameDuration 每个 tick 对应的模拟时长
func FrameDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（默认 60 TPS）
func (a *App) Update() error {
	// F11 切换全屏（桌面端）
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	scene := a.sceneManager.GetCurrentScene()
	if scene == nil {
		return nil
	}

	if a.pendingResize {
		a.pendingResize = false
		scene.Resize(float64(a.pendingW), float64(a.pendingH))
	}

	gs := scene.State()
	act := MapInput(a.poller.Poll(), gs.Phase, a.touch, gs.Arena.Width, gs.Arena.Height)

	if act.Start && gs.CanStart() {
		scene.Start()
	}
	if act.Pause {
		scene.TogglePause()
	}

	a.sceneManager.Update(FrameDuration(), act.Input)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	switch s := a.sceneManager.GetCurrentScene().(type) {
	case *scenes.ShooterScene:
		a.shooterRenderer.Draw(screen, s)
	case *scenes.AvoidScene:
		a.avoidRenderer.Draw(screen, s)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
//
// 桌面端固定为竞技场尺寸，Ebitengine 负责缩放；
// Resizable 时逻辑尺寸等于窗口尺寸，变化会在下一次 Update 时通知场景。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !a.resizable || outsideWidth <= 0 || outsideHeight <= 0 {
		return a.layoutW, a.layoutH
	}
	if outsideWidth != a.layoutW || outsideHeight != a.layoutH {
		a.layoutW, a.layoutH = outsideWidth, outsideHeight
		a.pendingW, a.pendingH = outsideWidth, outsideHeight
		a.pendingResize = true
		a.logger.Debug("layout changed", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
	}
	return a.layoutW, a.layoutH
}
