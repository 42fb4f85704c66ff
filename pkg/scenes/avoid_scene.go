package scenes

import (
	"math/rand"
	"time"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/entities"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/systems"
	"go.uber.org/zap"
)

// AvoidScene 大头鱼躲方块
// 用手指（或鼠标）拖动鱼头去碰方块得分，鱼头碰到边界即结束
type AvoidScene struct {
	em       *ecs.EntityManager
	gs       *game.GameState
	cfg      *config.AvoidConfig
	rng      *rand.Rand
	store    game.BestScoreStore
	logger   *zap.Logger
	newRunID func() string

	steeringSystem  *systems.ChaserSteeringSystem
	targetSystem    *systems.TargetSpawnSystem
	collisionSystem *systems.AvoidCollisionSystem
}

// NewAvoidScene 创建躲避场景（NotStarted 阶段）
func NewAvoidScene(opts Options) *AvoidScene {
	opts = opts.withDefaults()
	cfg := opts.Avoid
	log := opts.Logger.Named("avoid")

	em := ecs.NewEntityManager()
	gs := game.NewGameState(game.ModeAvoid, cfg.ArenaWidth, cfg.ArenaHeight)
	gs.BestScore = loadBest(opts.Store, game.ModeAvoid, log)

	targets := systems.NewTargetSpawnSystem(em, gs, cfg, opts.Rand)
	s := &AvoidScene{
		em:       em,
		gs:       gs,
		cfg:      cfg,
		rng:      opts.Rand,
		store:    opts.Store,
		logger:   log,
		newRunID: opts.NewRunID,

		steeringSystem:  systems.NewChaserSteeringSystem(em, gs),
		targetSystem:    targets,
		collisionSystem: systems.NewAvoidCollisionSystem(em, gs, targets, log),
	}
	s.populate()
	return s
}

// populate 鱼头放回中心，方块随机放置
func (s *AvoidScene) populate() {
	entities.NewChaser(s.em, s.cfg, s.gs.Arena.Width, s.gs.Arena.Height)
	s.targetSystem.Ensure()
}

// Start 从 NotStarted 或 GameOver 开始新的一局
func (s *AvoidScene) Start() {
	if !s.gs.CanStart() {
		return
	}
	s.Restart()
}

// Restart 重置并开始
func (s *AvoidScene) Restart() {
	s.em.Clear()
	s.gs.Reset(s.newRunID())
	s.populate()
	s.gs.Phase = game.PhaseRunning
	s.logger.Info("run started", zap.String("run", s.gs.RunID), zap.Int("best", s.gs.BestScore))
}

// TogglePause 暂停/继续
func (s *AvoidScene) TogglePause() {
	if s.gs.TogglePause() {
		s.logger.Info("pause toggled", zap.String("run", s.gs.RunID), zap.Stringer("phase", s.gs.Phase))
	}
}

// Resize 视口尺寸变化：鱼头回到中心，方块重新放置
func (s *AvoidScene) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.gs.Arena.Width && height == s.gs.Arena.Height {
		return
	}
	s.gs.Arena = game.Arena{Width: width, Height: height}

	if id, ok := ecs.First[*components.ChaserComponent](s.em); ok {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		pos.X, pos.Y = width/2, height/2
	}
	if id, ok := ecs.First[*components.TargetComponent](s.em); ok {
		s.targetSystem.Relocate(id)
	}
}

// Update 推进一帧
func (s *AvoidScene) Update(dt time.Duration, in game.InputState) {
	if !s.gs.IsRunning() {
		return
	}
	s.gs.Advance(dt)

	s.steeringSystem.Update(in)
	if s.collisionSystem.Update() {
		finishRun(s.gs, s.store, s.logger)
	}

	s.em.RemoveMarkedEntities()
}

// State 当前局状态
func (s *AvoidScene) State() *game.GameState { return s.gs }

// EntityManager 供渲染层只读遍历实体
func (s *AvoidScene) EntityManager() *ecs.EntityManager { return s.em }

// Config 参数表
func (s *AvoidScene) Config() *config.AvoidConfig { return s.cfg }
