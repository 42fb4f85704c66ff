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

// ShooterScene 纵版射击
//
// 每帧的系统执行顺序：
//
//	移动 → 无敌计时 → 射击 → 必杀技 → 生成 → 直线运动 → 出界 → 敌机开火
//	→ 粒子 → 碰撞 → 难度 → 结算 → 清理待删除实体
type ShooterScene struct {
	em       *ecs.EntityManager
	gs       *game.GameState
	cfg      *config.ShooterConfig
	rng      *rand.Rand
	store    game.BestScoreStore
	logger   *zap.Logger
	newRunID func() string

	movementSystem   *systems.PlayerMovementSystem
	invulnSystem     *systems.InvulnerabilitySystem
	weaponSystem     *systems.WeaponSystem
	skillSystem      *systems.SkillSystem
	spawnSystem      *systems.EnemySpawnSystem
	motionSystem     *systems.MotionSystem
	boundarySystem   *systems.BoundarySystem
	enemyFireSystem  *systems.EnemyFireSystem
	particleSystem   *systems.ParticleSystem
	collisionSystem  *systems.ShooterCollisionSystem
	difficultySystem *systems.DifficultySystem
}

// NewShooterScene 创建射击场景（NotStarted 阶段）
// 开始之前场景里只有一架处于默认位置的战机，血量为 StartHealth
func NewShooterScene(opts Options) *ShooterScene {
	opts = opts.withDefaults()
	cfg := opts.Shooter
	log := opts.Logger.Named("shooter")

	em := ecs.NewEntityManager()
	gs := game.NewGameState(game.ModeShooter, cfg.ArenaWidth, cfg.ArenaHeight)
	gs.BestScore = loadBest(opts.Store, game.ModeShooter, log)

	s := &ShooterScene{
		em:       em,
		gs:       gs,
		cfg:      cfg,
		rng:      opts.Rand,
		store:    opts.Store,
		logger:   log,
		newRunID: opts.NewRunID,

		movementSystem:   systems.NewPlayerMovementSystem(em, gs),
		invulnSystem:     systems.NewInvulnerabilitySystem(em, cfg.NominalFrame),
		weaponSystem:     systems.NewWeaponSystem(em, gs, cfg, opts.Rand),
		skillSystem:      systems.NewSkillSystem(em, gs, cfg, opts.Rand, log),
		spawnSystem:      systems.NewEnemySpawnSystem(em, gs, cfg, opts.Rand, log),
		motionSystem:     systems.NewMotionSystem(em),
		boundarySystem:   systems.NewBoundarySystem(em, gs, cfg, log),
		enemyFireSystem:  systems.NewEnemyFireSystem(em, gs, cfg),
		particleSystem:   systems.NewParticleSystem(em),
		collisionSystem:  systems.NewShooterCollisionSystem(em, gs, cfg, opts.Rand, log),
		difficultySystem: systems.NewDifficultySystem(gs, cfg, log),
	}

	entities.NewPlayer(em, cfg, gs.Arena.Width, gs.Arena.Height, cfg.Player.StartHealth)
	s.skillSystem.Reset()
	return s
}

// Start 从 NotStarted 或 GameOver 开始新的一局
func (s *ShooterScene) Start() {
	if !s.gs.CanStart() {
		return
	}
	s.reset()
}

// Restart 无论当前阶段如何都重新开始
func (s *ShooterScene) Restart() {
	s.reset()
}

// reset 清空所有实体，分数归零，血量回满
func (s *ShooterScene) reset() {
	s.em.Clear()
	s.gs.Reset(s.newRunID())

	entities.NewPlayer(s.em, s.cfg, s.gs.Arena.Width, s.gs.Arena.Height, s.cfg.Player.MaxHealth)
	s.spawnSystem.Reset()
	s.skillSystem.Reset()
	s.gs.Phase = game.PhaseRunning

	s.logger.Info("run started", zap.String("run", s.gs.RunID), zap.Int("best", s.gs.BestScore))
}

// TogglePause 暂停/继续
func (s *ShooterScene) TogglePause() {
	if s.gs.TogglePause() {
		s.logger.Info("pause toggled", zap.String("run", s.gs.RunID), zap.Stringer("phase", s.gs.Phase))
	}
}

// UseSkill 释放必杀技；只在运行中且冷却结束时生效
func (s *ShooterScene) UseSkill() bool {
	if !s.gs.IsRunning() {
		return false
	}
	_, ok := s.skillSystem.Use()
	return ok
}

// Resize 视口尺寸变化：更新竞技场并把战机放回默认位置
func (s *ShooterScene) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.gs.Arena.Width && height == s.gs.Arena.Height {
		return
	}
	s.gs.Arena = game.Arena{Width: width, Height: height}

	if id, ok := ecs.First[*components.PlayerComponent](s.em); ok {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		pos.X, pos.Y = entities.PlayerDefaultPosition(s.cfg, width, height)
	}
	s.logger.Debug("arena resized", zap.Float64("width", width), zap.Float64("height", height))
}

// Update 推进一帧；非运行阶段不做任何模拟
func (s *ShooterScene) Update(dt time.Duration, in game.InputState) {
	if !s.gs.IsRunning() {
		return
	}
	s.gs.Advance(dt)

	s.movementSystem.Update(in)
	s.invulnSystem.Update()
	s.weaponSystem.Update(in)
	s.skillSystem.Update(in)
	s.spawnSystem.Update()
	s.motionSystem.Update()
	s.boundarySystem.Update()
	s.enemyFireSystem.Update()
	s.particleSystem.Update()
	s.collisionSystem.Update()
	s.difficultySystem.Update()

	if current, _ := s.PlayerHealth(); current <= 0 {
		finishRun(s.gs, s.store, s.logger)
	}

	s.em.RemoveMarkedEntities()
}

// State 当前局状态
func (s *ShooterScene) State() *game.GameState { return s.gs }

// EntityManager 供渲染层只读遍历实体
func (s *ShooterScene) EntityManager() *ecs.EntityManager { return s.em }

// Config 参数表
func (s *ShooterScene) Config() *config.ShooterConfig { return s.cfg }

// Skill 必杀技状态（倒计时、全屏特效）
func (s *ShooterScene) Skill() *systems.SkillSystem { return s.skillSystem }

// PlayerHealth 返回玩家当前血量和上限；没有玩家时返回 0, 0
func (s *ShooterScene) PlayerHealth() (int, int) {
	id, ok := ecs.First[*components.PlayerComponent](s.em)
	if !ok {
		return 0, 0
	}
	hp, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	if !ok {
		return 0, 0
	}
	return hp.CurrentHealth, hp.MaxHealth
}

// HealthPercent 血条百分比 [0, 100]
func (s *ShooterScene) HealthPercent() float64 {
	current, maxHP := s.PlayerHealth()
	if maxHP <= 0 {
		return 0
	}
	return float64(current) / float64(maxHP) * 100
}
