package systems

import (
	"math/rand"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/entities"
	"github.com/decker502/arcade/pkg/game"
	"go.uber.org/zap"
)

// EnemySpawnSystem 按当前生成间隔生成敌机
//
// 距上次生成满一个间隔（>=）时生成一架：以 EliteProbability 的概率为精英，
// X 坐标在 [0, 竞技场宽 - 敌机宽) 内均匀随机，从顶边上方出现。
type EnemySpawnSystem struct {
	em     *ecs.EntityManager
	gs     *game.GameState
	cfg    *config.ShooterConfig
	rng    *rand.Rand
	logger *zap.Logger
}

// NewEnemySpawnSystem 创建敌机生成系统
func NewEnemySpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.ShooterConfig, rng *rand.Rand, logger *zap.Logger) *EnemySpawnSystem {
	return &EnemySpawnSystem{em: em, gs: gs, cfg: cfg, rng: rng, logger: logger}
}

// Reset 新的一局：恢复初始生成间隔，第一架敌机在一个间隔后出现
func (s *EnemySpawnSystem) Reset() {
	s.gs.Spawn.Interval = s.cfg.Spawn.InitialInterval
	s.gs.Spawn.LastSpawnAt = s.gs.Now
	s.gs.Spawn.Elapsed = 0
}

// Update 检查是否到了生成时间
func (s *EnemySpawnSystem) Update() {
	if s.gs.Now-s.gs.Spawn.LastSpawnAt < s.gs.Spawn.Interval {
		return
	}
	s.Spawn()
	s.gs.Spawn.LastSpawnAt = s.gs.Now
}

// Spawn 立即生成一架随机敌机
func (s *EnemySpawnSystem) Spawn() ecs.EntityID {
	variant := components.EnemyNormal
	if s.rng.Float64() < s.cfg.Spawn.EliteProbability {
		variant = components.EnemyElite
	}

	width := s.cfg.Variant(variant == components.EnemyElite).Width
	span := s.gs.Arena.Width - width
	if span < 0 {
		span = 0
	}
	x := s.rng.Float64() * span

	id := entities.NewEnemy(s.em, s.cfg, variant, x, s.gs.Now)
	s.logger.Debug("enemy spawned",
		zap.Stringer("variant", variant),
		zap.Float64("x", x),
		zap.Duration("interval", s.gs.Spawn.Interval))
	return id
}
