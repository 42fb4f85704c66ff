package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/entities"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/utils"
	"go.uber.org/zap"
)

// SkillSystem 必杀技：清屏
//
// 冷却结束（now - lastUsed >= cooldown）时可用。释放后所有存活敌机被摧毁，
// 每架照常计分并产生一次爆炸，同时全屏粒子特效持续 SkillOverlay。
type SkillSystem struct {
	em     *ecs.EntityManager
	gs     *game.GameState
	cfg    *config.ShooterConfig
	rng    *rand.Rand
	logger *zap.Logger
}

// SkillResult 一次释放的结算
type SkillResult struct {
	Destroyed int
	Awarded   int
}

// NewSkillSystem 创建必杀技系统
func NewSkillSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.ShooterConfig, rng *rand.Rand, logger *zap.Logger) *SkillSystem {
	return &SkillSystem{em: em, gs: gs, cfg: cfg, rng: rng, logger: logger}
}

// Reset 新的一局开局即可释放
func (s *SkillSystem) Reset() {
	s.gs.Skill.LastUsedAt = s.gs.Now - s.cfg.SkillCooldown
	s.gs.Skill.OverlayUntil = 0
}

// Update 必杀技键按住且可用时释放
func (s *SkillSystem) Update(in game.InputState) {
	if in.Skill {
		s.Use()
	}
}

// Ready 冷却是否结束
func (s *SkillSystem) Ready() bool {
	return s.gs.Now-s.gs.Skill.LastUsedAt >= s.cfg.SkillCooldown
}

// Remaining 剩余冷却时间，可用时为 0
func (s *SkillSystem) Remaining() time.Duration {
	left := s.cfg.SkillCooldown - (s.gs.Now - s.gs.Skill.LastUsedAt)
	if left < 0 {
		return 0
	}
	return left
}

// CountdownSeconds 界面显示用的倒计时秒数（向上取整）
func (s *SkillSystem) CountdownSeconds() int {
	return int(math.Ceil(s.Remaining().Seconds()))
}

// OverlayActive 全屏特效是否仍在显示
func (s *SkillSystem) OverlayActive() bool {
	return s.gs.Now < s.gs.Skill.OverlayUntil
}

// OverlayFade 全屏特效剩余比例，刚释放时为 1，结束后为 0
func (s *SkillSystem) OverlayFade() float64 {
	if s.cfg.SkillOverlay <= 0 || !s.OverlayActive() {
		return 0
	}
	left := s.gs.Skill.OverlayUntil - s.gs.Now
	return utils.Clamp(float64(left)/float64(s.cfg.SkillOverlay), 0, 1)
}

// Use 释放必杀技；冷却中返回 false
func (s *SkillSystem) Use() (SkillResult, bool) {
	if !s.Ready() {
		return SkillResult{}, false
	}

	var result SkillResult
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if box, ok := boundsOf(s.em, id); ok {
			entities.NewExplosion(s.em, s.cfg.Effects, s.rng, box.CenterX(), box.CenterY())
		}
		result.Awarded += enemy.ScoreValue
		result.Destroyed++
		s.em.DestroyEntity(id)
	}
	s.gs.AddScore(result.Awarded)

	entities.NewScreenBurst(s.em, s.cfg.Effects, s.rng, s.gs.Arena.Width, s.gs.Arena.Height)
	s.gs.Skill.LastUsedAt = s.gs.Now
	s.gs.Skill.OverlayUntil = s.gs.Now + s.cfg.SkillOverlay

	s.logger.Info("skill used",
		zap.String("run", s.gs.RunID),
		zap.Int("destroyed", result.Destroyed),
		zap.Int("awarded", result.Awarded))
	return result, true
}
