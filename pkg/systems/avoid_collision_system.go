package systems

import (
	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/game"
	"go.uber.org/zap"
)

// AvoidCollisionSystem 躲避模式的碰撞检测
//   - 鱼头碰到方块：加分并把方块移走
//   - 鱼头碰到竞技场任一边（含刚好贴边）：本局结束
type AvoidCollisionSystem struct {
	em      *ecs.EntityManager
	gs      *game.GameState
	targets *TargetSpawnSystem
	logger  *zap.Logger
}

// NewAvoidCollisionSystem 创建躲避碰撞系统
func NewAvoidCollisionSystem(em *ecs.EntityManager, gs *game.GameState, targets *TargetSpawnSystem, logger *zap.Logger) *AvoidCollisionSystem {
	return &AvoidCollisionSystem{em: em, gs: gs, targets: targets, logger: logger}
}

// Update 执行碰撞检测；返回 true 表示鱼头触边，本局应结束
func (s *AvoidCollisionSystem) Update() bool {
	chaserID, ok := ecs.First[*components.ChaserComponent](s.em)
	if !ok {
		return false
	}
	chaserBox, ok := boundsOf(s.em, chaserID)
	if !ok {
		return false
	}

	for _, targetID := range ecs.GetEntitiesWith1[*components.TargetComponent](s.em) {
		targetBox, ok := boundsOf(s.em, targetID)
		if !ok || !chaserBox.Overlaps(targetBox) {
			continue
		}
		target, _ := ecs.GetComponent[*components.TargetComponent](s.em, targetID)
		s.gs.AddScore(target.Reward)
		s.targets.Relocate(targetID)
		s.logger.Debug("target reached", zap.Int("score", s.gs.Score))
	}

	return chaserBox.X <= 0 ||
		chaserBox.Y <= 0 ||
		chaserBox.Right() >= s.gs.Arena.Width ||
		chaserBox.Bottom() >= s.gs.Arena.Height
}
