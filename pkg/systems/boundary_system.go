package systems

import (
	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/game"
	"go.uber.org/zap"
)

// BoundarySystem 移除离开竞技场的子弹和敌机
//
// 玩家子弹完全飞出顶边（y < -height）时移除，敌方子弹和敌机越过底边（y > 竞技场高度）时移除。
// 从底部逃脱的敌机不计分，并扣除玩家固定血量。
type BoundarySystem struct {
	em     *ecs.EntityManager
	gs     *game.GameState
	cfg    *config.ShooterConfig
	logger *zap.Logger
}

// NewBoundarySystem 创建边界系统
func NewBoundarySystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.ShooterConfig, logger *zap.Logger) *BoundarySystem {
	return &BoundarySystem{em: em, gs: gs, cfg: cfg, logger: logger}
}

// Update 检查所有子弹和敌机，返回本帧逃脱的敌机数
func (s *BoundarySystem) Update() int {
	for _, id := range ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](s.em) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if !ok {
			continue
		}

		switch bullet.Owner {
		case components.OwnerPlayer:
			if pos.Y < -col.Height {
				s.em.DestroyEntity(id)
			}
		case components.OwnerEnemy:
			if pos.Y > s.gs.Arena.Height {
				s.em.DestroyEntity(id)
			}
		}
	}

	escaped := 0
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if pos.Y <= s.gs.Arena.Height {
			continue
		}
		s.em.DestroyEntity(id)
		escaped++
	}

	if escaped > 0 {
		if playerID, ok := findPlayer(s.em); ok {
			applyDamage(s.em, playerID, escaped*s.cfg.EscapePenalty)
		}
		s.logger.Debug("enemies escaped", zap.Int("count", escaped))
	}
	return escaped
}
