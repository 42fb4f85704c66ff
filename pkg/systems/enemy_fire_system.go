package systems

import (
	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/entities"
	"github.com/decker502/arcade/pkg/game"
)

// EnemyFireSystem 精英敌机按各自的射击间隔向下开火
type EnemyFireSystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	cfg *config.ShooterConfig
}

// NewEnemyFireSystem 创建敌机射击系统
func NewEnemyFireSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.ShooterConfig) *EnemyFireSystem {
	return &EnemyFireSystem{em: em, gs: gs, cfg: cfg}
}

// Update 推进一帧，返回本帧发射的子弹数
func (s *EnemyFireSystem) Update() int {
	fired := 0
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](s.em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if !enemy.CanFire || s.gs.Now-enemy.LastFireAt < enemy.FireInterval {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)

		entities.NewEnemyBullet(s.em, s.cfg.EnemyBullet, pos.X, pos.Y, col.Width, col.Height)
		enemy.LastFireAt = s.gs.Now
		fired++
	}
	return fired
}
