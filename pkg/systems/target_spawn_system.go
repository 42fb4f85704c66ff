package systems

import (
	"math/rand"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/entities"
	"github.com/decker502/arcade/pkg/game"
)

// TargetSpawnSystem 维护唯一的目标方块
// 方块被吃掉或新的一局开始时移动到新的随机位置（四边各留出一个方块的间距）
type TargetSpawnSystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	cfg *config.AvoidConfig
	rng *rand.Rand
}

// NewTargetSpawnSystem 创建目标方块系统
func NewTargetSpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.AvoidConfig, rng *rand.Rand) *TargetSpawnSystem {
	return &TargetSpawnSystem{em: em, gs: gs, cfg: cfg, rng: rng}
}

// Ensure 保证存在一个目标方块，返回其ID
func (s *TargetSpawnSystem) Ensure() ecs.EntityID {
	if id, ok := ecs.First[*components.TargetComponent](s.em); ok {
		return id
	}
	return entities.NewTargetBlock(s.em, s.cfg, s.rng, s.gs.Arena.Width, s.gs.Arena.Height)
}

// Relocate 把目标方块移到新的随机位置
func (s *TargetSpawnSystem) Relocate(id ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return
	}
	target, _ := ecs.GetComponent[*components.TargetComponent](s.em, id)
	size := s.cfg.Target.Size
	if target != nil {
		size = target.Size
	}
	pos.X, pos.Y = entities.RandomTargetPosition(s.rng, size, s.gs.Arena.Width, s.gs.Arena.Height)
}
