package entities

import (
	"math/rand"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
)

// NewChaser 创建大头鱼实体，位于竞技场中心，朝向 0
// 位置锚点是鱼头中心，碰撞盒向左上偏移半个尺寸
func NewChaser(em *ecs.EntityManager, cfg *config.AvoidConfig, arenaWidth, arenaHeight float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: arenaWidth / 2, Y: arenaHeight / 2})
	em.AddComponent(id, &components.CollisionComponent{
		Width:   cfg.Chaser.Width,
		Height:  cfg.Chaser.Height,
		OffsetX: -cfg.Chaser.Width / 2,
		OffsetY: -cfg.Chaser.Height / 2,
	})
	em.AddComponent(id, &components.ChaserComponent{Speed: cfg.Chaser.Speed})
	return id
}

// NewTargetBlock 在随机位置创建目标方块
func NewTargetBlock(em *ecs.EntityManager, cfg *config.AvoidConfig, rng *rand.Rand, arenaWidth, arenaHeight float64) ecs.EntityID {
	id := em.CreateEntity()
	x, y := RandomTargetPosition(rng, cfg.Target.Size, arenaWidth, arenaHeight)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Width: cfg.Target.Size, Height: cfg.Target.Size})
	em.AddComponent(id, &components.TargetComponent{Size: cfg.Target.Size, Reward: cfg.Target.Reward})
	return id
}

// RandomTargetPosition 返回方块左上角的随机位置
// x ∈ [size, width-size)，y 同理，方块不会贴着左上边出现
func RandomTargetPosition(rng *rand.Rand, size, arenaWidth, arenaHeight float64) (float64, float64) {
	x := rng.Float64()*(arenaWidth-size*2) + size
	y := rng.Float64()*(arenaHeight-size*2) + size
	return x, y
}
