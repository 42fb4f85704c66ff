package entities

import (
	"time"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
)

// NewEnemy 创建敌机实体
// 敌机从竞技场顶部上方（y = -height）出现，以恒定速度向下飞行
//
// 参数:
//   - em: 实体管理器
//   - cfg: 射击模式参数表（提供变体属性表）
//   - variant: 敌机类型
//   - x: 左上角 X 坐标
//   - now: 当前帧时间戳，精英敌机的射击冷却从此刻开始计算
func NewEnemy(em *ecs.EntityManager, cfg *config.ShooterConfig, variant components.EnemyVariant, x float64, now time.Duration) ecs.EntityID {
	stats := cfg.Variant(variant == components.EnemyElite)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: -stats.Height})
	em.AddComponent(id, &components.CollisionComponent{Width: stats.Width, Height: stats.Height})
	em.AddComponent(id, &components.VelocityComponent{VY: stats.Speed})
	em.AddComponent(id, &components.HealthComponent{CurrentHealth: stats.Health, MaxHealth: stats.Health})
	em.AddComponent(id, &components.EnemyComponent{
		Variant:      variant,
		ScoreValue:   stats.Score,
		CanFire:      stats.CanFire,
		FireInterval: stats.FireInterval,
		LastFireAt:   now,
	})

	return id
}
