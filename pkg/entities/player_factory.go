package entities

import (
	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
)

// PlayerDefaultPosition 返回玩家战机的默认位置：水平居中，距底边 BottomMargin
func PlayerDefaultPosition(cfg *config.ShooterConfig, arenaWidth, arenaHeight float64) (float64, float64) {
	x := arenaWidth/2 - cfg.Player.Width/2
	y := arenaHeight - cfg.Player.Height - cfg.Player.BottomMargin
	return x, y
}

// NewPlayer 创建玩家战机实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 射击模式参数表
//   - arenaWidth, arenaHeight: 当前竞技场尺寸
//   - health: 初始血量（开局时为 MaxHealth）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
func NewPlayer(em *ecs.EntityManager, cfg *config.ShooterConfig, arenaWidth, arenaHeight float64, health int) ecs.EntityID {
	id := em.CreateEntity()
	x, y := PlayerDefaultPosition(cfg, arenaWidth, arenaHeight)

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: health,
		MaxHealth:     cfg.Player.MaxHealth,
	})
	em.AddComponent(id, &components.PlayerComponent{
		Speed:        cfg.Player.Speed,
		FireInterval: cfg.Player.FireInterval,
		// 开局第一帧即可射击
		LastFireAt: -cfg.Player.FireInterval,
	})
	em.AddComponent(id, &components.InvulnerabilityComponent{})

	return id
}
