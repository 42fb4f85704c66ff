package systems

import (
	"math/rand"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/entities"
	"github.com/decker502/arcade/pkg/game"
)

// WeaponSystem 玩家射击
// 按住射击键连发，两发之间至少间隔 FireInterval
type WeaponSystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	cfg *config.ShooterConfig
	rng *rand.Rand
}

// NewWeaponSystem 创建玩家射击系统
func NewWeaponSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.ShooterConfig, rng *rand.Rand) *WeaponSystem {
	return &WeaponSystem{em: em, gs: gs, cfg: cfg, rng: rng}
}

// Update 射击键按住且冷却结束时发射一颗子弹
func (s *WeaponSystem) Update(in game.InputState) {
	if !in.Fire {
		return
	}
	s.TryFire()
}

// TryFire 尝试发射，返回是否真正发射
func (s *WeaponSystem) TryFire() bool {
	id, ok := findPlayer(s.em)
	if !ok {
		return false
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	if player == nil || pos == nil || col == nil {
		return false
	}

	if s.gs.Now-player.LastFireAt < player.FireInterval {
		return false
	}

	entities.NewPlayerBullet(s.em, s.cfg.PlayerBullet, pos.X, pos.Y, col.Width)
	entities.NewMuzzleFlash(s.em, s.cfg.Effects, s.rng, pos.X+col.Width/2, pos.Y)
	player.LastFireAt = s.gs.Now
	return true
}
