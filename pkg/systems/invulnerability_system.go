package systems

import (
	"time"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/ecs"
)

// InvulnerabilitySystem 倒计时受伤后的无敌窗口
// 每帧固定减少一个名义帧时长（约 16ms），与实际帧间隔无关
type InvulnerabilitySystem struct {
	em    *ecs.EntityManager
	frame time.Duration
}

// NewInvulnerabilitySystem 创建无敌计时系统
func NewInvulnerabilitySystem(em *ecs.EntityManager, frame time.Duration) *InvulnerabilitySystem {
	return &InvulnerabilitySystem{em: em, frame: frame}
}

// Update 推进一帧
func (s *InvulnerabilitySystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.InvulnerabilityComponent](s.em) {
		inv, _ := ecs.GetComponent[*components.InvulnerabilityComponent](s.em, id)
		if !inv.Active {
			continue
		}
		inv.Remaining -= s.frame
		if inv.Remaining <= 0 {
			inv.Remaining = 0
			inv.Active = false
		}
	}
}

// isInvulnerable 实体当前是否处于无敌窗口
func isInvulnerable(em *ecs.EntityManager, id ecs.EntityID) bool {
	inv, ok := ecs.GetComponent[*components.InvulnerabilityComponent](em, id)
	return ok && inv.Active
}

// grantInvulnerability 开启（或重新开始）无敌窗口
func grantInvulnerability(em *ecs.EntityManager, id ecs.EntityID, d time.Duration) {
	inv, ok := ecs.GetComponent[*components.InvulnerabilityComponent](em, id)
	if !ok {
		inv = &components.InvulnerabilityComponent{}
		em.AddComponent(id, inv)
	}
	inv.Active = true
	inv.Remaining = d
}
