package systems

import (
	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/ecs"
)

// ParticleSystem 更新纯视觉粒子
// 每帧：位置加速度，透明度减 AlphaDecay，尺寸乘 SizeDecay；透明度 <= 0 时销毁。
// 粒子不参与任何玩法计算。
type ParticleSystem struct {
	em *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{em: em}
}

// Update 推进一帧
func (s *ParticleSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		pos.X += p.VelocityX
		pos.Y += p.VelocityY
		p.Alpha -= p.AlphaDecay
		p.Size *= p.SizeDecay

		if p.Alpha <= 0 {
			p.Alpha = 0
			s.em.DestroyEntity(id)
		}
	}
}
