package systems

import (
	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/ecs"
)

// MotionSystem 匀速直线运动：敌机和子弹每帧按自身速度平移
type MotionSystem struct {
	em *ecs.EntityManager
}

// NewMotionSystem 创建运动系统
func NewMotionSystem(em *ecs.EntityManager) *MotionSystem {
	return &MotionSystem{em: em}
}

// Update 推进一帧
func (s *MotionSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		pos.X += vel.VX
		pos.Y += vel.VY
	}
}
