package systems

import (
	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/utils"
)

// ChaserSteeringSystem 大头鱼朝指针移动
//
// 指针按下时沿单位方向每帧移动 speed 像素；剩余距离不超过 speed 时直接吸附到指针，
// 避免在指针附近来回抖动。移动后把鱼头中心限制在竞技场内，
// 并重新计算朝向：始终背对目标方块。
type ChaserSteeringSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewChaserSteeringSystem 创建追逐转向系统
func NewChaserSteeringSystem(em *ecs.EntityManager, gs *game.GameState) *ChaserSteeringSystem {
	return &ChaserSteeringSystem{em: em, gs: gs}
}

// Update 应用本帧输入
func (s *ChaserSteeringSystem) Update(in game.InputState) {
	id, ok := ecs.First[*components.ChaserComponent](s.em)
	if !ok {
		return
	}
	chaser, _ := ecs.GetComponent[*components.ChaserComponent](s.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	if pos == nil || col == nil {
		return
	}

	if in.PointerActive {
		dx, dy, dist := utils.Direction(pos.X, pos.Y, in.PointerX, in.PointerY)
		if dist > chaser.Speed {
			pos.X += dx * chaser.Speed
			pos.Y += dy * chaser.Speed
		} else {
			pos.X = in.PointerX
			pos.Y = in.PointerY
		}
	}

	halfW, halfH := col.Width/2, col.Height/2
	pos.X = utils.Clamp(pos.X, halfW, s.gs.Arena.Width-halfW)
	pos.Y = utils.Clamp(pos.Y, halfH, s.gs.Arena.Height-halfH)

	if targetID, ok := ecs.First[*components.TargetComponent](s.em); ok {
		if box, ok := boundsOf(s.em, targetID); ok {
			chaser.Facing = utils.FacingAway(pos.X, pos.Y, box.CenterX(), box.CenterY())
		}
	}
}
