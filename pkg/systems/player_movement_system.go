package systems

import (
	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/utils"
)

// PlayerMovementSystem 根据输入移动玩家战机
//
// 两种输入方式互斥：指针按下时战机中心直接跟随指针，
// 否则按方向键每帧移动 speed 像素。同一帧两者都有时指针优先。
// 战机始终被限制在竞技场内。
type PlayerMovementSystem struct {
	em *ecs.EntityManager
	gs *game.GameState
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, gs *game.GameState) *PlayerMovementSystem {
	return &PlayerMovementSystem{em: em, gs: gs}
}

// Update 应用本帧输入
func (s *PlayerMovementSystem) Update(in game.InputState) {
	id, ok := findPlayer(s.em)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	if pos == nil || col == nil || player == nil {
		return
	}

	if in.PointerActive {
		pos.X = in.PointerX - col.Width/2
		pos.Y = in.PointerY - col.Height/2
	} else {
		if in.Up {
			pos.Y -= player.Speed
		}
		if in.Down {
			pos.Y += player.Speed
		}
		if in.Left {
			pos.X -= player.Speed
		}
		if in.Right {
			pos.X += player.Speed
		}
	}

	pos.X = utils.Clamp(pos.X, 0, s.gs.Arena.Width-col.Width)
	pos.Y = utils.Clamp(pos.Y, 0, s.gs.Arena.Height-col.Height)
}
