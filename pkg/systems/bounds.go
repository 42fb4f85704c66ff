package systems

import (
	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/utils"
)

// boundsOf 返回实体的碰撞矩形（世界坐标）
// 实体缺少位置或碰撞组件时返回 false
func boundsOf(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return rectOf(pos, col), true
}

func rectOf(pos *components.PositionComponent, col *components.CollisionComponent) utils.Rect {
	return utils.Rect{
		X:      pos.X + col.OffsetX,
		Y:      pos.Y + col.OffsetY,
		Width:  col.Width,
		Height: col.Height,
	}
}

// findPlayer 返回玩家战机实体
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	return ecs.First[*components.PlayerComponent](em)
}
