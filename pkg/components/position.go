package components

// PositionComponent 存储实体的锚点坐标（竞技场坐标系，像素）
// 射击模式的实体锚点是左上角；追逐者的锚点是中心，由 CollisionComponent 的偏移换算碰撞盒
type PositionComponent struct {
	X float64
	Y float64
}
