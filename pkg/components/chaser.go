package components

// ChaserComponent 躲避模式中的"大头鱼"
// 位置锚点为鱼头中心，Facing 每帧重新计算为背向目标方块的角度（弧度）
type ChaserComponent struct {
	Speed  float64
	Facing float64
}

// TargetComponent 躲避模式中的目标方块（位置锚点为左上角）
type TargetComponent struct {
	Size   float64
	Reward int
}
