package game

// InputState 每帧采样一次的输入快照
//
// 上层（ebiten 或终端前端）负责把按键/触摸事件折叠成这个结构，
// 模拟逻辑只读取快照，不关心事件是如何送达的。
// 指针坐标已转换到竞技场坐标系。
type InputState struct {
	Up, Down, Left, Right bool

	// Fire 射击键按住（按住连发，受射击间隔限制）
	Fire bool
	// Skill 必杀技键按住
	Skill bool

	// PointerActive 触摸/鼠标按下期间为 true，抬起或取消时清除
	PointerActive bool
	PointerX      float64
	PointerY      float64
}

// HasDirection 是否按住了任一方向键
func (in InputState) HasDirection() bool {
	return in.Up || in.Down || in.Left || in.Right
}
