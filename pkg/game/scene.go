package game

import "time"

// Scene 一个可运行的游戏模式
//
// 场景只负责模拟，不负责绘制：渲染层在每帧 Update 之后只读地访问场景状态。
type Scene interface {
	// Update 推进一帧；dt 为本帧时长，in 为本帧输入快照
	Update(dt time.Duration, in InputState)

	// State 返回场景当前状态（只读使用）
	State() *GameState

	// Start 从 NotStarted 或 GameOver 开始新的一局
	Start()
	// TogglePause 暂停/继续
	TogglePause()
	// Resize 视口尺寸变化
	Resize(width, height float64)
}

// SkillUser 支持必杀技的场景
type SkillUser interface {
	UseSkill() bool
}
