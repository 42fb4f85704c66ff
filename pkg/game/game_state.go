package game

import "time"

// Arena 竞技场尺寸（像素），所有实体坐标都被限制在其中
type Arena struct {
	Width  float64
	Height float64
}

// SpawnState 敌机生成节奏
type SpawnState struct {
	// Interval 当前生成间隔，随难度递减，不低于下限
	Interval time.Duration
	// LastSpawnAt 上一次生成敌机的帧时间戳
	LastSpawnAt time.Duration
	// Elapsed 难度累加器，每帧加一个名义帧时长，满一个难度窗口后归零
	Elapsed time.Duration
}

// SkillState 必杀技冷却
type SkillState struct {
	LastUsedAt   time.Duration
	OverlayUntil time.Duration // 全屏特效结束的帧时间戳
}

// GameState 一局游戏的全部可变状态（不含实体）
// 每个场景独占一个实例，所有系统通过参数显式获得它。
type GameState struct {
	Mode  Mode
	Phase Phase

	Score     int
	BestScore int

	// RunID 每次重置时生成，附加在生命周期日志上
	RunID string

	// Now 单调递增的帧时间戳，所有冷却都与它比较
	Now   time.Duration
	Frame uint64

	Arena Arena
	Spawn SpawnState
	Skill SkillState
}

// NewGameState 创建处于 NotStarted 阶段的状态
func NewGameState(mode Mode, width, height float64) *GameState {
	return &GameState{
		Mode:  mode,
		Phase: PhaseNotStarted,
		Arena: Arena{Width: width, Height: height},
	}
}

// Reset 开始新的一局：分数与时钟归零
// 最高分和竞技场尺寸保留
func (gs *GameState) Reset(runID string) {
	gs.Score = 0
	gs.RunID = runID
	gs.Now = 0
	gs.Frame = 0
	gs.Spawn = SpawnState{}
	gs.Skill = SkillState{}
}

// Advance 推进一帧
func (gs *GameState) Advance(dt time.Duration) {
	gs.Now += dt
	gs.Frame++
}

// AddScore 增加分数
func (gs *GameState) AddScore(points int) {
	gs.Score += points
}

// IsRunning 是否处于运行阶段
func (gs *GameState) IsRunning() bool {
	return gs.Phase == PhaseRunning
}

// CanStart NotStarted 或 GameOver 阶段可以开始（或重新开始）
func (gs *GameState) CanStart() bool {
	return gs.Phase == PhaseNotStarted || gs.Phase == PhaseGameOver
}

// TogglePause 在 Running 与 Paused 之间切换，其他阶段不响应
// 返回是否发生了切换
func (gs *GameState) TogglePause() bool {
	switch gs.Phase {
	case PhaseRunning:
		gs.Phase = PhasePaused
		return true
	case PhasePaused:
		gs.Phase = PhaseRunning
		return true
	default:
		return false
	}
}

// RecordBest 结算：本局分数超过最高分时更新，返回是否刷新了记录
func (gs *GameState) RecordBest() bool {
	if gs.Score > gs.BestScore {
		gs.BestScore = gs.Score
		return true
	}
	return false
}
