package systems

import (
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/game"
	"go.uber.org/zap"
)

// DifficultySystem 难度递增
//
// 累加器每帧增加一个名义帧时长，满一个难度窗口（默认 10 秒）时
// 把生成间隔缩短一个步长（不低于下限）并把累加器归零。难度是阶梯式上升的。
type DifficultySystem struct {
	gs     *game.GameState
	cfg    *config.ShooterConfig
	logger *zap.Logger
}

// NewDifficultySystem 创建难度系统
func NewDifficultySystem(gs *game.GameState, cfg *config.ShooterConfig, logger *zap.Logger) *DifficultySystem {
	return &DifficultySystem{gs: gs, cfg: cfg, logger: logger}
}

// Update 推进一帧，返回本帧是否提升了难度
func (s *DifficultySystem) Update() bool {
	spawn := &s.gs.Spawn
	spawn.Elapsed += s.cfg.NominalFrame
	if spawn.Elapsed < s.cfg.Spawn.DifficultyWindow {
		return false
	}

	spawn.Elapsed = 0
	next := spawn.Interval - s.cfg.Spawn.Step
	if next < s.cfg.Spawn.MinInterval {
		next = s.cfg.Spawn.MinInterval
	}
	if next != spawn.Interval {
		s.logger.Debug("difficulty increased",
			zap.Duration("from", spawn.Interval),
			zap.Duration("to", next))
	}
	spawn.Interval = next
	return true
}
