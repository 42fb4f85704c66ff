package game

import (
	"fmt"
	"strings"
)

// Phase 一局游戏的生命周期阶段
//
// 状态流转：
//
//	NotStarted → Running ⇄ Paused
//	Running → GameOver → Running（重新开始）
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Mode 游戏模式
type Mode int

const (
	// ModeShooter 纵版射击
	ModeShooter Mode = iota
	// ModeAvoid 大头鱼躲方块（触屏）
	ModeAvoid
)

// String 模式名，同时用作最高分的存储键
func (m Mode) String() string {
	switch m {
	case ModeShooter:
		return "shooter"
	case ModeAvoid:
		return "avoid"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode 解析命令行传入的模式名（大小写不敏感）
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shooter", "shoot", "":
		return ModeShooter, nil
	case "avoid", "fish":
		return ModeAvoid, nil
	default:
		return 0, fmt.Errorf("unknown game mode %q (want shooter or avoid)", s)
	}
}
