package game

import "fmt"

// Panel 当前应显示的提示面板
type Panel int

const (
	PanelNone Panel = iota
	PanelStart
	PanelPaused
	PanelGameOver
)

// PanelFor 根据生命周期阶段选择面板
func PanelFor(phase Phase) Panel {
	switch phase {
	case PhaseNotStarted:
		return PanelStart
	case PhasePaused:
		return PanelPaused
	case PhaseGameOver:
		return PanelGameOver
	default:
		return PanelNone
	}
}

// HUD 界面文字，每帧从状态只读推导，图形界面和终端界面共用
type HUD struct {
	Score         string
	Best          string
	HealthPercent float64 // 0 ~ 100，躲避模式没有血条时为 -1
	Skill         string
	Panel         Panel
	PanelLines    []string
}

// SkillLabel 必杀技按钮文字（调试字体只支持 ASCII）
func SkillLabel(countdownSeconds int) string {
	if countdownSeconds <= 0 {
		return "SKILL READY [SHIFT]"
	}
	return fmt.Sprintf("SKILL %ds", countdownSeconds)
}

// BuildHUD 生成界面文字
//
// 参数:
//   - gs: 当前局状态
//   - healthPercent: 血条百分比，负数表示不显示
//   - skillCountdown: 必杀技倒计时秒数，负数表示不显示
func BuildHUD(gs *GameState, healthPercent float64, skillCountdown int) HUD {
	hud := HUD{
		Score:         fmt.Sprintf("SCORE %d", gs.Score),
		Best:          fmt.Sprintf("BEST %d", gs.BestScore),
		HealthPercent: healthPercent,
		Panel:         PanelFor(gs.Phase),
	}
	if skillCountdown >= 0 {
		hud.Skill = SkillLabel(skillCountdown)
	}

	switch hud.Panel {
	case PanelStart:
		hud.PanelLines = []string{"PRESS ENTER OR TAP TO START"}
	case PanelPaused:
		hud.PanelLines = []string{"PAUSED", "PRESS P TO RESUME"}
	case PanelGameOver:
		hud.PanelLines = []string{
			"GAME OVER",
			fmt.Sprintf("FINAL SCORE %d", gs.Score),
			fmt.Sprintf("BEST %d", gs.BestScore),
			"PRESS ENTER OR TAP TO RESTART",
		}
	}
	return hud
}
