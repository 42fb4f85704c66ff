package app

import (
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Touch 一个触点；桌面端按住鼠标左键也视为一个触点
type Touch struct {
	X, Y        float64
	JustPressed bool
}

// RawInput 一帧内轮询到的原始输入
// 方向键、射击和必杀技是“按住”状态，其余是“刚按下”事件
type RawInput struct {
	Up, Down, Left, Right bool
	Fire                  bool

	SkillHeld    bool
	PausePressed bool
	StartPressed bool

	Touches []Touch
}

// Actions 由原始输入解析出的本帧操作
type Actions struct {
	Input game.InputState
	Start bool
	Pause bool
}

// MapInput 将原始输入映射为场景操作
//
// 规则：
//   - 可以开始（未开始/结束）时，任意新触点都表示开始
//   - 运行中，落在射击按钮上的触点按住即射击，落在必杀技按钮上的新触点释放必杀技
//   - 第一个不在按钮上的触点作为指针（移动玩家或引导小鱼）
//
// buttons 为 nil 时不做按钮判定（桌面端）。
func MapInput(raw RawInput, phase game.Phase, buttons *render.TouchControls, width, height float64) Actions {
	act := Actions{
		Input: game.InputState{
			Up:    raw.Up,
			Down:  raw.Down,
			Left:  raw.Left,
			Right: raw.Right,
			Fire:  raw.Fire,
			Skill: raw.SkillHeld,
		},
		Start: raw.StartPressed,
		Pause: raw.PausePressed,
	}
	canStart := phase == game.PhaseNotStarted || phase == game.PhaseGameOver

	for _, t := range raw.Touches {
		if canStart {
			if t.JustPressed {
				act.Start = true
			}
			continue
		}
		if buttons != nil {
			switch buttons.HitTest(width, height, t.X, t.Y) {
			case render.TouchFire:
				act.Input.Fire = true
				continue
			case render.TouchSkill:
				if t.JustPressed {
					act.Input.Skill = true
				}
				continue
			}
		}
		if !act.Input.PointerActive {
			act.Input.PointerActive = true
			act.Input.PointerX = t.X
			act.Input.PointerY = t.Y
		}
	}

	return act
}

// inputPoller 从 ebiten 轮询输入，复用切片避免每帧分配
type inputPoller struct {
	touchIDs   []ebiten.TouchID
	justIDs    []ebiten.TouchID
	touches    []Touch
	justLookup map[ebiten.TouchID]struct{}
}

func newInputPoller() *inputPoller {
	return &inputPoller{justLookup: make(map[ebiten.TouchID]struct{})}
}

// Poll 读取本帧的键盘、触摸和鼠标状态
// 优先使用触摸；没有触点时按住鼠标左键作为指针
func (p *inputPoller) Poll() RawInput {
	raw := RawInput{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),

		SkillHeld:    ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		PausePressed: inpututil.IsKeyJustPressed(ebiten.KeyP),
		StartPressed: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
	}

	p.touches = p.touches[:0]
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		p.justIDs = inpututil.AppendJustPressedTouchIDs(p.justIDs[:0])
		clear(p.justLookup)
		for _, id := range p.justIDs {
			p.justLookup[id] = struct{}{}
		}
		for _, id := range p.touchIDs {
			x, y := ebiten.TouchPosition(id)
			_, just := p.justLookup[id]
			p.touches = append(p.touches, Touch{X: float64(x), Y: float64(y), JustPressed: just})
		}
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.touches = append(p.touches, Touch{
			X:           float64(x),
			Y:           float64(y),
			JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		})
	}
	raw.Touches = p.touches
	return raw
}
