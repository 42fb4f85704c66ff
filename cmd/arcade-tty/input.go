package main

import (
	"time"

	"github.com/decker502/arcade/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// holdWindow 终端只有按下（和自动重复）事件，没有抬起事件；
// 最后一次按键后这段时间内视为仍按住
const holdWindow = 200 * time.Millisecond

// command 按键对应的操作
type command int

const (
	cmdNone command = iota
	cmdUp
	cmdDown
	cmdLeft
	cmdRight
	cmdFire
	cmdSkill
	cmdPause
	cmdStart
	cmdQuit
)

// keyCommand 把按键映射为操作
//
//	WASD / 方向键  移动
//	空格           射击
//	E / Tab        必杀技（终端无法单独识别 Shift）
//	P              暂停
//	Enter          开始 / 重开
//	Q / Esc / ^C   退出
func keyCommand(key tcell.Key, ch rune) command {
	switch key {
	case tcell.KeyUp:
		return cmdUp
	case tcell.KeyDown:
		return cmdDown
	case tcell.KeyLeft:
		return cmdLeft
	case tcell.KeyRight:
		return cmdRight
	case tcell.KeyTab:
		return cmdSkill
	case tcell.KeyEnter:
		return cmdStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W':
			return cmdUp
		case 's', 'S':
			return cmdDown
		case 'a', 'A':
			return cmdLeft
		case 'd', 'D':
			return cmdRight
		case ' ':
			return cmdFire
		case 'e', 'E':
			return cmdSkill
		case 'p', 'P':
			return cmdPause
		case 'q', 'Q':
			return cmdQuit
		}
	}
	return cmdNone
}

// controls 累积两帧之间的输入事件
type controls struct {
	lastPress map[command]time.Time

	// 边沿事件，读取后清零
	skill, pause, start bool

	pointerActive      bool
	pointerX, pointerY float64
}

func newControls() *controls {
	return &controls{lastPress: make(map[command]time.Time)}
}

// press 记录一次按键
func (c *controls) press(cmd command, now time.Time) {
	switch cmd {
	case cmdUp, cmdDown, cmdLeft, cmdRight, cmdFire:
		c.lastPress[cmd] = now
	case cmdSkill:
		c.skill = true
	case cmdPause:
		c.pause = true
	case cmdStart:
		c.start = true
	}
}

// pointer 更新鼠标指针；released 表示左键已松开
func (c *controls) pointer(x, y float64, released bool) {
	if released {
		c.pointerActive = false
		return
	}
	c.pointerActive = true
	c.pointerX, c.pointerY = x, y
}

func (c *controls) held(cmd command, now time.Time) bool {
	at, ok := c.lastPress[cmd]
	return ok && now.Sub(at) < holdWindow
}

// frame 生成本帧输入快照并清空边沿事件
// 返回快照和是否请求了开始、暂停
func (c *controls) frame(now time.Time) (in game.InputState, start, pause bool) {
	in = game.InputState{
		Up:            c.held(cmdUp, now),
		Down:          c.held(cmdDown, now),
		Left:          c.held(cmdLeft, now),
		Right:         c.held(cmdRight, now),
		Fire:          c.held(cmdFire, now),
		Skill:         c.skill,
		PointerActive: c.pointerActive,
		PointerX:      c.pointerX,
		PointerY:      c.pointerY,
	}
	start, pause = c.start, c.pause
	c.skill, c.pause, c.start = false, false, false
	return in, start, pause
}
