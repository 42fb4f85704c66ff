package main

import (
	"image/color"
	"math"
	"time"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/scenes"
	"github.com/decker502/arcade/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

const (
	// hudRows 顶部留给分数栏的行数
	hudRows = 1
	// blinkHalfPeriod 无敌闪烁半周期
	blinkHalfPeriod = 100 * time.Millisecond
)

var (
	styleHUD         = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	stylePanel       = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePlayer      = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x3e92cc))
	styleEnemy       = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xb2bec3))
	styleElite       = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xa29bfe))
	stylePlayerShot  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x3e92cc)).Bold(true)
	styleEnemyShot   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xff4757)).Bold(true)
	styleFish        = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x0288d1))
	styleBlock       = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xe64a19))
	styleSkillBanner = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xff6bff)).Bold(true)
)

// viewport 竞技场坐标与终端字符格之间的映射
// 竞技场铺满 hudRows 以下的全部字符格
type viewport struct {
	cols, rows     int
	arenaW, arenaH float64
}

func newViewport(screenW, screenH int, arena game.Arena) viewport {
	rows := screenH - hudRows
	if rows < 1 {
		rows = 1
	}
	if screenW < 1 {
		screenW = 1
	}
	return viewport{cols: screenW, rows: rows, arenaW: arena.Width, arenaH: arena.Height}
}

// toCell 竞技场坐标所在的字符格
func (v viewport) toCell(x, y float64) (int, int) {
	col := int(math.Floor(x / v.arenaW * float64(v.cols)))
	row := int(math.Floor(y/v.arenaH*float64(v.rows))) + hudRows
	return col, row
}

// toArena 字符格中心的竞技场坐标
func (v viewport) toArena(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) / float64(v.cols) * v.arenaW
	y := (float64(row-hudRows) + 0.5) / float64(v.rows) * v.arenaH
	return x, y
}

// fillRect 用字符填充矩形覆盖的字符格，至少填一格；超出竞技场的部分被裁掉
func (v viewport) fillRect(s tcell.Screen, r utils.Rect, ch rune, style tcell.Style) {
	c0, r0 := v.toCell(r.X, r.Y)
	c1, r1 := v.toCell(r.Right(), r.Bottom())
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	for row := r0; row < r1; row++ {
		if row < hudRows || row >= v.rows+hudRows {
			continue
		}
		for col := c0; col < c1; col++ {
			if col < 0 || col >= v.cols {
				continue
			}
			s.SetContent(col, row, ch, nil, style)
		}
	}
}

// drawText 从 (col, row) 开始写一行 ASCII 文字
func drawText(s tcell.Screen, col, row int, text string, style tcell.Style) {
	for i, ch := range text {
		s.SetContent(col+i, row, ch, nil, style)
	}
}

// drawCentered 在竞技场中央写多行文字
func drawCentered(s tcell.Screen, v viewport, lines []string, style tcell.Style) {
	top := hudRows + (v.rows-len(lines))/2
	for i, line := range lines {
		drawText(s, (v.cols-len(line))/2, top+i, line, style)
	}
}

func boxOf(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return utils.Rect{X: pos.X + col.OffsetX, Y: pos.Y + col.OffsetY, Width: col.Width, Height: col.Height}, true
}

func particleStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// drawHUD 顶部分数栏和状态面板
func drawHUD(s tcell.Screen, v viewport, hud game.HUD) {
	for col := 0; col < v.cols; col++ {
		s.SetContent(col, 0, ' ', nil, styleHUD)
	}
	line := hud.Score + "  " + hud.Best
	if hud.HealthPercent >= 0 {
		line += "  HP " + percentBar(hud.HealthPercent, 10)
	}
	if hud.Skill != "" {
		line += "  " + hud.Skill
	}
	drawText(s, 0, 0, line, styleHUD)

	if hud.Panel != game.PanelNone {
		drawCentered(s, v, hud.PanelLines, stylePanel)
	}
}

// percentBar 固定宽度的文本血条
func percentBar(percent float64, width int) string {
	filled := int(math.Round(utils.Clamp(percent, 0, 100) / 100 * float64(width)))
	bar := make([]byte, 0, width+2)
	bar = append(bar, '[')
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '#')
		} else {
			bar = append(bar, '-')
		}
	}
	return string(append(bar, ']'))
}

// drawShooter 绘制射击模式
func drawShooter(s tcell.Screen, v viewport, sc *scenes.ShooterScene) {
	em := sc.EntityManager()
	gs := sc.State()

	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok || p.Alpha < 0.3 {
			continue
		}
		col, row := v.toCell(pos.X, pos.Y)
		if col >= 0 && col < v.cols && row >= hudRows && row < v.rows+hudRows {
			s.SetContent(col, row, '*', nil, particleStyle(p.Color))
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		box, ok := boxOf(em, id)
		if !ok {
			continue
		}
		if enemy.Variant == components.EnemyElite {
			v.fillRect(s, box, 'W', styleElite)
		} else {
			v.fillRect(s, box, 'V', styleEnemy)
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.BulletComponent](em) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)
		box, ok := boxOf(em, id)
		if !ok {
			continue
		}
		if bullet.Owner == components.OwnerPlayer {
			v.fillRect(s, box, '|', stylePlayerShot)
		} else {
			v.fillRect(s, box, '!', styleEnemyShot)
		}
	}

	if id, ok := ecs.First[*components.PlayerComponent](em); ok {
		inv, _ := ecs.GetComponent[*components.InvulnerabilityComponent](em, id)
		blinking := inv != nil && inv.Active && (gs.Now/blinkHalfPeriod)%2 == 0
		if box, ok := boxOf(em, id); ok && !blinking {
			v.fillRect(s, box, 'A', stylePlayer)
		}
	}

	if sc.Skill().OverlayActive() {
		drawCentered(s, v, []string{"* SKILL *"}, styleSkillBanner)
	}

	drawHUD(s, v, game.BuildHUD(gs, sc.HealthPercent(), sc.Skill().CountdownSeconds()))
}

// drawAvoid 绘制躲避模式；鱼头用箭头表示朝向
func drawAvoid(s tcell.Screen, v viewport, sc *scenes.AvoidScene) {
	em := sc.EntityManager()

	for _, id := range ecs.GetEntitiesWith1[*components.TargetComponent](em) {
		if box, ok := boxOf(em, id); ok {
			v.fillRect(s, box, '#', styleBlock)
		}
	}

	if id, ok := ecs.First[*components.ChaserComponent](em); ok {
		chaser, _ := ecs.GetComponent[*components.ChaserComponent](em, id)
		if box, ok := boxOf(em, id); ok {
			v.fillRect(s, box, '~', styleFish)
			col, row := v.toCell(box.CenterX(), box.CenterY())
			if col >= 0 && col < v.cols && row >= hudRows && row < v.rows+hudRows {
				s.SetContent(col, row, facingArrow(chaser.Facing), nil, styleFish.Bold(true))
			}
		}
	}

	drawHUD(s, v, game.BuildHUD(sc.State(), -1, -1))
}

// facingArrow 把朝向角（弧度，屏幕坐标 y 向下）量化为四个方向之一
func facingArrow(angle float64) rune {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	switch {
	case a < math.Pi/4 || a >= 7*math.Pi/4:
		return '>'
	case a < 3*math.Pi/4:
		return 'v'
	case a < 5*math.Pi/4:
		return '<'
	default:
		return '^'
	}
}

// draw 绘制当前场景
func draw(s tcell.Screen, scene game.Scene) {
	s.Clear()
	w, h := s.Size()
	v := newViewport(w, h, scene.State().Arena)

	switch sc := scene.(type) {
	case *scenes.ShooterScene:
		drawShooter(s, v, sc)
	case *scenes.AvoidScene:
		drawAvoid(s, v, sc)
	}
	s.Show()
}
