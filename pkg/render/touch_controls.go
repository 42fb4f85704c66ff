package render

import (
	"image/color"

	"github.com/decker502/arcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 触屏按钮尺寸
const (
	touchButtonSize   = 72
	touchButtonMargin = 16
)

var (
	colorFireButton  = color.RGBA{R: 0xff, G: 0x47, B: 0x57, A: 0x80}
	colorSkillButton = color.RGBA{R: 0x5f, G: 0x27, B: 0xcd, A: 0x80}
	colorSkillIdle   = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0x80}
)

// TouchButton 触屏按钮
type TouchButton int

const (
	TouchNone TouchButton = iota
	TouchFire
	TouchSkill
)

// TouchControls 移动端右下角的射击/必杀技按钮
type TouchControls struct{}

// NewTouchControls 创建触屏按钮
func NewTouchControls() *TouchControls {
	return &TouchControls{}
}

// Layout 返回两个按钮在竞技场中的矩形
func (t *TouchControls) Layout(width, height float64) (fire, skill utils.Rect) {
	fire = utils.Rect{
		X:      width - touchButtonSize - touchButtonMargin,
		Y:      height - touchButtonSize - touchButtonMargin,
		Width:  touchButtonSize,
		Height: touchButtonSize,
	}
	skill = fire
	skill.X -= touchButtonSize + touchButtonMargin
	return fire, skill
}

// HitTest 判断触点落在哪个按钮上
func (t *TouchControls) HitTest(width, height, x, y float64) TouchButton {
	fire, skill := t.Layout(width, height)
	switch {
	case fire.Contains(x, y):
		return TouchFire
	case skill.Contains(x, y):
		return TouchSkill
	default:
		return TouchNone
	}
}

// Draw 绘制按钮
func (t *TouchControls) Draw(screen *ebiten.Image, width, height float64, skillReady bool) {
	fire, skill := t.Layout(width, height)

	drawButton(screen, fire, colorFireButton, "FIRE")
	skillColor := colorSkillIdle
	if skillReady {
		skillColor = colorSkillButton
	}
	drawButton(screen, skill, skillColor, "SKILL")
}

func drawButton(screen *ebiten.Image, r utils.Rect, clr color.RGBA, label string) {
	radius := float32(r.Width / 2)
	vector.DrawFilledCircle(screen, float32(r.CenterX()), float32(r.CenterY()), radius, clr, true)
	vector.StrokeCircle(screen, float32(r.CenterX()), float32(r.CenterY()), radius, 2, colorOutline, true)
	ebitenutil.DebugPrintAt(screen, label, int(r.CenterX())-len(label)*glyphWidth/2, int(r.CenterY())-glyphHeight/2)
}
