package render

import (
	"image/color"

	"github.com/decker502/arcade/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 调试字体每个字符的尺寸
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	colorHealthTrack = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xcc}
	colorHealthFill  = hexColor("#2ed573")
	colorPanel       = color.RGBA{R: 0, G: 0, B: 0, A: 0xb4}
)

// HUDRenderer 绘制分数、血条、必杀技倒计时和状态面板
type HUDRenderer struct{}

// NewHUDRenderer 创建 HUD 渲染器
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Draw 绘制 HUD
func (h *HUDRenderer) Draw(screen *ebiten.Image, hud game.HUD, width, height float64) {
	ebitenutil.DebugPrintAt(screen, hud.Score, 10, 8)
	ebitenutil.DebugPrintAt(screen, hud.Best, 10, 8+glyphHeight)

	if hud.HealthPercent >= 0 {
		const barW, barH = 160, 10
		x := float32(width) - barW - 10
		vector.DrawFilledRect(screen, x, 12, barW, barH, colorHealthTrack, false)
		vector.DrawFilledRect(screen, x, 12, float32(hud.HealthPercent/100*barW), barH, colorHealthFill, false)
		ebitenutil.DebugPrintAt(screen, "HP", int(x)-18, 8)
	}
	if hud.Skill != "" {
		ebitenutil.DebugPrintAt(screen, hud.Skill, int(width)-len(hud.Skill)*glyphWidth-10, 8+glyphHeight+4)
	}

	if hud.Panel != game.PanelNone {
		h.drawPanel(screen, hud.PanelLines, width, height)
	}
}

func (h *HUDRenderer) drawPanel(screen *ebiten.Image, lines []string, width, height float64) {
	longest := 0
	for _, l := range lines {
		if len(l) > longest {
			longest = len(l)
		}
	}
	panelW := float64(longest*glyphWidth + 40)
	panelH := float64(len(lines)*glyphHeight + 30)
	x := (width - panelW) / 2
	y := (height - panelH) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), colorPanel, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), 2, colorEliteOutline, false)
	for i, l := range lines {
		lx := int(x + (panelW-float64(len(l)*glyphWidth))/2)
		ly := int(y) + 15 + i*glyphHeight
		ebitenutil.DebugPrintAt(screen, l, lx, ly)
	}
}
