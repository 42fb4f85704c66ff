package render

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorSpace = hexColor("#0f0f23")
	colorStar  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type star struct {
	x, y, r float64 // x, y 为竞技场尺寸的比例
}

// Starfield 固定的星空背景
// 星星位置在创建时生成一次，用竞技场比例坐标保存，视口缩放后仍铺满
type Starfield struct {
	stars []star
}

// NewStarfield 生成 n 颗星星
func NewStarfield(n int, rng *rand.Rand) *Starfield {
	sf := &Starfield{stars: make([]star, n)}
	for i := range sf.stars {
		sf.stars[i] = star{x: rng.Float64(), y: rng.Float64(), r: rng.Float64() * 2}
	}
	return sf
}

// Draw 绘制背景色和星星
func (sf *Starfield) Draw(screen *ebiten.Image, width, height float64) {
	screen.Fill(colorSpace)
	for _, s := range sf.stars {
		if s.r <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(s.x*width), float32(s.y*height), float32(s.r), colorStar, true)
	}
}
