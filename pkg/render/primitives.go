// Package render 把场景状态绘制到 ebiten 屏幕上
//
// 渲染是场景状态的纯函数：只读取实体和 GameState，从不修改它们。
package render

import (
	"image"
	"image/color"

	"github.com/decker502/arcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// emptyImg 1x1 白色子图，作为 DrawTriangles 的纹理源，颜色完全由顶点决定
var emptyImg *ebiten.Image

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	emptyImg = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// hexColor 解析 "#rrggbb"，格式错误时返回白色
func hexColor(s string) color.RGBA {
	c := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	parse := func(hi, lo byte) (uint8, bool) {
		h, ok1 := hexDigit(hi)
		l, ok2 := hexDigit(lo)
		return h<<4 | l, ok1 && ok2
	}
	r, ok1 := parse(s[1], s[2])
	g, ok2 := parse(s[3], s[4])
	b, ok3 := parse(s[5], s[6])
	if !ok1 || !ok2 || !ok3 {
		return c
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// withAlpha 以 [0,1] 的透明度返回预乘后的颜色
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// lerpColor 在 from 与 to 之间线性插值
func lerpColor(from, to color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 { return uint8(utils.Lerp(float64(a), float64(b), t)) }
	return color.RGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: mix(from.A, to.A)}
}

func setVertexColor(v *ebiten.Vertex, c color.RGBA) {
	v.SrcX, v.SrcY = 1, 1
	v.ColorR = float32(c.R) / 0xff
	v.ColorG = float32(c.G) / 0xff
	v.ColorB = float32(c.B) / 0xff
	v.ColorA = float32(c.A) / 0xff
}

// fillGradientRect 沿对角线从左上 from 渐变到右下 to
func fillGradientRect(dst *ebiten.Image, x, y, w, h float64, from, to color.RGBA) {
	mid := lerpColor(from, to, 0.5)
	vs := []ebiten.Vertex{
		{DstX: float32(x), DstY: float32(y)},
		{DstX: float32(x + w), DstY: float32(y)},
		{DstX: float32(x), DstY: float32(y + h)},
		{DstX: float32(x + w), DstY: float32(y + h)},
	}
	setVertexColor(&vs[0], from)
	setVertexColor(&vs[1], mid)
	setVertexColor(&vs[2], mid)
	setVertexColor(&vs[3], to)
	dst.DrawTriangles(vs, []uint16{0, 1, 2, 1, 2, 3}, emptyImg, &ebiten.DrawTrianglesOptions{})
}

// fillPath 用纯色填充路径
func fillPath(dst *ebiten.Image, path *vector.Path, c color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		setVertexColor(&vs[i], c)
	}
	dst.DrawTriangles(vs, is, emptyImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokePath 描边路径
func strokePath(dst *ebiten.Image, path *vector.Path, width float32, c color.RGBA) {
	op := &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	for i := range vs {
		setVertexColor(&vs[i], c)
	}
	dst.DrawTriangles(vs, is, emptyImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
