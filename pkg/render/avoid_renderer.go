package render

import (
	"image/color"
	"math"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 躲避模式配色
var (
	colorWater       = color.RGBA{R: 240, G: 249, B: 255, A: 0xff}
	colorFishFrom    = hexColor("#4fc3f7")
	colorFishTo      = hexColor("#0288d1")
	colorFishOutline = hexColor("#01579b")
	colorBlockFrom   = hexColor("#ff5722")
	colorBlockTo     = hexColor("#e64a19")
	colorBlockLine   = hexColor("#bf360c")
	colorEyeWhite    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorEyeBlack    = color.RGBA{A: 0xff}
)

// AvoidRenderer 躲避模式的渲染
type AvoidRenderer struct {
	hud *HUDRenderer
}

// NewAvoidRenderer 创建躲避模式渲染器
func NewAvoidRenderer() *AvoidRenderer {
	return &AvoidRenderer{hud: NewHUDRenderer()}
}

// Draw 绘制一帧
func (r *AvoidRenderer) Draw(screen *ebiten.Image, s *scenes.AvoidScene) {
	gs := s.State()
	em := s.EntityManager()

	screen.Fill(colorWater)
	drawChaser(screen, em)
	drawTarget(screen, em)
	r.hud.Draw(screen, game.BuildHUD(gs, -1, -1), gs.Arena.Width, gs.Arena.Height)
}

// fishTransform 鱼头局部坐标到世界坐标的变换（先按朝向旋转再平移）
type fishTransform struct {
	x, y     float64
	cos, sin float64
}

func newFishTransform(x, y, angle float64) fishTransform {
	return fishTransform{x: x, y: y, cos: math.Cos(angle), sin: math.Sin(angle)}
}

func (t fishTransform) apply(lx, ly float64) (float32, float32) {
	return float32(t.x + lx*t.cos - ly*t.sin), float32(t.y + lx*t.sin + ly*t.cos)
}

// local 世界坐标还原为局部 x（用于渐变）
func (t fishTransform) localX(wx, wy float32) float64 {
	return (float64(wx)-t.x)*t.cos + (float64(wy)-t.y)*t.sin
}

// drawChaser 半椭圆鱼头：嘴朝 -x 方向，旋转到 Facing
func drawChaser(screen *ebiten.Image, em *ecs.EntityManager) {
	id, ok := ecs.First[*components.ChaserComponent](em)
	if !ok {
		return
	}
	chaser, _ := ecs.GetComponent[*components.ChaserComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if pos == nil || col == nil {
		return
	}
	w, h := col.Width, col.Height
	tf := newFishTransform(pos.X, pos.Y, chaser.Facing)

	var outline vector.Path
	outline.MoveTo(tf.apply(0, h/2))
	outline.LineTo(tf.apply(0, -h/2))
	cx, cy := tf.apply(-w, 0)
	ex, ey := tf.apply(0, h/2)
	outline.QuadTo(cx, cy, ex, ey)
	outline.Close()

	vs, is := outline.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		t := (tf.localX(vs[i].DstX, vs[i].DstY) + w) / w
		setVertexColor(&vs[i], lerpColor(colorFishFrom, colorFishTo, math.Max(0, math.Min(1, t))))
	}
	screen.DrawTriangles(vs, is, emptyImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	strokePath(screen, &outline, 2, colorFishOutline)

	eyeSize := h / 5
	eyeX, eyeY := tf.apply(-w/2, -h/4)
	vector.DrawFilledCircle(screen, eyeX, eyeY, float32(eyeSize), colorEyeWhite, true)
	vector.StrokeCircle(screen, eyeX, eyeY, float32(eyeSize), 1, colorEyeBlack, true)
	pupilX, pupilY := tf.apply(-w/2-eyeSize/3, -h/4)
	vector.DrawFilledCircle(screen, pupilX, pupilY, float32(eyeSize/2), colorEyeBlack, true)

	var mouth vector.Path
	mx, my := tf.apply(-w/3, h/4)
	mouth.Arc(mx, my, float32(eyeSize/1.5), float32(chaser.Facing), float32(chaser.Facing+math.Pi/2), vector.Clockwise)
	strokePath(screen, &mouth, 1.5, colorFishOutline)
}

func drawTarget(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.TargetComponent, *components.PositionComponent](em) {
		target, _ := ecs.GetComponent[*components.TargetComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		fillGradientRect(screen, pos.X, pos.Y, target.Size, target.Size, colorBlockFrom, colorBlockTo)
		vector.StrokeRect(screen, float32(pos.X), float32(pos.Y), float32(target.Size), float32(target.Size), 2, colorBlockLine, true)
	}
}
