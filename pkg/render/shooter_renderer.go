package render

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/scenes"
	"github.com/decker502/arcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 射击模式配色
var (
	colorPlayerFrom   = hexColor("#3e92cc")
	colorPlayerTo     = hexColor("#5f27cd")
	colorEliteFrom    = hexColor("#6c5ce7")
	colorEliteTo      = hexColor("#a29bfe")
	colorEliteOutline = hexColor("#ff6bff")
	colorNormalFrom   = hexColor("#636e72")
	colorNormalTo     = hexColor("#b2bec3")
	colorOutline      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorPlayerBullet = hexColor("#3e92cc")
	colorEnemyBullet  = hexColor("#ff4757")
	colorHPTrack      = hexColor("#333333")
	colorHPFill       = hexColor("#ff6b6b")
	colorSkillOverlay = hexColor("#5f27cd")
)

const (
	// blinkPeriod 无敌闪烁周期的一半
	blinkPeriod       = 100 * time.Millisecond
	skillOverlayAlpha = 0.2
)

// ShooterRenderer 射击模式的渲染
type ShooterRenderer struct {
	rm    *ResourceManager
	stars *Starfield
	hud   *HUDRenderer
	touch *TouchControls
}

// NewShooterRenderer 创建射击模式渲染器
// touch 可为 nil（桌面端不显示触屏按钮）
func NewShooterRenderer(rm *ResourceManager, rng *rand.Rand, touch *TouchControls) *ShooterRenderer {
	return &ShooterRenderer{
		rm:    rm,
		stars: NewStarfield(100, rng),
		hud:   NewHUDRenderer(),
		touch: touch,
	}
}

// Draw 绘制一帧
func (r *ShooterRenderer) Draw(screen *ebiten.Image, s *scenes.ShooterScene) {
	gs := s.State()
	em := s.EntityManager()

	r.stars.Draw(screen, gs.Arena.Width, gs.Arena.Height)
	r.drawPlayer(screen, em, gs.Now)
	r.drawBullets(screen, em)
	r.drawEnemies(screen, em)
	drawParticles(screen, em)

	if s.Skill().OverlayActive() {
		// 最大不透明度 0.2，随剩余时间缓出
		alpha := skillOverlayAlpha * utils.EaseOutQuad(s.Skill().OverlayFade())
		vector.DrawFilledRect(screen, 0, 0, float32(gs.Arena.Width), float32(gs.Arena.Height), withAlpha(colorSkillOverlay, alpha), false)
	}

	r.hud.Draw(screen, game.BuildHUD(gs, s.HealthPercent(), s.Skill().CountdownSeconds()), gs.Arena.Width, gs.Arena.Height)
	if r.touch != nil {
		r.touch.Draw(screen, gs.Arena.Width, gs.Arena.Height, s.Skill().Ready())
	}
}

// PlayerVisible 无敌期间每 100ms 切换一次可见性
func PlayerVisible(invulnerable bool, now time.Duration) bool {
	if !invulnerable {
		return true
	}
	return (now/blinkPeriod)%2 != 0
}

func (r *ShooterRenderer) drawPlayer(screen *ebiten.Image, em *ecs.EntityManager, now time.Duration) {
	id, ok := ecs.First[*components.PlayerComponent](em)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	inv, _ := ecs.GetComponent[*components.InvulnerabilityComponent](em, id)
	if pos == nil || col == nil {
		return
	}
	if !PlayerVisible(inv != nil && inv.Active, now) {
		return
	}

	if img := r.rm.Image(ImagePlayer); img != nil {
		drawImageFit(screen, img, pos.X, pos.Y, col.Width, col.Height)
		return
	}
	fillGradientRect(screen, pos.X, pos.Y, col.Width, col.Height, colorPlayerFrom, colorPlayerTo)
	vector.StrokeRect(screen, float32(pos.X), float32(pos.Y), float32(col.Width), float32(col.Height), 2, colorOutline, false)
}

func (r *ShooterRenderer) drawBullets(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		clr := colorPlayerBullet
		if bullet.Owner == components.OwnerEnemy {
			clr = colorEnemyBullet
		}
		// 外圈半透明辉光
		vector.DrawFilledRect(screen, float32(pos.X-2), float32(pos.Y-2), float32(col.Width+4), float32(col.Height+4), withAlpha(clr, 0.35), true)
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(col.Width), float32(col.Height), clr, false)
	}
}

func (r *ShooterRenderer) drawEnemies(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		x, y, w, h := pos.X, pos.Y, col.Width, col.Height

		switch enemy.Variant {
		case components.EnemyElite:
			if img := r.rm.Image(ImageEnemyElite); img != nil {
				drawImageFit(screen, img, x, y, w, h)
				break
			}
			fillGradientRect(screen, x, y, w, h, colorEliteFrom, colorEliteTo)
			vector.StrokeRect(screen, float32(x-2), float32(y-2), float32(w+4), float32(h+4), 3, colorOutline, false)
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorEliteOutline, false)
		default:
			if img := r.rm.Image(ImageEnemyNormal); img != nil {
				drawImageFit(screen, img, x, y, w, h)
				break
			}
			fillGradientRect(screen, x, y, w, h, colorNormalFrom, colorNormalTo)
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, colorOutline, false)
		}

		if hp, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok && hp.MaxHealth > 0 {
			ratio := float64(hp.CurrentHealth) / float64(hp.MaxHealth)
			vector.DrawFilledRect(screen, float32(x), float32(y-5), float32(w), 3, colorHPTrack, false)
			vector.DrawFilledRect(screen, float32(x), float32(y-5), float32(ratio*w), 3, colorHPFill, false)
		}
	}
}

// drawParticles 按透明度绘制所有粒子
func drawParticles(screen *ebiten.Image, em *ecs.EntityManager) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if p.Size <= 0 || p.Alpha <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(p.Size), withAlpha(p.Color, p.Alpha), true)
	}
}

// drawImageFit 把贴图缩放到指定矩形
func drawImageFit(screen, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
