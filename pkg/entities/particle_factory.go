package entities

import (
	"image/color"
	"math/rand"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/utils"
	"github.com/lucasb-eyer/go-colorful"
)

// 粒子颜色
var (
	ColorHitSpark    = color.RGBA{R: 0xff, G: 0x47, B: 0x57, A: 0xff} // #ff4757
	ColorMuzzleFlash = color.RGBA{R: 0xff, G: 0x6b, B: 0xff, A: 0xff} // #ff6bff
	ColorSkillBurst  = color.RGBA{R: 0xff, G: 0x6b, B: 0xff, A: 0xff}
)

// 爆炸粒子色相范围（紫到品红）
const (
	explosionHueMin = 270.0
	explosionHueMax = 330.0
)

// NewParticle 创建单个粒子
// 初速度在 [-spread/2, spread/2) 内随机
func NewParticle(em *ecs.EntityManager, fx config.EffectsConfig, rng *rand.Rand, x, y, size float64, clr color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.ParticleComponent{
		VelocityX:  (rng.Float64() - 0.5) * fx.Spread,
		VelocityY:  (rng.Float64() - 0.5) * fx.Spread,
		Size:       size,
		SizeDecay:  fx.SizeDecay,
		Alpha:      1,
		AlphaDecay: fx.AlphaDecay,
		Color:      clr,
	})
	return id
}

// NewMuzzleFlash 战机开火时机头的闪光
func NewMuzzleFlash(em *ecs.EntityManager, fx config.EffectsConfig, rng *rand.Rand, x, y float64) {
	NewParticle(em, fx, rng, x, y, 5, ColorMuzzleFlash)
}

// NewHitSparks 子弹命中敌机时的小型火花
func NewHitSparks(em *ecs.EntityManager, fx config.EffectsConfig, rng *rand.Rand, x, y float64) {
	for i := 0; i < fx.HitSparks; i++ {
		NewParticle(em, fx, rng, x, y, 3, ColorHitSpark)
	}
}

// NewExplosion 在 (x, y) 生成爆炸粒子群
// 颜色为 HSL(270°~330°, 100%, 60%)，半径 2~7 像素
func NewExplosion(em *ecs.EntityManager, fx config.EffectsConfig, rng *rand.Rand, x, y float64) {
	for i := 0; i < fx.ExplosionParticles; i++ {
		hue := utils.RandRange(rng, explosionHueMin, explosionHueMax)
		r, g, b := colorful.Hsl(hue, 1, 0.6).Clamped().RGB255()
		size := utils.RandRange(rng, 2, 7)
		NewParticle(em, fx, rng, x, y, size, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
}

// NewScreenBurst 必杀技释放时铺满全屏的粒子
func NewScreenBurst(em *ecs.EntityManager, fx config.EffectsConfig, rng *rand.Rand, width, height float64) {
	for i := 0; i < fx.ScreenParticles; i++ {
		x := rng.Float64() * width
		y := rng.Float64() * height
		NewParticle(em, fx, rng, x, y, utils.RandRange(rng, 1, 5), ColorSkillBurst)
	}
}
