package entities

import (
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultShooterConfig()

	id := NewPlayer(em, cfg, 800, 600, cfg.Player.MaxHealth)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 800/2-120/2.0, pos.X)
	assert.Equal(t, 600-120-20.0, pos.Y)

	hp, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 200, hp.CurrentHealth)
	assert.Equal(t, 200, hp.MaxHealth)

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, -cfg.Player.FireInterval, player.LastFireAt, "第一帧即可射击")
	assert.True(t, ecs.HasComponent[*components.InvulnerabilityComponent](em, id))
}

func TestNewEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultShooterConfig()
	now := 3 * time.Second

	tests := []struct {
		variant components.EnemyVariant
		size    float64
		speed   float64
		health  int
		score   int
		canFire bool
	}{
		{components.EnemyNormal, 60, 3, 20, 20, false},
		{components.EnemyElite, 80, 2, 50, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			id := NewEnemy(em, cfg, tt.variant, 100, now)

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			assert.Equal(t, 100.0, pos.X)
			assert.Equal(t, -tt.size, pos.Y, "敌机从顶部上方出现")

			vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
			assert.Equal(t, tt.speed, vel.VY)

			col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
			assert.Equal(t, tt.size, col.Width)

			hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
			assert.Equal(t, tt.health, hp.CurrentHealth)

			enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
			assert.Equal(t, tt.score, enemy.ScoreValue)
			assert.Equal(t, tt.canFire, enemy.CanFire)
			assert.Equal(t, now, enemy.LastFireAt)
		})
	}
}

func TestBulletSpawnPositions(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultShooterConfig()

	pb := NewPlayerBullet(em, cfg.PlayerBullet, 340, 460, 120)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, pb)
	assert.Equal(t, 340+60-5.0, pos.X)
	assert.Equal(t, 450.0, pos.Y)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, pb)
	assert.Equal(t, -8.0, vel.VY)
	bullet, _ := ecs.GetComponent[*components.BulletComponent](em, pb)
	assert.Equal(t, components.OwnerPlayer, bullet.Owner)
	assert.Equal(t, 10, bullet.Damage)

	eb := NewEnemyBullet(em, cfg.EnemyBullet, 100, 50, 80, 80)
	pos, _ = ecs.GetComponent[*components.PositionComponent](em, eb)
	assert.Equal(t, 100+40-5.0, pos.X)
	assert.Equal(t, 130.0, pos.Y)
	vel, _ = ecs.GetComponent[*components.VelocityComponent](em, eb)
	assert.Equal(t, 6.0, vel.VY)
	bullet, _ = ecs.GetComponent[*components.BulletComponent](em, eb)
	assert.Equal(t, components.OwnerEnemy, bullet.Owner)
}

func TestExplosionParticles(t *testing.T) {
	em := ecs.NewEntityManager()
	fx := config.DefaultShooterConfig().Effects
	rng := rand.New(rand.NewSource(1))

	NewExplosion(em, fx, rng, 50, 50)

	ids := ecs.GetEntitiesWith1[*components.ParticleComponent](em)
	require.Len(t, ids, 30)
	for _, id := range ids {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		assert.Equal(t, 1.0, p.Alpha)
		assert.GreaterOrEqual(t, p.Size, 2.0)
		assert.Less(t, p.Size, 7.0)
		assert.InDelta(t, 0, p.VelocityX, 2.5)
		assert.InDelta(t, 0, p.VelocityY, 2.5)
		// 紫到品红：红、蓝通道占主导
		assert.Greater(t, p.Color.R, p.Color.G)
		assert.Greater(t, p.Color.B, p.Color.G)
	}
}

func TestScreenBurstAndSparks(t *testing.T) {
	em := ecs.NewEntityManager()
	fx := config.DefaultShooterConfig().Effects
	rng := rand.New(rand.NewSource(2))

	NewScreenBurst(em, fx, rng, 800, 600)
	NewHitSparks(em, fx, rng, 10, 10)
	NewMuzzleFlash(em, fx, rng, 10, 10)

	assert.Equal(t, 100+3+1, em.Count())
}

func TestNewChaserAndTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultAvoidConfig()
	rng := rand.New(rand.NewSource(3))

	chaser := NewChaser(em, cfg, 600, 400)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, chaser)
	assert.Equal(t, 300.0, pos.X)
	assert.Equal(t, 200.0, pos.Y)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, chaser)
	assert.Equal(t, -30.0, col.OffsetX)
	assert.Equal(t, -20.0, col.OffsetY)

	target := NewTargetBlock(em, cfg, rng, 600, 400)
	tc, ok := ecs.GetComponent[*components.TargetComponent](em, target)
	require.True(t, ok)
	assert.Equal(t, 10, tc.Reward)
}

func TestRandomTargetPositionInset(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		x, y := RandomTargetPosition(rng, 30, 600, 400)
		assert.GreaterOrEqual(t, x, 30.0)
		assert.Less(t, x, 570.0)
		assert.GreaterOrEqual(t, y, 30.0)
		assert.Less(t, y, 370.0)
	}
}
