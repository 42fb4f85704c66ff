package systems

import (
	"math/rand"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/entities"
	"github.com/decker502/arcade/pkg/game"
	"go.uber.org/zap"
)

// shooterWorld 射击模式测试夹具
type shooterWorld struct {
	em     *ecs.EntityManager
	gs     *game.GameState
	cfg    *config.ShooterConfig
	rng    *rand.Rand
	logger *zap.Logger
}

func newShooterWorld() *shooterWorld {
	cfg := config.DefaultShooterConfig()
	gs := game.NewGameState(game.ModeShooter, cfg.ArenaWidth, cfg.ArenaHeight)
	gs.Phase = game.PhaseRunning
	return &shooterWorld{
		em:     ecs.NewEntityManager(),
		gs:     gs,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(42)),
		logger: zap.NewNop(),
	}
}

func (w *shooterWorld) addPlayer(health int) ecs.EntityID {
	return entities.NewPlayer(w.em, w.cfg, w.gs.Arena.Width, w.gs.Arena.Height, health)
}

// placeEnemy 在指定左上角位置放置敌机
func (w *shooterWorld) placeEnemy(variant components.EnemyVariant, x, y float64) ecs.EntityID {
	id := entities.NewEnemy(w.em, w.cfg, variant, x, w.gs.Now)
	setPosition(w.em, id, x, y)
	return id
}

func (w *shooterWorld) placePlayerBullet(x, y float64) ecs.EntityID {
	id := entities.NewPlayerBullet(w.em, w.cfg.PlayerBullet, 0, 0, 0)
	setPosition(w.em, id, x, y)
	return id
}

func (w *shooterWorld) placeEnemyBullet(x, y float64) ecs.EntityID {
	id := entities.NewEnemyBullet(w.em, w.cfg.EnemyBullet, 0, 0, 0, 0)
	setPosition(w.em, id, x, y)
	return id
}

func (w *shooterWorld) collision() *ShooterCollisionSystem {
	return NewShooterCollisionSystem(w.em, w.gs, w.cfg, w.rng, w.logger)
}

func setPosition(em *ecs.EntityManager, id ecs.EntityID, x, y float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X, pos.Y = x, y
}

func positionOf(em *ecs.EntityManager, id ecs.EntityID) (float64, float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return pos.X, pos.Y
}

func healthOf(em *ecs.EntityManager, id ecs.EntityID) int {
	hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	return hp.CurrentHealth
}

func countOf[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}

// countBullets 统计指定归属的子弹数
func countBullets(em *ecs.EntityManager, owner components.BulletOwner) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BulletComponent](em) {
		b, _ := ecs.GetComponent[*components.BulletComponent](em, id)
		if b.Owner == owner {
			n++
		}
	}
	return n
}
