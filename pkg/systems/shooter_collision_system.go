package systems

import (
	"math/rand"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/entities"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/utils"
	"go.uber.org/zap"
)

// ShooterCollisionSystem 射击模式的碰撞检测
//
// 每帧按固定顺序处理，顺序决定了同一帧内的先后：
//  1. 玩家子弹 vs 敌机：一颗子弹最多命中一架敌机（命中后立即跳出内层循环）
//  2. 敌方子弹 vs 玩家：无敌期间跳过；每帧最多处理一次命中
//  3. 敌机 vs 玩家直接相撞：无敌期间跳过；每帧最多一次，撞毁的敌机不计分
//
// 玩家受伤后立即进入无敌窗口，因此第 2 步命中后第 3 步不会再扣血。
type ShooterCollisionSystem struct {
	em     *ecs.EntityManager
	gs     *game.GameState
	cfg    *config.ShooterConfig
	rng    *rand.Rand
	logger *zap.Logger
}

// NewShooterCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 当前局状态（计分）
//   - cfg: 伤害与无敌时长参数
//   - rng: 粒子效果使用的随机数
//   - logger: 日志
func NewShooterCollisionSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.ShooterConfig, rng *rand.Rand, logger *zap.Logger) *ShooterCollisionSystem {
	return &ShooterCollisionSystem{em: em, gs: gs, cfg: cfg, rng: rng, logger: logger}
}

// Update 执行本帧的全部碰撞检测
func (s *ShooterCollisionSystem) Update() {
	s.playerBulletsVsEnemies()

	playerID, ok := findPlayer(s.em)
	if !ok {
		return
	}
	if !isInvulnerable(s.em, playerID) {
		s.enemyBulletsVsPlayer(playerID)
	}
	if !isInvulnerable(s.em, playerID) {
		s.enemiesVsPlayer(playerID)
	}
}

func (s *ShooterCollisionSystem) playerBulletsVsEnemies() {
	bullets := ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	enemies := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](s.em)

	for _, bulletID := range bullets {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.em, bulletID)
		if bullet.Owner != components.OwnerPlayer {
			continue
		}
		bulletBox, _ := boundsOf(s.em, bulletID)

		for _, enemyID := range enemies {
			// 本帧已被击毁的敌机不再参与检测
			if !s.em.IsAlive(enemyID) {
				continue
			}
			enemyBox, _ := boundsOf(s.em, enemyID)
			if !bulletBox.Overlaps(enemyBox) {
				continue
			}

			s.em.DestroyEntity(bulletID)
			entities.NewHitSparks(s.em, s.cfg.Effects, s.rng, bulletBox.CenterX(), bulletBox.Y)

			if applyDamage(s.em, enemyID, bullet.Damage) <= 0 {
				enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, enemyID)
				s.em.DestroyEntity(enemyID)
				s.gs.AddScore(enemy.ScoreValue)
				entities.NewExplosion(s.em, s.cfg.Effects, s.rng, enemyBox.CenterX(), enemyBox.CenterY())
				s.logger.Debug("enemy destroyed",
					zap.Stringer("variant", enemy.Variant),
					zap.Int("score", s.gs.Score))
			}
			break
		}
	}
}

func (s *ShooterCollisionSystem) enemyBulletsVsPlayer(playerID ecs.EntityID) {
	playerBox, ok := boundsOf(s.em, playerID)
	if !ok {
		return
	}

	for _, bulletID := range ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.CollisionComponent](s.em) {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.em, bulletID)
		if bullet.Owner != components.OwnerEnemy {
			continue
		}
		bulletBox, _ := boundsOf(s.em, bulletID)
		if !bulletBox.Overlaps(playerBox) {
			continue
		}

		s.em.DestroyEntity(bulletID)
		s.hurtPlayer(playerID, playerBox, bullet.Damage)
		break
	}
}

func (s *ShooterCollisionSystem) enemiesVsPlayer(playerID ecs.EntityID) {
	playerBox, ok := boundsOf(s.em, playerID)
	if !ok {
		return
	}

	for _, enemyID := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](s.em) {
		enemyBox, _ := boundsOf(s.em, enemyID)
		if !enemyBox.Overlaps(playerBox) {
			continue
		}

		s.em.DestroyEntity(enemyID)
		entities.NewExplosion(s.em, s.cfg.Effects, s.rng, enemyBox.CenterX(), enemyBox.CenterY())
		s.hurtPlayer(playerID, playerBox, s.cfg.ContactDamage)
		break
	}
}

func (s *ShooterCollisionSystem) hurtPlayer(playerID ecs.EntityID, playerBox utils.Rect, damage int) {
	hp := applyDamage(s.em, playerID, damage)
	grantInvulnerability(s.em, playerID, s.cfg.InvulnerableDuration)
	entities.NewExplosion(s.em, s.cfg.Effects, s.rng, playerBox.CenterX(), playerBox.CenterY())
	s.logger.Debug("player hit", zap.Int("damage", damage), zap.Int("health", hp))
}
