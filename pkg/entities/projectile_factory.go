package entities

import (
	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
)

// NewPlayerBullet 创建玩家子弹
// 子弹从战机机头中央发射（水平居中，位于战机上方 10 像素处），以恒定速度向上飞行
//
// 参数:
//   - em: 实体管理器
//   - cfg: 子弹参数
//   - shooterX, shooterY, shooterWidth: 战机左上角坐标与宽度
func NewPlayerBullet(em *ecs.EntityManager, cfg config.BulletConfig, shooterX, shooterY, shooterWidth float64) ecs.EntityID {
	x := shooterX + shooterWidth/2 - cfg.Width/2
	y := shooterY - cfg.Height/2
	return newBullet(em, cfg, components.OwnerPlayer, x, y, -cfg.Speed)
}

// NewEnemyBullet 创建敌机子弹
// 子弹从敌机底部中央发射，以恒定速度向下飞行
func NewEnemyBullet(em *ecs.EntityManager, cfg config.BulletConfig, shooterX, shooterY, shooterWidth, shooterHeight float64) ecs.EntityID {
	x := shooterX + shooterWidth/2 - cfg.Width/2
	y := shooterY + shooterHeight
	return newBullet(em, cfg, components.OwnerEnemy, x, y, cfg.Speed)
}

func newBullet(em *ecs.EntityManager, cfg config.BulletConfig, owner components.BulletOwner, x, y, vy float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Width: cfg.Width, Height: cfg.Height})
	em.AddComponent(id, &components.VelocityComponent{VY: vy})
	em.AddComponent(id, &components.BulletComponent{Owner: owner, Damage: cfg.Damage})
	return id
}
