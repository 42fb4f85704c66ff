package systems

import (
	"testing"

	"github.com/decker502/arcade/pkg/components"
	"github.com/stretchr/testify/assert"
)

func TestPlayerBulletRemovedAboveTop(t *testing.T) {
	w := newShooterWorld()
	boundary := NewBoundarySystem(w.em, w.gs, w.cfg, w.logger)

	edge := w.placePlayerBullet(100, -20) // 刚好等于 -height，尚未完全离开
	gone := w.placePlayerBullet(400, -21)
	boundary.Update()

	assert.True(t, w.em.IsAlive(edge))
	assert.False(t, w.em.IsAlive(gone))

	// 同一帧再次检查不会重复移除，也不再参与碰撞
	boundary.Update()
	enemy := w.placeEnemy(components.EnemyNormal, 390, -40)
	w.collision().Update()
	assert.Equal(t, 20, healthOf(w.em, enemy), "已移除的子弹不造成伤害")

	w.em.RemoveMarkedEntities()
	assert.Equal(t, 1, countBullets(w.em, components.OwnerPlayer))
}

func TestEnemyBulletRemovedBelowBottom(t *testing.T) {
	w := newShooterWorld()
	boundary := NewBoundarySystem(w.em, w.gs, w.cfg, w.logger)

	inside := w.placeEnemyBullet(100, 600)
	outside := w.placeEnemyBullet(100, 601)
	boundary.Update()

	assert.True(t, w.em.IsAlive(inside))
	assert.False(t, w.em.IsAlive(outside))
}

func TestEscapedEnemyPenalizesPlayer(t *testing.T) {
	w := newShooterWorld()
	player := w.addPlayer(15)
	boundary := NewBoundarySystem(w.em, w.gs, w.cfg, w.logger)

	w.placeEnemy(components.EnemyNormal, 100, 601)
	w.placeEnemy(components.EnemyElite, 200, 700)
	stay := w.placeEnemy(components.EnemyNormal, 300, 600)

	escaped := boundary.Update()

	assert.Equal(t, 2, escaped)
	assert.Equal(t, 0, healthOf(w.em, player), "扣血不低于 0")
	assert.True(t, w.em.IsAlive(stay))
	assert.Equal(t, 0, w.gs.Score, "逃脱不计分")
}
