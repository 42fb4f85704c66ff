package systems

import (
	"testing"
	"time"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillClearsEnemiesAndAwardsScore(t *testing.T) {
	w := newShooterWorld()
	skill := NewSkillSystem(w.em, w.gs, w.cfg, w.rng, w.logger)
	skill.Reset()

	w.placeEnemy(components.EnemyNormal, 10, 10)
	w.placeEnemy(components.EnemyElite, 200, 50)
	w.placeEnemy(components.EnemyNormal, 400, 90)
	w.gs.Score = 5

	require.True(t, skill.Ready(), "开局即可释放")
	result, ok := skill.Use()

	require.True(t, ok)
	assert.Equal(t, 3, result.Destroyed)
	assert.Equal(t, 20+100+20, result.Awarded)
	assert.Equal(t, 145, w.gs.Score)
	assert.Equal(t, 0, countOf[*components.EnemyComponent](w.em))
	assert.Equal(t, 3*30+100, countOf[*components.ParticleComponent](w.em))
	assert.True(t, skill.OverlayActive())
}

func TestSkillCooldown(t *testing.T) {
	w := newShooterWorld()
	skill := NewSkillSystem(w.em, w.gs, w.cfg, w.rng, w.logger)
	skill.Reset()
	assert.Equal(t, 0, skill.CountdownSeconds())

	w.gs.Now = 2 * time.Second
	_, ok := skill.Use()
	require.True(t, ok)

	w.gs.Now += 500 * time.Millisecond
	assert.False(t, skill.Ready())
	assert.Equal(t, 10, skill.CountdownSeconds(), "9.5 秒向上取整")
	assert.True(t, skill.OverlayActive())
	assert.InDelta(t, 0.5, skill.OverlayFade(), 1e-9)

	w.placeEnemy(components.EnemyNormal, 10, 10)
	_, ok = skill.Use()
	assert.False(t, ok)
	assert.Equal(t, 1, countOf[*components.EnemyComponent](w.em), "冷却中不生效")

	w.gs.Now = 2*time.Second + time.Second
	assert.False(t, skill.OverlayActive())
	assert.Zero(t, skill.OverlayFade())

	w.gs.Now = 12 * time.Second
	assert.True(t, skill.Ready(), "正好满一个冷却即可释放")
	assert.Zero(t, skill.Remaining())
}

func TestSkillHeldFiresWhenCooldownEnds(t *testing.T) {
	w := newShooterWorld()
	skill := NewSkillSystem(w.em, w.gs, w.cfg, w.rng, w.logger)
	skill.Reset()
	held := game.InputState{Skill: true}

	skill.Update(held)
	require.False(t, skill.Ready())
	usedAt := w.gs.Skill.LastUsedAt

	// 一直按住：冷却期间不重复释放
	for w.gs.Now < usedAt+w.cfg.SkillCooldown-w.cfg.NominalFrame {
		w.gs.Now += w.cfg.NominalFrame
		w.placeEnemy(components.EnemyNormal, 10, 10)
		skill.Update(held)
	}
	assert.Equal(t, usedAt, w.gs.Skill.LastUsedAt)
	assert.NotZero(t, countOf[*components.EnemyComponent](w.em))

	w.gs.Now = usedAt + w.cfg.SkillCooldown
	skill.Update(held)
	assert.Equal(t, w.gs.Now, w.gs.Skill.LastUsedAt, "冷却结束的那一帧立即释放")
	w.em.RemoveMarkedEntities()
	assert.Zero(t, countOf[*components.EnemyComponent](w.em))
}
