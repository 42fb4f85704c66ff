package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDifficultySteps(t *testing.T) {
	w := newShooterWorld()
	w.gs.Spawn.Interval = w.cfg.Spawn.InitialInterval
	system := NewDifficultySystem(w.gs, w.cfg, w.logger)

	// 10s / 16ms = 625 帧
	for i := 0; i < 624; i++ {
		assert.False(t, system.Update())
	}
	assert.Equal(t, 1500*time.Millisecond, w.gs.Spawn.Interval)

	assert.True(t, system.Update())
	assert.Equal(t, 1400*time.Millisecond, w.gs.Spawn.Interval)
	assert.Zero(t, w.gs.Spawn.Elapsed, "累加器归零")
}

func TestDifficultyFloor(t *testing.T) {
	w := newShooterWorld()
	w.gs.Spawn.Interval = w.cfg.Spawn.InitialInterval
	system := NewDifficultySystem(w.gs, w.cfg, w.logger)

	// 约 30 分钟的游戏时间
	for i := 0; i < 120000; i++ {
		system.Update()
		if w.gs.Spawn.Interval < w.cfg.Spawn.MinInterval {
			t.Fatalf("interval %v dropped below floor", w.gs.Spawn.Interval)
		}
	}
	assert.Equal(t, 800*time.Millisecond, w.gs.Spawn.Interval)
}
