package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/entities"
	"github.com/decker502/arcade/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type avoidWorld struct {
	em      *ecs.EntityManager
	gs      *game.GameState
	cfg     *config.AvoidConfig
	chaser  ecs.EntityID
	target  ecs.EntityID
	targets *TargetSpawnSystem
	steer   *ChaserSteeringSystem
	collide *AvoidCollisionSystem
}

func newAvoidWorld() *avoidWorld {
	cfg := config.DefaultAvoidConfig()
	gs := game.NewGameState(game.ModeAvoid, cfg.ArenaWidth, cfg.ArenaHeight)
	gs.Phase = game.PhaseRunning
	em := ecs.NewEntityManager()
	targets := NewTargetSpawnSystem(em, gs, cfg, rand.New(rand.NewSource(7)))

	w := &avoidWorld{
		em:      em,
		gs:      gs,
		cfg:     cfg,
		chaser:  entities.NewChaser(em, cfg, gs.Arena.Width, gs.Arena.Height),
		targets: targets,
		steer:   NewChaserSteeringSystem(em, gs),
		collide: NewAvoidCollisionSystem(em, gs, targets, zap.NewNop()),
	}
	w.target = targets.Ensure()
	return w
}

func pointerAt(x, y float64) game.InputState {
	return game.InputState{PointerActive: true, PointerX: x, PointerY: y}
}

func TestChaserMovesAtFixedSpeed(t *testing.T) {
	w := newAvoidWorld()
	setPosition(w.em, w.target, 30, 30)

	w.steer.Update(pointerAt(300+30, 200+40))

	x, y := positionOf(w.em, w.chaser)
	assert.InDelta(t, 300+3, x, 1e-9)
	assert.InDelta(t, 200+4, y, 1e-9)
}

func TestChaserJitterGuard(t *testing.T) {
	w := newAvoidWorld()

	w.steer.Update(pointerAt(303, 204)) // 距离正好等于速度
	x, y := positionOf(w.em, w.chaser)
	assert.Equal(t, 303.0, x)
	assert.Equal(t, 204.0, y)

	// 停在指针上之后不再移动
	w.steer.Update(pointerAt(303, 204))
	x, y = positionOf(w.em, w.chaser)
	assert.Equal(t, 303.0, x)
	assert.Equal(t, 204.0, y)
}

func TestChaserIdleWithoutPointer(t *testing.T) {
	w := newAvoidWorld()
	w.steer.Update(game.InputState{Up: true})
	x, y := positionOf(w.em, w.chaser)
	assert.Equal(t, 300.0, x)
	assert.Equal(t, 200.0, y)
}

func TestChaserFacesAwayFromTarget(t *testing.T) {
	w := newAvoidWorld()
	// 方块中心在鱼头正右方
	setPosition(w.em, w.target, 400-15, 200-15)

	w.steer.Update(game.InputState{})

	chaser, _ := ecs.GetComponent[*components.ChaserComponent](w.em, w.chaser)
	assert.InDelta(t, math.Pi, chaser.Facing, 1e-9, "atan2(0, 100) + π")

	// 方块在正下方
	setPosition(w.em, w.target, 300-15, 300-15)
	w.steer.Update(game.InputState{})
	assert.InDelta(t, math.Pi/2+math.Pi, chaser.Facing, 1e-9)
}

func TestChaserClampedToArena(t *testing.T) {
	w := newAvoidWorld()
	for i := 0; i < 200; i++ {
		w.steer.Update(pointerAt(-100, -100))
	}
	x, y := positionOf(w.em, w.chaser)
	assert.Equal(t, 30.0, x)
	assert.Equal(t, 20.0, y)
}

// 鱼头在中心，方块在已知位置；指针移到方块上后得分 +10，方块移动到留边区域内
func TestChaserReachesTarget(t *testing.T) {
	w := newAvoidWorld()
	setPosition(w.em, w.target, 400, 200)

	for i := 0; i < 40 && w.gs.Score == 0; i++ {
		w.steer.Update(pointerAt(415, 215))
		require.False(t, w.collide.Update())
	}

	assert.Equal(t, 10, w.gs.Score)
	x, y := positionOf(w.em, w.target)
	assert.GreaterOrEqual(t, x, 30.0)
	assert.Less(t, x, 570.0)
	assert.GreaterOrEqual(t, y, 30.0)
	assert.Less(t, y, 370.0)
	assert.Equal(t, 1, countOf[*components.TargetComponent](w.em), "始终只有一个方块")
}

func TestChaserTouchingEdgeEndsRun(t *testing.T) {
	w := newAvoidWorld()
	setPosition(w.em, w.target, 400, 300)

	for i := 0; i < 10; i++ {
		w.steer.Update(pointerAt(300, 100))
		assert.False(t, w.collide.Update())
	}

	// 向左拖到边缘：限制后鱼头刚好贴边，本局结束
	for i := 0; i < 100; i++ {
		w.steer.Update(pointerAt(0, 100))
		if w.collide.Update() {
			x, _ := positionOf(w.em, w.chaser)
			assert.Equal(t, 30.0, x)
			return
		}
	}
	t.Fatal("chaser reached the edge without ending the run")
}

func TestTargetEnsureCreatesOnce(t *testing.T) {
	w := newAvoidWorld()
	assert.Equal(t, w.target, w.targets.Ensure())
	assert.Equal(t, 1, countOf[*components.TargetComponent](w.em))
}
