package systems

import (
	"testing"

	"github.com/decker502/arcade/pkg/game"
	"github.com/stretchr/testify/assert"
)

func TestPlayerMovementKeys(t *testing.T) {
	w := newShooterWorld()
	player := w.addPlayer(200)
	system := NewPlayerMovementSystem(w.em, w.gs)
	x0, y0 := positionOf(w.em, player)

	system.Update(game.InputState{Left: true, Up: true})

	x, y := positionOf(w.em, player)
	assert.Equal(t, x0-5, x)
	assert.Equal(t, y0-5, y)
}

func TestPlayerMovementClamped(t *testing.T) {
	w := newShooterWorld()
	player := w.addPlayer(200)
	system := NewPlayerMovementSystem(w.em, w.gs)

	for i := 0; i < 500; i++ {
		system.Update(game.InputState{Right: true, Down: true})
	}
	x, y := positionOf(w.em, player)
	assert.Equal(t, 800-120.0, x)
	assert.Equal(t, 600-120.0, y)

	for i := 0; i < 500; i++ {
		system.Update(game.InputState{Left: true, Up: true})
	}
	x, y = positionOf(w.em, player)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestPlayerPointerOverridesKeys(t *testing.T) {
	w := newShooterWorld()
	player := w.addPlayer(200)
	system := NewPlayerMovementSystem(w.em, w.gs)

	system.Update(game.InputState{Left: true, PointerActive: true, PointerX: 300, PointerY: 200})

	x, y := positionOf(w.em, player)
	assert.Equal(t, 240.0, x, "战机中心对准指针")
	assert.Equal(t, 140.0, y)

	// 指针在边缘时仍被限制在竞技场内
	system.Update(game.InputState{PointerActive: true, PointerX: 5, PointerY: 599})
	x, y = positionOf(w.em, player)
	assert.Zero(t, x)
	assert.Equal(t, 480.0, y)
}
