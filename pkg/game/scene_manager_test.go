package game

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockScene 记录调用情况的场景桩
type mockScene struct {
	state       *GameState
	updateCalls int
	lastDT      time.Duration
	lastInput   InputState
}

func newMockScene(mode Mode) *mockScene {
	return &mockScene{state: NewGameState(mode, 100, 100)}
}

func (m *mockScene) Update(dt time.Duration, in InputState) {
	m.updateCalls++
	m.lastDT = dt
	m.lastInput = in
}
func (m *mockScene) State() *GameState { return m.state }
func (m *mockScene) Start() { m.state.Phase = PhaseRunning }
func (m *mockScene) TogglePause() { m.state.TogglePause() }
func (m *mockScene) Resize(w, h float64) { m.state.Arena = Arena{Width: w, Height: h} }

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager(nil)
	assert.Nil(t, sm.GetCurrentScene())
	// 没有场景时 Update 不应 panic
	sm.Update(16*time.Millisecond, InputState{})
}

func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager(nil)
	scene := newMockScene(ModeShooter)
	sm.SwitchTo(scene)

	sm.Update(16*time.Millisecond, InputState{Fire: true})

	assert.Equal(t, 1, scene.updateCalls)
	assert.Equal(t, 16*time.Millisecond, scene.lastDT)
	assert.True(t, scene.lastInput.Fire)
}

func TestSceneManagerLoadMode(t *testing.T) {
	sm := NewSceneManager(nil)
	require.Error(t, sm.LoadMode(ModeShooter), "未设置工厂")

	sm.SetSceneFactory(func(mode Mode) (Scene, error) {
		if mode == ModeAvoid {
			return nil, errors.New("boom")
		}
		return newMockScene(mode), nil
	})

	require.NoError(t, sm.LoadMode(ModeShooter))
	first := sm.GetCurrentScene()
	require.NotNil(t, first)
	assert.Equal(t, ModeShooter, first.State().Mode)

	// 创建失败时保留原场景
	assert.Error(t, sm.LoadMode(ModeAvoid))
	assert.Same(t, first, sm.GetCurrentScene())
}
