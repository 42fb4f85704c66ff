package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/arcade/pkg/config"
	"github.com/decker502/arcade/pkg/embedded"
	"github.com/decker502/arcade/pkg/game"
	"github.com/decker502/arcade/pkg/scenes"
	"github.com/decker502/arcade/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want command
	}{
		{"方向键上", tcell.KeyUp, 0, cmdUp},
		{"W", tcell.KeyRune, 'w', cmdUp},
		{"D", tcell.KeyRune, 'D', cmdRight},
		{"空格射击", tcell.KeyRune, ' ', cmdFire},
		{"E 必杀技", tcell.KeyRune, 'e', cmdSkill},
		{"Tab 必杀技", tcell.KeyTab, 0, cmdSkill},
		{"P 暂停", tcell.KeyRune, 'p', cmdPause},
		{"Enter 开始", tcell.KeyEnter, 0, cmdStart},
		{"Esc 退出", tcell.KeyEscape, 0, cmdQuit},
		{"未绑定", tcell.KeyRune, 'z', cmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyCommand(tt.key, tt.ch))
		})
	}
}

func TestControls_HeldWindow(t *testing.T) {
	ctl := newControls()
	t0 := time.Unix(0, 0)

	ctl.press(cmdLeft, t0)
	ctl.press(cmdFire, t0)

	in, _, _ := ctl.frame(t0.Add(100 * time.Millisecond))
	assert.True(t, in.Left)
	assert.True(t, in.Fire)
	assert.False(t, in.Right)

	in, _, _ = ctl.frame(t0.Add(holdWindow))
	assert.False(t, in.Left, "超过按住窗口视为松开")
}

func TestControls_EdgesClearedAfterFrame(t *testing.T) {
	ctl := newControls()
	now := time.Unix(0, 0)

	ctl.press(cmdSkill, now)
	ctl.press(cmdStart, now)
	ctl.press(cmdPause, now)

	in, start, pause := ctl.frame(now)
	assert.True(t, in.Skill)
	assert.True(t, start)
	assert.True(t, pause)

	in, start, pause = ctl.frame(now)
	assert.False(t, in.Skill)
	assert.False(t, start)
	assert.False(t, pause)
}

func TestControls_Pointer(t *testing.T) {
	ctl := newControls()
	ctl.pointer(120, 80, false)

	in, _, _ := ctl.frame(time.Unix(0, 0))
	assert.True(t, in.PointerActive)
	assert.Equal(t, 120.0, in.PointerX)
	assert.Equal(t, 80.0, in.PointerY)

	ctl.pointer(0, 0, true)
	in, _, _ = ctl.frame(time.Unix(0, 0))
	assert.False(t, in.PointerActive)
}

func TestViewport_Mapping(t *testing.T) {
	v := newViewport(80, 25, game.Arena{Width: 800, Height: 600})

	col, row := v.toCell(0, 0)
	assert.Equal(t, 0, col)
	assert.Equal(t, hudRows, row)

	col, row = v.toCell(795, 599)
	assert.Equal(t, 79, col)
	assert.Equal(t, 24, row)

	x, y := v.toArena(40, hudRows+12)
	assert.InDelta(t, 405.0, x, 1e-9)
	assert.InDelta(t, 312.5, y, 1e-9)
}

func TestViewport_FillRectClipsAndCoversOneCell(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(20, 11)

	v := newViewport(20, 11, game.Arena{Width: 200, Height: 100})

	// 小于一格的矩形至少占一格
	v.fillRect(s, utils.Rect{X: 55, Y: 55, Width: 1, Height: 1}, 'x', tcell.StyleDefault)
	r, _, _, _ := s.GetContent(5, hudRows+5)
	assert.Equal(t, 'x', r)

	// 超出竞技场的部分被裁掉，HUD 行保持不变
	v.fillRect(s, utils.Rect{X: -50, Y: -50, Width: 70, Height: 60}, 'o', tcell.StyleDefault)
	r, _, _, _ = s.GetContent(0, 0)
	assert.NotEqual(t, 'o', r)
	r, _, _, _ = s.GetContent(1, hudRows)
	assert.Equal(t, 'o', r)
}

func TestPercentBar(t *testing.T) {
	assert.Equal(t, "[#####-----]", percentBar(50, 10))
	assert.Equal(t, "[----------]", percentBar(-5, 10))
	assert.Equal(t, "[##########]", percentBar(150, 10))
}

func TestFacingArrow(t *testing.T) {
	assert.Equal(t, '>', facingArrow(0))
	assert.Equal(t, 'v', facingArrow(math.Pi/2))
	assert.Equal(t, '<', facingArrow(math.Pi))
	assert.Equal(t, '^', facingArrow(3*math.Pi/2))
	assert.Equal(t, '^', facingArrow(-math.Pi/2))
}

func TestDraw_ShooterStartPanel(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(80, 25)

	scene, err := scenes.New(game.ModeShooter, scenes.Options{Seed: "tty"})
	require.NoError(t, err)

	draw(s, scene)

	assert.Equal(t, "SCORE 0", readRow(s, 0, 7))
	lines := game.BuildHUD(scene.State(), 0, 0).PanelLines
	require.Len(t, lines, 1)
	v := newViewport(80, 25, scene.State().Arena)
	row := hudRows + (v.rows-1)/2
	col := (80 - len(lines[0])) / 2
	assert.Equal(t, lines[0], readRowFrom(s, col, row, len(lines[0])))
}

func readRow(s tcell.Screen, row, n int) string {
	return readRowFrom(s, 0, row, n)
}

func readRowFrom(s tcell.Screen, col, row, n int) string {
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		r, _, _, _ := s.GetContent(col+i, row)
		out = append(out, r)
	}
	return string(out)
}

func TestSceneOptions_UsesBundledTables(t *testing.T) {
	// 与桌面端相同的读取路径：data FS + 默认参数表路径
	embedded.Init(os.DirFS("../.."))
	t.Cleanup(embedded.Reset)

	wantShooter, err := config.LoadShooterConfig(config.ShooterConfigPath)
	require.NoError(t, err)
	wantAvoid, err := config.LoadAvoidConfig(config.AvoidConfigPath)
	require.NoError(t, err)

	opts, err := sceneOptions(game.ModeShooter, "")
	require.NoError(t, err)
	assert.Equal(t, wantShooter, opts.Shooter)
	assert.Nil(t, opts.Avoid)

	opts, err = sceneOptions(game.ModeAvoid, "")
	require.NoError(t, err)
	assert.Equal(t, wantAvoid, opts.Avoid)
}

func TestSceneOptions_ConfigPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avoid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("arenaWidth: 300\n"), 0o644))

	opts, err := sceneOptions(game.ModeAvoid, path)
	require.NoError(t, err)
	assert.Equal(t, 300.0, opts.Avoid.ArenaWidth)

	_, err = sceneOptions(game.ModeShooter, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
