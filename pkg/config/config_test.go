package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/arcade/pkg/embedded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigsAreValid(t *testing.T) {
	require.NoError(t, DefaultShooterConfig().Validate())
	require.NoError(t, DefaultAvoidConfig().Validate())
}

func TestParseShooterConfig_Overlay(t *testing.T) {
	data := []byte(`
arenaWidth: 1024
player:
  fireInterval: 200ms
spawn:
  minInterval: 500ms
contactDamage: 40
`)
	cfg, err := ParseShooterConfig(data)
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.ArenaWidth)
	assert.Equal(t, 200*time.Millisecond, cfg.Player.FireInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Spawn.MinInterval)
	assert.Equal(t, 40, cfg.ContactDamage)

	// 未出现的字段保留默认值
	assert.Equal(t, 600.0, cfg.ArenaHeight)
	assert.Equal(t, 120.0, cfg.Player.Width)
	assert.Equal(t, 1500*time.Millisecond, cfg.Spawn.InitialInterval)
	assert.Equal(t, 100, cfg.Elite.Score)
}

func TestParseShooterConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"负宽度", "arenaWidth: -1"},
		{"精英概率越界", "spawn:\n  eliteProbability: 1.5"},
		{"下限高于初始间隔", "spawn:\n  minInterval: 2s"},
		{"初始血量超过上限", "player:\n  startHealth: 500"},
		{"敌机血量为零", "normal:\n  health: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseShooterConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestParseShooterConfig_BadYAML(t *testing.T) {
	_, err := ParseShooterConfig([]byte("player: [1, 2"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfig))
}

func TestParseAvoidConfig(t *testing.T) {
	cfg, err := ParseAvoidConfig([]byte("target:\n  reward: 25\n"))
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Target.Reward)
	assert.Equal(t, 30.0, cfg.Target.Size)

	_, err = ParseAvoidConfig([]byte("chaser:\n  width: 900\n"))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoadShooterConfig_Embedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		ShooterConfigPath: &fstest.MapFile{Data: []byte("escapePenalty: 15\n")},
	})
	t.Cleanup(embedded.Reset)

	cfg, err := LoadShooterConfig(ShooterConfigPath)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.EscapePenalty)
}

func TestLoadAvoidConfig_DiskFallback(t *testing.T) {
	embedded.Reset()
	path := filepath.Join(t.TempDir(), "avoid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("arenaWidth: 800\narenaHeight: 480\n"), 0644))

	cfg, err := LoadAvoidConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.ArenaWidth)
	assert.Equal(t, 480.0, cfg.ArenaHeight)

	_, err = LoadAvoidConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestBundledConfigFiles 仓库自带的参数表必须与默认值一致并通过校验
func TestBundledConfigFiles(t *testing.T) {
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
	t.Cleanup(embedded.Reset)

	shooter, err := LoadShooterConfig(ShooterConfigPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultShooterConfig(), shooter)

	avoid, err := LoadAvoidConfig(AvoidConfigPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultAvoidConfig(), avoid)
}
