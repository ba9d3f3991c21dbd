package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/algo/xerrors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "algocheck.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version = "1.2.0"

[log]
level = "debug"

[check]
seed = 42
rounds = 5
timeout = "3s"
scenarios = ["beats-chmin", "dsu-equivalence"]
`)
	t.Setenv("APP_CHECK_OPS", "77")

	var cfg Config
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, "1.2.0", cfg.Version)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, uint64(42), cfg.Check.Seed)
	assert.Equal(t, 5, cfg.Check.Rounds)
	assert.Equal(t, 77, cfg.Check.Ops)
	assert.Equal(t, 3*time.Second, cfg.Check.Timeout)
	assert.Equal(t, []string{"beats-chmin", "dsu-equivalence"}, cfg.Check.Scenarios)

	// 文件中未出现的键取默认值。
	d := Default()
	assert.Equal(t, d.Check.MaxLen, cfg.Check.MaxLen)
	assert.Equal(t, d.Check.Parallelism, cfg.Check.Parallelism)
	assert.Equal(t, d.Log.MaxSize, cfg.Log.MaxSize)
	assert.Equal(t, 42, GetViper().GetInt("check.seed"))
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero parallelism", "[check]\nparallelism = 0\n"},
		{"max len too large", "[check]\nmax_len = 100000\n"},
		{"unknown level", "[log]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			err := Load(writeConfig(t, tt.body), &cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			e, ok := xerrors.FromError(err)
			require.True(t, ok)
			assert.Equal(t, xerrors.ErrInvalidArg, e.Type)
		})
	}

	var cfg Config
	require.Error(t, Load(filepath.Join(t.TempDir(), "missing.toml"), &cfg))
}

func TestMask(t *testing.T) {
	m := map[string]any{
		"Version": "1",
		"Remote": map[string]any{
			"AuthToken": "abc",
			"Endpoint":  "http://example",
		},
		"Shards": []any{map[string]any{"Password": "p"}},
	}
	mask(m)
	assert.Equal(t, "1", m["Version"])
	assert.Equal(t, "******", m["Remote"].(map[string]any)["AuthToken"])
	assert.Equal(t, "http://example", m["Remote"].(map[string]any)["Endpoint"])
	assert.Equal(t, "******", m["Shards"].([]any)[0].(map[string]any)["Password"])
}

func TestRegisterReloadHook(t *testing.T) {
	before := len(onReload)
	RegisterReloadHook(nil)
	assert.Len(t, onReload, before)
	RegisterReloadHook(func(*Config) {})
	assert.Len(t, onReload, before+1)
	onReload = onReload[:before]
}

func TestReloadReplacesTargetAndRunsHooks(t *testing.T) {
	path := writeConfig(t, "[check]\nrounds = 3\n")
	var cfg Config
	require.NoError(t, Load(path, &cfg))
	require.Equal(t, 3, cfg.Check.Rounds)

	before := len(onReload)
	t.Cleanup(func() { onReload = onReload[:before] })
	var got []int
	RegisterReloadHook(func(c *Config) {
		got = append(got, c.Check.Rounds)
		c.Check.Rounds = -1 // 回调拿到的是副本。
	})

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(writeConfig(t, "[check]\nrounds = 9\n"))
	require.NoError(t, v.ReadInConfig())
	validate := validator.New()

	// 读取方、注册方与热更新并发运行。
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			snap := Snapshot(&cfg)
			assert.Contains(t, []int{3, 9}, snap.Check.Rounds)
		}()
		go func() {
			defer wg.Done()
			RegisterReloadHook(func(*Config) {})
		}()
	}
	require.NoError(t, reload(v, validate, &cfg))
	wg.Wait()

	assert.Equal(t, 9, Snapshot(&cfg).Check.Rounds)
	assert.Equal(t, []int{9}, got)

	// 校验失败时目标保持不变。
	bad := viper.New()
	bad.SetConfigFile(writeConfig(t, "[check]\nparallelism = 0\nrounds = 1\nmax_len = 1\nops = 1\n"))
	require.NoError(t, bad.ReadInConfig())
	err := reload(bad, validate, &cfg)
	require.Error(t, err)
	assert.Equal(t, 9, cfg.Check.Rounds)

	require.Error(t, reload(v, validate, cfg))
}
