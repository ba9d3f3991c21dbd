// Package config 提供了统一的配置加载与管理能力：viper 读取 TOML 与 APP_ 前缀的环境变量，
// validator 校验，fsnotify 监听文件变化并热更新日志级别。
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/wyfcoding/algo/logging"
	"github.com/wyfcoding/algo/xerrors"
)

// Config 全局顶级配置结构.
type Config struct {
	Version string      `mapstructure:"version" toml:"version"`
	Log     LogConfig   `mapstructure:"log"     toml:"log"`
	Check   CheckConfig `mapstructure:"check"   toml:"check"`
}

// LogConfig 定义日志输出、级别与切割策略.
type LogConfig struct {
	Level      string `mapstructure:"level"       toml:"level"       validate:"omitempty,oneof=debug info warn error"` // 日志级别。
	File       string `mapstructure:"file"        toml:"file"`                                                         // 日志文件路径，为空只输出到 stdout。
	MaxSize    int    `mapstructure:"max_size"    toml:"max_size"    validate:"min=0"`                                 // 单个文件最大尺寸 (MB)。
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" validate:"min=0"`                                 // 保留旧文件个数。
	MaxAge     int    `mapstructure:"max_age"     toml:"max_age"     validate:"min=0"`                                 // 保留旧文件天数。
	Compress   bool   `mapstructure:"compress"    toml:"compress"`                                                     // 是否压缩旧文件。
}

// CheckConfig 自检场景的运行参数.
type CheckConfig struct {
	Seed        uint64        `mapstructure:"seed"        toml:"seed"`
	Rounds      int           `mapstructure:"rounds"      toml:"rounds"      validate:"min=1"`
	MaxLen      int           `mapstructure:"max_len"     toml:"max_len"     validate:"min=1,max=65536"`
	Ops         int           `mapstructure:"ops"         toml:"ops"         validate:"min=1"`
	Parallelism int           `mapstructure:"parallelism" toml:"parallelism" validate:"min=1"`
	Timeout     time.Duration `mapstructure:"timeout"     toml:"timeout"     validate:"min=0"`
	Scenarios   []string      `mapstructure:"scenarios"   toml:"scenarios"`
}

// Default 返回未提供配置文件时使用的默认配置.
func Default() Config {
	return Config{
		Version: "dev",
		Log:     LogConfig{Level: "info", MaxSize: 100, MaxBackups: 3, MaxAge: 7},
		Check: CheckConfig{
			Seed:        1,
			Rounds:      20,
			MaxLen:      64,
			Ops:         200,
			Parallelism: 4,
			Timeout:     30 * time.Second,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("version", d.Version)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("check.seed", d.Check.Seed)
	v.SetDefault("check.rounds", d.Check.Rounds)
	v.SetDefault("check.max_len", d.Check.MaxLen)
	v.SetDefault("check.ops", d.Check.Ops)
	v.SetDefault("check.parallelism", d.Check.Parallelism)
	v.SetDefault("check.timeout", d.Check.Timeout)
}

var (
	// mu 保护 vInstance、onReload 以及 Load 的目标对象在热更新时的写入。
	mu        sync.RWMutex
	vInstance = viper.New()
	onReload  []func(*Config)
)

// RegisterReloadHook 注册配置热更新回调。可以在 Load 之前或之后调用，
// 回调收到的是本次更新的私有副本。
func RegisterReloadHook(hook func(*Config)) {
	if hook == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	onReload = append(onReload, hook)
}

// Snapshot 在读锁下复制 conf，热更新可能并发写入时用它读取配置。
func Snapshot[T any](conf *T) T {
	mu.RLock()
	defer mu.RUnlock()
	return *conf
}

// Load 读取配置文件、应用环境变量覆盖并校验，随后监听文件变化。
// 未在文件中出现的键取 Default 中的值。
// conf 必须是指向结构体的指针。热更新把新配置整体写回 conf，读取方应使用 Snapshot。
func Load(path string, conf any) error {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config error: %w", err)
	}

	if err := v.Unmarshal(conf); err != nil {
		return fmt.Errorf("unmarshal config error: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(conf); err != nil {
		return xerrors.Wrap(err, xerrors.ErrInvalidArg, "config validation failed")
	}

	mu.Lock()
	vInstance = v
	mu.Unlock()

	v.WatchConfig()
	v.OnConfigChange(func(event fsnotify.Event) {
		slog.Info("detecting config change", "file", event.Name)
		const debounceTimeout = 500 * time.Millisecond
		time.Sleep(debounceTimeout)

		if err := reload(v, validate, conf); err != nil {
			slog.Error("config reload rejected", "error", err)
		}
	})

	return nil
}

// reload 把 v 的当前内容解码到一个新对象，校验通过后在写锁下整体替换 conf，
// 之后在锁外依次执行回调。失败时 conf 保持不变。
func reload(v *viper.Viper, validate *validator.Validate, conf any) error {
	target := reflect.ValueOf(conf)
	if target.Kind() != reflect.Ptr || target.IsNil() {
		return fmt.Errorf("reload target must be a non-nil pointer, got %T", conf)
	}
	fresh := reflect.New(target.Elem().Type())
	if err := v.Unmarshal(fresh.Interface()); err != nil {
		return fmt.Errorf("unmarshal config error: %w", err)
	}
	if err := validate.Struct(fresh.Interface()); err != nil {
		return xerrors.Wrap(err, xerrors.ErrInvalidArg, "config validation failed")
	}

	mu.Lock()
	target.Elem().Set(fresh.Elem())
	hooks := slices.Clone(onReload)
	mu.Unlock()

	applyLogLevel(fresh.Interface())
	slog.Info("config hot-reloaded and validated successfully")

	if cfg, ok := fresh.Interface().(*Config); ok {
		for _, hook := range hooks {
			c := *cfg
			hook(&c)
		}
	}
	return nil
}

// applyLogLevel 把配置中的 Log.Level 同步到全局日志级别，conf 不是 *Config 时按字段名反射查找。
func applyLogLevel(conf any) {
	if c, ok := conf.(*Config); ok {
		logging.SetLevel(c.Log.Level)
		return
	}
	val := reflect.ValueOf(conf)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return
	}
	logField := val.FieldByName("Log")
	if logField.IsValid() && logField.Kind() == reflect.Struct {
		levelField := logField.FieldByName("Level")
		if levelField.IsValid() && levelField.Kind() == reflect.String {
			logging.SetLevel(levelField.String())
		}
	}
}

// PrintWithMask 脱敏打印当前配置.
func PrintWithMask(conf any) {
	data, err := json.Marshal(conf)
	if err != nil {
		slog.Error("failed to marshal config for printing", "error", err)

		return
	}

	var configMap map[string]any
	if unmarshalErr := json.Unmarshal(data, &configMap); unmarshalErr != nil {
		slog.Error("failed to unmarshal config for masking", "error", unmarshalErr)

		return
	}

	mask(configMap)

	maskedJSON, marshalErr := json.MarshalIndent(configMap, "  ", "  ")
	if marshalErr != nil {
		slog.Error("failed to marshal masked config", "error", marshalErr)

		return
	}

	slog.Info("Current effective configuration", "config", string(maskedJSON))
}

func mask(configMap map[string]any) {
	sensitiveKeys := []string{"password", "secret", "dsn", "key", "token"}

	for key, val := range configMap {
		if subMap, ok := val.(map[string]any); ok {
			mask(subMap)

			continue
		}

		if slice, ok := val.([]any); ok {
			for _, item := range slice {
				if itemMap, ok := item.(map[string]any); ok {
					mask(itemMap)
				}
			}

			continue
		}

		for _, sensitiveKey := range sensitiveKeys {
			if strings.Contains(strings.ToLower(key), sensitiveKey) {
				configMap[key] = "******"

				break
			}
		}
	}
}

// GetViper 返回底层的 Viper 实例.
func GetViper() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return vInstance
}
