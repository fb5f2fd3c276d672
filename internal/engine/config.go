package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/spf13/viper"
)

// Config хранит параметры запуска.
type Config struct {
	// Seed задаёт генерацию мира, спавн и ИИ. 0 значит "взять от часов".
	Seed int64 `mapstructure:"seed"`

	Window WindowConfig `mapstructure:"window"`
	Spawn  SpawnConfig  `mapstructure:"spawn"`

	DamageCooldownMs int    `mapstructure:"damage_cooldown_ms"`
	AssetsDir        string `mapstructure:"assets_dir"`

	Log LogConfig `mapstructure:"log"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type SpawnConfig struct {
	MaxSlimes  int `mapstructure:"max_slimes"`
	IntervalMs int `mapstructure:"interval_ms"`
	Radius     int `mapstructure:"radius"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func (c Config) SpawnInterval() time.Duration {
	return time.Duration(c.Spawn.IntervalMs) * time.Millisecond
}

func (c Config) DamageCooldown() time.Duration {
	return time.Duration(c.DamageCooldownMs) * time.Millisecond
}

// NewConfig возвращает встроенные значения по умолчанию с сидом от часов.
// Окружение не читается, поэтому ошибка здесь невозможна.
func NewConfig() Config {
	cfg, err := load(newViper(false))
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

// LoadConfig читает значения по умолчанию, затем необязательный YAML по path,
// затем переменные окружения SHOOTER_* (например SHOOTER_SPAWN_MAX_SLIMES).
func LoadConfig(path string) (Config, error) {
	v := newViper(true)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return load(v)
}

func newViper(withEnv bool) *viper.Viper {
	v := viper.New()

	v.SetDefault("seed", 0)
	v.SetDefault("window.width", domain.ScreenWidth)
	v.SetDefault("window.height", domain.ScreenHeight)
	v.SetDefault("window.title", "Slime Survival")
	v.SetDefault("spawn.max_slimes", domain.DefaultMaxSlimes)
	v.SetDefault("spawn.interval_ms", domain.DefaultSpawnInterval.Milliseconds())
	v.SetDefault("spawn.radius", domain.DefaultSpawnRadius)
	v.SetDefault("damage_cooldown_ms", domain.DefaultDamageCooldown.Milliseconds())
	v.SetDefault("assets_dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if withEnv {
		v.SetEnvPrefix("SHOOTER")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}
	return v
}

func load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Spawn.MaxSlimes < 0 || c.Spawn.IntervalMs < 0 || c.Spawn.Radius < 0 {
		return fmt.Errorf("spawn settings must not be negative: %+v", c.Spawn)
	}
	if c.DamageCooldownMs < 0 {
		return fmt.Errorf("damage_cooldown_ms must not be negative: %d", c.DamageCooldownMs)
	}
	return nil
}
