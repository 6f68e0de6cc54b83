package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/player"
)

const (
	defaultMaxActions        = 5000
	defaultBotDelayMS        = 400
	defaultBot               = "simple"
	defaultRedisAddr         = "localhost:6379"
	defaultExpirationMinutes = 24 * 60
	defaultLogLevel          = "info"
)

// Config 客户端配置
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Redis RedisConfig `yaml:"redis"`
	Log   LogConfig   `yaml:"log"`
}

// GameConfig 牌局配置
type GameConfig struct {
	Seed       *uint64  `yaml:"seed"`        // 为空时使用随机种子
	HumanSeat  int      `yaml:"human_seat"`  // -1 表示全部是机器人
	Bots       []string `yaml:"bots"`        // 每个座位的机器人类型
	MaxActions int      `yaml:"max_actions"` // 单局动作上限
	BotDelayMS int      `yaml:"bot_delay_ms"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled           bool   `yaml:"enabled"`
	Addr              string `yaml:"addr"`
	Password          string `yaml:"password"`
	DB                int    `yaml:"db"`
	ExpirationMinutes int    `yaml:"expiration_minutes"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	File        string `yaml:"file"` // 为空时写到 ~/.hearts/debug.log
}

// BotDelay 返回机器人出牌间隔
func (c *GameConfig) BotDelay() time.Duration {
	return time.Duration(c.BotDelayMS) * time.Millisecond
}

// BotKind returns the bot kind configured for s, falling back to simple.
func (c *GameConfig) BotKind(s seat.Seat) player.Kind {
	if int(s) < len(c.Bots) && c.Bots[s] != "" {
		return player.Kind(c.Bots[s])
	}
	return player.Kind(defaultBot)
}

// Expiration 返回存档过期时长
func (c *RedisConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationMinutes) * time.Minute
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Game.MaxActions == 0 {
		cfg.Game.MaxActions = defaultMaxActions
	}
	if cfg.Game.BotDelayMS == 0 {
		cfg.Game.BotDelayMS = defaultBotDelayMS
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = defaultRedisAddr
	}
	if cfg.Redis.ExpirationMinutes == 0 {
		cfg.Redis.ExpirationMinutes = defaultExpirationMinutes
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv 环境变量覆盖配置文件
func (c *Config) applyEnv() error {
	if v := os.Getenv("HEARTS_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("HEARTS_SEED: %w", err)
		}
		c.Game.Seed = &seed
	}
	if v := os.Getenv("HEARTS_HUMAN_SEAT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HEARTS_HUMAN_SEAT: %w", err)
		}
		c.Game.HumanSeat = n
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks values that have no sensible default.
func (c *Config) Validate() error {
	if c.Game.HumanSeat != -1 {
		if _, err := seat.New(c.Game.HumanSeat); err != nil {
			return fmt.Errorf("game.human_seat: %w", err)
		}
	}
	if len(c.Game.Bots) > seat.Count {
		return fmt.Errorf("game.bots: %d entries for %d seats", len(c.Game.Bots), seat.Count)
	}
	for i, kind := range c.Game.Bots {
		switch player.Kind(kind) {
		case player.KindRandom, player.KindSimple, player.KindFirst, "":
		default:
			return fmt.Errorf("game.bots[%d]: unknown bot %q", i, kind)
		}
	}
	if c.Game.MaxActions < 0 {
		return fmt.Errorf("game.max_actions must not be negative")
	}
	return nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Game: GameConfig{
			HumanSeat:  0,
			Bots:       []string{defaultBot, defaultBot, defaultBot, defaultBot},
			MaxActions: defaultMaxActions,
			BotDelayMS: defaultBotDelayMS,
		},
		Redis: RedisConfig{
			Addr:              defaultRedisAddr,
			ExpirationMinutes: defaultExpirationMinutes,
		},
		Log: LogConfig{
			Level: defaultLogLevel,
		},
	}
}
