package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/palemoky/hearts/internal/config"
	"github.com/palemoky/hearts/internal/game"
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/logger"
	"github.com/palemoky/hearts/internal/player"
	"github.com/palemoky/hearts/internal/storage"
	"github.com/palemoky/hearts/internal/table"
	"github.com/palemoky/hearts/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	seedFlag := flag.Uint64("seed", 0, "发牌随机种子（不指定时随机）")
	auto := flag.Bool("auto", false, "四个机器人自动对局，不启动界面")
	redisAddr := flag.String("redis", "", "Redis 地址，指定后记录牌局")
	replayID := flag.String("replay", "", "从 Redis 回放指定牌局并输出结果")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Game.Seed = seedFlag
		}
	})
	if *redisAddr != "" {
		cfg.Redis.Enabled = true
		cfg.Redis.Addr = *redisAddr
	}

	var zl *zap.Logger
	closeLog := func() {}
	if *auto || *replayID != "" {
		zl, err = logger.NewConsole(cfg.Log)
	} else {
		zl, closeLog, err = logger.New(cfg.Log)
	}
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer closeLog()
	defer logger.Recover(zl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := newStore(ctx, cfg.Redis, zl)

	if *replayID != "" {
		if err := replay(ctx, store, *replayID); err != nil {
			zl.Error("replay failed", zap.String("game_id", *replayID), zap.Error(err))
			os.Exit(1)
		}
		return
	}

	seed := card.NewEntropyRand().Uint64()
	if cfg.Game.Seed != nil {
		seed = *cfg.Game.Seed
	}
	rng := card.NewRand(seed)
	g := game.NewGame(rng, "")
	zl.Info("game created", zap.String("game_id", g.ID), zap.Uint64("seed", seed))

	human := seat.Seat(cfg.Game.HumanSeat)
	if *auto {
		human = -1
	}
	players, err := newPlayers(&cfg.Game, human, seed)
	if err != nil {
		zl.Fatal("create players", zap.Error(err))
	}

	opts := []table.Option{table.WithLogger(zl), table.WithMaxActions(cfg.Game.MaxActions)}
	if store != nil {
		meta := storage.GameMeta{Seed: seed, Seeded: true, CreatedAt: time.Now().Unix()}
		if err := store.SaveMeta(ctx, g.ID, meta); err != nil {
			zl.Warn("save meta failed", zap.Error(err))
		}
		opts = append(opts, table.WithStore(store))
	}
	tbl := table.New(g, players, rng, opts...)

	if *auto {
		final, err := tbl.Run(ctx)
		if err != nil {
			zl.Error("game stopped", zap.Error(err))
			os.Exit(1)
		}
		printScores(final)
		return
	}

	if err := ui.Run(ui.NewModel(tbl, human, cfg.Game.BotDelay(), zl)); err != nil {
		log.Fatalf("启动界面时出错: %v", err)
	}
}

// newPlayers 为每个非人类座位创建机器人，机器人使用独立的随机源
func newPlayers(cfg *config.GameConfig, human seat.Seat, seed uint64) ([seat.Count]player.Player, error) {
	var players [seat.Count]player.Player
	for _, s := range seat.All {
		if s == human {
			continue
		}
		p, err := player.New(cfg.BotKind(s), card.NewRand(seed+uint64(s)+1))
		if err != nil {
			return players, fmt.Errorf("seat %s: %w", s, err)
		}
		players[s] = p
	}
	return players, nil
}

// newStore 连接 Redis；未启用或连接失败时返回 nil，牌局照常进行
func newStore(ctx context.Context, cfg config.RedisConfig, zl *zap.Logger) *storage.RedisStore {
	if !cfg.Enabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	store := storage.NewRedisStore(client, cfg.Expiration())

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		zl.Warn("redis unavailable, game will not be recorded", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = client.Close()
		return nil
	}
	zl.Info("redis connected", zap.String("addr", cfg.Addr))
	return store
}

func replay(ctx context.Context, store *storage.RedisStore, id string) error {
	if store == nil {
		return fmt.Errorf("replay needs redis (-redis or redis.enabled)")
	}
	g, err := store.Replay(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("game %s: phase %s, round %d\n", g.ID, g.Phase, g.Round+1)
	printScores(g)
	return nil
}

func printScores(g *game.GameState) {
	for _, s := range seat.All {
		fmt.Printf("%s: %d\n", s, g.Score(s))
	}
	if g.Phase == game.PhaseGameEnd {
		fmt.Printf("winners: %v\n", g.Winners())
	}
}
