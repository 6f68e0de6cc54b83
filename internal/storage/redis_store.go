// Package storage persists game snapshots and action logs in Redis.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/hearts/internal/game"
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/notation"
)

const (
	// Redis key 前缀
	gameKeyPrefix    = "hearts:game:"
	actionsKeyPrefix = "hearts:actions:"
	metaKeyPrefix    = "hearts:meta:"

	// 默认存档过期时间
	defaultExpiration = 24 * time.Hour
)

// ErrNotReplayable is returned when a game was not started from a known seed.
var ErrNotReplayable = errors.New("game has no recorded seed")

// GameMeta 牌局元数据，回放需要种子
type GameMeta struct {
	Seed      uint64
	Seeded    bool
	CreatedAt int64
}

// RedisStore Redis 存储
type RedisStore struct {
	client     *redis.Client
	expiration time.Duration
}

// NewRedisStore 创建 Redis 存储；expiration 为 0 时使用默认值
func NewRedisStore(client *redis.Client, expiration time.Duration) *RedisStore {
	if expiration <= 0 {
		expiration = defaultExpiration
	}
	return &RedisStore{client: client, expiration: expiration}
}

// Ping checks the connection.
func (rs *RedisStore) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

// --- 快照 ---

// SaveGame 保存快照到 Redis
func (rs *RedisStore) SaveGame(ctx context.Context, data *GameData) error {
	if data == nil {
		return nil
	}
	data.SavedAt = time.Now().Unix()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal game %s: %w", data.ID, err)
	}
	return rs.client.Set(ctx, gameKeyPrefix+data.ID, jsonData, rs.expiration).Err()
}

// SaveState snapshots s.
func (rs *RedisStore) SaveState(ctx context.Context, s *game.GameState) error {
	return rs.SaveGame(ctx, FromState(s))
}

// LoadGame 加载快照；不存在时返回 nil, nil
func (rs *RedisStore) LoadGame(ctx context.Context, id string) (*GameData, error) {
	data, err := rs.client.Get(ctx, gameKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var gd GameData
	if err := json.Unmarshal(data, &gd); err != nil {
		return nil, fmt.Errorf("unmarshal game %s: %w", id, err)
	}
	return &gd, nil
}

// LoadState loads and rebuilds the snapshot of id; nil, nil if missing.
func (rs *RedisStore) LoadState(ctx context.Context, id string) (*game.GameState, error) {
	gd, err := rs.LoadGame(ctx, id)
	if err != nil || gd == nil {
		return nil, err
	}
	return gd.ToState()
}

// DeleteGame 删除快照、动作日志和元数据
func (rs *RedisStore) DeleteGame(ctx context.Context, id string) error {
	return rs.client.Del(ctx, gameKeyPrefix+id, actionsKeyPrefix+id, metaKeyPrefix+id).Err()
}

// ListGames 获取所有存档的牌局 ID
func (rs *RedisStore) ListGames(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, gameKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(keys))
	for i, key := range keys {
		ids[i] = key[len(gameKeyPrefix):]
	}
	slices.Sort(ids)
	return ids, nil
}

// --- 动作日志 ---

// AppendAction 追加一条动作到日志
func (rs *RedisStore) AppendAction(ctx context.Context, id string, a game.Action) error {
	key := actionsKeyPrefix + id
	_, err := rs.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, notation.FormatAction(a))
		pipe.Expire(ctx, key, rs.expiration)
		return nil
	})
	return err
}

// LoadActions 读取完整动作日志
func (rs *RedisStore) LoadActions(ctx context.Context, id string) ([]game.Action, error) {
	lines, err := rs.client.LRange(ctx, actionsKeyPrefix+id, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return notation.ParseLogs(lines)
}

// --- 元数据 ---

// SaveMeta 保存元数据
func (rs *RedisStore) SaveMeta(ctx context.Context, id string, meta GameMeta) error {
	key := metaKeyPrefix + id
	data := map[string]any{
		"seeded":     meta.Seeded,
		"created_at": meta.CreatedAt,
	}
	if meta.Seeded {
		data["seed"] = strconv.FormatUint(meta.Seed, 10)
	}

	_, err := rs.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, data)
		pipe.Expire(ctx, key, rs.expiration)
		return nil
	})
	return err
}

// LoadMeta 读取元数据；不存在时返回 nil, nil
func (rs *RedisStore) LoadMeta(ctx context.Context, id string) (*GameMeta, error) {
	data, err := rs.client.HGetAll(ctx, metaKeyPrefix+id).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	meta := &GameMeta{Seeded: data["seeded"] == "1"}
	if meta.Seeded {
		if meta.Seed, err = strconv.ParseUint(data["seed"], 10, 64); err != nil {
			return nil, fmt.Errorf("meta seed: %w", err)
		}
	}
	if v := data["created_at"]; v != "" {
		if meta.CreatedAt, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("meta created_at: %w", err)
		}
	}
	return meta, nil
}

// Replay rebuilds game id from its seed and action log.
func (rs *RedisStore) Replay(ctx context.Context, id string) (*game.GameState, error) {
	meta, err := rs.LoadMeta(ctx, id)
	if err != nil {
		return nil, err
	}
	if meta == nil || !meta.Seeded {
		return nil, fmt.Errorf("%w: %s", ErrNotReplayable, id)
	}

	actions, err := rs.LoadActions(ctx, id)
	if err != nil {
		return nil, err
	}
	return game.Replay(card.NewRand(meta.Seed), id, actions)
}
