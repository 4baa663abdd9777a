package leads

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/oreana/assistant-server/internal/assistant/model"
	errx "github.com/oreana/assistant-server/internal/core/error"
	logx "github.com/oreana/assistant-server/pkg/logger"
)

// RedisStore is the alternative lead backend: one Redis list, one record per
// element. Unlike the file backend, appends here are atomic.
type RedisStore struct {
	rdb redis.Cmdable
	key string
}

func NewRedisStore(rdb redis.Cmdable, key string) *RedisStore {
	return &RedisStore{rdb: rdb, key: key}
}

func (s *RedisStore) Append(ctx context.Context, record model.EntityRecord) error {
	b, err := sonic.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}
	if err := s.rdb.RPush(ctx, s.key, b).Err(); err != nil {
		logx.Error().Err(err).Str("key", s.key).Msg("failed to push lead to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (s *RedisStore) LoadAll(ctx context.Context) ([]model.EntityRecord, error) {
	rows, err := s.rdb.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.EntityRecord{}, nil
		}
		logx.Error().Err(err).Str("key", s.key).Msg("failed to load leads from redis")
		return nil, errx.WrapRedis(err)
	}

	records := make([]model.EntityRecord, 0, len(rows))
	for i, row := range rows {
		var rec model.EntityRecord
		if err := sonic.Unmarshal([]byte(row), &rec); err != nil {
			// corrupt entries degrade to "not there", matching the file backend
			logx.Warn().Err(err).Str("key", s.key).Int("index", i).Msg("skipping corrupt lead record")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *RedisStore) ClearAll(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		logx.Error().Err(err).Str("key", s.key).Msg("failed to delete leads from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.LeadRepository = (*RedisStore)(nil)
