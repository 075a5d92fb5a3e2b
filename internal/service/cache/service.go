package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	profileKeyPrefix  = "styleengine:profile:"
	industryKeyPrefix = "styleengine:industry:"

	industryTTL = 10 * time.Minute
)

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Service is a thin Redis wrapper for the engine's two read caches: computed
// profile snapshots and industry defaults. Both are short-lived derived data;
// the engine stays correct with the cache completely unavailable.
type Service struct {
	client *redis.Client
	logger *zap.Logger
}

func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &Service{client: client, logger: logger}, nil
}

func (s *Service) get(ctx context.Context, key string, dest any) (bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		s.logger.Error("Cache get failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("get failed", "get", key, err)
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		s.logger.Error("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("unmarshal failed", "get", key, err)
	}
	return true, nil
}

func (s *Service) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}
	if err := s.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		s.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("set failed", "set", key, err)
	}
	return nil
}

// GetProfileSnapshot returns a cached profile computation, keyed by project id
// plus answers fingerprint. A miss or a cache failure both read as "recompute".
func (s *Service) GetProfileSnapshot(ctx context.Context, fingerprint string) (*domain.StyleProfile, bool) {
	var profile domain.StyleProfile
	found, err := s.get(ctx, profileKeyPrefix+fingerprint, &profile)
	if err != nil || !found {
		return nil, false
	}
	return &profile, true
}

func (s *Service) SetProfileSnapshot(ctx context.Context, fingerprint string, profile *domain.StyleProfile, ttl time.Duration) {
	if err := s.set(ctx, profileKeyPrefix+fingerprint, profile, ttl); err != nil {
		s.logger.Warn("Failed to cache profile snapshot", zap.Error(err))
	}
}

func (s *Service) GetIndustryDefaults(ctx context.Context, industry domain.IndustryCategory) (*domain.IndustryDefaults, bool) {
	var defaults domain.IndustryDefaults
	found, err := s.get(ctx, industryKeyPrefix+string(industry), &defaults)
	if err != nil || !found {
		return nil, false
	}
	return &defaults, true
}

func (s *Service) SetIndustryDefaults(ctx context.Context, defaults *domain.IndustryDefaults) {
	if defaults == nil {
		return
	}
	if err := s.set(ctx, industryKeyPrefix+string(defaults.Industry), defaults, industryTTL); err != nil {
		s.logger.Warn("Failed to cache industry defaults", zap.Error(err))
	}
}

// InvalidateIndustryDefaults drops the cached aggregate after an update so the
// next read sees the new row.
func (s *Service) InvalidateIndustryDefaults(ctx context.Context, industry domain.IndustryCategory) {
	if err := s.client.Del(ctx, industryKeyPrefix+string(industry)).Err(); err != nil {
		s.logger.Warn("Failed to invalidate industry defaults", zap.String("industry", string(industry)), zap.Error(err))
	}
}

func (s *Service) IsConnected(ctx context.Context) bool {
	return s.client.Ping(ctx).Err() == nil
}

func (s *Service) Close() error {
	if err := s.client.Close(); err != nil {
		s.logger.Error("Failed to close Redis connection", zap.Error(err))
		return err
	}
	s.logger.Info("Redis disconnected")
	return nil
}
