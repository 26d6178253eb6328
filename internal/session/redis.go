package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type sessionData struct {
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisStore keeps sessions in Redis under session:<token> with a TTL.
type RedisStore struct {
	client *redis.Client
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func RedisConfigFromEnv() *RedisConfig {
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}
	return &RedisConfig{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}
}

func NewRedisStore(cfg *RedisConfig) (*RedisStore, error) {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	log.Printf("[session] redis store connected to %s (db %d)", addr, cfg.DB)
	return &RedisStore{client: rdb}, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	data, err := json.Marshal(sessionData{UserID: userID, CreatedAt: time.Now()})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(token), data, ttl).Err(); err != nil {
		return "", fmt.Errorf("set session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (uint, error) {
	raw, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get session: %w", err)
	}

	var data sessionData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return 0, fmt.Errorf("unmarshal session: %w", err)
	}
	return data.UserID, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
