package services

import (
	"sync"

	"github.com/go-redis/redis/v8"
	"golang.org/x/net/context"
)

// 计时器状态在存储中的固定键名
const TimerStateKey = "timer_state"

// TimerStore 计时器状态持久化接口，整个进程只占用一个槽位
// Load 在槽位为空时返回 (nil, nil)
type TimerStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// RedisTimerStore 基于Redis的计时器状态存储
type RedisTimerStore struct {
	Client *redis.Client
	Key    string
}

// NewRedisTimerStore 创建Redis计时器状态存储
func NewRedisTimerStore(client *redis.Client) *RedisTimerStore {
	return &RedisTimerStore{Client: client, Key: TimerStateKey}
}

func (s *RedisTimerStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.Client.Get(ctx, s.Key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisTimerStore) Save(ctx context.Context, data []byte) error {
	// 不设置过期时间，会话在显式停止前一直保留
	return s.Client.Set(ctx, s.Key, data, 0).Err()
}

func (s *RedisTimerStore) Clear(ctx context.Context) error {
	return s.Client.Del(ctx, s.Key).Err()
}

// MemoryTimerStore 内存计时器状态存储，用于测试和无Redis的本地运行
type MemoryTimerStore struct {
	mu   sync.Mutex
	data []byte
}

func (s *MemoryTimerStore) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryTimerStore) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

func (s *MemoryTimerStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
