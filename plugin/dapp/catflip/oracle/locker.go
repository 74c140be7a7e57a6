// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrLockHeld 其他实例正在处理这一局
var ErrLockHeld = errors.New("ErrLockHeld")

const unlockScript = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`

// Locker 多个预言机实例之间对同一局去重
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error)
}

// RedisLocker SET NX + ttl，只删除自己持有的锁
type RedisLocker struct {
	rdb    *redis.Client
	unlock *redis.Script
}

// NewRedisLocker new redis locker
func NewRedisLocker(cfg RedisConfig) *RedisLocker {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisLocker{rdb: rdb, unlock: redis.NewScript(unlockScript)}
}

// Acquire 返回释放函数，重复调用无副作用
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.New().String()
	lk := "catflip:lock:" + key
	ok, err := l.rdb.SetNX(ctx, lk, token, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "acquire lock %s", key)
	}
	if !ok {
		return nil, ErrLockHeld
	}
	released := false
	return func() {
		if released {
			return
		}
		released = true
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = l.unlock.Run(unlockCtx, l.rdb, []string{lk}, token).Err()
	}, nil
}

// Close close redis client
func (l *RedisLocker) Close() error {
	return l.rdb.Close()
}

type nopLocker struct{}

func (nopLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	return func() {}, nil
}
