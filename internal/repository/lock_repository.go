package repository

import (
	"context"
	"fmt"
	"time"

	"life_score_backend/internal/model"
	"life_score_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// LockRepository serializes scoring passes per user with a Redis advisory
// lock. The lock narrows the race window; the meta store's version check is
// what actually guarantees no lost update if the lock expires mid-pass.
type LockRepository struct {
	Redis *redis.Client
}

func NewLockRepository(rdb *redis.Client) *LockRepository {
	return &LockRepository{Redis: rdb}
}

func lockKey(userID uint) string {
	return fmt.Sprintf("life_score:submit_lock:%d", userID)
}

// Acquire takes the per-user lock or returns ErrSubmissionLocked. The
// returned token must be passed back to Release.
func (r *LockRepository) Acquire(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	token := model.GenerateUUID()
	ok, err := r.Redis.SetNX(ctx, lockKey(userID), token, ttl).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", util.ErrSubmissionLocked
	}
	return token, nil
}

// Release drops the lock if it is still held by token. A lock taken over by
// another pass after expiry is left alone.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

func (r *LockRepository) Release(ctx context.Context, userID uint, token string) error {
	return releaseScript.Run(ctx, r.Redis, []string{lockKey(userID)}, token).Err()
}
