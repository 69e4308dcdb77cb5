package locks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
)

// releaseScript deletes the key only while it still carries our token, so
// a lease that expired and was taken over is never released by its old owner.
var releaseScript = rueidis.NewLuaScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker serialises work across service instances with SET NX PX
// leases. The TTL bounds how long a crashed holder can block others.
type RedisLocker struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
	retry  time.Duration
}

var _ Locker = (*RedisLocker)(nil)

func NewRedisLocker(client rueidis.Client, keyPrefix string, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		prefix: keyPrefix,
		ttl:    ttl,
		retry:  25 * time.Millisecond,
	}
}

func (r *RedisLocker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	redisKey := r.prefix + key
	token := uuid.NewString()

	for {
		cmd := r.client.B().Set().Key(redisKey).Value(token).Nx().PxMilliseconds(r.ttl.Milliseconds()).Build()
		err := r.client.Do(ctx, cmd).Error()
		if err == nil {
			return func(ctx context.Context) error {
				return releaseScript.Exec(ctx, r.client, []string{redisKey}, []string{token}).Error()
			}, nil
		}
		if !rueidis.IsRedisNil(err) {
			return nil, err
		}

		timer := time.NewTimer(r.retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
