// internal/workers/fulfillment/process-job/dedup.go
package processjob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// DedupGuard suppresses duplicate notifications caused by at-least-once
// delivery. It is optional: a nil guard preserves the pipeline's original
// at-least-once semantics.
//
// A key is marked only after the notification for it has been sent. Marking
// at receive time would lose the job entirely: a run that claims the key and
// then fails leaves the message on the queue, and the retry would be drained
// as a duplicate with no email ever delivered.
type DedupGuard interface {
	// Seen reports whether a notification for this key was already sent.
	Seen(ctx context.Context, key string) (bool, error)
	// Mark records that the notification for this key has been sent.
	Mark(ctx context.Context, key string) error
}

// RedisDedup stores sent-job keys with a TTL, so a redelivery of an
// already-notified job within the window is recognized as a duplicate.
type RedisDedup struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDedup(client *redis.Client, ttl time.Duration) *RedisDedup {
	return &RedisDedup{client: client, ttl: ttl}
}

func (d *RedisDedup) Seen(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, "job:sent:"+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *RedisDedup) Mark(ctx context.Context, key string) error {
	return d.client.Set(ctx, "job:sent:"+key, 1, d.ttl).Err()
}

// jobKey derives the idempotency key from the raw message body, so two
// deliveries of the same enqueued job always collide.
func jobKey(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}
