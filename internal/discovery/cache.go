// internal/discovery/cache.go
// Redis-backed cache in front of the interaction log. The interacted
// set only ever grows, so a short TTL is safe: a stale read can only
// under-exclude for a few minutes, never resurrect an unmatched user.

package discovery

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const interactionKeyPrefix = "discovery:interacted:"

type InteractionCache struct {
	client *redis.Client
	next   InteractionLog
	ttl    time.Duration
}

// NewInteractionCache wraps next with a Redis set cache. A nil client
// degrades to a passthrough so the engine runs without Redis.
func NewInteractionCache(client *redis.Client, next InteractionLog, ttl time.Duration) *InteractionCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &InteractionCache{client: client, next: next, ttl: ttl}
}

func (c *InteractionCache) GetInteractedUserIDs(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	if c.client == nil {
		return c.next.GetInteractedUserIDs(ctx, userID)
	}

	key := interactionKeyPrefix + strconv.FormatInt(userID, 10)

	members, err := c.client.SMembers(ctx, key).Result()
	if err == nil && len(members) > 0 {
		set := make(map[int64]struct{}, len(members))
		for _, m := range members {
			id, perr := strconv.ParseInt(m, 10, 64)
			if perr != nil {
				continue
			}
			set[id] = struct{}{}
		}
		return set, nil
	}

	// Miss or Redis trouble: fall through to the source of truth.
	set, err := c.next.GetInteractedUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(set) > 0 {
		vals := make([]interface{}, 0, len(set))
		for id := range set {
			vals = append(vals, strconv.FormatInt(id, 10))
		}
		pipe := c.client.Pipeline()
		pipe.SAdd(ctx, key, vals...)
		pipe.Expire(ctx, key, c.ttl)
		// Cache population is best effort.
		_, _ = pipe.Exec(ctx)
	}

	return set, nil
}

// Invalidate drops the cached set, for callers that record a new
// interaction and want the next discovery to see it immediately.
func (c *InteractionCache) Invalidate(ctx context.Context, userID int64) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, interactionKeyPrefix+strconv.FormatInt(userID, 10))
}
