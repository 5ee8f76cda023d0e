package cache

import (
	"context"
	"encoding/json"
	"time"

	redispkg "talentpact.backend/pkg/redis"
)

const categoriesKey = "projects:categories"

// Swappable for tests
var (
	redisGet = redispkg.Get
	redisSet = redispkg.Set
	redisDel = redispkg.Del
)

// CategoryCache keeps the distinct project category list in Redis
type CategoryCache struct {
	ttl time.Duration
}

// NewCategoryCache creates a cache whose entries live for ttl
func NewCategoryCache(ttl time.Duration) *CategoryCache {
	return &CategoryCache{ttl: ttl}
}

// Get returns the cached list; ok is false on a miss
func (c *CategoryCache) Get(ctx context.Context) ([]string, bool, error) {
	raw, err := redisGet(ctx, categoriesKey)
	if err != nil {
		if redispkg.IsNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var categories []string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		// unreadable entry counts as a miss and is overwritten on the next Set
		return nil, false, nil
	}
	return categories, true, nil
}

// Set stores the list
func (c *CategoryCache) Set(ctx context.Context, categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	payload, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return redisSet(ctx, categoriesKey, payload, c.ttl)
}

// Invalidate drops the cached list
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	return redisDel(ctx, categoriesKey)
}
