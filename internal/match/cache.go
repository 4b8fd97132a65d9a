package match

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    "github.com/go-redis/redis/v8"
)

const (
    attrsCacheTTL = 5 * time.Minute
    attrsKeyFmt   = "match:attrs:%d"
)

// cachedRepository decorates a Repository with a short-lived Redis cache for
// primary photo attributes, the hottest lookup during ranking (one per
// candidate per call). Invalidation is TTL-only: a re-analyzed photo may be
// served stale for up to attrsCacheTTL.
type cachedRepository struct {
    Repository
    rdb *redis.Client
}

// NewCachedRepository wraps repo with attribute caching. A nil client
// returns repo unchanged, so Redis stays optional like in the rest of the
// application.
func NewCachedRepository(repo Repository, rdb *redis.Client) Repository {
    if rdb == nil {
        return repo
    }
    return &cachedRepository{Repository: repo, rdb: rdb}
}

func (c *cachedRepository) GetPrimaryPhotoAttributes(ctx context.Context, userID int64) (*PhotoAttributeSet, error) {
    key := fmt.Sprintf(attrsKeyFmt, userID)

    if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
        var attrs PhotoAttributeSet
        if json.Unmarshal(raw, &attrs) == nil {
            return &attrs, nil
        }
    }

    attrs, err := c.Repository.GetPrimaryPhotoAttributes(ctx, userID)
    if err != nil || attrs == nil {
        return attrs, err
    }

    if raw, err := json.Marshal(attrs); err == nil {
        // Cache failures are not fatal; the next call hits the database.
        c.rdb.Set(ctx, key, raw, attrsCacheTTL)
    }

    return attrs, nil
}
