// Package session holds the short-lived candidate list that bridges the
// search step and the select step. Entries live in Redis under the caller's
// session id and expire on the configured TTL; eviction at any time is
// acceptable, the select page just shows an empty list.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sophearak/movievault/internal/tmdb"
)

type CandidateCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCandidateCache(rdb *redis.Client, ttl time.Duration) *CandidateCache {
	return &CandidateCache{rdb: rdb, ttl: ttl}
}

func key(sessionID string) string {
	return "session:" + sessionID + ":candidates"
}

// SetCandidates overwrites the session's candidate list and resets its TTL.
func (c *CandidateCache) SetCandidates(ctx context.Context, sessionID string, candidates []tmdb.Candidate) error {
	b, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("marshal candidates: %w", err)
	}
	if err := c.rdb.Set(ctx, key(sessionID), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("set candidates: %w", err)
	}
	return nil
}

// GetCandidates returns the session's stored list. A session with nothing
// stored (never searched, or evicted) yields an empty list, not an error.
func (c *CandidateCache) GetCandidates(ctx context.Context, sessionID string) ([]tmdb.Candidate, error) {
	b, err := c.rdb.Get(ctx, key(sessionID)).Bytes()
	if err == redis.Nil {
		return []tmdb.Candidate{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get candidates: %w", err)
	}
	var candidates []tmdb.Candidate
	if err := json.Unmarshal(b, &candidates); err != nil {
		return nil, fmt.Errorf("unmarshal candidates: %w", err)
	}
	return candidates, nil
}
