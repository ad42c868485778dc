// Package leaderboard keeps per-solver efficiency statistics in Redis. The
// ranking itself is a sorted set keyed by running mean efficiency; the raw
// sums and sample counts live in hashes so the mean can be folded forward
// one attempt at a time.
package leaderboard

import (
	"context"
	"strconv"
	"time"

	dmn "github.com/beka-birhanu/mazebench-api/domain"
	"github.com/beka-birhanu/mazebench-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	rankingSuffix = ":ranking"
	sumsSuffix    = ":sums"
	countsSuffix  = ":counts"
	lockSuffix    = ":score_lock"
)

// RedisLeaderboard implements i.Leaderboard on a Redis sorted set with TTL
// support. Score updates are read-modify-write over two hashes, so they run
// under a redsync mutex.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard with the provided
// Redis client, key prefix, and TTL.
func NewRedisLeaderboard(client *redis.Client, prefix string, ttlSeconds int) (i.Leaderboard, error) {
	board := &RedisLeaderboard{
		client: client,
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// RecordScore folds one solved attempt's efficiency into the solver's
// running mean and re-ranks it.
func (rl *RedisLeaderboard) RecordScore(ctx context.Context, solver string, efficiency float64) error {
	mutex := rl.locker.NewMutex(rl.prefix + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	sum, err := rl.client.HIncrByFloat(ctx, rl.prefix+sumsSuffix, solver, efficiency).Result()
	if err != nil {
		return err
	}
	count, err := rl.client.HIncrBy(ctx, rl.prefix+countsSuffix, solver, 1).Result()
	if err != nil {
		return err
	}

	mean := sum / float64(count)
	if _, err := rl.client.ZAdd(ctx, rl.prefix+rankingSuffix, redis.Z{Score: mean, Member: solver}).Result(); err != nil {
		return err
	}

	rl.touch(ctx)
	return nil
}

// Top returns up to n solvers ordered by mean efficiency descending. A
// non-positive n yields an empty ranking rather than the whole sorted set.
func (rl *RedisLeaderboard) Top(ctx context.Context, n int64) ([]dmn.Score, error) {
	if n <= 0 {
		return []dmn.Score{}, nil
	}

	ranked, err := rl.client.ZRevRangeWithScores(ctx, rl.prefix+rankingSuffix, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]dmn.Score, 0, len(ranked))
	for _, z := range ranked {
		solver, _ := z.Member.(string)
		samples := int64(0)
		if raw, err := rl.client.HGet(ctx, rl.prefix+countsSuffix, solver).Result(); err == nil {
			samples, _ = strconv.ParseInt(raw, 10, 64)
		}
		scores = append(scores, dmn.Score{
			Solver:         solver,
			MeanEfficiency: z.Score,
			Samples:        samples,
		})
	}
	return scores, nil
}

// touch sets expiration on the leaderboard keys if it is not already set.
func (rl *RedisLeaderboard) touch(ctx context.Context) {
	for _, suffix := range []string{rankingSuffix, sumsSuffix, countsSuffix} {
		key := rl.prefix + suffix
		ttl, err := rl.client.TTL(ctx, key).Result()
		if err == nil && ttl == -1 {
			_ = rl.client.Expire(ctx, key, rl.ttl).Err()
		}
	}
}
