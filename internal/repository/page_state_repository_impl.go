package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"healthcare-admin-portal/internal/domain/entity"
	domainRepo "healthcare-admin-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const pageStateKeyPrefix = "portal:"

// commitStateScript writes the slot state only while the caller's generation
// is still the slot's latest one.
//
// KEYS[1] generation key, KEYS[2] state key
// ARGV[1] caller generation, ARGV[2] encoded state, ARGV[3] ttl in ms
var commitStateScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
		redis.call('PEXPIRE', KEYS[1], ARGV[3])
		return 1
	end
	return 0
`)

type pageStateRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewPageStateRepository(redisClient *redis.Client, ttl time.Duration) domainRepo.PageStateRepository {
	return &pageStateRepository{redisClient: redisClient, ttl: ttl}
}

func stateKey(key entity.SlotKey) string {
	return fmt.Sprintf("%s%s:%s:%s", pageStateKeyPrefix, key.SessionID, key.Page, key.Slot)
}

func generationKey(key entity.SlotKey) string {
	return stateKey(key) + ":gen"
}

func (r *pageStateRepository) Begin(ctx context.Context, key entity.SlotKey) (int64, error) {
	var incr *redis.IntCmd
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, generationKey(key))
		pipe.PExpire(ctx, generationKey(key), r.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("begin %s: %w", stateKey(key), err)
	}
	return incr.Val(), nil
}

func (r *pageStateRepository) Commit(ctx context.Context, key entity.SlotKey, gen int64, state any) (bool, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", stateKey(key), err)
	}

	keys := []string{generationKey(key), stateKey(key)}
	written, err := commitStateScript.Run(ctx, r.redisClient, keys,
		strconv.FormatInt(gen, 10), payload, r.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("commit %s: %w", stateKey(key), err)
	}
	return written == 1, nil
}

func (r *pageStateRepository) Load(ctx context.Context, key entity.SlotKey, state any) (bool, error) {
	payload, err := r.redisClient.Get(ctx, stateKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", stateKey(key), err)
	}
	if err := json.Unmarshal(payload, state); err != nil {
		return false, fmt.Errorf("decode %s: %w", stateKey(key), err)
	}
	return true, nil
}

// Reset bumps every slot generation of the page, so in-flight results are
// discarded, and drops the stored state.
func (r *pageStateRepository) Reset(ctx context.Context, sessionID string, page entity.Page) error {
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, slot := range page.Slots() {
			key := entity.SlotKey{SessionID: sessionID, Page: page, Slot: slot}
			pipe.Incr(ctx, generationKey(key))
			pipe.PExpire(ctx, generationKey(key), r.ttl)
			pipe.Del(ctx, stateKey(key))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reset %s%s:%s: %w", pageStateKeyPrefix, sessionID, page, err)
	}
	return nil
}
