package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"split-wallet-engine/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// putIfNewer writes the entry unless the stored version is newer, so a slow
// propagation never overwrites a later one.
var putIfNewer = goredis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[2]) or '-1')
local v = tonumber(ARGV[2])
if v < cur then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1])
redis.call('SET', KEYS[2], ARGV[2])
return 1
`)

// IndexStore implements ports.SplitIndexStore. Entries are keyed by bill id.
type IndexStore struct {
	client *goredis.Client
	prefix string
}

// NewIndexStore creates a new Redis-backed split index.
func NewIndexStore(client *goredis.Client) *IndexStore {
	return &IndexStore{
		client: client,
		prefix: "split_index:bill:",
	}
}

func (s *IndexStore) keys(billID string) (entryKey, versionKey string) {
	return s.prefix + billID, s.prefix + billID + ":version"
}

// Put stores the entry for its bill. Stale versions are ignored.
func (s *IndexStore) Put(ctx context.Context, entry *domain.SplitIndexEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal index entry: %w", err)
	}

	entryKey, versionKey := s.keys(entry.BillID)
	if err := putIfNewer.Run(ctx, s.client, []string{entryKey, versionKey}, payload, entry.Version).Err(); err != nil {
		return fmt.Errorf("redis index put: %w", err)
	}
	return nil
}

// Get returns the entry for a bill, or nil if none is indexed.
func (s *IndexStore) Get(ctx context.Context, billID string) (*domain.SplitIndexEntry, error) {
	entryKey, _ := s.keys(billID)
	val, err := s.client.Get(ctx, entryKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis index get: %w", err)
	}

	entry := &domain.SplitIndexEntry{}
	if err := json.Unmarshal(val, entry); err != nil {
		return nil, fmt.Errorf("decode index entry: %w", err)
	}
	return entry, nil
}

// Delete removes the entry of a bill.
func (s *IndexStore) Delete(ctx context.Context, billID string) error {
	entryKey, versionKey := s.keys(billID)
	if err := s.client.Del(ctx, entryKey, versionKey).Err(); err != nil {
		return fmt.Errorf("redis index delete: %w", err)
	}
	return nil
}
