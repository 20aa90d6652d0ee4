package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const noncePrefix = "split:nonce:"

// NonceStore records the nonces of HMAC-signed internal calls (roulette
// draws, status listings) so a captured request cannot be replayed while
// its timestamp is still fresh. Nonces are client-chosen, so keys carry
// their sha256 to stay bounded.
type NonceStore struct {
	client *goredis.Client
}

func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{client: client}
}

// CheckAndSet claims nonce within scope. It returns false when the nonce was
// already claimed and has not expired.
func (s *NonceStore) CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error) {
	claimed, err := s.client.SetNX(ctx, nonceKey(scope, nonce), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim %s nonce: %w", scope, err)
	}
	return claimed, nil
}

func nonceKey(scope, nonce string) string {
	sum := sha256.Sum256([]byte(nonce))
	return noncePrefix + scope + ":" + hex.EncodeToString(sum[:])
}
