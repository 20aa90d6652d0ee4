package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// RouletteSeedSize is the number of random bytes drawn per roulette.
const RouletteSeedSize = 32

// ExecutionPath records which executor produced a draw.
type ExecutionPath string

const (
	ExecutionPathRemote ExecutionPath = "remote"
	ExecutionPathLocal  ExecutionPath = "local"
)

var ErrRouletteMismatch = errors.New("roulette entry does not match its randomness")

// RouletteDrawRequest is the input to a roulette executor.
type RouletteDrawRequest struct {
	SplitWalletID uuid.UUID `json:"split_wallet_id"`
	Participants  []string  `json:"participants"`
	Weights       []int64   `json:"weights,omitempty"`
	RequestedBy   string    `json:"requested_by"`
}

// RouletteDraw is the output of a roulette executor. Remote and local
// executors return the same shape.
type RouletteDraw struct {
	SelectedParticipantID string        `json:"selected_participant_id"`
	RandomnessSeed        string        `json:"randomness_seed"`
	RandomnessDigest      string        `json:"randomness_digest"`
	ExecutionPath         ExecutionPath `json:"execution_path"`
	ExecutedAt            time.Time     `json:"executed_at"`
}

// DegenRouletteAuditEntry is the permanent record of a wallet's single draw.
type DegenRouletteAuditEntry struct {
	SplitWalletID         uuid.UUID     `json:"split_wallet_id"`
	Participants          []string      `json:"participants"`
	Weights               []int64       `json:"weights,omitempty"`
	SelectedParticipantID string        `json:"selected_participant_id"`
	RandomnessSeed        string        `json:"randomness_seed"`
	RandomnessDigest      string        `json:"randomness_digest"`
	ExecutionPath         ExecutionPath `json:"execution_path"`
	RequestedBy           string        `json:"requested_by"`
	ExecutedAt            time.Time     `json:"executed_at"`
}

// NewRouletteAuditEntry combines the request and its draw into an audit entry.
func NewRouletteAuditEntry(req RouletteDrawRequest, draw *RouletteDraw) *DegenRouletteAuditEntry {
	return &DegenRouletteAuditEntry{
		SplitWalletID:         req.SplitWalletID,
		Participants:          append([]string(nil), req.Participants...),
		Weights:               append([]int64(nil), req.Weights...),
		SelectedParticipantID: draw.SelectedParticipantID,
		RandomnessSeed:        draw.RandomnessSeed,
		RandomnessDigest:      draw.RandomnessDigest,
		ExecutionPath:         draw.ExecutionPath,
		RequestedBy:           req.RequestedBy,
		ExecutedAt:            draw.ExecutedAt,
	}
}

// RouletteCacheKey is the idempotency cache key for a wallet's roulette.
func RouletteCacheKey(walletID uuid.UUID) string {
	return "roulette:" + walletID.String()
}

// RandomnessDigest returns the hex sha256 of the seed.
func RandomnessDigest(seed []byte) string {
	sum := sha256.Sum256(seed)
	return hex.EncodeToString(sum[:])
}

// SelectIndex maps a seed onto a participant index. With nil weights every
// participant is equally likely; otherwise the chance is proportional to
// the participant's weight.
func SelectIndex(seed []byte, n int, weights []int64) (int, error) {
	if n <= 0 {
		return 0, errors.New("no candidates")
	}
	if len(weights) == 0 {
		weights = make([]int64, n)
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != n {
		return 0, ErrInvalidWeights
	}

	var total int64
	for _, w := range weights {
		if w <= 0 {
			return 0, ErrInvalidWeights
		}
		total += w
	}

	h := sha256.New()
	h.Write([]byte("select"))
	h.Write(seed)
	point := new(big.Int).SetBytes(h.Sum(nil))
	point.Mod(point, big.NewInt(total))

	target := point.Int64()
	for i, w := range weights {
		if target < w {
			return i, nil
		}
		target -= w
	}
	return n - 1, nil
}

// VerifyRouletteEntry recomputes digest and selection from the revealed seed.
func VerifyRouletteEntry(e *DegenRouletteAuditEntry) error {
	seed, err := hex.DecodeString(e.RandomnessSeed)
	if err != nil || len(seed) != RouletteSeedSize {
		return fmt.Errorf("%w: malformed seed", ErrRouletteMismatch)
	}
	if RandomnessDigest(seed) != e.RandomnessDigest {
		return fmt.Errorf("%w: digest", ErrRouletteMismatch)
	}
	idx, err := SelectIndex(seed, len(e.Participants), e.Weights)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRouletteMismatch, err)
	}
	if e.Participants[idx] != e.SelectedParticipantID {
		return fmt.Errorf("%w: selection", ErrRouletteMismatch)
	}
	return nil
}
