package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Headers carried by signed service-to-service requests.
const (
	HeaderServiceSignature = "X-Signature"
	HeaderServiceTimestamp = "X-Timestamp"
	HeaderServiceNonce     = "X-Nonce"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// LocalRouletteExecutor draws in-process from crypto/rand.
type LocalRouletteExecutor struct {
	random io.Reader
	now    func() time.Time
}

// NewLocalRouletteExecutor creates a LocalRouletteExecutor.
func NewLocalRouletteExecutor() *LocalRouletteExecutor {
	return &LocalRouletteExecutor{
		random: rand.Reader,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (e *LocalRouletteExecutor) Draw(_ context.Context, req domain.RouletteDrawRequest) (*domain.RouletteDraw, error) {
	if len(req.Participants) == 0 {
		return nil, apperror.Validation("roulette needs at least one participant")
	}
	seed := make([]byte, domain.RouletteSeedSize)
	if _, err := io.ReadFull(e.random, seed); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read randomness: %w", err))
	}
	idx, err := domain.SelectIndex(seed, len(req.Participants), req.Weights)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return &domain.RouletteDraw{
		SelectedParticipantID: req.Participants[idx],
		RandomnessSeed:        hex.EncodeToString(seed),
		RandomnessDigest:      domain.RandomnessDigest(seed),
		ExecutionPath:         domain.ExecutionPathLocal,
		ExecutedAt:            e.now(),
	}, nil
}

// RemoteRouletteExecutor asks a roulette service over HMAC-signed HTTP.
type RemoteRouletteExecutor struct {
	endpoint string
	path     string
	secret   string
	sigSvc   ports.SignatureService
	client   HTTPClient
	timeout  time.Duration
}

// NewRemoteRouletteExecutor creates a RemoteRouletteExecutor posting to endpoint.
func NewRemoteRouletteExecutor(endpoint, secret string, timeout time.Duration, sigSvc ports.SignatureService, client HTTPClient) (*RemoteRouletteExecutor, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid roulette endpoint %q", endpoint)
	}
	return &RemoteRouletteExecutor{
		endpoint: endpoint,
		path:     u.Path,
		secret:   secret,
		sigSvc:   sigSvc,
		client:   client,
		timeout:  timeout,
	}, nil
}

type remoteDrawEnvelope struct {
	Data domain.RouletteDraw `json:"data"`
}

func (e *RemoteRouletteExecutor) Draw(ctx context.Context, req domain.RouletteDrawRequest) (*domain.RouletteDraw, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	ts := time.Now().Unix()
	nonce := uuid.NewString()
	canonical := e.sigSvc.BuildCanonicalString(http.MethodPost, e.path, ts, nonce, string(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(HeaderServiceTimestamp, strconv.FormatInt(ts, 10))
	httpReq.Header.Set(HeaderServiceNonce, nonce)
	httpReq.Header.Set(HeaderServiceSignature, e.sigSvc.Sign(e.secret, canonical))

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, apperror.ErrTransient(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperror.ErrTransient(fmt.Errorf("roulette service returned %d", resp.StatusCode))
	}

	var env remoteDrawEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&env); err != nil {
		return nil, apperror.ErrTransient(fmt.Errorf("decode roulette response: %w", err))
	}
	draw := env.Data
	draw.ExecutionPath = domain.ExecutionPathRemote
	return &draw, nil
}

// FallbackRouletteExecutor tries primary and draws with fallback when the
// primary fails or returns a draw that does not verify.
type FallbackRouletteExecutor struct {
	primary  ports.RouletteExecutor
	fallback ports.RouletteExecutor
	log      zerolog.Logger
}

// NewFallbackRouletteExecutor creates a FallbackRouletteExecutor. A nil
// primary always uses the fallback.
func NewFallbackRouletteExecutor(primary, fallback ports.RouletteExecutor, log zerolog.Logger) *FallbackRouletteExecutor {
	return &FallbackRouletteExecutor{primary: primary, fallback: fallback, log: log}
}

func (e *FallbackRouletteExecutor) Draw(ctx context.Context, req domain.RouletteDrawRequest) (*domain.RouletteDraw, error) {
	if e.primary != nil {
		draw, err := e.primary.Draw(ctx, req)
		if err == nil {
			err = domain.VerifyRouletteEntry(domain.NewRouletteAuditEntry(req, draw))
		}
		if err == nil {
			return draw, nil
		}
		e.log.Warn().Err(err).
			Str("split_wallet_id", req.SplitWalletID.String()).
			Msg("Remote roulette unavailable, drawing locally")
	}
	return e.fallback.Draw(ctx, req)
}
