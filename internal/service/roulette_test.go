package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"testing"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func drawRequest() domain.RouletteDrawRequest {
	return domain.RouletteDrawRequest{
		SplitWalletID: uuid.New(),
		Participants:  []string{"alice", "bob", "carol"},
		RequestedBy:   "alice",
	}
}

func TestLocalRouletteExecutor_Draw(t *testing.T) {
	exec := NewLocalRouletteExecutor()
	req := drawRequest()

	draw, err := exec.Draw(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.ExecutionPathLocal, draw.ExecutionPath)
	assert.Contains(t, req.Participants, draw.SelectedParticipantID)
	assert.Len(t, draw.RandomnessSeed, 2*domain.RouletteSeedSize)
	require.NoError(t, domain.VerifyRouletteEntry(domain.NewRouletteAuditEntry(req, draw)))

	req.Weights = []int64{1, 0, 1}
	_, err = exec.Draw(context.Background(), req)
	requireCode(t, err, "VAL_002")
}

func TestLocalRouletteExecutor_Weighted(t *testing.T) {
	exec := NewLocalRouletteExecutor()
	req := drawRequest()
	req.Participants = []string{"alice", "bob"}
	req.Weights = []int64{1, 1_000_000}

	bob := 0
	for i := 0; i < 50; i++ {
		draw, err := exec.Draw(context.Background(), req)
		require.NoError(t, err)
		if draw.SelectedParticipantID == "bob" {
			bob++
		}
	}
	assert.GreaterOrEqual(t, bob, 45)
}

// roulettePeer serves draws the way the internal roulette endpoint does.
func roulettePeer(t *testing.T, secret string, tamper func(*domain.RouletteDraw)) *httptest.Server {
	sig := NewHMACSignatureService()
	local := NewLocalRouletteExecutor()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		ts, err := strconv.ParseInt(r.Header.Get(HeaderServiceTimestamp), 10, 64)
		require.NoError(t, err)
		canonical := sig.BuildCanonicalString(r.Method, r.URL.Path, ts, r.Header.Get(HeaderServiceNonce), string(body))
		if !sig.Verify(secret, canonical, r.Header.Get(HeaderServiceSignature)) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req domain.RouletteDrawRequest
		require.NoError(t, json.Unmarshal(body, &req))
		draw, err := local.Draw(r.Context(), req)
		require.NoError(t, err)
		if tamper != nil {
			tamper(draw)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": draw, "request_id": "r-1"})
	}))
}

func TestRemoteRouletteExecutor_SignedDraw(t *testing.T) {
	srv := roulettePeer(t, "s3cret", nil)
	defer srv.Close()

	exec, err := NewRemoteRouletteExecutor(srv.URL+"/internal/v1/roulette/draw", "s3cret", time.Second, NewHMACSignatureService(), srv.Client())
	require.NoError(t, err)

	req := drawRequest()
	draw, err := exec.Draw(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.ExecutionPathRemote, draw.ExecutionPath)
	require.NoError(t, domain.VerifyRouletteEntry(domain.NewRouletteAuditEntry(req, draw)))
}

func TestRemoteRouletteExecutor_WrongSecret(t *testing.T) {
	srv := roulettePeer(t, "s3cret", nil)
	defer srv.Close()

	exec, err := NewRemoteRouletteExecutor(srv.URL+"/draw", "other", time.Second, NewHMACSignatureService(), srv.Client())
	require.NoError(t, err)

	_, err = exec.Draw(context.Background(), drawRequest())
	requireCode(t, err, "NET_001")
}

func TestRemoteRouletteExecutor_InvalidEndpoint(t *testing.T) {
	_, err := NewRemoteRouletteExecutor("not a url", "s", time.Second, NewHMACSignatureService(), http.DefaultClient)
	assert.Error(t, err)
}

func TestRemoteRouletteExecutor_Timeout(t *testing.T) {
	client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	}}
	exec, err := NewRemoteRouletteExecutor("http://roulette.internal/draw", "s", 10*time.Millisecond, NewHMACSignatureService(), client)
	require.NoError(t, err)

	_, err = exec.Draw(context.Background(), drawRequest())
	requireCode(t, err, "NET_001")
}

func TestFallbackRouletteExecutor(t *testing.T) {
	t.Run("remote failure falls back to local", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}}
		remote, err := NewRemoteRouletteExecutor("http://roulette.internal/draw", "s", time.Second, NewHMACSignatureService(), client)
		require.NoError(t, err)

		exec := NewFallbackRouletteExecutor(remote, NewLocalRouletteExecutor(), newTestLogger())
		draw, err := exec.Draw(context.Background(), drawRequest())
		require.NoError(t, err)
		assert.Equal(t, domain.ExecutionPathLocal, draw.ExecutionPath)
	})

	t.Run("tampered remote draw is rejected", func(t *testing.T) {
		srv := roulettePeer(t, "s3cret", func(d *domain.RouletteDraw) {
			d.RandomnessDigest = domain.RandomnessDigest([]byte("forged"))
		})
		defer srv.Close()
		remote, err := NewRemoteRouletteExecutor(srv.URL+"/draw", "s3cret", time.Second, NewHMACSignatureService(), srv.Client())
		require.NoError(t, err)

		exec := NewFallbackRouletteExecutor(remote, NewLocalRouletteExecutor(), newTestLogger())
		draw, err := exec.Draw(context.Background(), drawRequest())
		require.NoError(t, err)
		assert.Equal(t, domain.ExecutionPathLocal, draw.ExecutionPath)
	})

	t.Run("remote and local draws have the same shape", func(t *testing.T) {
		srv := roulettePeer(t, "s3cret", nil)
		defer srv.Close()
		remote, err := NewRemoteRouletteExecutor(srv.URL+"/draw", "s3cret", time.Second, NewHMACSignatureService(), srv.Client())
		require.NoError(t, err)

		req := drawRequest()
		remoteDraw, err := NewFallbackRouletteExecutor(remote, NewLocalRouletteExecutor(), newTestLogger()).Draw(context.Background(), req)
		require.NoError(t, err)
		localDraw, err := NewLocalRouletteExecutor().Draw(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, jsonKeys(t, remoteDraw), jsonKeys(t, localDraw))
		assert.Equal(t, domain.ExecutionPathRemote, remoteDraw.ExecutionPath)
	})
}

func jsonKeys(t *testing.T, v any) []string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(bytes.NewReader(raw)).Decode(&m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func lockedDegenWallet() *domain.SplitWallet {
	w := storedWallet(domain.WalletStatusLocked)
	w.SplitType = domain.SplitTypeDegen
	for i := range w.Participants {
		w.Participants[i].AmountPaid = w.Participants[i].AmountOwed
		w.Participants[i].Status = domain.ParticipantStatusLocked
	}
	return w
}

func TestRouletteService_LosesConcurrentDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSplitWalletRepository(ctrl)
	entries := mocks.NewMockRouletteAuditRepository(ctrl)
	cache := mocks.NewMockIdempotencyCache(ctrl)
	updater := mocks.NewMockAtomicUpdater(ctrl)
	executor := mocks.NewMockRouletteExecutor(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)
	audit := mocks.NewMockAuditService(ctrl)

	w := lockedDegenWallet()
	winner := &domain.DegenRouletteAuditEntry{
		SplitWalletID:         w.ID,
		Participants:          []string{"alice", "bob"},
		SelectedParticipantID: "bob",
		ExecutionPath:         domain.ExecutionPathRemote,
	}

	repo.EXPECT().GetByID(gomock.Any(), w.ID).Return(w, nil)
	cache.EXPECT().Get(gomock.Any(), domain.RouletteCacheKey(w.ID)).Return(nil, nil)
	gomock.InOrder(
		entries.EXPECT().Get(gomock.Any(), w.ID).Return(nil, nil),
		entries.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil),
		entries.EXPECT().Get(gomock.Any(), w.ID).Return(winner, nil),
	)
	executor.EXPECT().Draw(gomock.Any(), gomock.Any()).Return(&domain.RouletteDraw{
		SelectedParticipantID: "alice",
		ExecutionPath:         domain.ExecutionPathLocal,
	}, nil)
	cache.EXPECT().Set(gomock.Any(), domain.RouletteCacheKey(w.ID), gomock.Any(), rouletteCacheTTL).Return(nil)
	updater.EXPECT().UpdateParticipantPayment(gomock.Any(), w.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, mutate func(*domain.SplitWallet) error) (*ports.UpdateResult, error) {
			next := w.Clone()
			require.NoError(t, mutate(next))
			assert.True(t, next.TotalAmount.Equal(next.Participant("bob").AmountOwed))
			assert.Equal(t, domain.ParticipantStatusPaid, next.Participant("alice").Status)
			return &ports.UpdateResult{Success: true, Wallet: next, IndexSynced: true}, nil
		},
	)

	svc := NewRouletteService(repo, entries, cache, updater, executor, metrics, audit, newTestLogger())
	got, err := svc.ExecuteDegenRoulette(context.Background(), w.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.SelectedParticipantID)
}

func TestRouletteService_CacheHitSkipsDraw(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	w := e.createDegen(t, "20", "alice", "bob")
	e.pay(t, w, "alice", "10")
	e.pay(t, w, "bob", "10")

	first, err := e.roulette.ExecuteDegenRoulette(ctx, w.ID, "alice")
	require.NoError(t, err)

	cached, err := e.cache.Get(ctx, domain.RouletteCacheKey(w.ID))
	require.NoError(t, err)
	require.NotNil(t, cached)

	got, err := e.roulette.GetRouletteResult(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, first.RandomnessDigest, got.RandomnessDigest)

	_, err = e.roulette.ExecuteDegenRoulette(ctx, w.ID, "mallory")
	requireCode(t, err, "SPL_403")

	_, err = e.roulette.GetRouletteResult(ctx, uuid.New())
	requireCode(t, err, "SPL_404")
}

func TestRouletteService_RejectsFairWallet(t *testing.T) {
	e := newEngine(t)
	w := e.createFair(t, "20", "alice", "bob")

	_, err := e.roulette.ExecuteDegenRoulette(context.Background(), w.ID, "creator")
	requireCode(t, err, "VAL_002")
}
