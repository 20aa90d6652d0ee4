package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"split-wallet-engine/internal/core/domain"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/internal/core/ports/mocks"
	"split-wallet-engine/internal/service"
	"split-wallet-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	addrA         = "0x1111111111111111111111111111111111111111"
	addrB         = "0x2222222222222222222222222222222222222222"
	serviceSecret = "s3cret"
)

// bearerTokens treats the bearer token as the user id.
type bearerTokens struct{}

func (bearerTokens) Generate(userID string) (string, time.Time, error) {
	return userID, time.Now().Add(time.Hour), nil
}

func (bearerTokens) Validate(token string) (*ports.TokenClaims, error) {
	if token == "expired" {
		return nil, errors.New("token is expired")
	}
	return &ports.TokenClaims{UserID: token}, nil
}

type fixture struct {
	creation   *mocks.MockCreationService
	query      *mocks.MockQueryService
	management *mocks.MockManagementService
	payments   *mocks.MockPaymentProcessor
	roulette   *mocks.MockRouletteService
	cleanup    *mocks.MockCleanupService
	executor   *mocks.MockRouletteExecutor
	nonces     *mocks.MockNonceStore
	health     *mocks.MockHealthChecker
	router     *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		creation:   mocks.NewMockCreationService(ctrl),
		query:      mocks.NewMockQueryService(ctrl),
		management: mocks.NewMockManagementService(ctrl),
		payments:   mocks.NewMockPaymentProcessor(ctrl),
		roulette:   mocks.NewMockRouletteService(ctrl),
		cleanup:    mocks.NewMockCleanupService(ctrl),
		executor:   mocks.NewMockRouletteExecutor(ctrl),
		nonces:     mocks.NewMockNonceStore(ctrl),
		health:     mocks.NewMockHealthChecker(ctrl),
	}
	f.router = SetupRouter(RouterDeps{
		Creation:       f.creation,
		Query:          f.query,
		Management:     f.management,
		Payments:       f.payments,
		Roulette:       f.roulette,
		Cleanup:        f.cleanup,
		DrawExecutor:   f.executor,
		TokenSvc:       bearerTokens{},
		SigSvc:         service.NewHMACSignatureService(),
		NonceStore:     f.nonces,
		ServiceSecret:  serviceSecret,
		HealthCheckers: []ports.HealthChecker{f.health},
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
		Logger: zerolog.Nop(),
	})
	return f
}

func (f *fixture) do(method, path, user string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+user)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ErrorCode
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func testWallet(creator string, members ...string) *domain.SplitWallet {
	w := &domain.SplitWallet{
		ID:          uuid.New(),
		BillID:      "bill-1",
		CreatorID:   creator,
		SplitType:   domain.SplitTypeFair,
		Status:      domain.WalletStatusPending,
		TotalAmount: decimal.NewFromInt(30),
		Currency:    "USDC",
	}
	for _, m := range members {
		w.Participants = append(w.Participants, domain.SplitWalletParticipant{UserID: m, Status: domain.ParticipantStatusPending})
	}
	return w
}

func createBody() map[string]interface{} {
	return map[string]interface{}{
		"bill_id":      "bill-1",
		"total_amount": "30",
		"currency":     "USDC",
		"participants": []map[string]interface{}{
			{"user_id": "alice", "name": "Alice", "wallet_address": addrA},
			{"user_id": "bob", "name": "Bob", "wallet_address": addrB, "amount_owed": "20"},
		},
	}
}

// --- Authentication ---

func TestSplits_RequireBearerToken(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/v1/splits", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_001", errorCode(t, w))

	w = f.do(http.MethodGet, "/api/v1/splits", "expired", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Creation ---

func TestCreate_Success(t *testing.T) {
	f := newFixture(t)
	created := testWallet("alice", "alice", "bob")

	f.creation.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.CreateWalletRequest) (*domain.SplitWallet, error) {
			assert.Equal(t, "alice", req.CreatorID)
			assert.Equal(t, "bill-1", req.BillID)
			assert.True(t, req.TotalAmount.Equal(decimal.NewFromInt(30)))
			require.Len(t, req.Participants, 2)
			assert.True(t, req.Participants[0].AmountOwed.IsZero())
			assert.True(t, req.Participants[1].AmountOwed.Equal(decimal.NewFromInt(20)))
			return created, nil
		})

	w := f.do(http.MethodPost, "/api/v1/splits", "alice", createBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, created.ID.String(), data["id"])
	assert.Equal(t, "pending", data["status"])
}

func TestCreate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(body map[string]interface{})
		code   string
	}{
		{"zero amount", func(b map[string]interface{}) { b["total_amount"] = "0" }, "VAL_001"},
		{"too many decimals", func(b map[string]interface{}) { b["total_amount"] = "1.0000001" }, "VAL_001"},
		{"missing bill", func(b map[string]interface{}) { delete(b, "bill_id") }, "VAL_002"},
		{"unsafe bill id", func(b map[string]interface{}) { b["bill_id"] = "bill 1;drop" }, "VAL_002"},
		{"no participants", func(b map[string]interface{}) { b["participants"] = []interface{}{} }, "VAL_002"},
		{"bad address", func(b map[string]interface{}) {
			b["participants"] = []map[string]interface{}{{"user_id": "alice", "wallet_address": "nope"}}
		}, "VAL_002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			body := createBody()
			tt.mutate(body)

			w := f.do(http.MethodPost, "/api/v1/splits", "alice", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestCreateDegen_PassesWeighted(t *testing.T) {
	f := newFixture(t)
	body := createBody()
	body["weighted"] = true

	f.creation.EXPECT().CreateDegenWallet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.CreateDegenWalletRequest) (*domain.SplitWallet, error) {
			assert.True(t, req.Weighted)
			assert.Equal(t, "alice", req.CreatorID)
			return testWallet("alice", "alice", "bob"), nil
		})

	w := f.do(http.MethodPost, "/api/v1/splits/degen", "alice", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreate_ServiceErrorMapsStatus(t *testing.T) {
	f := newFixture(t)
	f.creation.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrDuplicateWallet())

	w := f.do(http.MethodPost, "/api/v1/splits", "alice", createBody())
	assert.Equal(t, "VAL_009", errorCode(t, w))
}

// --- Queries ---

func TestGet_Membership(t *testing.T) {
	f := newFixture(t)
	wallet := testWallet("alice", "alice", "bob")
	f.query.EXPECT().GetWallet(gomock.Any(), wallet.ID).Return(wallet, nil).Times(2)

	w := f.do(http.MethodGet, "/api/v1/splits/"+wallet.ID.String(), "bob", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bill-1", dataOf(t, w)["bill_id"])

	w = f.do(http.MethodGet, "/api/v1/splits/"+wallet.ID.String(), "mallory", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SPL_403", errorCode(t, w))
}

func TestGet_NotFoundAndBadID(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.query.EXPECT().GetWallet(gomock.Any(), id).Return(nil, apperror.ErrNotFound("Split wallet"))

	w := f.do(http.MethodGet, "/api/v1/splits/"+id.String(), "alice", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SPL_404", errorCode(t, w))

	w = f.do(http.MethodGet, "/api/v1/splits/not-a-uuid", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_002", errorCode(t, w))
}

func TestGetByBill(t *testing.T) {
	f := newFixture(t)
	wallet := testWallet("alice", "alice", "bob")
	f.query.EXPECT().GetWalletByBillID(gomock.Any(), "bill-1").Return(wallet, nil).Times(2)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/splits/bill/bill-1", "alice", nil).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/v1/splits/bill/bill-1", "eve", nil).Code)
}

func TestList_OwnSplitsOnly(t *testing.T) {
	f := newFixture(t)
	f.query.EXPECT().ListByCreator(gomock.Any(), "alice", 2, 10).
		Return([]domain.SplitWallet{*testWallet("alice", "alice")}, int64(11), nil)

	w := f.do(http.MethodGet, "/api/v1/splits?page=2&page_size=10", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.EqualValues(t, 11, data["total"])
	assert.EqualValues(t, 2, data["total_pages"])
	assert.Len(t, data["items"], 1)

	w = f.do(http.MethodGet, "/api/v1/splits?creator=bob", "alice", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	wallet := testWallet("alice", "alice", "bob")
	f.query.EXPECT().GetWallet(gomock.Any(), wallet.ID).Return(wallet, nil)
	f.query.EXPECT().GetCompletionSummary(gomock.Any(), wallet.ID).Return(&domain.CompletionSummary{
		SplitWalletID:    wallet.ID,
		Status:           domain.WalletStatusPending,
		ParticipantCount: 2,
	}, nil)

	w := f.do(http.MethodGet, "/api/v1/splits/"+wallet.ID.String()+"/summary", "bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, dataOf(t, w)["participant_count"])
}

// --- Management ---

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	updated := testWallet("alice", "alice")

	f.management.EXPECT().UpdateWalletAmount(gomock.Any(), id, "alice", decimal.RequireFromString("45.5")).Return(updated, nil)
	f.management.EXPECT().UpdateWalletCurrency(gomock.Any(), id, "alice", "EUR").Return(updated, nil)

	w := f.do(http.MethodPatch, "/api/v1/splits/"+id.String(), "alice", map[string]string{"total_amount": "45.5", "currency": "EUR"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPatch, "/api/v1/splits/"+id.String(), "alice", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_002", errorCode(t, w))
}

func TestUpdate_LockedWallet(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.management.EXPECT().UpdateWalletCurrency(gomock.Any(), id, "alice", "EUR").Return(nil, apperror.ErrWalletLocked())

	w := f.do(http.MethodPatch, "/api/v1/splits/"+id.String(), "alice", map[string]string{"currency": "EUR"})
	assert.Equal(t, "VAL_006", errorCode(t, w))
}

func TestReplaceParticipants(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.management.EXPECT().ReplaceParticipants(gomock.Any(), id, "alice", gomock.Len(2)).Return(testWallet("alice", "alice", "bob"), nil)

	body := map[string]interface{}{"participants": createBody()["participants"]}
	w := f.do(http.MethodPut, "/api/v1/splits/"+id.String()+"/participants", "alice", body)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLifecycleActions(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	done := testWallet("alice", "alice")
	done.Status = domain.WalletStatusCompleted

	f.management.EXPECT().LockWallet(gomock.Any(), id, "alice").Return(done, nil)
	f.cleanup.EXPECT().CompleteSplitWallet(gomock.Any(), id, "alice").Return(done, nil)
	f.cleanup.EXPECT().BurnSplitWalletAndCleanup(gomock.Any(), id, "alice").Return(done, nil)
	f.cleanup.EXPECT().CancelSplitWallet(gomock.Any(), id, "alice").Return(nil, apperror.ErrTerminalWallet())

	base := "/api/v1/splits/" + id.String()
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, base+"/lock", "alice", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, base+"/complete", "alice", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, base+"/burn", "alice", nil).Code)

	w := f.do(http.MethodPost, base+"/cancel", "alice", nil)
	assert.Equal(t, http.StatusGone, w.Code)
	assert.Equal(t, "SPL_410", errorCode(t, w))
}

// --- Payments ---

func TestPay_UsesCaller(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.payments.EXPECT().ProcessParticipantPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.PaymentRequest) (*ports.UpdateResult, error) {
			assert.Equal(t, id, req.WalletID)
			assert.Equal(t, "bob", req.ParticipantID)
			assert.True(t, req.Amount.Equal(decimal.RequireFromString("12.5")))
			require.NotNil(t, req.Signature)
			assert.Equal(t, "0xabc", *req.Signature)
			return &ports.UpdateResult{Success: true, Wallet: testWallet("alice", "bob"), IndexSynced: true}, nil
		})

	w := f.do(http.MethodPost, "/api/v1/splits/"+id.String()+"/payments", "bob", map[string]string{"amount": "12.5", "signature": "0xabc"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, dataOf(t, w)["index_synced"])
}

func TestPay_Overpayment(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.payments.EXPECT().ProcessParticipantPayment(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrOverpayment())

	w := f.do(http.MethodPost, "/api/v1/splits/"+id.String()+"/payments", "bob", map[string]string{"amount": "99"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "VAL_003", errorCode(t, w))
}

func TestBalanceAndReconcile(t *testing.T) {
	f := newFixture(t)
	wallet := testWallet("alice", "alice", "bob")
	f.query.EXPECT().GetWallet(gomock.Any(), wallet.ID).Return(wallet, nil).Times(2)
	f.payments.EXPECT().VerifyWalletBalance(gomock.Any(), wallet.ID).Return(&ports.BalanceReport{SplitWalletID: wallet.ID, Matches: true}, nil)
	f.payments.EXPECT().ReconcilePendingTransactions(gomock.Any(), wallet.ID).Return(&ports.ReconcileReport{
		SplitWalletID: wallet.ID,
		Confirmed:     []string{"0xabc"},
	}, nil)

	w := f.do(http.MethodGet, "/api/v1/splits/"+wallet.ID.String()+"/balance", "bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, dataOf(t, w)["matches"])

	w = f.do(http.MethodPost, "/api/v1/splits/"+wallet.ID.String()+"/reconcile", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"0xabc"}, dataOf(t, w)["confirmed"])
}

func TestExtract(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.payments.EXPECT().ExtractFairSplitFunds(gomock.Any(), id, addrB, "alice").Return(nil, apperror.ErrInsufficientFunds())

	w := f.do(http.MethodPost, "/api/v1/splits/"+id.String()+"/extract", "alice", map[string]string{"recipient": addrB})
	assert.Equal(t, "VAL_007", errorCode(t, w))

	w = f.do(http.MethodPost, "/api/v1/splits/"+id.String()+"/extract", "alice", map[string]string{"recipient": "bob"})
	assert.Equal(t, "VAL_002", errorCode(t, w))
}

// --- Degen ---

func TestRoulette(t *testing.T) {
	f := newFixture(t)
	wallet := testWallet("alice", "alice", "bob")
	entry := &domain.DegenRouletteAuditEntry{
		SplitWalletID:         wallet.ID,
		Participants:          []string{"alice", "bob"},
		SelectedParticipantID: "bob",
		ExecutionPath:         domain.ExecutionPathLocal,
	}
	f.roulette.EXPECT().ExecuteDegenRoulette(gomock.Any(), wallet.ID, "alice").Return(entry, nil)
	f.query.EXPECT().GetWallet(gomock.Any(), wallet.ID).Return(wallet, nil)
	f.roulette.EXPECT().GetRouletteResult(gomock.Any(), wallet.ID).Return(entry, nil)

	w := f.do(http.MethodPost, "/api/v1/splits/"+wallet.ID.String()+"/roulette", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob", dataOf(t, w)["selected_participant_id"])

	w = f.do(http.MethodGet, "/api/v1/splits/"+wallet.ID.String()+"/roulette", "bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "local", dataOf(t, w)["execution_path"])
}

func TestDegenPayouts(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.payments.EXPECT().ProcessDegenWinnerPayout(gomock.Any(), id, "bob", "alice").Return(testWallet("alice"), nil)
	f.payments.EXPECT().ProcessDegenLoserPayment(gomock.Any(), id, "alice", domain.Destination{
		Kind:    domain.DestinationCard,
		Address: addrA,
	}).Return(nil, apperror.ErrRouletteNotReady("roulette has not been executed"))

	base := "/api/v1/splits/" + id.String() + "/degen"
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, base+"/winner-payout", "alice", map[string]string{"winner_id": "bob"}).Code)

	w := f.do(http.MethodPost, base+"/loser-payment", "alice", map[string]string{"kind": "card", "address": addrA})
	assert.Equal(t, "VAL_008", errorCode(t, w))

	w = f.do(http.MethodPost, base+"/loser-payment", "alice", map[string]string{"kind": "cash", "address": addrA})
	assert.Equal(t, "VAL_002", errorCode(t, w))
}

// --- Repair ---

func TestRepairData_CreatorOnly(t *testing.T) {
	f := newFixture(t)
	wallet := testWallet("alice", "alice", "bob")
	f.query.EXPECT().GetWallet(gomock.Any(), wallet.ID).Return(wallet, nil).Times(2)
	f.management.EXPECT().RepairDataConsistency(gomock.Any(), wallet.ID).Return(&ports.RepairReport{
		SplitWalletID: wallet.ID,
		Drifted:       true,
		Fields:        []string{"status"},
		IndexSynced:   true,
	}, nil)

	w := f.do(http.MethodPost, "/api/v1/splits/"+wallet.ID.String()+"/repair/data", "bob", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodPost, "/api/v1/splits/"+wallet.ID.String()+"/repair/data", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, dataOf(t, w)["drifted"])
}

func TestRepairSync_ConsistencyError(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.management.EXPECT().RepairSynchronization(gomock.Any(), id, "alice").
		Return(nil, apperror.ErrConsistency(errors.New("index unavailable")))

	w := f.do(http.MethodPost, "/api/v1/splits/"+id.String()+"/repair/sync", "alice", nil)
	assert.Equal(t, "SYNC_001", errorCode(t, w))
}

// --- Internal API ---

func (f *fixture) signed(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	sig := service.NewHMACSignatureService()
	ts := time.Now().Unix()
	nonce := uuid.NewString()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Timestamp", strconv.FormatInt(ts, 10))
	req.Header.Set("X-Nonce", nonce)
	req.Header.Set("X-Signature", sig.Sign(serviceSecret, sig.BuildCanonicalString(method, req.URL.Path, ts, nonce, body)))

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestInternalDraw(t *testing.T) {
	f := newFixture(t)
	walletID := uuid.New()
	f.nonces.EXPECT().CheckAndSet(gomock.Any(), "internal", gomock.Any(), gomock.Any()).Return(true, nil)
	f.executor.EXPECT().Draw(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.RouletteDrawRequest) (*domain.RouletteDraw, error) {
			assert.Equal(t, walletID, req.SplitWalletID)
			assert.Equal(t, []string{"alice", "bob"}, req.Participants)
			return &domain.RouletteDraw{SelectedParticipantID: "alice", ExecutionPath: domain.ExecutionPathLocal}, nil
		})

	body, _ := json.Marshal(domain.RouletteDrawRequest{SplitWalletID: walletID, Participants: []string{"alice", "bob"}, RequestedBy: "alice"})
	w := f.signed(t, http.MethodPost, "/internal/v1/roulette/draw", string(body))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", dataOf(t, w)["selected_participant_id"])
}

func TestInternalDraw_RejectsUnsigned(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPost, "/internal/v1/roulette/draw", "alice", map[string]string{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_002", errorCode(t, w))
}

func TestInternalDraw_RejectsMismatchedWeights(t *testing.T) {
	f := newFixture(t)
	f.nonces.EXPECT().CheckAndSet(gomock.Any(), "internal", gomock.Any(), gomock.Any()).Return(true, nil)

	body, _ := json.Marshal(domain.RouletteDrawRequest{SplitWalletID: uuid.New(), Participants: []string{"a", "b"}, Weights: []int64{1}})
	w := f.signed(t, http.MethodPost, "/internal/v1/roulette/draw", string(body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInternalListByStatus(t *testing.T) {
	f := newFixture(t)
	f.nonces.EXPECT().CheckAndSet(gomock.Any(), "internal", gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	f.query.EXPECT().ListByStatus(gomock.Any(), domain.WalletStatusLocked, 1, 20).Return(nil, int64(0), nil)

	w := f.signed(t, http.MethodGet, "/internal/v1/splits?status=locked", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, dataOf(t, w)["items"])

	w = f.signed(t, http.MethodGet, "/internal/v1/splits?status=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// The remote executor and the internal draw endpoint speak the same
// signed protocol end to end.
func TestRemoteExecutorAgainstInternalDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	nonces := mocks.NewMockNonceStore(ctrl)
	nonces.EXPECT().CheckAndSet(gomock.Any(), "internal", gomock.Any(), gomock.Any()).Return(true, nil)

	sig := service.NewHMACSignatureService()
	router := SetupRouter(RouterDeps{
		Query:         mocks.NewMockQueryService(ctrl),
		DrawExecutor:  service.NewLocalRouletteExecutor(),
		TokenSvc:      bearerTokens{},
		SigSvc:        sig,
		NonceStore:    nonces,
		ServiceSecret: serviceSecret,
		Logger:        zerolog.Nop(),
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	remote, err := service.NewRemoteRouletteExecutor(srv.URL+"/internal/v1/roulette/draw", serviceSecret, 2*time.Second, sig, srv.Client())
	require.NoError(t, err)

	req := domain.RouletteDrawRequest{
		SplitWalletID: uuid.New(),
		Participants:  []string{"alice", "bob", "carol"},
		RequestedBy:   "alice",
	}
	draw, err := remote.Draw(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.ExecutionPathRemote, draw.ExecutionPath)
	assert.Contains(t, req.Participants, draw.SelectedParticipantID)
	assert.NoError(t, domain.VerifyRouletteEntry(domain.NewRouletteAuditEntry(req, draw)))
}

// --- Health & metrics ---

func TestHealthCheck(t *testing.T) {
	f := newFixture(t)
	f.health.EXPECT().Name().Return("redis").AnyTimes()
	f.health.EXPECT().Ping(gomock.Any()).Return(nil)

	w := f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)

	f.health.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	w = f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# metrics", w.Body.String())
}
