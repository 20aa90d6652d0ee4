package ports

import (
	"context"
	"time"

	"split-wallet-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption. aad is authenticated
// but not encrypted, binding a ciphertext to its owner.
type EncryptionService interface {
	Encrypt(plaintext, aad string) (string, error)
	Decrypt(ciphertext, aad string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID string
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
}

// --- Chain ports ---

// ConfirmationStatus is the chain-side state of a submitted transfer.
type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "pending"
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
	ConfirmationFailed    ConfirmationStatus = "failed"
)

// TransferRequest moves Amount of the settlement token from the custodial
// account identified by PrivateKey to Destination.
type TransferRequest struct {
	PrivateKey  string
	Destination string
	Amount      decimal.Decimal
}

// BlockchainClient is the consumed chain capability. Connectivity failures
// are returned as transient AppErrors.
type BlockchainClient interface {
	SubmitTransfer(ctx context.Context, req TransferRequest) (string, error)
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)
	GetConfirmationStatus(ctx context.Context, signature string) (ConfirmationStatus, error)
}

// KeyGenerator creates fresh custodial keypairs.
type KeyGenerator interface {
	Generate() (*domain.Keypair, error)
}

// AddressValidator checks destination address syntax.
type AddressValidator interface {
	IsValidAddress(address string) bool
}

// RouletteExecutor performs a roulette draw. Remote and local
// implementations return the same shape.
type RouletteExecutor interface {
	Draw(ctx context.Context, req domain.RouletteDrawRequest) (*domain.RouletteDraw, error)
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// Metrics records engine-level counters.
type Metrics interface {
	IndexPropagationFailed(operation string)
	ConsistencyError(operation string)
	PaymentProcessed(outcome string)
	RouletteExecuted(path domain.ExecutionPath)
	ChainRetry(operation string)
}

// --- Service Ports (Business Logic) ---

// ParticipantInput describes a participant at creation or replacement time.
// A zero AmountOwed means "split equally".
type ParticipantInput struct {
	UserID        string
	Name          string
	WalletAddress string
	AmountOwed    decimal.Decimal
	Weight        int64
}

// CreateWalletRequest holds validated input for wallet creation.
type CreateWalletRequest struct {
	BillID       string
	CreatorID    string
	TotalAmount  decimal.Decimal
	Currency     string
	Participants []ParticipantInput
}

// CreateDegenWalletRequest adds the degen obligation mode.
type CreateDegenWalletRequest struct {
	CreateWalletRequest
	Weighted bool
}

// CreationService provisions split wallets.
type CreationService interface {
	CreateWallet(ctx context.Context, req CreateWalletRequest) (*domain.SplitWallet, error)
	CreateDegenWallet(ctx context.Context, req CreateDegenWalletRequest) (*domain.SplitWallet, error)
}

// QueryService is the read side. Every method is free of side effects.
type QueryService interface {
	GetWallet(ctx context.Context, id uuid.UUID) (*domain.SplitWallet, error)
	GetWalletByBillID(ctx context.Context, billID string) (*domain.SplitWallet, error)
	ListByCreator(ctx context.Context, creatorID string, page, pageSize int) ([]domain.SplitWallet, int64, error)
	ListByStatus(ctx context.Context, status domain.WalletStatus, page, pageSize int) ([]domain.SplitWallet, int64, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	GetCompletionSummary(ctx context.Context, id uuid.UUID) (*domain.CompletionSummary, error)
	GetIndexEntry(ctx context.Context, billID string) (*domain.SplitIndexEntry, error)
}

// RepairReport describes what a consistency repair found.
type RepairReport struct {
	SplitWalletID uuid.UUID `json:"split_wallet_id"`
	Drifted       bool      `json:"drifted"`
	Fields        []string  `json:"fields,omitempty"`
	IndexSynced   bool      `json:"index_synced"`
}

// ManagementService mutates wallet metadata and composition.
type ManagementService interface {
	UpdateWalletAmount(ctx context.Context, id uuid.UUID, requesterID string, amount decimal.Decimal) (*domain.SplitWallet, error)
	UpdateWalletCurrency(ctx context.Context, id uuid.UUID, requesterID string, currency string) (*domain.SplitWallet, error)
	LockWallet(ctx context.Context, id uuid.UUID, requesterID string) (*domain.SplitWallet, error)
	ReplaceParticipants(ctx context.Context, id uuid.UUID, requesterID string, participants []ParticipantInput) (*domain.SplitWallet, error)
	RepairDataConsistency(ctx context.Context, id uuid.UUID) (*RepairReport, error)
	RepairSynchronization(ctx context.Context, id uuid.UUID, creatorID string) (*RepairReport, error)
}

// PaymentRequest holds input for a participant contribution.
type PaymentRequest struct {
	WalletID      uuid.UUID
	ParticipantID string
	Amount        decimal.Decimal
	Signature     *string
}

// BalanceReport compares the on-chain balance with recorded contributions.
type BalanceReport struct {
	SplitWalletID uuid.UUID       `json:"split_wallet_id"`
	WalletAddress string          `json:"wallet_address"`
	OnChain       decimal.Decimal `json:"on_chain"`
	Recorded      decimal.Decimal `json:"recorded"`
	Difference    decimal.Decimal `json:"difference"`
	Matches       bool            `json:"matches"`
}

// ReconcileReport lists participant ids by reconciliation outcome.
type ReconcileReport struct {
	SplitWalletID uuid.UUID `json:"split_wallet_id"`
	Confirmed     []string  `json:"confirmed"`
	StillPending  []string  `json:"still_pending"`
	Reverted      []string  `json:"reverted"`
}

// PaymentProcessor drives the collection and payout phases.
type PaymentProcessor interface {
	ProcessParticipantPayment(ctx context.Context, req PaymentRequest) (*UpdateResult, error)
	VerifyWalletBalance(ctx context.Context, id uuid.UUID) (*BalanceReport, error)
	ReconcilePendingTransactions(ctx context.Context, id uuid.UUID) (*ReconcileReport, error)
	ExtractFairSplitFunds(ctx context.Context, id uuid.UUID, recipient string, creatorID string) (*domain.SplitWallet, error)
	ProcessDegenWinnerPayout(ctx context.Context, id uuid.UUID, winnerID string, requesterID string) (*domain.SplitWallet, error)
	ProcessDegenLoserPayment(ctx context.Context, id uuid.UUID, requesterID string, dest domain.Destination) (*domain.SplitWallet, error)
}

// UpdateResult is returned by every atomic update. Success reflects the
// authoritative write only; IndexSynced reports index propagation.
type UpdateResult struct {
	Success     bool                `json:"success"`
	Wallet      *domain.SplitWallet `json:"wallet"`
	IndexSynced bool                `json:"index_synced"`
}

// AtomicUpdater is the single write path for wallet state.
type AtomicUpdater interface {
	UpdateWalletStatus(ctx context.Context, id uuid.UUID, status domain.WalletStatus, mutate func(w *domain.SplitWallet) error) (*UpdateResult, error)
	UpdateParticipantPayment(ctx context.Context, id uuid.UUID, mutate func(w *domain.SplitWallet) error) (*UpdateResult, error)
	// RevertParticipantPayment is UpdateParticipantPayment for the dropped
	// transfer path; it permits locked -> pending and a lower AmountPaid.
	RevertParticipantPayment(ctx context.Context, id uuid.UUID, mutate func(w *domain.SplitWallet) error) (*UpdateResult, error)
	UpdateWalletParticipants(ctx context.Context, id uuid.UUID, mutate func(w *domain.SplitWallet) error) (*UpdateResult, error)
	UpdateWalletData(ctx context.Context, id uuid.UUID, mutate func(w *domain.SplitWallet) error) (*UpdateResult, error)
	Propagate(ctx context.Context, wallet *domain.SplitWallet, operation string) bool
	Resync(ctx context.Context, id uuid.UUID) (*domain.SplitWallet, error)
}

// RouletteService runs the single degen draw of a wallet.
type RouletteService interface {
	ExecuteDegenRoulette(ctx context.Context, walletID uuid.UUID, requestedBy string) (*domain.DegenRouletteAuditEntry, error)
	GetRouletteResult(ctx context.Context, walletID uuid.UUID) (*domain.DegenRouletteAuditEntry, error)
}

// CustodyService owns custodial signing keys.
type CustodyService interface {
	StoreKey(ctx context.Context, walletID uuid.UUID, ownerID string, privateKey string) error
	StoreKeyForParticipants(ctx context.Context, walletID uuid.UUID, ownerIDs []string, privateKey string) error
	GetKey(ctx context.Context, walletID uuid.UUID, requesterID string) (string, error)
	SyncParticipantShares(ctx context.Context, walletID uuid.UUID, requesterID string, participantIDs []string) error
	DeleteKeys(ctx context.Context, walletID uuid.UUID) error
}

// CleanupService moves wallets into terminal states.
type CleanupService interface {
	CancelSplitWallet(ctx context.Context, id uuid.UUID, requesterID string) (*domain.SplitWallet, error)
	CompleteSplitWallet(ctx context.Context, id uuid.UUID, requesterID string) (*domain.SplitWallet, error)
	BurnSplitWalletAndCleanup(ctx context.Context, id uuid.UUID, requesterID string) (*domain.SplitWallet, error)
}
