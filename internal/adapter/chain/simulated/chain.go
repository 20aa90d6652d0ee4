// Package simulated is an in-process token ledger implementing the chain
// ports. It backs the "memory" storage driver and service tests.
package simulated

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"sync"

	"split-wallet-engine/internal/adapter/chain/evm"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/shopspring/decimal"
)

// ErrOutage is wrapped in a transient AppError while the chain is down.
var ErrOutage = errors.New("simulated chain unavailable")

// Chain keeps token balances and transfer statuses in memory.
type Chain struct {
	mu        sync.Mutex
	balances  map[string]decimal.Decimal
	statuses  map[string]ports.ConfirmationStatus
	seq       uint64
	outages   int
	transfers []ports.TransferRequest
}

func New() *Chain {
	return &Chain{
		balances: make(map[string]decimal.Decimal),
		statuses: make(map[string]ports.ConfirmationStatus),
	}
}

// Deposit credits address and returns the signature of a confirmed transfer.
func (c *Chain) Deposit(address string, amount decimal.Decimal) string {
	return c.DepositWithStatus(address, amount, ports.ConfirmationConfirmed)
}

// DepositWithStatus credits address only when status is confirmed; a pending
// deposit can later be settled with SetStatus.
func (c *Chain) DepositWithStatus(address string, amount decimal.Decimal, status ports.ConfirmationStatus) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	sig := c.nextSignature()
	c.statuses[sig] = status
	if status == ports.ConfirmationConfirmed {
		c.credit(address, amount)
	}
	return sig
}

// SetStatus overrides the confirmation status of a signature.
func (c *Chain) SetStatus(signature string, status ports.ConfirmationStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[signature] = status
}

// FailNext makes the next n calls return a transient error.
func (c *Chain) FailNext(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outages = n
}

// Transfers returns every transfer submitted so far.
func (c *Chain) Transfers() []ports.TransferRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ports.TransferRequest(nil), c.transfers...)
}

func (c *Chain) SubmitTransfer(ctx context.Context, req ports.TransferRequest) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.outage(); err != nil {
		return "", err
	}
	from, err := evm.AddressFromKey(req.PrivateKey)
	if err != nil {
		return "", err
	}
	if !req.Amount.IsPositive() {
		return "", apperror.ErrInvalidAmount()
	}
	if c.balance(from).LessThan(req.Amount) {
		return "", apperror.ErrInsufficientFunds()
	}
	c.balances[key(from)] = c.balance(from).Sub(req.Amount)
	c.credit(req.Destination, req.Amount)
	c.transfers = append(c.transfers, ports.TransferRequest{Destination: req.Destination, Amount: req.Amount})

	sig := c.nextSignature()
	c.statuses[sig] = ports.ConfirmationConfirmed
	return sig, nil
}

func (c *Chain) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.outage(); err != nil {
		return decimal.Zero, err
	}
	return c.balance(address), nil
}

func (c *Chain) GetConfirmationStatus(ctx context.Context, signature string) (ports.ConfirmationStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.outage(); err != nil {
		return "", err
	}
	status, ok := c.statuses[signature]
	if !ok {
		return ports.ConfirmationFailed, nil
	}
	return status, nil
}

func (c *Chain) outage() error {
	if c.outages > 0 {
		c.outages--
		return apperror.ErrTransient(ErrOutage)
	}
	return nil
}

func (c *Chain) balance(address string) decimal.Decimal {
	if b, ok := c.balances[key(address)]; ok {
		return b
	}
	return decimal.Zero
}

func (c *Chain) credit(address string, amount decimal.Decimal) {
	c.balances[key(address)] = c.balance(address).Add(amount)
}

func (c *Chain) nextSignature() string {
	c.seq++
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], c.seq)
	sum := sha256.Sum256(buf[:])
	return "0x" + hex.EncodeToString(sum[:])
}

func key(address string) string {
	return strings.ToLower(address)
}
