// Package evm talks to an EVM JSON-RPC node and moves a 6-decimal ERC-20
// settlement token on behalf of custodial split wallets.
package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"split-wallet-engine/config"
	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

var (
	transferSelector  = gethcrypto.Keccak256([]byte("transfer(address,uint256)"))[:4]
	balanceOfSelector = gethcrypto.Keccak256([]byte("balanceOf(address)"))[:4]
)

// Backend is the subset of ethclient.Client used by the adapter.
type Backend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *gethtypes.Transaction) error
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*gethtypes.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*gethtypes.Transaction, bool, error)
}

// Dial connects to the configured RPC endpoint.
func Dial(cfg config.ChainConfig) (*ethclient.Client, error) {
	endpoint := strings.TrimSpace(cfg.RPCURL)
	if endpoint == "" {
		return nil, fmt.Errorf("chain rpc url required")
	}
	return ethclient.Dial(endpoint)
}

// Client implements ports.BlockchainClient for an ERC-20 token.
type Client struct {
	backend  Backend
	token    common.Address
	decimals int32
	gasLimit uint64
	signer   gethtypes.Signer
	limiter  *rate.Limiter
	log      zerolog.Logger
}

// NewClient creates a token client. Every RPC call waits on a shared rate
// limiter sized by cfg.RequestsPerSecond.
func NewClient(backend Backend, cfg config.ChainConfig, log zerolog.Logger) (*Client, error) {
	if !common.IsHexAddress(cfg.TokenAddress) {
		return nil, fmt.Errorf("invalid token address %q", cfg.TokenAddress)
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		backend:  backend,
		token:    common.HexToAddress(cfg.TokenAddress),
		decimals: cfg.TokenDecimals,
		gasLimit: cfg.GasLimit,
		signer:   gethtypes.LatestSignerForChainID(big.NewInt(cfg.ChainID)),
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		log:      log,
	}, nil
}

// SubmitTransfer signs and broadcasts an ERC-20 transfer from the custodial
// account. It returns the transaction hash as the signature.
func (c *Client) SubmitTransfer(ctx context.Context, req ports.TransferRequest) (string, error) {
	if !common.IsHexAddress(req.Destination) {
		return "", apperror.Validation("invalid destination address")
	}
	if !req.Amount.IsPositive() {
		return "", apperror.ErrInvalidAmount()
	}
	key, err := gethcrypto.HexToECDSA(strings.TrimPrefix(req.PrivateKey, "0x"))
	if err != nil {
		return "", fmt.Errorf("parse custodial key: %w", err)
	}
	from := gethcrypto.PubkeyToAddress(key.PublicKey)

	if err := c.wait(ctx); err != nil {
		return "", err
	}
	nonce, err := c.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return "", classify("pending nonce", err)
	}
	if err := c.wait(ctx); err != nil {
		return "", err
	}
	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return "", classify("gas price", err)
	}

	tx := gethtypes.NewTx(&gethtypes.LegacyTx{
		Nonce:    nonce,
		To:       &c.token,
		Value:    big.NewInt(0),
		Gas:      c.gasLimit,
		GasPrice: gasPrice,
		Data:     transferCalldata(common.HexToAddress(req.Destination), c.toBaseUnits(req.Amount)),
	})
	signed, err := gethtypes.SignTx(tx, c.signer, key)
	if err != nil {
		return "", fmt.Errorf("sign transfer: %w", err)
	}

	if err := c.wait(ctx); err != nil {
		return "", err
	}
	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return "", classify("send transfer", err)
	}

	c.log.Info().
		Str("from", from.Hex()).
		Str("to", req.Destination).
		Str("amount", req.Amount.String()).
		Str("tx_hash", signed.Hash().Hex()).
		Msg("Token transfer submitted")
	return signed.Hash().Hex(), nil
}

// GetBalance returns the token balance of address in display units.
func (c *Client) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	if !common.IsHexAddress(address) {
		return decimal.Zero, apperror.Validation("invalid address")
	}
	data := append(append([]byte{}, balanceOfSelector...), common.LeftPadBytes(common.HexToAddress(address).Bytes(), 32)...)

	if err := c.wait(ctx); err != nil {
		return decimal.Zero, err
	}
	out, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &c.token, Data: data}, nil)
	if err != nil {
		return decimal.Zero, classify("balanceOf", err)
	}
	return decimal.NewFromBigInt(new(big.Int).SetBytes(out), -c.decimals), nil
}

// GetConfirmationStatus maps a transaction hash onto its confirmation state.
// A hash the node has never seen is reported as failed (dropped).
func (c *Client) GetConfirmationStatus(ctx context.Context, signature string) (ports.ConfirmationStatus, error) {
	hash := common.HexToHash(signature)

	if err := c.wait(ctx); err != nil {
		return "", err
	}
	receipt, err := c.backend.TransactionReceipt(ctx, hash)
	if err == nil && receipt != nil {
		if receipt.Status == gethtypes.ReceiptStatusSuccessful {
			return ports.ConfirmationConfirmed, nil
		}
		return ports.ConfirmationFailed, nil
	}
	if err != nil && !errors.Is(err, ethereum.NotFound) {
		return "", classify("receipt", err)
	}

	if err := c.wait(ctx); err != nil {
		return "", err
	}
	// Known to the node but without a receipt: still in the mempool, or
	// mined and not indexed yet.
	_, _, err = c.backend.TransactionByHash(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return ports.ConfirmationFailed, nil
	}
	if err != nil {
		return "", classify("transaction by hash", err)
	}
	return ports.ConfirmationPending, nil
}

func (c *Client) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apperror.ErrTransient(fmt.Errorf("rate limiter: %w", err))
	}
	return nil
}

func (c *Client) toBaseUnits(amount decimal.Decimal) *big.Int {
	return amount.Shift(c.decimals).BigInt()
}

func transferCalldata(to common.Address, amount *big.Int) []byte {
	data := make([]byte, 0, 4+32+32)
	data = append(data, transferSelector...)
	data = append(data, common.LeftPadBytes(to.Bytes(), 32)...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), 32)...)
	return data
}

var permanentRPCErrors = []string{
	"insufficient funds",
	"execution reverted",
	"nonce too low",
	"invalid sender",
	"intrinsic gas too low",
}

// classify wraps RPC failures. Node rejections that will fail again are
// returned as plain errors; everything else is treated as transient.
func classify(op string, err error) error {
	msg := strings.ToLower(err.Error())
	for _, p := range permanentRPCErrors {
		if strings.Contains(msg, p) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return apperror.ErrTransient(fmt.Errorf("%s: %w", op, err))
}
