package evm

import (
	"encoding/hex"
	"fmt"
	"strings"

	"split-wallet-engine/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// KeyGenerator creates secp256k1 custodial accounts.
type KeyGenerator struct{}

func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{}
}

func (g *KeyGenerator) Generate() (*domain.Keypair, error) {
	key, err := gethcrypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &domain.Keypair{
		Address:    gethcrypto.PubkeyToAddress(key.PublicKey).Hex(),
		PrivateKey: hex.EncodeToString(gethcrypto.FromECDSA(key)),
	}, nil
}

// AddressValidator accepts 0x-prefixed 20-byte hex addresses.
type AddressValidator struct{}

func NewAddressValidator() *AddressValidator {
	return &AddressValidator{}
}

func (AddressValidator) IsValidAddress(address string) bool {
	return len(address) == 42 && common.IsHexAddress(address)
}

// AddressFromKey derives the account address of a hex private key.
func AddressFromKey(privateKey string) (string, error) {
	key, err := gethcrypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return "", fmt.Errorf("parse key: %w", err)
	}
	return gethcrypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}
