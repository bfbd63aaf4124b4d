package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// NewWalletHash generates a fresh 64-character hex identifier for a wallet:
// the SHA-256 digest of a randomly generated secp256k1 public key. The
// keypair is thrown away; the hash is a pseudonymous identifier, not signing
// material.
func NewWalletHash() (string, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("generate keypair: %w", err)
	}
	pub := crypto.FromECDSAPub(&key.PublicKey)
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:]), nil
}
