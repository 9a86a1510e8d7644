package ethereum

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func GenerateKey() (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	if privateKey, err := crypto.GenerateKey(); err != nil {
		return nil, nil, err
	} else {
		publicKey := privateKey.Public().(*ecdsa.PublicKey)
		return privateKey, publicKey, nil
	}
}

// HexToKey parses a raw secp256k1 private key, with or without 0x prefix.
func HexToKey(hex string) (*ecdsa.PrivateKey, error) {
	hex = strings.TrimSpace(hex)
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	return crypto.HexToECDSA(hex)
}

func KeyAddress(key *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(key.PublicKey)
}
