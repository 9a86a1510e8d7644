package wallet

import (
	"crypto/ecdsa"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"golang.org/x/xerrors"

	bCtx "github.com/flixe/goapi/base/ctx"
	baseeth "github.com/flixe/goapi/base/ethereum"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/domain"
)

type RegistryCfg struct {
	// HexKeys are raw secp256k1 private keys, with or without 0x prefix
	HexKeys []string
	// KeystoreDir holds encrypted keystore files unlocked with Passphrase
	KeystoreDir string
	Passphrase  string
}

type registry struct {
	mu        sync.RWMutex
	providers map[domain.Address]Provider
}

func NewRegistry(ctx bCtx.Ctx, cfg RegistryCfg) (Registry, error) {
	r := &registry{providers: map[domain.Address]Provider{}}
	for i, hex := range cfg.HexKeys {
		key, err := baseeth.HexToKey(hex)
		if err != nil {
			ctx.WithFields(log.Fields{"err": err, "idx": i}).Error("ethereum.HexToKey failed")
			return nil, xerrors.Errorf("wallet key %d: %w", i, err)
		}
		r.add(key)
	}
	if cfg.KeystoreDir != "" {
		if err := r.loadKeystore(ctx, cfg.KeystoreDir, cfg.Passphrase); err != nil {
			return nil, err
		}
	}
	ctx.WithField("accounts", len(r.providers)).Info("wallet registry loaded")
	return r, nil
}

func (r *registry) loadKeystore(ctx bCtx.Ctx, dir, passphrase string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "dir": dir}).Error("os.ReadDir failed")
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			ctx.WithFields(log.Fields{"err": err, "path": path}).Error("os.ReadFile failed")
			return err
		}
		key, err := keystore.DecryptKey(raw, passphrase)
		if err != nil {
			ctx.WithFields(log.Fields{"err": err, "path": path}).Error("keystore.DecryptKey failed")
			return xerrors.Errorf("keystore %s: %w", entry.Name(), err)
		}
		r.add(key.PrivateKey)
	}
	return nil
}

func (r *registry) add(key *ecdsa.PrivateKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := NewKeyed(key).(*keyed)
	r.providers[domain.AddressFrom(p.account)] = p
}

func (r *registry) Provider(ctx bCtx.Ctx, owner domain.Address) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[owner.ToLower()]
	if !ok {
		ctx.WithField("owner", owner).Warn("no wallet for owner")
		return nil, domain.ErrNoAccount
	}
	return p, nil
}

func (r *registry) Accounts() []domain.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.Address, 0, len(r.providers))
	for a := range r.providers {
		res = append(res, a)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
