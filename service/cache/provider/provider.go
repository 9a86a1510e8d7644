package provider

import (
	"errors"
	"time"

	"github.com/flixe/goapi/base/ctx"
)

var (
	ErrNotFound = errors.New("cache not found")
)

// Provider is one cache layer holding raw bytes. Get returns the remaining ttl so an outer
// layer can be refilled with the same expiry.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
