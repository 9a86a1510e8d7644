package redis

import (
	"errors"
	"time"

	"github.com/flixe/goapi/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoTTL is returned by TTL when the key exists without an expiry
	ErrNoTTL = errors.New("redis: key has no ttl")
)

// Forever stores a key without expiry
const Forever = time.Duration(0)

// Service is the subset of redis commands used by the cache layer and the healthcheck
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	// TTL returns the remaining seconds of key
	TTL(context ctx.Ctx, key string) (int, error)
	Ping(context ctx.Ctx) error
	Name() string
}
