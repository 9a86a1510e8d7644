package healthcheck

import (
	"errors"

	"github.com/flixe/goapi/base/ctx"
)

var ErrUnhealthy = errors.New("unhealthy")

const (
	ComponentMongo = "mongo"
	ComponentRedis = "redis"
	ComponentChain = "chain"
)

type Status struct {
	Healthy bool `json:"healthy"`
	// Components holds "ok" or the failure of each dependency
	Components  map[string]string `json:"components"`
	BlockNumber uint64            `json:"blockNumber,omitempty"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
	// PingCache is a no-op when redis isn't configured
	PingCache(context ctx.Ctx) error
	BlockNumber(context ctx.Ctx) (uint64, error)
}
