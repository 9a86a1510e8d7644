package usecase

import (
	"github.com/flixe/goapi/base/ctx"
	hcdomain "github.com/flixe/goapi/domain/healthcheck"
)

const ok = "ok"

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

// Check pings every dependency, a failing one does not stop the others from being checked.
func (im *impl) Check(context ctx.Ctx) (*hcdomain.Status, error) {
	res := &hcdomain.Status{Healthy: true, Components: map[string]string{}}
	mark := func(component string, err error) {
		if err != nil {
			res.Healthy = false
			res.Components[component] = err.Error()
			return
		}
		res.Components[component] = ok
	}

	mark(hcdomain.ComponentMongo, im.repo.PingDB(context))
	mark(hcdomain.ComponentRedis, im.repo.PingCache(context))
	n, err := im.repo.BlockNumber(context)
	mark(hcdomain.ComponentChain, err)
	res.BlockNumber = n

	if !res.Healthy {
		return res, hcdomain.ErrUnhealthy
	}
	return res, nil
}
