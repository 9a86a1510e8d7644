package repository

import (
	"time"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/database/mongoclient"
	"github.com/flixe/goapi/domain"
	hcdomain "github.com/flixe/goapi/domain/healthcheck"
	"github.com/flixe/goapi/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mgoClient  *mongoclient.Client
	redisCache redis.Service
	eth        domain.EthClientRepo
}

// New creates the healthcheck repo. redisCache may be nil.
func New(
	mgoClient *mongoclient.Client,
	redisCache redis.Service,
	eth domain.EthClientRepo,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient:  mgoClient,
		redisCache: redisCache,
		eth:        eth,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.mgoClient.Alive(ctx); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return nil
	}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping redis error")
		return err
	}
	return nil
}

func (im *impl) BlockNumber(context ctx.Ctx) (uint64, error) {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	n, err := im.eth.BlockNumber(ctx)
	if err != nil {
		context.WithField("err", err).Error("eth.BlockNumber failed")
		return 0, err
	}
	return n, nil
}
