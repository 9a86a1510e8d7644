package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/database/mongoclient"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/keys"
	"github.com/flixe/goapi/domain/listing"
	"github.com/flixe/goapi/service/cache"
	"github.com/flixe/goapi/service/cache/provider"
	"github.com/flixe/goapi/service/cache/provider/compound"
	"github.com/flixe/goapi/service/cache/provider/primitive"
	redisCache "github.com/flixe/goapi/service/cache/provider/redis"
	"github.com/flixe/goapi/service/query"
	"github.com/flixe/goapi/service/redis"
)

const defaultLimit = 100

var Indexes = []query.Index{
	{Keys: []string{"tokenId"}, Unique: true},
	{Keys: []string{"owner", "status", "-updatedAt"}},
	{Keys: []string{"status", "-updatedAt"}},
	{Keys: []string{"-updatedAt"}},
}

type impl struct {
	query query.Mongo
	cache cache.Service
}

// New creates the listing repo. redis may be nil, in which case only the in process cache is used.
func New(q query.Mongo, redis redis.Service) listing.Repo {
	layers := []provider.Provider{
		primitive.NewPrimitive(keys.PfxListing, 16),
	}
	if redis != nil {
		layers = append(layers, redisCache.NewRedis(redis))
	}

	return &impl{
		query: q,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Minute,
			Pfx:   keys.PfxListing,
			Cache: compound.NewCompound(layers),
		}),
	}
}

func (im *impl) FindOne(c ctx.Ctx, tokenId domain.TokenId) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := im.cache.GetByFunc(c, tokenId.String(), res, func() (interface{}, error) {
		return im.findOne(c, tokenId)
	}); err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("listingCache.GetByFunc failed")
		}
		return nil, err
	}
	return res, nil
}

func (im *impl) findOne(c ctx.Ctx, tokenId domain.TokenId) (*listing.Listing, error) {
	res := &listing.Listing{}
	err := im.query.FindOne(c, domain.TableListings, bson.M{"tokenId": tokenId}, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("find listing failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	limit := defaultLimit
	if opts.Limit > 0 {
		limit = int(opts.Limit)
	}

	res := []*listing.Listing{}
	if err := im.query.Search(c, domain.TableListings, 0, limit, "-updatedAt", qry, &res); err != nil {
		c.WithFields(log.Fields{"query": qry, "err": err}).Error("search listings failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Upsert(c ctx.Ctx, l *listing.Listing) error {
	l.Owner = l.Owner.ToLower()
	if err := im.query.Upsert(c, domain.TableListings, bson.M{"tokenId": l.TokenId}, l); err != nil {
		c.WithFields(log.Fields{"tokenId": l.TokenId, "err": err}).Error("upsert listing failed")
		return err
	}
	if err := im.cache.Del(c, l.TokenId.String()); err != nil {
		c.WithFields(log.Fields{"tokenId": l.TokenId, "err": err}).Warn("listingCache.Del failed")
	}
	return nil
}
