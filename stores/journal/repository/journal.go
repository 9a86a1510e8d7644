package repository

import (
	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/database/mongoclient"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/journal"
	"github.com/flixe/goapi/service/query"
)

const defaultLimit = 50

// Indexes backs lookups by sender and method, newest first.
var Indexes = []query.Index{
	{Keys: []string{"hash"}, Unique: true},
	{Keys: []string{"sender", "-settledAt"}},
	{Keys: []string{"sender", "method", "-settledAt"}},
}

type impl struct {
	query query.Mongo
}

func New(q query.Mongo) journal.Repo {
	return &impl{query: q}
}

func (im *impl) Insert(c ctx.Ctx, tx *journal.Tx) error {
	if err := im.query.Insert(c, domain.TableTransactions, tx); err != nil {
		c.WithFields(log.Fields{"hash": tx.Hash, "err": err}).Error("insert transaction failed")
		return err
	}
	return nil
}

func (im *impl) Find(c ctx.Ctx, opts journal.FindOptions) ([]*journal.Tx, error) {
	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	limit := defaultLimit
	if opts.Limit > 0 {
		limit = int(opts.Limit)
	}

	res := []*journal.Tx{}
	if err := im.query.Search(c, domain.TableTransactions, int(opts.Offset), limit, "-settledAt", qry, &res); err != nil {
		c.WithFields(log.Fields{"query": qry, "err": err}).Error("search transactions failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Count(c ctx.Ctx, opts journal.FindOptions) (int, error) {
	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return 0, err
	}
	n, err := im.query.Count(c, domain.TableTransactions, qry)
	if err != nil {
		c.WithFields(log.Fields{"query": qry, "err": err}).Error("count transactions failed")
		return 0, err
	}
	return n, nil
}
