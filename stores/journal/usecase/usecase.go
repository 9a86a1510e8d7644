package usecase

import (
	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/journal"
)

const maxLimit = 500

type impl struct {
	repo journal.Repo
}

func New(repo journal.Repo) journal.Usecase {
	return &impl{repo: repo}
}

// Record stores a settled transaction. Addresses are kept lowercase so lookups by sender
// don't depend on checksum casing.
func (im *impl) Record(c ctx.Ctx, tx *journal.Tx) error {
	if tx == nil || tx.Hash == "" {
		return domain.ErrBadParamInput
	}
	tx.Sender = tx.Sender.ToLower()
	tx.Contract = tx.Contract.ToLower()
	return im.repo.Insert(c, tx)
}

func (im *impl) ListBySender(c ctx.Ctx, sender domain.Address, offset, limit int64) (*journal.Page, error) {
	if offset < 0 || limit < 0 || limit > maxLimit {
		return nil, domain.ErrBadParamInput
	}
	sender = sender.ToLower()
	opts := journal.FindOptions{Sender: &sender, Offset: offset, Limit: limit}

	total, err := im.repo.Count(c, opts)
	if err != nil {
		c.WithField("err", err).Error("repo.Count failed")
		return nil, err
	}
	page := &journal.Page{Items: []*journal.Tx{}, Total: total}
	if int64(total) <= offset {
		return page, nil
	}
	if page.Items, err = im.repo.Find(c, opts); err != nil {
		c.WithField("err", err).Error("repo.Find failed")
		return nil, err
	}
	return page, nil
}
