package usecase

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/metadata"
	"github.com/flixe/goapi/service/cache"
	"github.com/flixe/goapi/service/pinata"
)

type MetadataUseCaseCfg struct {
	Pinata pinata.Service
	Reader metadata.Reader
	// Cache is optional. Pinned documents never change so entries can live long.
	Cache      cache.Service
	CidVersion pinata.CidVersion
}

type impl struct {
	pinata     pinata.Service
	reader     metadata.Reader
	cache      cache.Service
	cidVersion pinata.CidVersion
}

func New(cfg *MetadataUseCaseCfg) metadata.Usecase {
	return &impl{
		pinata:     cfg.Pinata,
		reader:     cfg.Reader,
		cache:      cfg.Cache,
		cidVersion: cfg.CidVersion,
	}
}

func (im *impl) PinJSON(c ctx.Ctx, name string, v interface{}) (string, error) {
	cid, err := im.pinata.PinJson(c, v, pinata.WithName(name), pinata.WithOptions(pinata.PinataOptions{CidVersion: im.cidVersion}))
	if err != nil {
		c.WithFields(log.Fields{"name": name, "err": err}).Error("pinata.PinJson failed")
		return "", err
	}
	c.WithFields(log.Fields{"name": name, "cid": cid}).Info("metadata pinned")
	return cid, nil
}

func (im *impl) PinImage(c ctx.Ctx, name string, data []byte) (*metadata.Image, error) {
	if len(data) == 0 {
		return nil, domain.ErrBadParamInput
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		c.WithFields(log.Fields{"name": name, "mimeType": mt.String()}).Warn("not an image")
		return nil, domain.ErrUnsupportedMimeType
	}

	cid, err := im.pinata.Pin(c, bytes.NewReader(data), name+mt.Extension(), pinata.WithName(name), pinata.WithOptions(pinata.PinataOptions{CidVersion: im.cidVersion}))
	if err != nil {
		c.WithFields(log.Fields{"name": name, "err": err}).Error("pinata.Pin failed")
		return nil, err
	}
	return &metadata.Image{Cid: cid, MimeType: mt.String(), URI: metadata.URIOf(cid)}, nil
}

func (im *impl) Get(c ctx.Ctx, uri string) (json.RawMessage, error) {
	cid := metadata.CidOf(uri)
	if cid == "" {
		return nil, domain.ErrBadParamInput
	}

	getter := func() (interface{}, error) {
		data, err := im.reader.Get(c, cid)
		if err != nil {
			c.WithFields(log.Fields{"cid": cid, "err": err}).Error("reader.Get failed")
			return nil, err
		}
		if !json.Valid(data) {
			c.WithField("cid", cid).Error("invalid json")
			return nil, domain.ErrInvalidJsonFormat
		}
		raw := json.RawMessage(data)
		return &raw, nil
	}

	if im.cache == nil {
		v, err := getter()
		if err != nil {
			return nil, err
		}
		return *v.(*json.RawMessage), nil
	}

	raw := json.RawMessage{}
	if err := im.cache.GetByFunc(c, cid, &raw, getter); err != nil {
		return nil, err
	}
	return raw, nil
}

func (im *impl) GetInto(c ctx.Ctx, uri string, out interface{}) error {
	raw, err := im.Get(c, uri)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.WithFields(log.Fields{"uri": uri, "err": err}).Error("json.Unmarshal failed")
		return xerrors.Errorf("%v: %w", err, domain.ErrInvalidJsonFormat)
	}
	return nil
}
