package repository

import (
	"io"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain/metadata"
)

type ipfsNodeReader struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
}

// NewIpfsNodeReader reads content through the http api of an ipfs node.
func NewIpfsNodeReader(s *ipfsapi.Shell, timeout time.Duration) metadata.Reader {
	return &ipfsNodeReader{shell: s, ctxTimeout: timeout}
}

func (r *ipfsNodeReader) Get(c ctx.Ctx, cid string) ([]byte, error) {
	tctx, cancel := ctx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	resp, err := r.shell.Request("cat", cid).Send(tctx)
	if err != nil {
		c.WithField("err", err).Error("shell.Request failed")
		return nil, err
	}
	defer resp.Close()
	if resp.Error != nil {
		c.WithField("resp.Error", resp.Error).Error("shell.Request failed")
		return nil, resp.Error
	}
	return io.ReadAll(resp.Output)
}
