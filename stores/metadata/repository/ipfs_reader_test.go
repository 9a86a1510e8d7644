package repository

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/require"

	"github.com/flixe/goapi/base/ctx"
)

func TestIpfsGatewayReader(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ipfs/QmOk" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		io.WriteString(w, `{"title":"loan"}`)
	}))
	defer srv.Close()

	r := NewIpfsGatewayReader(srv.Client(), srv.URL+"/ipfs/", time.Second)

	b, err := r.Get(ctx.Background(), "QmOk")
	req.NoError(err)
	req.JSONEq(`{"title":"loan"}`, string(b))

	_, err = r.Get(ctx.Background(), "QmMissing")
	req.Error(err)
}

func TestIpfsNodeReader(t *testing.T) {
	// needs a reachable ipfs node, e.g. IPFS_API=localhost:5001
	api := os.Getenv("IPFS_API")
	if api == "" {
		t.Skip("IPFS_API not set")
	}
	req := require.New(t)

	s := ipfsapi.NewShell(api)
	cid, err := s.Add(strings.NewReader(`{"title":"campaign"}`))
	req.NoError(err)

	b, err := NewIpfsNodeReader(s, 15*time.Second).Get(ctx.Background(), cid)
	req.NoError(err)
	req.JSONEq(`{"title":"campaign"}`, string(b))
}
