package metadata

import (
	"encoding/json"
	"strings"

	"github.com/flixe/goapi/base/ctx"
)

const ipfsScheme = "ipfs://"

// Reader fetches raw content by CID from an ipfs node.
type Reader interface {
	Get(ctx ctx.Ctx, cid string) ([]byte, error)
}

type Image struct {
	Cid      string `json:"cid"`
	MimeType string `json:"mimeType"`
	URI      string `json:"uri"`
}

type Usecase interface {
	// PinJSON pins v and returns its CID.
	PinJSON(ctx ctx.Ctx, name string, v interface{}) (string, error)
	// PinImage pins an image. Content that is not an image is rejected.
	PinImage(ctx ctx.Ctx, name string, data []byte) (*Image, error)
	// Get returns the JSON document behind a CID or ipfs URI. Documents are immutable and
	// cached by CID.
	Get(ctx ctx.Ctx, uri string) (json.RawMessage, error)
	GetInto(ctx ctx.Ctx, uri string, out interface{}) error
}

// CidOf extracts the CID path from an ipfs://, gateway or bare reference.
func CidOf(uri string) string {
	uri = strings.TrimSpace(uri)
	if strings.HasPrefix(uri, ipfsScheme) {
		return strings.TrimPrefix(strings.TrimPrefix(uri, ipfsScheme), "ipfs/")
	}
	if i := strings.Index(uri, "/ipfs/"); i >= 0 {
		return uri[i+len("/ipfs/"):]
	}
	return uri
}

func URIOf(cid string) string {
	return ipfsScheme + cid
}
