package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCidOf(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		in  string
		exp string
	}{
		{"ipfs://QmHash", "QmHash"},
		{"ipfs://ipfs/QmHash/0", "QmHash/0"},
		{"https://gateway.pinata.cloud/ipfs/QmHash", "QmHash"},
		{" QmHash ", "QmHash"},
		{"", ""},
	}
	for _, tt := range tests {
		req.Equal(tt.exp, CidOf(tt.in), tt.in)
	}
	req.Equal("ipfs://QmHash", URIOf("QmHash"))
}
