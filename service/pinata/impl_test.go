package pinata

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/flixe/goapi/base/ctx"
)

type pinataSuite struct {
	suite.Suite

	ctx     ctx.Ctx
	server  *httptest.Server
	handler http.HandlerFunc
}

func TestPinata(t *testing.T) {
	suite.Run(t, new(pinataSuite))
}

func (s *pinataSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
}

func (s *pinataSuite) TearDownTest() {
	s.server.Close()
}

func (s *pinataSuite) TestPinJson() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(pinJsonPath, r.URL.Path)
		s.Equal("key", r.Header.Get("pinata_api_key"))
		s.Equal("secret", r.Header.Get("pinata_secret_api_key"))

		body := struct {
			Metadata PinataMetadata    `json:"pinataMetadata"`
			Content  map[string]string `json:"pinataContent"`
		}{}
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("loan-1", body.Metadata.Name)
		s.Equal("hello", body.Content["title"])

		io.WriteString(w, `{"IpfsHash":"QmJson"}`)
	}

	svc := New(Config{ApiKey: "key", ApiSecret: "secret", Endpoint: s.server.URL})
	cid, err := svc.PinJson(s.ctx, map[string]string{"title": "hello"}, WithName("loan-1"))
	s.Require().NoError(err)
	s.Equal("QmJson", cid)
}

func (s *pinataSuite) TestPinFile() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(pinPath, r.URL.Path)
		s.Equal("Bearer token", r.Header.Get("Authorization"))

		f, header, err := r.FormFile("file")
		s.Require().NoError(err)
		defer f.Close()
		s.Equal("poster.png", header.Filename)
		data, _ := io.ReadAll(f)
		s.Equal("pixels", string(data))
		s.Contains(r.FormValue("pinataMetadata"), `"name":"poster"`)

		io.WriteString(w, `{"IpfsHash":"QmFile"}`)
	}

	svc := New(Config{Jwt: "token", Endpoint: s.server.URL})
	cid, err := svc.Pin(s.ctx, strings.NewReader("pixels"), "poster.png", WithName("poster"))
	s.Require().NoError(err)
	s.Equal("QmFile", cid)
}

func (s *pinataSuite) TestRequestFailed() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":"invalid key"}`)
	}

	svc := New(Config{ApiKey: "bad", Endpoint: s.server.URL})
	_, err := svc.PinJson(s.ctx, map[string]string{})
	s.ErrorIs(err, ErrRequestFailed)
}
