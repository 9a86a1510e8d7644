package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/domain/keys"
	"github.com/flixe/goapi/service/cache"
	"github.com/flixe/goapi/service/cache/provider"
	"github.com/flixe/goapi/service/cache/provider/compound"
	"github.com/flixe/goapi/service/cache/provider/primitive"
	redisCache "github.com/flixe/goapi/service/cache/provider/redis"
	"github.com/flixe/goapi/service/redis"
)

const (
	cacheSizeMB = 64
	// HeaderCache reports HIT or MISS
	HeaderCache = "X-Cache"
)

// HttpCache caches anonymous, successful GET responses keyed by their normalized url.
type HttpCache struct {
	layers []provider.Provider
}

// NewHttpCache keeps responses in process and, when redis is given, in redis too so
// replicas share them.
func NewHttpCache(redis redis.Service) *HttpCache {
	layers := []provider.Provider{primitive.NewPrimitive(keys.PfxHttpCache, cacheSizeMB)}
	if redis != nil {
		layers = append(layers, redisCache.NewRedis(redis))
	}
	return &HttpCache{layers: layers}
}

type cachedResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

// cacheKey hashes the path and the query with keys and values sorted
func cacheKey(u *url.URL) string {
	params := u.Query()
	for _, vs := range params {
		sort.Strings(vs)
	}
	hash := fnv.New64a()
	hash.Write([]byte(u.Path))
	hash.Write([]byte{'?'})
	hash.Write([]byte(params.Encode()))
	return strconv.FormatUint(hash.Sum64(), 36)
}

func cacheable(r *http.Request) bool {
	return r.Method == http.MethodGet && r.Header.Get(echo.HeaderAuthorization) == ""
}

func (h *HttpCache) CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	cacheService := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   keys.PfxHttpCache,
		Cache: compound.NewCompound(h.layers),
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cacheable(c.Request()) {
				return next(c)
			}
			ctx := c.Get("ctx").(ctx.Ctx)
			key := cacheKey(c.Request().URL)

			hit := cachedResponse{}
			if err := cacheService.Get(ctx, key, &hit); err == nil {
				for k, vs := range hit.Header {
					c.Response().Header()[k] = vs
				}
				c.Response().Header().Set(HeaderCache, "HIT")
				c.Response().WriteHeader(hit.Status)
				_, err := c.Response().Write(hit.Body)
				return err
			} else if err != cache.ErrNotFound {
				ctx.WithField("err", err).Warn("cacheService.Get failed")
			}

			c.Response().Header().Set(HeaderCache, "MISS")
			body := new(bytes.Buffer)
			writer := &bodyDumpResponseWriter{
				Writer:         io.MultiWriter(c.Response().Writer, body),
				ResponseWriter: c.Response().Writer,
			}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			if writer.statusCode < http.StatusOK || writer.statusCode >= http.StatusMultipleChoices {
				return nil
			}
			header := writer.Header().Clone()
			header.Del(HeaderCache)
			if err := cacheService.Set(ctx, key, cachedResponse{
				Status: writer.statusCode,
				Header: header,
				Body:   body.Bytes(),
			}); err != nil {
				ctx.WithFields(log.Fields{"err": err, "key": key}).Error("cacheService.Set failed")
			}
			return nil
		}
	}
}
