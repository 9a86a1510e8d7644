package redisclient

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/flixe/goapi/base/backoff"
	"github.com/flixe/goapi/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second

	defaultMaxActive = 1024
	retryStart       = time.Second
	retryLimit       = 8 * time.Second
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	PoolMultiplier float64
	// Retry dials up to 3 more times with exponential backoff
	Retry bool
}

// MustConnectRedis panics if the connection fails.
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis accepts redis://, rediss:// or a bare host:port uri.
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxActive := defaultMaxActive
	retry := false
	if len(param) > 0 {
		if param[0].PoolMultiplier > 0 {
			maxActive = poolSize(runtime.NumCPU(), param[0].PoolMultiplier)
		}
		retry = param[0].Retry
	}

	p := &redis.Pool{
		// allowing 25% idle connection
		MaxIdle:      maxActive/4 + 1,
		MaxActive:    maxActive,
		Wait:         true,
		IdleTimeout:  idleTimeout,
		Dial:         dialer(uri, password),
		TestOnBorrow: testOnBorrow,
	}

	attempts := 1
	if retry {
		attempts = 4
	}
	bo := backoff.NewExponential(retryStart, retryLimit)
	var dialErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			_ = bo.Backoff(context.Background())
		}
		if dialErr = ping(p); dialErr == nil {
			break
		}
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": dialErr, "attempt": i + 1}).Warn("fail to ping Redis")
	}
	if dialErr != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": dialErr}).Error("fail to dial Redis")
		return nil, dialErr
	}

	log.Log().WithFields(log.Fields{"redisURI": uri, "maxActive": maxActive}).Info("redis connected")
	return p, nil
}

func dialer(uri, password string) func() (redis.Conn, error) {
	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	if strings.HasPrefix(uri, "redis://") || strings.HasPrefix(uri, "rediss://") {
		return func() (redis.Conn, error) {
			return redis.DialURL(uri, opts...)
		}
	}
	return func() (redis.Conn, error) {
		return redis.Dial("tcp", uri, opts...)
	}
}

func testOnBorrow(c redis.Conn, t time.Time) error {
	// recycled less than a second ago
	if time.Since(t) < time.Second {
		return nil
	}
	_, err := c.Do("PING")
	return err
}

func ping(p *redis.Pool) error {
	c := p.Get()
	defer c.Close()
	_, err := c.Do("PING")
	return err
}

func poolSize(cpus int, multiplier float64) int {
	n := int(float64(cpus) * multiplier)
	if n < 4 {
		n = 4
	}
	return n
}
