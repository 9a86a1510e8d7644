package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"golang.org/x/xerrors"

	"github.com/flixe/goapi/base/log"
)

const (
	mgSocketTimeout       = 60 * time.Second
	defaultConnectTimeout = 10 * time.Second
	defaultPoolMultiplier = 2
)

type Config struct {
	Uri string
	// AuthDBName is used when the uri carries credentials without authSource
	AuthDBName string
	DbName     string
	SSL        bool
	// Majority makes writes wait for a majority of the replica set
	Majority bool
	// PoolMultiplier sizes the pool as NumCPU * PoolMultiplier over all hosts
	PoolMultiplier float64
	ConnectTimeout time.Duration
}

// Client wraps mongo.Client bound to one database
type Client struct {
	*mongo.Client
	db *mongo.Database
}

// MustConnect panics when Connect fails
func MustConnect(cfg Config) *Client {
	cli, err := Connect(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"db": cfg.DbName, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

func Connect(cfg Config) (*Client, error) {
	connSetting, err := connstring.Parse(cfg.Uri)
	if err != nil {
		log.Log().WithFields(log.Fields{"db": cfg.DbName, "err": err}).Error("fail to parse connstring")
		return nil, err
	}
	if cfg.DbName == "" {
		cfg.DbName = connSetting.Database
	}
	if cfg.DbName == "" {
		return nil, xerrors.New("mongo database name is empty")
	}
	if cfg.PoolMultiplier <= 0 {
		cfg.PoolMultiplier = defaultPoolMultiplier
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}

	clientOpts := options.Client().
		ApplyURI(cfg.Uri).
		SetSocketTimeout(mgSocketTimeout).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetRetryWrites(true)

	if connSetting.Username != "" && connSetting.AuthSource == "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	poolSize := poolSizePerHost(runtime.NumCPU(), cfg.PoolMultiplier, len(connSetting.Hosts))
	clientOpts.SetMinPoolSize(uint64(poolSize / 4))
	clientOpts.SetMaxPoolSize(uint64(poolSize))

	if cfg.SSL {
		clientOpts.SetTLSConfig(&tls.Config{})
	}
	if cfg.Majority {
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "err": err}).Error("fail to connect mongo")
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Log().WithFields(log.Fields{"mongoHosts": connSetting.Hosts, "err": err}).Error("fail to ping mongo")
		return nil, err
	}

	log.Log().WithFields(log.Fields{
		"mongoHosts": connSetting.Hosts,
		"db":         cfg.DbName,
		"poolSize":   poolSize,
	}).Info("mongo connected")
	return &Client{Client: client, db: client.Database(cfg.DbName)}, nil
}

// Db is the database named in Config
func (c *Client) Db() *mongo.Database {
	return c.db
}

// Alive pings the primary.
func (c *Client) Alive(ctx context.Context) error {
	return c.Client.Ping(ctx, readpref.Primary())
}

// each host keeps its own pool, so the total is divided over the hosts
func poolSizePerHost(cpus int, multiplier float64, hosts int) int {
	total := int(float64(cpus) * multiplier)
	if total < 1 {
		total = 1
	}
	if hosts < 1 {
		hosts = 1
	}
	return (total + hosts - 1) / hosts
}
