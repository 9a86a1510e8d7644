package main

//go:generate swag init -g main.go -o docs --parseDependency

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/flixe/goapi/app/api/docs"
	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/database/mongoclient"
	"github.com/flixe/goapi/base/database/redisclient"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/base/metrics"
	bValidator "github.com/flixe/goapi/base/validator"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/keys"
	"github.com/flixe/goapi/domain/metadata"
	mmiddleware "github.com/flixe/goapi/middleware"
	"github.com/flixe/goapi/service/cache"
	"github.com/flixe/goapi/service/cache/provider"
	"github.com/flixe/goapi/service/cache/provider/compound"
	"github.com/flixe/goapi/service/cache/provider/primitive"
	redisCache "github.com/flixe/goapi/service/cache/provider/redis"
	"github.com/flixe/goapi/service/chain"
	"github.com/flixe/goapi/service/chain/contract"
	"github.com/flixe/goapi/service/pinata"
	"github.com/flixe/goapi/service/query"
	"github.com/flixe/goapi/service/redis"
	"github.com/flixe/goapi/service/wallet"
	adware_delivery "github.com/flixe/goapi/stores/adware/delivery/http"
	adware_usecase "github.com/flixe/goapi/stores/adware/usecase"
	auction_delivery "github.com/flixe/goapi/stores/auction/delivery/http"
	auction_usecase "github.com/flixe/goapi/stores/auction/usecase"
	auth_delivery "github.com/flixe/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/flixe/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/flixe/goapi/stores/auth/usecase"
	campaign_delivery "github.com/flixe/goapi/stores/campaign/delivery/http"
	campaign_usecase "github.com/flixe/goapi/stores/campaign/usecase"
	hc_delivery "github.com/flixe/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/flixe/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/flixe/goapi/stores/healthcheck/usecase"
	journal_delivery "github.com/flixe/goapi/stores/journal/delivery/http"
	journal_repository "github.com/flixe/goapi/stores/journal/repository"
	journal_usecase "github.com/flixe/goapi/stores/journal/usecase"
	listing_delivery "github.com/flixe/goapi/stores/listing/delivery/http"
	listing_repository "github.com/flixe/goapi/stores/listing/repository"
	listing_usecase "github.com/flixe/goapi/stores/listing/usecase"
	loan_delivery "github.com/flixe/goapi/stores/loan/delivery/http"
	loan_usecase "github.com/flixe/goapi/stores/loan/usecase"
	metadata_delivery "github.com/flixe/goapi/stores/metadata/delivery/http"
	metadata_repository "github.com/flixe/goapi/stores/metadata/repository"
	metadata_usecase "github.com/flixe/goapi/stores/metadata/usecase"
	pass_delivery "github.com/flixe/goapi/stores/pass/delivery/http"
	pass_usecase "github.com/flixe/goapi/stores/pass/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	viper.SetEnvPrefix("flixe")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if err := log.Init(log.Config{
		Level:      viper.GetString("log.level"),
		File:       viper.GetString("log.file"),
		MaxSizeMB:  viper.GetInt("log.maxSizeMB"),
		MaxBackups: viper.GetInt("log.maxBackups"),
		MaxAgeDays: viper.GetInt("log.maxAgeDays"),
		Compress:   viper.GetBool("log.compress"),
	}); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Flixe API
//	@version		1.0
//	@description	Coordinates sales, auctions, rentals and loans of flixes with the marketplace contracts.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	context := ctx.Background()

	if err := metrics.Init(viper.GetString("datadog.host"), viper.GetInt("datadog.port")); err != nil {
		context.WithField("err", err).Warn("metrics fall back to log")
	}

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(metrics.New("http"))
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnect(mongoclient.Config{
		Uri:            viper.GetString("mongo.uri"),
		AuthDBName:     viper.GetString("mongo.authDBName"),
		DbName:         viper.GetString("mongo.dbName"),
		SSL:            viper.GetBool("mongo.enableSSL"),
		Majority:       true,
		PoolMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
	})
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
	if err := q.EnsureIndexes(context, domain.TableListings, listing_repository.Indexes...); err != nil {
		log.Log().WithField("err", err).Panic("ensure listing indexes failed")
	}
	if err := q.EnsureIndexes(context, domain.TableTransactions, journal_repository.Indexes...); err != nil {
		log.Log().WithField("err", err).Panic("ensure transaction indexes failed")
	}

	// init Redis service, optional
	var redisService redis.Service
	if redisCacheURI := viper.GetString("redis.uri"); redisCacheURI != "" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis.name")
		redisCachePool := redisclient.MustConnectRedis(redisCacheURI, viper.GetString("redis.password"), redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
			Retry:          true,
		})
		redisService = redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
			Src: redisCachePool,
		})
	}
	httpCache := mmiddleware.NewHttpCache(redisService)

	// metadata
	pinataService := pinata.New(pinata.Config{
		Jwt:       viper.GetString("pinata.jwt"),
		ApiKey:    viper.GetString("pinata.apiKey"),
		ApiSecret: viper.GetString("pinata.apiSecret"),
		Timeout:   viper.GetDuration("pinata.timeout"),
	})
	ipfsTimeout := viper.GetDuration("ipfs.timeout")
	if ipfsTimeout == 0 {
		ipfsTimeout = 15 * time.Second
	}
	var ipfsReader metadata.Reader
	if nodeUrl := viper.GetString("ipfs.nodeUrl"); nodeUrl != "" {
		ipfsReader = metadata_repository.NewIpfsNodeReader(ipfsapi.NewShell(nodeUrl), ipfsTimeout)
	} else {
		ipfsReader = metadata_repository.NewIpfsGatewayReader(&http.Client{}, viper.GetString("ipfs.gateway"), ipfsTimeout)
	}
	metadataLayers := []provider.Provider{primitive.NewPrimitive(keys.PfxMetadata, viper.GetInt("cache.metadataSizeMB"))}
	if redisService != nil {
		metadataLayers = append(metadataLayers, redisCache.NewRedis(redisService))
	}
	metadataUC := metadata_usecase.New(&metadata_usecase.MetadataUseCaseCfg{
		Pinata: pinataService,
		Reader: ipfsReader,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("cache.metadataTtl"),
			Pfx:   keys.PfxMetadata,
			Cache: compound.NewCompound(metadataLayers),
		}),
		CidVersion: pinata.CidVersion(viper.GetInt("pinata.cidVersion")),
	})

	// init chain service
	journalUC := journal_usecase.New(journal_repository.New(q))
	chainCfg := chain.ClientCfg{
		RpcUrl:          viper.GetString("chain.rpcUrl"),
		ChainId:         viper.GetInt64("chain.chainId"),
		MinGasPriceGwei: viper.GetString("chain.minGasPriceGwei"),
		DefaultGasLimit: viper.GetUint64("chain.defaultGasLimit"),
		ReceiptPoll:     viper.GetDuration("chain.receiptPoll"),
		MaxConcurrency:  viper.GetInt("chain.maxConcurrency"),
	}
	ethClient, err := chain.Dial(context, chainCfg)
	if err != nil {
		log.Log().WithField("err", err).Panic("chain.Dial failed")
	}
	chainService, err := chain.NewClient(context, ethClient, chainCfg, chain.WithRecorder(journalUC))
	if err != nil {
		log.Log().WithField("err", err).Panic("chain.NewClient failed")
	}
	wallets, err := wallet.NewRegistry(context, wallet.RegistryCfg{
		HexKeys:     viper.GetStringSlice("wallets.keys"),
		KeystoreDir: viper.GetString("wallets.keystoreDir"),
		Passphrase:  viper.GetString("wallets.passphrase"),
	})
	if err != nil {
		log.Log().WithField("err", err).Panic("wallet.NewRegistry failed")
	}

	marketplace := contract.NewMarketplace(chainService, common.HexToAddress(viper.GetString("contracts.marketplace")))
	loanVault := contract.NewLoanVault(chainService, common.HexToAddress(viper.GetString("contracts.loanVault")))
	adwareContract := contract.NewAdware(chainService, common.HexToAddress(viper.GetString("contracts.adware")))
	crowdfunding := contract.NewCrowdfunding(chainService, common.HexToAddress(viper.GetString("contracts.crowdfunding")))

	// construct repository, usecase and delivery
	hc := hc_usecase.New(hc_repo.New(mongoClient, redisService, ethClient))
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret: viper.GetString("auth.jwtSecret"),
		Message:   viper.GetString("auth.message"),
		TokenTtl:  viper.GetDuration("auth.tokenTtl"),
	})
	auction := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Marketplace: marketplace,
		Wallets:     wallets,
	})
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:        listing_repository.New(q, redisService),
		Marketplace: marketplace,
		LoanVault:   loanVault,
		Auction:     auction,
		Wallets:     wallets,
	})
	loan := loan_usecase.New(&loan_usecase.LoanUseCaseCfg{
		LoanVault:   loanVault,
		Marketplace: marketplace,
		Metadata:    metadataUC,
		Wallets:     wallets,
	})
	pass := pass_usecase.New(marketplace, wallets)
	adware := adware_usecase.New(adwareContract, wallets)
	campaign := campaign_usecase.New(&campaign_usecase.CampaignUseCaseCfg{
		Crowdfunding: crowdfunding,
		Metadata:     metadataUC,
		Wallets:      wallets,
	})

	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	listing_delivery.New(e, listing, authMiddleware)
	auction_delivery.New(e, auction, authMiddleware)
	loan_delivery.New(e, loan, authMiddleware)
	pass_delivery.New(e, pass, authMiddleware)
	adware_delivery.New(e, adware, authMiddleware, httpCache)
	campaign_delivery.New(e, campaign, authMiddleware, httpCache)
	metadata_delivery.New(e, metadataUC, authMiddleware)
	journal_delivery.New(e, journalUC)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
