package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/database/mongoclient"
	"github.com/tradeloot/goapi/base/database/redisclient"
	"github.com/tradeloot/goapi/base/log"
	"github.com/tradeloot/goapi/base/metrics"
	bValidator "github.com/tradeloot/goapi/base/validator"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/listing"
	"github.com/tradeloot/goapi/domain/mysterybox"
	mmiddleware "github.com/tradeloot/goapi/middleware"
	"github.com/tradeloot/goapi/service/currency"
	"github.com/tradeloot/goapi/service/inventory"
	"github.com/tradeloot/goapi/service/notify"
	"github.com/tradeloot/goapi/service/query"
	"github.com/tradeloot/goapi/service/redis"
	"github.com/tradeloot/goapi/service/settlement"
	hc_delivery "github.com/tradeloot/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/tradeloot/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/tradeloot/goapi/stores/healthcheck/usecase"
	listing_repository "github.com/tradeloot/goapi/stores/listing/repository"
	listing_usecase "github.com/tradeloot/goapi/stores/listing/usecase"
	marketplace_delivery "github.com/tradeloot/goapi/stores/marketplace/delivery/http"
	marketplace_usecase "github.com/tradeloot/goapi/stores/marketplace/usecase"
	mysterybox_repository "github.com/tradeloot/goapi/stores/mysterybox/repository"
	mysterybox_usecase "github.com/tradeloot/goapi/stores/mysterybox/usecase"
	trade_repository "github.com/tradeloot/goapi/stores/trade/repository"
	transaction_repository "github.com/tradeloot/goapi/stores/transaction/repository"
)

func init() {
	configPath := pflag.String("config", "infra/configs/config.yaml", "path to the config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// decimalDecodeHook parses numeric config values into decimal.Decimal.
func decimalDecodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if t != reflect.TypeOf(decimal.Decimal{}) {
		return data, nil
	}
	return decimal.NewFromString(fmt.Sprintf("%v", data))
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init storage
	var (
		listingRepo  listing.Repo
		txRepo       domain.TransactionRepo
		tierRepo     mysterybox.TierRepo
		purchaseRepo mysterybox.PurchaseRepo
		mongoClient  *mongoclient.Client
	)
	if viper.GetString("storage.mode") == "mongo" {
		context.Info("init mongo")
		uri := viper.GetString("mongo.uri")
		authDBName := viper.GetString("mongo.authDBName")
		dbName := viper.GetString("mongo.dbName")
		enableSSL := viper.GetBool("mongo.enableSSL")
		checkIndex := viper.GetBool("mongo.checkIndex")
		mongoClient = mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
		q := query.New(mongoClient, checkIndex)

		listingRepo = listing_repository.NewListingRepo(q)
		txRepo = transaction_repository.NewTransactionRepo(q)
		tierRepo = mysterybox_repository.NewTierRepo(q)
		purchaseRepo = mysterybox_repository.NewPurchaseRepo(q)
	} else {
		context.Info("init in-memory storage")
		listingRepo = listing_repository.NewMemory()
		txRepo = transaction_repository.NewMemory()
		tierRepo = mysterybox_repository.NewTierMemory()
		purchaseRepo = mysterybox_repository.NewPurchaseMemory()
	}

	// init redis cache, optional
	var redisCache redis.Service
	if viper.GetBool("redis_cache.enabled") {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCacheURI := viper.GetString("redis_cache.uri")
		redisCachePwd := viper.GetString("redis_cache.password")
		redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
		redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
			PoolMultiplier: redisCachePoolMultiplier,
			Retry:          true,
		})
		redisCache = redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
			Src: redisCachePool,
		})
	}

	mmiddleware.SetupCache(redisCache)

	// init game backend adapters
	items := inventory.New()
	seedItems := []struct {
		Owner string                 `mapstructure:"owner"`
		Id    string                 `mapstructure:"id"`
		Type  string                 `mapstructure:"type"`
		Data  map[string]interface{} `mapstructure:"data"`
	}{}
	if err := viper.UnmarshalKey("inventory.seedItems", &seedItems); err != nil {
		context.WithField("err", err).Warn("failed to parse inventory.seedItems")
	}
	for _, it := range seedItems {
		inventory.AddItem(items, domain.Username(it.Owner), &domain.Item{Id: it.Id, Type: it.Type, Data: it.Data})
	}

	currencyAdapter := currency.New()
	for username, amount := range viper.GetStringMapString("currency.seedBalances") {
		balance, err := decimal.NewFromString(amount)
		if err != nil {
			context.WithField("username", username).Warn("invalid seed balance, skipped")
			continue
		}
		currency.Fund(currencyAdapter, domain.Username(username), balance)
	}

	// init payment adapter
	settlementCfg := &settlement.Config{
		Network:         viper.GetString("payment.network"),
		Asset:           viper.GetString("payment.asset"),
		PollInterval:    viper.GetDuration("payment.pollInterval"),
		MaxPollAttempts: viper.GetInt("payment.maxPollAttempts"),
	}
	mockMode := viper.GetString("payment.mode") != "chain"
	var payments domain.PaymentAdapter
	if mockMode {
		payments = settlement.NewMock(settlementCfg)
	} else {
		ledger, err := settlement.NewEvmLedger(viper.GetString("payment.rpcUrl"))
		if err != nil {
			panic(err)
		}
		payments = settlement.NewChain(settlementCfg, ledger)
	}

	// init sale notifier, optional
	notifier := notify.NewNoop()
	if viper.GetBool("discord.enabled") {
		d, err := notify.NewDiscord(notify.DiscordConfig{
			BotKey:    viper.GetString("discord.botKey"),
			ChannelId: viper.GetString("discord.channelId"),
		})
		if err != nil {
			context.WithField("err", err).Warn("discord notifier disabled")
		} else {
			notifier = d
		}
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	hc := hc_usecase.New(hcRepo)

	executor := trade_repository.New(listingRepo, items, currencyAdapter, txRepo)
	listingUC := listing_usecase.New(listingRepo, items)
	boxUC := mysterybox_usecase.New(tierRepo, purchaseRepo, redisCache)
	marketplaceUC := marketplace_usecase.New(
		marketplace_usecase.Config{
			MockMode:         mockMode,
			ResourceBase:     viper.GetString("server.resourceBase"),
			TreasuryWallet:   domain.WalletAddress(viper.GetString("payment.treasuryWallet")),
			UseBalanceLedger: viper.GetBool("payment.useBalanceLedger"),
		},
		listingUC,
		boxUC,
		items,
		payments,
		executor,
		notifier,
	)

	// seed the tier catalog
	tiers := []mysterybox.Tier{}
	if err := viper.UnmarshalKey("mysterybox.tiers", &tiers, viper.DecodeHook(decimalDecodeHook)); err != nil {
		context.WithField("err", err).Warn("failed to parse mysterybox.tiers")
	}
	if len(tiers) > 0 {
		if err := boxUC.SeedTiers(context, tiers); err != nil {
			context.WithField("err", err).Error("failed to seed mystery box tiers")
		}
	}

	hc_delivery.New(e, hc)
	marketplace_delivery.New(e, marketplaceUC, boxUC)

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
