package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ivelichko/pennywise/internal/advisor"
	"github.com/ivelichko/pennywise/internal/charts"
	"github.com/ivelichko/pennywise/internal/config"
	"github.com/ivelichko/pennywise/internal/repository"
	"github.com/ivelichko/pennywise/internal/server"
	"github.com/ivelichko/pennywise/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	cfg := config.Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("couldn't parse config: %v", err)
	}

	mongoCli, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.Endpoint))
	if err != nil {
		logrus.Fatalf("couldn't connect to mongo: %v", err)
	}
	if err = mongoCli.Ping(ctx, readpref.Primary()); err != nil {
		logrus.Fatalf("couldn't ping mongo: %v", err)
	}
	defer func() {
		if err = mongoCli.Disconnect(context.Background()); err != nil {
			logrus.Errorf("couldn't disconnect from mongo: %v", err)
		}
	}()

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err = cache.Ping(ctx).Err(); err != nil {
			logrus.Warnf("redis unreachable, insight caching disabled: %v", err)
			cache = nil
		}
	}

	ledger := service.NewLedger(
		validator.New(),
		repository.NewTransactions(mongoCli, cfg.Mongo.Database),
		repository.NewTags(mongoCli, cfg.Mongo.Database),
		repository.NewLines(mongoCli, cfg.Mongo.Database, repository.CollectionIncomes),
		repository.NewLines(mongoCli, cfg.Mongo.Database, repository.CollectionRecurring),
		cfg.PageSize, cfg.EditDelay)
	if err = ledger.Load(ctx); err != nil {
		logrus.Fatalf("couldn't load ledger: %v", err)
	}

	adv := advisor.New(openai.NewClient(cfg.OpenAI.Token), cfg.OpenAI.Model, cache, cfg.OpenAI.CacheTTL)

	srv := server.New(ledger, adv, charts.NewGenerator())
	go func() {
		if err = srv.Run(cfg.HTTP.Port); err != nil {
			logrus.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit
	cancel()
	<-time.After(2 * time.Second)
}
