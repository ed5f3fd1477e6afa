package main

import (
	"github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/clients/cache"
	"max.ks1230/expense-ledger/internal/config"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/auth"
	"max.ks1230/expense-ledger/internal/model/ledger"
	"max.ks1230/expense-ledger/internal/model/storage"
	"max.ks1230/expense-ledger/internal/model/summary"
	"max.ks1230/expense-ledger/internal/model/users"
	"max.ks1230/expense-ledger/internal/server"
)

const serviceName = "expense-ledger"

func main() {
	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	initTracing()

	db, err := storage.NewPostgresStorage(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init postgres", zap.Error(err))
	}

	var summaryCache server.SummaryCache
	if mc, cacheErr := cache.NewMemcache(conf.Memcached()); cacheErr != nil {
		logger.Warn("memcached unavailable, summaries will not be cached", zap.Error(cacheErr))
	} else {
		summaryCache = mc
	}

	verifier := auth.New(conf.Auth())
	srv := server.New(
		conf.Server(),
		verifier,
		ledger.New(db),
		users.New(db, verifier),
		summary.NewEngine(conf.App()),
		summaryCache,
	)

	logger.Info("server starting", zap.Int("port", conf.Server().Port()))
	if err = srv.Run(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func initTracing() {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
	}

	tracer, _, err := cfg.NewTracer()
	if err != nil {
		logger.Error("failed to init tracing", zap.Error(err))
		return
	}
	opentracing.SetGlobalTracer(tracer)
}
