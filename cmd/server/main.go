package main

import (
	"context"
	"log"

	"github.com/amankumarsingh77/reelfetch/internal/config"
	"github.com/amankumarsingh77/reelfetch/internal/server"
	"github.com/amankumarsingh77/reelfetch/pkg/db/aws"
	"github.com/amankumarsingh77/reelfetch/pkg/db/postgres"
	"github.com/amankumarsingh77/reelfetch/pkg/db/redis"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/amankumarsingh77/reelfetch/pkg/metrics"
	"github.com/amankumarsingh77/reelfetch/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	log.Println("Starting server")
	cfgFile, err := config.LoadConfig(config.GetConfigPath())
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}

	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()
	appLogger.Infof("AppVersion: %s, LogLevel: %s, Mode: %s", cfg.Server.AppVersion, cfg.Logger.Level, cfg.Server.Mode)

	shutdownTracing, err := telemetry.Init(context.Background(), cfg.Telemetry.ServiceName)
	if err != nil {
		appLogger.Fatalf("telemetry init: %v", err)
	}
	if cfg.Metrics.Enabled {
		metrics.Register(prometheus.DefaultRegisterer)
	}

	psqlDB, err := postgres.NewPsqlDB(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to db: %v", err)
	}
	appLogger.Infof("db connected, status: %#v", psqlDB.Stats())
	defer psqlDB.Close()

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to redis: %v", err)
	}
	appLogger.Infof("redis connected")
	defer redisClient.Close()

	s3Client, err := aws.NewAWSClient(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		appLogger.Fatalf("could not create s3 client: %v", err)
	}

	s := server.NewServer(cfg, psqlDB, redisClient, s3Client, appLogger)
	s.OnShutdown(shutdownTracing)
	if err = s.Run(); err != nil {
		appLogger.Errorf("server stopped with error: %v", err)
	}
}
