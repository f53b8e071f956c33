package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/eeshan-ajmera/finance-project-ai/api"
	"github.com/eeshan-ajmera/finance-project-ai/api/prediction"
	"github.com/eeshan-ajmera/finance-project-ai/config"
	"github.com/eeshan-ajmera/finance-project-ai/dao/redis"
	"github.com/eeshan-ajmera/finance-project-ai/db"
	"github.com/eeshan-ajmera/finance-project-ai/server"
	"github.com/eeshan-ajmera/finance-project-ai/server/handlers"
	services "github.com/eeshan-ajmera/finance-project-ai/service"
)

// Container holds all application dependencies.
type Container struct {
	Config            *config.Config
	RedisClient       db.RedisClient
	ForecastDao       *redis.RedisForecastDAO
	PredictionAPI     prediction.PredictionAPI
	ForecastService   *services.ForecastService
	ForecastHandler   *handlers.ForecastHandler
	MuxRouter         *mux.Router
	Router            *server.Router
	FinanceHttpServer *server.FinanceHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	log.Printf("initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Initialize Redis client
	redisClient := db.NewPlainRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize forecast DAO
	cacheTTL := time.Duration(cfg.Redis.CacheTTLMinutes) * time.Minute
	forecastDao := redis.NewRedisForecastDAO(redisClient, cacheTTL)

	// Initialize prediction API - mock outside prod
	var predictionApiClient prediction.PredictionAPI
	if cfg.Env != "prod" {
		predictionApiClient = prediction.NewPredictionApiClientMock()
		log.Printf("Using mock prediction api")
	} else {
		log.Printf("Using prod prediction api at %s", cfg.Backend.PredictionBaseURL)
		predictionHttpClient := api.NewHTTPClient(cfg.Backend.PredictionBaseURL)
		newsHttpClient := api.NewHTTPClient(cfg.Backend.NewsBaseURL)

		predictionApiClient = prediction.NewPredictionApiClient(predictionHttpClient, newsHttpClient)
	}

	// Initialize service layer
	forecastService := services.NewForecastService(forecastDao, predictionApiClient)

	// Initialize forecast handler
	forecastHandler := handlers.NewForecastHandler(forecastService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(forecastHandler, muxRouter)

	// initialize finance server
	financeHttpServer := server.NewFinanceHttpServer(router, muxRouter, cfg.Server.ListenAddress)

	return &Container{
		Config:            cfg,
		RedisClient:       redisClient,
		ForecastDao:       forecastDao,
		PredictionAPI:     predictionApiClient,
		ForecastService:   forecastService,
		ForecastHandler:   forecastHandler,
		MuxRouter:         muxRouter,
		Router:            router,
		FinanceHttpServer: financeHttpServer,
	}
}
