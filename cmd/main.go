package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adjustmentapp "github.com/muhammadheryan/inventory-service/application/adjustment"
	authapp "github.com/muhammadheryan/inventory-service/application/auth"
	"github.com/muhammadheryan/inventory-service/application/notifier"
	reservationapp "github.com/muhammadheryan/inventory-service/application/reservation"
	stockapp "github.com/muhammadheryan/inventory-service/application/stock"
	transferapp "github.com/muhammadheryan/inventory-service/application/transfer"
	warehouseapp "github.com/muhammadheryan/inventory-service/application/warehouse"
	"github.com/muhammadheryan/inventory-service/cmd/config"
	redisclient "github.com/muhammadheryan/inventory-service/cmd/redis"
	_ "github.com/muhammadheryan/inventory-service/docs"
	adjustmentRepo "github.com/muhammadheryan/inventory-service/repository/adjustment"
	movementRepo "github.com/muhammadheryan/inventory-service/repository/movement"
	redisRepo "github.com/muhammadheryan/inventory-service/repository/redis"
	stockRepo "github.com/muhammadheryan/inventory-service/repository/stock"
	transferRepo "github.com/muhammadheryan/inventory-service/repository/transfer"
	txRepo "github.com/muhammadheryan/inventory-service/repository/tx"
	warehouseRepo "github.com/muhammadheryan/inventory-service/repository/warehouse"
	"github.com/muhammadheryan/inventory-service/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-service/transport"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	validatorx "github.com/muhammadheryan/inventory-service/utils/validator"
	"go.uber.org/zap"
)

// @title INVENTORY API
// @version 1.0
// @description Inventory accounting API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))
	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Events are best effort; the API keeps serving without a broker.
	var publisher rabbitmq.EventPublisher
	amqpPublisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, events disabled", zap.Error(err))
	} else {
		publisher = amqpPublisher
		defer amqpPublisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	MovementRepo := movementRepo.NewMovementRepository(db)
	AdjustmentRepo := adjustmentRepo.NewAdjustmentRepository(db)
	TransferRepo := transferRepo.NewTransferRepository(db)
	WarehouseRepo := warehouseRepo.NewWarehouseRepository(db)
	RedisRepo := redisRepo.NewRedisRepository()

	Notifier := notifier.New(RedisRepo, publisher)

	// Initialize application layers
	rh := &transport.RestHandler{
		AdjustmentApp:  adjustmentapp.NewAdjustmentApp(TxRepo, StockRepo, MovementRepo, AdjustmentRepo, WarehouseRepo, Notifier),
		ReservationApp: reservationapp.NewReservationApp(cfg, TxRepo, StockRepo, MovementRepo, WarehouseRepo, Notifier),
		TransferApp:    transferapp.NewTransferApp(TxRepo, TransferRepo, StockRepo, MovementRepo, WarehouseRepo, Notifier),
		WarehouseApp:   warehouseapp.NewWarehouseApp(TxRepo, WarehouseRepo, StockRepo),
		StockApp:       stockapp.NewStockApp(cfg, StockRepo, MovementRepo, RedisRepo),
	}
	AuthApp := authapp.NewAuthApp(cfg, RedisRepo)

	httpTransport := transport.NewTransport(rh, AuthApp, cfg.Internal.APIKeyHash)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
