package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nft-asset-bridge/conf"
	"nft-asset-bridge/controller"
	"nft-asset-bridge/database"
	"nft-asset-bridge/events"
	"nft-asset-bridge/evm"
	"nft-asset-bridge/ledger"
	"nft-asset-bridge/service/bridge_service"
	"nft-asset-bridge/storage"
)

var ENV string

func init() {
	flag.StringVar(&ENV, "env", "mainnet", "Environment: loc/mainnet/testnet")
}

// @title           NFT Asset Bridge API
// @version         1.0
// @description     Bridges NFT ownership on EVM chains to one-time asset issuance on the target ledger

// @host      localhost:7291
// @BasePath  /api/v1

// @schemes https http

func main() {
	srv, cleanup := initAll()
	defer cleanup()

	// Start HTTP API service (in goroutine)
	go startServer(srv)
	log.Println("Bridge API service started successfully")

	// Wait for shutdown signal
	waitForShutdown()

	log.Println("Shutting down bridge service...")
	shutdownServer(srv)
	log.Println("Server exited")
}

// initEnv initialize environment
func initEnv() {
	if ENV == "loc" {
		conf.SystemEnvironmentEnum = conf.LocalEnvironmentEnum
	} else if ENV == "mainnet" {
		conf.SystemEnvironmentEnum = conf.MainnetEnvironmentEnum
	} else if ENV == "testnet" {
		conf.SystemEnvironmentEnum = conf.TestnetEnvironmentEnum
	}
	fmt.Printf("Environment: %s\n", ENV)
}

// initAll initialize all components
func initAll() (*http.Server, func()) {
	// Parse command line parameters
	flag.Parse()

	// Set environment
	initEnv()

	// Initialize configuration
	if err := conf.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	log.Printf("Configuration loaded: env=%s, net=%s, port=%s", ENV, conf.Cfg.Net, conf.Cfg.Port)

	// Probe configured chains and build the immutable registry
	endpoints := make([]bridge_service.ChainEndpoint, 0, len(conf.Cfg.Chains))
	for _, chain := range conf.Cfg.Chains {
		endpoints = append(endpoints, bridge_service.ChainEndpoint{
			Client:    evm.NewClient(chain.RpcUrl),
			Contracts: chain.Contracts,
		})
	}
	registry, err := bridge_service.BuildRegistry(endpoints)
	if err != nil {
		log.Fatalf("Failed to build chain registry: %v", err)
	}

	// Initialize blob storage (backend of the default store type)
	stor, err := storage.NewStorage()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Printf("Storage initialized: type=%s", conf.Cfg.Storage.Type)

	// Initialize idempotency store
	if err := database.InitStore(stor); err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	log.Printf("Idempotency store initialized: type=%s", conf.Cfg.Store.Type)

	// Initialize Redis (optional, won't fail if disabled or unavailable)
	if err := database.InitRedis(); err != nil {
		log.Printf("Redis initialization failed (cache will be disabled): %v", err)
	}

	// Initialize issuance event publisher (optional)
	var publisher bridge_service.EventPublisher
	var zmqPublisher *events.Publisher
	if conf.Cfg.Events.ZmqEnabled {
		zmqPublisher, err = events.NewPublisher(conf.Cfg.Events.ZmqAddress)
		if err != nil {
			log.Fatalf("Failed to start event publisher: %v", err)
		}
		publisher = zmqPublisher
	}

	// Assemble bridge service
	bridgeService := bridge_service.NewBridgeService(
		registry,
		ledger.NewClient(conf.Cfg.Ledger.QueryUrl),
		conf.Cfg.Ledger.RemoteDerive,
		ledger.MnemonicProvider{},
		database.DB,
		publisher,
	)

	// Setup router
	router := controller.SetupBridgeRouter(bridgeService)
	srv := &http.Server{
		Addr:    ":" + conf.Cfg.Port,
		Handler: router,
	}

	cleanup := func() {
		if zmqPublisher != nil {
			zmqPublisher.Close()
		}
		database.CloseRedis()
		if database.DB != nil {
			database.DB.Close()
		}
	}
	return srv, cleanup
}

// startServer start HTTP service
func startServer(srv *http.Server) {
	log.Printf("Bridge API listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// waitForShutdown wait for interrupt signal
func waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}

// shutdownServer gracefully shutdown HTTP service
func shutdownServer(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
