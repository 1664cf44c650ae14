package controller

import (
	"nft-asset-bridge/conf"
	"nft-asset-bridge/controller/handler"
	"nft-asset-bridge/controller/respond"
	bridgeDocs "nft-asset-bridge/docs/bridge"
	"nft-asset-bridge/service/bridge_service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupBridgeRouter setup bridge service router
func SetupBridgeRouter(bridgeService *bridge_service.BridgeService) *gin.Engine {
	// Set Swagger host from config
	bridgeDocs.SwaggerInfobridge.Host = conf.Cfg.SwaggerBaseUrl

	// Create Gin engine
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Accept", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * 3600, // 12 hours
	}))

	// Add timing middleware
	r.Use(respond.TimingMiddleware())

	// Create handler
	bridgeHandler := handler.NewBridgeHandler(bridgeService)

	// API v1 route group
	v1 := r.Group("/api/v1")
	{
		v1.GET("/ping", bridgeHandler.Ping)
		v1.GET("/version", bridgeHandler.Version)

		bridge := v1.Group("/bridge")
		{
			// Build a create+issue transaction against an ownership proof
			bridge.POST("/issue", bridgeHandler.Issue)

			// Look up a committed issuance record by derived asset code
			bridge.GET("/issuance/:code", bridgeHandler.GetIssuance)

			// List admitted chains and contracts
			bridge.GET("/chains", bridgeHandler.SupportedChains)
		}
	}

	// Swagger UI
	r.GET("/ui/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName("bridge")))

	return r
}
