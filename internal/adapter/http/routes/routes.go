package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "loja_xpto/docs" // swagger spec, generated
	"loja_xpto/internal/adapter/http/handlers"
	repository2 "loja_xpto/internal/adapter/persistence/repository"
	"loja_xpto/internal/infrastructure/database"
	"loja_xpto/internal/infrastructure/launcher"
	"loja_xpto/internal/infrastructure/payments"
	"loja_xpto/internal/infrastructure/shipping"
	"loja_xpto/internal/infrastructure/storeapi"
	"loja_xpto/internal/usecase"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	storeFactory := storeapi.NewFactory(getenvDefault("STORE_API_URL", "http://localhost:3000"))

	var prefs interfaces.IPreferenceGateway
	mpGateway, err := payments.NewMercadoPagoPreferenceGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		prefs = mpGateway
	}

	shippingGateway := shipping.NewMelhorEnvioGateway(
		os.Getenv("SHIPPING_API_URL"),
		os.Getenv("SHIPPING_ORIGIN_ZIP"),
	)

	var pendingStore interfaces.IPendingOrderStore
	switch getenvDefault("PENDING_ORDERS_BACKEND", "dynamodb") {
	case "file":
		pendingStore = repository2.NewPendingOrderFileRepository(os.Getenv("PENDING_ORDERS_DIR"))
	default:
		pendingStore = repository2.NewPendingOrderDynamoRepository(database.ConnectDynamoDB())
	}

	var linkLauncher interfaces.ILinkLauncher = launcher.NewDeferredLauncher()
	if isTruthy(os.Getenv("LAUNCH_BROWSER")) {
		linkLauncher = launcher.NewBrowserLauncher()
	}

	sessions := usecase.NewSessionManager(
		storeFactory, prefs, shippingGateway, pendingStore, linkLauncher, sessionConfigFromEnv(),
	)

	checkoutHandler := handlers.NewCheckoutHandler(sessions)
	cartHandler := handlers.NewCartHandler(sessions)
	shippingHandler := handlers.NewShippingHandler(sessions)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler, cartHandler, shippingHandler)
}

func sessionConfigFromEnv() usecase.SessionConfig {
	cfg := usecase.DefaultSessionConfig()
	if v, err := strconv.Atoi(os.Getenv("POLL_INTERVAL_SECONDS")); err == nil && v > 0 {
		cfg.PollInterval = time.Duration(v) * time.Second
	}
	if v, err := strconv.ParseUint(os.Getenv("POLL_MAX_ATTEMPTS"), 10, 64); err == nil && v > 0 {
		cfg.PollMaxAttempts = v
	}
	cfg.RequireShipping = isTruthy(os.Getenv("SHIPPING_REQUIRED"))
	return cfg
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
